package utils

import (
	"wellness/backend/router"
)

// Data creates the {"data": ...} envelope used by collection and detail
// endpoints.
func Data(c *router.Ctx, payload interface{}) error {
	return c.Status(200).JSON(router.Map{"data": payload})
}

// Message creates a {"message": ...} response with the given status.
func Message(c *router.Ctx, status int, message string) error {
	return c.Status(status).JSON(router.Map{"message": message})
}

// Created sends a 201 with a message payload.
func Created(c *router.Ctx, message string) error {
	return Message(c, 201, message)
}

// BadRequest responds 400 for validation failures.
func BadRequest(c *router.Ctx, message string) error {
	return Message(c, 400, message)
}

// Unauthorized responds 401 for bad credentials or a missing session.
func Unauthorized(c *router.Ctx, message string) error {
	return Message(c, 401, message)
}

// Forbidden responds 403 when the session lacks the required role.
func Forbidden(c *router.Ctx, message string) error {
	return Message(c, 403, message)
}

// NotFound responds 404.
func NotFound(c *router.Ctx, message string) error {
	return Message(c, 404, message)
}

// Conflict responds 409, e.g. for a duplicate account email.
func Conflict(c *router.Ctx, message string) error {
	return Message(c, 409, message)
}

// InternalServerError responds 500.
func InternalServerError(c *router.Ctx, message string) error {
	return Message(c, 500, message)
}
