package controllers

import (
	"strings"

	"wellness/backend/config"
	"wellness/backend/models"
	"wellness/backend/router"
	"wellness/backend/store"
	"wellness/backend/utils"
)

type AuthController struct {
	Store    *store.Store
	Sessions *store.SessionStore
	Cfg      *config.Config
}

func NewAuthController(st *store.Store, sessions *store.SessionStore, cfg *config.Config) *AuthController {
	return &AuthController{Store: st, Sessions: sessions, Cfg: cfg}
}

// [+] Login godoc
// @Summary User login
// @Description Authenticate user, issue a bearer token and persist the session profile
// @Tags auth
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /auth/login [post]
func (ac *AuthController) Login(c *router.Ctx) error {
	type LoginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var input LoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	email := strings.TrimSpace(strings.ToLower(input.Email))

	db, err := ac.Store.Load()
	if err != nil {
		return utils.InternalServerError(c, "Could not load data")
	}

	// Find user: case-insensitive email, exact password
	var user *models.User
	for i := range db.Users {
		if strings.ToLower(db.Users[i].Email) == email && db.Users[i].Password == input.Password {
			user = &db.Users[i]
			break
		}
	}
	if user == nil {
		return utils.Unauthorized(c, "Invalid email or password")
	}

	db.Usage.DailyLogins++
	if err := ac.Store.Save(db); err != nil {
		return utils.InternalServerError(c, "Could not save data")
	}

	token, err := utils.GenerateToken(*user, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	profile := models.SessionProfile{Email: user.Email, Role: user.Role, Name: user.Name}
	if err := ac.Sessions.Save(token, profile); err != nil {
		return utils.InternalServerError(c, "Could not persist session")
	}

	return c.JSON(router.Map{
		"token": token,
		"user":  profile,
	})
}

// [+] Register godoc
// @Summary Register a new account
// @Description Creates a student account; no auto-login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /auth/register [post]
func (ac *AuthController) Register(c *router.Ctx) error {
	type RegisterInput struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}

	var input RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.Name == "" || input.Email == "" || input.Password == "" {
		return utils.BadRequest(c, "Name, email, and password are required.")
	}

	email := strings.TrimSpace(strings.ToLower(input.Email))

	db, err := ac.Store.Load()
	if err != nil {
		return utils.InternalServerError(c, "Could not load data")
	}

	for i := range db.Users {
		if strings.ToLower(db.Users[i].Email) == email {
			return utils.Conflict(c, "Account already exists for this email.")
		}
	}

	role := input.Role
	if role == "" {
		role = models.RoleStudent
	}

	db.Users = append(db.Users, models.User{
		Email:    email,
		Password: input.Password,
		Role:     role,
		Name:     input.Name,
	})

	if err := ac.Store.Save(db); err != nil {
		return utils.InternalServerError(c, "Could not save data")
	}

	return utils.Created(c, "Account created successfully.")
}
