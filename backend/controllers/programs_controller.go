package controllers

import (
	"wellness/backend/config"
	"wellness/backend/middleware"
	"wellness/backend/models"
	"wellness/backend/router"
	"wellness/backend/store"
	"wellness/backend/utils"
)

type ProgramsController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewProgramsController(st *store.Store, cfg *config.Config) *ProgramsController {
	return &ProgramsController{Store: st, Cfg: cfg}
}

// Browse returns every program annotated with a derived per-caller enrolled
// flag. Anonymous callers see every flag false.
func (pc *ProgramsController) Browse(c *router.Ctx) error {
	db, err := pc.Store.Load()
	if err != nil {
		return utils.InternalServerError(c, "Could not load data")
	}

	var enrollments []models.Enrollment
	if user := middleware.CurrentUser(c); user != nil {
		enrollments = db.EnrollmentsFor(user.Email)
	}

	listings := make([]models.ProgramListing, 0, len(db.Programs))
	for _, program := range db.Programs {
		enrolled := false
		for _, entry := range enrollments {
			if entry.ProgramID == program.ID {
				enrolled = true
				break
			}
		}
		listings = append(listings, models.ProgramListing{
			ID:          program.ID,
			Title:       program.Title,
			Description: program.Description,
			Duration:    program.Duration,
			Enrolled:    enrolled,
		})
	}
	return utils.Data(c, listings)
}

// ListAll returns the raw program catalog for the admin management view.
func (pc *ProgramsController) ListAll(c *router.Ctx) error {
	db, err := pc.Store.Load()
	if err != nil {
		return utils.InternalServerError(c, "Could not load data")
	}
	return utils.Data(c, db.Programs)
}

func (pc *ProgramsController) Create(c *router.Ctx) error {
	type CreateInput struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Duration    string `json:"duration"`
	}

	var input CreateInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	db, err := pc.Store.Load()
	if err != nil {
		return utils.InternalServerError(c, "Could not load data")
	}

	program := models.Program{
		ID:          utils.NewID("p"),
		Title:       input.Title,
		Description: input.Description,
		Duration:    input.Duration,
	}
	if program.Duration == "" {
		program.Duration = "6 weeks"
	}

	// Newest first
	db.Programs = append([]models.Program{program}, db.Programs...)

	if err := pc.Store.Save(db); err != nil {
		return utils.InternalServerError(c, "Could not save data")
	}
	return utils.Created(c, "Program created.")
}

// Update merges the supplied fields into the matching program. An absent id
// is a no-op, not an error.
func (pc *ProgramsController) Update(c *router.Ctx) error {
	type UpdateInput struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Duration    *string `json:"duration"`
	}

	var input UpdateInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	db, err := pc.Store.Load()
	if err != nil {
		return utils.InternalServerError(c, "Could not load data")
	}

	id := c.Params("id")
	for i := range db.Programs {
		if db.Programs[i].ID != id {
			continue
		}
		if input.Title != nil {
			db.Programs[i].Title = *input.Title
		}
		if input.Description != nil {
			db.Programs[i].Description = *input.Description
		}
		if input.Duration != nil {
			db.Programs[i].Duration = *input.Duration
		}
	}

	if err := pc.Store.Save(db); err != nil {
		return utils.InternalServerError(c, "Could not save data")
	}
	return utils.Message(c, 200, "Program updated.")
}

// Delete removes the program and cascades over every user's enrollments so no
// orphaned enrollment survives.
func (pc *ProgramsController) Delete(c *router.Ctx) error {
	db, err := pc.Store.Load()
	if err != nil {
		return utils.InternalServerError(c, "Could not load data")
	}

	id := c.Params("id")
	kept := db.Programs[:0]
	for _, program := range db.Programs {
		if program.ID != id {
			kept = append(kept, program)
		}
	}
	db.Programs = kept

	for email, entries := range db.Enrollments {
		remaining := entries[:0]
		for _, entry := range entries {
			if entry.ProgramID != id {
				remaining = append(remaining, entry)
			}
		}
		db.Enrollments[email] = remaining
	}

	if err := pc.Store.Save(db); err != nil {
		return utils.InternalServerError(c, "Could not save data")
	}
	return utils.Message(c, 200, "Program deleted.")
}
