package controllers

import (
	"time"

	"wellness/backend/config"
	"wellness/backend/middleware"
	"wellness/backend/models"
	"wellness/backend/router"
	"wellness/backend/store"
	"wellness/backend/utils"
)

type MoodController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewMoodController(st *store.Store, cfg *config.Config) *MoodController {
	return &MoodController{Store: st, Cfg: cfg}
}

// Save appends a mood check-in. The entries are write-only; no endpoint reads
// them back.
func (mo *MoodController) Save(c *router.Ctx) error {
	type MoodInput struct {
		Mood string `json:"mood"`
	}

	var input MoodInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	db, err := mo.Store.Load()
	if err != nil {
		return utils.InternalServerError(c, "Could not load data")
	}

	email := "anonymous"
	if user := middleware.CurrentUser(c); user != nil {
		email = user.Email
	}

	db.Moods = append(db.Moods, models.MoodEntry{
		ID:        utils.NewID("m"),
		Mood:      input.Mood,
		Email:     email,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})

	if err := mo.Store.Save(db); err != nil {
		return utils.InternalServerError(c, "Could not save data")
	}
	return utils.Created(c, "Mood saved.")
}
