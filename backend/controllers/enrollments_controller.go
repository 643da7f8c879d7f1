package controllers

import (
	"strconv"
	"strings"

	"wellness/backend/config"
	"wellness/backend/middleware"
	"wellness/backend/models"
	"wellness/backend/router"
	"wellness/backend/store"
	"wellness/backend/utils"
)

type EnrollmentsController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewEnrollmentsController(st *store.Store, cfg *config.Config) *EnrollmentsController {
	return &EnrollmentsController{Store: st, Cfg: cfg}
}

// Enroll is an idempotent create: enrolling twice in the same program reports
// success without a second enrollment record or counter increment.
func (ec *EnrollmentsController) Enroll(c *router.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	db, err := ec.Store.Load()
	if err != nil {
		return utils.InternalServerError(c, "Could not load data")
	}

	programID := c.Params("id")
	if db.Enrollments == nil {
		db.Enrollments = make(map[string][]models.Enrollment)
	}

	already := false
	for _, entry := range db.Enrollments[user.Email] {
		if entry.ProgramID == programID {
			already = true
			break
		}
	}

	if !already {
		db.Enrollments[user.Email] = append(db.Enrollments[user.Email], models.Enrollment{
			ProgramID: programID,
			Status:    models.EnrollmentInProgress,
		})
		db.Usage.ProgramEnrollments++
	}

	if err := ec.Store.Save(db); err != nil {
		return utils.InternalServerError(c, "Could not save data")
	}
	return utils.Message(c, 200, "Enrolled successfully")
}

// MyPrograms joins the caller's enrollments against the program catalog.
// Entries whose program has been deleted are silently dropped.
func (ec *EnrollmentsController) MyPrograms(c *router.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	db, err := ec.Store.Load()
	if err != nil {
		return utils.InternalServerError(c, "Could not load data")
	}

	joined := make([]models.EnrolledProgram, 0)
	for _, entry := range db.EnrollmentsFor(user.Email) {
		program := db.FindProgram(entry.ProgramID)
		if program == nil {
			continue
		}
		joined = append(joined, models.EnrolledProgram{
			ID:          program.ID,
			Title:       program.Title,
			Description: program.Description,
			Duration:    program.Duration,
			Status:      entry.Status,
		})
	}
	return utils.Data(c, joined)
}

// EnrolledSummary is the compact per-student view used by the dashboard
// table: program name, duration in weeks and status.
func (ec *EnrollmentsController) EnrolledSummary(c *router.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	db, err := ec.Store.Load()
	if err != nil {
		return utils.InternalServerError(c, "Could not load data")
	}

	summary := make([]router.Map, 0)
	for _, entry := range db.EnrollmentsFor(user.Email) {
		program := db.FindProgram(entry.ProgramID)
		if program == nil {
			continue
		}
		summary = append(summary, router.Map{
			"id":          program.ID,
			"programName": program.Title,
			"duration":    durationWeeks(program.Duration),
			"status":      entry.Status,
		})
	}
	return c.JSON(summary)
}

// durationWeeks pulls the leading number out of a free-text duration like
// "6 weeks", defaulting to 6.
func durationWeeks(duration string) int {
	digits := duration
	if i := strings.IndexFunc(duration, func(r rune) bool { return r < '0' || r > '9' }); i >= 0 {
		digits = duration[:i]
	}
	if n, err := strconv.Atoi(digits); err == nil {
		return n
	}
	return 6
}
