package controllers

import (
	"wellness/backend/config"
	"wellness/backend/middleware"
	"wellness/backend/models"
	"wellness/backend/router"
	"wellness/backend/store"
	"wellness/backend/utils"
)

type MetricsController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewMetricsController(st *store.Store, cfg *config.Config) *MetricsController {
	return &MetricsController{Store: st, Cfg: cfg}
}

// AdminDashboard aggregates the headline numbers for the admin dashboard.
func (mc *MetricsController) AdminDashboard(c *router.Ctx) error {
	db, err := mc.Store.Load()
	if err != nil {
		return utils.InternalServerError(c, "Could not load data")
	}

	totalStudents := 0
	for _, user := range db.Users {
		if user.Role == models.RoleStudent {
			totalStudents++
		}
	}

	openRequests := 0
	for _, request := range db.SupportRequests {
		if request.Status != models.SupportResolved {
			openRequests++
		}
	}

	return utils.Data(c, router.Map{
		"totalStudents":  totalStudents,
		"activePrograms": len(db.Programs),
		"openRequests":   openRequests,
		"resourceViews":  db.Usage.ResourceClicks,
	})
}

// UsageMetrics returns the raw usage counters.
func (mc *MetricsController) UsageMetrics(c *router.Ctx) error {
	db, err := mc.Store.Load()
	if err != nil {
		return utils.InternalServerError(c, "Could not load data")
	}

	return utils.Data(c, router.Map{
		"dailyLogins":        db.Usage.DailyLogins,
		"resourceClicks":     db.Usage.ResourceClicks,
		"programEnrollments": db.Usage.ProgramEnrollments,
		"supportSubmissions": db.Usage.SupportSubmissions,
	})
}

// StudentStats counts the caller's own enrollments and support requests.
func (mc *MetricsController) StudentStats(c *router.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	db, err := mc.Store.Load()
	if err != nil {
		return utils.InternalServerError(c, "Could not load data")
	}

	enrollments := db.EnrollmentsFor(user.Email)
	completed := 0
	for _, entry := range enrollments {
		if entry.Status == models.EnrollmentCompleted {
			completed++
		}
	}

	supportRequests := 0
	for _, request := range db.SupportRequests {
		if request.StudentEmail == user.Email {
			supportRequests++
		}
	}

	return c.JSON(router.Map{
		"enrolledPrograms":  len(enrollments),
		"completedPrograms": completed,
		"supportRequests":   supportRequests,
	})
}

// StudentDashboard returns the per-student dashboard cards.
func (mc *MetricsController) StudentDashboard(c *router.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	db, err := mc.Store.Load()
	if err != nil {
		return utils.InternalServerError(c, "Could not load data")
	}

	pendingSupport := 0
	for _, request := range db.SupportRequests {
		if request.StudentEmail == user.Email && request.Status != models.SupportResolved {
			pendingSupport++
		}
	}

	resourcesViewed := db.Usage.ResourceClicks % 30
	if resourcesViewed < 6 {
		resourcesViewed = 6
	}

	return utils.Data(c, router.Map{
		"resourcesViewed":  resourcesViewed,
		"programsEnrolled": len(db.EnrollmentsFor(user.Email)),
		"pendingSupport":   pendingSupport,
	})
}
