package routes

import (
	"wellness/backend/config"
	"wellness/backend/controllers"
	"wellness/backend/middleware"
	"wellness/backend/router"
	"wellness/backend/store"
)

// SetupRoutes registers the full simulated API surface. Registration order is
// the match order: literal paths are registered before wildcard siblings so
// /programs/my wins over /programs/{id} style patterns.
func SetupRoutes(r *router.Router, st *store.Store, sessions *store.SessionStore, cfg *config.Config) {
	authController := controllers.NewAuthController(st, sessions, cfg)
	resourcesController := controllers.NewResourcesController(st, cfg)
	programsController := controllers.NewProgramsController(st, cfg)
	enrollmentsController := controllers.NewEnrollmentsController(st, cfg)
	supportController := controllers.NewSupportController(st, cfg)
	metricsController := controllers.NewMetricsController(st, cfg)
	moodController := controllers.NewMoodController(st, cfg)

	requireUser := middleware.RequireUser(cfg)
	requireAdmin := middleware.RequireAdmin(cfg)
	optionalUser := middleware.OptionalUser(cfg)

	// Auth routes
	r.Post("/auth/login", authController.Login)
	r.Post("/auth/register", authController.Register)

	// Student-facing catalog
	r.Get("/resources", optionalUser(resourcesController.List))
	r.Get("/resources/recent", optionalUser(resourcesController.Recent))
	r.Get("/programs", optionalUser(programsController.Browse))
	r.Get("/programs/my", requireUser(enrollmentsController.MyPrograms))
	r.Post("/programs/{id}/enroll", requireUser(enrollmentsController.Enroll))

	// Student dashboard
	r.Get("/student/enrolled", requireUser(enrollmentsController.EnrolledSummary))
	r.Get("/student/stats", requireUser(metricsController.StudentStats))
	r.Get("/student/dashboard-stats", requireUser(metricsController.StudentDashboard))
	r.Post("/student/mood", optionalUser(moodController.Save))

	// Support
	r.Post("/support-requests", requireUser(supportController.Create))

	// Admin
	r.Get("/admin/support-requests", requireAdmin(supportController.List))
	r.Patch("/admin/support-requests/{id}", requireAdmin(supportController.UpdateStatus))
	r.Get("/admin/resources", requireAdmin(resourcesController.ListAll))
	r.Post("/admin/resources", requireAdmin(resourcesController.Create))
	r.Put("/admin/resources/{id}", requireAdmin(resourcesController.Update))
	r.Delete("/admin/resources/{id}", requireAdmin(resourcesController.Delete))
	r.Get("/admin/programs", requireAdmin(programsController.ListAll))
	r.Post("/admin/programs", requireAdmin(programsController.Create))
	r.Put("/admin/programs/{id}", requireAdmin(programsController.Update))
	r.Delete("/admin/programs/{id}", requireAdmin(programsController.Delete))
	r.Get("/admin/dashboard-stats", requireAdmin(metricsController.AdminDashboard))
	r.Get("/admin/metrics", requireAdmin(metricsController.UsageMetrics))
}
