package store

import (
	"os"

	"gopkg.in/yaml.v3"

	"wellness/backend/models"
)

// DefaultSnapshot builds the dataset the portal starts with on first access:
// two demo accounts, a small resource library, three programs, one seeded
// enrollment pair and one open support request.
func DefaultSnapshot() *models.Snapshot {
	return &models.Snapshot{
		Users: []models.User{
			{
				Email:    "student@wellness.local",
				Password: "Student@123",
				Role:     models.RoleStudent,
				Name:     "Demo Student",
			},
			{
				Email:    "admin@wellness.local",
				Password: "Admin@123",
				Role:     models.RoleAdmin,
				Name:     "Demo Admin",
			},
		},
		Resources: []models.CatalogResource{
			{
				ID:          "r1",
				Title:       "Managing Stress During Exams",
				Description: "Simple breathing and planning methods to reduce exam stress.",
				Category:    models.CategoryMental,
				URL:         "#",
			},
			{
				ID:          "r2",
				Title:       "10-Minute Dorm Workout",
				Description: "No-equipment workout routine designed for busy students.",
				Category:    models.CategoryFitness,
				URL:         "#",
			},
			{
				ID:          "r3",
				Title:       "Smart Meal Prep on Budget",
				Description: "Weekly nutrition strategy for healthy and affordable eating.",
				Category:    models.CategoryNutrition,
				URL:         "#",
			},
			{
				ID:          "r4",
				Title:       "Sleep Recovery Guide",
				Description: "Build better sleep habits and recover from burnout patterns.",
				Category:    models.CategoryMental,
				URL:         "#",
			},
		},
		Programs: []models.Program{
			{
				ID:          "p1",
				Title:       "Mindfulness Basics",
				Description: "Guided mindfulness sessions for better focus and calm.",
				Duration:    "4 weeks",
			},
			{
				ID:          "p2",
				Title:       "Campus Fitness Kickstart",
				Description: "Starter fitness plan with weekly activity goals.",
				Duration:    "8 weeks",
			},
			{
				ID:          "p3",
				Title:       "Balanced Nutrition Habits",
				Description: "Practical nutrition planning for student schedules.",
				Duration:    "6 weeks",
			},
		},
		Enrollments: map[string][]models.Enrollment{
			"student@wellness.local": {
				{ProgramID: "p1", Status: models.EnrollmentInProgress},
				{ProgramID: "p2", Status: models.EnrollmentCompleted},
			},
		},
		SupportRequests: []models.SupportRequest{
			{
				ID:           "s1",
				Subject:      "Need counseling session",
				Category:     models.CategoryMental,
				Message:      "I am feeling overwhelmed and need to talk to someone.",
				Status:       models.SupportOpen,
				StudentEmail: "student@wellness.local",
			},
		},
		Moods: []models.MoodEntry{},
		Usage: models.UsageCounters{
			DailyLogins:        22,
			ResourceClicks:     138,
			ProgramEnrollments: 17,
			SupportSubmissions: 9,
		},
	}
}

// LoadSeedFile reads an alternative seed dataset from a YAML file, so demo
// deployments can start from their own fixture instead of the built-in one.
func LoadSeedFile(path string) (*models.Snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var snap models.Snapshot
	if err := yaml.Unmarshal(raw, &snap); err != nil {
		return nil, err
	}
	if snap.Enrollments == nil {
		snap.Enrollments = make(map[string][]models.Enrollment)
	}
	return &snap, nil
}
