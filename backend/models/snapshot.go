package models

// MoodEntry is an append-only mood check-in. No handler reads these back; they
// exist only as a usage trail.
type MoodEntry struct {
	ID        string `json:"id" yaml:"id"`
	Mood      string `json:"mood" yaml:"mood"`
	Email     string `json:"email" yaml:"email"`
	CreatedAt string `json:"createdAt" yaml:"createdAt"`
}

// UsageCounters are monotonically incremented by the handlers that own them.
type UsageCounters struct {
	DailyLogins        int `json:"dailyLogins" yaml:"dailyLogins"`
	ResourceClicks     int `json:"resourceClicks" yaml:"resourceClicks"`
	ProgramEnrollments int `json:"programEnrollments" yaml:"programEnrollments"`
	SupportSubmissions int `json:"supportSubmissions" yaml:"supportSubmissions"`
}

// Snapshot is the full durable state of the portal at one instant. Every
// handler loads the whole snapshot, mutates its local copy and saves it back;
// nothing is updated in place.
type Snapshot struct {
	Users           []User                  `json:"users" yaml:"users"`
	Resources       []CatalogResource       `json:"resources" yaml:"resources"`
	Programs        []Program               `json:"programs" yaml:"programs"`
	Enrollments     map[string][]Enrollment `json:"enrollments" yaml:"enrollments"`
	SupportRequests []SupportRequest        `json:"supportRequests" yaml:"supportRequests"`
	Moods           []MoodEntry             `json:"moods" yaml:"moods"`
	Usage           UsageCounters           `json:"usage" yaml:"usage"`
}

// EnrollmentsFor returns the user's enrollment list, never nil.
func (s *Snapshot) EnrollmentsFor(email string) []Enrollment {
	if s.Enrollments == nil {
		return nil
	}
	return s.Enrollments[email]
}

// FindProgram returns the program with the given id, or nil.
func (s *Snapshot) FindProgram(id string) *Program {
	for i := range s.Programs {
		if s.Programs[i].ID == id {
			return &s.Programs[i]
		}
	}
	return nil
}
