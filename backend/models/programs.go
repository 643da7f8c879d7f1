package models

// Enrollment statuses.
const (
	EnrollmentInProgress = "IN_PROGRESS"
	EnrollmentCompleted  = "COMPLETED"
)

// Program is a multi-week wellness course a student can enroll in.
type Program struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Duration    string `json:"duration" yaml:"duration"` // free text, e.g. "6 weeks"
}

// Enrollment ties a user to a program. The owning user's email is the key of
// the enrollment map in the snapshot, so it is not repeated here.
type Enrollment struct {
	ProgramID string `json:"programId" yaml:"programId"`
	Status    string `json:"status" yaml:"status"` // IN_PROGRESS, COMPLETED
}

// EnrolledProgram is the read-time join of a Program with the caller's
// enrollment status. Never stored.
type EnrolledProgram struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Status      string `json:"status"`
}

// ProgramListing is a Program annotated with a derived per-user enrolled flag
// for the catalog browse view. The flag is computed at read time, never stored.
type ProgramListing struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Enrolled    bool   `json:"enrolled"`
}
