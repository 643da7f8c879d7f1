package models

// Roles assignable to an account.
const (
	RoleStudent = "STUDENT"
	RoleAdmin   = "ADMIN"
)

type User struct {
	Email    string `json:"email" yaml:"email"`
	Password string `json:"password" yaml:"password"`
	Role     string `json:"role" yaml:"role"` // STUDENT, ADMIN
	Name     string `json:"name" yaml:"name"`
}

// SessionProfile is the identity resolved from a verified bearer token.
// It is also what gets persisted as the "current session" record after login.
type SessionProfile struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name"`
}

func (p SessionProfile) IsAdmin() bool {
	return p.Role == RoleAdmin
}
