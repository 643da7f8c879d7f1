package models

// Support request statuses.
const (
	SupportOpen       = "OPEN"
	SupportInProgress = "IN_PROGRESS"
	SupportResolved   = "RESOLVED"
)

// SupportCategoryDefault is applied when a request omits its category.
const SupportCategoryDefault = "GENERAL"

type SupportRequest struct {
	ID           string `json:"id" yaml:"id"`
	Subject      string `json:"subject" yaml:"subject"`
	Category     string `json:"category" yaml:"category"` // free text, default GENERAL
	Message      string `json:"message" yaml:"message"`
	Status       string `json:"status" yaml:"status"` // OPEN, IN_PROGRESS, RESOLVED
	StudentEmail string `json:"studentEmail" yaml:"studentEmail"`
}

// ValidSupportStatus reports whether s is one of the three allowed statuses.
func ValidSupportStatus(s string) bool {
	switch s {
	case SupportOpen, SupportInProgress, SupportResolved:
		return true
	}
	return false
}
