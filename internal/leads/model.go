package leads

import (
	"strings"
	"time"
)

// Known origin channels. Source is an open enumeration: unknown values are
// stored as-is, these are only the defaults applied per endpoint.
const (
	SourceContactPage  = "contact_page"
	SourceGuideLanding = "guide-landing-page"
)

// Lead represents a stored inquiry from the marketing site.
// Records are append-only: id and created_at are assigned by the store and
// never change afterwards.
type Lead struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Location     string    `json:"location,omitempty"`
	ProjectType  string    `json:"projectType,omitempty"`
	Message      string    `json:"message,omitempty"`
	Source       string    `json:"source"`
	CustomerType string    `json:"customerType,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Name returns the lead's display name, first and last joined.
func (l *Lead) Name() string {
	return strings.TrimSpace(strings.TrimSpace(l.FirstName) + " " + strings.TrimSpace(l.LastName))
}

// Submission is the raw request body from a site form, before validation.
type Submission struct {
	Email        string `json:"email"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Phone        string `json:"phone"`
	Location     string `json:"location"`
	ProjectType  string `json:"projectType"`
	Message      string `json:"message"`
	Source       string `json:"source"`
	CustomerType string `json:"customerType"`
}

// CreateLeadRequest is a validated, normalized submission ready for storage.
// Only the Validate path produces one.
type CreateLeadRequest struct {
	Email        string
	FirstName    string
	LastName     string
	Phone        string
	Location     string
	ProjectType  string
	Message      string
	Source       string
	CustomerType string
}
