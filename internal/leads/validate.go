package leads

import (
	"regexp"
	"strings"
)

// local-part "@" domain-with-dot, no whitespace anywhere.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	msgEmailRequired     = "A valid email address is required"
	msgEmailInvalid      = "Email address format is invalid"
	msgFirstNameRequired = "First name is required"
)

// Validate checks a raw submission and either returns a normalized
// create request or the ordered list of every rule violation.
// defaultSource is applied when the submission carries no source.
// Pure function: no side effects, deterministic.
func Validate(sub Submission, defaultSource string) (*CreateLeadRequest, []string) {
	var errs []string

	email := strings.ToLower(strings.TrimSpace(sub.Email))
	if email == "" {
		errs = append(errs, msgEmailRequired)
	} else if !emailPattern.MatchString(email) {
		errs = append(errs, msgEmailInvalid)
	}

	firstName := strings.TrimSpace(sub.FirstName)
	if firstName == "" {
		errs = append(errs, msgFirstNameRequired)
	}

	if len(errs) > 0 {
		return nil, errs
	}

	source := strings.TrimSpace(sub.Source)
	if source == "" {
		source = defaultSource
	}

	return &CreateLeadRequest{
		Email:        email,
		FirstName:    firstName,
		LastName:     strings.TrimSpace(sub.LastName),
		Phone:        strings.TrimSpace(sub.Phone),
		Location:     strings.TrimSpace(sub.Location),
		ProjectType:  strings.TrimSpace(sub.ProjectType),
		Message:      strings.TrimSpace(sub.Message),
		Source:       source,
		CustomerType: strings.TrimSpace(sub.CustomerType),
	}, nil
}
