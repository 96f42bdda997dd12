package models

// Lookup outcome constants
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
	OutcomeInvalid  = "invalid"
)

// LookupRequest is the body of an email check.
type LookupRequest struct {
	Email string `json:"email" form:"email" validate:"required"`
}

// LookupResponse reports whether the email was found.
type LookupResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// CheckEmailPath is the HTTP path of the email lookup endpoint.
const CheckEmailPath = "/api/check-email"
