package domain

import "errors"

var (
	ErrSubmissionNotFound    = errors.New("contact submission not found")
	ErrMissingRequiredFields = errors.New("name, email and message are required")
)
