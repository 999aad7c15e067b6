package domain

import "time"

// Submission is one contact form submission as persisted in the managed
// store. The ID is the server-assigned creation time in epoch milliseconds;
// clients never supply it.
type Submission struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// SubmitRequest carries the fields accepted from the contact form.
// Subject is optional.
type SubmitRequest struct {
	Name    string
	Email   string
	Subject string
	Message string
}
