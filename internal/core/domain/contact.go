package domain

import "errors"

var ErrContactNotFound = errors.New("contact not found")

// SubmittedAtLayout matches the ISO-8601 form browsers emit from
// Date.prototype.toISOString, so existing contact files stay readable.
const SubmittedAtLayout = "2006-01-02T15:04:05.000Z"

// Contact is a visitor submission from the public contact form.
// Records are never mutated after creation.
type Contact struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Message     string `json:"message"`
	SubmittedAt string `json:"date"`
}

// ContactFields carries the visitor-supplied part of a Contact.
// Missing form fields arrive as empty strings.
type ContactFields struct {
	Name    string
	Email   string
	Phone   string
	Message string
}
