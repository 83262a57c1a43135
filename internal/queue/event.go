// Package queue defines message payloads exchanged over the message broker.
package queue

// FormSubmittedEvent is published after a form row is committed. It carries
// enough information for downstream consumers to log or notify without
// querying the primary database. FormType is "wheel-specification" or
// "bogie-checksheet".
type FormSubmittedEvent struct {
	FormType    string `json:"form_type"`
	FormNumber  string `json:"form_number"`
	SubmittedBy string `json:"submitted_by"`
	Status      string `json:"status"`
	SubmittedAt string `json:"submitted_at"`
}

// Queue name used for form submission events.
const FormSubmittedQueue = "form.submitted"
