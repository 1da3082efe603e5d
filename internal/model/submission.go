package model

import "time"

// AppointmentStatusPending is the status every appointment request
// carries at creation. Status transitions happen outside this API.
const AppointmentStatusPending = "pending"

// ContactMessage is a visitor-submitted message from the contact form.
// Submissions are append-only: once recorded they are never read back,
// updated, or deleted through the public API.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// AppointmentRequest is a visitor-submitted request for a consultation
// slot. Date and Time are kept as the validated wire strings
// (YYYY-MM-DD and HH:MM) rather than time.Time so the stored record
// matches what the visitor typed. Message may be empty.
type AppointmentRequest struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
