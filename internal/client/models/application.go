package models

import "time"

// ApplicationStatus is the review pipeline state of an application.
// Transitions are owned by the backend; the client only requests them.
type ApplicationStatus string

const (
	StatusPending     ApplicationStatus = "pending"
	StatusReviewing   ApplicationStatus = "reviewing"
	StatusShortlisted ApplicationStatus = "shortlisted"
	StatusRejected    ApplicationStatus = "rejected"
	StatusAccepted    ApplicationStatus = "accepted"
)

// Valid reports whether s is a status the backend accepts.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusReviewing, StatusShortlisted, StatusRejected, StatusAccepted:
		return true
	}
	return false
}

// Application is an application record as returned by the backend.
type Application struct {
	ID          int64             `json:"id"`
	Internship  *Internship       `json:"internship,omitempty"`
	Student     *Profile          `json:"student,omitempty"`
	CoverLetter string            `json:"cover_letter"`
	CVCopy      string            `json:"cv_copy"`
	Status      ApplicationStatus `json:"status"`
	AppliedAt   time.Time         `json:"applied_at"`
}

// ApplicationDraft is the create request: target internship, cover
// letter, and an optional CV attachment sent as multipart form data.
type ApplicationDraft struct {
	InternshipID int64
	CoverLetter  string
	CV           *FileUpload
}

// FileUpload is an in-memory file attachment for multipart requests.
type FileUpload struct {
	Name    string
	Content []byte
}
