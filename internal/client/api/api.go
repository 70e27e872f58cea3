package api

import (
	"context"

	"github.com/internhub-dev/internhub/internal/client/models"
)

// AuthAPI is the authentication and profile surface of the backend.
type AuthAPI interface {
	ObtainToken(ctx context.Context, username, password string) (models.TokenPair, error)
	Register(ctx context.Context, reg models.Registration) error
	FetchProfile(ctx context.Context) (*models.Profile, error)
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.Profile, error)
}

// InternshipAPI is the posting CRUD surface. Ownership and role rules
// are enforced by the backend; these calls only carry them.
type InternshipAPI interface {
	ListInternships(ctx context.Context, filter models.InternshipFilter) (*models.Page[models.Internship], error)
	GetInternship(ctx context.Context, id int64) (*models.Internship, error)
	CreateInternship(ctx context.Context, draft models.InternshipDraft) (*models.Internship, error)
	UpdateInternship(ctx context.Context, id int64, draft models.InternshipDraft) (*models.Internship, error)
	PatchInternship(ctx context.Context, id int64, patch models.InternshipPatch) (*models.Internship, error)
	DeleteInternship(ctx context.Context, id int64) error
}

// ApplicationAPI is the application surface: students create and track,
// companies review and move status.
type ApplicationAPI interface {
	ListApplications(ctx context.Context) (*models.Page[models.Application], error)
	GetApplication(ctx context.Context, id int64) (*models.Application, error)
	CreateApplication(ctx context.Context, draft models.ApplicationDraft) (*models.Application, error)
	UpdateApplicationStatus(ctx context.Context, id int64, status models.ApplicationStatus) (*models.Application, error)
	MyApplications(ctx context.Context) ([]models.Application, error)
	InternshipApplications(ctx context.Context, internshipID int64) ([]models.Application, error)
}

// API is the full backend surface consumed by the client services.
type API interface {
	AuthAPI
	InternshipAPI
	ApplicationAPI
}

var _ API = (*Client)(nil)
