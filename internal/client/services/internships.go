package services

import (
	"context"

	"github.com/internhub-dev/internhub/internal/client/api"
	"github.com/internhub-dev/internhub/internal/client/models"
)

// InternshipService exposes posting operations to the views. Calls are
// pass-throughs; ownership and role rules live in the backend.
type InternshipService interface {
	List(ctx context.Context, filter models.InternshipFilter) (*models.Page[models.Internship], error)
	Get(ctx context.Context, id int64) (*models.Internship, error)
	Create(ctx context.Context, draft models.InternshipDraft) (*models.Internship, error)
	Update(ctx context.Context, id int64, draft models.InternshipDraft) (*models.Internship, error)
	Deactivate(ctx context.Context, id int64) (*models.Internship, error)
	Delete(ctx context.Context, id int64) error
}

type internshipService struct {
	client api.InternshipAPI
}

func NewInternshipService(client api.InternshipAPI) InternshipService {
	return &internshipService{client: client}
}

func (s *internshipService) List(ctx context.Context, filter models.InternshipFilter) (*models.Page[models.Internship], error) {
	return s.client.ListInternships(ctx, filter)
}

func (s *internshipService) Get(ctx context.Context, id int64) (*models.Internship, error) {
	return s.client.GetInternship(ctx, id)
}

func (s *internshipService) Create(ctx context.Context, draft models.InternshipDraft) (*models.Internship, error) {
	return s.client.CreateInternship(ctx, draft)
}

func (s *internshipService) Update(ctx context.Context, id int64, draft models.InternshipDraft) (*models.Internship, error) {
	return s.client.UpdateInternship(ctx, id, draft)
}

// Deactivate closes a posting to new applications without deleting it.
func (s *internshipService) Deactivate(ctx context.Context, id int64) (*models.Internship, error) {
	inactive := false
	return s.client.PatchInternship(ctx, id, models.InternshipPatch{IsActive: &inactive})
}

func (s *internshipService) Delete(ctx context.Context, id int64) error {
	return s.client.DeleteInternship(ctx, id)
}
