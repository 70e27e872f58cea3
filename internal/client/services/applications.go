package services

import (
	"context"

	"github.com/internhub-dev/internhub/internal/client/api"
	"github.com/internhub-dev/internhub/internal/client/models"
)

// ApplicationService exposes application operations to the views:
// students submit and track, companies review and move status.
type ApplicationService interface {
	List(ctx context.Context) (*models.Page[models.Application], error)
	Get(ctx context.Context, id int64) (*models.Application, error)
	Apply(ctx context.Context, draft models.ApplicationDraft) (*models.Application, error)
	UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) (*models.Application, error)
	Mine(ctx context.Context) ([]models.Application, error)
	ForInternship(ctx context.Context, internshipID int64) ([]models.Application, error)
}

type applicationService struct {
	client api.ApplicationAPI
}

func NewApplicationService(client api.ApplicationAPI) ApplicationService {
	return &applicationService{client: client}
}

func (s *applicationService) List(ctx context.Context) (*models.Page[models.Application], error) {
	return s.client.ListApplications(ctx)
}

func (s *applicationService) Get(ctx context.Context, id int64) (*models.Application, error) {
	return s.client.GetApplication(ctx, id)
}

func (s *applicationService) Apply(ctx context.Context, draft models.ApplicationDraft) (*models.Application, error) {
	return s.client.CreateApplication(ctx, draft)
}

func (s *applicationService) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) (*models.Application, error) {
	return s.client.UpdateApplicationStatus(ctx, id, status)
}

func (s *applicationService) Mine(ctx context.Context) ([]models.Application, error) {
	return s.client.MyApplications(ctx)
}

func (s *applicationService) ForInternship(ctx context.Context, internshipID int64) ([]models.Application, error) {
	return s.client.InternshipApplications(ctx, internshipID)
}
