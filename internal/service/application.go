package service

import (
	"context"
	"errors"

	"github.com/jobdeck/jobdeck/internal/core"
	"github.com/jobdeck/jobdeck/internal/data"
	"github.com/jobdeck/jobdeck/internal/domain/model"
	apperrors "github.com/jobdeck/jobdeck/internal/errors"
)

// ApplicationServiceOptions groups dependencies for ApplicationService.
type ApplicationServiceOptions struct {
	Applications core.ApplicationRepository
}

// ApplicationService orchestrates application intake and listing.
// Applications are immutable once accepted.
type ApplicationService struct {
	applications core.ApplicationRepository
}

// NewApplicationService constructs a new ApplicationService.
func NewApplicationService(opts ApplicationServiceOptions) *ApplicationService {
	return &ApplicationService{applications: opts.Applications}
}

// Submit validates and persists an application. Submitting against a
// posting that no longer exists persists nothing and reports a miss.
func (s *ApplicationService) Submit(ctx context.Context, req *model.CreateApplicationRequest) (*model.Application, error) {
	if req == nil {
		return nil, apperrors.Validation("request body is required")
	}
	req.Normalize()
	if errs := req.Validate(); errs != nil {
		return nil, errs
	}

	app, err := s.applications.Create(ctx, req)
	if err != nil {
		if errors.Is(err, data.ErrJobNotFound) {
			return nil, apperrors.NotFound("Job not found")
		}
		return nil, err
	}
	return app, nil
}

// List returns one page of applications, newest first, with total count.
func (s *ApplicationService) List(ctx context.Context, pr model.PageRequest) (*ApplicationsPage, error) {
	total, err := s.applications.Count(ctx)
	if err != nil {
		return nil, err
	}

	apps, err := s.applications.List(ctx, pr.Limit, pr.Offset())
	if err != nil {
		return nil, err
	}
	if apps == nil {
		apps = []*model.Application{}
	}

	return &ApplicationsPage{
		Applications: apps,
		Pagination:   model.NewPagination(total, pr),
	}, nil
}

// ApplicationsPage is one page of applications with its pagination envelope.
type ApplicationsPage struct {
	Applications []*model.Application `json:"applications"`
	Pagination   model.Pagination     `json:"pagination"`
}

// ListByJob returns every application submitted against one posting,
// newest first.
func (s *ApplicationService) ListByJob(ctx context.Context, jobID string) ([]*model.Application, error) {
	id, err := model.ParseJobID(jobID)
	if err != nil {
		return nil, apperrors.ValidationField("jobId", "Invalid job ID")
	}

	apps, listErr := s.applications.ListByJob(ctx, id)
	if listErr != nil {
		return nil, listErr
	}
	if apps == nil {
		apps = []*model.Application{}
	}
	return apps, nil
}
