package service

import (
	"context"
	"errors"

	"github.com/jobdeck/jobdeck/internal/core"
	"github.com/jobdeck/jobdeck/internal/data"
	"github.com/jobdeck/jobdeck/internal/domain/model"
	apperrors "github.com/jobdeck/jobdeck/internal/errors"
)

// JobServiceOptions groups dependencies for JobService.
type JobServiceOptions struct {
	Jobs core.JobRepository
}

// JobService orchestrates job posting reads and writes.
type JobService struct {
	jobs core.JobRepository
}

// NewJobService constructs a new JobService.
func NewJobService(opts JobServiceOptions) *JobService {
	return &JobService{jobs: opts.Jobs}
}

// JobsPage is one page of postings together with its pagination envelope.
type JobsPage struct {
	Jobs       []*model.Job     `json:"jobs"`
	Pagination model.Pagination `json:"pagination"`
}

// List returns one page of postings matching the raw query parameters.
// The page is shaped from the same filter set as the total, so pages stays
// consistent with the rows returned.
func (s *JobService) List(ctx context.Context, params model.JobsListParams) (*JobsPage, error) {
	if errs := params.Validate(); errs != nil {
		return nil, errs
	}
	opts, pr := params.Parse()

	total, err := s.jobs.Count(ctx, opts)
	if err != nil {
		return nil, err
	}

	jobs, err := s.jobs.List(ctx, opts)
	if err != nil {
		return nil, err
	}
	if jobs == nil {
		jobs = []*model.Job{}
	}

	return &JobsPage{
		Jobs:       jobs,
		Pagination: model.NewPagination(total, pr),
	}, nil
}

// GetByID retrieves one posting. A malformed identifier is a client
// mistake, not a miss.
func (s *JobService) GetByID(ctx context.Context, id string) (*model.Job, error) {
	jobID, err := model.ParseJobID(id)
	if err != nil {
		return nil, apperrors.ValidationField("id", "Invalid job ID")
	}

	job, getErr := s.jobs.GetByID(ctx, jobID)
	if getErr != nil {
		if errors.Is(getErr, data.ErrJobNotFound) {
			return nil, apperrors.NotFound("Job not found")
		}
		return nil, getErr
	}
	return job, nil
}

// Create publishes a new posting.
func (s *JobService) Create(ctx context.Context, req *model.CreateJobRequest) (*model.Job, error) {
	if req == nil {
		return nil, apperrors.Validation("request body is required")
	}
	req.Normalize()
	if errs := req.Validate(); errs != nil {
		return nil, errs
	}
	return s.jobs.Create(ctx, req)
}

// Update applies a partial update to a posting.
func (s *JobService) Update(ctx context.Context, id string, req model.UpdateJobRequest) (*model.Job, error) {
	jobID, err := model.ParseJobID(id)
	if err != nil {
		return nil, apperrors.ValidationField("id", "Invalid job ID")
	}

	req.Normalize()
	if errs := req.Validate(); errs != nil {
		return nil, errs
	}

	job, updateErr := s.jobs.Update(ctx, jobID, req)
	if updateErr != nil {
		if errors.Is(updateErr, data.ErrJobNotFound) {
			return nil, apperrors.NotFound("Job not found")
		}
		return nil, updateErr
	}
	return job, nil
}

// Delete removes a posting. Applications submitted against it survive with
// their job reference cleared.
func (s *JobService) Delete(ctx context.Context, id string) error {
	jobID, err := model.ParseJobID(id)
	if err != nil {
		return apperrors.ValidationField("id", "Invalid job ID")
	}

	if delErr := s.jobs.Delete(ctx, jobID); delErr != nil {
		if errors.Is(delErr, data.ErrJobNotFound) {
			return apperrors.NotFound("Job not found")
		}
		return delErr
	}
	return nil
}
