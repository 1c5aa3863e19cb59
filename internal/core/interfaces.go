package core

import (
	"context"

	"github.com/google/uuid"

	"github.com/jobdeck/jobdeck/internal/domain/model"
)

// This file contains repository interface definitions (ports in hexagonal architecture).
// These interfaces define the contracts between the service layer and data layer.
// Service implementations should depend on these interfaces, not concrete implementations.

// JobRepository defines the interface for job posting data operations.
type JobRepository interface {
	Create(ctx context.Context, req *model.CreateJobRequest) (*model.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Job, error)
	List(ctx context.Context, opts model.JobsListOptions) ([]*model.Job, error)
	Count(ctx context.Context, opts model.JobsListOptions) (int, error)
	Update(ctx context.Context, id uuid.UUID, req model.UpdateJobRequest) (*model.Job, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CategoryCounts(ctx context.Context) ([]model.CategoryCount, error)
	CompanyDirectory(ctx context.Context) ([]model.CompanyListing, error)
}

// ApplicationRepository defines the interface for application data operations.
type ApplicationRepository interface {
	Create(ctx context.Context, req *model.CreateApplicationRequest) (*model.Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Application, error)
	List(ctx context.Context, limit, offset int) ([]*model.Application, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]*model.Application, error)
	Count(ctx context.Context) (int, error)
}

// UserRepository defines the interface for account data operations.
type UserRepository interface {
	Create(ctx context.Context, fullName, email string, userType model.UserType, passwordHash string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}
