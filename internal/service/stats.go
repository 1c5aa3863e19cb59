package service

import (
	"context"

	"github.com/jobdeck/jobdeck/internal/core"
	"github.com/jobdeck/jobdeck/internal/domain/model"
)

// StatsServiceOptions groups dependencies for StatsService.
type StatsServiceOptions struct {
	Jobs core.JobRepository
}

// StatsService serves read-only aggregations over postings.
type StatsService struct {
	jobs core.JobRepository
}

// NewStatsService constructs a new StatsService.
func NewStatsService(opts StatsServiceOptions) *StatsService {
	return &StatsService{jobs: opts.Jobs}
}

// CategoryCounts returns posting counts per category, largest first.
// Categories with no postings are absent rather than zero.
func (s *StatsService) CategoryCounts(ctx context.Context) ([]model.CategoryCount, error) {
	counts, err := s.jobs.CategoryCounts(ctx)
	if err != nil {
		return nil, err
	}
	if counts == nil {
		counts = []model.CategoryCount{}
	}
	return counts, nil
}

// CompanyDirectory returns one row per company with its posting count and
// the logo of its earliest posting.
func (s *StatsService) CompanyDirectory(ctx context.Context) ([]model.CompanyListing, error) {
	companies, err := s.jobs.CompanyDirectory(ctx)
	if err != nil {
		return nil, err
	}
	if companies == nil {
		companies = []model.CompanyListing{}
	}
	return companies, nil
}
