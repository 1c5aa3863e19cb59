// Package devseed populates a development database with sample postings
// and accounts. It is idempotent enough for repeated local runs: seeding
// skips records that already exist.
package devseed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/jobdeck/jobdeck/internal/data"
	"github.com/jobdeck/jobdeck/internal/domain/model"
)

// Services bundles the dependencies needed for development seeding.
type Services struct {
	DB    *sql.DB
	jobs  *data.JobRepo
	users *data.UserRepo
}

// NewServices constructs the repositories used for seeding.
func NewServices(db *sql.DB) Services {
	return Services{
		DB:    db,
		jobs:  data.NewJobRepo(db),
		users: data.NewUserRepo(db),
	}
}

// Run executes the development seeding workflow against the provided DB.
func Run(ctx context.Context, svcs Services, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	if err := seedEmployer(ctx, svcs, logger); err != nil {
		return err
	}
	return seedJobs(ctx, svcs, logger)
}

func seedEmployer(ctx context.Context, svcs Services, logger *slog.Logger) error {
	const email = "employer@jobdeck.local"

	hash, err := bcrypt.GenerateFromPassword([]byte("changeme"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	_, err = svcs.users.Create(ctx, "Dev Employer", email, model.UserTypeEmployer, string(hash))
	if err != nil {
		if errors.Is(err, data.ErrEmailExists) {
			logger.InfoContext(ctx, "seed employer already exists", "email", email)
			return nil
		}
		return fmt.Errorf("seed employer: %w", err)
	}

	logger.InfoContext(ctx, "seeded employer account", "email", email)
	return nil
}

func seedJobs(ctx context.Context, svcs Services, logger *slog.Logger) error {
	seeded := 0
	for i := range sampleJobs {
		req := sampleJobs[i]
		if _, err := svcs.jobs.Create(ctx, &req); err != nil {
			return fmt.Errorf("seed job %q: %w", req.Title, err)
		}
		seeded++
	}
	logger.InfoContext(ctx, "seeded sample jobs", "count", seeded)
	return nil
}

var sampleJobs = []model.CreateJobRequest{
	{
		Title:       "Senior Backend Engineer",
		Company:     "Acme Cloud",
		CompanyLogo: "https://logo.jobdeck.local/acme.png",
		Location:    "Remote",
		Category:    string(model.CategoryEngineering),
		Type:        string(model.TypeRemote),
		Description: "Design and operate the services behind our customer APIs.",
		Salary:      "$150k - $180k",
		Tags:        []string{"go", "postgres", "kubernetes"},
		Featured:    true,
	},
	{
		Title:       "Product Designer",
		Company:     "Brightside Labs",
		CompanyLogo: "https://logo.jobdeck.local/brightside.png",
		Location:    "Berlin, Germany",
		Category:    string(model.CategoryDesign),
		Type:        string(model.TypeFullTime),
		Description: "Own the end-to-end design of our mobile experience.",
		Tags:        []string{"figma", "mobile"},
	},
	{
		Title:       "Growth Marketing Manager",
		Company:     "Acme Cloud",
		CompanyLogo: "https://logo.jobdeck.local/acme.png",
		Location:    "New York, NY",
		Category:    string(model.CategoryMarketing),
		Type:        string(model.TypeFullTime),
		Description: "Run paid acquisition and lifecycle campaigns.",
	},
	{
		Title:       "Finance Intern",
		Company:     "Ledgerworks",
		CompanyLogo: "https://logo.jobdeck.local/ledgerworks.png",
		Location:    "London, UK",
		Category:    string(model.CategoryFinance),
		Type:        string(model.TypeInternship),
		Description: "Support the controlling team through quarter close.",
	},
}
