package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jobdeck/jobdeck/internal/data/database"
	"github.com/jobdeck/jobdeck/internal/data/pgxutil"
	"github.com/jobdeck/jobdeck/internal/domain/model"
)

// jobColumns is the canonical select list for the jobs table. The type
// column is quoted because it collides with a keyword.
const jobColumns = `id, title, company, company_logo, location, category, "type", description, requirements, salary, tags, featured, created_at, updated_at`

// JobRepo provides database operations for job postings.
type JobRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewJobRepo creates a new JobRepo with real time provider.
func NewJobRepo(db *sql.DB) *JobRepo {
	return &JobRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewJobRepoWithTimeProvider creates a new JobRepo with a custom time provider (useful for tests).
func NewJobRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *JobRepo {
	return &JobRepo{DB: db, timeProvider: tp}
}

// Create inserts a new job posting.
func (r *JobRepo) Create(ctx context.Context, req *model.CreateJobRequest) (*model.Job, error) {
	if req == nil {
		return nil, errors.New("create job request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := r.timeProvider.Now().UTC()
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	var out model.Job
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO jobs (
				title, company, company_logo, location, category, "type", description, requirements, salary, tags, featured, created_at, updated_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12
			) RETURNING `+jobColumns,
			req.Title,
			req.Company,
			req.CompanyLogo,
			req.Location,
			req.Category,
			req.Type,
			req.Description,
			req.Requirements,
			req.Salary,
			tags,
			req.Featured,
			now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Job])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return &out, nil
}

// GetByID retrieves a job posting by ID.
func (r *JobRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	var out model.Job
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Job])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job by ID: %w", err)
	}
	return &out, nil
}

// List retrieves job postings matching the given filters, featured first,
// newest first within each group.
func (r *JobRepo) List(ctx context.Context, opts model.JobsListOptions) ([]*model.Job, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = model.DefaultPageSize
	}
	offset := max(opts.Offset, 0)

	queryOpts := database.NewListQueryOptions("jobs",
		database.WithConditions(buildJobConditions(opts)...),
		database.WithOrderBy("featured", "DESC"),
		database.WithOrderBy("created_at", "DESC"),
		database.WithOrderBy("id", "ASC"),
		database.WithLimit(limit),
		database.WithOffset(offset),
	)
	query, args := database.BuildListQuery(queryOpts)

	var rowsOut []model.Job
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Job])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	res := make([]*model.Job, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Count returns the number of job postings matching the given filters.
func (r *JobRepo) Count(ctx context.Context, opts model.JobsListOptions) (int, error) {
	queryOpts := database.NewListQueryOptions("jobs",
		database.WithConditions(buildJobConditions(opts)...),
		database.WithCountOnly(),
	)
	query, args := database.BuildListQuery(queryOpts)

	var count int
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, query, args...).Scan(&count)
	}); err != nil {
		return 0, fmt.Errorf("failed to count jobs: %w", err)
	}
	return count, nil
}

// buildJobConditions translates typed filter options into WHERE conditions.
// Filters compose as a conjunction; the order of terms does not change the
// result set.
func buildJobConditions(opts model.JobsListOptions) []database.Condition {
	conds := make([]database.Condition, 0, 6)

	if s := strings.TrimSpace(opts.Search); s != "" {
		conds = append(conds, database.WhereRawCond(
			`(title ILIKE $1 OR company ILIKE $1 OR description ILIKE $1)`,
			"%"+s+"%",
		))
	}
	if opts.Category != "" {
		conds = append(conds, database.WhereCond("category", database.Equal, opts.Category))
	}
	if opts.Type != "" {
		conds = append(conds, database.WhereCond("type", database.Equal, opts.Type))
	}
	if opts.Company != "" {
		conds = append(conds, database.WhereCond("company", database.ILike, "%"+opts.Company+"%"))
	}
	if opts.Location != "" {
		conds = append(conds, database.WhereCond("location", database.ILike, "%"+opts.Location+"%"))
	}
	if opts.Featured != nil {
		conds = append(conds, database.WhereCond("featured", database.Equal, *opts.Featured))
	}
	return conds
}

// Update applies a partial update to a job posting.
func (r *JobRepo) Update(ctx context.Context, id uuid.UUID, req model.UpdateJobRequest) (*model.Job, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	setClause, args := r.buildUpdateClause(req)
	args = append(args, id)
	query := `UPDATE jobs SET ` + setClause + ` WHERE id = $` + strconv.Itoa(len(args)) +
		` RETURNING ` + jobColumns

	var out model.Job
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Job])
		return e
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return &out, nil
}

// buildUpdateClause builds the SQL SET clause and args for a partial update.
func (r *JobRepo) buildUpdateClause(req model.UpdateJobRequest) (string, []any) {
	setParts := make([]string, 0, 12)
	args := make([]any, 0, 12)
	nextIdx := func() int { return len(args) + 1 }

	setString := func(column string, v *string) {
		if v != nil {
			setParts = append(setParts, fmt.Sprintf("%s = $%d", column, nextIdx()))
			args = append(args, *v)
		}
	}
	setString("title", req.Title)
	setString("company", req.Company)
	setString("company_logo", req.CompanyLogo)
	setString("location", req.Location)
	setString("category", req.Category)
	setString(`"type"`, req.Type)
	setString("description", req.Description)
	setString("requirements", req.Requirements)
	setString("salary", req.Salary)
	if req.Tags != nil {
		setParts = append(setParts, fmt.Sprintf("tags = $%d", nextIdx()))
		args = append(args, *req.Tags)
	}
	if req.Featured != nil {
		setParts = append(setParts, fmt.Sprintf("featured = $%d", nextIdx()))
		args = append(args, *req.Featured)
	}

	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())

	return strings.Join(setParts, ", "), args
}

// Delete removes a job posting. Applications referencing it keep their rows
// with the job reference cleared by the schema.
func (r *JobRepo) Delete(ctx context.Context, id uuid.UUID) error {
	var affected int64
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		tag, err := conn.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
		if err != nil {
			return err
		}
		affected = tag.RowsAffected()
		return nil
	}); err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if affected == 0 {
		return ErrJobNotFound
	}
	return nil
}

// CategoryCounts aggregates posting counts per category, largest first.
func (r *JobRepo) CategoryCounts(ctx context.Context) ([]model.CategoryCount, error) {
	var out []model.CategoryCount
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT category, COUNT(*) AS count
			FROM jobs
			GROUP BY category
			ORDER BY count DESC, category ASC
		`)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.CategoryCount])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to aggregate category counts: %w", err)
	}
	return out, nil
}

// CompanyDirectory aggregates postings into one row per company. The logo
// comes from the company's earliest posting so repeated calls agree.
func (r *JobRepo) CompanyDirectory(ctx context.Context) ([]model.CompanyListing, error) {
	var out []model.CompanyListing
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT
				company AS name,
				(array_agg(company_logo ORDER BY created_at ASC, id ASC))[1] AS logo,
				COUNT(*) AS job_count
			FROM jobs
			GROUP BY company
			ORDER BY job_count DESC, name ASC
		`)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.CompanyListing])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to build company directory: %w", err)
	}
	return out, nil
}
