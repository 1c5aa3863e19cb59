package model

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jobdeck/jobdeck/internal/validation"
)

const (
	maxTitleLen = 100
)

// JobCategory is the closed set of categories a posting can belong to.
type JobCategory string

const (
	CategoryDesign         JobCategory = "Design"
	CategorySales          JobCategory = "Sales"
	CategoryMarketing      JobCategory = "Marketing"
	CategoryFinance        JobCategory = "Finance"
	CategoryTechnology     JobCategory = "Technology"
	CategoryEngineering    JobCategory = "Engineering"
	CategoryBusiness       JobCategory = "Business"
	CategoryHumanResources JobCategory = "Human Resources"
)

// JobCategories returns every valid category in display order.
func JobCategories() []string {
	return []string{
		string(CategoryDesign),
		string(CategorySales),
		string(CategoryMarketing),
		string(CategoryFinance),
		string(CategoryTechnology),
		string(CategoryEngineering),
		string(CategoryBusiness),
		string(CategoryHumanResources),
	}
}

// Valid reports whether the category is a member of the closed enumeration.
func (c JobCategory) Valid() bool {
	for _, v := range JobCategories() {
		if string(c) == v {
			return true
		}
	}
	return false
}

// JobType is the closed set of employment types.
type JobType string

const (
	TypeFullTime   JobType = "Full Time"
	TypePartTime   JobType = "Part Time"
	TypeContract   JobType = "Contract"
	TypeInternship JobType = "Internship"
	TypeRemote     JobType = "Remote"
)

// JobTypes returns every valid employment type.
func JobTypes() []string {
	return []string{
		string(TypeFullTime),
		string(TypePartTime),
		string(TypeContract),
		string(TypeInternship),
		string(TypeRemote),
	}
}

// Valid reports whether the type is a member of the closed enumeration.
func (t JobType) Valid() bool {
	for _, v := range JobTypes() {
		if string(t) == v {
			return true
		}
	}
	return false
}

// Job represents a published job posting.
type Job struct {
	ID           uuid.UUID   `json:"id"           db:"id"`
	Title        string      `json:"title"        db:"title"`
	Company      string      `json:"company"      db:"company"`
	CompanyLogo  string      `json:"companyLogo"  db:"company_logo"`
	Location     string      `json:"location"     db:"location"`
	Category     JobCategory `json:"category"     db:"category"`
	Type         JobType     `json:"type"         db:"type"`
	Description  string      `json:"description"  db:"description"`
	Requirements string      `json:"requirements" db:"requirements"`
	Salary       string      `json:"salary"       db:"salary"`
	Tags         []string    `json:"tags"         db:"tags"`
	Featured     bool        `json:"featured"     db:"featured"`
	CreatedAt    time.Time   `json:"createdAt"    db:"created_at"`
	UpdatedAt    time.Time   `json:"updatedAt"    db:"updated_at"`
}

// CreateJobRequest carries the payload for creating a posting.
type CreateJobRequest struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	CompanyLogo  string   `json:"companyLogo"`
	Location     string   `json:"location"`
	Category     string   `json:"category"`
	Type         string   `json:"type,omitempty"`
	Description  string   `json:"description"`
	Requirements string   `json:"requirements,omitempty"`
	Salary       string   `json:"salary,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	Featured     bool     `json:"featured,omitempty"`
}

// Normalize trims string fields and applies defaults. Tag order is preserved.
func (r *CreateJobRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Company = strings.TrimSpace(r.Company)
	r.CompanyLogo = strings.TrimSpace(r.CompanyLogo)
	r.Location = strings.TrimSpace(r.Location)
	r.Category = strings.TrimSpace(r.Category)
	r.Type = strings.TrimSpace(r.Type)
	r.Description = strings.TrimSpace(r.Description)
	r.Requirements = strings.TrimSpace(r.Requirements)
	r.Salary = strings.TrimSpace(r.Salary)
	if r.Type == "" {
		r.Type = string(TypeFullTime)
	}
	for i, tag := range r.Tags {
		r.Tags[i] = strings.TrimSpace(tag)
	}
}

// Validate checks the request and returns all field errors at once.
func (r *CreateJobRequest) Validate() validation.Errors {
	return validation.NewFields().
		Check("title", r.Title, validation.Required("Title"), validation.MaxLen("Title", maxTitleLen)).
		Check("company", r.Company, validation.Required("Company")).
		Check("companyLogo", r.CompanyLogo, validation.Required("Company logo"), validation.HTTPURL("Company logo")).
		Check("location", r.Location, validation.Required("Location")).
		Check("category", r.Category, validation.Required("Category"), validation.OneOf("Category", JobCategories())).
		Check("type", r.Type, validation.OneOf("Type", JobTypes())).
		Check("description", r.Description, validation.Required("Description")).
		Errors()
}

// UpdateJobRequest carries a partial update; nil fields are untouched.
type UpdateJobRequest struct {
	Title        *string   `json:"title,omitempty"`
	Company      *string   `json:"company,omitempty"`
	CompanyLogo  *string   `json:"companyLogo,omitempty"`
	Location     *string   `json:"location,omitempty"`
	Category     *string   `json:"category,omitempty"`
	Type         *string   `json:"type,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Requirements *string   `json:"requirements,omitempty"`
	Salary       *string   `json:"salary,omitempty"`
	Tags         *[]string `json:"tags,omitempty"`
	Featured     *bool     `json:"featured,omitempty"`
}

// HasUpdates reports whether any field is set.
func (r *UpdateJobRequest) HasUpdates() bool {
	return r.Title != nil || r.Company != nil || r.CompanyLogo != nil || r.Location != nil ||
		r.Category != nil || r.Type != nil || r.Description != nil || r.Requirements != nil ||
		r.Salary != nil || r.Tags != nil || r.Featured != nil
}

// Normalize trims every set string field.
func (r *UpdateJobRequest) Normalize() {
	trim := func(p *string) {
		if p != nil {
			*p = strings.TrimSpace(*p)
		}
	}
	trim(r.Title)
	trim(r.Company)
	trim(r.CompanyLogo)
	trim(r.Location)
	trim(r.Category)
	trim(r.Type)
	trim(r.Description)
	trim(r.Requirements)
	trim(r.Salary)
	if r.Tags != nil {
		for i, tag := range *r.Tags {
			(*r.Tags)[i] = strings.TrimSpace(tag)
		}
	}
}

// Validate checks every set field and returns all field errors at once.
func (r *UpdateJobRequest) Validate() validation.Errors {
	f := validation.NewFields()
	if !r.HasUpdates() {
		return f.Add("", "at least one field must be updated").Errors()
	}
	if r.Title != nil {
		f.Check("title", *r.Title, validation.Required("Title"), validation.MaxLen("Title", maxTitleLen))
	}
	if r.Company != nil {
		f.Check("company", *r.Company, validation.Required("Company"))
	}
	if r.CompanyLogo != nil {
		f.Check("companyLogo", *r.CompanyLogo, validation.Required("Company logo"), validation.HTTPURL("Company logo"))
	}
	if r.Location != nil {
		f.Check("location", *r.Location, validation.Required("Location"))
	}
	if r.Category != nil {
		f.Check("category", *r.Category, validation.Required("Category"), validation.OneOf("Category", JobCategories()))
	}
	if r.Type != nil {
		f.Check("type", *r.Type, validation.Required("Type"), validation.OneOf("Type", JobTypes()))
	}
	if r.Description != nil {
		f.Check("description", *r.Description, validation.Required("Description"))
	}
	return f.Errors()
}

// JobsListOptions is the typed filter set for listing jobs. Zero-value
// string fields and a nil Featured impose no constraint.
type JobsListOptions struct {
	Search   string
	Category string
	Company  string
	Location string
	Type     string
	Featured *bool
	Limit    int
	Offset   int
}

// JobsListParams holds raw listing query parameters as they arrive on the
// wire. Parse coerces them into JobsListOptions plus a PageRequest.
type JobsListParams struct {
	Search   string
	Category string
	Company  string
	Location string
	Type     string
	Featured string
	Page     string
	Limit    string
}

// Validate checks the numeric bounds on page and limit.
func (p *JobsListParams) Validate() validation.Errors {
	return validation.NewFields().
		Check("page", p.Page, validation.IntRange("Page", 1, maxPageNumber)).
		Check("limit", p.Limit, validation.IntRange("Limit", 1, MaxPageSize)).
		Errors()
}

// Parse converts validated params into typed options and a page request.
// Empty filter values impose no constraint; featured accepts the literal
// "true" as true and any other non-empty value as false.
func (p *JobsListParams) Parse() (JobsListOptions, PageRequest) {
	opts := JobsListOptions{
		Search:   strings.TrimSpace(p.Search),
		Category: strings.TrimSpace(p.Category),
		Company:  strings.TrimSpace(p.Company),
		Location: strings.TrimSpace(p.Location),
		Type:     strings.TrimSpace(p.Type),
	}
	if f := strings.TrimSpace(p.Featured); f != "" {
		v := f == "true"
		opts.Featured = &v
	}
	pr := NewPageRequest(p.Page, p.Limit)
	opts.Limit = pr.Limit
	opts.Offset = pr.Offset()
	return opts, pr
}

// CategoryCount is one row of the per-category aggregation. The wire name
// "_id" is kept for compatibility with existing API consumers.
type CategoryCount struct {
	Category JobCategory `json:"_id"   db:"category"`
	Count    int         `json:"count" db:"count"`
}

// CompanyListing is one row of the company directory aggregation. Logo is
// taken from the company's earliest posting so the result is deterministic.
type CompanyListing struct {
	Name     string `json:"name"     db:"name"`
	Logo     string `json:"logo"     db:"logo"`
	JobCount int    `json:"jobCount" db:"job_count"`
}

// ParseJobID parses a job identifier, distinguishing malformed input from
// absence. Callers treat an error here as a client mistake, not a miss.
func ParseJobID(id string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(id))
}
