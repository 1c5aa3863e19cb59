package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateJobRequest() CreateJobRequest {
	return CreateJobRequest{
		Title:       "Backend Engineer",
		Company:     "Acme Cloud",
		CompanyLogo: "https://cdn.example.com/acme.png",
		Location:    "Remote",
		Category:    "Engineering",
		Type:        "Full Time",
		Description: "Build and operate services.",
	}
}

func TestCreateJobRequest_Validate_OK(t *testing.T) {
	req := validCreateJobRequest()
	assert.Nil(t, req.Validate())
}

func TestCreateJobRequest_Validate_MissingFields(t *testing.T) {
	req := CreateJobRequest{}
	req.Normalize()
	errs := req.Validate()

	require.NotNil(t, errs)
	paths := make([]string, len(errs))
	for i, e := range errs {
		paths[i] = e.Path
	}
	assert.Contains(t, paths, "title")
	assert.Contains(t, paths, "company")
	assert.Contains(t, paths, "companyLogo")
	assert.Contains(t, paths, "location")
	assert.Contains(t, paths, "category")
	assert.Contains(t, paths, "description")
	// Type defaults to Full Time during Normalize, so it never fails here.
	assert.NotContains(t, paths, "type")
}

func TestCreateJobRequest_Validate_TitleTooLong(t *testing.T) {
	req := validCreateJobRequest()
	req.Title = strings.Repeat("x", 101)
	errs := req.Validate()

	require.Len(t, errs, 1)
	assert.Equal(t, "title", errs[0].Path)
	assert.Equal(t, "Title cannot exceed 100 characters", errs[0].Msg)
}

func TestCreateJobRequest_Validate_BadCategoryAndType(t *testing.T) {
	req := validCreateJobRequest()
	req.Category = "Gardening"
	req.Type = "Freelance"
	errs := req.Validate()

	require.Len(t, errs, 2)
	assert.Equal(t, "Invalid category", errs[0].Msg)
	assert.Equal(t, "Invalid type", errs[1].Msg)
}

func TestCreateJobRequest_Normalize_DefaultsType(t *testing.T) {
	req := validCreateJobRequest()
	req.Type = "  "
	req.Tags = []string{" go ", "postgres"}
	req.Normalize()

	assert.Equal(t, string(TypeFullTime), req.Type)
	assert.Equal(t, []string{"go", "postgres"}, req.Tags)
}

func TestUpdateJobRequest_Validate_NoFields(t *testing.T) {
	req := UpdateJobRequest{}
	errs := req.Validate()

	require.Len(t, errs, 1)
	assert.Equal(t, "at least one field must be updated", errs[0].Msg)
}

func TestUpdateJobRequest_Validate_SetFieldsOnly(t *testing.T) {
	title := ""
	featured := true
	req := UpdateJobRequest{Title: &title, Featured: &featured}
	errs := req.Validate()

	require.Len(t, errs, 1)
	assert.Equal(t, "title", errs[0].Path)
	assert.Equal(t, "Title is required", errs[0].Msg)
}

func TestUpdateJobRequest_HasUpdates(t *testing.T) {
	assert.False(t, (&UpdateJobRequest{}).HasUpdates())

	salary := "$100k"
	assert.True(t, (&UpdateJobRequest{Salary: &salary}).HasUpdates())
}

func TestJobsListParams_Validate(t *testing.T) {
	ok := JobsListParams{Page: "2", Limit: "50"}
	assert.Nil(t, ok.Validate())

	bad := JobsListParams{Page: "0", Limit: "51"}
	errs := bad.Validate()
	require.Len(t, errs, 2)
	assert.Equal(t, "page", errs[0].Path)
	assert.Equal(t, "Limit must be between 1 and 50", errs[1].Msg)
}

func TestJobsListParams_Parse(t *testing.T) {
	params := JobsListParams{
		Search:   " go ",
		Category: "Engineering",
		Featured: "true",
		Page:     "2",
		Limit:    "10",
	}
	opts, pr := params.Parse()

	assert.Equal(t, "go", opts.Search)
	assert.Equal(t, "Engineering", opts.Category)
	require.NotNil(t, opts.Featured)
	assert.True(t, *opts.Featured)
	assert.Equal(t, 10, opts.Limit)
	assert.Equal(t, 10, opts.Offset)
	assert.Equal(t, 2, pr.Page)
}

func TestJobsListParams_Parse_FeaturedVariants(t *testing.T) {
	empty := JobsListParams{}
	opts, _ := empty.Parse()
	assert.Nil(t, opts.Featured)

	falsy := JobsListParams{Featured: "false"}
	opts, _ = falsy.Parse()
	require.NotNil(t, opts.Featured)
	assert.False(t, *opts.Featured)

	// Any non-"true" value reads as false.
	truthy := JobsListParams{Featured: "yes"}
	opts, _ = truthy.Parse()
	require.NotNil(t, opts.Featured)
	assert.False(t, *opts.Featured)
}

func TestJobCategoryAndTypeValid(t *testing.T) {
	assert.True(t, JobCategory("Design").Valid())
	assert.False(t, JobCategory("design").Valid())
	assert.True(t, JobType("Remote").Valid())
	assert.False(t, JobType("remote").Valid())
}

func TestParseJobID(t *testing.T) {
	id, err := ParseJobID("  2d7e3f1a-93c4-4b46-9d3f-0a1b2c3d4e5f ")
	require.NoError(t, err)
	assert.Equal(t, "2d7e3f1a-93c4-4b46-9d3f-0a1b2c3d4e5f", id.String())

	_, err = ParseJobID("not-a-uuid")
	assert.Error(t, err)
}
