package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequired(t *testing.T) {
	v := Required("Title")

	assert.Equal(t, "Title is required", v(""))
	assert.Equal(t, "Title is required", v("   "))
	assert.Empty(t, v("Backend Engineer"))
}

func TestMaxLen(t *testing.T) {
	v := MaxLen("Title", 5)

	assert.Empty(t, v(""))
	assert.Empty(t, v("12345"))
	assert.Equal(t, "Title cannot exceed 5 characters", v("123456"))
}

func TestMaxLen_CountsRunes(t *testing.T) {
	v := MaxLen("Title", 3)

	assert.Empty(t, v("äöü"))
	assert.NotEmpty(t, v("äöüß"))
}

func TestMinLen(t *testing.T) {
	v := MinLen("Password", 8)

	assert.Empty(t, v(""))
	assert.Equal(t, "Password must be at least 8 characters", v("short"))
	assert.Empty(t, v("longenough"))
}

func TestEmail(t *testing.T) {
	v := Email("Email")

	assert.Empty(t, v(""))
	assert.Empty(t, v("dev@example.com"))
	assert.Empty(t, v("first.last+tag@sub.example.co"))
	assert.Equal(t, "Invalid email format", v("not-an-email"))
	assert.Equal(t, "Invalid email format", v("missing@domain"))
	assert.Equal(t, "Invalid email format", v("two@@example.com"))
	assert.Equal(t, "Invalid email format", v("spaces in@example.com"))
}

func TestHTTPURL(t *testing.T) {
	v := HTTPURL("Company logo")

	assert.Empty(t, v(""))
	assert.Empty(t, v("https://cdn.example.com/logo.png"))
	assert.Empty(t, v("http://example.com"))
	assert.Equal(t, "Company logo must be a valid URL", v("ftp://example.com/logo.png"))
	assert.Equal(t, "Company logo must be a valid URL", v("/relative/logo.png"))
	assert.Equal(t, "Company logo must be a valid URL", v("https://"))
}

func TestOneOf(t *testing.T) {
	v := OneOf("Category", []string{"Design", "Engineering"})

	assert.Empty(t, v(""))
	assert.Empty(t, v("Design"))
	assert.Equal(t, "Invalid category", v("design"))
	assert.Equal(t, "Invalid category", v("Gardening"))
}

func TestIntRange(t *testing.T) {
	v := IntRange("Limit", 1, 50)

	assert.Empty(t, v(""))
	assert.Empty(t, v("1"))
	assert.Empty(t, v("50"))
	assert.Equal(t, "Limit must be between 1 and 50", v("0"))
	assert.Equal(t, "Limit must be between 1 and 50", v("51"))
	assert.Equal(t, "Limit must be between 1 and 50", v("abc"))
	assert.Equal(t, "Limit must be between 1 and 50", v("2.5"))
}

func TestFields_CollectsAllFields(t *testing.T) {
	errs := NewFields().
		Check("title", "", Required("Title")).
		Check("company", "Acme", Required("Company")).
		Check("category", "Gardening", Required("Category"), OneOf("Category", []string{"Design"})).
		Errors()

	require.Len(t, errs, 2)
	assert.Equal(t, FieldError{Path: "title", Msg: "Title is required"}, errs[0])
	assert.Equal(t, FieldError{Path: "category", Msg: "Invalid category"}, errs[1])
}

func TestFields_FirstFailurePerField(t *testing.T) {
	errs := NewFields().
		Check("email", "", Required("Email"), Email("Email")).
		Errors()

	require.Len(t, errs, 1)
	assert.Equal(t, "Email is required", errs[0].Msg)
}

func TestFields_NilWhenClean(t *testing.T) {
	errs := NewFields().
		Check("title", "Backend Engineer", Required("Title"), MaxLen("Title", 100)).
		Errors()

	assert.Nil(t, errs)
}

func TestFields_Add(t *testing.T) {
	errs := NewFields().Add("", "at least one field must be updated").Errors()

	require.Len(t, errs, 1)
	assert.Empty(t, errs[0].Path)
}

func TestErrors_ErrorString(t *testing.T) {
	errs := Errors{
		{Path: "title", Msg: "Title is required"},
		{Path: "", Msg: "at least one field must be updated"},
	}

	assert.Equal(t, "title: Title is required; at least one field must be updated", errs.Error())
}
