package database

import (
	"strings"
	"testing"
)

func TestBuildListQuery_BasicSelect(t *testing.T) {
	opts := NewListQueryOptions("jobs")
	query, args := BuildListQuery(opts)

	expected := `SELECT * FROM "jobs"`
	if query != expected {
		t.Errorf("Expected query %q, got %q", expected, query)
	}
	if len(args) != 0 {
		t.Errorf("Expected 0 args, got %d", len(args))
	}
}

func TestBuildListQuery_WithColumns(t *testing.T) {
	opts := NewListQueryOptions("jobs",
		WithColumns("id", "title", "company"),
	)
	query, args := BuildListQuery(opts)

	expected := `SELECT "id", "title", "company" FROM "jobs"`
	if query != expected {
		t.Errorf("Expected query %q, got %q", expected, query)
	}
	if len(args) != 0 {
		t.Errorf("Expected 0 args, got %d", len(args))
	}
}

func TestBuildListQuery_CountOnly(t *testing.T) {
	opts := NewListQueryOptions("jobs",
		WithCountOnly(),
		WithCondition(WhereCond("featured", Equal, true)),
	)
	query, args := BuildListQuery(opts)

	expected := `SELECT COUNT(*) FROM "jobs" WHERE "featured" = $1`
	if query != expected {
		t.Errorf("Expected query %q, got %q", expected, query)
	}
	if len(args) != 1 || args[0] != true {
		t.Errorf("Expected args [true], got %v", args)
	}
}

func TestBuildListQuery_WhereConditions(t *testing.T) {
	opts := NewListQueryOptions("jobs",
		WithCondition(WhereCond("category", Equal, "Design")),
		WithCondition(WhereCond("company", ILike, "%acme%")),
	)
	query, args := BuildListQuery(opts)

	expected := `SELECT * FROM "jobs" WHERE "category" = $1 AND "company" ILIKE $2`
	if query != expected {
		t.Errorf("Expected query %q, got %q", expected, query)
	}
	if len(args) != 2 || args[0] != "Design" || args[1] != "%acme%" {
		t.Errorf("Expected args [Design, %%acme%%], got %v", args)
	}
}

func TestBuildListQuery_NotEqual(t *testing.T) {
	opts := NewListQueryOptions("jobs",
		WithCondition(WhereCond("type", NotEqual, "Internship")),
	)
	query, args := BuildListQuery(opts)

	expected := `SELECT * FROM "jobs" WHERE "type" != $1`
	if query != expected {
		t.Errorf("Expected query %q, got %q", expected, query)
	}
	if len(args) != 1 || args[0] != "Internship" {
		t.Errorf("Expected args [Internship], got %v", args)
	}
}

func TestBuildListQuery_OrderLimitOffset(t *testing.T) {
	opts := NewListQueryOptions("jobs",
		WithCondition(WhereCond("category", Equal, "Engineering")),
		WithOrderBy("featured", "DESC"),
		WithOrderBy("created_at", "DESC"),
		WithOrderBy("id", "ASC"),
		WithLimit(12),
		WithOffset(24),
	)
	query, args := BuildListQuery(opts)

	expected := `SELECT * FROM "jobs" WHERE "category" = $1` +
		` ORDER BY "featured" DESC, "created_at" DESC, "id" ASC LIMIT $2 OFFSET $3`
	if query != expected {
		t.Errorf("Expected query %q, got %q", expected, query)
	}
	if len(args) != 3 || args[0] != "Engineering" || args[1] != 12 || args[2] != 24 {
		t.Errorf("Expected args [Engineering, 12, 24], got %v", args)
	}
}

func TestBuildListQuery_ZeroLimitAndOffset(t *testing.T) {
	opts := NewListQueryOptions("jobs",
		WithLimit(0),
		WithOffset(0),
	)
	query, args := BuildListQuery(opts)

	expected := `SELECT * FROM "jobs" LIMIT $1 OFFSET $2`
	if query != expected {
		t.Errorf("Expected query %q, got %q", expected, query)
	}
	if len(args) != 2 || args[0] != 0 || args[1] != 0 {
		t.Errorf("Expected args [0, 0], got %v", args)
	}
}

func TestBuildListQuery_InvalidOrderDirectionDropped(t *testing.T) {
	opts := NewListQueryOptions("jobs",
		WithOrderBy("created_at", "SIDEWAYS"),
	)
	query, _ := BuildListQuery(opts)

	if strings.Contains(query, "SIDEWAYS") {
		t.Errorf("Invalid direction leaked into query: %q", query)
	}
	if !strings.Contains(query, `ORDER BY "created_at"`) {
		t.Errorf("Expected bare column ordering, got %q", query)
	}
}

func TestBuildListQuery_RawConditionSharedPlaceholder(t *testing.T) {
	// One search argument referenced three times binds a single parameter.
	opts := NewListQueryOptions("jobs",
		WithCondition(WhereRawCond("(title ILIKE $1 OR company ILIKE $1 OR description ILIKE $1)", "%go%")),
	)
	query, args := BuildListQuery(opts)

	expected := `SELECT * FROM "jobs" WHERE (title ILIKE $1 OR company ILIKE $1 OR description ILIKE $1)`
	if query != expected {
		t.Errorf("Expected query %q, got %q", expected, query)
	}
	if len(args) != 1 || args[0] != "%go%" {
		t.Errorf("Expected args [%%go%%], got %v", args)
	}
}

func TestBuildListQuery_RawConditionRenumbered(t *testing.T) {
	// Standard conditions come first, so the raw fragment's $1 must be
	// renumbered past them.
	opts := NewListQueryOptions("jobs",
		WithCondition(WhereCond("category", Equal, "Design")),
		WithCondition(WhereRawCond("(title ILIKE $1 OR company ILIKE $1)", "%ux%")),
		WithCondition(WhereCond("featured", Equal, true)),
		WithLimit(10),
	)
	query, args := BuildListQuery(opts)

	expected := `SELECT * FROM "jobs" WHERE "category" = $1` +
		` AND (title ILIKE $2 OR company ILIKE $2) AND "featured" = $3 LIMIT $4`
	if query != expected {
		t.Errorf("Expected query %q, got %q", expected, query)
	}
	if len(args) != 4 || args[0] != "Design" || args[1] != "%ux%" || args[2] != true || args[3] != 10 {
		t.Errorf("Unexpected args: %v", args)
	}
}

func TestBuildListQuery_RawConditionMultipleParams(t *testing.T) {
	opts := NewListQueryOptions("jobs",
		WithCondition(WhereRawCond("(location ILIKE $1 OR location ILIKE $2)", "%berlin%", "%remote%")),
	)
	query, args := BuildListQuery(opts)

	expected := `SELECT * FROM "jobs" WHERE (location ILIKE $1 OR location ILIKE $2)`
	if query != expected {
		t.Errorf("Expected query %q, got %q", expected, query)
	}
	if len(args) != 2 || args[0] != "%berlin%" || args[1] != "%remote%" {
		t.Errorf("Unexpected args: %v", args)
	}
}

func TestBuildListQuery_EmptyRawConditionIgnored(t *testing.T) {
	opts := NewListQueryOptions("jobs",
		WithCondition(WhereRawCond("")),
		WithCondition(WhereCond("category", Equal, "Sales")),
	)
	query, args := BuildListQuery(opts)

	expected := `SELECT * FROM "jobs" WHERE "category" = $1`
	if query != expected {
		t.Errorf("Expected query %q, got %q", expected, query)
	}
	if len(args) != 1 {
		t.Errorf("Expected one arg, got %v", args)
	}
}

func TestBuildListQuery_EmptyFieldIgnored(t *testing.T) {
	opts := NewListQueryOptions("jobs",
		WithCondition(WhereCond("", Equal, "x")),
	)
	query, args := BuildListQuery(opts)

	expected := `SELECT * FROM "jobs"`
	if query != expected {
		t.Errorf("Expected query %q, got %q", expected, query)
	}
	if len(args) != 0 {
		t.Errorf("Expected 0 args, got %v", args)
	}
}

func TestBuildListQuery_NilOptions(t *testing.T) {
	query, args := BuildListQuery(nil)
	if query != "" || args != nil {
		t.Errorf("Expected empty query for nil options, got %q / %v", query, args)
	}
}

func TestWhereCond_PanicsOnCustom(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic when using WhereCond with Custom type")
		}
	}()
	WhereCond("field", Custom, "value")
}
