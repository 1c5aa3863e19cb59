package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageRequest_Defaults(t *testing.T) {
	pr := NewPageRequest("", "")

	assert.Equal(t, DefaultPage, pr.Page)
	assert.Equal(t, DefaultPageSize, pr.Limit)
	assert.Equal(t, 0, pr.Offset())
}

func TestNewPageRequest_ParsesValues(t *testing.T) {
	pr := NewPageRequest("3", "20")

	assert.Equal(t, 3, pr.Page)
	assert.Equal(t, 20, pr.Limit)
	assert.Equal(t, 40, pr.Offset())
}

func TestNewPageRequest_ClampsLimit(t *testing.T) {
	pr := NewPageRequest("1", "500")

	assert.Equal(t, MaxPageSize, pr.Limit)
}

func TestNewPageRequest_IgnoresGarbage(t *testing.T) {
	pr := NewPageRequest("abc", "-5")

	assert.Equal(t, DefaultPage, pr.Page)
	assert.Equal(t, DefaultPageSize, pr.Limit)
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		pages int
	}{
		{"exact multiple", 24, 12, 2},
		{"partial last page", 25, 12, 3},
		{"single page", 5, 12, 1},
		{"empty", 0, 12, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.total, PageRequest{Page: 1, Limit: tt.limit})
			assert.Equal(t, tt.total, p.Total)
			assert.Equal(t, tt.limit, p.Limit)
			assert.Equal(t, tt.pages, p.Pages)
		})
	}
}
