// Package catalog implements the list-retrieval pipeline shared by catalog
// surfaces: a fetched row set is filtered by free-text and facet predicates,
// then cut to a visible-count threshold that grows in fixed steps.
package catalog

import (
	"strings"

	"tinkerlab/internal/models"
)

// All is the sentinel facet value that matches every row.
const All = "all"

const (
	// DefaultVisible is the number of rows shown before any "load more".
	DefaultVisible = 20
	// VisibleStep is how much the threshold grows per "load more".
	VisibleStep = 10
)

// Filters are the predicates applied to a fetched row set.
type Filters struct {
	Query      string `json:"query"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
}

// Keys are the filterable fields extracted from a row.
type Keys struct {
	Title       string
	Description string
	Category    string
	Difficulty  models.Difficulty
}

// Normalize fills empty facets with the All sentinel.
func (f Filters) Normalize() Filters {
	if strings.TrimSpace(f.Category) == "" {
		f.Category = All
	}
	if strings.TrimSpace(f.Difficulty) == "" {
		f.Difficulty = All
	}
	return f
}

// Cleared returns the filter state after a "clear filters" action: empty
// query, category All, and the surface's default difficulty. Project-style
// surfaces default to beginner rather than All; that is a deliberate product
// choice, not a bug.
func Cleared(defaultDifficulty string) Filters {
	if defaultDifficulty == "" {
		defaultDifficulty = All
	}
	return Filters{Query: "", Category: All, Difficulty: defaultDifficulty}
}

// Matches reports whether a row satisfies the filters: case-insensitive
// substring containment on title or description, and facet equality unless
// the facet is All. Plain containment only; no stemming or ranking.
func (f Filters) Matches(k Keys) bool {
	f = f.Normalize()

	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		title := strings.ToLower(k.Title)
		desc := strings.ToLower(k.Description)
		if !strings.Contains(title, q) && !strings.Contains(desc, q) {
			return false
		}
	}

	if f.Category != All && !strings.EqualFold(f.Category, k.Category) {
		return false
	}

	if f.Difficulty != All && !strings.EqualFold(f.Difficulty, string(k.Difficulty)) {
		return false
	}

	return true
}

// DeriveView returns the ordered subset of rows matching the filters.
// It preserves the input order and never mutates rows.
func DeriveView[T any](rows []T, f Filters, keys func(T) Keys) []T {
	view := make([]T, 0, len(rows))
	for _, row := range rows {
		if f.Matches(keys(row)) {
			view = append(view, row)
		}
	}
	return view
}

// Paginate returns the first visible rows of the view, clamped to its length.
func Paginate[T any](view []T, visible int) []T {
	if visible <= 0 {
		return []T{}
	}
	if visible > len(view) {
		visible = len(view)
	}
	return view[:visible]
}

// ClampVisible normalizes a client-supplied visible-count threshold. The
// threshold starts at DefaultVisible and only ever grows, so anything at or
// below zero falls back to the default.
func ClampVisible(visible int) int {
	if visible <= 0 {
		return DefaultVisible
	}
	return visible
}

// NextVisible returns the threshold after one "load more" action.
func NextVisible(visible int) int {
	return ClampVisible(visible) + VisibleStep
}
