// Package query implements the collection view pipeline shared by the
// listing endpoints: parameter normalization, stable field-aware sorting,
// and slice pagination with metadata.
package query

import (
	"cmp"
	"slices"
	"sync"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Pagination defaults and bounds.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Order is the sort direction.
type Order string

// Sort orders. Anything other than OrderAsc is treated as descending.
const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// Params carries caller-supplied sort and pagination instructions.
type Params struct {
	Page   int
	Limit  int
	SortBy string
	Order  Order
}

// Normalize clamps pagination to valid bounds and resolves defaults.
// A zero Page or Limit means the caller did not supply one.
func (p Params) Normalize(defaultSortBy string) Params {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	switch {
	case p.Limit == 0:
		p.Limit = DefaultLimit
	case p.Limit < 1:
		p.Limit = 1
	case p.Limit > MaxLimit:
		p.Limit = MaxLimit
	}
	if p.SortBy == "" {
		p.SortBy = defaultSortBy
	}
	if p.Order != OrderAsc {
		p.Order = OrderDesc
	}
	return p
}

// Pagination describes the window a Result covers.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Result is an ordered page of records plus pagination metadata.
type Result[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// FieldFunc maps a sort field name to that record's sort key.
// Returning nil for an unknown field makes the sort a stable no-op.
type FieldFunc[T any] func(record T, field string) any

// Apply sorts the full collection by p.SortBy and returns the window
// p.Page/p.Limit selects. The input slice is not modified. Callers must
// pass normalized params.
func Apply[T any](items []T, p Params, field FieldFunc[T]) Result[T] {
	return Paginate(Sort(items, p, field), p)
}

// Sort returns a stably sorted copy of items ordered by p.SortBy.
// Records whose keys compare equal keep their relative input order.
func Sort[T any](items []T, p Params, field FieldFunc[T]) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int {
		c := compareValues(field(a, p.SortBy), field(b, p.SortBy))
		if p.Order == OrderAsc {
			return c
		}
		return -c
	})
	return out
}

// Paginate slices items to the window p selects. A page past the end of
// the collection yields an empty item list with unchanged metadata.
func Paginate[T any](items []T, p Params) Result[T] {
	total := len(items)

	// The multiplication wraps negative for huge page values; any start
	// outside the collection selects the empty window.
	start := (p.Page - 1) * p.Limit
	if start < 0 || start > total {
		start = total
	}
	end := start + p.Limit
	if end > total {
		end = total
	}

	window := items[start:end]
	if window == nil {
		window = []T{}
	}

	return Result[T]{
		Items: window,
		Pagination: Pagination{
			Page:       p.Page,
			Limit:      p.Limit,
			Total:      total,
			TotalPages: (total + p.Limit - 1) / p.Limit,
		},
	}
}

// collator is shared across requests; collate.Collator is not safe for
// concurrent use, hence the mutex.
var (
	collatorMu sync.Mutex
	collator   = collate.New(language.English)
)

// compareValues orders two sort-key values by their dynamic type:
// timestamps by instant, strings by English-locale collation, numbers
// numerically. Unrecognized or mismatched pairings compare equal so the
// stable sort leaves their original order untouched.
func compareValues(a, b any) int {
	switch av := a.(type) {
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Compare(bv)
		}
	case string:
		if bv, ok := b.(string); ok {
			collatorMu.Lock()
			c := collator.CompareString(av, bv)
			collatorMu.Unlock()
			return c
		}
	case int:
		if bv, ok := b.(int); ok {
			return cmp.Compare(av, bv)
		}
	case float64:
		if bv, ok := b.(float64); ok {
			return cmp.Compare(av, bv)
		}
	}
	return 0
}
