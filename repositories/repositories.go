package repositories

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup by id matches no row.
var ErrNotFound = errors.New("record not found")

// ListFilter carries the optional query filters shared by every entity
// listing. Nil pointer means "no filter" for the boolean flags; an empty
// Category or the sentinel "All" means no category filter.
type ListFilter struct {
	Category  string
	Search    string
	Published *bool
	Featured  *bool
	Approved  *bool
}

// applyListFilter narrows a query by category, case-insensitive substring
// search over the given columns, and exact boolean flags.
func applyListFilter(q *gorm.DB, f ListFilter, searchCols ...string) *gorm.DB {
	if f.Category != "" && f.Category != "All" {
		q = q.Where("category = ?", f.Category)
	}

	if f.Search != "" && len(searchCols) > 0 {
		like := "%" + strings.ToLower(f.Search) + "%"
		conds := make([]string, 0, len(searchCols))
		args := make([]interface{}, 0, len(searchCols))
		for _, col := range searchCols {
			conds = append(conds, fmt.Sprintf("LOWER(%s) LIKE ?", col))
			args = append(args, like)
		}
		q = q.Where(strings.Join(conds, " OR "), args...)
	}

	if f.Published != nil {
		q = q.Where("published = ?", *f.Published)
	}
	if f.Featured != nil {
		q = q.Where("featured = ?", *f.Featured)
	}
	if f.Approved != nil {
		q = q.Where("approved = ?", *f.Approved)
	}

	return q
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
