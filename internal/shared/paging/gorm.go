package paging

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Columns maps public sort property names to database column names.
type Columns map[string]string

// OrderColumns resolves the request's sort orders against the whitelist.
func (r PageRequest) OrderColumns(cols Columns) ([]clause.OrderByColumn, error) {
	out := make([]clause.OrderByColumn, 0, len(r.Sort))
	for _, o := range r.Sort {
		col, ok := cols[o.Property]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSortProperty, o.Property)
		}
		out = append(out, clause.OrderByColumn{
			Column: clause.Column{Name: col},
			Desc:   o.Direction == Desc,
		})
	}
	return out, nil
}

// OrderBy is a gorm scope appending the given ORDER BY columns in order.
func OrderBy(cols []clause.OrderByColumn) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, c := range cols {
			db = db.Order(c)
		}
		return db
	}
}

// Paginate is a gorm scope applying OFFSET/LIMIT for the request.
func Paginate(r PageRequest) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(r.Offset()).Limit(r.Size)
	}
}

// FindPage counts the rows matched by query and loads the slice selected by req.
// Rows are ordered by leading first, then by the request's sort orders.
// A page past the end is returned empty without running the select.
func FindPage[T any](query *gorm.DB, req PageRequest, cols Columns, leading ...clause.OrderByColumn) (Page[T], error) {
	orders, err := req.OrderColumns(cols)
	if err != nil {
		return Page[T]{}, err
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return Page[T]{}, fmt.Errorf("count: %w", err)
	}
	if total == 0 || int64(req.Offset()) >= total {
		return NewPage[T](nil, req, total), nil
	}

	var content []T
	if err := query.
		Scopes(OrderBy(append(leading, orders...)), Paginate(req)).
		Find(&content).Error; err != nil {
		return Page[T]{}, fmt.Errorf("select page %d: %w", req.Page, err)
	}
	return NewPage(content, req, total), nil
}
