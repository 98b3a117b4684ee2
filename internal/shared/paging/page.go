// Package paging provides offset pagination primitives shared by the repositories.
package paging

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// DefaultSize is used when a request does not specify a positive page size.
	DefaultSize = 20
	// MaxSize caps the page size a client may request.
	MaxSize = 100
)

var (
	// ErrInvalidSortProperty is returned when a sort property is not sortable for the resource.
	ErrInvalidSortProperty = errors.New("invalid sort property")

	// ErrInvalidSortDirection is returned when a sort direction is neither asc nor desc.
	ErrInvalidSortDirection = errors.New("invalid sort direction")
)

// Direction is the ordering direction of a sort property.
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// Order is a single sort instruction.
type Order struct {
	Property  string
	Direction Direction
}

// PageRequest describes which slice of a result set the caller wants.
// Page is zero-based.
type PageRequest struct {
	Page int
	Size int
	Sort []Order
}

// NewPageRequest builds a PageRequest, clamping page and size into their valid ranges.
func NewPageRequest(page, size int, sort ...Order) PageRequest {
	if page < 0 {
		page = 0
	}
	switch {
	case size <= 0:
		size = DefaultSize
	case size > MaxSize:
		size = MaxSize
	}
	return PageRequest{Page: page, Size: size, Sort: sort}
}

// Offset returns the number of rows to skip.
func (r PageRequest) Offset() int {
	return r.Page * r.Size
}

// ParseSort parses the "property[,direction]" form used in query strings.
func ParseSort(s string) (Order, error) {
	prop, dir, _ := strings.Cut(s, ",")
	prop = strings.TrimSpace(prop)
	if prop == "" {
		return Order{}, fmt.Errorf("%w: empty property", ErrInvalidSortProperty)
	}

	o := Order{Property: prop, Direction: Asc}
	switch strings.ToUpper(strings.TrimSpace(dir)) {
	case "", "ASC":
	case "DESC":
		o.Direction = Desc
	default:
		return Order{}, fmt.Errorf("%w: %q", ErrInvalidSortDirection, dir)
	}
	return o, nil
}

// ParseSorts parses every value with ParseSort, skipping empty strings.
func ParseSorts(values []string) ([]Order, error) {
	var out []Order
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		o, err := ParseSort(v)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

// Page is a bounded slice of a larger result set plus the metadata needed to navigate it.
type Page[T any] struct {
	Content       []T
	TotalElements int64
	TotalPages    int
	Number        int
	Size          int
}

// NewPage wraps content fetched for req. Content is never nil.
func NewPage[T any](content []T, req PageRequest, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	return Page[T]{
		Content:       content,
		TotalElements: total,
		TotalPages:    TotalPages(total, req.Size),
		Number:        req.Page,
		Size:          req.Size,
	}
}

// HasNext reports whether a page follows this one.
func (p Page[T]) HasNext() bool {
	return p.Number+1 < p.TotalPages
}

// IsLast reports whether this is the last page (or there are no pages at all).
func (p Page[T]) IsLast() bool {
	return !p.HasNext()
}

// Map converts the content of a page while keeping its metadata.
func Map[T, U any](p Page[T], fn func(T) U) Page[U] {
	out := make([]U, 0, len(p.Content))
	for _, v := range p.Content {
		out = append(out, fn(v))
	}
	return Page[U]{
		Content:       out,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
		Number:        p.Number,
		Size:          p.Size,
	}
}

// TotalPages returns ceil(total/size).
func TotalPages(total int64, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}
