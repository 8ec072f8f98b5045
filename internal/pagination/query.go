// Package pagination turns a logical list query into one bounded page of
// results, by page number (offset mode) or by opaque cursor (cursor mode).
package pagination

import (
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// Limits applied to every request.
const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// DefaultOrderField is used when a query names no ordering.
const DefaultOrderField = "createdAt"

// Direction is a sort direction.
type Direction string

// Sort directions.
const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Order is one ordering clause.
type Order struct {
	Field     string    `json:"field"`
	Direction Direction `json:"direction"`
}

// Operator is a filter comparison. The store decides which it supports.
type Operator string

// Filter operators.
const (
	OpEq               Operator = "=="
	OpNe               Operator = "!="
	OpLt               Operator = "<"
	OpLte              Operator = "<="
	OpGt               Operator = ">"
	OpGte              Operator = ">="
	OpIn               Operator = "in"
	OpNotIn            Operator = "not-in"
	OpArrayContains    Operator = "array-contains"
	OpArrayContainsAny Operator = "array-contains-any"
)

// Filter constrains one field.
type Filter struct {
	Field string
	Op    Operator
	Value any
}

// Eq is an equality filter.
func Eq(field string, value any) Filter {
	return Filter{Field: field, Op: OpEq, Value: value}
}

// Where is a filter with an explicit operator.
func Where(field string, op Operator, value any) Filter {
	return Filter{Field: field, Op: op, Value: value}
}

// In matches any of values.
func In[V any](field string, values ...V) Filter {
	return Filter{Field: field, Op: OpIn, Value: values}
}

// Query is the filtered, ordered collection a page is cut from.
type Query struct {
	Filters []Filter
	OrderBy []Order
}

// Request describes one page. Page selects offset mode; Cursor selects cursor
// mode when Page is unset. CursorMode asks for cursor mode on the first page,
// before any cursor exists.
type Request struct {
	Filters    []Filter
	OrderBy    []Order
	Page       int
	Limit      int
	Cursor     string
	CursorMode bool
}

// Query returns the request's query with absent filters dropped and the
// default ordering applied.
func (r Request) Query() Query {
	filters := make([]Filter, 0, len(r.Filters))
	for _, f := range r.Filters {
		if isAbsent(f.Value) {
			continue
		}
		filters = append(filters, f)
	}

	orderBy := r.OrderBy
	if len(orderBy) == 0 {
		orderBy = []Order{{Field: DefaultOrderField, Direction: Desc}}
	}

	return Query{Filters: filters, OrderBy: orderBy}
}

// IsCursor reports whether the request runs in cursor mode.
func (r Request) IsCursor() bool {
	return r.Page == 0 && (r.Cursor != "" || r.CursorMode)
}

// With returns a copy of r with extra filters appended.
func (r Request) With(filters ...Filter) Request {
	out := r
	out.Filters = append(append([]Filter(nil), r.Filters...), filters...)
	return out
}

// isAbsent reports whether a filter value means "no constraint": nil, a nil
// pointer, the empty string, or an empty set.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return s == ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map:
		return rv.IsNil()
	case reflect.Slice:
		return rv.IsNil() || rv.Len() == 0
	case reflect.Array:
		return rv.Len() == 0
	}
	return false
}

// NormalizeLimit clamps limit into [1, MaxLimit].
func NormalizeLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// NormalizePage clamps page to at least 1.
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// FromQuery reads page, limit, cursor and sort from URL query values.
// Unparseable numbers fall back to defaults rather than failing. sort is a
// comma-separated list of fields, each optionally prefixed with '-' for
// descending order.
func FromQuery(values url.Values) Request {
	req := Request{Limit: DefaultLimit}

	if v := values.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			req.Limit = n
		}
	}
	if v := values.Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			req.Page = n
			if req.Page == 0 {
				req.Page = 1
			}
		}
	}
	req.Cursor = values.Get("cursor")
	if req.Cursor == "" && req.Page == 0 {
		req.Page = 1
	}

	if sort := values.Get("sort"); sort != "" {
		for _, field := range strings.Split(sort, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			dir := Asc
			if strings.HasPrefix(field, "-") {
				dir = Desc
				field = field[1:]
			}
			req.OrderBy = append(req.OrderBy, Order{Field: field, Direction: dir})
		}
	}

	return req
}

// FromCursorQuery is FromQuery for endpoints that only page by cursor: any
// page parameter is ignored.
func FromCursorQuery(values url.Values) Request {
	req := FromQuery(values)
	req.Page = 0
	req.CursorMode = true
	return req
}
