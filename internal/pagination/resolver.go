package pagination

import (
	"context"

	apperrors "ceslar/internal/errors"
	"ceslar/internal/telemetry"
)

// Document is anything with a stable identifier usable as a cursor.
type Document interface {
	DocumentID() string
}

// Store is the read-only document store contract the resolver depends on.
type Store[T Document] interface {
	// Count returns the number of documents matching q, ignoring any limit.
	Count(ctx context.Context, q Query) (int64, error)
	// Read returns up to limit documents matching q in q's order, starting
	// after the anchor document when one is given.
	Read(ctx context.Context, q Query, limit int, after *T) ([]T, error)
	// GetByID returns the document with id, or nil when it does not exist.
	GetByID(ctx context.Context, id string) (*T, error)
}

// OffsetReader is implemented by stores that can seek to an offset natively.
type OffsetReader[T Document] interface {
	ReadAt(ctx context.Context, q Query, offset, limit int) ([]T, error)
}

// Info is the pagination metadata of a page; OffsetInfo or CursorInfo.
type Info interface {
	Mode() string
}

// OffsetInfo describes a page-number page.
type OffsetInfo struct {
	Total      int  `json:"total" example:"25"`
	Page       int  `json:"page" example:"1"`
	Limit      int  `json:"limit" example:"10"`
	TotalPages int  `json:"totalPages" example:"3"`
	HasNext    bool `json:"hasNext" example:"true"`
	HasPrev    bool `json:"hasPrev" example:"false"`
}

// Mode implements Info.
func (OffsetInfo) Mode() string { return "offset" }

// CursorInfo describes a cursor page. NextCursor is null when there is no next page.
type CursorInfo struct {
	Limit      int     `json:"limit" example:"10"`
	HasMore    bool    `json:"hasMore" example:"true"`
	NextCursor *string `json:"nextCursor" example:"507f1f77bcf86cd799439011"`
}

// Mode implements Info.
func (CursorInfo) Mode() string { return "cursor" }

// Result is one page of documents.
type Result[T any] struct {
	Data       []T  `json:"data"`
	Pagination Info `json:"pagination"`
}

// Resolver cuts pages from a Store.
type Resolver[T Document] struct {
	store Store[T]
}

// NewResolver creates a Resolver over store.
func NewResolver[T Document](store Store[T]) *Resolver[T] {
	return &Resolver[T]{store: store}
}

// Resolve runs req in cursor mode when it carries a cursor and no page,
// otherwise in offset mode.
func (r *Resolver[T]) Resolve(ctx context.Context, req Request) (*Result[T], error) {
	if req.IsCursor() {
		return r.Cursor(ctx, req)
	}
	return r.Offset(ctx, req)
}

// Offset returns page req.Page of size req.Limit together with the total count.
func (r *Resolver[T]) Offset(ctx context.Context, req Request) (*Result[T], error) {
	page := NormalizePage(req.Page)
	limit := NormalizeLimit(req.Limit)
	q := req.Query()

	telemetry.PaginationRequestsTotal.WithLabelValues("offset").Inc()
	telemetry.PaginationCountQueriesTotal.Inc()

	total64, err := r.store.Count(ctx, q)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	total := int(total64)

	totalPages := total / limit
	if total%limit > 0 {
		totalPages++
	}

	// Compared in pages so a huge page number cannot overflow the offset.
	data := []T{}
	if page <= totalPages {
		data, err = r.readFrom(ctx, q, (page-1)*limit, limit)
		if err != nil {
			return nil, err
		}
	}

	return &Result[T]{
		Data: data,
		Pagination: OffsetInfo{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
			HasPrev:    page > 1,
		},
	}, nil
}

// readFrom reads limit documents starting at offset. Without native seeking it
// reads and discards the preceding documents, then anchors after the last one.
func (r *Resolver[T]) readFrom(ctx context.Context, q Query, offset, limit int) ([]T, error) {
	if seeker, ok := r.store.(OffsetReader[T]); ok {
		docs, err := seeker.ReadAt(ctx, q, offset, limit)
		if err != nil {
			return nil, apperrors.StoreError(err)
		}
		return nonNil(docs), nil
	}

	var anchor *T
	if offset > 0 {
		skipped, err := r.store.Read(ctx, q, offset, nil)
		if err != nil {
			return nil, apperrors.StoreError(err)
		}
		// Fewer documents than the offset: deleted since the count.
		if len(skipped) < offset {
			return []T{}, nil
		}
		anchor = &skipped[len(skipped)-1]
	}

	docs, err := r.store.Read(ctx, q, limit, anchor)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	return nonNil(docs), nil
}

// Cursor returns up to req.Limit documents after the cursor document. A cursor
// that no longer resolves restarts from the beginning.
func (r *Resolver[T]) Cursor(ctx context.Context, req Request) (*Result[T], error) {
	limit := NormalizeLimit(req.Limit)
	q := req.Query()

	telemetry.PaginationRequestsTotal.WithLabelValues("cursor").Inc()

	var anchor *T
	if req.Cursor != "" {
		doc, err := r.store.GetByID(ctx, req.Cursor)
		if err != nil {
			return nil, apperrors.StoreError(err)
		}
		anchor = doc
	}

	docs, err := r.store.Read(ctx, q, limit+1, anchor)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	docs = nonNil(docs)

	info := CursorInfo{Limit: limit}
	if len(docs) > limit {
		docs = docs[:limit]
		next := docs[len(docs)-1].DocumentID()
		info.HasMore = true
		info.NextCursor = &next
	}

	return &Result[T]{Data: docs, Pagination: info}, nil
}

func nonNil[T any](docs []T) []T {
	if docs == nil {
		return []T{}
	}
	return docs
}
