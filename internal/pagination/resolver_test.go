package pagination

import (
	"context"
	"errors"
	"math"
	"net/url"
	"strconv"
	"testing"

	apperrors "ceslar/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(docs []item) []string {
	out := make([]string, len(docs))
	for i, d := range docs {
		out[i] = d.ID
	}
	return out
}

func TestResolver_Offset(t *testing.T) {
	ctx := context.Background()

	t.Run("first page of 25", func(t *testing.T) {
		r := NewResolver[item](newMemStore(25))

		res, err := r.Offset(ctx, Request{Page: 1, Limit: 10})
		require.NoError(t, err)

		assert.Len(t, res.Data, 10)
		assert.Equal(t, "doc-025", res.Data[0].ID)
		assert.Equal(t, OffsetInfo{Total: 25, Page: 1, Limit: 10, TotalPages: 3, HasNext: true, HasPrev: false}, res.Pagination)
	})

	t.Run("last partial page", func(t *testing.T) {
		r := NewResolver[item](newMemStore(25))

		res, err := r.Offset(ctx, Request{Page: 3, Limit: 10})
		require.NoError(t, err)

		assert.Equal(t, []string{"doc-005", "doc-004", "doc-003", "doc-002", "doc-001"}, ids(res.Data))
		assert.Equal(t, OffsetInfo{Total: 25, Page: 3, Limit: 10, TotalPages: 3, HasNext: false, HasPrev: true}, res.Pagination)
	})

	t.Run("page past the end is empty and skips reads", func(t *testing.T) {
		store := newMemStore(25)
		r := NewResolver[item](store)

		res, err := r.Offset(ctx, Request{Page: 4, Limit: 10})
		require.NoError(t, err)

		assert.NotNil(t, res.Data)
		assert.Empty(t, res.Data)
		assert.Zero(t, store.reads)
		info := res.Pagination.(OffsetInfo)
		assert.False(t, info.HasNext)
		assert.True(t, info.HasPrev)
	})

	t.Run("huge page number is past the end, not wrapped around", func(t *testing.T) {
		req := FromQuery(url.Values{
			"page":  {strconv.Itoa(math.MaxInt/10 + 2)},
			"limit": {"10"},
		})

		store := newMemStore(25)
		res, err := NewResolver[item](store).Offset(ctx, req)
		require.NoError(t, err)
		assert.Empty(t, res.Data)
		assert.Zero(t, store.reads)
		info := res.Pagination.(OffsetInfo)
		assert.Equal(t, 3, info.TotalPages)
		assert.False(t, info.HasNext)

		seeking := &seekingStore{memStore: newMemStore(25)}
		res, err = NewResolver[item](seeking).Offset(ctx, req)
		require.NoError(t, err)
		assert.Empty(t, res.Data)
		assert.Zero(t, seeking.seeks)
	})

	t.Run("limit is clamped to the maximum", func(t *testing.T) {
		r := NewResolver[item](newMemStore(150))

		res, err := r.Offset(ctx, Request{Page: 1, Limit: 500})
		require.NoError(t, err)

		assert.Len(t, res.Data, MaxLimit)
		assert.Equal(t, MaxLimit, res.Pagination.(OffsetInfo).Limit)
	})

	t.Run("non-positive page is treated as the first", func(t *testing.T) {
		r := NewResolver[item](newMemStore(5))

		for _, page := range []int{0, -3} {
			res, err := r.Offset(ctx, Request{Page: page, Limit: 2})
			require.NoError(t, err)
			info := res.Pagination.(OffsetInfo)
			assert.Equal(t, 1, info.Page)
			assert.False(t, info.HasPrev)
			assert.Equal(t, []string{"doc-005", "doc-004"}, ids(res.Data))
		}
	})

	t.Run("empty collection", func(t *testing.T) {
		r := NewResolver[item](newMemStore(0))

		res, err := r.Offset(ctx, Request{Page: 1, Limit: 10})
		require.NoError(t, err)

		assert.Empty(t, res.Data)
		assert.Equal(t, OffsetInfo{Total: 0, Page: 1, Limit: 10, TotalPages: 0}, res.Pagination)
	})

	t.Run("pages partition the collection", func(t *testing.T) {
		r := NewResolver[item](newMemStore(23))

		seen := map[string]bool{}
		for page := 1; page <= 3; page++ {
			res, err := r.Offset(ctx, Request{Page: page, Limit: 10})
			require.NoError(t, err)
			for _, d := range res.Data {
				assert.False(t, seen[d.ID], "duplicate %s", d.ID)
				seen[d.ID] = true
			}
		}
		assert.Len(t, seen, 23)
	})

	t.Run("two-step read discards then anchors", func(t *testing.T) {
		store := newMemStore(25)
		r := NewResolver[item](store)

		_, err := r.Offset(ctx, Request{Page: 2, Limit: 10})
		require.NoError(t, err)

		assert.Equal(t, []int{10, 10}, store.readSizes)
	})

	t.Run("native offset reads once", func(t *testing.T) {
		store := &seekingStore{memStore: newMemStore(25)}
		r := NewResolver[item](store)

		res, err := r.Offset(ctx, Request{Page: 2, Limit: 10})
		require.NoError(t, err)

		assert.Equal(t, 1, store.seeks)
		assert.Zero(t, store.reads)
		assert.Equal(t, "doc-015", res.Data[0].ID)
		assert.Equal(t, "doc-006", res.Data[9].ID)
	})

	t.Run("filters and ordering apply before paging", func(t *testing.T) {
		r := NewResolver[item](newMemStore(25))

		res, err := r.Offset(ctx, Request{
			Filters: []Filter{Eq("category", "youth")},
			OrderBy: []Order{{Field: "createdAt", Direction: Asc}},
			Page:    2,
			Limit:   5,
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"doc-012", "doc-014", "doc-016", "doc-018", "doc-020"}, ids(res.Data))
		assert.Equal(t, 12, res.Pagination.(OffsetInfo).Total)
	})

	t.Run("count failure is a store error", func(t *testing.T) {
		store := newMemStore(5)
		store.failCount = errors.New("connection reset")
		r := NewResolver[item](store)

		_, err := r.Offset(ctx, Request{Page: 1, Limit: 10})

		assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
	})

	t.Run("unsupported operator is a query error", func(t *testing.T) {
		r := NewResolver[item](newMemStore(5))

		_, err := r.Offset(ctx, Request{
			Filters: []Filter{Where("category", OpArrayContains, "youth")},
			Page:    1,
			Limit:   10,
		})

		assert.ErrorIs(t, err, apperrors.ErrQueryConstruction)
		assert.NotErrorIs(t, err, apperrors.ErrStoreUnavailable)
	})
}

func TestResolver_Cursor(t *testing.T) {
	ctx := context.Background()

	t.Run("exactly limit documents has no next page", func(t *testing.T) {
		r := NewResolver[item](newMemStore(10))

		res, err := r.Cursor(ctx, Request{Limit: 10})
		require.NoError(t, err)

		assert.Len(t, res.Data, 10)
		info := res.Pagination.(CursorInfo)
		assert.False(t, info.HasMore)
		assert.Nil(t, info.NextCursor)
	})

	t.Run("one extra document yields a next cursor", func(t *testing.T) {
		r := NewResolver[item](newMemStore(11))

		res, err := r.Cursor(ctx, Request{Limit: 10})
		require.NoError(t, err)

		assert.Len(t, res.Data, 10)
		info := res.Pagination.(CursorInfo)
		assert.True(t, info.HasMore)
		require.NotNil(t, info.NextCursor)
		assert.Equal(t, res.Data[9].ID, *info.NextCursor)
	})

	t.Run("following cursors walks the whole collection", func(t *testing.T) {
		r := NewResolver[item](newMemStore(23))

		var all []string
		cursor := ""
		for i := 0; i < 10; i++ {
			res, err := r.Cursor(ctx, Request{Limit: 10, Cursor: cursor})
			require.NoError(t, err)
			all = append(all, ids(res.Data)...)
			info := res.Pagination.(CursorInfo)
			if !info.HasMore {
				break
			}
			cursor = *info.NextCursor
		}

		assert.Len(t, all, 23)
		assert.Equal(t, "doc-023", all[0])
		assert.Equal(t, "doc-001", all[22])
	})

	t.Run("stale cursor restarts from the beginning", func(t *testing.T) {
		store := newMemStore(15)
		r := NewResolver[item](store)

		first, err := r.Cursor(ctx, Request{Limit: 5})
		require.NoError(t, err)
		cursor := *first.Pagination.(CursorInfo).NextCursor
		store.delete(cursor)

		res, err := r.Cursor(ctx, Request{Limit: 5, Cursor: cursor})
		require.NoError(t, err)

		assert.Equal(t, "doc-015", res.Data[0].ID)
	})

	t.Run("limit is clamped", func(t *testing.T) {
		store := newMemStore(3)
		r := NewResolver[item](store)

		res, err := r.Cursor(ctx, Request{Limit: 0})
		require.NoError(t, err)

		assert.Len(t, res.Data, 1)
		assert.Equal(t, 1, res.Pagination.(CursorInfo).Limit)
		assert.Equal(t, []int{2}, store.readSizes)
	})

	t.Run("never counts", func(t *testing.T) {
		store := newMemStore(30)
		r := NewResolver[item](store)

		_, err := r.Cursor(ctx, Request{Limit: 10})
		require.NoError(t, err)

		assert.Zero(t, store.counts)
	})

	t.Run("read failure is a store error", func(t *testing.T) {
		store := newMemStore(3)
		store.failRead = errors.New("deadline exceeded")
		r := NewResolver[item](store)

		_, err := r.Cursor(ctx, Request{Limit: 10})

		assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
	})
}

func TestResolver_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("cursor without page runs cursor mode", func(t *testing.T) {
		r := NewResolver[item](newMemStore(12))

		res, err := r.Resolve(ctx, Request{Limit: 5, Cursor: "doc-010"})
		require.NoError(t, err)

		assert.Equal(t, "cursor", res.Pagination.Mode())
		assert.Equal(t, "doc-009", res.Data[0].ID)
	})

	t.Run("page wins over cursor", func(t *testing.T) {
		r := NewResolver[item](newMemStore(12))

		res, err := r.Resolve(ctx, Request{Page: 1, Limit: 5, Cursor: "doc-010"})
		require.NoError(t, err)

		assert.Equal(t, "offset", res.Pagination.Mode())
		assert.Equal(t, "doc-012", res.Data[0].ID)
	})

	t.Run("absent filters are ignored", func(t *testing.T) {
		r := NewResolver[item](newMemStore(8))
		var missing *string

		res, err := r.Resolve(ctx, Request{
			Filters: []Filter{
				Eq("category", ""),
				Eq("category", nil),
				Eq("category", missing),
				In[string]("category"),
			},
			Page:  1,
			Limit: 10,
		})
		require.NoError(t, err)

		assert.Equal(t, 8, res.Pagination.(OffsetInfo).Total)
	})

	t.Run("same request twice yields the same page", func(t *testing.T) {
		r := NewResolver[item](newMemStore(40))
		req := Request{Filters: []Filter{In("category", "youth", "worship")}, Page: 2, Limit: 7}

		a, err := r.Resolve(ctx, req)
		require.NoError(t, err)
		b, err := r.Resolve(ctx, req)
		require.NoError(t, err)

		assert.Equal(t, a, b)
	})
}
