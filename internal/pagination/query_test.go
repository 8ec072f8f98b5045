package pagination

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequest_Query(t *testing.T) {
	t.Run("default ordering", func(t *testing.T) {
		q := Request{}.Query()
		assert.Equal(t, []Order{{Field: "createdAt", Direction: Desc}}, q.OrderBy)
		assert.Empty(t, q.Filters)
	})

	t.Run("keeps present values", func(t *testing.T) {
		active := false
		q := Request{Filters: []Filter{
			Eq("isActive", &active),
			Eq("isActive", false),
			Eq("count", 0),
			In("city", "Lima"),
		}}.Query()
		assert.Len(t, q.Filters, 4)
	})

	t.Run("drops absent values", func(t *testing.T) {
		var nilMap map[string]string
		q := Request{Filters: []Filter{
			Eq("a", nil),
			Eq("b", ""),
			Eq("c", []string{}),
			Eq("d", nilMap),
		}}.Query()
		assert.Empty(t, q.Filters)
	})
}

func TestRequest_With(t *testing.T) {
	base := Request{Filters: []Filter{Eq("a", 1)}}
	extended := base.With(Eq("b", 2))

	assert.Len(t, base.Filters, 1)
	assert.Len(t, extended.Filters, 2)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, 1, NormalizeLimit(0))
	assert.Equal(t, 1, NormalizeLimit(-5))
	assert.Equal(t, 50, NormalizeLimit(50))
	assert.Equal(t, 100, NormalizeLimit(500))
	assert.Equal(t, 1, NormalizePage(0))
	assert.Equal(t, 1, NormalizePage(-3))
	assert.Equal(t, 4, NormalizePage(4))
}

func TestFromQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Request
	}{
		{
			name:  "defaults",
			query: "",
			want:  Request{Page: 1, Limit: 10},
		},
		{
			name:  "explicit page and limit",
			query: "page=3&limit=25",
			want:  Request{Page: 3, Limit: 25},
		},
		{
			name:  "cursor alone selects cursor mode",
			query: "cursor=abc&limit=5",
			want:  Request{Limit: 5, Cursor: "abc"},
		},
		{
			name:  "page with cursor keeps the page",
			query: "cursor=abc&page=2",
			want:  Request{Page: 2, Limit: 10, Cursor: "abc"},
		},
		{
			name:  "page zero becomes one",
			query: "page=0",
			want:  Request{Page: 1, Limit: 10},
		},
		{
			name:  "garbage numbers fall back",
			query: "page=x&limit=y",
			want:  Request{Page: 1, Limit: 10},
		},
		{
			name:  "sort fields",
			query: "sort=-date,title",
			want: Request{Page: 1, Limit: 10, OrderBy: []Order{
				{Field: "date", Direction: Desc},
				{Field: "title", Direction: Asc},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)
			got := FromQuery(values)
			assert.Equal(t, tt.want, got)
			if tt.want.Cursor != "" && tt.want.Page == 0 {
				assert.True(t, got.IsCursor())
			}
		})
	}
}

func TestFromCursorQuery(t *testing.T) {
	values, err := url.ParseQuery("page=3&limit=5&sort=-name")
	assert.NoError(t, err)

	got := FromCursorQuery(values)

	assert.Equal(t, 0, got.Page)
	assert.Equal(t, 5, got.Limit)
	assert.Empty(t, got.Cursor)
	assert.True(t, got.IsCursor())
	assert.Equal(t, []Order{{Field: "name", Direction: Desc}}, got.OrderBy)
}
