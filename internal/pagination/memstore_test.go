package pagination

import (
	"context"
	"fmt"
	"sort"
	"sync"

	apperrors "ceslar/internal/errors"
)

// item is the document type used by the in-memory store.
type item struct {
	ID        string
	CreatedAt int
	Category  string
	Published bool
}

func (i item) DocumentID() string { return i.ID }

// memStore is an in-memory Store supporting equality and "in" filters and
// ordering on createdAt, category and id.
type memStore struct {
	mu        sync.Mutex
	items     []item
	reads     int
	counts    int
	readSizes []int
	failRead  error
	failCount error
}

func newMemStore(n int) *memStore {
	s := &memStore{}
	for i := 1; i <= n; i++ {
		category := "worship"
		if i%2 == 0 {
			category = "youth"
		}
		s.items = append(s.items, item{
			ID:        fmt.Sprintf("doc-%03d", i),
			CreatedAt: i,
			Category:  category,
			Published: i%3 != 0,
		})
	}
	return s
}

func (s *memStore) field(it item, name string) (any, error) {
	switch name {
	case "createdAt":
		return it.CreatedAt, nil
	case "category":
		return it.Category, nil
	case "published":
		return it.Published, nil
	case "id":
		return it.ID, nil
	}
	return nil, apperrors.QueryError("unknown field %q", name)
}

func (s *memStore) match(it item, filters []Filter) (bool, error) {
	for _, f := range filters {
		v, err := s.field(it, f.Field)
		if err != nil {
			return false, err
		}
		switch f.Op {
		case OpEq:
			if v != f.Value {
				return false, nil
			}
		case OpIn:
			vals, ok := f.Value.([]string)
			if !ok {
				return false, apperrors.QueryError("in expects []string")
			}
			found := false
			for _, want := range vals {
				if v == want {
					found = true
				}
			}
			if !found {
				return false, nil
			}
		default:
			return false, apperrors.QueryError("unsupported operator %q", f.Op)
		}
	}
	return true, nil
}

func (s *memStore) less(a, b item, orderBy []Order) (bool, error) {
	for _, o := range orderBy {
		va, err := s.field(a, o.Field)
		if err != nil {
			return false, err
		}
		vb, _ := s.field(b, o.Field)
		cmp := compare(va, vb)
		if cmp == 0 {
			continue
		}
		if o.Direction == Desc {
			return cmp > 0, nil
		}
		return cmp < 0, nil
	}
	return a.ID < b.ID, nil
}

func compare(a, b any) int {
	switch x := a.(type) {
	case int:
		y := b.(int)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	case string:
		y := b.(string)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	case bool:
		y := b.(bool)
		if x == y {
			return 0
		}
		if !x {
			return -1
		}
		return 1
	}
	return 0
}

func (s *memStore) sorted(q Query) ([]item, error) {
	var out []item
	for _, it := range s.items {
		ok, err := s.match(it, q.Filters)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, it)
		}
	}
	var sortErr error
	sort.SliceStable(out, func(i, j int) bool {
		l, err := s.less(out[i], out[j], q.OrderBy)
		if err != nil {
			sortErr = err
		}
		return l
	})
	return out, sortErr
}

func (s *memStore) Count(_ context.Context, q Query) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts++
	if s.failCount != nil {
		return 0, s.failCount
	}
	docs, err := s.sorted(q)
	return int64(len(docs)), err
}

func (s *memStore) Read(_ context.Context, q Query, limit int, after *item) ([]item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reads++
	s.readSizes = append(s.readSizes, limit)
	if s.failRead != nil {
		return nil, s.failRead
	}
	docs, err := s.sorted(q)
	if err != nil {
		return nil, err
	}
	start := 0
	if after != nil {
		start = len(docs)
		for i, d := range docs {
			l, _ := s.less(*after, d, q.OrderBy)
			if l {
				start = i
				break
			}
		}
	}
	end := start + limit
	if end > len(docs) {
		end = len(docs)
	}
	return append([]item(nil), docs[start:end]...), nil
}

func (s *memStore) GetByID(_ context.Context, id string) (*item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.ID == id {
			found := it
			return &found, nil
		}
	}
	return nil, nil
}

func (s *memStore) delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, it := range s.items {
		if it.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// seekingStore adds native offset reads to memStore.
type seekingStore struct {
	*memStore
	seeks int
}

func (s *seekingStore) ReadAt(_ context.Context, q Query, offset, limit int) ([]item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seeks++
	docs, err := s.sorted(q)
	if err != nil {
		return nil, err
	}
	if offset >= len(docs) {
		return nil, nil
	}
	end := offset + limit
	if end > len(docs) {
		end = len(docs)
	}
	return append([]item(nil), docs[offset:end]...), nil
}
