package service

import (
	"context"
	"sync"
	"testing"

	apperrors "ceslar/internal/errors"
	"ceslar/internal/pagination"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeStore serves docs in order and records the last query it saw. It does
// not evaluate filters; tests assert on the recorded query instead.
type fakeStore[T pagination.Document] struct {
	docs    []T
	queries []pagination.Query
}

func (s *fakeStore[T]) Count(_ context.Context, q pagination.Query) (int64, error) {
	s.queries = append(s.queries, q)
	return int64(len(s.docs)), nil
}

func (s *fakeStore[T]) Read(_ context.Context, q pagination.Query, limit int, after *T) ([]T, error) {
	s.queries = append(s.queries, q)
	start := 0
	if after != nil {
		for i, d := range s.docs {
			if d.DocumentID() == (*after).DocumentID() {
				start = i + 1
			}
		}
	}
	end := min(start+limit, len(s.docs))
	return append([]T(nil), s.docs[start:end]...), nil
}

func (s *fakeStore[T]) GetByID(_ context.Context, id string) (*T, error) {
	for _, d := range s.docs {
		if d.DocumentID() == id {
			return &d, nil
		}
	}
	return nil, nil
}

func (s *fakeStore[T]) lastQuery() pagination.Query {
	return s.queries[len(s.queries)-1]
}

// filterValue returns the value filtered on field in q.
func filterValue(q pagination.Query, field string) (any, bool) {
	for _, f := range q.Filters {
		if f.Field == field {
			return f.Value, true
		}
	}
	return nil, false
}

// fakeInvalidator records invalidated uids.
type fakeInvalidator struct {
	mu   sync.Mutex
	uids []string
	err  error
}

func (f *fakeInvalidator) Invalidate(_ context.Context, uid string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uids = append(f.uids, uid)
	return f.err
}

// fakeEnqueuer records churches queued for a stats recount.
type fakeEnqueuer struct {
	churches []primitive.ObjectID
}

func (f *fakeEnqueuer) EnqueueRecount(churchID primitive.ObjectID) {
	f.churches = append(f.churches, churchID)
}

func TestSameChurch(t *testing.T) {
	owner := primitive.NewObjectID()

	assert.NoError(t, sameChurch(owner.Hex(), owner))
	// Gates passed without a church, e.g. delete:all holders.
	assert.NoError(t, sameChurch("", owner))
	assert.ErrorIs(t, sameChurch(primitive.NewObjectID().Hex(), owner), apperrors.ErrChurchMismatch)
}
