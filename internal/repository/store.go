// Package repository provides data access operations for the application.
package repository

import (
	"context"
	"errors"
	"reflect"
	"strings"

	apperrors "ceslar/internal/errors"
	"ceslar/internal/models"
	"ceslar/internal/pagination"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// notDeleted excludes soft-deleted documents.
var notDeleted = bson.E{Key: "deletedAt", Value: bson.M{"$exists": false}}

var comparisonOps = map[pagination.Operator]string{
	pagination.OpEq:  "$eq",
	pagination.OpNe:  "$ne",
	pagination.OpLt:  "$lt",
	pagination.OpLte: "$lte",
	pagination.OpGt:  "$gt",
	pagination.OpGte: "$gte",
}

var setOps = map[pagination.Operator]string{
	pagination.OpIn:               "$in",
	pagination.OpNotIn:            "$nin",
	pagination.OpArrayContainsAny: "$in",
}

// MongoStore serves paginated reads from one collection. Only the fields it
// was constructed with may be filtered or sorted on; "id" always refers to _id.
type MongoStore[T pagination.Document] struct {
	collection *mongo.Collection
	fields     map[string]struct{}
	base       bson.D
}

var (
	_ pagination.Store[models.Church]        = (*MongoStore[models.Church])(nil)
	_ pagination.OffsetReader[models.Church] = (*MongoStore[models.Church])(nil)
)

// NewMongoStore creates a store over collection. base constrains every read.
func NewMongoStore[T pagination.Document](collection *mongo.Collection, fields []string, base ...bson.E) *MongoStore[T] {
	allowed := make(map[string]struct{}, len(fields)+1)
	for _, f := range fields {
		allowed[f] = struct{}{}
	}
	allowed["_id"] = struct{}{}

	return &MongoStore[T]{
		collection: collection,
		fields:     allowed,
		base:       append(bson.D(nil), base...),
	}
}

// Where returns a copy of the store with an extra constraint on every read.
func (s *MongoStore[T]) Where(e bson.E) *MongoStore[T] {
	out := *s
	out.base = append(append(bson.D(nil), s.base...), e)
	return &out
}

// Count implements pagination.Store.
func (s *MongoStore[T]) Count(ctx context.Context, q pagination.Query) (int64, error) {
	filter, err := s.filter(q, nil)
	if err != nil {
		return 0, err
	}
	return s.collection.CountDocuments(ctx, filter)
}

// Read implements pagination.Store using a keyset condition on the anchor.
func (s *MongoStore[T]) Read(ctx context.Context, q pagination.Query, limit int, after *T) ([]T, error) {
	filter, err := s.filter(q, after)
	if err != nil {
		return nil, err
	}
	sort, err := s.sort(q)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(sort).SetLimit(int64(limit))
	return s.find(ctx, filter, opts)
}

// ReadAt implements pagination.OffsetReader with a native skip.
func (s *MongoStore[T]) ReadAt(ctx context.Context, q pagination.Query, offset, limit int) ([]T, error) {
	filter, err := s.filter(q, nil)
	if err != nil {
		return nil, err
	}
	sort, err := s.sort(q)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(sort).SetSkip(int64(offset)).SetLimit(int64(limit))
	return s.find(ctx, filter, opts)
}

// GetByID implements pagination.Store. Malformed ids resolve to nothing.
func (s *MongoStore[T]) GetByID(ctx context.Context, id string) (*T, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	filter := append(bson.D{{Key: "_id", Value: oid}}, s.base...)

	var doc T
	if err := s.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &doc, nil
}

func (s *MongoStore[T]) find(ctx context.Context, filter bson.D, opts *options.FindOptions) ([]T, error) {
	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []T
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []T{}
	}
	return docs, nil
}

func (s *MongoStore[T]) field(name string) (string, error) {
	if name == "id" {
		name = "_id"
	}
	if _, ok := s.fields[name]; !ok {
		return "", apperrors.QueryError("field %q cannot be queried", name)
	}
	return name, nil
}

// filter combines the base constraints, q's filters and the keyset condition.
func (s *MongoStore[T]) filter(q pagination.Query, after *T) (bson.D, error) {
	parts := make([]bson.D, 0, len(q.Filters)+2)
	if len(s.base) > 0 {
		parts = append(parts, s.base)
	}

	// One clause per filter so range filters on the same field do not collide.
	for _, f := range q.Filters {
		cond, err := s.condition(f)
		if err != nil {
			return nil, err
		}
		parts = append(parts, bson.D{cond})
	}

	if after != nil {
		keyset, err := s.keyset(q, after)
		if err != nil {
			return nil, err
		}
		parts = append(parts, keyset)
	}

	switch len(parts) {
	case 0:
		return bson.D{}, nil
	case 1:
		return parts[0], nil
	}
	and := make(bson.A, len(parts))
	for i, p := range parts {
		and[i] = p
	}
	return bson.D{{Key: "$and", Value: and}}, nil
}

func (s *MongoStore[T]) condition(f pagination.Filter) (bson.E, error) {
	field, err := s.field(f.Field)
	if err != nil {
		return bson.E{}, err
	}

	value := f.Value
	if field == "_id" {
		if value, err = objectIDValue(value); err != nil {
			return bson.E{}, err
		}
	}

	if op, ok := comparisonOps[f.Op]; ok {
		return bson.E{Key: field, Value: bson.M{op: value}}, nil
	}
	if op, ok := setOps[f.Op]; ok {
		if !isList(value) {
			return bson.E{}, apperrors.QueryError("operator %q on %q needs a list value", f.Op, f.Field)
		}
		return bson.E{Key: field, Value: bson.M{op: value}}, nil
	}
	if f.Op == pagination.OpArrayContains {
		return bson.E{Key: field, Value: bson.M{"$elemMatch": bson.M{"$eq": f.Value}}}, nil
	}
	return bson.E{}, apperrors.QueryError("unsupported operator %q", f.Op)
}

// objectIDValue converts hex ids, alone or in a list, to ObjectIDs.
func objectIDValue(v any) (any, error) {
	switch id := v.(type) {
	case string:
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, apperrors.QueryError("id %q is not a valid object id", id)
		}
		return oid, nil
	case []string:
		oids := make([]primitive.ObjectID, len(id))
		for i, hex := range id {
			oid, err := primitive.ObjectIDFromHex(hex)
			if err != nil {
				return nil, apperrors.QueryError("id %q is not a valid object id", hex)
			}
			oids[i] = oid
		}
		return oids, nil
	}
	return v, nil
}

func isList(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}

type sortKey struct {
	field string
	dir   pagination.Direction
}

// keys returns q's ordering followed by the _id tiebreaker.
func (s *MongoStore[T]) keys(q pagination.Query) ([]sortKey, error) {
	keys := make([]sortKey, 0, len(q.OrderBy)+1)
	for _, o := range q.OrderBy {
		field, err := s.field(o.Field)
		if err != nil {
			return nil, err
		}
		if o.Direction != pagination.Asc && o.Direction != pagination.Desc {
			return nil, apperrors.QueryError("invalid sort direction %q", o.Direction)
		}
		keys = append(keys, sortKey{field: field, dir: o.Direction})
	}

	if len(keys) == 0 || keys[len(keys)-1].field != "_id" {
		dir := pagination.Asc
		if len(keys) > 0 {
			dir = keys[len(keys)-1].dir
		}
		keys = append(keys, sortKey{field: "_id", dir: dir})
	}
	return keys, nil
}

func (s *MongoStore[T]) sort(q pagination.Query) (bson.D, error) {
	keys, err := s.keys(q)
	if err != nil {
		return nil, err
	}
	sort := make(bson.D, len(keys))
	for i, k := range keys {
		v := 1
		if k.dir == pagination.Desc {
			v = -1
		}
		sort[i] = bson.E{Key: k.field, Value: v}
	}
	return sort, nil
}

// keyset builds the condition selecting documents strictly after the anchor:
// (k1 > a1) OR (k1 = a1 AND k2 > a2) OR ... with > flipped for descending keys.
func (s *MongoStore[T]) keyset(q pagination.Query, after *T) (bson.D, error) {
	keys, err := s.keys(q)
	if err != nil {
		return nil, err
	}

	raw, err := bson.Marshal(after)
	if err != nil {
		return nil, err
	}
	var anchor bson.M
	if err := bson.Unmarshal(raw, &anchor); err != nil {
		return nil, err
	}

	values := make([]any, len(keys))
	for i, k := range keys {
		values[i] = lookup(anchor, k.field)
	}

	or := make(bson.A, 0, len(keys))
	for i, k := range keys {
		clause := make(bson.D, 0, i+1)
		for j := 0; j < i; j++ {
			clause = append(clause, bson.E{Key: keys[j].field, Value: values[j]})
		}
		op := "$gt"
		if k.dir == pagination.Desc {
			op = "$lt"
		}
		clause = append(clause, bson.E{Key: k.field, Value: bson.M{op: values[i]}})
		or = append(or, clause)
	}
	return bson.D{{Key: "$or", Value: or}}, nil
}

// lookup reads a possibly dotted path from a decoded document.
func lookup(doc bson.M, path string) any {
	var cur any = doc
	for _, part := range strings.Split(path, ".") {
		switch m := cur.(type) {
		case bson.M:
			cur = m[part]
		case bson.D:
			cur = m.Map()[part]
		default:
			return nil
		}
	}
	return cur
}
