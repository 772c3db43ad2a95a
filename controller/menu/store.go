package menu

import (
	"context"
	"errors"
	"strings"
	"time"

	"sitecms_be/helper/atdb"
	"sitecms_be/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// store is the slice of the menus collection the handlers need. mongoStore is
// the production implementation; tests substitute an in-memory one so the
// reposition and delete write sequences can be observed directly.
type store interface {
	all(ctx context.Context) ([]model.MenuItem, error)
	get(ctx context.Context, id primitive.ObjectID) (model.MenuItem, error)
	childrenOf(ctx context.Context, parent primitive.ObjectID) ([]model.MenuItem, error)
	countSlug(ctx context.Context, slug string, exclude primitive.ObjectID) (int64, error)
	insert(ctx context.Context, item model.MenuItem) (primitive.ObjectID, error)
	setFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (int64, error)
	// shiftOrders adds delta to the order of every item under parent except
	// exclude whose order is above from (or equal to it, when inclusive).
	shiftOrders(ctx context.Context, parent *primitive.ObjectID, exclude primitive.ObjectID, from int, inclusive bool, delta int) error
	demoteChildren(ctx context.Context, parent primitive.ObjectID) error
	remove(ctx context.Context, id primitive.ObjectID) error
	inTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type mongoStore struct {
	db *mongo.Database
}

func (s *mongoStore) all(ctx context.Context) ([]model.MenuItem, error) {
	return atdb.GetAllDoc[model.MenuItem](ctx, s.db, Collection, bson.M{})
}

func (s *mongoStore) get(ctx context.Context, id primitive.ObjectID) (model.MenuItem, error) {
	return atdb.GetOneDoc[model.MenuItem](ctx, s.db, Collection, bson.M{"_id": id})
}

func (s *mongoStore) childrenOf(ctx context.Context, parent primitive.ObjectID) ([]model.MenuItem, error) {
	return atdb.GetAllDoc[model.MenuItem](ctx, s.db, Collection, bson.M{"parentId": parent})
}

func (s *mongoStore) countSlug(ctx context.Context, slug string, exclude primitive.ObjectID) (int64, error) {
	filter := bson.M{"slug": slug}
	if exclude != primitive.NilObjectID {
		filter["_id"] = bson.M{"$ne": exclude}
	}
	return atdb.CountDoc(ctx, s.db, Collection, filter)
}

func (s *mongoStore) insert(ctx context.Context, item model.MenuItem) (primitive.ObjectID, error) {
	return atdb.InsertOneDoc(ctx, s.db, Collection, item)
}

func (s *mongoStore) setFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (int64, error) {
	return atdb.UpdateOneDoc(ctx, s.db, Collection, bson.M{"_id": id}, bson.M{"$set": fields})
}

func (s *mongoStore) shiftOrders(ctx context.Context, parent *primitive.ObjectID, exclude primitive.ObjectID, from int, inclusive bool, delta int) error {
	op := "$gt"
	if inclusive {
		op = "$gte"
	}
	_, err := atdb.IncManyDoc(ctx, s.db, Collection, bson.M{
		"parentId": parent,
		"_id":      bson.M{"$ne": exclude},
		"order":    bson.M{op: from},
	}, "order", delta)
	return err
}

func (s *mongoStore) demoteChildren(ctx context.Context, parent primitive.ObjectID) error {
	_, err := atdb.UpdateManyDoc(ctx, s.db, Collection, bson.M{"parentId": parent}, bson.M{
		"$set": bson.M{"parentId": nil, "updatedAt": time.Now()},
	})
	return err
}

func (s *mongoStore) remove(ctx context.Context, id primitive.ObjectID) error {
	_, err := atdb.DeleteOneDoc(ctx, s.db, Collection, bson.M{"_id": id})
	return err
}

// inTransaction runs fn inside a multi-document transaction when the
// deployment supports one. Standalone mongod instances do not, so the same
// writes fall back to sequential best-effort application there.
func (s *mongoStore) inTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := s.db.Client().StartSession()
	if err != nil {
		return fn(ctx)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	if err != nil && transactionsUnsupported(err) {
		return fn(ctx)
	}
	return err
}

func transactionsUnsupported(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Code == 20 {
		return true
	}
	return strings.Contains(err.Error(), "Transaction numbers are only allowed")
}
