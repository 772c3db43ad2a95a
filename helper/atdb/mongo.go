package atdb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DBInfo struct {
	DBString string
	DBName   string
}

func MongoConnect(mconn DBInfo) (*mongo.Database, error) {
	client, err := mongo.Connect(context.TODO(), options.Client().ApplyURI(mconn.DBString))
	if err != nil {
		return nil, fmt.Errorf("failed to open connection: %v", err)
	}

	if err := client.Ping(context.TODO(), nil); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	return client.Database(mconn.DBName), nil
}

func InsertOneDoc(ctx context.Context, db *mongo.Database, collection string, doc interface{}) (primitive.ObjectID, error) {
	res, err := db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert document: %v", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

func GetOneDoc[T any](ctx context.Context, db *mongo.Database, collection string, filter bson.M) (T, error) {
	var result T
	err := db.Collection(collection).FindOne(ctx, filter).Decode(&result)
	if err != nil {
		return result, err
	}
	return result, nil
}

func GetAllDoc[T any](ctx context.Context, db *mongo.Database, collection string, filter bson.M, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := db.Collection(collection).Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch documents: %v", err)
	}
	defer cursor.Close(ctx)

	var results []T
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode documents: %v", err)
	}
	return results, nil
}

func UpdateOneDoc(ctx context.Context, db *mongo.Database, collection string, filter bson.M, update bson.M) (int64, error) {
	res, err := db.Collection(collection).UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to update document: %v", err)
	}
	return res.MatchedCount, nil
}

func UpdateManyDoc(ctx context.Context, db *mongo.Database, collection string, filter bson.M, update bson.M) (int64, error) {
	res, err := db.Collection(collection).UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to update documents: %v", err)
	}
	return res.ModifiedCount, nil
}

// IncManyDoc shifts an integer field by delta on every document matching
// filter. The menu reposition protocol uses this for sibling-order shifts.
func IncManyDoc(ctx context.Context, db *mongo.Database, collection string, filter bson.M, field string, delta int) (int64, error) {
	return UpdateManyDoc(ctx, db, collection, filter, bson.M{"$inc": bson.M{field: delta}})
}

func DeleteOneDoc(ctx context.Context, db *mongo.Database, collection string, filter bson.M) (int64, error) {
	res, err := db.Collection(collection).DeleteOne(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to delete document: %v", err)
	}
	return res.DeletedCount, nil
}

func CountDoc(ctx context.Context, db *mongo.Database, collection string, filter bson.M) (int64, error) {
	count, err := db.Collection(collection).CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count documents: %v", err)
	}
	return count, nil
}
