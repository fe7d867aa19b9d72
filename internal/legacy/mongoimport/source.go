package mongoimport

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Source streams the documents of one collection in _id order.
type Source interface {
	Each(ctx context.Context, collection string, fn func(doc bson.M) error) error
}

type MongoSource struct {
	client *mongo.Client
	db     *mongo.Database
}

const connectTimeout = 30 * time.Second

func Connect(ctx context.Context, uri, database string) (*MongoSource, error) {
	if uri == "" {
		return nil, fmt.Errorf("MONGO_URI is required")
	}
	opts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(connectTimeout).
		SetServerSelectionTimeout(connectTimeout).
		SetReadPreference(readpref.SecondaryPreferred())

	cctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	client, err := mongo.Connect(cctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(cctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return &MongoSource{client: client, db: client.Database(database)}, nil
}

func (m *MongoSource) Each(ctx context.Context, collection string, fn func(doc bson.M) error) error {
	cur, err := m.db.Collection(collection).Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return fmt.Errorf("find %s: %w", collection, err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return fmt.Errorf("decode %s: %w", collection, err)
		}
		if err := fn(doc); err != nil {
			return err
		}
	}
	return cur.Err()
}

func (m *MongoSource) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
