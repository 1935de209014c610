package main

import (
	"context"
	"log"
	"time"

	"forum-api/internal/config"
	"forum-api/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	log.Println("Starting migration...")

	cfg := config.Load()

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	createIndexes(ctx, mongoDB.Database)

	log.Println("Migration completed successfully!")
}

func createIndexes(ctx context.Context, db *mongo.Database) {
	// Users indexes
	createIndex(ctx, db, "users", bson.D{{Key: "email", Value: 1}}, &options.IndexOptions{
		Unique: ptrBool(true),
	})

	// Tags indexes
	createIndex(ctx, db, "tags", bson.D{{Key: "tag", Value: 1}}, &options.IndexOptions{
		Unique: ptrBool(true),
	})

	// Posts indexes
	createIndex(ctx, db, "posts", bson.D{{Key: "author.email", Value: 1}}, nil)
	createIndex(ctx, db, "posts", bson.D{{Key: "time", Value: -1}}, nil)

	// Comments indexes
	createIndex(ctx, db, "comments", bson.D{{Key: "postTitle", Value: 1}}, nil)

	// Payments indexes
	createIndex(ctx, db, "payments", bson.D{{Key: "email", Value: 1}}, nil)

	// Reports indexes
	createIndex(ctx, db, "reports", bson.D{{Key: "commentId", Value: 1}}, nil)
}

func createIndex(ctx context.Context, db *mongo.Database, collection string, keys bson.D, opts *options.IndexOptions) {
	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: opts,
	}

	name, err := db.Collection(collection).Indexes().CreateOne(ctx, indexModel)
	if err != nil {
		log.Printf("Warning: Failed to create index on %s: %v", collection, err)
		return
	}

	log.Printf("Created index %s on %s", name, collection)
}

func ptrBool(b bool) *bool {
	return &b
}
