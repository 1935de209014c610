package main

import (
	"context"
	"log"
	"time"

	"forum-api/internal/config"
	"forum-api/internal/database"
	"forum-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	log.Println("Starting seed...")

	cfg := config.Load()

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx := context.Background()

	seedUsers(ctx, mongoDB.Database)
	seedTags(ctx, mongoDB.Database)
	seedPosts(ctx, mongoDB.Database)

	log.Println("Seed completed successfully!")
}

func seedUsers(ctx context.Context, db *mongo.Database) {
	collection := db.Collection("users")

	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear users: %v", err)
	}

	users := []interface{}{
		models.User{
			Email:     "admin@example.com",
			Name:      "Jane Admin",
			Role:      models.RoleAdmin,
			Badge:     models.BadgeGold,
			CreatedAt: time.Now(),
		},
		models.User{
			Email:     "gold@example.com",
			Name:      "Gordon Gold",
			Badge:     models.BadgeGold,
			PostCount: 12,
			CreatedAt: time.Now(),
		},
		models.User{
			Email:     "free@example.com",
			Name:      "Frida Free",
			PostCount: 2,
			CreatedAt: time.Now(),
		},
	}

	result, err := collection.InsertMany(ctx, users)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}
	log.Printf("Seeded %d users", len(result.InsertedIDs))
}

func seedTags(ctx context.Context, db *mongo.Database) {
	collection := db.Collection("tags")

	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear tags: %v", err)
	}

	tags := []interface{}{
		models.Tag{Tag: "golang"},
		models.Tag{Tag: "databases"},
		models.Tag{Tag: "web"},
		models.Tag{Tag: "career"},
	}

	result, err := collection.InsertMany(ctx, tags)
	if err != nil {
		log.Fatalf("Failed to seed tags: %v", err)
	}
	log.Printf("Seeded %d tags", len(result.InsertedIDs))
}

func seedPosts(ctx context.Context, db *mongo.Database) {
	collection := db.Collection("posts")

	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear posts: %v", err)
	}

	posts := []interface{}{
		models.Post{
			Author:      models.PostAuthor{Name: "Gordon Gold", Email: "gold@example.com"},
			Title:       "Generics in practice",
			Description: "What finally made type parameters click for me.",
			Tags:        "golang",
			UpVote:      14,
			DownVote:    2,
			Time:        time.Now().Add(-48 * time.Hour),
		},
		models.Post{
			Author:      models.PostAuthor{Name: "Frida Free", Email: "free@example.com"},
			Title:       "Choosing a database for side projects",
			Description: "Postgres, Mongo, or SQLite? A field report.",
			Tags:        "databases",
			UpVote:      7,
			DownVote:    1,
			Time:        time.Now().Add(-24 * time.Hour),
		},
		models.Post{
			Author:      models.PostAuthor{Name: "Gordon Gold", Email: "gold@example.com"},
			Title:       "Interview prep that actually helped",
			Description: "Notes from three months of practice.",
			Tags:        "career",
			UpVote:      21,
			DownVote:    5,
			Time:        time.Now().Add(-2 * time.Hour),
		},
	}

	result, err := collection.InsertMany(ctx, posts)
	if err != nil {
		log.Fatalf("Failed to seed posts: %v", err)
	}
	log.Printf("Seeded %d posts", len(result.InsertedIDs))
}
