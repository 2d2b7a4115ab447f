package utils

import (
	"context"
	"log"
	"os"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoClient is the process-wide MongoDB client, assigned at startup.
var MongoClient *mongo.Client

// InitMongoClient connects the global client using the given options. The
// caller builds options from config so the URI and pool sizes stay in one
// place.
func InitMongoClient(opts *options.ClientOptions) {
	client, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	MongoClient = client
}

// CollectionFor returns the named collection in the configured database.
func CollectionFor(client *mongo.Client, envKey, fallback string) *mongo.Collection {
	dbName := GetEnvAsString("MONGO_DB", "weekplanner")
	name := os.Getenv(envKey)
	if name == "" {
		name = fallback
	}
	return client.Database(dbName).Collection(name)
}
