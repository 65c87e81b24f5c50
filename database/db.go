package database

import (
	"context"
	"log"
	"time"

	"frontdesk/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoClient is the shared client the repository packages open their
// collections from.
var MongoClient *mongo.Client

// InitDB connects to MongoDB and verifies the connection with a ping. The
// reservation store is the system of record, so startup aborts if the
// database is unreachable.
func InitDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(config.AppConfig.DatabaseURL)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("failed to ping MongoDB: %v", err)
	}
	MongoClient = client
	log.Println("reservation store connected")
}
