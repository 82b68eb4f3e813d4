package db

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

var MongoClient *mongo.Client
var MongoDatabase *mongo.Database

// Collection names used by the engagement core
const (
	ProfilesCollection      = "profiles"
	AwardLogCollection      = "award_log"
	BadgeLogCollection      = "badge_log"
	CheckInsCollection      = "check_ins"
	UserVisitsCollection    = "user_visits"
	VenueVisitorsCollection = "venue_visitors"
	SnapshotsCollection     = "leaderboard_snapshots"
	VenuesCollection        = "venues"
	RateLimitsCollection    = "rate_limits"
)

// GetCollection returns a collection by name
func GetCollection(collectionName string) *mongo.Collection {
	return MongoDatabase.Collection(collectionName)
}

// extractDBName parses the database name from the URI, defaulting to "brewspot"
func extractDBName(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return "brewspot"
	}
	if u.Path != "" && u.Path != "/" {
		return u.Path[1:] // Trim leading '/'
	}
	return "brewspot"
}

// ConnectMongoDB establishes a connection to MongoDB using the provided URI
func ConnectMongoDB(uri string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Verify connection with a ping
	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	MongoClient = client
	dbName := extractDBName(uri)
	log.Printf("Using database: %s", dbName)

	MongoDatabase = client.Database(dbName)
	return nil
}

// WithTransaction runs fn inside a multi-document transaction with snapshot
// reads and majority writes. The driver retries fn on transient write
// conflicts, so fn must compute its writes only from documents read inside the
// current attempt and must not perform external side effects.
func WithTransaction(ctx context.Context, fn func(sc mongo.SessionContext) (interface{}, error)) (interface{}, error) {
	session, err := MongoClient.StartSession()
	if err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	txnOpts := options.Transaction().
		SetReadConcern(readconcern.Snapshot()).
		SetWriteConcern(writeconcern.Majority())

	return session.WithTransaction(ctx, fn, txnOpts)
}

// EnsureIndexes creates the indexes the engagement core relies on. Safe to
// call on every startup; Mongo treats existing identical indexes as a no-op.
func EnsureIndexes(ctx context.Context) error {
	checkIns := GetCollection(CheckInsCollection)
	_, err := checkIns.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "venueId", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create check_ins index: %w", err)
	}

	snapshots := GetCollection(SnapshotsCollection)
	for _, key := range []string{"totalXP", "checkIns"} {
		_, err := snapshots.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: key, Value: -1}},
		})
		if err != nil {
			return fmt.Errorf("failed to create snapshot index on %s: %w", key, err)
		}
	}
	return nil
}
