package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"brewspot/db"
	"brewspot/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Leaderboard kinds and cache parameters. The cache bounds read traffic
// against the snapshot collection under bursty leaderboard polling; ranking
// freshness is approximate by design.
const (
	LeaderboardByXP       = "xp"
	LeaderboardByCheckIns = "checkins"

	leaderboardCacheTTL     = 5 * time.Minute
	leaderboardDefaultLimit = 50
	leaderboardMaxLimit     = 100
)

type cachedBoard struct {
	entries   []models.LeaderboardSnapshot
	fetchedAt time.Time
}

var (
	leaderboardCache = make(map[string]cachedBoard)
	leaderboardMutex sync.RWMutex
)

// RefreshSnapshot rewrites a user's denormalized leaderboard row from the
// current profile. Called after awards, check-ins and promotions; the
// snapshot lags the profile and that is acceptable.
func RefreshSnapshot(ctx context.Context, userID string) error {
	profiles := db.GetCollection(db.ProfilesCollection)

	var profile models.Profile
	if err := profiles.FindOne(ctx, bson.M{"_id": userID}).Decode(&profile); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}

	snapshot := models.LeaderboardSnapshot{
		UserID:         profile.ID,
		DisplayName:    profile.DisplayName,
		AvatarURL:      profile.AvatarURL,
		TotalXP:        profile.XP,
		Level:          profile.Level,
		BadgeCount:     len(profile.Badges),
		ApprovedVenues: profile.Stats.ApprovedVenues,
		CheckIns:       profile.Stats.CheckIns,
		IsContributor:  profile.IsContributor,
		UpdatedAt:      time.Now(),
	}

	snapshots := db.GetCollection(db.SnapshotsCollection)
	opts := options.Replace().SetUpsert(true)
	if _, err := snapshots.ReplaceOne(ctx, bson.M{"_id": userID}, snapshot, opts); err != nil {
		return fmt.Errorf("failed to write leaderboard snapshot: %w", err)
	}
	return nil
}

// sortFieldFor maps a leaderboard kind to its snapshot sort field
func sortFieldFor(kind string) (string, error) {
	switch kind {
	case LeaderboardByXP, "":
		return "totalXP", nil
	case LeaderboardByCheckIns:
		return "checkIns", nil
	default:
		return "", fmt.Errorf("unknown leaderboard kind %q", kind)
	}
}

// clampLimit normalizes a requested page size
func clampLimit(limit int) int {
	if limit <= 0 {
		return leaderboardDefaultLimit
	}
	if limit > leaderboardMaxLimit {
		return leaderboardMaxLimit
	}
	return limit
}

// GetLeaderboard returns the top snapshot rows for a kind, serving from the
// process-local cache while the entry is younger than the TTL. It reads only
// the snapshot collection, never live profiles.
func GetLeaderboard(ctx context.Context, kind string, limit int) ([]models.LeaderboardSnapshot, error) {
	field, err := sortFieldFor(kind)
	if err != nil {
		return nil, err
	}
	limit = clampLimit(limit)
	cacheKey := fmt.Sprintf("%s:%d", field, limit)

	leaderboardMutex.RLock()
	cached, ok := leaderboardCache[cacheKey]
	leaderboardMutex.RUnlock()
	if ok && time.Since(cached.fetchedAt) < leaderboardCacheTTL {
		return cached.entries, nil
	}

	snapshots := db.GetCollection(db.SnapshotsCollection)
	findOpts := options.Find().
		SetSort(bson.D{{Key: field, Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := snapshots.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		log.Printf("Failed to fetch leaderboard (%s): %v", field, err)
		return nil, fmt.Errorf("%w: leaderboard query failed", ErrUnavailable)
	}
	defer cursor.Close(ctx)

	var entries []models.LeaderboardSnapshot
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("%w: leaderboard decode failed", ErrUnavailable)
	}

	leaderboardMutex.Lock()
	leaderboardCache[cacheKey] = cachedBoard{entries: entries, fetchedAt: time.Now()}
	leaderboardMutex.Unlock()

	return entries, nil
}

// InvalidateLeaderboardCache drops every cached board. Used by tests; the
// serving path relies on TTL expiry alone.
func InvalidateLeaderboardCache() {
	leaderboardMutex.Lock()
	leaderboardCache = make(map[string]cachedBoard)
	leaderboardMutex.Unlock()
}
