package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"brewspot/db"
	"brewspot/models"
	"brewspot/websocket"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// BadgeSpec maps a badge to the stat and threshold that unlock it. The one
// catalog below drives both unlock evaluation and progress display.
type BadgeSpec struct {
	ID        string `json:"id"`
	Category  string `json:"category"` // "community", "contribution", "excellence"
	Name      string `json:"name"`
	Stat      string `json:"stat"`
	Threshold int    `json:"threshold"`
}

var badgeCatalog = []BadgeSpec{
	// Community: reviews and likes
	{ID: "first_review", Category: "community", Name: "First Review", Stat: "reviews", Threshold: 1},
	{ID: "reviews_5", Category: "community", Name: "Regular Reviewer", Stat: "reviews", Threshold: 5},
	{ID: "reviews_10", Category: "community", Name: "Seasoned Reviewer", Stat: "reviews", Threshold: 10},
	{ID: "reviews_25", Category: "community", Name: "Review Devotee", Stat: "reviews", Threshold: 25},
	{ID: "reviews_50", Category: "community", Name: "Review Veteran", Stat: "reviews", Threshold: 50},
	{ID: "reviews_100", Category: "community", Name: "Review Legend", Stat: "reviews", Threshold: 100},
	{ID: "likes_10", Category: "community", Name: "Supporter", Stat: "likesGiven", Threshold: 10},
	{ID: "likes_50", Category: "community", Name: "Cheerleader", Stat: "likesGiven", Threshold: 50},
	{ID: "likes_100", Category: "community", Name: "Hype Machine", Stat: "likesGiven", Threshold: 100},

	// Contribution: venues and photos
	{ID: "first_venue", Category: "contribution", Name: "Spot Finder", Stat: "approvedVenues", Threshold: 1},
	{ID: "venues_5", Category: "contribution", Name: "Scout", Stat: "approvedVenues", Threshold: 5},
	{ID: "venues_10", Category: "contribution", Name: "Pathfinder", Stat: "approvedVenues", Threshold: 10},
	{ID: "venues_25", Category: "contribution", Name: "Cartographer", Stat: "approvedVenues", Threshold: 25},
	{ID: "venues_50", Category: "contribution", Name: "City Curator", Stat: "approvedVenues", Threshold: 50},
	{ID: "first_photo", Category: "contribution", Name: "First Shot", Stat: "photosUploaded", Threshold: 1},
	{ID: "photos_10", Category: "contribution", Name: "Photographer", Stat: "photosUploaded", Threshold: 10},
	{ID: "photos_25", Category: "contribution", Name: "Gallery Builder", Stat: "photosUploaded", Threshold: 25},

	// Excellence: check-ins and the contributor privilege
	{ID: "first_checkin", Category: "excellence", Name: "First Visit", Stat: "checkIns", Threshold: 1},
	{ID: "checkins_10", Category: "excellence", Name: "Regular", Stat: "checkIns", Threshold: 10},
	{ID: "checkins_25", Category: "excellence", Name: "Local", Stat: "checkIns", Threshold: 25},
	{ID: "checkins_50", Category: "excellence", Name: "Fixture", Stat: "checkIns", Threshold: 50},
	{ID: "contributor", Category: "excellence", Name: "Trusted Contributor", Stat: "contributor", Threshold: 1},
}

// statValue resolves a catalog stat selector against a profile
func statValue(p *models.Profile, stat string) int {
	switch stat {
	case "reviews":
		return p.Stats.Reviews
	case "approvedVenues":
		return p.Stats.ApprovedVenues
	case "photosUploaded":
		return p.Stats.PhotosUploaded
	case "likesGiven":
		return p.Stats.LikesGiven
	case "checkIns":
		return p.Stats.CheckIns
	case "contributor":
		if p.IsContributor {
			return 1
		}
		return 0
	}
	return 0
}

// dueBadges returns the catalog entries whose threshold the profile meets but
// whose badge it does not own yet
func dueBadges(p *models.Profile) []BadgeSpec {
	var due []BadgeSpec
	for _, spec := range badgeCatalog {
		if p.HasBadge(spec.ID) {
			continue
		}
		if statValue(p, spec.Stat) >= spec.Threshold {
			due = append(due, spec)
		}
	}
	return due
}

// badgeLogKey matches the store contract badge_log/{userId}_badge_{badgeId}
func badgeLogKey(userID, badgeID string) string {
	return fmt.Sprintf("%s_badge_%s", userID, badgeID)
}

// EvaluateBadges unlocks every badge the user's current stats qualify for.
// The badge-log insert is the arbiter: its key is unique per (user, badge),
// so however many times the evaluator runs, each badge produces exactly one
// log entry, one set insertion and one notification. A duplicate-key error
// means a concurrent evaluation won the race and is skipped silently.
func EvaluateBadges(ctx context.Context, userID, triggerEvent string) error {
	profiles := db.GetCollection(db.ProfilesCollection)

	var profile models.Profile
	if err := profiles.FindOne(ctx, bson.M{"_id": userID}).Decode(&profile); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}

	badgeLog := db.GetCollection(db.BadgeLogCollection)
	for _, spec := range dueBadges(&profile) {
		entry := models.BadgeLogEntry{
			ID:           badgeLogKey(userID, spec.ID),
			UserID:       userID,
			BadgeID:      spec.ID,
			AwardedAt:    time.Now(),
			TriggerEvent: triggerEvent,
		}
		if _, err := badgeLog.InsertOne(ctx, entry); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				continue
			}
			log.Printf("Failed to write badge log for user %s badge %s: %v", userID, spec.ID, err)
			continue
		}

		update := bson.M{
			"$addToSet": bson.M{"badges": spec.ID},
			"$set":      bson.M{"updatedAt": time.Now()},
		}
		if _, err := profiles.UpdateOne(ctx, bson.M{"_id": userID}, update); err != nil {
			log.Printf("Failed to add badge %s to user %s: %v", spec.ID, userID, err)
			continue
		}

		websocket.BroadcastEngagementEvent(models.EngagementEvent{
			Type:      "badge_awarded",
			UserID:    userID,
			BadgeID:   spec.ID,
			Timestamp: time.Now(),
		})
	}
	return nil
}

// BadgeProgressItem reports how close a user is to one badge
type BadgeProgressItem struct {
	BadgeSpec
	Current  int  `json:"current"`
	Unlocked bool `json:"unlocked"`
}

// BadgeProgress computes progress toward every catalog badge from the same
// table that drives unlocking
func BadgeProgress(p *models.Profile) []BadgeProgressItem {
	progress := make([]BadgeProgressItem, 0, len(badgeCatalog))
	for _, spec := range badgeCatalog {
		current := statValue(p, spec.Stat)
		if current > spec.Threshold {
			current = spec.Threshold
		}
		progress = append(progress, BadgeProgressItem{
			BadgeSpec: spec,
			Current:   current,
			Unlocked:  p.HasBadge(spec.ID),
		})
	}
	return progress
}
