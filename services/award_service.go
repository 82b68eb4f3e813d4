package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"time"

	"brewspot/db"
	"brewspot/models"
	"brewspot/progression"
	"brewspot/websocket"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Point values per action. Venue rejection carries zero points but still
// produces an award-log entry so the rejected-venue counter is bumped
// exactly once per decision.
var actionPoints = map[string]int{
	"review":         10,
	"venue_approved": 25,
	"venue_rejected": 0,
	"like":           2,
	"photo":          5,
	"check_in":       5,
}

// Actions clients may report directly through the engagement endpoint.
// Moderation outcomes and check-ins go through their own services.
var clientActions = map[string]bool{
	"review": true,
	"like":   true,
	"photo":  true,
}

// AwardResult reports the outcome of an AwardPoints call. AlreadyAwarded
// means the (user, action, reference) triple was processed before and nothing
// changed.
type AwardResult struct {
	AlreadyAwarded bool `json:"alreadyAwarded"`
	NewXP          int  `json:"newXP"`
	NewLevel       int  `json:"newLevel"`
	LeveledUp      bool `json:"leveledUp"`
}

// AwardKey builds the deterministic idempotency key for an award. Fields are
// length-prefixed before hashing so a delimiter inside referenceId cannot
// collide with another triple.
func AwardKey(userID, action, referenceID string) string {
	h := sha256.New()
	for _, field := range []string{userID, action, referenceID} {
		fmt.Fprintf(h, "%d:%s", len(field), field)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// IsClientAction reports whether clients may submit this action themselves
func IsClientAction(action string) bool {
	return clientActions[action]
}

// PointsFor returns the configured point value for an action
func PointsFor(action string) (int, error) {
	points, ok := actionPoints[action]
	if !ok {
		return 0, ErrUnknownAction
	}
	return points, nil
}

// applyActionStat bumps the profile counter that corresponds to an action.
// Check-in counts are maintained by the check-in transaction itself, so the
// XP award for a check-in leaves stats alone.
func applyActionStat(stats *models.Stats, action string) {
	switch action {
	case "review":
		stats.Reviews++
	case "venue_approved":
		stats.ApprovedVenues++
	case "venue_rejected":
		stats.RejectedVenues++
	case "photo":
		stats.PhotosUploaded++
	case "like":
		stats.LikesGiven++
	}
}

// AwardPoints converts a user action into XP, exactly once per
// (userID, action, referenceID) triple. The idempotency check, the XP sum and
// the level recomputation all happen inside one transaction over the award
// log entry and the profile, so concurrent awards for the same user cannot
// lose updates. Duplicate calls are absorbed silently and report
// AlreadyAwarded.
func AwardPoints(ctx context.Context, userID string, amount int, action, referenceID string) (*AwardResult, error) {
	key := AwardKey(userID, action, referenceID)

	res, err := db.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		awardLog := db.GetCollection(db.AwardLogCollection)

		var existing models.AwardLogEntry
		err := awardLog.FindOne(sc, bson.M{"_id": key}).Decode(&existing)
		if err == nil {
			return &AwardResult{AlreadyAwarded: true}, nil
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}

		profiles := db.GetCollection(db.ProfilesCollection)
		var profile models.Profile
		if err := profiles.FindOne(sc, bson.M{"_id": userID}).Decode(&profile); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, ErrNotFound
			}
			return nil, err
		}

		now := time.Now()
		entry := models.AwardLogEntry{
			ID:          key,
			UserID:      userID,
			Action:      action,
			ReferenceID: referenceID,
			Amount:      amount,
			CreatedAt:   now,
		}
		if _, err := awardLog.InsertOne(sc, entry); err != nil {
			return nil, err
		}

		oldLevel := profile.Level
		profile.XP += amount
		profile.Level = progression.LevelFor(profile.XP)
		applyActionStat(&profile.Stats, action)
		profile.UpdatedAt = now

		if _, err := profiles.ReplaceOne(sc, bson.M{"_id": userID}, profile); err != nil {
			return nil, err
		}

		return &AwardResult{
			NewXP:     profile.XP,
			NewLevel:  profile.Level,
			LeveledUp: profile.Level > oldLevel,
		}, nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Printf("Award transaction failed: user=%s action=%s ref=%s: %v", userID, action, referenceID, err)
		return nil, fmt.Errorf("%w: award failed", ErrUnavailable)
	}

	result := res.(*AwardResult)
	if !result.AlreadyAwarded {
		go runPostAwardHooks(userID, amount, action, result)
	}
	return result, nil
}

// runPostAwardHooks runs the non-critical downstream steps after a committed
// award. Each step logs and swallows its own failure; none of them can roll
// back the award.
func runPostAwardHooks(userID string, amount int, action string, result *AwardResult) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := EvaluateContributor(ctx, userID); err != nil {
		log.Printf("Contributor evaluation failed for user %s: %v", userID, err)
	}
	if err := EvaluateBadges(ctx, userID, action); err != nil {
		log.Printf("Badge evaluation failed for user %s: %v", userID, err)
	}
	if err := RefreshSnapshot(ctx, userID); err != nil {
		log.Printf("Snapshot refresh failed for user %s: %v", userID, err)
	}

	websocket.BroadcastEngagementEvent(models.EngagementEvent{
		Type:      "score_updated",
		UserID:    userID,
		Action:    action,
		Points:    amount,
		NewXP:     result.NewXP,
		NewLevel:  result.NewLevel,
		Timestamp: time.Now(),
	})
	if result.LeveledUp {
		websocket.BroadcastEngagementEvent(models.EngagementEvent{
			Type:      "level_up",
			UserID:    userID,
			NewLevel:  result.NewLevel,
			Timestamp: time.Now(),
		})
	}
}

// RecordAction awards the configured points for a client-reported action
func RecordAction(ctx context.Context, userID, action, referenceID string) (*AwardResult, error) {
	points, err := PointsFor(action)
	if err != nil {
		return nil, err
	}
	return AwardPoints(ctx, userID, points, action, referenceID)
}
