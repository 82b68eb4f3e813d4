package services

import (
	"context"
	"errors"
	"log"
	"time"

	"brewspot/db"
	"brewspot/models"
	"brewspot/websocket"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Contributor promotion thresholds. All four must hold at once.
const (
	contributorMinTrust    = 3
	contributorMinXP       = 300
	contributorMinApproved = 4
	contributorMaxRejected = 1
)

// meetsContributorThresholds tests the promotion conjunction against a profile
func meetsContributorThresholds(p *models.Profile) bool {
	return p.TrustLevel >= contributorMinTrust &&
		p.XP >= contributorMinXP &&
		p.Stats.ApprovedVenues >= contributorMinApproved &&
		p.Stats.RejectedVenues <= contributorMaxRejected
}

// EvaluateContributor promotes a user to contributor once the thresholds are
// met. The transition is one-way: a profile that is already a contributor is
// never re-evaluated downward, even if its stats later fall below the bar.
// Revocation is an explicit enforcement action outside this evaluator.
func EvaluateContributor(ctx context.Context, userID string) error {
	res, err := db.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		profiles := db.GetCollection(db.ProfilesCollection)

		var profile models.Profile
		if err := profiles.FindOne(sc, bson.M{"_id": userID}).Decode(&profile); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return false, ErrNotFound
			}
			return false, err
		}

		if profile.IsContributor {
			return false, nil
		}
		if !meetsContributorThresholds(&profile) {
			return false, nil
		}

		update := bson.M{"$set": bson.M{
			"isContributor": true,
			"updatedAt":     time.Now(),
		}}
		if _, err := profiles.UpdateOne(sc, bson.M{"_id": userID}, update); err != nil {
			return false, err
		}
		return true, nil
	})
	if err != nil {
		return err
	}

	if promoted, _ := res.(bool); promoted {
		log.Printf("User %s promoted to contributor", userID)
		websocket.BroadcastEngagementEvent(models.EngagementEvent{
			Type:      "contributor_promoted",
			UserID:    userID,
			Timestamp: time.Now(),
		})
		// The promotion unlocks the contributor badge and changes the
		// snapshot's contributor flag
		if err := EvaluateBadges(ctx, userID, "contributor_promoted"); err != nil {
			log.Printf("Badge evaluation after promotion failed for user %s: %v", userID, err)
		}
		if err := RefreshSnapshot(ctx, userID); err != nil {
			log.Printf("Snapshot refresh after promotion failed for user %s: %v", userID, err)
		}
	}
	return nil
}
