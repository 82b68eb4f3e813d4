package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"brewspot/db"
	"brewspot/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AdjustTrust applies a moderation outcome to a user's trust level. There is
// no idempotency log here: approval and rejection are one-shot admin actions,
// so the caller invokes this at most once per decision. Trust never goes
// below zero; repeated rejections clamp instead of driving it negative.
func AdjustTrust(ctx context.Context, userID string, delta int) error {
	_, err := db.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		profiles := db.GetCollection(db.ProfilesCollection)

		var profile models.Profile
		if err := profiles.FindOne(sc, bson.M{"_id": userID}).Decode(&profile); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, ErrNotFound
			}
			return nil, err
		}

		trust := profile.TrustLevel + delta
		if trust < 0 {
			trust = 0
		}

		update := bson.M{"$set": bson.M{
			"trustLevel": trust,
			"updatedAt":  time.Now(),
		}}
		if _, err := profiles.UpdateOne(sc, bson.M{"_id": userID}, update); err != nil {
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		log.Printf("Trust adjustment failed: user=%s delta=%d: %v", userID, delta, err)
		return fmt.Errorf("%w: trust adjustment failed", ErrUnavailable)
	}

	// Trust changes can tip the contributor thresholds
	if err := EvaluateContributor(ctx, userID); err != nil {
		log.Printf("Contributor evaluation after trust change failed for user %s: %v", userID, err)
	}
	return nil
}
