package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"brewspot/db"
	"brewspot/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ApplyVenueDecision records a moderation outcome for a pending venue. The
// pending->decided status flip happens transactionally, so a decision is
// one-shot: a second call for the same venue finds it already decided and
// returns ErrNotFound. That one-shot guarantee is what lets AdjustTrust go
// without its own idempotency log.
func ApplyVenueDecision(ctx context.Context, venueID string, approve bool) error {
	status := models.VenueRejected
	action := "venue_rejected"
	trustDelta := -1
	if approve {
		status = models.VenueApproved
		action = "venue_approved"
		trustDelta = 1
	}

	res, err := db.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		venues := db.GetCollection(db.VenuesCollection)

		var venue models.Venue
		if err := venues.FindOne(sc, bson.M{"_id": venueID}).Decode(&venue); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		if venue.Status != models.VenuePending {
			return nil, ErrNotFound
		}

		update := bson.M{"$set": bson.M{"status": status}}
		if _, err := venues.UpdateOne(sc, bson.M{"_id": venueID}, update); err != nil {
			return nil, err
		}
		return venue.SubmittedBy, nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		log.Printf("Venue decision failed: venue=%s approve=%v: %v", venueID, approve, err)
		return fmt.Errorf("%w: venue decision failed", ErrUnavailable)
	}

	submitter, _ := res.(string)
	if submitter == "" {
		return nil
	}

	// Credit the submitter. The award is idempotent on (user, action, venue),
	// so even a duplicated downstream run cannot double-count.
	points, _ := PointsFor(action)
	if _, err := AwardPoints(ctx, submitter, points, action, venueID); err != nil {
		log.Printf("Award after venue decision failed: user=%s venue=%s: %v", submitter, venueID, err)
	}
	if err := AdjustTrust(ctx, submitter, trustDelta); err != nil {
		log.Printf("Trust adjustment after venue decision failed: user=%s venue=%s: %v", submitter, venueID, err)
	}
	return nil
}
