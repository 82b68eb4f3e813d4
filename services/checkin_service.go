package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"brewspot/db"
	"brewspot/models"
	"brewspot/utils"
	"brewspot/websocket"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	// GeofenceRadiusMeters is the maximum distance between the user and the
	// venue for a check-in to count as a physical visit
	GeofenceRadiusMeters = 50.0

	// CooldownWindow is the minimum gap between two check-ins by the same
	// user at the same venue
	CooldownWindow = 24 * time.Hour
)

// CheckInResult reports a successful check-in
type CheckInResult struct {
	RecordID    string `json:"recordId"`
	VenueID     string `json:"venueId"`
	VisitCount  int    `json:"visitCount"`  // visits by this user at this venue
	TotalVisits int    `json:"totalVisits"` // visits by this user anywhere
}

// inCooldown reports whether a visit at `now` is still inside the cooldown
// window following `lastVisit`. A zero lastVisit means no prior visit.
func inCooldown(lastVisit, now time.Time) bool {
	if lastVisit.IsZero() {
		return false
	}
	return now.Sub(lastVisit) < CooldownWindow
}

// upsertRanked places target into a ranked list with the given count and
// visit time, keeping the list sorted descending by count (ties: most recent
// first). A positive limit bounds the list length; limit <= 0 leaves it unbounded.
func upsertRanked(entries []models.VisitEntry, target string, count int, at time.Time, limit int) []models.VisitEntry {
	out := make([]models.VisitEntry, 0, len(entries)+1)
	for _, e := range entries {
		if e.TargetID != target {
			out = append(out, e)
		}
	}

	entry := models.VisitEntry{TargetID: target, Count: count, LastVisit: at}

	// The list is already sorted, so a single binary-searched insertion keeps
	// it that way at O(log K) comparisons plus one copy
	pos := sort.Search(len(out), func(i int) bool {
		if out[i].Count != entry.Count {
			return out[i].Count < entry.Count
		}
		return !out[i].LastVisit.After(entry.LastVisit)
	})
	out = append(out, models.VisitEntry{})
	copy(out[pos+1:], out[pos:])
	out[pos] = entry

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// CheckIn records a physical visit. The geofence check runs before any store
// access; the cooldown check and every aggregate update run inside one
// transaction so that two racing check-ins cannot both pass the cooldown or
// lose a counter increment. The cooldown authority is the lastVisit timestamp
// inside the user's own visit aggregate, read fresh in the transaction.
func CheckIn(ctx context.Context, userID, venueID string, userLoc models.GeoPoint) (*CheckInResult, error) {
	venues := db.GetCollection(db.VenuesCollection)
	var venue models.Venue
	if err := venues.FindOne(ctx, bson.M{"_id": venueID}).Decode(&venue); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if venue.Status != models.VenueApproved {
		return nil, ErrNotFound
	}

	distance := utils.HaversineMeters(userLoc.Lat, userLoc.Lng, venue.Location.Lat, venue.Location.Lng)
	if distance > GeofenceRadiusMeters {
		return nil, ErrTooFar
	}

	res, err := db.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		now := time.Now()
		userVisits := db.GetCollection(db.UserVisitsCollection)
		venueVisitors := db.GetCollection(db.VenueVisitorsCollection)
		profiles := db.GetCollection(db.ProfilesCollection)

		var visits models.VisitAggregate
		err := userVisits.FindOne(sc, bson.M{"_id": userID}).Decode(&visits)
		if errors.Is(err, mongo.ErrNoDocuments) {
			visits = models.VisitAggregate{UserID: userID, PerTarget: map[string]models.VisitStat{}}
		} else if err != nil {
			return nil, err
		}
		if visits.PerTarget == nil {
			visits.PerTarget = map[string]models.VisitStat{}
		}

		if inCooldown(visits.PerTarget[venueID].LastVisit, now) {
			return nil, ErrCooldown
		}

		var visitors models.VisitorAggregate
		err = venueVisitors.FindOne(sc, bson.M{"_id": venueID}).Decode(&visitors)
		if errors.Is(err, mongo.ErrNoDocuments) {
			visitors = models.VisitorAggregate{VenueID: venueID, PerVisitor: map[string]models.VisitStat{}}
		} else if err != nil {
			return nil, err
		}
		if visitors.PerVisitor == nil {
			visitors.PerVisitor = map[string]models.VisitStat{}
		}

		record := models.CheckInRecord{
			ID:        primitive.NewObjectID(),
			UserID:    userID,
			VenueID:   venueID,
			Timestamp: now,
		}
		if _, err := db.GetCollection(db.CheckInsCollection).InsertOne(sc, record); err != nil {
			return nil, err
		}

		userStat := visits.PerTarget[venueID]
		userStat.Count++
		userStat.LastVisit = now
		visits.PerTarget[venueID] = userStat
		visits.TotalVisits++
		visits.TopTargets = upsertRanked(visits.TopTargets, venueID, userStat.Count, now, 0)

		venueStat := visitors.PerVisitor[userID]
		venueStat.Count++
		venueStat.LastVisit = now
		visitors.PerVisitor[userID] = venueStat
		visitors.TotalCheckIns++
		visitors.TopVisitors = upsertRanked(visitors.TopVisitors, userID, venueStat.Count, now, models.MaxTopVisitors)

		upsert := options.Replace().SetUpsert(true)
		if _, err := userVisits.ReplaceOne(sc, bson.M{"_id": userID}, visits, upsert); err != nil {
			return nil, err
		}
		if _, err := venueVisitors.ReplaceOne(sc, bson.M{"_id": venueID}, visitors, upsert); err != nil {
			return nil, err
		}

		profileUpdate := bson.M{
			"$inc": bson.M{"stats.checkIns": 1},
			"$set": bson.M{"updatedAt": now},
		}
		result, err := profiles.UpdateOne(sc, bson.M{"_id": userID}, profileUpdate)
		if err != nil {
			return nil, err
		}
		if result.MatchedCount == 0 {
			return nil, ErrNotFound
		}

		venueUpdate := bson.M{"$inc": bson.M{"checkInCount": 1}}
		if _, err := venues.UpdateOne(sc, bson.M{"_id": venueID}, venueUpdate); err != nil {
			return nil, err
		}

		return &CheckInResult{
			RecordID:    record.ID.Hex(),
			VenueID:     venueID,
			VisitCount:  userStat.Count,
			TotalVisits: visits.TotalVisits,
		}, nil
	})
	if err != nil {
		if errors.Is(err, ErrCooldown) || errors.Is(err, ErrNotFound) {
			return nil, err
		}
		log.Printf("Check-in transaction failed: user=%s venue=%s: %v", userID, venueID, err)
		return nil, fmt.Errorf("%w: check-in failed", ErrUnavailable)
	}

	checkIn := res.(*CheckInResult)
	go runPostCheckInHooks(userID, venueID, checkIn)
	return checkIn, nil
}

// runPostCheckInHooks awards the check-in XP (which cascades the contributor,
// badge and snapshot evaluations) and broadcasts the visit. Best effort only.
func runPostCheckInHooks(userID, venueID string, checkIn *CheckInResult) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	points, _ := PointsFor("check_in")
	if _, err := AwardPoints(ctx, userID, points, "check_in", checkIn.RecordID); err != nil {
		log.Printf("Check-in award failed for user %s: %v", userID, err)
	}

	websocket.BroadcastEngagementEvent(models.EngagementEvent{
		Type:      "check_in",
		UserID:    userID,
		VenueID:   venueID,
		Timestamp: time.Now(),
	})
}
