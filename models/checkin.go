package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CheckInRecord is an append-only audit event. Never mutated or deleted.
type CheckInRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    string             `bson:"userId" json:"userId"`
	VenueID   string             `bson:"venueId" json:"venueId"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}

// VisitStat is the per-target counter inside an aggregate. LastVisit is the
// authority for the check-in cooldown.
type VisitStat struct {
	Count     int       `bson:"count" json:"count"`
	LastVisit time.Time `bson:"lastVisit" json:"lastVisit"`
}

// VisitEntry is one row of a ranked top list, sorted descending by count
type VisitEntry struct {
	TargetID  string    `bson:"targetId" json:"targetId"`
	Count     int       `bson:"count" json:"count"`
	LastVisit time.Time `bson:"lastVisit" json:"lastVisit"`
}

// VisitAggregate ranks the venues a user has checked in to. TopTargets has no
// hard cap; display truncation happens at read time.
type VisitAggregate struct {
	UserID      string               `bson:"_id" json:"userId"`
	TotalVisits int                  `bson:"totalVisits" json:"totalVisits"`
	PerTarget   map[string]VisitStat `bson:"perTarget" json:"perTarget"`
	TopTargets  []VisitEntry         `bson:"topTargets" json:"topTargets"`
}

// VisitorAggregate ranks the users who have checked in to a venue.
// TopVisitors is hard-capped at MaxTopVisitors entries.
type VisitorAggregate struct {
	VenueID       string               `bson:"_id" json:"venueId"`
	TotalCheckIns int                  `bson:"totalCheckIns" json:"totalCheckIns"`
	PerVisitor    map[string]VisitStat `bson:"perVisitor" json:"perVisitor"`
	TopVisitors   []VisitEntry         `bson:"topVisitors" json:"topVisitors"`
}

// MaxTopVisitors caps the venue-side ranking list
const MaxTopVisitors = 20
