package models

import "time"

// Venue moderation states. The moderation workflow itself lives outside the
// engagement core; it reports its decisions via the moderation endpoint.
const (
	VenuePending  = "pending"
	VenueApproved = "approved"
	VenueRejected = "rejected"
)

// GeoPoint is a WGS84 coordinate
type GeoPoint struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// Venue is the minimal venue document the engagement core reads and updates.
// Full venue CRUD is owned by the catalog service.
type Venue struct {
	ID           string    `bson:"_id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Status       string    `bson:"status" json:"status"`
	Location     GeoPoint  `bson:"location" json:"location"`
	CheckInCount int       `bson:"checkInCount" json:"checkInCount"`
	SubmittedBy  string    `bson:"submittedBy,omitempty" json:"submittedBy,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}
