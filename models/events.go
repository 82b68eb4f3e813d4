package models

import "time"

// EngagementEvent is broadcast over the websocket hub after awards, badge
// unlocks, level ups, contributor promotions and check-ins
type EngagementEvent struct {
	Type      string    `json:"type"` // "score_updated", "level_up", "badge_awarded", "contributor_promoted", "check_in"
	UserID    string    `json:"userId"`
	Action    string    `json:"action,omitempty"`
	Points    int       `json:"points,omitempty"`
	NewXP     int       `json:"newXP,omitempty"`
	NewLevel  int       `json:"newLevel,omitempty"`
	BadgeID   string    `json:"badgeId,omitempty"`
	VenueID   string    `json:"venueId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// RateLimitEntry tracks per-user, per-action request counts in a fixed window
type RateLimitEntry struct {
	UserID      string    `bson:"userId" json:"userId"`
	Action      string    `bson:"action" json:"action"`
	Count       int       `bson:"count" json:"count"`
	WindowStart time.Time `bson:"windowStart" json:"windowStart"`
}
