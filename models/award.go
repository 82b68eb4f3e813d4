package models

import "time"

// AwardLogEntry is the idempotency guard for point awards. The _id is the
// deterministic composite key over (userId, action, referenceId); at most one
// entry per key ever exists. Entries are immutable and never deleted.
type AwardLogEntry struct {
	ID          string    `bson:"_id" json:"id"`
	UserID      string    `bson:"userId" json:"userId"`
	Action      string    `bson:"action" json:"action"`
	ReferenceID string    `bson:"referenceId" json:"referenceId"`
	Amount      int       `bson:"amount" json:"amount"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// BadgeLogEntry records a badge unlock, keyed by (userId, badgeId). Same
// idempotency role as AwardLogEntry: the insert either succeeds once or hits
// a duplicate key, which makes unlock notifications at-most-once.
type BadgeLogEntry struct {
	ID           string    `bson:"_id" json:"id"`
	UserID       string    `bson:"userId" json:"userId"`
	BadgeID      string    `bson:"badgeId" json:"badgeId"`
	AwardedAt    time.Time `bson:"awardedAt" json:"awardedAt"`
	TriggerEvent string    `bson:"triggerEvent,omitempty" json:"triggerEvent,omitempty"`
}
