package models

import "time"

// LeaderboardSnapshot is a denormalized copy of the ranking-relevant profile
// fields, refreshed after awards and check-ins. It is eventually consistent
// with the profile and may lag.
type LeaderboardSnapshot struct {
	UserID         string    `bson:"_id" json:"userId"`
	DisplayName    string    `bson:"displayName" json:"displayName"`
	AvatarURL      string    `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	TotalXP        int       `bson:"totalXP" json:"totalXP"`
	Level          int       `bson:"level" json:"level"`
	BadgeCount     int       `bson:"badgeCount" json:"badgeCount"`
	ApprovedVenues int       `bson:"approvedVenues" json:"approvedVenues"`
	CheckIns       int       `bson:"checkIns" json:"checkIns"`
	IsContributor  bool      `bson:"isContributor" json:"isContributor"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}
