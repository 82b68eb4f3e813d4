package models

import "time"

// Account status values. Suspension and banning are enforcement actions
// applied outside the engagement core; they are soft states, a profile is
// never deleted.
const (
	AccountActive    = "active"
	AccountWarned    = "warned"
	AccountSuspended = "suspended"
	AccountBanned    = "banned"
)

// Stats holds the per-user counters that drive badge unlocks and
// contributor eligibility
type Stats struct {
	Reviews        int `bson:"reviews" json:"reviews"`
	ApprovedVenues int `bson:"approvedVenues" json:"approvedVenues"`
	RejectedVenues int `bson:"rejectedVenues" json:"rejectedVenues"`
	PhotosUploaded int `bson:"photosUploaded" json:"photosUploaded"`
	LikesGiven     int `bson:"likesGiven" json:"likesGiven"`
	CheckIns       int `bson:"checkIns" json:"checkIns"`
	ProfileViews   int `bson:"profileViews" json:"profileViews"`
}

// Profile is the per-user aggregate. Level is derived from XP and recomputed
// on every award so it never drifts.
type Profile struct {
	ID            string    `bson:"_id" json:"id"`
	Email         string    `bson:"email" json:"email"`
	DisplayName   string    `bson:"displayName" json:"displayName"`
	AvatarURL     string    `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	Bio           string    `bson:"bio,omitempty" json:"bio,omitempty"`
	PasswordHash  string    `bson:"passwordHash,omitempty" json:"-"`
	IsModerator   bool      `bson:"isModerator" json:"isModerator"`
	XP            int       `bson:"xp" json:"xp"`
	Level         int       `bson:"level" json:"level"`
	TrustLevel    int       `bson:"trustLevel" json:"trustLevel"`
	IsContributor bool      `bson:"isContributor" json:"isContributor"`
	AccountStatus string    `bson:"accountStatus" json:"accountStatus"`
	Stats         Stats     `bson:"stats" json:"stats"`
	Badges        []string  `bson:"badges" json:"badges"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// HasBadge reports whether the profile already owns the given badge
func (p *Profile) HasBadge(badgeID string) bool {
	for _, b := range p.Badges {
		if b == badgeID {
			return true
		}
	}
	return false
}
