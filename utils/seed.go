package utils

import (
	"context"
	"log"
	"time"

	"brewspot/db"
	"brewspot/models"
)

// SeedDemoData inserts sample profiles and venues into the database. Existing
// documents with the same ids are left untouched.
func SeedDemoData() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	profiles := db.GetCollection(db.ProfilesCollection)
	now := time.Now()

	demoHash, err := HashPassword("brewspot-demo")
	if err != nil {
		log.Printf("Failed to hash demo password: %v", err)
		return
	}

	users := []models.Profile{
		{
			ID:            "demo-alice",
			Email:         "alice@example.com",
			DisplayName:   "Alice Johnson",
			Bio:           "Espresso purist",
			PasswordHash:  demoHash,
			Level:         1,
			AccountStatus: models.AccountActive,
			Badges:        []string{},
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:            "demo-bob",
			Email:         "bob@example.com",
			DisplayName:   "Bob Smith",
			Bio:           "Always hunting new roasters",
			PasswordHash:  demoHash,
			Level:         1,
			AccountStatus: models.AccountActive,
			Badges:        []string{},
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:            "demo-carol",
			Email:         "carol@example.com",
			DisplayName:   "Carol Davis",
			Bio:           "Filter over everything",
			PasswordHash:  demoHash,
			IsModerator:   true,
			Level:         1,
			AccountStatus: models.AccountActive,
			Badges:        []string{},
			CreatedAt:     now,
			UpdatedAt:     now,
		},
	}

	for _, user := range users {
		if _, err := profiles.InsertOne(ctx, user); err != nil {
			// Duplicate key means the profile is already seeded
			continue
		}
	}

	venues := db.GetCollection(db.VenuesCollection)
	spots := []models.Venue{
		{
			ID:        "demo-roastery",
			Name:      "Mitte Roastery",
			Status:    models.VenueApproved,
			Location:  models.GeoPoint{Lat: 52.5302, Lng: 13.4012},
			CreatedAt: now,
		},
		{
			ID:        "demo-espresso-bar",
			Name:      "Kiez Espresso Bar",
			Status:    models.VenueApproved,
			Location:  models.GeoPoint{Lat: 52.4991, Lng: 13.4183},
			CreatedAt: now,
		},
	}

	for _, spot := range spots {
		if _, err := venues.InsertOne(ctx, spot); err != nil {
			continue
		}
	}

	log.Printf("Demo data seeded")
}
