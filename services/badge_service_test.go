package services

import (
	"testing"

	"brewspot/models"
)

func TestCatalogHasUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, spec := range badgeCatalog {
		if seen[spec.ID] {
			t.Errorf("duplicate badge id %q in catalog", spec.ID)
		}
		seen[spec.ID] = true
		if spec.Threshold < 1 {
			t.Errorf("badge %q has non-positive threshold %d", spec.ID, spec.Threshold)
		}
		switch spec.Category {
		case "community", "contribution", "excellence":
		default:
			t.Errorf("badge %q has unknown category %q", spec.ID, spec.Category)
		}
	}
}

func TestDueBadgesFirstReview(t *testing.T) {
	profile := &models.Profile{Stats: models.Stats{Reviews: 1}}
	due := dueBadges(profile)

	if len(due) != 1 || due[0].ID != "first_review" {
		t.Fatalf("expected exactly first_review due, got %v", due)
	}
}

func TestDueBadgesSkipsOwned(t *testing.T) {
	profile := &models.Profile{
		Stats:  models.Stats{Reviews: 7},
		Badges: []string{"first_review", "reviews_5"},
	}
	due := dueBadges(profile)
	if len(due) != 0 {
		t.Errorf("already-owned badges reported due again: %v", due)
	}
}

func TestDueBadgesCrossingMultipleThresholds(t *testing.T) {
	// A backfilled profile can cross several thresholds in one evaluation
	profile := &models.Profile{Stats: models.Stats{Reviews: 12}}
	due := dueBadges(profile)

	want := map[string]bool{"first_review": true, "reviews_5": true, "reviews_10": true}
	if len(due) != len(want) {
		t.Fatalf("expected %d due badges, got %d (%v)", len(want), len(due), due)
	}
	for _, spec := range due {
		if !want[spec.ID] {
			t.Errorf("unexpected due badge %q", spec.ID)
		}
	}
}

func TestContributorBadgeRequiresFlag(t *testing.T) {
	profile := &models.Profile{Stats: models.Stats{ApprovedVenues: 10}, Badges: []string{
		"first_venue", "venues_5", "venues_10",
	}}
	for _, spec := range dueBadges(profile) {
		if spec.ID == "contributor" {
			t.Error("contributor badge due without the contributor flag")
		}
	}

	profile.IsContributor = true
	found := false
	for _, spec := range dueBadges(profile) {
		if spec.ID == "contributor" {
			found = true
		}
	}
	if !found {
		t.Error("contributor badge not due after promotion")
	}
}

func TestBadgeProgressClampsToThreshold(t *testing.T) {
	profile := &models.Profile{Stats: models.Stats{Reviews: 999}}
	for _, item := range BadgeProgress(profile) {
		if item.Current > item.Threshold {
			t.Errorf("progress for %q exceeds threshold: %d > %d", item.ID, item.Current, item.Threshold)
		}
	}
}

func TestBadgeProgressCoversWholeCatalog(t *testing.T) {
	profile := &models.Profile{}
	progress := BadgeProgress(profile)
	if len(progress) != len(badgeCatalog) {
		t.Errorf("progress covers %d badges, catalog has %d", len(progress), len(badgeCatalog))
	}
}

func TestBadgeLogKey(t *testing.T) {
	if got := badgeLogKey("u1", "first_review"); got != "u1_badge_first_review" {
		t.Errorf("badgeLogKey = %q", got)
	}
}
