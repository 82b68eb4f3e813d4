package services

import (
	"testing"

	"brewspot/models"
)

func TestAwardKeyDeterministic(t *testing.T) {
	a := AwardKey("u1", "review", "r1")
	b := AwardKey("u1", "review", "r1")
	if a != b {
		t.Errorf("same triple produced different keys: %s vs %s", a, b)
	}
}

func TestAwardKeyDelimiterCollision(t *testing.T) {
	// Naive underscore concatenation would collide on these triples
	pairs := [][2][3]string{
		{{"u1", "review", "r_1"}, {"u1", "review_r", "1"}},
		{{"u1_review", "x", "r1"}, {"u1", "review_x", "r1"}},
		{{"u1", "like", ""}, {"u1", "like", "_"}},
	}
	for _, pair := range pairs {
		a := AwardKey(pair[0][0], pair[0][1], pair[0][2])
		b := AwardKey(pair[1][0], pair[1][1], pair[1][2])
		if a == b {
			t.Errorf("distinct triples %v and %v collided on key %s", pair[0], pair[1], a)
		}
	}
}

func TestAwardKeyDistinctPerField(t *testing.T) {
	base := AwardKey("u1", "review", "r1")
	if AwardKey("u2", "review", "r1") == base {
		t.Error("key ignored userID")
	}
	if AwardKey("u1", "like", "r1") == base {
		t.Error("key ignored action")
	}
	if AwardKey("u1", "review", "r2") == base {
		t.Error("key ignored referenceID")
	}
}

func TestPointsFor(t *testing.T) {
	cases := map[string]int{
		"review":         10,
		"venue_approved": 25,
		"venue_rejected": 0,
		"like":           2,
		"photo":          5,
		"check_in":       5,
	}
	for action, want := range cases {
		got, err := PointsFor(action)
		if err != nil {
			t.Errorf("PointsFor(%q) returned error: %v", action, err)
			continue
		}
		if got != want {
			t.Errorf("PointsFor(%q) = %d, want %d", action, got, want)
		}
	}

	if _, err := PointsFor("teleport"); err != ErrUnknownAction {
		t.Errorf("expected ErrUnknownAction for bogus action, got %v", err)
	}
}

func TestIsClientAction(t *testing.T) {
	for _, action := range []string{"review", "like", "photo"} {
		if !IsClientAction(action) {
			t.Errorf("expected %q to be client-reportable", action)
		}
	}
	for _, action := range []string{"venue_approved", "venue_rejected", "check_in", "bogus"} {
		if IsClientAction(action) {
			t.Errorf("expected %q to be rejected from clients", action)
		}
	}
}

func TestApplyActionStat(t *testing.T) {
	var stats models.Stats

	applyActionStat(&stats, "review")
	applyActionStat(&stats, "review")
	applyActionStat(&stats, "venue_approved")
	applyActionStat(&stats, "venue_rejected")
	applyActionStat(&stats, "photo")
	applyActionStat(&stats, "like")
	// The check-in counter is owned by the check-in transaction
	applyActionStat(&stats, "check_in")

	if stats.Reviews != 2 {
		t.Errorf("Reviews = %d, want 2", stats.Reviews)
	}
	if stats.ApprovedVenues != 1 || stats.RejectedVenues != 1 {
		t.Errorf("venue counters = %d/%d, want 1/1", stats.ApprovedVenues, stats.RejectedVenues)
	}
	if stats.PhotosUploaded != 1 || stats.LikesGiven != 1 {
		t.Errorf("photo/like counters = %d/%d, want 1/1", stats.PhotosUploaded, stats.LikesGiven)
	}
	if stats.CheckIns != 0 {
		t.Errorf("CheckIns = %d, want 0 (owned by check-in transaction)", stats.CheckIns)
	}
}
