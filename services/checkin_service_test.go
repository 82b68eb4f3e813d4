package services

import (
	"testing"
	"time"

	"brewspot/models"
)

func TestInCooldown(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name string
		last time.Time
		want bool
	}{
		{"never visited", time.Time{}, false},
		{"one hour ago", now.Add(-1 * time.Hour), true},
		{"just under the window", now.Add(-CooldownWindow + time.Second), true},
		{"exactly the window", now.Add(-CooldownWindow), false},
		{"one second past", now.Add(-CooldownWindow - time.Second), false},
	}

	for _, c := range cases {
		if got := inCooldown(c.last, now); got != c.want {
			t.Errorf("%s: inCooldown = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestUpsertRankedInsertsSorted(t *testing.T) {
	now := time.Now()
	var entries []models.VisitEntry

	entries = upsertRanked(entries, "a", 3, now, 0)
	entries = upsertRanked(entries, "b", 5, now, 0)
	entries = upsertRanked(entries, "c", 1, now, 0)

	want := []string{"b", "a", "c"}
	for i, id := range want {
		if entries[i].TargetID != id {
			t.Fatalf("position %d: got %s, want %s (entries: %v)", i, entries[i].TargetID, id, entries)
		}
	}
}

func TestUpsertRankedReplacesExisting(t *testing.T) {
	now := time.Now()
	entries := []models.VisitEntry{
		{TargetID: "a", Count: 2, LastVisit: now},
		{TargetID: "b", Count: 1, LastVisit: now},
	}

	entries = upsertRanked(entries, "b", 3, now, 0)

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries after re-rank, got %d", len(entries))
	}
	if entries[0].TargetID != "b" || entries[0].Count != 3 {
		t.Errorf("expected b promoted to front with count 3, got %v", entries[0])
	}
}

func TestUpsertRankedCap(t *testing.T) {
	now := time.Now()
	var entries []models.VisitEntry
	for i := 0; i < models.MaxTopVisitors; i++ {
		entries = upsertRanked(entries, string(rune('a'+i)), i+2, now, models.MaxTopVisitors)
	}

	// A newcomer with the lowest count must not displace anyone
	entries = upsertRanked(entries, "newcomer", 1, now, models.MaxTopVisitors)
	if len(entries) != models.MaxTopVisitors {
		t.Fatalf("cap exceeded: %d entries", len(entries))
	}
	for _, e := range entries {
		if e.TargetID == "newcomer" {
			t.Error("lowest-count newcomer entered a full top list")
		}
	}

	// A high-count newcomer takes the top slot and the tail falls off
	entries = upsertRanked(entries, "champion", 100, now, models.MaxTopVisitors)
	if len(entries) != models.MaxTopVisitors {
		t.Fatalf("cap exceeded after champion: %d entries", len(entries))
	}
	if entries[0].TargetID != "champion" {
		t.Errorf("expected champion at the top, got %s", entries[0].TargetID)
	}
}

func TestUpsertRankedTieBreaksByRecency(t *testing.T) {
	older := time.Now().Add(-time.Hour)
	newer := time.Now()

	entries := upsertRanked(nil, "old", 2, older, 0)
	entries = upsertRanked(entries, "new", 2, newer, 0)

	if entries[0].TargetID != "new" {
		t.Errorf("expected most recent visit first on tie, got %s", entries[0].TargetID)
	}
}
