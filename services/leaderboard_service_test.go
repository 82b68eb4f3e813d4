package services

import (
	"context"
	"testing"
	"time"

	"brewspot/models"
)

func TestSortFieldFor(t *testing.T) {
	cases := []struct {
		kind    string
		want    string
		wantErr bool
	}{
		{LeaderboardByXP, "totalXP", false},
		{"", "totalXP", false},
		{LeaderboardByCheckIns, "checkIns", false},
		{"reputation", "", true},
	}
	for _, c := range cases {
		got, err := sortFieldFor(c.kind)
		if c.wantErr {
			if err == nil {
				t.Errorf("sortFieldFor(%q): expected error", c.kind)
			}
			continue
		}
		if err != nil || got != c.want {
			t.Errorf("sortFieldFor(%q) = %q, %v; want %q", c.kind, got, err, c.want)
		}
	}
}

func TestClampLimit(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, leaderboardDefaultLimit},
		{-5, leaderboardDefaultLimit},
		{10, 10},
		{leaderboardMaxLimit, leaderboardMaxLimit},
		{leaderboardMaxLimit + 1, leaderboardMaxLimit},
	}
	for _, c := range cases {
		if got := clampLimit(c.in); got != c.want {
			t.Errorf("clampLimit(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestGetLeaderboardServesFreshCache(t *testing.T) {
	defer InvalidateLeaderboardCache()

	rows := []models.LeaderboardSnapshot{
		{UserID: "u1", DisplayName: "Alice", TotalXP: 500},
		{UserID: "u2", DisplayName: "Bob", TotalXP: 300},
	}
	leaderboardMutex.Lock()
	leaderboardCache["totalXP:50"] = cachedBoard{entries: rows, fetchedAt: time.Now()}
	leaderboardMutex.Unlock()

	// A fresh cache entry must be served without touching the store
	got, err := GetLeaderboard(context.Background(), LeaderboardByXP, 0)
	if err != nil {
		t.Fatalf("GetLeaderboard returned error: %v", err)
	}
	if len(got) != 2 || got[0].UserID != "u1" {
		t.Errorf("unexpected cached result: %v", got)
	}
}

func TestInvalidateLeaderboardCache(t *testing.T) {
	leaderboardMutex.Lock()
	leaderboardCache["totalXP:50"] = cachedBoard{fetchedAt: time.Now()}
	leaderboardMutex.Unlock()

	InvalidateLeaderboardCache()

	leaderboardMutex.RLock()
	size := len(leaderboardCache)
	leaderboardMutex.RUnlock()
	if size != 0 {
		t.Errorf("cache not empty after invalidation: %d entries", size)
	}
}
