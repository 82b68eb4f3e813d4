package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"brewspot/services"

	"github.com/gin-gonic/gin"
)

// LeaderboardEntry is the row shape returned to clients
type LeaderboardEntry struct {
	Rank          int    `json:"rank"`
	UserID        string `json:"userId"`
	DisplayName   string `json:"displayName"`
	AvatarURL     string `json:"avatarUrl,omitempty"`
	TotalXP       int    `json:"totalXP"`
	Level         int    `json:"level"`
	BadgeCount    int    `json:"badgeCount"`
	CheckIns      int    `json:"checkIns"`
	IsContributor bool   `json:"isContributor"`
	CurrentUser   bool   `json:"currentUser"`
}

// GetLeaderboard returns the ranked snapshot rows for a kind ("xp" or
// "checkins"). Rows come from the denormalized snapshot collection behind a
// short-lived cache, so ranks can lag live profiles by a few minutes.
func GetLeaderboard(c *gin.Context) {
	kind := c.Query("kind")

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}

	callerID, _ := c.Get("userID")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rows, err := services.GetLeaderboard(ctx, kind, limit)
	if err != nil {
		if errors.Is(err, services.ErrUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to fetch leaderboard"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown leaderboard kind"})
		return
	}

	entries := make([]LeaderboardEntry, 0, len(rows))
	for i, row := range rows {
		avatarURL := row.AvatarURL
		if avatarURL == "" {
			avatarURL = "https://api.dicebear.com/9.x/adventurer/svg?seed=" + row.DisplayName
		}
		entries = append(entries, LeaderboardEntry{
			Rank:          i + 1,
			UserID:        row.UserID,
			DisplayName:   row.DisplayName,
			AvatarURL:     avatarURL,
			TotalXP:       row.TotalXP,
			Level:         row.Level,
			BadgeCount:    row.BadgeCount,
			CheckIns:      row.CheckIns,
			IsContributor: row.IsContributor,
			CurrentUser:   callerID == row.UserID,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"entries": entries,
		"total":   len(entries),
	})
}
