package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"brewspot/db"
	"brewspot/models"
	"brewspot/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// EngagementEventRequest reports a completed user action for point awarding
type EngagementEventRequest struct {
	Action      string `json:"action" binding:"required"`      // "review", "like", "photo"
	ReferenceID string `json:"referenceId" binding:"required"` // id of the review/like/photo
}

// Rate limit configuration: max requests per minute per action
const rateLimitWindow = 1 * time.Minute
const maxRequestsPerWindow = 10

// RecordEngagementEvent awards points for a client-reported action. The
// caller can only award to themselves; the award ledger absorbs duplicate
// submissions of the same referenceId.
func RecordEngagementEvent(c *gin.Context) {
	var req EngagementEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	callerID := userID.(string)

	if !services.IsClientAction(req.Action) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid action"})
		return
	}

	if !checkRateLimit(callerID, req.Action) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Please try again later."})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := services.RecordAction(ctx, callerID, req.Action, req.ReferenceID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		case errors.Is(err, services.ErrUnknownAction):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid action"})
		default:
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to record action"})
		}
		return
	}

	if result.AlreadyAwarded {
		c.JSON(http.StatusOK, gin.H{
			"message":        "Action was already recorded",
			"alreadyAwarded": true,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Action recorded",
		"newXP":    result.NewXP,
		"newLevel": result.NewLevel,
	})
}

// checkRateLimit verifies if a request should be rate limited
func checkRateLimit(userID, action string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	rateLimits := db.GetCollection(db.RateLimitsCollection)
	now := time.Now()
	windowStart := now.Truncate(rateLimitWindow)

	filter := bson.M{
		"userId":      userID,
		"action":      action,
		"windowStart": windowStart,
	}

	var entry models.RateLimitEntry
	err := rateLimits.FindOne(ctx, filter).Decode(&entry)

	if err != nil {
		// No entry exists, create one
		newEntry := models.RateLimitEntry{
			UserID:      userID,
			Action:      action,
			Count:       1,
			WindowStart: windowStart,
		}
		rateLimits.InsertOne(ctx, newEntry)
		return true
	}

	if entry.Count >= maxRequestsPerWindow {
		return false
	}

	update := bson.M{"$inc": bson.M{"count": 1}}
	rateLimits.UpdateOne(ctx, filter, update)

	// Clean up old entries (background operation)
	go cleanupOldRateLimits()

	return true
}

// cleanupOldRateLimits removes rate limit entries older than the window
func cleanupOldRateLimits() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cutoff := time.Now().Add(-rateLimitWindow * 2)
	rateLimits := db.GetCollection(db.RateLimitsCollection)
	rateLimits.DeleteMany(ctx, bson.M{"windowStart": bson.M{"$lt": cutoff}})
}
