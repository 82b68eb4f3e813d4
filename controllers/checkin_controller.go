package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"brewspot/models"
	"brewspot/services"

	"github.com/gin-gonic/gin"
)

// CheckInRequest carries the venue and the device's reported location
type CheckInRequest struct {
	VenueID string  `json:"venueId" binding:"required"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// CheckIn records a physical visit for the authenticated user
func CheckIn(c *gin.Context) {
	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := services.CheckIn(ctx, userID.(string), req.VenueID, models.GeoPoint{Lat: req.Lat, Lng: req.Lng})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTooFar):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Too far from the venue to check in", "code": "too_far"})
		case errors.Is(err, services.ErrCooldown):
			c.JSON(http.StatusConflict, gin.H{"error": "Already checked in here within the last 24 hours", "code": "cooldown"})
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
		default:
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Check-in failed, please retry"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Checked in",
		"recordId":    result.RecordID,
		"venueId":     result.VenueID,
		"visitCount":  result.VisitCount,
		"totalVisits": result.TotalVisits,
	})
}
