package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"brewspot/services"

	"github.com/gin-gonic/gin"
)

// VenueDecisionRequest carries a moderation outcome for a pending venue
type VenueDecisionRequest struct {
	Approve *bool `json:"approve" binding:"required"`
}

// DecideVenue records the approval or rejection of a pending venue
// submission. The submitter is credited (or their trust reduced) exactly
// once; a repeated decision for the same venue finds it already decided.
func DecideVenue(c *gin.Context) {
	venueID := c.Param("id")
	if venueID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing venue id"})
		return
	}

	var req VenueDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Approve == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := services.ApplyVenueDecision(ctx, venueID, *req.Approve); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No pending venue with that id"})
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to record decision"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Decision recorded", "venueId": venueID, "approved": *req.Approve})
}
