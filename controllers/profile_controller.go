package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"brewspot/db"
	"brewspot/models"
	"brewspot/progression"
	"brewspot/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Display cap for the user-side top venues list. Storage is unbounded; only
// the response is truncated.
const topVenuesDisplayCap = 10

// GetProfile returns the caller's profile with progression details
func GetProfile(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var profile models.Profile
	err := db.GetCollection(db.ProfilesCollection).FindOne(ctx, bson.M{"_id": userID.(string)}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":       profile,
		"xpToNextLevel": progression.XPToNextLevel(profile.XP),
		"nextLevelAt":   progression.XPForLevel(profile.Level + 1),
	})
}

// GetBadgeProgress returns progress toward every badge in the catalog
func GetBadgeProgress(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var profile models.Profile
	err := db.GetCollection(db.ProfilesCollection).FindOne(ctx, bson.M{"_id": userID.(string)}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"badges": services.BadgeProgress(&profile)})
}

// GetVisitHistory returns the caller's visit aggregate with the top venues
// truncated for display
func GetVisitHistory(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var visits models.VisitAggregate
	err := db.GetCollection(db.UserVisitsCollection).FindOne(ctx, bson.M{"_id": userID.(string)}).Decode(&visits)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusOK, gin.H{"totalVisits": 0, "topVenues": []models.VisitEntry{}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch visit history"})
		return
	}

	top := visits.TopTargets
	if len(top) > topVenuesDisplayCap {
		top = top[:topVenuesDisplayCap]
	}

	c.JSON(http.StatusOK, gin.H{
		"totalVisits": visits.TotalVisits,
		"topVenues":   top,
	})
}
