package controllers

import (
	"context"
	"net/http"
	"time"

	"brewspot/db"
	"brewspot/models"
	"brewspot/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// LoginRequest carries the credentials for a token request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials against the profile and issues a JWT. The full
// signup and account-recovery flows live in the auth service; this endpoint
// exists so the engagement API is usable standalone.
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var profile models.Profile
	err := db.GetCollection(db.ProfilesCollection).FindOne(ctx, bson.M{"email": req.Email}).Decode(&profile)
	if err != nil || !utils.CheckPasswordHash(req.Password, profile.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	if profile.AccountStatus == models.AccountSuspended || profile.AccountStatus == models.AccountBanned {
		c.JSON(http.StatusForbidden, gin.H{"error": "Account is not active"})
		return
	}

	token, err := utils.GenerateJWTToken(profile.ID, profile.Email, profile.IsModerator)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":       token,
		"userId":      profile.ID,
		"displayName": profile.DisplayName,
	})
}
