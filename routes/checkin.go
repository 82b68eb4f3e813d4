package routes

import (
	"brewspot/controllers"

	"github.com/gin-gonic/gin"
)

func CheckInRouteHandler(c *gin.Context) {
	controllers.CheckIn(c)
}

func GetLeaderboardRouteHandler(c *gin.Context) {
	controllers.GetLeaderboard(c)
}

func DecideVenueRouteHandler(c *gin.Context) {
	controllers.DecideVenue(c)
}
