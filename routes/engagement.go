package routes

import (
	"brewspot/controllers"

	"github.com/gin-gonic/gin"
)

func LoginRouteHandler(c *gin.Context) {
	controllers.Login(c)
}

func RecordEngagementEventRouteHandler(c *gin.Context) {
	controllers.RecordEngagementEvent(c)
}

func GetBadgeProgressRouteHandler(c *gin.Context) {
	controllers.GetBadgeProgress(c)
}

func GetProfileRouteHandler(c *gin.Context) {
	controllers.GetProfile(c)
}

func GetVisitHistoryRouteHandler(c *gin.Context) {
	controllers.GetVisitHistory(c)
}
