package websocket

import (
	"log"
	"net/http"

	"brewspot/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// EngagementWebSocketHandler upgrades the connection and keeps the client
// registered for engagement broadcasts until it disconnects. Browsers cannot
// set headers on websocket requests, so the token also comes via query param.
func EngagementWebSocketHandler(c *gin.Context) {
	tokenString := c.Query("token")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token required"})
		return
	}

	claims, err := utils.ParseJWTToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade websocket: %v", err)
		return
	}

	client := &EngagementClient{Conn: conn, UserID: claims.UserID}
	RegisterEngagementClient(client)
	defer UnregisterEngagementClient(client)

	// Drain incoming messages; the hub is push-only
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
