package controllers

import (
	"net/http"

	"github.com/profinder-dev/profinder/models"
	"github.com/profinder-dev/profinder/utils"
	"github.com/profinder-dev/profinder/ws"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Dashboard and API run on different origins during development
	CheckOrigin: func(r *http.Request) bool { return true },
}

// JoinAdminPushChannel upgrades the request to a websocket and keeps the
// super admin subscribed to push events until the connection drops
func JoinAdminPushChannel(c *gin.Context) {
	utils.LogInfo("JoinAdminPushChannel called")
	adminVal, exists := c.Get("super_admin")
	if !exists {
		utils.Unauthorized(c, "Super admin not found")
		return
	}
	admin := adminVal.(models.SuperAdmin)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.LogError("Failed to upgrade connection for super admin %d: %v", admin.ID, err)
		return
	}

	client := &ws.Client{AdminID: admin.ID, Conn: conn}
	ws.SuperAdminHub.Register(client)

	// Reader loop exists only to detect disconnects; incoming frames
	// are ignored.
	go func() {
		defer ws.SuperAdminHub.Unregister(client)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
