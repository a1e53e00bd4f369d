package controllers

import (
	"time"

	"github.com/WangRL15/Health-Management-Web-Application/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const pingInterval = 25 * time.Second

type RealtimeController struct {
	RT *services.RealtimeHub
}

func NewRealtimeController(rt *services.RealtimeHub) *RealtimeController {
	return &RealtimeController{RT: rt}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Stream pushes "<kind>.created" events for the logged-in user until the
// client goes away. Incoming messages are read and discarded.
func (rc *RealtimeController) Stream(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zerolog.Ctx(c.Request.Context()).Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	cl := services.NewWSClient(userID, conn)
	rc.RT.Register(cl)
	go cl.WritePump(pingInterval)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			rc.RT.Unregister(cl)
			return
		}
	}
}
