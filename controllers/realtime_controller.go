package controllers

import (
	"net/http"
	"time"

	"github.com/totomace/VitaZen-sub000/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type RealtimeController struct {
	RT *services.RealtimeHub
}

func NewRealtimeController(rt *services.RealtimeHub) *RealtimeController {
	return &RealtimeController{RT: rt}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // mobile clients send no Origin
}

// GET /ws/notifications
func (rc *RealtimeController) NotificationsWS(c *gin.Context) {
	uid := currentUID(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	cl := &services.WSClient{UID: uid, Conn: conn}
	rc.RT.Register(cl)

	done := make(chan struct{})
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C:
				if err := cl.Ping(); err != nil {
					rc.RT.Unregister(cl)
					return
				}
			}
		}
	}()

	// read loop ends on client close/error
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			close(done)
			rc.RT.Unregister(cl)
			return
		}
	}
}
