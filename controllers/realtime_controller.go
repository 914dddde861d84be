package controllers

import (
	"net/http"
	"time"

	"fitnessmap/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	pingInterval = 25 * time.Second
	writeTimeout = 10 * time.Second
	sendBuffer   = 16
)

type RealtimeController struct {
	RT  services.Broker
	log zerolog.Logger
}

func NewRealtimeController(rt services.Broker, log zerolog.Logger) *RealtimeController {
	return &RealtimeController{RT: rt, log: log}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // tighten behind a proxy if needed
}

// FitnessWS streams profile updates and alerts for the authenticated user.
func (rc *RealtimeController) FitnessWS(c *gin.Context) {
	uid := c.GetUint("userID")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	// gorilla allows one concurrent writer, so every write goes through send.
	send := make(chan services.Event, sendBuffer)
	done := make(chan struct{})
	unsubscribe := rc.RT.Subscribe(uid, func(ev services.Event) {
		select {
		case send <- ev:
		case <-done:
		default:
			rc.log.Warn().Uint("user_id", uid).Str("kind", ev.Kind).Msg("ws client too slow, dropping event")
		}
	})
	defer unsubscribe()

	go rc.writeLoop(conn, send, done)

	// read loop ends on client close/error
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			close(done)
			return
		}
	}
}

func (rc *RealtimeController) writeLoop(conn *websocket.Conn, send <-chan services.Event, done <-chan struct{}) {
	t := time.NewTicker(pingInterval)
	defer t.Stop()
	for {
		select {
		case <-done:
			return
		case ev := <-send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteJSON(ev); err != nil {
				_ = conn.Close()
				return
			}
		case <-t.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				_ = conn.Close()
				return
			}
		}
	}
}
