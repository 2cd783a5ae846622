package handlers

import (
	"net/http"
	"time"

	"github.com/AnshRaj112/neurosphere-backend/internal/middleware"
	"github.com/AnshRaj112/neurosphere-backend/internal/notify"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 90 * time.Second
	wsPingPeriod = 30 * time.Second
	wsReadLimit  = 4 * 1024
)

var eventsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// CORS is enforced by the HTTP middleware; the session token gates access.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// EventsWebSocket streams the caller's notifications. Browser clients pass
// the session token as ?token=. Messages from the client are ignored.
func EventsWebSocket(hub *notify.Hub, log *zap.Logger) http.HandlerFunc {
	log = log.Named("ws")
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserID(r.Context())

		conn, err := eventsUpgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Debug("upgrade failed", zap.Error(err))
			return
		}
		defer conn.Close()

		events, unsubscribe := hub.Subscribe(userID)
		defer unsubscribe()
		log.Debug("subscriber connected", zap.String("user_id", userID))

		// Reader: keeps the deadline fresh on pongs and notices disconnects.
		done := make(chan struct{})
		go func() {
			defer close(done)
			conn.SetReadLimit(wsReadLimit)
			_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
			conn.SetPongHandler(func(string) error {
				return conn.SetReadDeadline(time.Now().Add(wsPongWait))
			})
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		ping := time.NewTicker(wsPingPeriod)
		defer ping.Stop()

		for {
			select {
			case <-done:
				log.Debug("subscriber disconnected", zap.String("user_id", userID))
				return
			case n, ok := <-events:
				if !ok {
					return
				}
				_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
				if err := conn.WriteJSON(n); err != nil {
					return
				}
			case <-ping.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteWait)); err != nil {
					return
				}
			}
		}
	}
}
