package network

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/json"
	"github.com/ratel-online/mahjong/model"
)

const serviceName = "mahjong-server"

type Websocket struct {
	addr     string
	hub      *Hub
	upgrader websocket.Upgrader
}

// NewWebsocketServer serves the websocket endpoint and the HTTP status routes.
// allowOrigin may be nil to accept every origin.
func NewWebsocketServer(addr string, hub *Hub, allowOrigin func(origin string) bool) Websocket {
	return Websocket{
		addr: addr,
		hub:  hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return allowOrigin == nil || allowOrigin(r.Header.Get("Origin"))
			},
		},
	}
}

func (w Websocket) Router() http.Handler {
	r := chi.NewRouter()
	r.Get("/ws", w.serveWs)
	r.Get("/health", w.health)
	r.Get("/rooms", w.rooms)
	r.Get("/rooms/{roomId}", w.room)
	r.Get("/", w.index)
	return r
}

func (w Websocket) Serve() error {
	log.Infof("Websocket server listening on %s\n", w.addr)
	return http.ListenAndServe(w.addr, w.Router())
}

func (w Websocket) serveWs(rw http.ResponseWriter, r *http.Request) {
	conn, err := w.upgrader.Upgrade(rw, r, nil)
	if err != nil {
		log.Error(err)
		return
	}
	if err := w.hub.handle(protocol.NewWebsocketReadWriteCloser(conn)); err != nil {
		log.Error(err)
	}
}

func (w Websocket) health(rw http.ResponseWriter, _ *http.Request) {
	writeJSON(rw, http.StatusOK, model.Health{
		Status:    "ok",
		Service:   serviceName,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(w.hub.started).Seconds(),
		Rooms:     len(w.hub.registry.GetRooms()),
	})
}

func (w Websocket) rooms(rw http.ResponseWriter, _ *http.Request) {
	list := make([]model.RoomSummary, 0)
	for _, room := range w.hub.registry.GetRooms() {
		room.Lock()
		list = append(list, room.Model())
		room.Unlock()
	}
	writeJSON(rw, http.StatusOK, list)
}

func (w Websocket) room(rw http.ResponseWriter, r *http.Request) {
	room := w.hub.registry.GetRoom(chi.URLParam(r, "roomId"))
	if room == nil {
		http.Error(rw, "room not found", http.StatusNotFound)
		return
	}
	room.Lock()
	defer room.Unlock()
	writeJSON(rw, http.StatusOK, room.Model())
}

func (w Websocket) index(rw http.ResponseWriter, _ *http.Request) {
	writeJSON(rw, http.StatusOK, map[string]string{
		"service":   serviceName,
		"websocket": "/ws",
		"health":    "/health",
	})
}

func writeJSON(rw http.ResponseWriter, status int, v interface{}) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	if _, err := rw.Write(json.Marshal(v)); err != nil {
		log.Error(err)
	}
}
