package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/btdosparca/league-system/live"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The browser client is served from a different origin in development.
	CheckOrigin: func(r *http.Request) bool { return true },
}

var knownCollections = map[string]bool{
	live.CollectionPlayers:  true,
	live.CollectionMatches:  true,
	live.CollectionRankings: true,
}

type WebSocketHandler struct {
	hub    *live.Hub
	logger *slog.Logger
}

func NewWebSocketHandler(hub *live.Hub, logger *slog.Logger) *WebSocketHandler {
	return &WebSocketHandler{hub: hub, logger: logger}
}

// Subscribe upgrades the connection and joins the requested collection room.
func (h *WebSocketHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")
	if !knownCollections[collection] {
		errorResponse(w, http.StatusNotFound, "unknown collection")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", slog.Any("error", err))
		return
	}

	client := live.NewClient(h.hub, conn, collection)
	h.hub.Register <- client
	go client.WritePump()
	go client.ReadPump()
}
