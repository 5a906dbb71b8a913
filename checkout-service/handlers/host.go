package handlers

import (
	"log/slog"
	"net/http"

	"github.com/draftea/checkout-system/checkout-service/infrastructure"
	"github.com/draftea/checkout-system/shared/logging"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

const hostBufferSize = 1024

// HostHandlers upgrades the parent frame of an embedded session to its websocket channel
type HostHandlers struct {
	hub      *infrastructure.HostHub
	upgrader websocket.Upgrader
}

func NewHostHandlers(hub *infrastructure.HostHub) *HostHandlers {
	h := &HostHandlers{hub: hub}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  hostBufferSize,
		WriteBufferSize: hostBufferSize,
		CheckOrigin: func(r *http.Request) bool {
			return hub.AllowsOrigin(chi.URLParam(r, "id"), r.Header.Get("Origin"))
		},
	}
	return h
}

// Connect attaches the parent frame. Only the origin the session was bound to may connect.
func (h *HostHandlers) Connect(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("Host upgrade failed",
			logging.SessionID(sessionID),
			logging.Error(err))
		return
	}

	if err := h.hub.Attach(sessionID, conn); err != nil {
		slog.Warn("Host attach failed",
			logging.SessionID(sessionID),
			logging.Error(err))
		_ = conn.Close()
	}
}

// RegisterRoutes registers the host channel route
func (h *HostHandlers) RegisterRoutes(r chi.Router) {
	r.Get("/sessions/{id}/host", h.Connect)
}
