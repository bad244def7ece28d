package http_handlers

import (
	"database/sql"
	"net/http"

	"github.com/digicard/admin-auth/internal/transport/http/response"
)

// HealthHandler serves the liveness and readiness probes. Readiness is
// tied to the account datastore: without it every login is a 500 anyway.
type HealthHandler struct {
	db *sql.DB
}

func NewHealthHandler(db *sql.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

type healthBody struct {
	Status string `json:"status"`
}

// Healthz reports process liveness only.
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	response.OK(w, healthBody{Status: "ok"})
}

// Readyz pings the datastore; a nil db (injected fakes) counts as ready.
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.db.PingContext(r.Context()); err != nil {
			response.WriteJSON(w, http.StatusServiceUnavailable, healthBody{Status: "unavailable"})
			return
		}
	}
	response.OK(w, healthBody{Status: "ready"})
}
