package http

import (
	"net/http"

	"github.com/dailydoit/dailydoit/internal/utils"
	"github.com/dailydoit/dailydoit/models"
)

// healthz reports the build and database reachability. A degraded service
// answers 503 so load balancers can take the instance out of rotation.
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	health := h.services.HealthService.Health(r.Context())

	status := http.StatusOK
	if health.Status != models.HealthOK {
		status = http.StatusServiceUnavailable
	}

	utils.WriteJSON(w, health, status)
}
