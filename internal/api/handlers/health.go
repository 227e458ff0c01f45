package handlers

import (
	"net/http"
	"time"

	"webhook-cache-api/internal/util"
)

// HealthBody is the liveness response.
type HealthBody struct {
	Status    string  `json:"status" example:"OK"`
	Timestamp string  `json:"timestamp" example:"2024-01-15T10:30:00Z"`
	Uptime    float64 `json:"uptime" example:"12.5" doc:"Process uptime in seconds"`
}

// Health godoc
// @Summary      Liveness check
// @Tags         health
// @Produce      json
// @Success      200  {object}  handlers.HealthBody
// @Router       /health [get]
func Health(start time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		util.WriteJSON(w, HealthBody{
			Status:    "OK",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Uptime:    time.Since(start).Seconds(),
		})
	}
}
