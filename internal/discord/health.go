package discord

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

const (
	HealthStatusHealthy  = "healthy"
	HealthStatusDegraded = "degraded"
)

// HealthStatus represents the bot's health status
type HealthStatus struct {
	Status           string    `json:"status"`
	Uptime           string    `json:"uptime"`
	Connected        bool      `json:"connected"`
	CommandsReceived int64     `json:"commands_received"`
	LastCommandTime  time.Time `json:"last_command_time,omitzero"`
	APIReachable     bool      `json:"api_reachable"`
}

var startTime = time.Now()

// HandleHealth reports gateway and API connectivity
func (h *HTTPServer) HandleHealth(w http.ResponseWriter, r *http.Request) {
	health := h.bot.health(r.Context())

	w.Header().Set("Content-Type", "application/json")
	if health.Status != HealthStatusHealthy {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	if err := json.NewEncoder(w).Encode(health); err != nil {
		slog.Warn("Failed to encode health response", "error", err)
	}
}

func (b *Bot) health(ctx context.Context) HealthStatus {
	connected := b.Session != nil && b.Session.DataReady

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	apiReachable := b.Client != nil && b.Client.Healthy(ctx)

	status := HealthStatusHealthy
	if !connected || !apiReachable {
		status = HealthStatusDegraded
	}

	hs := HealthStatus{
		Status:       status,
		Uptime:       time.Since(startTime).Round(time.Second).String(),
		Connected:    connected,
		APIReachable: apiReachable,
	}
	if b.Registry != nil {
		hs.CommandsReceived = b.Registry.Received()
		hs.LastCommandTime = b.Registry.LastCommandTime()
	}
	return hs
}
