package discord

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleHealth(t *testing.T) {
	tc := SetupTestContext(t)
	bot := &Bot{Session: tc.Session, Client: tc.APIClient, Registry: NewCommandRegistry()}
	srv := NewHTTPServer("0", bot)

	rec := httptest.NewRecorder()
	srv.HandleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var hs HealthStatus
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&hs))
	assert.Equal(t, HealthStatusDegraded, hs.Status)
	assert.False(t, hs.Connected)
	assert.False(t, hs.APIReachable)

	tc.Mux.HandleFunc("GET "+PathHealthz, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	tc.Session.DataReady = true
	bot.Registry.Handle(nil, commandInteraction("missing"), nil)

	rec = httptest.NewRecorder()
	srv.HandleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&hs))
	assert.Equal(t, HealthStatusHealthy, hs.Status)
	assert.True(t, hs.APIReachable)
	assert.Zero(t, hs.CommandsReceived, "unknown commands are not counted")
}
