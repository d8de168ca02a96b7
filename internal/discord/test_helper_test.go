package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"
)

// MockRoundTripper implements http.RoundTripper for intercepting Discord calls
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

// TestContext wires a fake LootForge API and a Discord session whose
// REST calls are captured instead of sent.
type TestContext struct {
	Server    *httptest.Server
	Mux       *http.ServeMux
	APIClient *APIClient
	Session   *discordgo.Session

	mu        sync.Mutex
	deferred  int
	responses []*discordgo.InteractionResponse
	edits     []*discordgo.WebhookEdit
}

func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := NewAPIClient(server.URL, "test-api-key")
	client.RetryDelay = time.Millisecond

	session, err := discordgo.New("Bot test-token")
	require.NoError(t, err)

	tc := &TestContext{Server: server, Mux: mux, APIClient: client, Session: session}
	session.Client = &http.Client{Transport: &MockRoundTripper{RoundTripFunc: tc.capture}}
	return tc
}

func (tc *TestContext) capture(req *http.Request) (*http.Response, error) {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	switch req.Method {
	case http.MethodPost:
		var body discordgo.InteractionResponse
		if req.Body != nil {
			_ = json.NewDecoder(req.Body).Decode(&body)
		}
		if body.Type == discordgo.InteractionResponseDeferredChannelMessageWithSource {
			tc.deferred++
		}
		tc.responses = append(tc.responses, &body)
	case http.MethodPatch:
		var body discordgo.WebhookEdit
		_ = json.NewDecoder(req.Body).Decode(&body)
		tc.edits = append(tc.edits, &body)
	}

	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewBufferString("{}")),
		Header:     make(http.Header),
	}, nil
}

// LastEdit returns the final edit of the deferred response
func (tc *TestContext) LastEdit(t *testing.T) *discordgo.WebhookEdit {
	t.Helper()
	tc.mu.Lock()
	defer tc.mu.Unlock()
	require.NotEmpty(t, tc.edits, "no interaction response edit was sent")
	return tc.edits[len(tc.edits)-1]
}

// LastEmbed returns the first embed of the final edit
func (tc *TestContext) LastEmbed(t *testing.T) *discordgo.MessageEmbed {
	t.Helper()
	edit := tc.LastEdit(t)
	require.NotNil(t, edit.Embeds)
	require.NotEmpty(t, *edit.Embeds)
	return (*edit.Embeds)[0]
}

// writeJSON writes a JSON reply from the fake API
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func commandInteraction(name string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:    "interaction-1",
			AppID: "app-1",
			Token: "token-1",
			Type:  discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    name,
				Options: opts,
			},
			Member: &discordgo.Member{
				User: &discordgo.User{ID: "gm-1", Username: "GameMaster"},
			},
		},
	}
}

func intOpt(name string, v int) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionInteger, Value: float64(v)}
}

func numOpt(name string, v float64) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionNumber, Value: v}
}

func boolOpt(name string, v bool) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionBoolean, Value: v}
}

func strOpt(name, v string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionString, Value: v}
}
