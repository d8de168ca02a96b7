package discord

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LootForge_Go/internal/handler"
)

func TestCommandRegistry_Handle(t *testing.T) {
	r := NewCommandRegistry()
	var called string
	r.Register(&discordgo.ApplicationCommand{Name: "alpha"}, func(s *discordgo.Session, i *discordgo.InteractionCreate, c *APIClient) {
		called = "alpha"
	})

	assert.True(t, r.LastCommandTime().IsZero())

	r.Handle(nil, commandInteraction("alpha"), nil)
	r.Handle(nil, commandInteraction("unknown"), nil)

	assert.Equal(t, "alpha", called)
	assert.Equal(t, int64(1), r.Received())
	assert.False(t, r.LastCommandTime().IsZero())
}

func TestCommandsEqual(t *testing.T) {
	loot, _ := LootCommand("")
	budget, _ := LootBudgetCommand()
	ping, _ := PingCommand()
	loot2, _ := LootCommand("other-scene")

	assert.True(t, commandsEqual(
		[]*discordgo.ApplicationCommand{ping, loot, budget},
		[]*discordgo.ApplicationCommand{loot2, budget, ping},
	), "order and default scene do not matter")

	assert.False(t, commandsEqual(
		[]*discordgo.ApplicationCommand{ping},
		[]*discordgo.ApplicationCommand{ping, loot},
	))

	changed := *budget
	changed.Description = "something else"
	assert.False(t, commandsEqual(
		[]*discordgo.ApplicationCommand{budget},
		[]*discordgo.ApplicationCommand{&changed},
	))

	lower := 5.0
	opt := *budget.Options[0]
	opt.MinValue = &lower
	withMin := *budget
	withMin.Options = []*discordgo.ApplicationCommandOption{&opt, budget.Options[1]}
	assert.False(t, commandsEqual(
		[]*discordgo.ApplicationCommand{budget},
		[]*discordgo.ApplicationCommand{&withMin},
	))
}

func TestFormatFriendlyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"no candidates", &APIError{StatusCode: 422}, MsgNoCandidates},
		{"no catalog", &APIError{StatusCode: 503}, MsgNoCatalog},
		{"bad request without detail", &APIError{StatusCode: 400}, MsgInvalidOptions},
		{"wrapped retries", fmt.Errorf("max retries exceeded: %w", errors.New("connection refused")), MsgUnavailable},
		{"retried 500", fmt.Errorf("max retries exceeded: %w", &APIError{StatusCode: 500}), MsgGenericError},
		{"other", errors.New("boom"), MsgGenericError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatFriendlyError(tt.err))
		})
	}
}

func TestBudgetCommand(t *testing.T) {
	tc := SetupTestContext(t)
	_, h := LootBudgetCommand()
	tc.Mux.HandleFunc("GET "+PathBudget, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "4", r.URL.Query().Get("party_size"))
		writeJSON(w, http.StatusOK, handler.BudgetResponse{Level: 3, PartySize: 4, PerCharacterBudget: 120, PartyBudget: 480})
	})

	h(tc.Session, commandInteraction(CommandLootBudget, intOpt(OptionLevel, 3)), tc.APIClient)

	embed := tc.LastEmbed(t)
	assert.Equal(t, "💰 Level 3 Budget", embed.Title)
	assert.Equal(t, "120 gp", embed.Fields[0].Value)
	assert.Equal(t, "Party of 4", embed.Fields[1].Name)
	assert.Equal(t, "480 gp", embed.Fields[1].Value)
}

func TestPingCommand(t *testing.T) {
	tc := SetupTestContext(t)
	_, h := PingCommand()

	h(tc.Session, commandInteraction(CommandPing), nil)

	require.Len(t, tc.responses, 1)
	assert.Equal(t, "Pong! 🏓", tc.responses[0].Data.Content)
}
