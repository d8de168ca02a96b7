package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/LootForge_Go/internal/loot"
)

// LootBudgetCommand returns the /loot-budget command
func LootBudgetCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minOne := 1.0
	cmd := &discordgo.ApplicationCommand{
		Name:        CommandLootBudget,
		Description: "Show the treasure budget for a party",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        OptionLevel,
				Description: "Party level",
				Required:    true,
				MinValue:    &minOne,
				MaxValue:    30,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        OptionPartySize,
				Description: fmt.Sprintf("Number of characters (default: %d)", loot.DefaultPartySize),
				MinValue:    &minOne,
				MaxValue:    12,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		opts := optionMap(i)
		level := 1
		if o, ok := opts[OptionLevel]; ok {
			level = int(o.IntValue())
		}
		partySize := loot.DefaultPartySize
		if o, ok := opts[OptionPartySize]; ok {
			partySize = int(o.IntValue())
		}

		budget, err := client.GetBudget(context.Background(), level, partySize)
		if err != nil {
			slog.Error("Budget lookup failed", "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		sendEmbed(s, i, &discordgo.MessageEmbed{
			Title: fmt.Sprintf("💰 Level %d Budget", budget.Level),
			Color: ColorBudget,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Per character", Value: loot.FormatGP(budget.PerCharacterBudget) + " gp", Inline: true},
				{Name: fmt.Sprintf("Party of %d", budget.PartySize), Value: loot.FormatGP(budget.PartyBudget) + " gp", Inline: true},
			},
			Footer: &discordgo.MessageEmbedFooter{Text: FooterText},
		})
	}

	return cmd, handler
}
