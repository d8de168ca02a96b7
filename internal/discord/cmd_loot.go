package discord

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/LootForge_Go/internal/domain"
	"github.com/osse101/LootForge_Go/internal/handler"
	"github.com/osse101/LootForge_Go/internal/loot"
)

// LootCommand returns the /loot command. defaultScene is used when the
// operator does not name a scene.
func LootCommand(defaultScene string) (*discordgo.ApplicationCommand, CommandHandler) {
	minZero := 0.0
	minOne := 1.0

	options := []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionNumber,
			Name:        OptionMaxValue,
			Description: "Maximum total value in gp (default: derived from level, else 50)",
			MinValue:    &minZero,
		},
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        OptionMaxItems,
			Description: fmt.Sprintf("Maximum number of items (default: %d)", loot.DefaultMaxItems),
			MinValue:    &minZero,
			MaxValue:    100,
		},
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        OptionLevel,
			Description: "Party level, used to derive the value budget",
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
	}
	for _, r := range domain.AllRarities() {
		options = append(options, &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionBoolean,
			Name:        string(r),
			Description: fmt.Sprintf("Include %s items", r.Title()),
		})
	}
	options = append(options,
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        OptionScene,
			Description: "Scene to place the chest token on",
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        OptionName,
			Description: "Container name (default: " + domain.DefaultContainerName + ")",
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionBoolean,
			Name:        OptionPreview,
			Description: "Only show what would be generated",
		},
	)

	cmd := &discordgo.ApplicationCommand{
		Name:        CommandLoot,
		Description: "Generate a loot chest from the item compendiums",
		Options:     options,
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		opts := optionMap(i)
		req := buildLootRequest(opts, defaultScene)
		ctx := context.Background()

		if o, ok := opts[OptionPreview]; ok && o.BoolValue() {
			resp, err := client.PreviewLoot(ctx, req)
			if err != nil {
				slog.Error("Loot preview failed", "error", err)
				respondFriendlyError(s, i, err)
				return
			}
			sendEmbed(s, i, previewEmbed(resp.Result))
			return
		}

		resp, err := client.GenerateLoot(ctx, req)
		if err != nil {
			slog.Error("Loot generation failed", "error", err)
			respondFriendlyError(s, i, err)
			return
		}
		sendEmbed(s, i, generationEmbed(resp))
	}

	return cmd, handler
}

// buildLootRequest maps slash command options onto the API request.
// With no rarity option set, every rarity is allowed.
func buildLootRequest(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, defaultScene string) handler.GenerateLootRequest {
	req := handler.GenerateLootRequest{Scene: defaultScene}

	if o, ok := opts[OptionMaxValue]; ok {
		v := o.FloatValue()
		req.MaxValue = &v
	}
	if o, ok := opts[OptionMaxItems]; ok {
		v := int(o.IntValue())
		req.MaxItems = &v
	}
	if o, ok := opts[OptionLevel]; ok {
		req.Level = int(o.IntValue())
	}
	if o, ok := opts[OptionPartySize]; ok {
		req.PartySize = int(o.IntValue())
	}
	if o, ok := opts[OptionScene]; ok {
		req.Scene = strings.TrimSpace(o.StringValue())
	}
	if o, ok := opts[OptionName]; ok {
		req.ContainerName = o.StringValue()
	}

	anySet := false
	req.Rarities = []string{}
	for _, r := range domain.AllRarities() {
		o, ok := opts[string(r)]
		if !ok {
			continue
		}
		anySet = true
		if o.BoolValue() {
			req.Rarities = append(req.Rarities, string(r))
		}
	}
	if !anySet {
		for _, r := range domain.AllRarities() {
			req.Rarities = append(req.Rarities, string(r))
		}
	}

	return req
}

func generationEmbed(resp *handler.GenerateLootResponse) *discordgo.MessageEmbed {
	gen := resp.Generation
	embed := resultEmbed(gen.Result)
	embed.Title = "🎁 " + gen.Container.Name
	embed.Color = ColorLoot

	placement := "Not placed"
	if gen.Token != nil {
		placement = fmt.Sprintf("%s at (%d, %d)", gen.Token.SceneID, gen.Token.Position.X, gen.Token.Position.Y)
	}
	embed.Fields = append(embed.Fields,
		&discordgo.MessageEmbedField{Name: "Container", Value: gen.Container.ID, Inline: true},
		&discordgo.MessageEmbedField{Name: "Token", Value: placement, Inline: true},
	)

	var warnings []string
	for _, n := range resp.Notifications {
		if n.Level != domain.NotifyInfo {
			warnings = append(warnings, "⚠️ "+n.Message)
		}
	}
	if len(warnings) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Warnings",
			Value: strings.Join(warnings, "\n"),
		})
	}
	return embed
}

func previewEmbed(result *domain.LootResult) *discordgo.MessageEmbed {
	embed := resultEmbed(result)
	embed.Title = "🔎 Loot Preview"
	embed.Color = ColorPreview
	return embed
}

func resultEmbed(result *domain.LootResult) *discordgo.MessageEmbed {
	var sb strings.Builder
	for idx, it := range result.Items {
		if idx == MaxEmbedItems {
			fmt.Fprintf(&sb, "…and %d more\n", len(result.Items)-MaxEmbedItems)
			break
		}
		fmt.Fprintf(&sb, "• **%s** (%s)", it.Name, it.Rarity.Title())
		if gp, ok := it.Price.GP(); ok {
			fmt.Fprintf(&sb, " · %s gp", loot.FormatGP(gp))
		}
		sb.WriteString("\n")
	}
	if result.Currency != nil {
		fmt.Fprintf(&sb, "🪙 **%s**\n", result.Currency.Name)
	}
	if sb.Len() == 0 {
		sb.WriteString("The chest is empty.")
	}

	return &discordgo.MessageEmbed{
		Description: sb.String(),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Items", Value: fmt.Sprintf("%d", result.Count()), Inline: true},
			{Name: "Value", Value: fmt.Sprintf("%s / %s gp", loot.FormatGP(result.TotalValue), loot.FormatGP(result.MaxValue)), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: FooterText},
	}
}
