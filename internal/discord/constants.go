package discord

import "time"

// API client settings
const (
	DefaultClientTimeout = 10 * time.Second
	DefaultMaxRetries    = 3
	DefaultRetryDelay    = 500 * time.Millisecond
)

// API paths
const (
	PathGenerate = "/api/v1/loot/generate"
	PathPreview  = "/api/v1/loot/preview"
	PathBudget   = "/api/v1/loot/budget"
	PathHealthz  = "/healthz"
)

// Command names
const (
	CommandLoot       = "loot"
	CommandLootBudget = "loot-budget"
	CommandPing       = "ping"
)

// /loot option names
const (
	OptionMaxValue  = "max_value"
	OptionMaxItems  = "max_items"
	OptionLevel     = "level"
	OptionPartySize = "party_size"
	OptionScene     = "scene"
	OptionName      = "name"
	OptionPreview   = "preview"
)

// Embed settings
const (
	ColorLoot    = 0xC9A227
	ColorPreview = 0x3498DB
	ColorBudget  = 0x2ECC71
	FooterText   = "LootForge"

	// MaxEmbedItems caps the item list in a reply; the rest is summarized.
	MaxEmbedItems = 20
)

const (
	LogMsgBotRunning = "Discord bot is now running. Press CTRL-C to exit."
)
