package discord

// Friendly message constants for Discord responses
const (
	MsgNoCandidates   = "🔍 **No Loot Found**\nNo compendium items match the selected rarities."
	MsgNoCatalog      = "📚 **No Compendiums**\nNo item compendiums are loaded on the server."
	MsgInvalidOptions = "⚠️ **Invalid Options**\nCheck the values you entered."
	MsgUnauthorized   = "🔒 **Not Authorized**\nThe bot's API key was rejected."
	MsgUnavailable    = "🛠️ **Server Unavailable**\nThe loot server could not be reached."

	MsgGenericError = "❌ Something went wrong."
)
