package config

import "time"

// Paths relative to the module root
const (
	ConfigPathCompendiumDir = "configs/compendiums"
)

const (
	DefaultPort            = 8080
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultLogDir          = "logs"
	DefaultEnvironment     = "dev"
	DefaultVersion         = "dev"
	DefaultGameSystem      = "pf2e"
	DefaultCacheSize       = 2048
	DefaultCacheTTL        = 10 * time.Minute
	DefaultDBMaxConns      = 10
	DefaultDBMaxIdle       = 5 * time.Minute
	DefaultDBMaxLife       = time.Hour
	DefaultMaxRequestBody  = 1 << 20
	DefaultAPIURL          = "http://localhost:8080"
	DefaultShutdownTimeout = 10 * time.Second
	DefaultSceneSeparator  = ","
)

// Placeholder values shipped in .env.example
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"
)

const (
	ErrMsgAPIKeyMissing      = "API_KEY environment variable must be set for security"
	ErrMsgInvalidPort        = "invalid PORT value"
	ErrMsgInvalidCacheSize   = "invalid COMPENDIUM_CACHE_SIZE value"
	ErrMsgInvalidCacheTTL    = "invalid COMPENDIUM_CACHE_TTL value"
	ErrMsgInvalidDBMaxConns  = "invalid DB_MAX_CONNS value"
	ErrMsgUnknownLogFormat   = "LOG_FORMAT must be json or text"
	ErrMsgDiscordTokenNeeded = "DISCORD_TOKEN and DISCORD_APP_ID must be set for the discord bot"
)
