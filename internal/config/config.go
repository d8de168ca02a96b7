package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string
	Environment string
	Version     string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBMaxConns int
	DBMaxIdle  time.Duration
	DBMaxLife  time.Duration

	APIKey         string // API key for authentication
	MaxRequestBody int64
	// Proxies allowed to set X-Forwarded-For
	TrustedProxies []string

	// Compendium packs synced into the database at startup
	CompendiumDir string
	GameSystem    string
	CacheSize     int
	CacheTTL      time.Duration

	// Scenes registered at startup so tokens can be placed on them
	Scenes []string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:       strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:      strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		LogDir:         getEnv("LOG_DIR", DefaultLogDir),
		Environment:    getEnv("ENVIRONMENT", DefaultEnvironment),
		Version:        getEnv("VERSION", DefaultVersion),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", "postgres"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBName:         getEnv("DB_NAME", "lootforge"),
		DBMaxIdle:      getEnvAsDuration("DB_MAX_IDLE", DefaultDBMaxIdle),
		DBMaxLife:      getEnvAsDuration("DB_MAX_LIFETIME", DefaultDBMaxLife),
		APIKey:         getEnv("API_KEY", ""),
		MaxRequestBody: DefaultMaxRequestBody,
		TrustedProxies: splitList(getEnv("TRUSTED_PROXIES", "")),
		CompendiumDir:  getEnv("COMPENDIUM_DIR", ConfigPathCompendiumDir),
		GameSystem:     getEnv("GAME_SYSTEM", DefaultGameSystem),
		Scenes:         splitList(getEnv("LOOT_SCENES", "")),
	}

	var err error
	if cfg.Port, err = parseInt("PORT", DefaultPort); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidPort, err)
	}
	if cfg.DBMaxConns, err = parseInt("DB_MAX_CONNS", DefaultDBMaxConns); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidDBMaxConns, err)
	}
	if cfg.CacheSize, err = parseInt("COMPENDIUM_CACHE_SIZE", DefaultCacheSize); err != nil || cfg.CacheSize < 1 {
		if err == nil {
			err = fmt.Errorf("must be positive, got %d", cfg.CacheSize)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidCacheSize, err)
	}
	cfg.CacheTTL, err = time.ParseDuration(getEnv("COMPENDIUM_CACHE_TTL", DefaultCacheTTL.String()))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidCacheTTL, err)
	}

	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return nil, fmt.Errorf("%s, got %q", ErrMsgUnknownLogFormat, cfg.LogFormat)
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf(ErrMsgAPIKeyMissing)
	}

	return cfg, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// DiscordConfig is what the discord bot process needs
type DiscordConfig struct {
	Token    string
	AppID    string
	GuildID  string // empty registers commands globally
	APIURL   string
	APIKey   string
	LogLevel string
	Scene    string // default scene for /loot
}

// LoadDiscord loads the bot configuration from environment variables
func LoadDiscord() (*DiscordConfig, error) {
	_ = godotenv.Load()

	cfg := &DiscordConfig{
		Token:    getEnv("DISCORD_TOKEN", ""),
		AppID:    getEnv("DISCORD_APP_ID", ""),
		GuildID:  getEnv("DISCORD_GUILD_ID", ""),
		APIURL:   strings.TrimRight(getEnv("API_URL", DefaultAPIURL), "/"),
		APIKey:   getEnv("API_KEY", ""),
		LogLevel: strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		Scene:    getEnv("DISCORD_DEFAULT_SCENE", ""),
	}
	if cfg.Token == "" || cfg.AppID == "" {
		return nil, fmt.Errorf(ErrMsgDiscordTokenNeeded)
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf(ErrMsgAPIKeyMissing)
	}
	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsDuration falls back to the default for unset or malformed values
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

func parseInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(value)
}

// splitList splits a comma separated value, dropping blanks
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, DefaultSceneSeparator) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
