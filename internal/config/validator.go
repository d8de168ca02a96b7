package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars lists all environment variables that must be set
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
	"API_KEY",
}

// DiscordEnvVars must be set for the discord bot, which has no database
var DiscordEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"DISCORD_TOKEN",
	"DISCORD_APP_ID",
	"API_URL",
	"API_KEY",
}

// ValidateEnv checks that all required environment variables are set
// and that the schema version matches expectations. A .env file is
// loaded first if present.
func ValidateEnv() error {
	return validateVars(RequiredEnvVars)
}

// ValidateDiscordEnv is ValidateEnv for the discord bot
func ValidateDiscordEnv() error {
	return validateVars(DiscordEnvVars)
}

func validateVars(required []string) error {
	_ = godotenv.Load()

	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	var missing []string
	for _, envVar := range required {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using default values)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv("DB_PASSWORD") == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if os.Getenv("API_KEY") == ExampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	if dir := getEnv("COMPENDIUM_DIR", ConfigPathCompendiumDir); !dirExists(dir) {
		warnings = append(warnings, "COMPENDIUM_DIR "+dir+" does not exist - no packs will be synced at startup")
	}

	return warnings, nil
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
