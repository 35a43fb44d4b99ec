package config

import (
	"errors"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Env holds secrets and deployment knobs read from the environment.
type Env struct {
	TripAPIKey         string
	StationAPIKey      string
	SlackToken         string
	SlackSigningSecret string
	DatabaseURL        string
	DBPath             string
	Port               string
	ConfigPath         string
}

// LoadDotenv loads .env when present; a missing file is not an error.
func LoadDotenv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}
}

// LoadEnv reads Env. SL tokens are always required.
func LoadEnv() (Env, error) {
	env := Env{
		TripAPIKey:         Get("SL_TRIP_API_TOKEN", ""),
		StationAPIKey:      Get("SL_STATION_LIST_API_TOKEN", ""),
		SlackToken:         Get("SLACK_TOKEN", ""),
		SlackSigningSecret: Get("SLACK_SIGNING_SECRET", ""),
		DatabaseURL:        Get("DATABASE_URL", ""),
		DBPath:             Get("DB_PATH", "data/state.db"),
		Port:               Get("PORT", "8080"),
		ConfigPath:         Get("CONFIG_PATH", "config.yaml"),
	}

	var missing []string
	if env.TripAPIKey == "" {
		missing = append(missing, "SL_TRIP_API_TOKEN")
	}
	if env.StationAPIKey == "" {
		missing = append(missing, "SL_STATION_LIST_API_TOKEN")
	}
	if len(missing) > 0 {
		return env, errors.New(strings.Join(missing, ", ") + " is required")
	}
	return env, nil
}
