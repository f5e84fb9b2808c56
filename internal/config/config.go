package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL    string
	StateDir      string
	AppEnv        string
	HTTPTimeout   time.Duration
	DefaultUserID string
}

const (
	defaultBaseURL = "http://localhost:8000/api"
	defaultUserID  = "user-1"
	defaultTimeout = 10 * time.Second
)

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL:    os.Getenv("API_BASE_URL"),
		StateDir:      os.Getenv("STATE_DIR"),
		AppEnv:        os.Getenv("APP_ENV"),
		DefaultUserID: os.Getenv("DEFAULT_USER_ID"),
		HTTPTimeout:   defaultTimeout,
	}

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = defaultBaseURL
	}
	if cfg.DefaultUserID == "" {
		cfg.DefaultUserID = defaultUserID
	}
	if cfg.StateDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			log.Fatal("STATE_DIR not set and no user config dir available")
		}
		cfg.StateDir = filepath.Join(base, "brewpoint")
	}
	if v := os.Getenv("HTTP_TIMEOUT_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			log.Fatal("HTTP_TIMEOUT_SECONDS must be a positive integer")
		}
		cfg.HTTPTimeout = time.Duration(secs) * time.Second
	}

	return cfg
}
