// Load envs from .env
// Load YAML config
// Validate config
// Provide default values

package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	SeedURL       string `yaml:"seed_url" env:"SEED_URL"`
	YouTubeHandle string `yaml:"youtube_handle" env:"YOUTUBE_HANDLE"`
	YouTubeAPIKey string `yaml:"youtube_api_key" env:"YOUTUBE_API_KEY"`
	//Fetching
	UseRelay           bool   `yaml:"use_relay"`
	RelayURL           string `yaml:"relay_url"`
	HTTPTimeoutSeconds int    `yaml:"http_timeout_seconds"`
	//Notifications (optional)
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
	//Paths
	ResultsPath string `yaml:"results_path"`
}

func Load() *Config {
	_ = godotenv.Load()

	//Load yaml config
	cfg := &Config{UseRelay: true}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Printf("Warning: Could not read config.yaml: %v", err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing config.yaml: %v", err)
		}
	}

	//Override with env vars
	if seed := os.Getenv("SEED_URL"); seed != "" {
		cfg.SeedURL = seed
	}

	if handle := os.Getenv("YOUTUBE_HANDLE"); handle != "" {
		cfg.YouTubeHandle = handle
	}

	if key := os.Getenv("YOUTUBE_API_KEY"); key != "" {
		cfg.YouTubeAPIKey = key
	}

	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}

	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			log.Fatalf("Invalid TELEGRAM_CHAT_ID: %v", err)
		}
		cfg.TelegramChatID = id
	}

	//Set default values if not set
	if cfg.RelayURL == "" {
		cfg.RelayURL = "https://api.allorigins.win/get"
	}

	if cfg.HTTPTimeoutSeconds <= 0 {
		cfg.HTTPTimeoutSeconds = 20
	}

	if cfg.ResultsPath == "" {
		cfg.ResultsPath = "logs"
	}

	return cfg
}
