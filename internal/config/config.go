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

type WorkdayConfig struct {
	Endpoint string              `yaml:"endpoint"`
	SiteBase string              `yaml:"site_base"`
	Facets   map[string][]string `yaml:"facets"`
}

type Config struct {
	//Search criteria
	Query    string `yaml:"query"`
	Location string `yaml:"location"`
	Level    string `yaml:"level"`

	//Listing source
	BaseURL     string `yaml:"base_url"`
	PageDelayMs int    `yaml:"page_delay_ms"`

	//Workday source (API-backed career sites)
	Workday WorkdayConfig `yaml:"workday"`

	//Scoring
	OpenAIKey string `yaml:"openai_api_key" env:"OPENAI_API_KEY"`
	Model     string `yaml:"model"`

	//Notifications
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`

	//Watcher loop interval bounds (minutes)
	MinIntervalMin int `yaml:"min_interval_min"`
	MaxIntervalMin int `yaml:"max_interval_min"`

	//Paths
	JobsPath    string `yaml:"jobs_path"`
	SortedPath  string `yaml:"sorted_path"`
	ResumePath  string `yaml:"resume_path"`
	HistoryPath string `yaml:"history_path"`
}

func Load() *Config {
	_ = godotenv.Load()

	//Load yaml config
	cfg := &Config{}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Printf("Warning: Could not read config.yaml: %v", err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing config.yaml: %v", err)
		}
	}

	//Override with env vars
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		cfg.OpenAIKey = key
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
	if cfg.Query == "" {
		cfg.Query = "Software Engineer"
	}

	if cfg.Location == "" {
		cfg.Location = "Taiwan"
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.google.com/about/careers/applications/jobs/results/"
	}

	if cfg.PageDelayMs == 0 {
		cfg.PageDelayMs = 3000
	}

	if cfg.Workday.Endpoint == "" {
		cfg.Workday.Endpoint = "https://nvidia.wd5.myworkdayjobs.com/wday/cxs/nvidia/NVIDIAExternalCareerSite/jobs"
	}

	if cfg.Workday.SiteBase == "" {
		cfg.Workday.SiteBase = "https://nvidia.wd5.myworkdayjobs.com/en-US/NVIDIAExternalCareerSite"
	}

	if len(cfg.Workday.Facets) == 0 {
		cfg.Workday.Facets = map[string][]string{
			"locationHierarchy1": {"2fcb99c455831013ea52ed162d4932c0"}, //Taiwan
			"jobFamilyGroup":     {"0c40f6bd1d8f10ae43ffaefd46dc7e78"}, //Engineering
		}
	}

	if cfg.Model == "" {
		cfg.Model = "gpt-4.1-mini"
	}

	if cfg.MinIntervalMin == 0 {
		cfg.MinIntervalMin = 60
	}

	if cfg.MaxIntervalMin == 0 {
		cfg.MaxIntervalMin = 90
	}

	if cfg.JobsPath == "" {
		cfg.JobsPath = "jobs.json"
	}

	if cfg.SortedPath == "" {
		cfg.SortedPath = "jobs_sorted.json"
	}

	if cfg.ResumePath == "" {
		cfg.ResumePath = "resume.pdf"
	}

	if cfg.HistoryPath == "" {
		cfg.HistoryPath = ".cache"
	}

	return cfg
}

// RequireScoring aborts unless the scoring credential is present.
// Only the matcher needs it, so Load itself stays lenient.
func (c *Config) RequireScoring() {
	if c.OpenAIKey == "" {
		log.Fatal("OPENAI_API_KEY is required")
	}
}

// RequireTelegram aborts unless the bot credentials are present.
func (c *Config) RequireTelegram() {
	if c.TelegramToken == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN is required")
	}

	if c.TelegramChatID == 0 {
		log.Fatal("TELEGRAM_CHAT_ID is required")
	}
}
