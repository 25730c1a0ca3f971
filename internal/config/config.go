package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultTimezone   = "UTC"
	configPathEnv     = "CONTENT_CREATOR_CONFIG"
	openAIKeyEnv      = "OPENAI_API_KEY"
	openAIModelEnv    = "OPENAI_MODEL"
	sheetsIDEnv       = "GOOGLE_SHEETS_ID"
	sheetsCredsEnv    = "GOOGLE_SHEETS_CREDENTIALS_PATH"
	schedulerTimeEnv  = "SCHEDULER_TIME"
	storageBackendEnv = "STORAGE_BACKEND"
)

// Supported content tracker backends.
const (
	StorageBackendExcel  = "excel"
	StorageBackendSheets = "sheets"
	StorageBackendMemory = "memory"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging   LoggingConfig   `yaml:"logging"`
	Storage   StorageConfig   `yaml:"storage"`
	Ledger    LedgerConfig    `yaml:"ledger"`
	Output    OutputConfig    `yaml:"output"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	OpenAI    OpenAIConfig    `yaml:"openai"`
	Sites     []SiteConfig    `yaml:"sites"`
}

// LoggingConfig controls log verbosity and the optional log file.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// StorageConfig selects and parameterizes the content tracker backend.
type StorageConfig struct {
	Backend   string       `yaml:"backend"` // "excel" or "sheets"
	ExcelPath string       `yaml:"excelPath"`
	Sheets    SheetsConfig `yaml:"sheets"`
}

// SheetsConfig wires the Google Sheets backend.
type SheetsConfig struct {
	CredentialsPath string `yaml:"credentialsPath"`
	SpreadsheetID   string `yaml:"spreadsheetId"`
}

// LedgerConfig locates the processed-articles dedup file.
type LedgerConfig struct {
	Path string `yaml:"path"`
}

// OutputConfig describes where run artifacts land.
type OutputConfig struct {
	Dir     string `yaml:"dir"`
	DataDir string `yaml:"dataDir"`
}

// SchedulerConfig defines when the daily run should execute.
type SchedulerConfig struct {
	DailyAt  string         `yaml:"dailyAt"` // "HH:MM"
	Timezone string         `yaml:"timezone"`
	location *time.Location `yaml:"-"`
}

// Location resolves the scheduler timezone string to a time.Location.
func (s SchedulerConfig) Location() *time.Location {
	if s.location != nil {
		return s.location
	}
	loc, _ := time.LoadLocation(defaultTimezone)
	return loc
}

// OpenAIConfig defines how to contact the chat-completions API.
type OpenAIConfig struct {
	Endpoint string `yaml:"endpoint"`
	Model    string `yaml:"model"`
	APIKey   string `yaml:"apiKey"`
}

// SiteConfig describes a single news site with its scanner strategy.
type SiteConfig struct {
	Name     string            `yaml:"name"`
	Scanner  string            `yaml:"scanner"`
	Sections []SectionConfig   `yaml:"sections"`
	Options  map[string]string `yaml:"options"`
}

// SectionConfig holds a concrete listing page to crawl.
type SectionConfig struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	cfg.bindTimezone()

	if len(cfg.Sites) == 0 {
		cfg.Sites = defaultConfig().Sites
	}

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(openAIKeyEnv); v != "" {
		c.OpenAI.APIKey = v
	}

	if v := os.Getenv(openAIModelEnv); v != "" {
		c.OpenAI.Model = v
	}

	if v := os.Getenv(sheetsIDEnv); v != "" {
		c.Storage.Sheets.SpreadsheetID = v
	}

	if v := os.Getenv(sheetsCredsEnv); v != "" {
		c.Storage.Sheets.CredentialsPath = v
	}

	if v := os.Getenv(schedulerTimeEnv); v != "" {
		c.Scheduler.DailyAt = v
	}

	if v := os.Getenv(storageBackendEnv); v != "" {
		c.Storage.Backend = v
	}
}

func (c *Config) bindTimezone() {
	tz := c.Scheduler.Timezone
	if tz == "" {
		tz = defaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("config: unknown timezone %s, reverting to %s", tz, defaultTimezone)
		loc, _ = time.LoadLocation(defaultTimezone)
	}
	c.Scheduler.location = loc
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}
	if override.Logging.File != "" {
		base.Logging.File = override.Logging.File
	}

	if override.Storage.Backend != "" {
		base.Storage.Backend = override.Storage.Backend
	}
	if override.Storage.ExcelPath != "" {
		base.Storage.ExcelPath = override.Storage.ExcelPath
	}
	if override.Storage.Sheets.CredentialsPath != "" {
		base.Storage.Sheets.CredentialsPath = override.Storage.Sheets.CredentialsPath
	}
	if override.Storage.Sheets.SpreadsheetID != "" {
		base.Storage.Sheets.SpreadsheetID = override.Storage.Sheets.SpreadsheetID
	}

	if override.Ledger.Path != "" {
		base.Ledger.Path = override.Ledger.Path
	}

	if override.Output.Dir != "" {
		base.Output.Dir = override.Output.Dir
	}
	if override.Output.DataDir != "" {
		base.Output.DataDir = override.Output.DataDir
	}

	if override.Scheduler.DailyAt != "" {
		base.Scheduler.DailyAt = override.Scheduler.DailyAt
	}
	if override.Scheduler.Timezone != "" {
		base.Scheduler.Timezone = override.Scheduler.Timezone
	}

	if override.OpenAI.Endpoint != "" {
		base.OpenAI.Endpoint = override.OpenAI.Endpoint
	}
	if override.OpenAI.Model != "" {
		base.OpenAI.Model = override.OpenAI.Model
	}
	if override.OpenAI.APIKey != "" {
		base.OpenAI.APIKey = override.OpenAI.APIKey
	}

	if len(override.Sites) > 0 {
		base.Sites = override.Sites
	}

	return base
}

func defaultConfig() Config {
	tz, _ := time.LoadLocation(defaultTimezone)
	return Config{
		Logging: LoggingConfig{Level: "info", File: "logs/main.log"},
		Storage: StorageConfig{
			Backend:   "excel",
			ExcelPath: "data/content_tracker.xlsx",
			Sheets: SheetsConfig{
				CredentialsPath: "credentials.json",
			},
		},
		Ledger: LedgerConfig{Path: "data/processed_articles.json"},
		Output: OutputConfig{Dir: "output", DataDir: "data"},
		Scheduler: SchedulerConfig{
			DailyAt:  "09:00",
			Timezone: defaultTimezone,
			location: tz,
		},
		OpenAI: OpenAIConfig{
			Endpoint: "https://api.openai.com/v1/chat/completions",
			Model:    "gpt-3.5-turbo",
		},
		Sites: []SiteConfig{
			{
				Name:    "menabytes",
				Scanner: "menabytes",
				Sections: []SectionConfig{
					{Name: "home", URL: "https://www.menabytes.com"},
				},
			},
		},
	}
}
