package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
		BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"description=Public URL of the web app, used as the allowed CORS origin"`
		Debug   bool          `yaml:"debug" json:"debug" jsonschema:"default=false,description=Debug mode, allows loopback CORS origins"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:jobiq.db?cache=shared&mode=rwc&_txlock=immediate,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Ingest IngestConfig `yaml:"ingest" json:"ingest" jsonschema:"description=Job feed ingestion configuration"`

	Digest DigestConfig `yaml:"digest" json:"digest" jsonschema:"description=Weekly digest configuration"`

	LLM LLMConfig `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration for job scoring"`

	Verification VerificationConfig `yaml:"verification" json:"verification" jsonschema:"description=Company website verification configuration"`

	CORS CORSConfig `yaml:"cors" json:"cors" jsonschema:"description=CORS configuration for the browser extension"`
}

// FeedConfig is a single job-board feed to ingest
type FeedConfig struct {
	Name string `yaml:"name" json:"name" jsonschema:"required,description=Short feed name, used as the job source tag"`
	URL  string `yaml:"url" json:"url" jsonschema:"required,description=Feed URL (RSS or Atom)"`
}

// IngestConfig holds job feed ingestion settings
type IngestConfig struct {
	Feeds          []FeedConfig  `yaml:"feeds" json:"feeds" jsonschema:"description=Job-board feeds to poll"`
	UpdateInterval int           `yaml:"update_interval" json:"update_interval" jsonschema:"default=30,description=Feed update interval in minutes"`
	MaxWorkers     int           `yaml:"max_workers" json:"max_workers" jsonschema:"default=5,description=Maximum concurrent feed workers"`
	FetchTimeout   time.Duration `yaml:"fetch_timeout" json:"fetch_timeout" jsonschema:"default=30s,description=Timeout per feed fetch"`
	UserAgent      string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=JobIQ/1.0,description=User agent for feed requests"`
	StaleAfter     time.Duration `yaml:"stale_after" json:"stale_after" jsonschema:"default=720h,description=Deactivate jobs not seen for this long"`
}

// DigestConfig holds weekly digest settings
type DigestConfig struct {
	WindowDays int           `yaml:"window_days" json:"window_days" jsonschema:"default=7,description=How many days back to look for digest jobs"`
	MaxJobs    int           `yaml:"max_jobs" json:"max_jobs" jsonschema:"default=10,description=Maximum jobs per digest email"`
	Timeout    time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=5m,description=Maximum duration of a digest run"`
	CronSecret string        `yaml:"cron_secret" json:"-" jsonschema:"description=Shared secret for the digest trigger endpoint (use an environment variable)"`
}

// LLMConfig holds LLM configuration for job scoring
type LLMConfig struct {
	Enabled      bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable LLM scoring, heuristic only when off"`
	Endpoint     string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint"`
	APIKey       string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model        string        `yaml:"model" json:"model" jsonschema:"description=Model name (e.g. gpt-4o-mini or llama3)"`
	Temperature  float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.3,description=Temperature for response generation"`
	MaxTokens    int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=500,description=Maximum tokens in response"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
	SystemPrompt string        `yaml:"system_prompt" json:"system_prompt" jsonschema:"description=System prompt for the LLM (optional)"`
	UseJSONMode  bool          `yaml:"use_json_mode" json:"use_json_mode" jsonschema:"default=false,description=Use JSON response format (not all models support this)"`
	BatchSize    int           `yaml:"batch_size" json:"batch_size" jsonschema:"default=20,minimum=1,description=Number of jobs to score in one request"`
}

// VerificationConfig holds company website verification settings
type VerificationConfig struct {
	Enabled       bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable company website verification"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Verification timeout per company"`
	MaxConcurrent int           `yaml:"max_concurrent" json:"max_concurrent" jsonschema:"default=5,description=Maximum concurrent verifications"`
	RateLimit     time.Duration `yaml:"rate_limit" json:"rate_limit" jsonschema:"default=1s,description=Rate limit between verifications"`
	UserAgent     string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=JobIQ/1.0,description=User agent for HTTP requests"`
	MinTextLength int           `yaml:"min_text_length" json:"min_text_length" jsonschema:"default=100,description=Minimum extracted text length to consider a page valid"`
	BatchSize     int           `yaml:"batch_size" json:"batch_size" jsonschema:"default=10,minimum=1,description=Companies checked per verification pass"`
}

// CORSConfig holds browser extension CORS settings
type CORSConfig struct {
	ExtensionPrefix string `yaml:"extension_prefix" json:"extension_prefix" jsonschema:"default=chrome-extension://,description=Origin scheme prefix allowed for the browser extension"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:jobiq.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for ingest
	if cfg.Ingest.UpdateInterval == 0 {
		cfg.Ingest.UpdateInterval = 30
	}
	if cfg.Ingest.MaxWorkers == 0 {
		cfg.Ingest.MaxWorkers = 5
	}
	if cfg.Ingest.FetchTimeout == 0 {
		cfg.Ingest.FetchTimeout = 30 * time.Second
	}
	if cfg.Ingest.UserAgent == "" {
		cfg.Ingest.UserAgent = "JobIQ/1.0"
	}
	if cfg.Ingest.StaleAfter == 0 {
		cfg.Ingest.StaleAfter = 30 * 24 * time.Hour
	}

	// set defaults for digest
	if cfg.Digest.WindowDays == 0 {
		cfg.Digest.WindowDays = 7
	}
	if cfg.Digest.MaxJobs == 0 {
		cfg.Digest.MaxJobs = 10
	}
	if cfg.Digest.Timeout == 0 {
		cfg.Digest.Timeout = 5 * time.Minute
	}

	// set defaults for LLM
	if cfg.LLM.Temperature == 0 {
		cfg.LLM.Temperature = 0.3
	}
	if cfg.LLM.MaxTokens == 0 {
		cfg.LLM.MaxTokens = 500
	}
	if cfg.LLM.Timeout == 0 {
		cfg.LLM.Timeout = 30 * time.Second
	}
	if cfg.LLM.BatchSize == 0 {
		cfg.LLM.BatchSize = 20
	}

	// set defaults for verification
	if cfg.Verification.Timeout == 0 {
		cfg.Verification.Timeout = 30 * time.Second
	}
	if cfg.Verification.MaxConcurrent == 0 {
		cfg.Verification.MaxConcurrent = 5
	}
	if cfg.Verification.RateLimit == 0 {
		cfg.Verification.RateLimit = 1 * time.Second
	}
	if cfg.Verification.UserAgent == "" {
		cfg.Verification.UserAgent = "JobIQ/1.0"
	}
	if cfg.Verification.MinTextLength == 0 {
		cfg.Verification.MinTextLength = 100
	}
	if cfg.Verification.BatchSize == 0 {
		cfg.Verification.BatchSize = 10
	}

	// set defaults for CORS
	if cfg.CORS.ExtensionPrefix == "" {
		cfg.CORS.ExtensionPrefix = "chrome-extension://"
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	// validate ingest config
	for i, feed := range cfg.Ingest.Feeds {
		if feed.URL == "" {
			return fmt.Errorf("ingest.feeds[%d].url is required", i)
		}
		if feed.Name == "" {
			return fmt.Errorf("ingest.feeds[%d].name is required", i)
		}
	}

	// validate digest config
	if cfg.Digest.WindowDays < 1 {
		return fmt.Errorf("digest.window_days must be at least 1")
	}
	if cfg.Digest.MaxJobs < 1 {
		return fmt.Errorf("digest.max_jobs must be at least 1")
	}

	// validate LLM config, only matters when scoring is enabled
	if cfg.LLM.Enabled {
		if cfg.LLM.Endpoint == "" {
			return fmt.Errorf("llm.endpoint is required when llm is enabled")
		}
		if cfg.LLM.Model == "" {
			return fmt.Errorf("llm.model is required when llm is enabled")
		}
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}
	if cfg.LLM.BatchSize < 1 {
		return fmt.Errorf("llm.batch_size must be at least 1")
	}

	// validate verification config
	if cfg.Verification.Enabled {
		if cfg.Verification.Timeout < time.Second {
			return fmt.Errorf("verification timeout must be at least 1 second")
		}
		if cfg.Verification.MinTextLength < 0 {
			return fmt.Errorf("verification min_text_length must be non-negative")
		}
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetLLMConfig returns LLM configuration
func (c *Config) GetLLMConfig() LLMConfig {
	return c.LLM
}

// GetVerificationConfig returns company verification configuration
func (c *Config) GetVerificationConfig() VerificationConfig {
	return c.Verification
}
