package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Video     VideoConfig     `yaml:"video"`
	Cache     CacheConfig     `yaml:"cache"`
	Gemini    GeminiConfig    `yaml:"gemini"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type VideoConfig struct {
	MaxDuration     int      `yaml:"max_duration"` // seconds; videos at or above this are rejected
	Languages       []string `yaml:"languages"`
	ExtractTimeout  int      `yaml:"extract_timeout"`  // seconds
	DownloadTimeout int      `yaml:"download_timeout"` // seconds
	YtdlpPath       string   `yaml:"ytdlp_path"`
}

type CacheConfig struct {
	Dir string `yaml:"dir"`
}

type GeminiConfig struct {
	Model          string   `yaml:"model"`
	APIKeys        []string `yaml:"api_keys"`
	RequestTimeout int      `yaml:"request_timeout"` // seconds
}

type RateLimitConfig struct {
	Limit   int  `yaml:"limit"`
	Window  int  `yaml:"window"` // seconds
	Enforce bool `yaml:"enforce"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads a YAML config file, applies environment overrides and validates.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns a config built from defaults and environment variables only,
// for running without a config file.
func Default() (*Config, error) {
	var cfg Config
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyEnv overrides file values with environment variables. These are the
// variables the original deployment consumed, so existing setups keep working
// without a config file.
func (c *Config) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("MAX_VIDEO_DURATION"); v != "" {
		if d, err := strconv.Atoi(v); err == nil {
			c.Video.MaxDuration = d
		}
	}
	if v := os.Getenv("MODEL"); v != "" {
		c.Gemini.Model = v
	}
	if v := os.Getenv("CACHE_DIR"); v != "" {
		c.Cache.Dir = v
	}
	if v := os.Getenv("GEMINI_API_KEYS"); v != "" {
		keys := make([]string, 0)
		for _, k := range strings.Split(v, ",") {
			if k = strings.TrimSpace(k); k != "" {
				keys = append(keys, k)
			}
		}
		if len(keys) > 0 {
			c.Gemini.APIKeys = keys
		}
	}
}

func (c *Config) Validate() error {
	if len(c.Gemini.APIKeys) == 0 {
		return fmt.Errorf("gemini.api_keys is required (or set GEMINI_API_KEYS)")
	}

	if c.Server.Port == 0 {
		c.Server.Port = 5000
	}
	if c.Video.MaxDuration == 0 {
		c.Video.MaxDuration = 7200
	}
	if len(c.Video.Languages) == 0 {
		c.Video.Languages = []string{"en", "en-US", "en-GB"}
	}
	if c.Video.ExtractTimeout == 0 {
		c.Video.ExtractTimeout = 60
	}
	if c.Video.DownloadTimeout == 0 {
		c.Video.DownloadTimeout = 30
	}
	if c.Video.YtdlpPath == "" {
		c.Video.YtdlpPath = "yt-dlp"
	}
	if c.Cache.Dir == "" {
		c.Cache.Dir = "./cache"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.RequestTimeout == 0 {
		c.Gemini.RequestTimeout = 120
	}
	if c.RateLimit.Limit == 0 {
		c.RateLimit.Limit = 5
	}
	if c.RateLimit.Window == 0 {
		c.RateLimit.Window = 60
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
