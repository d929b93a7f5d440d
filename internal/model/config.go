package model

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds the complete patentgrab configuration
type Config struct {
	HTTP         HTTPConfig      `yaml:"http" mapstructure:"http"`
	Source       SourceConfig    `yaml:"source" mapstructure:"source"`
	RateLimiting RateLimitConfig `yaml:"rate_limiting" mapstructure:"rate_limiting"`
	Cache        CacheConfig     `yaml:"cache" mapstructure:"cache"`
	Robots       RobotsConfig    `yaml:"robots" mapstructure:"robots"`
	Concurrency  ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Output       OutputConfig    `yaml:"output" mapstructure:"output"`
}

// HTTPConfig controls the fetch client
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent    string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	RetryCount   int           `yaml:"retry_count" mapstructure:"retry_count"`
	RetryWait    time.Duration `yaml:"retry_wait" mapstructure:"retry_wait"`
	InsecureTLS  bool          `yaml:"insecure_tls" mapstructure:"insecure_tls"`
	HTTPProxy    string        `yaml:"http_proxy" mapstructure:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy" mapstructure:"https_proxy"`
}

// SourceConfig fixes the document URL convention: base path + jurisdiction
// code + normalized identifier + kind code + locale segment. One
// jurisdiction/kind-code family; not general.
type SourceConfig struct {
	BaseURL      string `yaml:"base_url" mapstructure:"base_url"`
	Jurisdiction string `yaml:"jurisdiction" mapstructure:"jurisdiction"`
	KindCode     string `yaml:"kind_code" mapstructure:"kind_code"`
	Locale       string `yaml:"locale" mapstructure:"locale"`
}

// RateLimitConfig paces fetches. Delay is the mandatory pause between
// requests on top of the token-bucket rate.
type RateLimitConfig struct {
	RequestsPerSecond float64       `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	BurstSize         int           `yaml:"burst_size" mapstructure:"burst_size"`
	Delay             time.Duration `yaml:"delay" mapstructure:"delay"`
}

// CacheConfig controls the fetched-page cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// RobotsConfig controls robots.txt compliance
type RobotsConfig struct {
	Respect bool `yaml:"respect" mapstructure:"respect"`
}

// ConcurrencyConfig controls the batch worker count
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// OutputConfig controls rendering
type OutputConfig struct {
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	return &Config{
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "patentgrab/0.1 (+https://github.com/akorchak/patentgrab)",
			MaxBodyBytes: 4_000_000,
			RetryCount:   2,
			RetryWait:    500 * time.Millisecond,
		},
		Source: SourceConfig{
			BaseURL:      "https://patents.google.com/patent/",
			Jurisdiction: "US",
			KindCode:     "B2",
			Locale:       "en",
		},
		RateLimiting: RateLimitConfig{
			RequestsPerSecond: 1,
			BurstSize:         1,
			Delay:             time.Second,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       filepath.Join(home, ".patentgrab", "cache"),
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Robots: RobotsConfig{
			Respect: true,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 1,
		},
		Output: OutputConfig{},
	}
}
