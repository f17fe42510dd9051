package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Service modes.
const (
	ModeBasic   = "basic"   // original keyword list
	ModeLexicon = "lexicon" // expanded lexicon with phrases
	ModeOracle  = "oracle"  // external model with keyword fallback
)

// HealthScheduleOff disables the oracle health monitor.
const HealthScheduleOff = "off"

// Config is built once in main and passed down explicitly.
type Config struct {
	Addr        string
	Mode        string
	LexiconPath string
	LogLevel    string
	Oracle      OracleConfig
}

type OracleConfig struct {
	APIKey         string
	BaseURL        string
	Model          string
	Timeout        time.Duration
	LabelPolicy    string // "score" or "oracle"
	HealthSchedule string // cron spec, or "off"
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	return Config{
		Addr:        getenv("SENTIMENT_ADDR", ":8000"),
		Mode:        strings.ToLower(getenv("SENTIMENT_MODE", ModeOracle)),
		LexiconPath: os.Getenv("SENTIMENT_LEXICON_PATH"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		Oracle: OracleConfig{
			APIKey:         getenv("GEMINI_API_KEY", os.Getenv("SENTIMENT_ORACLE_API_KEY")),
			BaseURL:        os.Getenv("SENTIMENT_ORACLE_BASE_URL"),
			Model:          os.Getenv("SENTIMENT_ORACLE_MODEL"),
			Timeout:        getenvDuration("SENTIMENT_ORACLE_TIMEOUT", 5*time.Second),
			LabelPolicy:    strings.ToLower(getenv("SENTIMENT_ORACLE_LABEL_POLICY", "score")),
			HealthSchedule: getenv("SENTIMENT_ORACLE_HEALTH_SCHEDULE", "@every 30s"),
		},
	}
}

// Validate checks settings that would make the service misbehave. A missing
// oracle credential is not an error here: the service still starts and
// reports it per request.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeBasic, ModeLexicon, ModeOracle:
	default:
		return fmt.Errorf("SENTIMENT_MODE must be one of basic, lexicon, oracle; got %q", c.Mode)
	}
	switch c.Oracle.LabelPolicy {
	case "score", "oracle":
	default:
		return fmt.Errorf("SENTIMENT_ORACLE_LABEL_POLICY must be score or oracle; got %q", c.Oracle.LabelPolicy)
	}
	if c.Oracle.Timeout <= 0 {
		return fmt.Errorf("SENTIMENT_ORACLE_TIMEOUT must be positive; got %s", c.Oracle.Timeout)
	}
	if c.Addr == "" {
		return fmt.Errorf("SENTIMENT_ADDR must not be empty")
	}
	return nil
}

// OracleConfigured reports whether the oracle credential is present.
func (c Config) OracleConfigured() bool {
	return c.Oracle.APIKey != ""
}

// HealthMonitorEnabled reports whether the health schedule is set.
func (c Config) HealthMonitorEnabled() bool {
	s := strings.TrimSpace(c.Oracle.HealthSchedule)
	return s != "" && !strings.EqualFold(s, HealthScheduleOff)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getenvDuration accepts Go durations ("5s") or a bare number of seconds.
func getenvDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	var secs float64
	if _, err := fmt.Sscanf(v, "%g", &secs); err == nil {
		return time.Duration(secs * float64(time.Second))
	}
	return fallback
}
