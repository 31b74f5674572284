package config

import "time"

// Config holds runtime settings for the terminal client.
type Config struct {
	APIBaseURL       string
	RequestTimeout   time.Duration
	DatabasePath     string
	RequireClearance bool
	LogLevel         string

	// OnlineCheckInterval is how often the REPL pings the API; 0 disables it.
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "brgy-konek.db"
	c.RequireClearance = false
	c.LogLevel = "info"
	c.OnlineCheckInterval = 30 * time.Second
}

// LoadConfig applies defaults, then JSON, then flags. Later sources win.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
