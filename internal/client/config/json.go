package config

import (
	"encoding/json"
	"os"

	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/flagx"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/timex"
)

// JsonConfig is a DTO used only for unmarshalling. Pointer and zero-valued
// fields mean "not set" and leave the current value alone.
type JsonConfig struct {
	APIBaseURL       string          `json:"api_base_url"`
	RequestTimeout   *timex.Duration `json:"request_timeout"`
	DatabasePath     string          `json:"database_path"`
	RequireClearance *bool           `json:"require_clearance"`
	LogLevel         string          `json:"log_level"`

	OnlineCheckInterval *timex.Duration `json:"online_check_interval"`
}

// parseJson overlays cfg with the JSON file named by -c/-config. It panics on
// read or decode errors.
func parseJson(cfg *Config) {
	path := flagx.ConfigFileFlag(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.RequireClearance != nil {
		cfg.RequireClearance = *jc.RequireClearance
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
}
