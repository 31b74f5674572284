package config

import (
	"encoding/json"
	"os"

	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/flagx"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/timex"
)

// JsonConfig is the on-disk shape of the server configuration. Durations use
// timex.Duration so both "1m" and integer nanoseconds are accepted. Empty
// strings and absent durations keep the current value.
type JsonConfig struct {
	ListenAddr                  string          `json:"listen_addr"`
	DatabaseDSN                 string          `json:"database_dsn"`
	SecretKey                   string          `json:"secret_key"`
	AccessTokenValidityDuration *timex.Duration `json:"access_token_validity_duration"`
	OTPValidityDuration         *timex.Duration `json:"otp_validity_duration"`
	ResetTokenValidityDuration  *timex.Duration `json:"reset_token_validity_duration"`
	OTPResendInterval           *timex.Duration `json:"otp_resend_interval"`
	S3RootUser                  string          `json:"s3_root_user"`
	S3RootPassword              string          `json:"s3_root_password"`
	S3Bucket                    string          `json:"s3_bucket"`
	S3Region                    string          `json:"s3_region"`
	S3BaseEndpoint              string          `json:"s3_base_endpoint"`
	ShutdownTimeout             *timex.Duration `json:"shutdown_timeout"`
	LogLevel                    string          `json:"log_level"`
}

// parseJson overlays config with the JSON file named by -c/-config. It
// panics when the file cannot be read or decoded.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFileFlag(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.ListenAddr, c.ListenAddr)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.LogLevel, c.LogLevel)

	if c.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.OTPValidityDuration != nil {
		config.OTPValidityDuration = c.OTPValidityDuration.Duration
	}
	if c.ResetTokenValidityDuration != nil {
		config.ResetTokenValidityDuration = c.ResetTokenValidityDuration.Duration
	}
	if c.OTPResendInterval != nil {
		config.OTPResendInterval = c.OTPResendInterval.Duration
	}
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
