package config

import (
	"flag"
	"os"
	"time"

	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-k string   JWT HMAC secret key
//	-e int      access token validity, minutes
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-s string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-l string   log level
//
// Duration flags are integers in minutes.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-k", "-e", "-u", "-p", "-b", "-g", "-s", "-l"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	fs.StringVar(&config.ListenAddr, "a", config.ListenAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "k", config.SecretKey, "secret key")

	accessTokenValidityDuration := fs.Int("e", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "s", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
}
