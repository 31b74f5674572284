package config

import (
	"flag"
	"os"
	"time"

	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/flagx"
)

// parseFlags overlays cfg with command-line flags. Only the flags listed here
// are looked at; everything else on the command line is ignored.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-d", "-r", "-l", "-i"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the API")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local session database")
	fs.BoolVar(&cfg.RequireClearance, "r", cfg.RequireClearance, "require a clearance document on registration")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds, 0 disables)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
}
