package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/buildinfo"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/client/cli"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/client/config"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.NewText(os.Stderr, cfg.LogLevel)

	app, err := cli.Bootstrap(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer app.Close()

	app.Run(ctx)

}
