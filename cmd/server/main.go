package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/buildinfo"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/logging"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/server"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.NewJSON(os.Stdout, cfg.LogLevel)

	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Printf("%v", err)
		return
	}
	defer app.Close()

	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "server stopped", "error", err)
	}

}
