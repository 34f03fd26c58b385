package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/staffview/internal/buildinfo"
	"github.com/dmitrijs2005/staffview/internal/logging"
	"github.com/dmitrijs2005/staffview/internal/server"
	"github.com/dmitrijs2005/staffview/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := logging.New(cfg.LogFormat, cfg.LogLevel, os.Stdout)

	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
