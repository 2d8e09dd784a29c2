package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/easeshop/easeshop/internal/buildinfo"
	"github.com/easeshop/easeshop/internal/cli"
	"github.com/easeshop/easeshop/internal/config"
	"github.com/easeshop/easeshop/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
