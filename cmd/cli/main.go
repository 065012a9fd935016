package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/freshkeep/freshkeep-cli/internal/buildinfo"
	"github.com/freshkeep/freshkeep-cli/internal/client/cli"
	"github.com/freshkeep/freshkeep-cli/internal/client/config"
	"github.com/freshkeep/freshkeep-cli/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
