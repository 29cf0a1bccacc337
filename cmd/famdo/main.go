package main

import (
	"log"
	"os"

	"github.com/famdoapp/famdo/internal/famdo/app"
	"github.com/famdoapp/famdo/internal/famdo/cli"
)

func main() {
	cfg := app.LoadConfig()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}
	defer application.Close()

	if err := cli.New(application).Execute(); err != nil {
		application.Logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
