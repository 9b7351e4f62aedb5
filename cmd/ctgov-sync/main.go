// Package main is the entry point for the clinical trial sync pipeline.
package main

import (
	"os"

	"github.com/ctmis/ctgov-sync/cmd/ctgov-sync/app"
	"github.com/ctmis/ctgov-sync/internal/logger"
)

func main() {
	defer logger.Sync()

	if err := app.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
