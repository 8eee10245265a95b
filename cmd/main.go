package main

import (
	"log/slog"
	"os"

	"github.com/dasdy/datanav/cmd/datanav"
	"github.com/dasdy/datanav/logging"
)

func main() {
	// Replaced once flags are parsed and --verbose is known.
	slog.SetDefault(slog.New(logging.NewHandler(os.Stderr, false)))

	datanav.Execute()
}
