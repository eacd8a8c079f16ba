package main

import (
	"log/slog"
	"os"

	"bucket_images/app"
)

func main() {
	if err := app.Run(os.Args); err != nil {
		slog.Error("download failed", "error", err)
		os.Exit(1)
	}
}
