package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"bucket_images/config"
	"bucket_images/images"
	"bucket_images/minio"

	"github.com/urfave/cli/v2"
)

// Run parses args and executes the requested download. The context is
// cancelled on the usual shutdown signals.
func Run(args []string) error {
	ctx, cancel := initContext()
	defer cancel()

	return newCLI(setup).RunContext(ctx, args)
}

func initContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT)
}

// setupFunc builds the Downloader for a command. Tests replace it to avoid
// touching the environment.
type setupFunc func(c *cli.Context) (*images.Downloader, error)

func setup(c *cli.Context) (*images.Downloader, error) {
	if c.Bool("verbose") {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var envFiles []string
	if f := c.String("env-file"); f != "" {
		envFiles = append(envFiles, f)
	}

	cfg, err := config.Get(envFiles...)
	if err != nil {
		return nil, err
	}

	storage, err := minio.Init(cfg.Storage)
	if err != nil {
		return nil, err
	}

	return images.NewDownloader(storage, cfg.Storage.DefaultBucket, slog.Default()), nil
}

func printPaths(c *cli.Context, paths ...string) error {
	for _, p := range paths {
		if _, err := fmt.Fprintln(c.App.Writer, p); err != nil {
			return err
		}
	}
	return nil
}
