package app

import (
	"fmt"

	"bucket_images/images"

	"github.com/urfave/cli/v2"
)

func newCLI(setup setupFunc) *cli.App {
	return &cli.App{
		Name:  "bucket_images",
		Usage: "download images from a storage bucket, naming files by content type",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "read configuration from `FILE` instead of .env",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log debug output",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "get",
				Usage:     "download a single object",
				ArgsUsage: "<object> <dest-folder>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "ext", Usage: "force the file extension"},
					&cli.StringFlag{Name: "name", Usage: "local file name, without extension"},
					&cli.StringFlag{Name: "bucket", Usage: "bucket to read from instead of the configured default"},
				},
				Action: func(c *cli.Context) error {
					if c.Args().Len() != 2 {
						return fmt.Errorf("get: expected <object> <dest-folder>, got %d arguments", c.Args().Len())
					}

					downloader, err := setup(c)
					if err != nil {
						return err
					}

					p, err := downloader.DownloadImage(c.Context, c.Args().Get(0), c.Args().Get(1),
						images.WithExtension(c.String("ext")),
						images.WithFilename(c.String("name")),
						images.WithBucket(c.String("bucket")),
					)
					if err != nil {
						return err
					}
					return printPaths(c, p)
				},
			},
			{
				Name:      "sync",
				Usage:     `download every object under a prefix ending in "/"`,
				ArgsUsage: "<prefix> <destination>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "bucket", Usage: "bucket to read from instead of the configured default"},
				},
				Action: func(c *cli.Context) error {
					if c.Args().Len() != 2 {
						return fmt.Errorf("sync: expected <prefix> <destination>, got %d arguments", c.Args().Len())
					}

					downloader, err := setup(c)
					if err != nil {
						return err
					}

					paths, err := downloader.DownloadImages(c.Context, c.Args().Get(0), c.Args().Get(1),
						images.WithBucket(c.String("bucket")),
					)
					if err != nil {
						return err
					}
					return printPaths(c, paths...)
				},
			},
		},
	}
}
