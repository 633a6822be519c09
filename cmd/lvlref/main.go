// Command lvlref runs the algorithms of this module from the command line.
//
//	lvlref radix --find tea --print words.txt
//	lvlref bfs --edge 1,2 --edge 2,3 --source 1 --target 3
//	lvlref --debug --log-format json radix --delete team words.txt
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		slog.Error("lvlref failed", "err", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "lvlref",
		Usage: "reference algorithms and data structures",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "log at debug level",
				EnvVars: []string{"LVLREF_DEBUG"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "log output format: text or json",
				Value:   "text",
				EnvVars: []string{"LVLREF_LOG_FORMAT"},
			},
		},
		Before: configLogger,
		Commands: []*cli.Command{
			radixCommand(),
			trieCommand(),
			primesCommand(),
			gcdCommand(),
			stirlingCommand(),
			topoCommand(),
			bfsCommand(),
			topkCommand(),
			dsuCommand(),
			segtreeCommand(),
		},
	}
}

// configLogger installs the default slog logger on the app's error writer.
func configLogger(cctx *cli.Context) error {
	level := slog.LevelInfo
	if cctx.Bool("debug") {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	switch strings.ToLower(cctx.String("log-format")) {
	case "text":
		h = slog.NewTextHandler(cctx.App.ErrWriter, opts)
	case "json":
		h = slog.NewJSONHandler(cctx.App.ErrWriter, opts)
	default:
		return fmt.Errorf("unknown log format %q", cctx.String("log-format"))
	}
	slog.SetDefault(slog.New(h))

	return nil
}
