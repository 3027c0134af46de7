package main

import (
	"fmt"
	"os"
	"runtime"
	"sort"

	"github.com/LemoFoundationLtd/basex/common/log"
	"github.com/LemoFoundationLtd/basex/main/console"
	"github.com/LemoFoundationLtd/basex/metrics"
	"github.com/fatih/color"
	"gopkg.in/urfave/cli.v1"
)

var app = NewApp("encode and decode bytes with any alphabet")

func init() {
	app.HideVersion = true
	app.Copyright = "Copyright 2017-2018 The Lemochain-go Authors"
	app.Commands = []cli.Command{
		encodeCommand,
		decodeCommand,
		alphabetCommand,
		presetsCommand,
		consoleCommand,
	}
	sort.Sort(cli.CommandsByName(app.Commands))
	app.Flags = append(app.Flags, globalFlags...)

	app.Before = func(ctx *cli.Context) error {
		runtime.GOMAXPROCS(runtime.NumCPU())
		cfg, err := loadConfig(ctx)
		if err != nil {
			return err
		}
		if err := setupLog(cfg); err != nil {
			return err
		}
		if ctx.App.Metadata == nil {
			ctx.App.Metadata = make(map[string]interface{})
		}
		ctx.App.Metadata[configKey] = cfg
		log.Debug("Config loaded", "datadir", cfg.DataDir, "alphabet", cfg.Alphabet, "workers", cfg.Workers)
		return nil
	}

	app.After = func(ctx *cli.Context) error {
		if cfg, err := getConfig(ctx); err == nil && cfg.Metrics {
			for _, module := range metrics.Modules {
				log.Debug("Metrics collected", "module", module, "count", len(metrics.GetModuleMetrics(module)))
			}
			metrics.WriteOnce(ctx.App.Writer)
		}
		console.Stdin.Close()
		return nil
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		os.Exit(1)
	}
}
