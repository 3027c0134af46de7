package main

import (
	"sort"
	"time"

	"github.com/LemoFoundationLtd/basex/codec"
	"github.com/LemoFoundationLtd/basex/common/basex"
	"github.com/LemoFoundationLtd/basex/common/log"
	"github.com/LemoFoundationLtd/basex/main/console"
	"github.com/LemoFoundationLtd/basex/metrics"
	gometrics "github.com/rcrowley/go-metrics"
	"gopkg.in/urfave/cli.v1"
)

// metrics are logged this often while the console runs
const metricsLogInterval = time.Minute

var consoleCommand = cli.Command{
	Action:   localConsole,
	Name:     "console",
	Usage:    "Start an interactive encode and decode shell",
	Flags:    alphabetFlags,
	Category: "CONSOLE COMMANDS",
	Description: `
The basex console reads commands line by line:
  encode <text|0xhex>   encode text, or bytes given as hex
  decode <text>         decode to bytes
  use <alphabet>        switch to a preset or stored alphabet
  alphabet              print the current alphabet
  exit                  leave the console`,
}

func localConsole(ctx *cli.Context) error {
	cfg, err := getConfig(ctx)
	if err != nil {
		return err
	}
	c, err := makeCodec(ctx, cfg)
	if err != nil {
		return err
	}
	reg, err := openRegistry(cfg)
	if err != nil {
		return err
	}
	defer reg.Close()

	if cfg.Metrics {
		quit := make(chan struct{})
		defer close(quit)
		go metrics.WriteMetricsData(gometrics.DefaultRegistry, metricsLogInterval, quit)
	}

	consoleObj, err := console.New(console.Config{
		DataDir: cfg.DataDir,
		Codec:   c,
		Resolve: func(name string) (*codec.Codec, error) {
			return codec.Resolve(reg, name)
		},
		Names: func() []string {
			names, err := reg.Names()
			if err != nil {
				log.Warn("List stored alphabets failed", "err", err)
			}
			names = append(names, basex.PresetNames()...)
			sort.Strings(names)
			return names
		},
		Printer: ctx.App.Writer,
	})
	if err != nil {
		return err
	}
	defer consoleObj.Stop()
	// print the welcome screen and enter interactive mode
	consoleObj.Welcome()
	consoleObj.Interactive()
	return nil
}
