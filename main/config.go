package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/LemoFoundationLtd/basex/codec"
	"github.com/LemoFoundationLtd/basex/common"
	"github.com/LemoFoundationLtd/basex/common/flag"
	"github.com/LemoFoundationLtd/basex/common/log"
	"github.com/LemoFoundationLtd/basex/main/config"
	"github.com/LemoFoundationLtd/basex/metrics"
	"github.com/LemoFoundationLtd/basex/store"
	"gopkg.in/urfave/cli.v1"
)

type basexConfig struct {
	DataDir string
	config.ConfigFromFile
}

const configKey = "config"

// loadConfig merges config.json of the data directory with the global command
// line flags. Flags set by the user win over the file.
func loadConfig(ctx *cli.Context) (*basexConfig, error) {
	flags := flag.NewCmdFlags(ctx, globalFlags)
	cfg := &basexConfig{DataDir: flags.String(common.DataDir)}

	fileCfg, err := config.ReadConfigFile(cfg.DataDir)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		fileCfg = config.Default()
	}
	cfg.ConfigFromFile = *fileCfg

	if flags.IsSet(common.LogLevel) {
		cfg.LogLevel = flags.String(common.LogLevel)
	}
	if flags.IsSet(common.LogFile) {
		cfg.LogToFile = flags.Bool(common.LogFile)
	}
	if flags.IsSet(common.Metrics) {
		cfg.Metrics = flags.Bool(common.Metrics)
	}
	if flags.IsSet(common.Workers) {
		cfg.Workers = flags.Int(common.Workers)
	}
	if err := cfg.Check(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// getConfig returns the config loaded by the app's Before hook.
func getConfig(ctx *cli.Context) (*basexConfig, error) {
	if cfg, ok := ctx.App.Metadata[configKey].(*basexConfig); ok {
		return cfg, nil
	}
	return loadConfig(ctx)
}

func setupLog(cfg *basexConfig) error {
	lv, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logDir := ""
	if cfg.LogToFile {
		logDir = cfg.DataDir
	}
	log.Setup(lv, logDir, lv == log.LevelDebug)
	if cfg.Metrics {
		metrics.Enable()
	}
	return nil
}

// alphabetDBDir is the database directory inside the data directory
const alphabetDBDir = "alphabets"

func openRegistry(cfg *basexConfig) (*store.Registry, error) {
	return store.NewRegistry(filepath.Join(cfg.DataDir, alphabetDBDir))
}

// makeCodec returns the codec chosen by --symbols or --alphabet, falling back
// to the configured default alphabet. The registry is only opened when the
// name is not a preset.
func makeCodec(ctx *cli.Context, cfg *basexConfig) (*codec.Codec, error) {
	flags := flag.NewCmdFlags(ctx, alphabetFlags)
	if err := flags.CheckExclusive(AlphabetFlag, SymbolsFlag); err != nil {
		return nil, err
	}
	if flags.IsSet(common.Symbols) {
		return codec.FromSymbols(flags.String(common.Symbols))
	}
	name := cfg.Alphabet
	if flags.IsSet(common.Alphabet) {
		name = flags.String(common.Alphabet)
	}
	return resolveCodec(cfg, name)
}

func resolveCodec(cfg *basexConfig, name string) (*codec.Codec, error) {
	if c, err := codec.Resolve(nil, name); err == nil {
		return c, nil
	}
	reg, err := openRegistry(cfg)
	if err != nil {
		return nil, err
	}
	defer reg.Close()
	return codec.Resolve(reg, name)
}
