package main

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/LemoFoundationLtd/basex/common"
	"github.com/LemoFoundationLtd/basex/main/config"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/urfave/cli.v1"
)

const version = "1.0.0"

func NewApp(usage string) *cli.App {
	app := cli.NewApp()
	app.Name = filepath.Base(os.Args[0])
	app.Version = version
	app.Usage = usage
	return app
}

var (
	DataDirFlag = cli.StringFlag{
		Name:  common.DataDir,
		Usage: "Data directory for the alphabet database and config.json",
		Value: DefaultDataDir(),
	}
	LogLevelFlag = cli.StringFlag{
		Name:  common.LogLevel,
		Usage: "Output log level: crit, error, warn, info, debug (default from config.json, or info)",
	}
	LogFileFlag = cli.BoolFlag{
		Name:  common.LogFile,
		Usage: "Write logs to <datadir>/basex.log too",
	}
	MetricsEnabledFlag = cli.BoolFlag{
		Name:  common.Metrics,
		Usage: "Enable metrics collection and print them on exit",
	}
	WorkersFlag = cli.IntFlag{
		Name:  common.Workers,
		Usage: "Number of goroutines encoding or decoding several inputs (default one per CPU)",
	}

	AlphabetFlag = cli.StringFlag{
		Name:  common.Alphabet,
		Usage: "Name of a preset or stored alphabet (default from config.json, or " + config.DefaultAlphabet + ")",
	}
	SymbolsFlag = cli.StringFlag{
		Name:  common.Symbols,
		Usage: "Use these symbols as the alphabet, e.g. 01",
	}
	HexFlag = cli.BoolFlag{
		Name:  common.Hex,
		Usage: "Bytes are written as 0x prefixed hex",
	}
	DumpFlag = cli.BoolFlag{
		Name:  common.Dump,
		Usage: "Print a hex dump of the decoded bytes",
	}
)

var (
	globalFlags = []cli.Flag{
		DataDirFlag,
		LogLevelFlag,
		LogFileFlag,
		MetricsEnabledFlag,
		WorkersFlag,
	}
	alphabetFlags = []cli.Flag{
		AlphabetFlag,
		SymbolsFlag,
	}
)

// DefaultDataDir is the default data directory to use for the alphabet
// database and other persistence requirements.
func DefaultDataDir() string {
	home := homeDir()
	if home != "" {
		if runtime.GOOS == "darwin" {
			return filepath.Join(home, "Library", "Basex")
		} else if runtime.GOOS == "windows" {
			return filepath.Join(home, "AppData", "Roaming", "Basex")
		}
		return filepath.Join(home, ".basex")
	}
	return ""
}

func homeDir() string {
	home, err := homedir.Dir()
	if err != nil {
		return ""
	}
	return home
}
