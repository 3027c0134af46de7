package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/inconshreveable/log15"
	"github.com/inconshreveable/log15/term"
	"github.com/mattn/go-colorable"
)

var srvLog = log15.New()

const (
	LevelCrit  = log15.LvlCrit
	LevelError = log15.LvlError
	LevelWarn  = log15.LvlWarn
	LevelInfo  = log15.LvlInfo
	LevelDebug = log15.LvlDebug
)

func init() {
	Setup(LevelInfo, "", false)
}

// Setup change the log config immediately
// The lv is higher the more logs would be visible. Logs are also written to
// logDir/basex.log if logDir is not empty.
func Setup(lv log15.Lvl, logDir string, showCodeLine bool) {
	useColor := term.IsTty(os.Stderr.Fd()) && os.Getenv("TERM") != "dumb"
	output := io.Writer(os.Stderr)
	if useColor {
		output = colorable.NewColorableStderr()
	}
	handler := log15.StreamHandler(output, TerminalFormat(useColor))
	if logDir != "" {
		handler = log15.MultiHandler(
			handler,
			FileHandler(filepath.Join(logDir, logFileName), log15.JsonFormat()),
		)
	}
	if showCodeLine {
		handler = log15.CallerFileHandler(handler)
	}
	srvLog.SetHandler(log15.LvlFilterHandler(lv, handler))
}

// ParseLevel converts a level name such as "debug" or "warn" to a level.
func ParseLevel(name string) (log15.Lvl, error) {
	lv, err := log15.LvlFromString(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
	return lv, nil
}

// Logger writes key/value pairs with a fixed context to the shared handler.
type Logger = log15.Logger

// New returns a logger which adds ctx to every record.
func New(ctx ...interface{}) Logger {
	return srvLog.New(ctx...)
}

func Debug(msg string, ctx ...interface{}) {
	srvLog.Debug(msg, ctx...)
}

func Debugf(format string, values ...interface{}) {
	msg := fmt.Sprintf(format, values...)
	srvLog.Debug(msg)
}

func Info(msg string, ctx ...interface{}) {
	srvLog.Info(msg, ctx...)
}

func Infof(format string, values ...interface{}) {
	msg := fmt.Sprintf(format, values...)
	srvLog.Info(msg)
}

func Warn(msg string, ctx ...interface{}) {
	srvLog.Warn(msg, ctx...)
}

func Warnf(format string, values ...interface{}) {
	msg := fmt.Sprintf(format, values...)
	srvLog.Warn(msg)
}

func Error(msg string, ctx ...interface{}) {
	srvLog.Error(msg, ctx...)
}

func Errorf(format string, values ...interface{}) {
	msg := fmt.Sprintf(format, values...)
	srvLog.Error(msg)
}

func Crit(msg string, ctx ...interface{}) {
	srvLog.Crit(msg, ctx...)
	os.Exit(1)
}

func Critf(format string, values ...interface{}) {
	msg := fmt.Sprintf(format, values...)
	srvLog.Crit(msg)
	os.Exit(1)
}

// Lazy allows you to defer calculation of a logged value that is expensive
// to compute until it is certain that it must be evaluated with the given filters.
//
// Lazy may also be used in conjunction with a Logger's New() function
// to generate a child logger which always reports the current value of changing
// state.
//
// You may wrap any function which takes no arguments to Lazy. It may return any
// number of values of any type.
type Lazy = log15.Lazy
