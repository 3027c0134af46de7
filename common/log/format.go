package log

import "github.com/inconshreveable/log15"

// TerminalFormat picks the record format for console output. Colored
// terminals get the aligned log15 layout, pipes and dumb terminals get
// logfmt lines.
func TerminalFormat(useColor bool) log15.Format {
	if useColor {
		return log15.TerminalFormat()
	}
	return log15.LogfmtFormat()
}
