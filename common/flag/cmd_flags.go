package flag

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/urfave/cli.v1"
)

type flagInfo struct {
	IsSet bool
	Value string
}

// CmdFlags is a snapshot of the command line flags of one command. Global
// flags are visible too, a value set on the command wins over the global one.
type CmdFlags map[string]flagInfo

func NewCmdFlags(ctx *cli.Context, totalFlags []cli.Flag) CmdFlags {
	flags := make(CmdFlags, len(totalFlags))
	for _, f := range totalFlags {
		name := f.GetName()
		if idx := strings.IndexByte(name, ','); idx >= 0 {
			name = name[:idx]
		}
		if ctx.IsSet(name) {
			flags[name] = flagInfo{true, ctx.String(name)}
		} else if ctx.GlobalIsSet(name) {
			flags[name] = flagInfo{true, ctx.GlobalString(name)}
		} else if ctx.String(name) != "" {
			flags[name] = flagInfo{false, ctx.String(name)}
		} else {
			// Get default flag value
			flags[name] = flagInfo{false, ctx.GlobalString(name)}
		}
	}
	return flags
}

func (c CmdFlags) IsSet(name string) bool {
	info, ok := c[name]
	return ok && info.IsSet
}

// Bool returns false if not found
func (c CmdFlags) Bool(name string) bool {
	info, ok := c[name]
	if ok {
		if parsed, err := strconv.ParseBool(info.Value); err == nil {
			return parsed
		}
	}
	return false
}

// Int returns 0 if not found
func (c CmdFlags) Int(name string) int {
	info, ok := c[name]
	if ok {
		if parsed, err := strconv.ParseInt(info.Value, 0, 64); err == nil {
			return int(parsed)
		}
	}
	return 0
}

// String returns "" if not found
func (c CmdFlags) String(name string) string {
	info, ok := c[name]
	if ok {
		return info.Value
	}
	return ""
}

// CheckExclusive verifies that only a single instance of the provided flags was set by the user.
func (c CmdFlags) CheckExclusive(args ...cli.Flag) error {
	if len(args) <= 1 {
		return nil
	}

	set := make([]string, 0, 1)
	for i := 0; i < len(args); i++ {
		name := args[i].GetName()
		if c.IsSet(name) {
			set = append(set, "--"+name)
		}
	}
	if len(set) > 1 {
		return fmt.Errorf("flags %v can't be used at the same time", strings.Join(set, ", "))
	}
	return nil
}
