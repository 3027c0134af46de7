package flag

import (
	"flag"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/urfave/cli.v1"
)

var (
	AlphabetFlag = cli.StringFlag{
		Name:  "alphabet",
		Value: "base58",
	}
	AlphabetNew = "base62"

	SymbolsFlag = cli.StringFlag{
		Name: "symbols",
	}
	SymbolsNew = "01"

	WorkersFlag = cli.IntFlag{
		Name:  "workers",
		Value: 4,
	}
	WorkersNew = 16

	HexFlag = cli.BoolFlag{
		Name: "hex",
	}
	HexNew = true
)

func initFlags() []cli.Flag {
	return []cli.Flag{
		AlphabetFlag,
		SymbolsFlag,
		WorkersFlag,
		HexFlag,
	}
}

func newFlagSet() *flag.FlagSet {
	flagSet := new(flag.FlagSet)
	for _, f := range initFlags() {
		f.Apply(flagSet)
	}
	return flagSet
}

func TestNewCmdFlags_Set(t *testing.T) {
	context := cli.NewContext(nil, newFlagSet(), nil)
	context.Set(AlphabetFlag.Name, AlphabetNew)
	context.Set(WorkersFlag.Name, strconv.Itoa(WorkersNew))
	context.Set(HexFlag.Name, strconv.FormatBool(HexNew))

	cmdFlags := NewCmdFlags(context, initFlags())
	assert.NotNil(t, cmdFlags)

	assert.Equal(t, true, cmdFlags.IsSet(AlphabetFlag.Name))
	assert.Equal(t, AlphabetNew, cmdFlags.String(AlphabetFlag.Name))

	assert.Equal(t, true, cmdFlags.IsSet(WorkersFlag.Name))
	assert.Equal(t, WorkersNew, cmdFlags.Int(WorkersFlag.Name))

	assert.Equal(t, true, cmdFlags.IsSet(HexFlag.Name))
	assert.Equal(t, HexNew, cmdFlags.Bool(HexFlag.Name))

	assert.Equal(t, false, cmdFlags.IsSet(SymbolsFlag.Name))
	assert.Equal(t, "", cmdFlags.String(SymbolsFlag.Name))
}

func TestNewCmdFlags(t *testing.T) {
	context := cli.NewContext(nil, newFlagSet(), nil)

	cmdFlags := NewCmdFlags(context, initFlags())
	assert.NotNil(t, cmdFlags)

	assert.Equal(t, false, cmdFlags.IsSet(AlphabetFlag.Name))
	assert.Equal(t, AlphabetFlag.Value, cmdFlags.String(AlphabetFlag.Name))

	assert.Equal(t, false, cmdFlags.IsSet(WorkersFlag.Name))
	assert.Equal(t, WorkersFlag.Value, cmdFlags.Int(WorkersFlag.Name))

	assert.Equal(t, false, cmdFlags.IsSet(HexFlag.Name))
	assert.Equal(t, false, cmdFlags.Bool(HexFlag.Name))

	assert.Equal(t, "", cmdFlags.String("unknown"))
	assert.Equal(t, 0, cmdFlags.Int("unknown"))
}

func TestNewCmdFlags_Global(t *testing.T) {
	globalSet := newFlagSet()
	global := cli.NewContext(nil, globalSet, nil)
	global.Set(WorkersFlag.Name, "8")
	global.Set(AlphabetFlag.Name, "base2")

	localSet := new(flag.FlagSet)
	AlphabetFlag.Apply(localSet)
	local := cli.NewContext(nil, localSet, global)
	local.Set(AlphabetFlag.Name, AlphabetNew)

	cmdFlags := NewCmdFlags(local, initFlags())
	assert.Equal(t, 8, cmdFlags.Int(WorkersFlag.Name))
	assert.True(t, cmdFlags.IsSet(WorkersFlag.Name))
	assert.Equal(t, AlphabetNew, cmdFlags.String(AlphabetFlag.Name))
}

func TestCmdFlags_CheckExclusive(t *testing.T) {
	context := cli.NewContext(nil, newFlagSet(), nil)
	context.Set(AlphabetFlag.Name, AlphabetNew)
	context.Set(SymbolsFlag.Name, SymbolsNew)

	cmdFlags := NewCmdFlags(context, initFlags())
	assert.NotNil(t, cmdFlags)

	assert.EqualError(t, cmdFlags.CheckExclusive(AlphabetFlag, SymbolsFlag), "flags --alphabet, --symbols can't be used at the same time")
	assert.NoError(t, cmdFlags.CheckExclusive(WorkersFlag, HexFlag))
	assert.NoError(t, cmdFlags.CheckExclusive(AlphabetFlag, HexFlag))
	assert.NoError(t, cmdFlags.CheckExclusive(AlphabetFlag))
}
