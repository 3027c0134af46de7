package main

import (
	"context"
	"fmt"
	"io"

	"github.com/LemoFoundationLtd/basex/codec"
	"github.com/LemoFoundationLtd/basex/common"
	"github.com/LemoFoundationLtd/basex/common/flag"
	"github.com/LemoFoundationLtd/basex/common/hexutil"
	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"gopkg.in/urfave/cli.v1"
)

var (
	encodeCommand = cli.Command{
		Action:    encode,
		Name:      "encode",
		Usage:     "Encode bytes with an alphabet",
		ArgsUsage: "[input...]",
		Flags:     append([]cli.Flag{HexFlag}, alphabetFlags...),
		Category:  "CODEC COMMANDS",
		Description: `
Every argument is encoded on its own line. An argument starting with 0x is
read as hex, anything else as text. With --hex every argument must be hex.
Without arguments the lines of stdin are encoded.`,
	}

	decodeCommand = cli.Command{
		Action:    decode,
		Name:      "decode",
		Usage:     "Decode strings of an alphabet back to bytes",
		ArgsUsage: "[input...]",
		Flags:     append([]cli.Flag{HexFlag, DumpFlag}, alphabetFlags...),
		Category:  "CODEC COMMANDS",
		Description: `
Every argument is decoded on its own. The bytes are printed as text, as 0x hex
with --hex or as a hex dump with --dump. Without arguments the lines of stdin
are decoded.`,
	}
)

func encode(ctx *cli.Context) error {
	cfg, err := getConfig(ctx)
	if err != nil {
		return err
	}
	c, err := makeCodec(ctx, cfg)
	if err != nil {
		return err
	}
	inputs, err := readInputs(ctx)
	if err != nil {
		return err
	}
	asHex := flag.NewCmdFlags(ctx, ctx.Command.Flags).Bool(common.Hex)
	raw := make([][]byte, len(inputs))
	for i, input := range inputs {
		if raw[i], err = parseBytes(input, asHex); err != nil {
			return fmt.Errorf("input %d: %v", i+1, err)
		}
	}

	results, err := codec.Batch(context.Background(), c, codec.OpEncode, raw, cfg.Workers)
	if err != nil {
		return err
	}
	for _, r := range results {
		fmt.Fprintln(ctx.App.Writer, string(r.Output))
	}
	return nil
}

func decode(ctx *cli.Context) error {
	cfg, err := getConfig(ctx)
	if err != nil {
		return err
	}
	c, err := makeCodec(ctx, cfg)
	if err != nil {
		return err
	}
	inputs, err := readInputs(ctx)
	if err != nil {
		return err
	}
	flags := flag.NewCmdFlags(ctx, ctx.Command.Flags)
	if err := flags.CheckExclusive(HexFlag, DumpFlag); err != nil {
		return err
	}
	raw := make([][]byte, len(inputs))
	for i, input := range inputs {
		raw[i] = []byte(input)
	}

	results, err := codec.Batch(context.Background(), c, codec.OpDecode, raw, cfg.Workers)
	if err != nil {
		return err
	}
	failed := 0
	for i, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintln(ctx.App.Writer, color.RedString("input %d: %v", i+1, r.Err))
			continue
		}
		printBytes(ctx.App.Writer, r.Output, flags.Bool(common.Hex), flags.Bool(common.Dump))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d inputs can't be decoded with %s", failed, len(results), c.Name())
	}
	return nil
}

func printBytes(w io.Writer, b []byte, asHex, dump bool) {
	switch {
	case dump:
		fmt.Fprint(w, spew.Sdump(b))
	case asHex:
		fmt.Fprintln(w, hexutil.Encode(b))
	default:
		fmt.Fprintln(w, string(b))
	}
}
