package main

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/LemoFoundationLtd/basex/common/hexutil"
	"golang.org/x/term"
	"gopkg.in/urfave/cli.v1"
)

var (
	stdin            io.Reader = os.Stdin
	stdinIsTerminal            = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
	errNoInput                 = errors.New("no input, pass it as argument or pipe it to stdin")
	maxStdinLineSize           = 16 * 1024 * 1024
)

// readInputs returns the command arguments, or the lines of stdin when there
// are no arguments and stdin is not a terminal.
func readInputs(ctx *cli.Context) ([]string, error) {
	if ctx.NArg() > 0 {
		return ctx.Args(), nil
	}
	if stdinIsTerminal() {
		return nil, errNoInput
	}
	var inputs []string
	scanner := bufio.NewScanner(stdin)
	scanner.Buffer(nil, maxStdinLineSize)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line != "" {
			inputs = append(inputs, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(inputs) == 0 {
		return nil, errNoInput
	}
	return inputs, nil
}

// parseBytes reads hex when asHex is set, otherwise input is hex if it starts
// with 0x and raw text if not.
func parseBytes(input string, asHex bool) ([]byte, error) {
	if asHex {
		return hexutil.Decode(strings.TrimSpace(input))
	}
	return hexutil.DecodeLoose(input)
}
