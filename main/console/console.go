// Copyright 2016 The lemochain-core Authors
// This file is part of the lemochain-core library.
//
// The lemochain-core library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The lemochain-core library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the lemochain-core library. If not, see <http://www.gnu.org/licenses/>.

package console

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"syscall"
	"unicode/utf8"

	"github.com/LemoFoundationLtd/basex/codec"
	"github.com/LemoFoundationLtd/basex/common/hexutil"
	"github.com/LemoFoundationLtd/basex/common/log"
	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/peterh/liner"
)

const HistoryFile = "history"

var (
	exit     = regexp.MustCompile(`^\s*exit\s*;*\s*$`)
	commands = []string{"alphabet", "decode", "encode", "exit", "help", "use"}

	errUsage = errors.New("usage: encode <text|0xhex> | decode <text> | use <alphabet> | alphabet | exit")
)

// Config is the collection of configurations to fine tune the behavior of the
// console.
type Config struct {
	DataDir  string                                  // Data directory to store the console history at
	Codec    *codec.Codec                            // Codec used until the user switches with "use"
	Resolve  func(name string) (*codec.Codec, error) // Looks up the codec of an alphabet name
	Names    func() []string                         // Alphabet names offered by tab completion
	Prompter UserPrompter                            // Input prompter to allow interactive user feedback (defaults to TerminalPrompter)
	Printer  io.Writer                               // Output writer to serialize any display strings to (defaults to os.Stdout)
}

// Console is an interactive encode and decode shell.
type Console struct {
	codec    *codec.Codec
	resolve  func(name string) (*codec.Codec, error)
	names    func() []string
	prompt   string       // Input prompt prefix string
	prompter UserPrompter // Input prompter to allow interactive user feedback
	printer  io.Writer    // Output writer to serialize any display strings to
	histPath string       // Absolute path to the console scrollback history
	history  []string     // Scroll history maintained by the console
	errColor *color.Color
}

func New(config Config) (*Console, error) {
	if config.Codec == nil {
		return nil, errors.New("console: no codec")
	}
	// Handle unset config values gracefully
	if config.Prompter == nil {
		config.Prompter = Stdin
	}
	if config.Printer == nil {
		config.Printer = colorable.NewColorableStdout()
	}
	if config.Names == nil {
		config.Names = func() []string { return nil }
	}
	// Initialize the console and return
	console := &Console{
		codec:    config.Codec,
		resolve:  config.Resolve,
		names:    config.Names,
		prompter: config.Prompter,
		printer:  config.Printer,
		errColor: color.New(color.FgRed),
	}
	console.setPrompt()
	if config.DataDir != "" {
		console.histPath = filepath.Join(config.DataDir, HistoryFile)
	}
	if err := console.init(); err != nil {
		return nil, err
	}
	return console, nil
}

// init loads the command history and installs the tab completion.
func (c *Console) init() error {
	if c.histPath != "" {
		if content, err := os.ReadFile(c.histPath); err == nil {
			c.history = strings.Split(strings.TrimSpace(string(content)), "\n")
			c.prompter.SetHistory(c.history)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("read history: %v", err)
		}
	}
	c.prompter.SetWordCompleter(c.complete)
	return nil
}

func (c *Console) setPrompt() {
	c.prompt = c.codec.Name() + "> "
}

// complete offers the command names for the first word and the alphabet
// names after "use".
func (c *Console) complete(line string, pos int) (string, []string, string) {
	if pos > len(line) {
		pos = len(line)
	}
	head, tail := line[:pos], line[pos:]
	fields := strings.Fields(head)

	var candidates []string
	var word string
	switch {
	case len(fields) == 0 || (len(fields) == 1 && !strings.HasSuffix(head, " ")):
		candidates = commands
		if len(fields) == 1 {
			word = fields[0]
		}
	case fields[0] == "use" && (len(fields) == 1 || (len(fields) == 2 && !strings.HasSuffix(head, " "))):
		candidates = c.names()
		if len(fields) == 2 {
			word = fields[1]
		}
	default:
		return head, nil, tail
	}

	var completions []string
	for _, candidate := range candidates {
		if strings.HasPrefix(candidate, word) {
			completions = append(completions, candidate)
		}
	}
	sort.Strings(completions)
	return head[:len(head)-len(word)], completions, tail
}

// Welcome prints the current alphabet and the available commands.
func (c *Console) Welcome() {
	fmt.Fprintf(c.printer, "Welcome to the basex console!\n\n")
	fmt.Fprintf(c.printer, "alphabet: %s (base %d)\n", c.codec.Name(), c.codec.Alphabet().Base())
	fmt.Fprintln(c.printer, "commands:", strings.Join(commands, ", "))
	fmt.Fprintln(c.printer)
}

// Evaluate executes one console command and prints the result to the
// configured output stream.
// A panic while running the command is reported as an error.
func (c *Console) Evaluate(statement string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
		if err != nil {
			c.errColor.Fprintf(c.printer, "error: %v\n", err)
		}
	}()
	return c.evaluate(statement)
}

func (c *Console) evaluate(statement string) error {
	statement = strings.TrimSpace(statement)
	cmd, arg := statement, ""
	if idx := strings.IndexAny(statement, " \t"); idx >= 0 {
		cmd, arg = statement[:idx], strings.TrimSpace(statement[idx+1:])
	}

	switch cmd {
	case "encode":
		if arg == "" {
			return errUsage
		}
		input, err := hexutil.DecodeLoose(arg)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.printer, c.codec.Encode(input))
	case "decode":
		if arg == "" {
			return errUsage
		}
		output, err := c.codec.Decode(arg)
		if err != nil {
			return err
		}
		if utf8.Valid(output) && !strings.ContainsFunc(string(output), isControl) {
			fmt.Fprintf(c.printer, "%s %q\n", hexutil.Encode(output), output)
		} else {
			fmt.Fprintln(c.printer, hexutil.Encode(output))
		}
	case "use":
		if arg == "" || c.resolve == nil {
			return errUsage
		}
		next, err := c.resolve(arg)
		if err != nil {
			return fmt.Errorf("%s: %w", arg, err)
		}
		c.codec = next
		c.setPrompt()
		log.Debug("Console alphabet changed", "alphabet", next.Name())
	case "alphabet":
		fmt.Fprintf(c.printer, "%s (base %d)\n", c.codec.Name(), c.codec.Alphabet().Base())
	case "help":
		fmt.Fprintln(c.printer, errUsage.Error()[len("usage: "):])
	default:
		return errUsage
	}
	return nil
}

func isControl(r rune) bool {
	return r < 0x20 && r != '\t' && r != '\n'
}

// Interactive starts an interactive user session, where input is propted from
// the configured user prompter.
func (c *Console) Interactive() {
	var scheduler = make(chan string) // Channel to send the next prompt on and receive the input
	// Start a goroutine to listen for promt requests and send back inputs
	go func() {
		for {
			// Read the next user input
			line, err := c.prompter.PromptInput(<-scheduler)
			if err != nil {
				// In case of an error, either clear the prompt or fail
				if err == liner.ErrPromptAborted { // ctrl-C
					scheduler <- ""
					continue
				}
				close(scheduler)
				return
			}
			// User input retrieved, send for interpretation and loop
			scheduler <- line
		}
	}()
	// Monitor Ctrl-C too in case the input is empty and we need to bail
	abort := make(chan os.Signal, 1)
	signal.Notify(abort, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(abort)

	// Start sending prompts to the user and reading back inputs
	for {
		// Send the next prompt, triggering an input read and process the result
		scheduler <- c.prompt
		select {
		case <-abort:
			// User forcefully quite the console
			fmt.Fprintln(c.printer, "caught interrupt, exiting")
			return

		case line, ok := <-scheduler:
			// User input was returned by the prompter, handle special cases
			if !ok || (exit.MatchString(line)) {
				return
			}
			line = strings.TrimSpace(line)
			if len(line) == 0 {
				continue
			}
			if len(c.history) == 0 || line != c.history[len(c.history)-1] {
				c.history = append(c.history, line)
				c.prompter.AppendHistory(line)
			}
			c.Evaluate(line)
		}
	}
}

// Stop cleans up the console and saves the command history.
func (c *Console) Stop() error {
	if c.histPath == "" {
		return nil
	}
	if err := os.WriteFile(c.histPath, []byte(strings.Join(c.history, "\n")), 0600); err != nil {
		return err
	}
	return os.Chmod(c.histPath, 0600) // Force 0600, even if it was different previously
}
