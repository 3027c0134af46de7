package main

import (
	"errors"
	"fmt"

	"github.com/LemoFoundationLtd/basex/common/basex"
	"github.com/LemoFoundationLtd/basex/store"
	"github.com/fatih/color"
	"gopkg.in/urfave/cli.v1"
)

var (
	alphabetCommand = cli.Command{
		Name:     "alphabet",
		Usage:    "Manage the stored alphabets",
		Category: "ALPHABET COMMANDS",
		Description: `
Stored alphabets live in the database of the data directory. They can be used
by name with --alphabet, just like the presets.`,
		Subcommands: []cli.Command{
			{
				Action:    alphabetAdd,
				Name:      "add",
				Usage:     "Store an alphabet, replacing an older one of the same name",
				ArgsUsage: "<name> <symbols>",
			},
			{
				Action: alphabetList,
				Name:   "list",
				Usage:  "List the stored alphabets",
			},
			{
				Action:    alphabetShow,
				Name:      "show",
				Usage:     "Print the symbols of a preset or stored alphabet",
				ArgsUsage: "<name>",
			},
			{
				Action:    alphabetRemove,
				Name:      "remove",
				Usage:     "Delete a stored alphabet",
				ArgsUsage: "<name>",
			},
		},
	}

	presetsCommand = cli.Command{
		Action:   presets,
		Name:     "presets",
		Usage:    "List the built-in alphabets",
		Category: "ALPHABET COMMANDS",
	}
)

var nameColor = color.New(color.FgGreen)

func checkArgs(ctx *cli.Context, n int) error {
	if ctx.NArg() != n {
		return fmt.Errorf("%s needs %d argument(s): %s", ctx.Command.Name, n, ctx.Command.ArgsUsage)
	}
	return nil
}

func withRegistry(ctx *cli.Context, fn func(reg *store.Registry) error) error {
	cfg, err := getConfig(ctx)
	if err != nil {
		return err
	}
	reg, err := openRegistry(cfg)
	if err != nil {
		return err
	}
	defer reg.Close()
	return fn(reg)
}

func alphabetAdd(ctx *cli.Context) error {
	if err := checkArgs(ctx, 2); err != nil {
		return err
	}
	name, symbols := ctx.Args().Get(0), ctx.Args().Get(1)
	return withRegistry(ctx, func(reg *store.Registry) error {
		if err := reg.Put(name, symbols); err != nil {
			return err
		}
		fmt.Fprintf(ctx.App.Writer, "alphabet %s stored\n", nameColor.Sprint(name))
		return nil
	})
}

func alphabetList(ctx *cli.Context) error {
	return withRegistry(ctx, func(reg *store.Registry) error {
		names, err := reg.Names()
		if err != nil {
			return err
		}
		for _, name := range names {
			symbols, err := reg.Symbols(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(ctx.App.Writer, "%s\t%s\n", nameColor.Sprint(name), symbols)
		}
		return nil
	})
}

func alphabetShow(ctx *cli.Context) error {
	if err := checkArgs(ctx, 1); err != nil {
		return err
	}
	name := ctx.Args().First()
	if alpha, ok := basex.Preset(name); ok {
		fmt.Fprintln(ctx.App.Writer, alpha.String())
		return nil
	}
	return withRegistry(ctx, func(reg *store.Registry) error {
		symbols, err := reg.Symbols(name)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		fmt.Fprintln(ctx.App.Writer, symbols)
		return nil
	})
}

func alphabetRemove(ctx *cli.Context) error {
	if err := checkArgs(ctx, 1); err != nil {
		return err
	}
	name := ctx.Args().First()
	return withRegistry(ctx, func(reg *store.Registry) error {
		err := reg.Delete(name)
		if errors.Is(err, store.ErrAlphabetNotFound) {
			return fmt.Errorf("%s: %w", name, err)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(ctx.App.Writer, "alphabet %s removed\n", nameColor.Sprint(name))
		return nil
	})
}

func presets(ctx *cli.Context) error {
	for _, name := range basex.PresetNames() {
		alpha, _ := basex.Preset(name)
		fmt.Fprintf(ctx.App.Writer, "%s %3d  %s\n", nameColor.Sprintf("%-8s", name), alpha.Base(), alpha.String())
	}
	return nil
}
