package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/mgomes/loxscript/lox"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "lox",
		Usage: "Tokenize Lox source",
		Commands: []*cli.Command{
			{
				Name:      "scan",
				Aliases:   []string{"s"},
				Usage:     "Scan a Lox file and print its token stream",
				ArgsUsage: "<file>",
				Action: func(c *cli.Context) error {
					if c.NArg() == 0 {
						return errors.New("lox scan: file path required")
					}
					return scanFile(c.Args().First(), os.Stdout)
				},
			},
			{
				Name:    "repl",
				Aliases: []string{"r"},
				Usage:   "Start an interactive scanner session",
				Action: func(c *cli.Context) error {
					return runREPL()
				},
			},
		},
	}
}

func scanFile(path string, w io.Writer) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}
	return scanSource(string(source), w)
}

// scanSource tokenizes source and prints one token per line. A scan
// error is returned as-is so the caller can render the diagnostic.
func scanSource(source string, w io.Writer) error {
	tokens, err := lox.NewScanner(source).ScanTokens()
	if err != nil {
		return err
	}
	for _, tok := range tokens {
		fmt.Fprintln(w, tok)
	}
	return nil
}
