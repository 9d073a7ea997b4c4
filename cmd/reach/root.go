/*
File    : reach/cmd/reach/root.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Command reach is the host shell around the reach core: it supplies
// source text from a file or an interactive prompt, registers the
// stdlib builtins, and prints whatever the interpreter returns. None of
// this belongs to the language itself (spec.md §1's "external
// collaborators") - it is the one concrete wiring of the three seams the
// core exposes.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const banner = `
 ____                  _
|  _ \ ___  __ _  ___ | |__
| |_) / _ \/ _\ |/ __|| '_ \
|  _ <  __/ (_| | (__ | | | |
|_| \_\___|\__,_|\___||_| |_|
`

const (
	version = "0.1.0"
	author  = "akashmaji(@iisc.ac.in)"
	license = "MIT"
	prompt  = "reach >>> "
	line    = "--------------------------------------------------"
)

var rootCmd = &cobra.Command{
	Use:     "reach [script]",
	Short:   "reach is a small dynamically-typed scripting language",
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return runFile(args[0], os.Stdout)
		}
		return runInteractive(os.Stdin, os.Stdout)
	},
}

var runCmd = &cobra.Command{
	Use:   "run <script>",
	Short: "execute a reach source file and print its result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFile(args[0], os.Stdout)
	},
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "start an interactive reach session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(os.Stdin, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(runCmd, replCmd)
}

// Execute runs the root command, printing any top-level error in red
// before returning it to main for the process exit code.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		return err
	}
	return nil
}

func printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", line)
	greenColor.Fprintf(w, "%s\n", banner)
	blueColor.Fprintf(w, "%s\n", line)
	yellowColor.Fprintln(w, fmt.Sprintf("Version: %s | Author: %s | License: %s", version, author, license))
	blueColor.Fprintf(w, "%s\n", line)
	cyanColor.Fprintln(w, "Welcome to reach!")
	cyanColor.Fprintln(w, "Type your code and press enter")
	cyanColor.Fprintln(w, "Type '.exit' to quit, '.import <path>' to run a file inline")
	cyanColor.Fprintln(w, "Use up/down arrows to navigate command history")
	blueColor.Fprintf(w, "%s\n", line)
}
