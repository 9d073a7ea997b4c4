/*
File    : reach/cmd/reach/interactive.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/akashmaji946/reach/eval"
)

const historyFile = ".reach_history"

// runInteractive starts a read-eval-print loop writing to w: one Evaluator
// lives for the whole session, so bindings from one line are visible to
// the next, and `.import <path>` (supplemented from the original
// implementation's CLI, which spec.md §1 scopes out of the core) reads a
// file's contents and runs them inline rather than requiring a restart.
// Lines are read by readline from the process's standard input; r is not
// read.
func runInteractive(r io.Reader, w io.Writer) error {
	printBanner(w)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      prompt,
		HistoryFile: historyFile,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	ev := newEvaluator(w)

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF (Ctrl+D) or readline.ErrInterrupt
			greenColor.Fprintln(w, "Good Bye!")
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			greenColor.Fprintln(w, "Good Bye!")
			return nil
		}
		rl.SaveHistory(line)

		if strings.HasPrefix(line, ".import ") {
			path := strings.TrimSpace(strings.TrimPrefix(line, ".import "))
			src, err := os.ReadFile(path)
			if err != nil {
				redColor.Fprintf(w, "failed to read file: %s\n", err)
				continue
			}
			line = string(src)
		}

		evalLine(ev, w, line)
	}
}

// evalLine runs one line through ev, recovering from any panic the way
// the teacher's REPL does so a single bad line never kills the session.
func evalLine(ev *eval.Evaluator, w io.Writer, line string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(w, "[runtime error] %v\n", recovered)
		}
	}()
	result, err := execSource(ev, line)
	if err != nil {
		redColor.Fprintf(w, "%s\n", err)
		return
	}
	yellowColor.Fprintf(w, "%s\n", result)
}
