/*
File    : reach/cmd/reach/run.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/reach/eval"
	"github.com/akashmaji946/reach/lexer"
	"github.com/akashmaji946/reach/parser"
	"github.com/akashmaji946/reach/stdlib"
)

// newEvaluator builds an Evaluator with the stdlib builtins registered
// and output directed at w, the one piece of wiring both file execution
// and the REPL share.
func newEvaluator(w io.Writer) *eval.Evaluator {
	ev := eval.New(nil)
	ev.SetWriter(w)
	for _, c := range stdlib.Register(ev.Builtins, w) {
		ev.BindBuiltin(c)
	}
	return ev
}

// execSource tokenizes, parses and runs src against ev, returning
// whatever value the program's last statement produced.
func execSource(ev *eval.Evaluator, src string) (string, error) {
	tokens, err := lexer.New(src).All()
	if err != nil {
		return "", fmt.Errorf("tokenize: %w", err)
	}
	prog, err := parser.Parse(tokens)
	if err != nil {
		return "", fmt.Errorf("parse: %w", err)
	}
	value, err := ev.Exec(prog)
	if err != nil {
		return "", fmt.Errorf("execute: %w", err)
	}
	return value.String(), nil
}

// runFile reads path, executes it in a fresh Evaluator, and prints the
// result (or a red error) to w.
func runFile(path string, w io.Writer) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	ev := newEvaluator(w)
	result, err := execSource(ev, string(src))
	if err != nil {
		redColor.Fprintf(w, "%s\n", err)
		return err
	}
	yellowColor.Fprintf(w, "%s\n", result)
	return nil
}
