// Copyright 2026 The Safe Transaction Setup Authors
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// Field is one value to collect. The label is printed as-is; the
// placeholder is a dimmed hint shown in the terminal form while the
// field is empty.
type Field struct {
	Label       string
	Placeholder string
}

// Run collects one value per field, in order. It uses the terminal
// form when both stdin and stdout are terminals, and line-oriented
// reads from stdin otherwise.
func Run(fields []Field) ([]string, error) {
	if len(fields) == 0 {
		return nil, nil
	}
	if term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) {
		return runForm(fields)
	}
	return ReadPlain(os.Stdin, os.Stdout, fields)
}

// runForm runs the bubbletea form and returns the committed values.
func runForm(fields []Field) ([]string, error) {
	program := tea.NewProgram(NewModel(fields))
	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("running prompt form: %w", err)
	}
	model, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("unexpected final model type %T", final)
	}
	if model.Aborted() {
		return nil, fmt.Errorf("prompt aborted")
	}
	return model.Values(), nil
}

// ReadPlain prints each field's label to w and reads one line per
// field from r. Lines are captured verbatim (the terminator stripped);
// empty lines are accepted. EOF before every field is answered is an
// error.
func ReadPlain(r io.Reader, w io.Writer, fields []Field) ([]string, error) {
	scanner := bufio.NewScanner(r)
	values := make([]string, 0, len(fields))
	for _, field := range fields {
		fmt.Fprintf(w, "%s\n", field.Label)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("reading input for %q: %w", field.Label, err)
			}
			return nil, fmt.Errorf("input ended before %q was answered", field.Label)
		}
		values = append(values, scanner.Text())
	}
	return values, nil
}
