// Package console provides the line input and formatted output used by the
// interactive commands.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
)

// Prompter asks a question and returns the answer with surrounding
// whitespace removed. It returns io.EOF once input is exhausted or the user
// interrupts the session.
type Prompter interface {
	Ask(prompt string) (string, error)
}

// ReadlinePrompter reads answers from a terminal with line editing and
// optional history.
type ReadlinePrompter struct {
	rl *readline.Instance
}

// NewReadlinePrompter creates a terminal prompter. historyFile may be empty.
func NewReadlinePrompter(historyFile string) (*ReadlinePrompter, error) {
	rl, err := readline.NewEx(&readline.Config{
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize readline: %w", err)
	}
	return &ReadlinePrompter{rl: rl}, nil
}

// Ask implements Prompter.
func (p *ReadlinePrompter) Ask(prompt string) (string, error) {
	p.rl.SetPrompt(prompt)
	line, err := p.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", io.EOF
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Close restores the terminal.
func (p *ReadlinePrompter) Close() error {
	return p.rl.Close()
}

// LinePrompter reads answers line by line from any reader. It is used when
// stdin is not a terminal.
type LinePrompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewLinePrompter creates a prompter that writes prompts to out and reads
// answers from in.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{scanner: bufio.NewScanner(in), out: out}
}

// Ask implements Prompter.
func (p *LinePrompter) Ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// IsTerminal reports whether stdin and stdout are attached to a terminal.
func IsTerminal() bool {
	return readline.DefaultIsTerminal()
}

// Open returns a readline prompter when attached to a terminal and a plain
// stdin prompter otherwise. The returned function releases the terminal.
func Open(historyFile string) (Prompter, func() error, error) {
	if !IsTerminal() {
		return NewLinePrompter(os.Stdin, os.Stdout), func() error { return nil }, nil
	}
	p, err := NewReadlinePrompter(historyFile)
	if err != nil {
		return nil, nil, err
	}
	return p, p.Close, nil
}
