package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter asks for option values on an input stream, offering the current
// value as the default. An empty answer or end of input keeps the default.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
	eof bool
}

// NewPrompter reads answers from in and writes questions to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Fill prompts for every option in [PromptedFlags] for which skip returns
// false. Integers are re-asked until they parse.
func (p *Prompter) Fill(cfg *Config, skip func(name string) bool) error {
	for _, name := range PromptedFlags {
		if skip(name) {
			continue
		}
		switch name {
		case FlagDir:
			cfg.Dir = p.askString("Directory", cfg.Dir)
		case FlagStart:
			cfg.Start = p.askInt("Start number", cfg.Start)
		case FlagDigit:
			cfg.Digit = p.askInt("Number of digits", cfg.Digit)
		case FlagExt:
			cfg.Ext = p.askString("Target extension", cfg.Ext)
		}
	}
	if err := p.in.Err(); err != nil {
		return fmt.Errorf("reading prompt input: %w", err)
	}
	return nil
}

func (p *Prompter) askString(label, def string) string {
	answer, ok := p.ask(label, def)
	if !ok {
		return def
	}
	return answer
}

func (p *Prompter) askInt(label string, def int) int {
	for {
		answer, ok := p.ask(label, strconv.Itoa(def))
		if !ok {
			return def
		}
		n, err := strconv.Atoi(answer)
		if err == nil {
			return n
		}
		fmt.Fprintf(p.out, "Error: %q is not a valid integer.\n", answer)
	}
}

// ask prints "label [def]: " and returns the trimmed answer. ok is false
// when the answer is empty or input is exhausted.
func (p *Prompter) ask(label, def string) (string, bool) {
	if p.eof {
		return "", false
	}
	fmt.Fprintf(p.out, "%s [%s]: ", label, def)
	if !p.in.Scan() {
		p.eof = true
		fmt.Fprintln(p.out)
		return "", false
	}
	answer := strings.TrimSpace(p.in.Text())
	return answer, answer != ""
}
