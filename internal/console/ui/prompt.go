// Package ui holds the terminal primitives shared by every console screen:
// prompts, tables, charts and error reporting.
package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/GlebRadaev/acordos/internal/remote"
	"github.com/GlebRadaev/acordos/pkg/notify"
)

// readPassword and isTerminal are test seams over x/term.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

var ErrNoChoice = errors.New("no valid option chosen")

type Terminal struct {
	src    io.Reader
	in     *bufio.Reader
	out    io.Writer
	notify *notify.Notifier
}

func New(in io.Reader, out, notices io.Writer) *Terminal {
	return &Terminal{
		src:    in,
		in:     bufio.NewReader(in),
		out:    out,
		notify: notify.New(notices),
	}
}

func (t *Terminal) Out() io.Writer {
	return t.out
}

func (t *Terminal) Printf(format string, args ...any) {
	fmt.Fprintf(t.out, format, args...)
}

func (t *Terminal) Println(args ...any) {
	fmt.Fprintln(t.out, args...)
}

func (t *Terminal) Success(msg string) { t.notify.Success(msg) }
func (t *Terminal) Warn(msg string)    { t.notify.Warn(msg) }

// Ask prints the prompt and reads one trimmed line. A last line without a
// newline is still returned.
func (t *Terminal) Ask(prompt string) (string, error) {
	if _, err := fmt.Fprintf(t.out, "%s: ", prompt); err != nil {
		return "", err
	}
	line, err := t.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// AskDefault shows the current value; an empty answer keeps it and a single
// "-" clears it.
func (t *Terminal) AskDefault(prompt, current string) (string, error) {
	if current != "" {
		prompt = fmt.Sprintf("%s [%s]", prompt, current)
	}
	answer, err := t.Ask(prompt)
	if err != nil {
		return "", err
	}
	switch answer {
	case "":
		return current, nil
	case "-":
		return "", nil
	default:
		return answer, nil
	}
}

// Password reads without echo when input is a terminal and falls back to a
// plain line when it is piped.
func (t *Terminal) Password(prompt string) (string, error) {
	f, ok := t.src.(*os.File)
	if !ok || !isTerminal(int(f.Fd())) {
		return t.Ask(prompt)
	}
	fd := int(f.Fd())
	if _, err := fmt.Fprintf(t.out, "%s: ", prompt); err != nil {
		return "", err
	}
	pw, err := readPassword(fd)
	fmt.Fprintln(t.out)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// Confirm asks a yes/no question; anything but y or yes is a no.
func (t *Terminal) Confirm(prompt string) (bool, error) {
	answer, err := t.Ask(prompt + " [y/N]")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes", "s", "sim":
		return true, nil
	default:
		return false, nil
	}
}

// AskBool is a yes/no question whose empty answer keeps current.
func (t *Terminal) AskBool(prompt string, current bool) (bool, error) {
	def := "no"
	if current {
		def = "yes"
	}
	answer, err := t.AskDefault(prompt+" (yes/no)", def)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes", "s", "sim":
		return true, nil
	case "n", "no", "nao", "não", "":
		return false, nil
	default:
		return current, fmt.Errorf("%w: %q", ErrNoChoice, answer)
	}
}

// Choose lists the options and returns the one picked by number or by name.
func (t *Terminal) Choose(prompt string, options []string) (string, error) {
	for i, o := range options {
		fmt.Fprintf(t.out, "  %d) %s\n", i+1, o)
	}
	answer, err := t.Ask(prompt)
	if err != nil {
		return "", err
	}
	if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(options) {
		return options[n-1], nil
	}
	for _, o := range options {
		if strings.EqualFold(o, answer) {
			return o, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrNoChoice, answer)
}

// Retry runs attempt until it succeeds or the user gives up. Each failure is
// reported and the caller keeps its form values for the next round. Closed
// input and an expired session end the loop at once.
func (t *Terminal) Retry(attempt func() error) error {
	for {
		err := attempt()
		if err == nil || errors.Is(err, io.EOF) || errors.Is(err, remote.ErrUnauthorized) || errors.Is(err, ErrCancelled) {
			return err
		}
		t.Error(err)

		again, err := t.Confirm("Correct and try again?")
		if err != nil {
			return err
		}
		if !again {
			return ErrCancelled
		}
	}
}
