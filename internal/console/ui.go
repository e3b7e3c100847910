package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrNoOptions is returned by GetOption when there is nothing to choose from.
var ErrNoOptions = errors.New("no options to choose from")

// UI is a line-oriented text interface. Every getter re-prompts until the
// operator supplies a valid value, and only fails on input errors such as io.EOF.
type UI struct {
	in  *bufio.Reader
	out io.Writer
}

// NewUI creates a UI reading from in and writing to out
func NewUI(in io.Reader, out io.Writer) *UI {
	return &UI{in: bufio.NewReader(in), out: out}
}

// GetInput prompts for a single line of text
func (u *UI) GetInput(prompt string) (string, error) {
	fmt.Fprintf(u.out, "%s:\n", prompt)

	line, err := u.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// GetPassword prompts for a password. Input is read as a plain line.
func (u *UI) GetPassword(prompt string) (string, error) {
	return u.GetInput(prompt)
}

// GetInt prompts for an integer
func (u *UI) GetInt(prompt string) (int, error) {
	for {
		response, err := u.GetInput(prompt)
		if err != nil {
			return 0, err
		}
		if n, err := strconv.Atoi(strings.TrimSpace(response)); err == nil {
			return n, nil
		}
		u.Error("Supplied value is not an integer")
	}
}

// GetIntInRange prompts for an integer x with min <= x <= max. Swapped bounds are accepted.
func (u *UI) GetIntInRange(prompt string, min, max int) (int, error) {
	if min > max {
		min, max = max, min
	}
	for {
		n, err := u.GetInt(prompt)
		if err != nil {
			return 0, err
		}
		if min <= n && n <= max {
			return n, nil
		}
		u.Error("Supplied value is out of range")
	}
}

// GetDecimal prompts for a decimal amount
func (u *UI) GetDecimal(prompt string) (decimal.Decimal, error) {
	for {
		response, err := u.GetInput(prompt)
		if err != nil {
			return decimal.Zero, err
		}
		if d, err := decimal.NewFromString(strings.TrimSpace(response)); err == nil {
			return d, nil
		}
		u.Error("Supplied value is not numeric")
	}
}

// GetBool prompts for "true" or "false"
func (u *UI) GetBool(prompt string) (bool, error) {
	for {
		response, err := u.GetInput(prompt)
		if err != nil {
			return false, err
		}
		if b, err := strconv.ParseBool(strings.TrimSpace(response)); err == nil {
			return b, nil
		}
		u.Error("Supplied value is not a boolean")
	}
}

// GetOption lists options numbered from 1 and returns the 0-based index of the
// operator's choice.
func (u *UI) GetOption(title string, options ...any) (int, error) {
	if len(options) == 0 {
		return -1, ErrNoOptions
	}
	u.DisplayOptions(title, options...)

	n, err := u.GetIntInRange(fmt.Sprintf("Please enter a choice between 1 and %d", len(options)), 1, len(options))
	if err != nil {
		return -1, err
	}
	return n - 1, nil
}

// DisplayOptions prints a title followed by the options numbered from 1
func (u *UI) DisplayOptions(title string, options ...any) {
	width := len(strconv.Itoa(len(options)))

	fmt.Fprintln(u.out, title)
	for i, opt := range options {
		fmt.Fprintf(u.out, "%*d %v\n", width, i+1, opt)
	}
}

// Error displays an error message and asks the operator to try again
func (u *UI) Error(msg string) {
	fmt.Fprintf(u.out, "%s, please try again\n\n", msg)
}

// Message displays any value
func (u *UI) Message(msg any) {
	fmt.Fprintf(u.out, "%v\n\n", msg)
}

func asOptions[T any](items []T) []any {
	options := make([]any, len(items))
	for i, item := range items {
		options[i] = item
	}
	return options
}
