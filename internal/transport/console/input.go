package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// Confirm - asks a yes/no question until the answer is y or n.
func (that *Console) Confirm(ctx context.Context, prompt string) (bool, error) {
	for {
		that.printf("%s (y/n)\n", prompt)

		answer, err := that.readLine(ctx)
		if err != nil {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}

		that.println("Sorry, that is not a valid answer.")
		that.println()
	}
}

// ReadSquare - reads numbers until one of unmarked is typed.
func (that *Console) ReadSquare(ctx context.Context, name string, unmarked []int) (int, error) {
	that.printf("%s, please select a square (%s)\n", name, JoinOr(unmarked, ", ", "or"))

	for {
		answer, err := that.readLine(ctx)
		if err != nil {
			return 0, err
		}

		square, err := strconv.Atoi(strings.TrimSpace(answer))
		if err == nil && slices.Contains(unmarked, square) {
			return square, nil
		}

		that.println("Sorry, that's not a valid square")
	}
}

func (that *Console) ReadName(ctx context.Context) (string, error) {
	for {
		that.println("Please enter your name")

		answer, err := that.readLine(ctx)
		if err != nil {
			return "", err
		}

		name := strings.TrimSpace(answer)
		if err = that.validate.Var(name, "required"); err == nil {
			return name, nil
		}

		that.println("Sorry, that is not a valid name.")
		that.println()
	}
}

// ReadMarker - reads a single letter or digit, upper-cased.
func (that *Console) ReadMarker(ctx context.Context) (string, error) {
	for {
		that.println("\nWhich marker would you like for this game?")
		that.println("(pick any letter or number)")

		answer, err := that.readLine(ctx)
		if err != nil {
			return "", err
		}

		marker := strings.ToUpper(strings.TrimSpace(answer))
		if err = that.validate.Var(marker, "len=1,alphanum"); err == nil {
			return marker, nil
		}

		that.println("Sorry, that is not a valid marker")
	}
}

func (that *Console) WaitForEnter(ctx context.Context) error {
	_, err := that.readLine(ctx)

	return err
}

// readLine - blocks until a line is typed or ctx is done. Once ctx is done no further read is started.
func (that *Console) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		line string
		err  error
	}

	done := make(chan result, 1)
	go func() {
		line, err := that.reader.ReadString('\n')
		done <- result{line: line, err: err}
	}()

	var res result
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res = <-done:
	}

	if res.err != nil {
		if !errors.Is(res.err, io.EOF) {
			return "", fmt.Errorf("could not read input: %w", res.err)
		}

		if res.line == "" {
			return "", apperror.ErrInputClosed
		}
	}

	return strings.TrimRight(res.line, "\r\n"), nil
}

// JoinOr - "1", "1 or 2", "1, 2, or 3".
func JoinOr(numbers []int, separator, conjunction string) string {
	words := make([]string, len(numbers))
	for i, number := range numbers {
		words[i] = strconv.Itoa(number)
	}

	switch len(words) {
	case 0:
		return ""
	case 1:
		return words[0]
	case 2:
		return words[0] + " " + conjunction + " " + words[1]
	default:
		return strings.Join(words[:len(words)-1], separator) + separator + conjunction + " " + words[len(words)-1]
	}
}
