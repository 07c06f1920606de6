package console

import (
	"bufio"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/muesli/termenv"
)

type Option func(*options)

type options struct {
	color bool
	clear bool
}

// WithoutColor - plain text output even on a color terminal.
func WithoutColor() Option {
	return func(o *options) {
		o.color = false
	}
}

// WithoutClear - keeps the previous output on screen instead of clearing it.
func WithoutClear() Option {
	return func(o *options) {
		o.clear = false
	}
}

// Console - terminal front end: reads the human's answers and draws the game.
type Console struct {
	reader   *bufio.Reader
	output   *termenv.Output
	validate *validator.Validate

	clear bool
}

func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	o := options{color: true, clear: true}
	for _, opt := range opts {
		opt(&o)
	}

	var outputOptions []termenv.OutputOption
	if !o.color {
		outputOptions = append(outputOptions, termenv.WithProfile(termenv.Ascii))
	}

	return &Console{
		reader:   bufio.NewReader(in),
		output:   termenv.NewOutput(out, outputOptions...),
		validate: validator.New(validator.WithRequiredStructEnabled()),

		clear: o.clear,
	}
}

func (that *Console) Clear() {
	if !that.clear {
		return
	}

	that.output.ClearScreen()
}

func (that *Console) println(a ...any) {
	_, _ = fmt.Fprintln(that.output, a...)
}

func (that *Console) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(that.output, format, a...)
}

func (that *Console) marker(marker string) string {
	return that.output.String(marker).Foreground(that.output.Color("12")).Bold().String()
}

func (that *Console) heading(text string) string {
	return that.output.String(text).Bold().String()
}
