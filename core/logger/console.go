package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color selects the foreground used by Console.Colored.
type Color int

const (
	Default Color = iota
	Red
	Green
	Yellow
	Blue
)

var palette = map[Color]lipgloss.Color{
	Red:    lipgloss.Color("1"),
	Green:  lipgloss.Color("2"),
	Yellow: lipgloss.Color("3"),
	Blue:   lipgloss.Color("4"),
}

// Console writes human-readable, optionally colored messages for the user.
// Diagnostics go through zap; Console is for the lines a person reads.
type Console struct {
	out    io.Writer
	errOut io.Writer
	outR   *lipgloss.Renderer
	errR   *lipgloss.Renderer
}

// NewConsole creates a Console writing info lines to out and errors to errOut.
// mode is one of ColorAuto, ColorAlways or ColorNever.
func NewConsole(out, errOut io.Writer, mode string) *Console {
	return &Console{
		out:    out,
		errOut: errOut,
		outR:   newRenderer(out, mode),
		errR:   newRenderer(errOut, mode),
	}
}

// NewStdConsole creates a Console bound to stdout and stderr.
func NewStdConsole(mode string) *Console {
	return NewConsole(os.Stdout, os.Stderr, mode)
}

func newRenderer(w io.Writer, mode string) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// Info prints msg unstyled.
func (c *Console) Info(msg string) {
	fmt.Fprintln(c.out, msg)
}

// Warn prints msg with a yellow warning tag.
func (c *Console) Warn(msg string) {
	fmt.Fprintln(c.out, paint(c.outR, Yellow, "[warning]")+" "+msg)
}

// Error prints msg with a red error tag on the error stream.
func (c *Console) Error(msg string) {
	fmt.Fprintln(c.errOut, paint(c.errR, Red, "[error]")+" "+msg)
}

// Colored prints msg entirely in the given color.
func (c *Console) Colored(color Color, msg string) {
	fmt.Fprintln(c.out, paint(c.outR, color, msg))
}

// Style returns s rendered in color for the info stream, without printing it.
func (c *Console) Style(color Color, s string) string {
	return paint(c.outR, color, s)
}

// paint styles each line on its own so lipgloss does not pad lines to a
// common width.
func paint(r *lipgloss.Renderer, color Color, s string) string {
	fg, ok := palette[color]
	if !ok {
		return s
	}
	style := r.NewStyle().Foreground(fg)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
