package display

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"golang.org/x/term"
)

// Display is the terminal output surface used by CLI commands
type Display interface {
	Info(format string, args ...interface{})
	Success(format string, args ...interface{})
	Warning(format string, args ...interface{})
	Error(format string, args ...interface{})
	Table(headers []string, rows [][]string)
	DiffLine(line string)
	Println(format string, args ...interface{})
}

type contextKey struct{}

// WithDisplay attaches a display instance to the context
func WithDisplay(ctx context.Context, d Display) context.Context {
	return context.WithValue(ctx, contextKey{}, d)
}

// FromContext retrieves the display from context, falling back to a
// default instance so callers never receive nil
func FromContext(ctx context.Context) Display {
	if d, ok := ctx.Value(contextKey{}).(Display); ok {
		return d
	}
	return New()
}

// New returns a pterm-backed display when stdout is a terminal and a plain
// writer otherwise, so piped output stays machine-friendly
func New() Display {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return &richDisplay{width: terminalWidth()}
	}
	return NewPlain(os.Stdout)
}

// NewPlain returns an uncolored display writing to w
func NewPlain(w io.Writer) Display {
	return &plainDisplay{w: w}
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// richDisplay renders through pterm with color and styled tables
type richDisplay struct {
	width int
}

func (d *richDisplay) Info(format string, args ...interface{}) {
	pterm.Info.Printfln(format, args...)
}

func (d *richDisplay) Success(format string, args ...interface{}) {
	pterm.Success.Printfln(format, args...)
}

func (d *richDisplay) Warning(format string, args ...interface{}) {
	pterm.Warning.Printfln(format, args...)
}

func (d *richDisplay) Error(format string, args ...interface{}) {
	pterm.Error.Printfln(format, args...)
}

func (d *richDisplay) Table(headers []string, rows [][]string) {
	data := pterm.TableData{headers}
	data = append(data, rows...)
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func (d *richDisplay) DiffLine(line string) {
	switch {
	case strings.HasPrefix(line, "+"):
		pterm.FgGreen.Println(line)
	case strings.HasPrefix(line, "-"):
		pterm.FgRed.Println(line)
	case strings.HasPrefix(line, "@"):
		pterm.FgCyan.Println(line)
	default:
		pterm.Println(line)
	}
}

func (d *richDisplay) Println(format string, args ...interface{}) {
	pterm.Printfln(format, args...)
}

// plainDisplay writes unstyled lines, used for pipes and tests
type plainDisplay struct {
	w io.Writer
}

func (d *plainDisplay) Info(format string, args ...interface{}) {
	fmt.Fprintf(d.w, "INFO: "+format+"\n", args...)
}

func (d *plainDisplay) Success(format string, args ...interface{}) {
	fmt.Fprintf(d.w, "OK: "+format+"\n", args...)
}

func (d *plainDisplay) Warning(format string, args ...interface{}) {
	fmt.Fprintf(d.w, "WARN: "+format+"\n", args...)
}

func (d *plainDisplay) Error(format string, args ...interface{}) {
	fmt.Fprintf(d.w, "ERROR: "+format+"\n", args...)
}

func (d *plainDisplay) Table(headers []string, rows [][]string) {
	fmt.Fprintln(d.w, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(d.w, strings.Join(row, "\t"))
	}
}

func (d *plainDisplay) DiffLine(line string) {
	fmt.Fprintln(d.w, line)
}

func (d *plainDisplay) Println(format string, args ...interface{}) {
	fmt.Fprintf(d.w, format+"\n", args...)
}
