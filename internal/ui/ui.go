package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	Bold   = color.New(color.Bold).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()
	Green  = color.New(color.FgGreen).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Cyan   = color.New(color.FgCyan).SprintFunc()
	Faint  = color.New(color.Faint).SprintFunc()
)

// DisableColor turns off colored output for the whole process.
func DisableColor() {
	color.NoColor = true
}

// Printer writes operator-facing messages. Everything goes to Out except
// Error, which goes to Err.
type Printer struct {
	Out io.Writer
	Err io.Writer
}

// NewPrinter returns a Printer on stdout/stderr, or on the given writers.
func NewPrinter(out, errOut io.Writer) *Printer {
	if out == nil {
		out = color.Output
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return &Printer{Out: out, Err: errOut}
}

func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.Out, a...)
}

func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.Out, format, a...)
}

// Success prints a confirmation line.
func (p *Printer) Success(format string, a ...any) {
	fmt.Fprintln(p.Out, Green("✅ ")+fmt.Sprintf(format, a...))
}

// Warn prints a warning. Warnings are not failures of the tool itself.
func (p *Printer) Warn(format string, a ...any) {
	fmt.Fprintln(p.Out, Yellow("⚠️  ")+fmt.Sprintf(format, a...))
}

// Error prints an "Error: ..." line to Err.
func (p *Printer) Error(format string, a ...any) {
	fmt.Fprintln(p.Err, Red("Error: ")+fmt.Sprintf(format, a...))
}
