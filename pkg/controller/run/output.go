package run

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/lintgate/lintgate/pkg/scan"
)

func (c *Controller) output(findings []scan.Finding, tools []scan.Tool) error {
	if c.param.Quiet {
		return nil
	}
	switch {
	case c.param.JSON:
		encoder := json.NewEncoder(c.param.Stdout)
		if err := encoder.Encode(findings); err != nil {
			return fmt.Errorf("encode findings as JSON: %w", err)
		}
		return nil
	case c.param.SARIF:
		return c.outputSARIF(findings, tools)
	case c.param.Count:
		fmt.Fprintln(c.param.Stdout, len(findings))
		return nil
	default:
		for _, f := range findings {
			fmt.Fprintln(c.param.Stdout, f.String())
		}
		return nil
	}
}

type colorFunc func(a ...interface{}) string

// Logger renders the run summary on stderr, colored like the rest of
// the CI output. Findings themselves go to stdout.
type Logger struct {
	stderr io.Writer
	red    colorFunc
	green  colorFunc
}

func NewLogger(stderr io.Writer) *Logger {
	return &Logger{
		red:    color.New(color.FgRed).SprintFunc(),
		green:  color.New(color.FgGreen).SprintFunc(),
		stderr: stderr,
	}
}

func (l *Logger) Summary(count int, quiet bool) {
	if quiet {
		return
	}
	if count == 0 {
		fmt.Fprintf(l.stderr, "%s no inline suppression directives found\n", l.green("OK"))
		return
	}
	fmt.Fprintf(l.stderr, "%s %d inline suppression directives found\n", l.red("ERROR"), count)
}
