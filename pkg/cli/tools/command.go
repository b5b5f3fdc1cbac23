// Package tools defines the 'lintgate tools' command.
package tools

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
	"github.com/lintgate/lintgate/pkg/cli/flag"
	"github.com/lintgate/lintgate/pkg/controller/tools"
	"github.com/lintgate/lintgate/pkg/log"
)

// Flags holds the command-line flags for the tools command.
type Flags struct {
	Tools        string
	LineTemplate string
}

type runner struct {
	logE        *logrus.Entry
	globalFlags *flag.GlobalFlags
	stdout      io.Writer
}

func New(logE *logrus.Entry, globalFlags *flag.GlobalFlags, stdout io.Writer) *cli.Command {
	r := &runner{
		logE:        logE,
		globalFlags: globalFlags,
		stdout:      stdout,
	}
	return r.Command()
}

func (r *runner) Command() *cli.Command {
	flags := &Flags{}
	return &cli.Command{
		Name:  "tools",
		Usage: "List supported tools and the directives they detect",
		Description: `List supported tools and the directives they detect.

$ lintgate tools

Output format (default CSV):
<Tool>,<Scope>,<Directive>,<Extensions>

Custom output format using Go template:
$ lintgate tools --line-template "{{.Tool}}: {{.Directive}}"

Available template fields:
  Tool       - Tool name (e.g. pylint)
  Scope      - "comment" or "line"
  Directive  - Canonical directive label
  Extensions - Space-joined file extensions
`,
		Action: func(_ context.Context, _ *cli.Command) error {
			return r.action(flags)
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "tools",
				Aliases:     []string{"t"},
				Usage:       "Comma-separated tools to list",
				Destination: &flags.Tools,
			},
			&cli.StringFlag{
				Name:        "line-template",
				Usage:       "Go text/template format for each line",
				Destination: &flags.LineTemplate,
			},
		},
	}
}

func (r *runner) action(flags *Flags) error {
	log.SetLevel(r.globalFlags.LogLevel, r.logE)
	ctrl := tools.New(&tools.Param{
		Tools:        flags.Tools,
		LineTemplate: flags.LineTemplate,
	}, r.stdout)
	return ctrl.List() //nolint:wrapcheck
}
