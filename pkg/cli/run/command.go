// Package run defines the 'lintgate run' command, the CI gate itself.
package run

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
	"github.com/lintgate/lintgate/pkg/cli/flag"
	"github.com/lintgate/lintgate/pkg/config"
	"github.com/lintgate/lintgate/pkg/controller/run"
	"github.com/lintgate/lintgate/pkg/log"
)

// Flags holds the command-line flags for the run command.
type Flags struct {
	Tools    string
	Allow    string
	Exclude  string
	Quiet    bool
	Count    bool
	JSON     bool
	SARIF    bool
	FailFast bool
	WarnOnly bool
	Args     []string
}

type runner struct {
	logE        *logrus.Entry
	globalFlags *flag.GlobalFlags
	stdout      io.Writer
	stderr      io.Writer
}

func New(logE *logrus.Entry, globalFlags *flag.GlobalFlags, stdout, stderr io.Writer) *cli.Command {
	r := &runner{
		logE:        logE,
		globalFlags: globalFlags,
		stdout:      stdout,
		stderr:      stderr,
	}
	return r.Command()
}

func (r *runner) Command() *cli.Command { //nolint:funlen
	flags := &Flags{}
	return &cli.Command{
		Name:  "run",
		Usage: "Scan files for inline suppression directives",
		Description: `If no argument is passed, lintgate scans the working directory for files
the requested tools apply to.

$ lintgate run --tools pylint,mypy

You can also pass file paths as arguments.

e.g.

$ lintgate run --tools mypy src/a.py src/b.py

The command exits 1 when directives are found and 2 on usage or read
errors.
`,
		Action: func(ctx context.Context, _ *cli.Command) error {
			return r.action(ctx, flags)
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "tools",
				Aliases:     []string{"t"},
				Usage:       "Comma-separated tools to check (e.g. pylint,mypy,clang-tidy)",
				Sources:     cli.EnvVars("LINTGATE_TOOLS"),
				Destination: &flags.Tools,
			},
			&cli.StringFlag{
				Name:        "allow",
				Usage:       "Comma-separated substrings marking sanctioned lines",
				Destination: &flags.Allow,
			},
			&cli.StringFlag{
				Name:        "exclude",
				Usage:       "Comma-separated glob patterns of files to skip",
				Destination: &flags.Exclude,
			},
			&cli.BoolFlag{
				Name:        "quiet",
				Aliases:     []string{"q"},
				Usage:       "Suppress output, exit code only",
				Destination: &flags.Quiet,
			},
			&cli.BoolFlag{
				Name:        "count",
				Usage:       "Print the finding count only",
				Destination: &flags.Count,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "Output findings as JSON",
				Destination: &flags.JSON,
			},
			&cli.BoolFlag{
				Name:        "sarif",
				Usage:       "Output findings as SARIF",
				Destination: &flags.SARIF,
			},
			&cli.BoolFlag{
				Name:        "fail-fast",
				Usage:       "Exit on the first finding",
				Destination: &flags.FailFast,
			},
			&cli.BoolFlag{
				Name:        "warn-only",
				Usage:       "Always exit 0, report only",
				Destination: &flags.WarnOnly,
			},
		},
		Arguments: []cli.Argument{
			&cli.StringArgs{
				Name:        "files",
				Max:         -1,
				Destination: &flags.Args,
			},
		},
	}
}

func (r *runner) action(ctx context.Context, flags *Flags) error {
	log.SetLevel(r.globalFlags.LogLevel, r.logE)
	if err := validateFlags(flags); err != nil {
		return err
	}
	pwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get the current directory: %w", err)
	}
	fs := afero.NewOsFs()
	param := &run.ParamRun{
		FilePaths:      flags.Args,
		ConfigFilePath: r.globalFlags.Config,
		PWD:            pwd,
		Tools:          flags.Tools,
		Allow:          flags.Allow,
		Exclude:        flags.Exclude,
		Quiet:          flags.Quiet,
		Count:          flags.Count,
		JSON:           flags.JSON,
		SARIF:          flags.SARIF,
		FailFast:       flags.FailFast,
		WarnOnly:       flags.WarnOnly,
		Stdout:         r.stdout,
		Stderr:         r.stderr,
	}
	ctrl := run.New(fs, config.NewFinder(fs), config.NewReader(fs), param)
	return ctrl.Run(ctx, r.logE) //nolint:wrapcheck
}

func validateFlags(flags *Flags) error {
	outputs := 0
	for _, b := range []bool{flags.Quiet, flags.Count, flags.JSON, flags.SARIF} {
		if b {
			outputs++
		}
	}
	if outputs > 1 {
		return errors.New("--quiet, --count, --json, and --sarif are mutually exclusive")
	}
	if flags.FailFast && flags.WarnOnly {
		return errors.New("--fail-fast and --warn-only are mutually exclusive")
	}
	return nil
}
