// Package cli assembles the lintgate command line interface on top of
// urfave/cli. Each subcommand lives in its own package and delegates to
// a controller; this package only wires them together.
package cli

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
	"github.com/lintgate/lintgate/pkg/cli/flag"
	"github.com/lintgate/lintgate/pkg/cli/initcmd"
	"github.com/lintgate/lintgate/pkg/cli/run"
	"github.com/lintgate/lintgate/pkg/cli/tools"
)

type Runner struct {
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	LDFlags *LDFlags
	LogE    *logrus.Entry
}

type LDFlags struct {
	Version string
	Commit  string
	Date    string
}

func (r *Runner) Run(ctx context.Context, args ...string) error {
	globalFlags := &flag.GlobalFlags{}
	cmd := &cli.Command{
		Name:                  "lintgate",
		Usage:                 "Fail CI when files contain inline lint suppression directives. https://github.com/lintgate/lintgate",
		Version:               r.LDFlags.Version + " (" + r.LDFlags.Commit + ")",
		Flags:                 globalFlags.Flags(),
		EnableShellCompletion: true,
		Commands: []*cli.Command{
			initcmd.New(r.LogE, globalFlags),
			run.New(r.LogE, globalFlags, r.Stdout, r.Stderr),
			tools.New(r.LogE, globalFlags, r.Stdout),
			r.newVersionCommand(),
		},
	}
	return cmd.Run(ctx, args) //nolint:wrapcheck
}
