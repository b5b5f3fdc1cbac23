// Package initcmd implements the 'lintgate init' command, which writes
// a starter .lintgate.yaml so users can set up the CI gate quickly.
package initcmd

import "github.com/spf13/afero"

type Controller struct {
	fs afero.Fs
}

func New(fs afero.Fs) *Controller {
	return &Controller{fs: fs}
}
