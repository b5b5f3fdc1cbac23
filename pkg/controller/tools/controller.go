// Package tools implements the 'lintgate tools' command. It lists the
// pattern registry (known tools, their directives, and the file
// extensions they apply to) with optional custom output formatting.
package tools

import "io"

// Controller handles the tools command operations.
type Controller struct {
	param  *Param
	stdout io.Writer
}

// Param contains parameters for the tools command.
type Param struct {
	Tools        string
	LineTemplate string
}

// New creates a new Controller for listing the registry.
func New(param *Param, stdout io.Writer) *Controller {
	return &Controller{
		param:  param,
		stdout: stdout,
	}
}
