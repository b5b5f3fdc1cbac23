// Package run implements the core business logic of `lintgate run`.
// The controller resolves configuration, discovers target files, feeds
// their content to the scan engine, renders findings in the requested
// output format, and decides the failure mode of the whole run. File
// access goes through afero so everything is testable on a memory fs.
package run

import (
	"io"

	"github.com/spf13/afero"
	"github.com/lintgate/lintgate/pkg/config"
)

type Controller struct {
	fs        afero.Fs
	cfg       *config.Config
	param     *ParamRun
	cfgFinder ConfigFinder
	cfgReader ConfigReader
	logger    *Logger
}

type ConfigFinder interface {
	Find(configFilePath string) (string, error)
}

type ConfigReader interface {
	Read(cfg *config.Config, configFilePath string) error
}

// ParamRun carries everything the run command resolved from flags,
// arguments, and the environment.
type ParamRun struct {
	FilePaths      []string
	ConfigFilePath string
	PWD            string
	Tools          string
	Allow          string
	Exclude        string
	Quiet          bool
	Count          bool
	JSON           bool
	SARIF          bool
	FailFast       bool
	WarnOnly       bool
	Stdout         io.Writer
	Stderr         io.Writer
}

func New(fs afero.Fs, cfgFinder ConfigFinder, cfgReader ConfigReader, param *ParamRun) *Controller {
	return &Controller{
		fs:        fs,
		param:     param,
		cfgFinder: cfgFinder,
		cfgReader: cfgReader,
		cfg:       &config.Config{},
		logger:    NewLogger(param.Stderr),
	}
}
