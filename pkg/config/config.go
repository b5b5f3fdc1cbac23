// Package config loads the lintgate configuration file. The file is
// optional; everything it holds can also be supplied with command line
// flags, which take precedence.
package config

import (
	"errors"
	"fmt"
	"path"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Version int      `json:"version,omitempty" jsonschema:"enum=1"`
	Tools   []string `json:"tools,omitempty" jsonschema:"description=Tools whose suppression directives are detected. Overridden by --tools"`
	Files   []*File  `json:"files,omitempty" jsonschema:"description=Target files. If files are passed via positional command line arguments, this is ignored"`
	Exclude []string `json:"exclude,omitempty" jsonschema:"description=Glob patterns of files to skip"`
	Allow   []string `json:"allow,omitempty" jsonschema:"description=Substrings that mark a source line as a sanctioned exception"`
}

type File struct {
	Pattern string `json:"pattern" jsonschema:"description=A glob pattern of target files."`
}

func (f *File) Init() error {
	if f.Pattern == "" {
		return errors.New("pattern is required")
	}
	if _, err := path.Match(f.Pattern, "a"); err != nil {
		return fmt.Errorf("parse pattern as a glob: %w", err)
	}
	return nil
}

func getConfigPath(fs afero.Fs) (string, error) {
	for _, p := range []string{".lintgate.yaml", ".github/lintgate.yaml", ".lintgate.yml", ".github/lintgate.yml"} {
		f, err := afero.Exists(fs, p)
		if err != nil {
			return "", fmt.Errorf("check if %s exists: %w", p, err)
		}
		if f {
			return p, nil
		}
	}
	return "", nil
}

type Finder struct {
	fs afero.Fs
}

func NewFinder(fs afero.Fs) *Finder {
	return &Finder{fs: fs}
}

func (f *Finder) Find(configFilePath string) (string, error) {
	if configFilePath != "" {
		return configFilePath, nil
	}
	return getConfigPath(f.fs)
}

type Reader struct {
	fs afero.Fs
}

func NewReader(fs afero.Fs) *Reader {
	return &Reader{fs: fs}
}

func (r *Reader) Read(cfg *Config, configFilePath string) error {
	if configFilePath == "" {
		return nil
	}
	f, err := r.fs.Open(configFilePath)
	if err != nil {
		return fmt.Errorf("open a configuration file: %w", err)
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("decode a configuration file as YAML: %w", err)
	}
	for _, file := range cfg.Files {
		if err := file.Init(); err != nil {
			return fmt.Errorf("initialize file: %w", err)
		}
	}
	for _, pattern := range cfg.Exclude {
		if _, err := path.Match(pattern, "a"); err != nil {
			return fmt.Errorf("parse exclude pattern as a glob: %w", err)
		}
	}
	return nil
}
