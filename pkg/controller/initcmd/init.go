package initcmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

const (
	templateConfig = `# yaml-language-server: $schema=https://raw.githubusercontent.com/lintgate/lintgate/refs/heads/main/json-schema/lintgate.json
# lintgate - https://github.com/lintgate/lintgate
version: 1
tools:
  - pylint
  - mypy
# files:
#   - pattern: "src/*.py"
# exclude:
#   - "vendor/*"
# allow:
#   - "NOLINT(cert-err58-cpp)"
`
	filePermission os.FileMode = 0o644
)

// Init creates a configuration file with a starter template. It does
// nothing when the file already exists.
func (c *Controller) Init(configFilePath string) error {
	f, err := afero.Exists(c.fs, configFilePath)
	if err != nil {
		return fmt.Errorf("check if a configuration file exists: %w", err)
	}
	if f {
		return nil
	}
	if err := afero.WriteFile(c.fs, configFilePath, []byte(templateConfig), filePermission); err != nil {
		return fmt.Errorf("create a configuration file: %w", err)
	}
	return nil
}
