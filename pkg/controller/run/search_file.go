package run

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/lintgate/lintgate/pkg/scan"
)

// searchFiles decides the target file list: positional arguments win,
// then the config file's glob patterns, then a walk of the working
// directory filtered by the tools' relevant extensions.
func (c *Controller) searchFiles(logE *logrus.Entry, tools []scan.Tool, excludePatterns []string) ([]string, error) {
	if len(c.param.FilePaths) != 0 {
		return c.param.FilePaths, nil
	}
	if len(c.cfg.Files) > 0 {
		return c.searchFilesByConfig(logE)
	}
	return c.searchFilesByExtension(logE, tools, excludePatterns)
}

func (c *Controller) searchFilesByConfig(logE *logrus.Entry) ([]string, error) {
	files := []string{}
	if err := c.walk(logE, func(filePath string) {
		for _, file := range c.cfg.Files {
			matched, err := filepath.Match(file.Pattern, filePath)
			if err != nil {
				// Patterns were validated by the config reader.
				continue
			}
			if matched {
				files = append(files, filePath)
				break
			}
		}
	}); err != nil {
		return nil, err
	}
	return files, nil
}

func (c *Controller) searchFilesByExtension(logE *logrus.Entry, tools []scan.Tool, excludePatterns []string) ([]string, error) {
	relevant := map[string]struct{}{}
	for _, ext := range scan.RelevantExtensions(tools) {
		relevant[ext] = struct{}{}
	}
	files := []string{}
	if err := c.walk(logE, func(filePath string) {
		ext := strings.ToLower(filepath.Ext(filePath))
		if _, ok := relevant[ext]; !ok {
			return
		}
		for _, pattern := range excludePatterns {
			if matched, _ := filepath.Match(pattern, filePath); matched {
				return
			}
		}
		files = append(files, filePath)
	}); err != nil {
		return nil, err
	}
	return files, nil
}

func (c *Controller) walk(logE *logrus.Entry, visit func(filePath string)) error {
	if err := fs.WalkDir(afero.NewIOFS(c.fs), c.param.PWD, func(p string, dirEntry fs.DirEntry, e error) error {
		if e != nil {
			return nil //nolint:nilerr
		}
		if dirEntry.IsDir() {
			if dirEntry.Name() == ".git" {
				return fs.SkipDir
			}
			return nil
		}
		filePath, err := filepath.Rel(c.param.PWD, p)
		if err != nil {
			logE.WithFields(logrus.Fields{
				"pwd":  c.param.PWD,
				"path": p,
			}).WithError(err).Debug("get a relative path")
			return nil
		}
		visit(filePath)
		return nil
	}); err != nil {
		return fmt.Errorf("walk the working directory: %w", err)
	}
	return nil
}
