package run

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
	"github.com/lintgate/lintgate/pkg/scan"
)

// ErrDirectivesFound is returned when the scan reports at least one
// finding. The command maps it to exit code 1.
var ErrDirectivesFound = errors.New("inline suppression directives are found")

// ErrReadFailed is returned when some target files could not be read.
// The command maps it to exit code 2.
var ErrReadFailed = errors.New("some files could not be read")

func (c *Controller) Run(_ context.Context, logE *logrus.Entry) error {
	if err := c.readConfig(); err != nil {
		return err
	}
	tools, err := c.resolveTools()
	if err != nil {
		return err
	}
	allowPatterns := append(parsePatterns(c.param.Allow), c.cfg.Allow...)
	excludePatterns, err := c.resolveExcludes()
	if err != nil {
		return err
	}

	paths, err := c.searchFiles(logE, tools, excludePatterns)
	if err != nil {
		return fmt.Errorf("search target files: %w", err)
	}

	relevant := map[string]struct{}{}
	for _, ext := range scan.RelevantExtensions(tools) {
		relevant[ext] = struct{}{}
	}

	findings := []scan.Finding{}
	hadReadError := false
	for _, p := range paths {
		logE := logE.WithField("file", p)
		if skip, err := c.skipPath(logE, p, relevant, excludePatterns); err != nil || skip {
			if err != nil {
				return err
			}
			continue
		}
		content, err := afero.ReadFile(c.fs, p)
		if err != nil {
			logerr.WithError(logE, err).Error("read a target file")
			hadReadError = true
			continue
		}
		fileFindings := scan.ScanFile(p, string(content), tools, allowPatterns)
		logE.WithField("findings", len(fileFindings)).Debug("scanned a file")
		if c.param.FailFast && len(fileFindings) > 0 {
			findings = append(findings, fileFindings[0])
			if err := c.output(findings, tools); err != nil {
				return err
			}
			c.logger.Summary(len(findings), c.param.Quiet)
			if c.param.WarnOnly {
				return nil
			}
			return ErrDirectivesFound
		}
		findings = append(findings, fileFindings...)
	}

	if err := c.output(findings, tools); err != nil {
		return err
	}
	c.logger.Summary(len(findings), c.param.Quiet)

	if c.param.WarnOnly {
		return nil
	}
	if len(findings) > 0 {
		return ErrDirectivesFound
	}
	if hadReadError {
		return ErrReadFailed
	}
	return nil
}

func (c *Controller) readConfig() error {
	p, err := c.cfgFinder.Find(c.param.ConfigFilePath)
	if err != nil {
		return fmt.Errorf("find a configuration file: %w", err)
	}
	c.param.ConfigFilePath = p
	if err := c.cfgReader.Read(c.cfg, p); err != nil {
		return fmt.Errorf("read a config file: %w", err)
	}
	return nil
}

// resolveTools turns the --tools flag, or the config file when the flag
// is absent, into a validated tool set. An empty result is fatal before
// any scanning starts.
func (c *Controller) resolveTools() ([]scan.Tool, error) {
	s := c.param.Tools
	if s == "" {
		s = strings.Join(c.cfg.Tools, ",")
	}
	tools, err := scan.ParseTools(s)
	if err != nil {
		return nil, fmt.Errorf("resolve the tool set: %w", err)
	}
	return tools, nil
}

func (c *Controller) resolveExcludes() ([]string, error) {
	patterns := append(parsePatterns(c.param.Exclude), c.cfg.Exclude...)
	for _, pattern := range patterns {
		if _, err := filepath.Match(pattern, "a"); err != nil {
			return nil, fmt.Errorf("parse exclude pattern %q as a glob: %w", pattern, err)
		}
	}
	return patterns, nil
}

// skipPath filters out directories, files no requested tool applies to,
// and excluded paths.
func (c *Controller) skipPath(logE *logrus.Entry, p string, relevant map[string]struct{}, excludePatterns []string) (bool, error) {
	isDir, err := afero.IsDir(c.fs, p)
	if err == nil && isDir {
		logE.Debug("skip a directory")
		return true, nil
	}
	ext := strings.ToLower(filepath.Ext(p))
	if _, ok := relevant[ext]; !ok {
		logE.Debug("skip a file with an irrelevant extension")
		return true, nil
	}
	for _, pattern := range excludePatterns {
		matched, err := filepath.Match(pattern, p)
		if err != nil {
			return false, fmt.Errorf("match exclude pattern %q: %w", pattern, err)
		}
		if matched {
			logE.Debug("exclude a file")
			return true, nil
		}
	}
	return false, nil
}

func parsePatterns(s string) []string {
	if s == "" {
		return nil
	}
	patterns := []string{}
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			patterns = append(patterns, p)
		}
	}
	return patterns
}
