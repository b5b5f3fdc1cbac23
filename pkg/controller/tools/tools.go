package tools

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/lintgate/lintgate/pkg/scan"
)

// RuleInfo is one registry row. It is used for template rendering.
type RuleInfo struct {
	Tool       string // Tool name (e.g. pylint)
	Scope      string // "comment" or "line"
	Directive  string // Canonical directive label
	Extensions string // Space-joined file extensions the tool applies to
}

// List outputs every registry entry of the requested tools (all tools
// when none are requested).
func (c *Controller) List() error {
	tools := scan.AllTools()
	if c.param.Tools != "" {
		parsed, err := scan.ParseTools(c.param.Tools)
		if err != nil {
			return fmt.Errorf("resolve the tool set: %w", err)
		}
		tools = parsed
	}

	tmpl, err := c.parseTemplate()
	if err != nil {
		return err
	}

	for _, tool := range tools {
		exts := strings.Join(tool.Extensions(), " ")
		for _, rule := range scan.Rules(tool) {
			info := &RuleInfo{
				Tool:       tool.String(),
				Scope:      string(rule.Scope),
				Directive:  rule.Directive,
				Extensions: exts,
			}
			if err := c.output(info, tmpl); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Controller) parseTemplate() (*template.Template, error) {
	if c.param.LineTemplate == "" {
		return nil, nil //nolint:nilnil
	}
	tmpl, err := template.New("line").Parse(c.param.LineTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse line template: %w", err)
	}
	return tmpl, nil
}

func (c *Controller) output(info *RuleInfo, tmpl *template.Template) error {
	if tmpl != nil {
		if err := tmpl.Execute(c.stdout, info); err != nil {
			return fmt.Errorf("execute template: %w", err)
		}
		fmt.Fprintln(c.stdout)
		return nil
	}
	// Default CSV format: <Tool>,<Scope>,<Directive>,<Extensions>
	fmt.Fprintf(c.stdout, "%s,%s,%s,%s\n", info.Tool, info.Scope, info.Directive, info.Extensions)
	return nil
}
