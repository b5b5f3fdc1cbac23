// Package scan implements the core detection engine for inline suppression
// directives such as `# pylint: disable`, `// NOLINT`, or
// `<!-- markdownlint-disable -->`. It isolates comment text from string
// literals line by line, carrying lexer state across lines (unterminated
// triple-quoted strings, unterminated block comments), and matches the
// isolated text against a per-tool pattern registry. The package performs
// no I/O; callers feed it file content and consume Finding records.
package scan

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Tool identifies a linter, type checker, coverage tool, or formatter
// whose suppression directives are detected. The vocabulary is closed;
// string names appear only at the configuration boundary.
type Tool int

const (
	ToolYamllint Tool = iota
	ToolPylint
	ToolMypy
	ToolCoverage
	ToolClangTidy
	ToolClangFormat
	ToolClangDiagnostic
	ToolMarkdownlint
)

var toolNames = map[Tool]string{
	ToolYamllint:        "yamllint",
	ToolPylint:          "pylint",
	ToolMypy:            "mypy",
	ToolCoverage:        "coverage",
	ToolClangTidy:       "clang-tidy",
	ToolClangFormat:     "clang-format",
	ToolClangDiagnostic: "clang-diagnostic",
	ToolMarkdownlint:    "markdownlint",
}

func (t Tool) String() string {
	return toolNames[t]
}

// AllTools returns every known tool in declaration order.
func AllTools() []Tool {
	return []Tool{
		ToolYamllint,
		ToolPylint,
		ToolMypy,
		ToolCoverage,
		ToolClangTidy,
		ToolClangFormat,
		ToolClangDiagnostic,
		ToolMarkdownlint,
	}
}

// cExtensions are the file extensions scanned with C/C++ comment syntax.
var cExtensions = map[string]struct{}{
	".c":   {},
	".cc":  {},
	".cpp": {},
	".cxx": {},
	".h":   {},
	".hpp": {},
	".hxx": {},
	".m":   {},
	".mm":  {},
}

// toolExtensions maps each tool to the file extensions it applies to.
// .toml is included for Python tools to catch directives in pyproject.toml
// comments.
var toolExtensions = map[Tool][]string{
	ToolYamllint:        {".yaml", ".yml", ".toml"},
	ToolPylint:          {".py", ".toml"},
	ToolMypy:            {".py", ".toml"},
	ToolCoverage:        {".py", ".toml"},
	ToolClangTidy:       cExtensionList(),
	ToolClangFormat:     cExtensionList(),
	ToolClangDiagnostic: cExtensionList(),
	ToolMarkdownlint:    {".md"},
}

func cExtensionList() []string {
	exts := make([]string, 0, len(cExtensions))
	for ext := range cExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Extensions returns the file extensions the tool applies to, sorted.
func (t Tool) Extensions() []string {
	exts := make([]string, len(toolExtensions[t]))
	copy(exts, toolExtensions[t])
	sort.Strings(exts)
	return exts
}

// ParseTool resolves a tool name. Unknown names are a configuration error.
func ParseTool(name string) (Tool, error) {
	for _, t := range AllTools() {
		if toolNames[t] == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("invalid tool %q (valid tools: %s)", name, strings.Join(ToolNames(), ", "))
}

// ErrNoTools is returned when a tool list resolves to nothing.
var ErrNoTools = errors.New("at least one tool must be specified")

// ParseTools parses a comma-separated tool list and validates every name.
// The result is deduplicated and sorted in declaration order so that scan
// output is deterministic regardless of the input order.
func ParseTools(s string) ([]Tool, error) {
	seen := map[Tool]struct{}{}
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		t, err := ParseTool(name)
		if err != nil {
			return nil, err
		}
		seen[t] = struct{}{}
	}
	if len(seen) == 0 {
		return nil, ErrNoTools
	}
	tools := make([]Tool, 0, len(seen))
	for _, t := range AllTools() {
		if _, ok := seen[t]; ok {
			tools = append(tools, t)
		}
	}
	return tools, nil
}

// ToolNames returns every known tool name in declaration order.
func ToolNames() []string {
	names := make([]string, 0, len(toolNames))
	for _, t := range AllTools() {
		names = append(names, toolNames[t])
	}
	return names
}

// RelevantExtensions returns the union of the given tools' extensions,
// sorted. Callers use it to skip files no requested tool applies to.
func RelevantExtensions(tools []Tool) []string {
	seen := map[string]struct{}{}
	for _, t := range tools {
		for _, ext := range toolExtensions[t] {
			seen[ext] = struct{}{}
		}
	}
	exts := make([]string, 0, len(seen))
	for ext := range seen {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// ToolsForExtension filters tools to those applying to the extension
// (case-insensitive, including the dot).
func ToolsForExtension(ext string, tools []Tool) []Tool {
	ext = strings.ToLower(ext)
	matched := make([]Tool, 0, len(tools))
	for _, t := range tools {
		for _, e := range toolExtensions[t] {
			if e == ext {
				matched = append(matched, t)
				break
			}
		}
	}
	return matched
}

// Dialect is the comment/string lexical convention assumed for a file.
type Dialect int

const (
	// DialectPython covers `#` comments and single/triple quoted strings.
	// It is the default for anything that is not C-family.
	DialectPython Dialect = iota
	// DialectC covers `//` and `/* */` comments and quoted literals.
	DialectC
)

// DialectForPath selects the dialect from the path's extension. The
// dialect is fixed for a whole file.
func DialectForPath(path string) Dialect {
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := cExtensions[ext]; ok {
		return DialectC
	}
	return DialectPython
}
