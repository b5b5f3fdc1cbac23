package scan

import "regexp"

// rule is one pattern of the registry. pattern is searched anywhere in
// the text. reject, when set, is re-applied at the start of each
// occurrence; an occurrence only counts if reject does not match there.
// This stands in for negative lookahead, which RE2 doesn't support
// (e.g. NOLINT must not match inside NOLINTEND).
type rule struct {
	pattern   *regexp.Regexp
	reject    *regexp.Regexp
	directive string
}

func (r rule) match(s string) bool {
	if r.reject == nil {
		return r.pattern.MatchString(s)
	}
	for _, loc := range r.pattern.FindAllStringIndex(s, -1) {
		if !r.reject.MatchString(s[loc[0]:]) {
			return true
		}
	}
	return false
}

// commentRules are matched against the isolated comment text of a line.
// Rules are tried in order; the first match wins for that tool on that
// line. Patterns tolerate extra whitespace and are case-insensitive.
var commentRules = map[Tool][]rule{
	ToolYamllint: {
		{pattern: regexp.MustCompile(`(?i)yamllint\s+disable-line`), directive: "yamllint disable-line"},
		{pattern: regexp.MustCompile(`(?i)yamllint\s+disable-file`), directive: "yamllint disable-file"},
		{
			pattern:   regexp.MustCompile(`(?i)yamllint\s+disable`),
			reject:    regexp.MustCompile(`(?i)^yamllint\s+disable-`),
			directive: "yamllint disable",
		},
	},
	ToolPylint: {
		{pattern: regexp.MustCompile(`(?i)pylint:\s*disable-next`), directive: "pylint: disable-next"},
		{pattern: regexp.MustCompile(`(?i)pylint:\s*disable-line`), directive: "pylint: disable-line"},
		{pattern: regexp.MustCompile(`(?i)pylint:\s*skip-file`), directive: "pylint: skip-file"},
		{
			pattern:   regexp.MustCompile(`(?i)pylint:\s*disable`),
			reject:    regexp.MustCompile(`(?i)^pylint:\s*disable-`),
			directive: "pylint: disable",
		},
	},
	ToolMypy: {
		{pattern: regexp.MustCompile(`(?i)type:\s*ignore`), directive: "type: ignore"},
		{pattern: regexp.MustCompile(`(?i)mypy:\s*ignore-errors`), directive: "mypy: ignore-errors"},
	},
	ToolCoverage: {
		{pattern: regexp.MustCompile(`(?i)pragma:\s*no\s*cover`), directive: "pragma: no cover"},
		{pattern: regexp.MustCompile(`(?i)pragma:\s*no\s*branch`), directive: "pragma: no branch"},
	},
	ToolClangTidy: {
		{pattern: regexp.MustCompile(`(?i)NOLINTNEXTLINE`), directive: "NOLINTNEXTLINE"},
		{pattern: regexp.MustCompile(`(?i)NOLINTBEGIN`), directive: "NOLINTBEGIN"},
		{
			pattern:   regexp.MustCompile(`(?i)NOLINT`),
			reject:    regexp.MustCompile(`(?i)^NOLINT(?:NEXTLINE|BEGIN|END)`),
			directive: "NOLINT",
		},
	},
	ToolClangFormat: {
		{pattern: regexp.MustCompile(`(?i)clang-format\s+off`), directive: "clang-format off"},
	},
}

// lineRules are matched against the full raw line, for directives that
// are not comments (preprocessor pragmas) or whose comment syntax the
// lexers don't model (HTML comments in Markdown). They are skipped when
// the line starts inside a block comment.
var lineRules = map[Tool][]rule{
	ToolClangDiagnostic: {
		{
			pattern:   regexp.MustCompile(`(?i)^\s*#\s*pragma\s+clang\s+diagnostic\s+ignored`),
			directive: "#pragma clang diagnostic ignored",
		},
	},
	ToolMarkdownlint: {
		{pattern: regexp.MustCompile(`(?i)markdownlint-disable-next-line`), directive: "markdownlint-disable-next-line"},
		{pattern: regexp.MustCompile(`(?i)markdownlint-disable-line`), directive: "markdownlint-disable-line"},
		{pattern: regexp.MustCompile(`(?i)markdownlint-disable-file`), directive: "markdownlint-disable-file"},
		{
			pattern:   regexp.MustCompile(`(?i)markdownlint-disable`),
			reject:    regexp.MustCompile(`(?i)^markdownlint-disable-`),
			directive: "markdownlint-disable",
		},
		{pattern: regexp.MustCompile(`(?i)markdownlint-capture`), directive: "markdownlint-capture"},
		{pattern: regexp.MustCompile(`(?i)markdownlint-configure-file`), directive: "markdownlint-configure-file"},
	},
}

// RuleScope says whether a directive pattern is applied to isolated
// comment text or to the raw line.
type RuleScope string

const (
	ScopeComment RuleScope = "comment"
	ScopeLine    RuleScope = "line"
)

// RuleInfo describes one registry entry for introspection (the `tools`
// command). The pattern itself stays internal.
type RuleInfo struct {
	Tool      Tool
	Scope     RuleScope
	Directive string
}

// Rules returns the registry entries of a tool in matching order,
// comment-scoped first.
func Rules(t Tool) []RuleInfo {
	infos := make([]RuleInfo, 0, len(commentRules[t])+len(lineRules[t]))
	for _, r := range commentRules[t] {
		infos = append(infos, RuleInfo{Tool: t, Scope: ScopeComment, Directive: r.directive})
	}
	for _, r := range lineRules[t] {
		infos = append(infos, RuleInfo{Tool: t, Scope: ScopeLine, Directive: r.directive})
	}
	return infos
}
