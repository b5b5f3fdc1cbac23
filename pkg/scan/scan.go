package scan

import "strings"

// ScanFile scans file content for inline suppression directives and
// returns findings in ascending line order. The dialect is chosen once
// from the path's extension and fixed for the whole file. Lexer state
// (open triple-quoted string, open block comment) is carried from line
// to line. A finding is suppressed when its raw source line contains any
// allow pattern, case-insensitively.
//
// ScanFile is a pure function: it performs no I/O and never fails;
// malformed input only leaves the carry-over state open at end of file.
func ScanFile(path, content string, tools []Tool, allowPatterns []string) []Finding {
	dialect := DialectForPath(path)

	var findings []Finding
	strState := NotInString
	inBlockComment := false

	for i, line := range splitLines(content) {
		wasInBlockComment := inBlockComment

		var comment string
		var hasComment bool
		if dialect == DialectC {
			comment, hasComment, inBlockComment = cComment(line, inBlockComment)
		} else {
			comment, hasComment, strState = pythonComment(line, strState)
		}

		matches := findCommentMatches(comment, hasComment, tools)
		// A pragma textually inside a block comment is inert code.
		if !wasInBlockComment {
			matches = appendLineMatches(matches, line, tools)
		}
		if len(matches) == 0 || isAllowed(line, allowPatterns) {
			continue
		}
		for _, m := range matches {
			findings = append(findings, Finding{
				Path:      path,
				Line:      i + 1,
				Tool:      m.Tool.String(),
				Directive: m.Directive,
			})
		}
	}
	return findings
}

// ScanLine scans a single line without cross-line state. Lines that
// depend on a multi-line string or block comment are not handled
// correctly here; ScanFile is the state-aware API.
func ScanLine(line string, tools []Tool, dialect Dialect) []Match {
	var comment string
	var hasComment bool
	if dialect == DialectC {
		comment, hasComment, _ = cComment(line, false)
	} else {
		comment, hasComment, _ = pythonComment(line, NotInString)
	}
	matches := findCommentMatches(comment, hasComment, tools)
	return appendLineMatches(matches, line, tools)
}

// findCommentMatches applies each tool's comment-scoped rules in order
// to the isolated comment text. The first matching rule wins; at most
// one match per tool.
func findCommentMatches(comment string, hasComment bool, tools []Tool) []Match {
	if !hasComment {
		return nil
	}
	var matches []Match
	for _, t := range tools {
		for _, r := range commentRules[t] {
			if r.match(comment) {
				matches = append(matches, Match{Tool: t, Directive: r.directive})
				break
			}
		}
	}
	return matches
}

// appendLineMatches applies whole-line rules to the raw line, skipping
// tools that already matched a comment-scoped rule on this line.
func appendLineMatches(matches []Match, line string, tools []Tool) []Match {
	for _, t := range tools {
		if matchedTool(matches, t) {
			continue
		}
		for _, r := range lineRules[t] {
			if r.match(line) {
				matches = append(matches, Match{Tool: t, Directive: r.directive})
				break
			}
		}
	}
	return matches
}

func matchedTool(matches []Match, t Tool) bool {
	for _, m := range matches {
		if m.Tool == t {
			return true
		}
	}
	return false
}

func isAllowed(line string, allowPatterns []string) bool {
	if len(allowPatterns) == 0 {
		return false
	}
	lower := strings.ToLower(line)
	for _, p := range allowPatterns {
		if strings.Contains(lower, strings.ToLower(p)) {
			return true
		}
	}
	return false
}

// splitLines splits content into logical lines the way an editor counts
// them: a trailing newline does not create a phantom empty final line.
// Both LF and CRLF terminators are accepted.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
