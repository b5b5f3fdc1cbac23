package scan

import "strings"

// cComment returns the comment text of a C/C++ line and the outgoing
// block-comment state. Multiple comment spans on one line are joined
// with a single space so that concatenation cannot form a directive
// token that wasn't present in either span. ok is false when the line
// carries no comment span at all.
func cComment(line string, inBlockComment bool) (comment string, ok bool, out bool) {
	var parts []string
	i := 0

	if inBlockComment {
		end := strings.Index(line, "*/")
		if end == -1 {
			// The whole line is inside the block comment.
			return line, true, true
		}
		parts = append(parts, line[:end])
		i = end + 2
		inBlockComment = false
	}

	for i < len(line) {
		if strings.HasPrefix(line[i:], "//") {
			parts = append(parts, line[i:])
			break
		}
		if strings.HasPrefix(line[i:], "/*") {
			end := strings.Index(line[i+2:], "*/")
			if end == -1 {
				parts = append(parts, line[i:])
				return strings.Join(parts, " "), true, true
			}
			end += i + 2
			parts = append(parts, line[i:end+2])
			i = end + 2
			continue
		}
		if line[i] == '"' || line[i] == '\'' {
			i = skipCStringLiteral(line, i+1, line[i])
		}
		i++
	}

	if len(parts) == 0 {
		return "", false, inBlockComment
	}
	return strings.Join(parts, " "), true, inBlockComment
}

// skipCStringLiteral advances past the body of a string or character
// literal, starting just after the opening quote. A backslash skips the
// following character whatever it is, which handles escaped quotes and
// escaped backslashes. Returns the index of the closing quote, or the
// end of the line if the literal is unterminated.
func skipCStringLiteral(line string, i int, quote byte) int {
	for i < len(line) {
		if line[i] == '\\' {
			i += 2
			continue
		}
		if line[i] == quote {
			break
		}
		i++
	}
	return i
}
