package scan

import "strings"

// StringState is the Python-family carry-over state: the quote delimiter
// of an open string literal, or empty when no string is open. The state
// at the end of line N is exactly the input state for line N+1.
type StringState string

const (
	NotInString    StringState = ""
	InSingleQuote  StringState = "'"
	InDoubleQuote  StringState = `"`
	InTripleSingle StringState = "'''"
	InTripleDouble StringState = `"""`
)

// pythonComment returns the `#`-comment portion of a line (from the `#`
// to the end) and the outgoing string state. ok is false when the line
// has no comment outside a string literal.
//
// The escape check looks back a single character, so a quote preceded by
// a backslash is treated as escaped even when that backslash is itself
// escaped. Runs of backslashes before a closing quote can therefore be
// misread; this matches the long-standing behavior downstream checks
// depend on.
func pythonComment(line string, state StringState) (comment string, ok bool, out StringState) {
	i := 0
	for i < len(line) {
		c := line[i]
		if state != NotInString {
			if len(state) == 3 {
				if strings.HasPrefix(line[i:], string(state)) {
					state = NotInString
					i += 2
				}
			} else if c == state[0] && (i == 0 || line[i-1] != '\\') {
				state = NotInString
			}
		} else {
			switch {
			case strings.HasPrefix(line[i:], `"""`) || strings.HasPrefix(line[i:], "'''"):
				state = StringState(line[i : i+3])
				i += 2
			case c == '"' || c == '\'':
				state = StringState(c)
			case c == '#':
				return line[i:], true, state
			}
		}
		i++
	}
	return "", false, state
}
