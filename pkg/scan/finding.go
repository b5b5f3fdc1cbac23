package scan

import "fmt"

// Finding is one reported occurrence of a suppression directive. It is
// created once per match and never mutated. Directive is the canonical
// label of the matched rule, not the raw matched text. Path is reported
// exactly as the caller passed it.
type Finding struct {
	Path      string `json:"path"`
	Line      int    `json:"line"`
	Tool      string `json:"tool"`
	Directive string `json:"directive"`
}

// String formats the finding as path:line:tool:directive.
func (f Finding) String() string {
	return fmt.Sprintf("%s:%d:%s:%s", f.Path, f.Line, f.Tool, f.Directive)
}

// Match is a (tool, directive) pair reported for a single line.
type Match struct {
	Tool      Tool
	Directive string
}
