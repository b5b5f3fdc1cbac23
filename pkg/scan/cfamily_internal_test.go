package scan

import "testing"

func Test_cComment(t *testing.T) { //nolint:funlen
	t.Parallel()
	data := []struct {
		name     string
		line     string
		inBlock  bool
		exp      string
		expOK    bool
		expBlock bool
	}{
		{
			name: "no comment",
			line: "int x = 1;",
		},
		{
			name:  "line comment",
			line:  "int x = 1; // NOLINT",
			exp:   "// NOLINT",
			expOK: true,
		},
		{
			name:  "block comment same line",
			line:  "int x /* NOLINT */ = 1;",
			exp:   "/* NOLINT */",
			expOK: true,
		},
		{
			name:     "block comment opens",
			line:     "int x = 1; /* start",
			exp:      "/* start",
			expOK:    true,
			expBlock: true,
		},
		{
			name:     "whole line inside block comment",
			line:     " * NOLINT",
			inBlock:  true,
			exp:      " * NOLINT",
			expOK:    true,
			expBlock: true,
		},
		{
			name:    "block comment closes",
			line:    "end */ int x = 1;",
			inBlock: true,
			exp:     "end ",
			expOK:   true,
		},
		{
			name:    "block closes then line comment",
			line:    "end */ int x; // tail",
			inBlock: true,
			exp:     "end  // tail",
			expOK:   true,
		},
		{
			name: "comment markers inside string",
			line: `const char *s = "// not a comment";`,
		},
		{
			name: "block marker inside string",
			line: `const char *s = "/* no */";`,
		},
		{
			name:  "escaped quote in string",
			line:  `const char *s = "a \" b"; // real`,
			exp:   "// real",
			expOK: true,
		},
		{
			name:  "escaped backslash before closing quote",
			line:  `const char *s = "a \\"; // real`,
			exp:   "// real",
			expOK: true,
		},
		{
			name: "char literal with quote",
			line: `char c = '"'; int y = 2;`,
		},
		{
			name:  "two block comments joined with space",
			line:  "/* NO */ x /* LINT */",
			exp:   "/* NO */ /* LINT */",
			expOK: true,
		},
		{
			name:     "block comment reopens after close",
			line:     "a */ b /* c",
			inBlock:  true,
			exp:      "a  /* c",
			expOK:    true,
			expBlock: true,
		},
		{
			name:    "empty line inside block comment",
			line:    "",
			inBlock: true,
			exp:     "",
			expOK:   true,
			expBlock: true,
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			comment, ok, inBlock := cComment(d.line, d.inBlock)
			if ok != d.expOK {
				t.Fatalf("ok = %v, want %v", ok, d.expOK)
			}
			if comment != d.exp {
				t.Errorf("comment = %q, want %q", comment, d.exp)
			}
			if inBlock != d.expBlock {
				t.Errorf("inBlockComment = %v, want %v", inBlock, d.expBlock)
			}
		})
	}
}

func Test_cComment_concatenationCannotFormDirective(t *testing.T) {
	t.Parallel()
	// "NO" and "LINT" in separate spans must not become "NOLINT".
	comment, ok, _ := cComment("/*NO*/ x /*LINT*/", false)
	if !ok {
		t.Fatal("expected a comment")
	}
	for _, m := range ScanLine("/*NO*/ x /*LINT*/", []Tool{ToolClangTidy}, DialectC) {
		t.Errorf("unexpected match: %v (comment %q)", m, comment)
	}
}
