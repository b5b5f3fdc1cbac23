package scan

import "testing"

func Test_pythonComment(t *testing.T) { //nolint:funlen
	t.Parallel()
	data := []struct {
		name       string
		line       string
		state      StringState
		exp        string
		expOK      bool
		expState   StringState
	}{
		{
			name:  "no comment",
			line:  "x = 1",
			state: NotInString,
		},
		{
			name:     "plain comment",
			line:     "x = 1  # type: ignore",
			state:    NotInString,
			exp:      "# type: ignore",
			expOK:    true,
			expState: NotInString,
		},
		{
			name:     "whole line comment",
			line:     "# pylint: disable=foo",
			state:    NotInString,
			exp:      "# pylint: disable=foo",
			expOK:    true,
			expState: NotInString,
		},
		{
			name:     "hash inside double quoted string",
			line:     `s = "# not a comment"`,
			state:    NotInString,
			expState: NotInString,
		},
		{
			name:     "hash inside single quoted string",
			line:     `s = '# not a comment'`,
			state:    NotInString,
			expState: NotInString,
		},
		{
			name:     "comment after string",
			line:     `s = "text"  # noqa`,
			state:    NotInString,
			exp:      "# noqa",
			expOK:    true,
			expState: NotInString,
		},
		{
			name:     "escaped quote does not close string",
			line:     `s = "a \" b # not comment"  # real`,
			state:    NotInString,
			exp:      "# real",
			expOK:    true,
			expState: NotInString,
		},
		{
			name:     "unterminated single quoted string",
			line:     `s = "abc`,
			state:    NotInString,
			expState: InDoubleQuote,
		},
		{
			name:     "triple quote opens",
			line:     `s = """doc`,
			state:    NotInString,
			expState: InTripleDouble,
		},
		{
			name:     "inside triple quote stays open",
			line:     "# pylint: disable=foo",
			state:    InTripleDouble,
			expState: InTripleDouble,
		},
		{
			name:     "triple quote closes then comment",
			line:     `end"""  # type: ignore`,
			state:    InTripleDouble,
			exp:      "# type: ignore",
			expOK:    true,
			expState: NotInString,
		},
		{
			name:     "triple single quote closes",
			line:     "doc'''",
			state:    InTripleSingle,
			expState: NotInString,
		},
		{
			name:     "single char string closes",
			line:     `still in string" # comment`,
			state:    InDoubleQuote,
			exp:      "# comment",
			expOK:    true,
			expState: NotInString,
		},
		{
			name:     "triple quote on one line",
			line:     `s = """one line"""  # noqa`,
			state:    NotInString,
			exp:      "# noqa",
			expOK:    true,
			expState: NotInString,
		},
		{
			name:     "empty line carries state",
			line:     "",
			state:    InTripleSingle,
			expState: InTripleSingle,
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			comment, ok, state := pythonComment(d.line, d.state)
			if ok != d.expOK {
				t.Fatalf("ok = %v, want %v", ok, d.expOK)
			}
			if comment != d.exp {
				t.Errorf("comment = %q, want %q", comment, d.exp)
			}
			if state != d.expState {
				t.Errorf("state = %q, want %q", state, d.expState)
			}
		})
	}
}
