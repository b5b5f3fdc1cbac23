package run

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	logger := NewLogger(buf)
	if logger == nil {
		t.Fatal("NewLogger() returned nil")
	}
	if logger.stderr != buf {
		t.Error("NewLogger() stderr not set correctly")
	}
	if logger.red == nil {
		t.Error("NewLogger() red function is nil")
	}
	if logger.green == nil {
		t.Error("NewLogger() green function is nil")
	}
}

func TestLogger_Summary(t *testing.T) {
	t.Parallel()
	data := []struct {
		name         string
		count        int
		quiet        bool
		wantContains string
		wantEmpty    bool
	}{
		{
			name:         "clean",
			count:        0,
			wantContains: "no inline suppression directives found",
		},
		{
			name:         "findings",
			count:        3,
			wantContains: "3 inline suppression directives found",
		},
		{
			name:      "quiet",
			count:     3,
			quiet:     true,
			wantEmpty: true,
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			buf := &bytes.Buffer{}
			NewLogger(buf).Summary(d.count, d.quiet)
			out := buf.String()
			if d.wantEmpty {
				if out != "" {
					t.Fatalf("expected no output, got %q", out)
				}
				return
			}
			if !strings.Contains(out, d.wantContains) {
				t.Fatalf("output %q does not contain %q", out, d.wantContains)
			}
		})
	}
}
