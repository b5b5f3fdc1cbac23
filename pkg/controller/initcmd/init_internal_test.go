package initcmd

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestController_Init(t *testing.T) {
	t.Parallel()
	t.Run("creates a template config", func(t *testing.T) {
		t.Parallel()
		fs := afero.NewMemMapFs()
		if err := New(fs).Init(".lintgate.yaml"); err != nil {
			t.Fatal(err)
		}
		b, err := afero.ReadFile(fs, ".lintgate.yaml")
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(b), "version: 1") {
			t.Errorf("template does not contain a version: %s", string(b))
		}
	})
	t.Run("keeps an existing config", func(t *testing.T) {
		t.Parallel()
		fs := afero.NewMemMapFs()
		if err := afero.WriteFile(fs, ".lintgate.yaml", []byte("tools: [mypy]\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := New(fs).Init(".lintgate.yaml"); err != nil {
			t.Fatal(err)
		}
		b, err := afero.ReadFile(fs, ".lintgate.yaml")
		if err != nil {
			t.Fatal(err)
		}
		if string(b) != "tools: [mypy]\n" {
			t.Errorf("existing config was overwritten: %s", string(b))
		}
	})
}
