package config_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/lintgate/lintgate/pkg/config"
)

func TestReader_Read(t *testing.T) { //nolint:funlen
	t.Parallel()
	data := []struct {
		name     string
		files    map[string]string
		path     string
		exp      *config.Config
		wantErr  bool
	}{
		{
			name: "full config",
			files: map[string]string{
				".lintgate.yaml": `version: 1
tools:
  - pylint
  - mypy
files:
  - pattern: "*.py"
exclude:
  - "vendor/*"
allow:
  - "NOLINT(cert-err58-cpp)"
`,
			},
			path: ".lintgate.yaml",
			exp: &config.Config{
				Version: 1,
				Tools:   []string{"pylint", "mypy"},
				Files:   []*config.File{{Pattern: "*.py"}},
				Exclude: []string{"vendor/*"},
				Allow:   []string{"NOLINT(cert-err58-cpp)"},
			},
		},
		{
			name: "empty path is a no-op",
			path: "",
			exp:  &config.Config{},
		},
		{
			name:    "missing file",
			path:    ".lintgate.yaml",
			wantErr: true,
		},
		{
			name: "empty file pattern",
			files: map[string]string{
				".lintgate.yaml": "files:\n  - pattern: \"\"\n",
			},
			path:    ".lintgate.yaml",
			wantErr: true,
		},
		{
			name: "broken exclude glob",
			files: map[string]string{
				".lintgate.yaml": "exclude:\n  - \"[\"\n",
			},
			path:    ".lintgate.yaml",
			wantErr: true,
		},
		{
			name: "invalid yaml",
			files: map[string]string{
				".lintgate.yaml": "tools: [",
			},
			path:    ".lintgate.yaml",
			wantErr: true,
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			fs := afero.NewMemMapFs()
			for name, content := range d.files {
				if err := afero.WriteFile(fs, name, []byte(content), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			cfg := &config.Config{}
			err := config.NewReader(fs).Read(cfg, d.path)
			if d.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(d.exp, cfg); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func TestFinder_Find(t *testing.T) {
	t.Parallel()
	data := []struct {
		name     string
		files    []string
		explicit string
		exp      string
	}{
		{
			name:     "explicit path wins",
			files:    []string{".lintgate.yaml"},
			explicit: "custom.yaml",
			exp:      "custom.yaml",
		},
		{
			name:  "default path",
			files: []string{".lintgate.yaml"},
			exp:   ".lintgate.yaml",
		},
		{
			name:  "github directory fallback",
			files: []string{".github/lintgate.yaml"},
			exp:   ".github/lintgate.yaml",
		},
		{
			name: "no config",
			exp:  "",
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			fs := afero.NewMemMapFs()
			for _, name := range d.files {
				if err := afero.WriteFile(fs, name, []byte("{}"), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			got, err := config.NewFinder(fs).Find(d.explicit)
			if err != nil {
				t.Fatal(err)
			}
			if got != d.exp {
				t.Fatalf("Find() = %q, want %q", got, d.exp)
			}
		})
	}
}
