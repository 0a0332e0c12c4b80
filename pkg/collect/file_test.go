package collect

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"

	"github.com/goliatone/go-themegen/pkg/config"
)

func TestFromFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	files := map[string]string{
		"answers.json": `{"slug":"demo","author":"Jane","author_uri":null}`,
		"answers.yaml": "slug: demo\nauthor: Jane\nversion: \"2.0.0\"\n",
	}
	for path, body := range files {
		if err := afero.WriteFile(fs, path, []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}

	tests := map[string]config.Values{
		"answers.json": {"slug": "demo", "author": "Jane"},
		"answers.yaml": {"slug": "demo", "author": "Jane", "version": "2.0.0"},
	}
	for path, want := range tests {
		t.Run(path, func(t *testing.T) {
			got, err := FromFile(fs, path)
			if err != nil {
				t.Fatalf("from file: %v", err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("values mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFromFileErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	_ = afero.WriteFile(fs, "empty.yaml", []byte("  \n"), 0o644)
	_ = afero.WriteFile(fs, "nested.yaml", []byte("slug:\n  value: demo\n"), 0o644)
	_ = afero.WriteFile(fs, "list.yaml", []byte("- demo\n"), 0o644)

	tests := map[string]string{
		"missing.json": "read answers",
		"empty.yaml":   "is empty",
		"nested.yaml":  "nested values",
		"list.yaml":    "invalid JSON or YAML",
	}
	for path, want := range tests {
		t.Run(path, func(t *testing.T) {
			_, err := FromFile(fs, path)
			if err == nil || !strings.Contains(err.Error(), want) {
				t.Fatalf("expected error containing %q, got %v", want, err)
			}
		})
	}
}
