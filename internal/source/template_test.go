package source

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteTemplate(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteTemplate(&buf, BoostersHeader); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "label,url,title\n" {
		t.Errorf("unexpected template %q", buf.String())
	}
}

func TestWriteTemplates(t *testing.T) {
	t.Parallel()

	t.Run("writes the three templates", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "templates")
		paths, err := WriteTemplates(dir, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(paths) != 3 {
			t.Fatalf("expected 3 files, got %d", len(paths))
		}

		data, err := os.ReadFile(filepath.Join(dir, URLsTemplateName))
		if err != nil {
			t.Fatalf("failed to read template: %v", err)
		}
		if strings.TrimSpace(string(data)) != "url,locale" {
			t.Errorf("unexpected URLs template %q", data)
		}

		// A template must parse back as a valid, empty input.
		pf, err := ReadPages(filepath.Join(dir, URLsTemplateName), EncodingUTF8)
		if err != nil {
			t.Fatalf("template is not a valid URLs file: %v", err)
		}
		if len(pf.Pages) != 0 {
			t.Errorf("expected no pages, got %d", len(pf.Pages))
		}
		if _, err := ReadBoosters(filepath.Join(dir, Booster1TemplateName), EncodingUTF8); err != nil {
			t.Fatalf("template is not a valid booster file: %v", err)
		}
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		if _, err := WriteTemplates(dir, false); err != nil {
			t.Fatalf("first write failed: %v", err)
		}
		if _, err := WriteTemplates(dir, false); err == nil {
			t.Fatal("expected error when templates exist")
		}
		if _, err := WriteTemplates(dir, true); err != nil {
			t.Fatalf("forced write failed: %v", err)
		}
	})
}
