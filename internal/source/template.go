package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Template file names written by WriteTemplates.
const (
	URLsTemplateName     = "urls_template.csv"
	Booster0TemplateName = "seo_booster_0_template.csv"
	Booster1TemplateName = "seo_booster_1_template.csv"
)

// Template describes one header-only CSV template.
type Template struct {
	Name   string
	Header []string
}

// Templates returns the three input templates.
func Templates() []Template {
	return []Template{
		{Name: URLsTemplateName, Header: PagesHeader},
		{Name: Booster0TemplateName, Header: BoostersHeader},
		{Name: Booster1TemplateName, Header: BoostersHeader},
	}
}

// WriteTemplate writes a UTF-8 CSV containing only header to w.
func WriteTemplate(w io.Writer, header []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// WriteTemplates writes every template into dir and returns the written
// paths. Existing files are kept unless force is true.
func WriteTemplates(dir string, force bool) ([]string, error) {
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	written := make([]string, 0, 3)
	for _, tpl := range Templates() {
		path := filepath.Join(dir, tpl.Name)
		if !force {
			if _, err := os.Stat(path); err == nil {
				return written, fmt.Errorf("template already exists: %s (use -f to overwrite)", path)
			}
		}

		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided output directory
		if err != nil {
			return written, fmt.Errorf("failed to create template: %w", err)
		}
		if err := WriteTemplate(f, tpl.Header); err != nil {
			_ = f.Close()
			return written, fmt.Errorf("failed to write template %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}
