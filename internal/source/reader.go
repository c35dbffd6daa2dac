package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nao1215/seobooster/internal/model"
)

// Column names of the input files.
const (
	ColumnURL    = "url"
	ColumnLocale = "locale"
	ColumnLabel  = "label"
	ColumnTitle  = "title"
)

// PagesHeader and BoostersHeader are the template headers of the inputs.
var (
	PagesHeader    = []string{ColumnURL, ColumnLocale}
	BoostersHeader = []string{ColumnLabel, ColumnURL, ColumnTitle}
)

// table is a parsed CSV file with a header index.
type table struct {
	name   string
	header []string
	index  map[string]int
	rows   [][]string
}

// readTable parses a CSV stream into a table.
func readTable(name string, r io.Reader, enc Encoding) (*table, error) {
	reader := csv.NewReader(enc.decoder(r))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read CSV: %w", name, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyFile)
	}

	t := &table{
		name:   name,
		header: records[0],
		index:  make(map[string]int, len(records[0])),
		rows:   records[1:],
	}
	for i, col := range records[0] {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(col, "\ufeff")))
		if _, dup := t.index[key]; !dup {
			t.index[key] = i
		}
	}
	return t, nil
}

// require checks that every column is present in the header.
func (t *table) require(columns ...string) error {
	for _, c := range columns {
		if _, ok := t.index[c]; !ok {
			return &MissingColumnError{File: t.name, Column: c, Header: t.header}
		}
	}
	return nil
}

// has reports whether the header contains column.
func (t *table) has(column string) bool {
	_, ok := t.index[column]
	return ok
}

// get returns the trimmed value of column in row, or "" when the row is short.
func (t *table) get(row []string, column string) string {
	i, ok := t.index[column]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// PageFile is the parsed URLs input.
type PageFile struct {
	// Pages are the rows with a non-blank url, in file order.
	Pages []model.Page

	// HasLocale reports whether the header has a locale column.
	HasLocale bool
}

// ParsePages reads the URLs input. The url column is required, locale is optional.
func ParsePages(name string, r io.Reader, enc Encoding) (*PageFile, error) {
	t, err := readTable(name, r, enc)
	if err != nil {
		return nil, err
	}
	if err := t.require(ColumnURL); err != nil {
		return nil, err
	}

	pages := make([]model.Page, 0, len(t.rows))
	for _, row := range t.rows {
		u := t.get(row, ColumnURL)
		if u == "" {
			continue
		}
		pages = append(pages, model.Page{
			RawURL: u,
			Locale: t.get(row, ColumnLocale),
		})
	}
	return &PageFile{Pages: pages, HasLocale: t.has(ColumnLocale)}, nil
}

// ParseBoosters reads a booster input. Columns label, url and title are required.
func ParseBoosters(name string, r io.Reader, enc Encoding) (model.BoosterList, error) {
	t, err := readTable(name, r, enc)
	if err != nil {
		return model.BoosterList{}, err
	}
	if err := t.require(BoostersHeader...); err != nil {
		return model.BoosterList{}, err
	}

	list := model.BoosterList{Rows: make([]model.BoosterRow, 0, len(t.rows))}
	for _, row := range t.rows {
		u := t.get(row, ColumnURL)
		if u == "" {
			continue
		}
		list.Rows = append(list.Rows, model.BoosterRow{
			Label: t.get(row, ColumnLabel),
			URL:   u,
			Title: t.get(row, ColumnTitle),
		})
	}
	return list, nil
}

// ReadPages opens and parses the URLs file at path.
func ReadPages(path string, enc Encoding) (*PageFile, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to open URLs file: %w", err)
	}
	defer f.Close()

	return ParsePages(path, f, enc)
}

// ReadBoosters opens and parses the booster file at path.
func ReadBoosters(path string, enc Encoding) (model.BoosterList, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		return model.BoosterList{}, fmt.Errorf("failed to open booster file: %w", err)
	}
	defer f.Close()

	return ParseBoosters(path, f, enc)
}

// Locales returns the distinct non-empty locale values in order of first
// appearance.
func Locales(pages []model.Page) []string {
	seen := make(map[string]bool)
	locales := make([]string, 0)
	for _, p := range pages {
		if p.Locale == "" || seen[p.Locale] {
			continue
		}
		seen[p.Locale] = true
		locales = append(locales, p.Locale)
	}
	return locales
}

// IsMissingColumn reports whether err is a MissingColumnError.
func IsMissingColumn(err error) bool {
	return errors.Is(err, ErrMissingColumn)
}
