package source

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParsePages(t *testing.T) {
	t.Parallel()

	t.Run("reads url and locale columns", func(t *testing.T) {
		t.Parallel()

		in := "url,locale\nhttps://www.clubmed.fr/p/paris,fr-FR\nhttps://www.clubmed.fr/p/lyon,fr-FR\n"
		pf, err := ParsePages("urls.csv", strings.NewReader(in), EncodingUTF8)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !pf.HasLocale {
			t.Error("expected HasLocale to be true")
		}
		if len(pf.Pages) != 2 {
			t.Fatalf("expected 2 pages, got %d", len(pf.Pages))
		}
		if pf.Pages[0].RawURL != "https://www.clubmed.fr/p/paris" {
			t.Errorf("unexpected RawURL %q", pf.Pages[0].RawURL)
		}
		if pf.Pages[0].URL != "" {
			t.Errorf("expected URL to stay empty before normalization, got %q", pf.Pages[0].URL)
		}
		if pf.Pages[1].Locale != "fr-FR" {
			t.Errorf("unexpected locale %q", pf.Pages[1].Locale)
		}
	})

	t.Run("locale column is optional", func(t *testing.T) {
		t.Parallel()

		pf, err := ParsePages("urls.csv", strings.NewReader("url\n/p/paris\n"), EncodingUTF8)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if pf.HasLocale {
			t.Error("expected HasLocale to be false")
		}
		if len(pf.Pages) != 1 {
			t.Fatalf("expected 1 page, got %d", len(pf.Pages))
		}
	})

	t.Run("header matching ignores case, order, spaces and BOM", func(t *testing.T) {
		t.Parallel()

		in := "\ufeffLocale, URL \nfr-FR,/p/paris\n"
		pf, err := ParsePages("urls.csv", strings.NewReader(in), EncodingUTF8)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if pf.Pages[0].RawURL != "/p/paris" || pf.Pages[0].Locale != "fr-FR" {
			t.Errorf("unexpected page %+v", pf.Pages[0])
		}
	})

	t.Run("skips blank url rows and short rows", func(t *testing.T) {
		t.Parallel()

		in := "url,locale\n,fr-FR\n/p/paris\n  ,fr-FR\n"
		pf, err := ParsePages("urls.csv", strings.NewReader(in), EncodingUTF8)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(pf.Pages) != 1 {
			t.Fatalf("expected 1 page, got %d: %+v", len(pf.Pages), pf.Pages)
		}
		if pf.Pages[0].Locale != "" {
			t.Errorf("expected empty locale for short row, got %q", pf.Pages[0].Locale)
		}
	})

	t.Run("decodes Latin-1", func(t *testing.T) {
		t.Parallel()

		in := "url,locale\n/p/ch\xe2teau,fr-FR\n"
		pf, err := ParsePages("urls.csv", strings.NewReader(in), EncodingLatin1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if pf.Pages[0].RawURL != "/p/château" {
			t.Errorf("expected decoded URL, got %q", pf.Pages[0].RawURL)
		}
	})

	t.Run("missing url column", func(t *testing.T) {
		t.Parallel()

		_, err := ParsePages("urls.csv", strings.NewReader("link,locale\n/p/paris,fr-FR\n"), EncodingUTF8)
		if !errors.Is(err, ErrMissingColumn) {
			t.Fatalf("expected ErrMissingColumn, got %v", err)
		}
		var mc *MissingColumnError
		if !errors.As(err, &mc) {
			t.Fatalf("expected MissingColumnError, got %T", err)
		}
		if mc.Column != "url" || mc.File != "urls.csv" {
			t.Errorf("unexpected error fields %+v", mc)
		}
	})

	t.Run("empty file", func(t *testing.T) {
		t.Parallel()

		_, err := ParsePages("urls.csv", strings.NewReader(""), EncodingUTF8)
		if !errors.Is(err, ErrEmptyFile) {
			t.Fatalf("expected ErrEmptyFile, got %v", err)
		}
	})

	t.Run("malformed CSV propagates", func(t *testing.T) {
		t.Parallel()

		_, err := ParsePages("urls.csv", strings.NewReader("url\n\"unterminated\n"), EncodingUTF8)
		if err == nil {
			t.Fatal("expected error for malformed CSV")
		}
		if IsMissingColumn(err) {
			t.Errorf("did not expect a missing column error: %v", err)
		}
	})
}

func TestParseBoosters(t *testing.T) {
	t.Parallel()

	t.Run("reads label url and title", func(t *testing.T) {
		t.Parallel()

		in := "label,url,title\nParis,https://www.clubmed.fr/p/paris,Nos villes\nLyon,/p/lyon,\n"
		list, err := ParseBoosters("b0.csv", strings.NewReader(in), EncodingUTF8)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if list.Len() != 2 {
			t.Fatalf("expected 2 rows, got %d", list.Len())
		}
		if list.FirstTitle() != "Nos villes" {
			t.Errorf("unexpected first title %q", list.FirstTitle())
		}
		if list.Rows[1].Label != "Lyon" || list.Rows[1].URL != "/p/lyon" {
			t.Errorf("unexpected row %+v", list.Rows[1])
		}
	})

	t.Run("header only yields an empty list", func(t *testing.T) {
		t.Parallel()

		list, err := ParseBoosters("b0.csv", strings.NewReader("label,url,title\n"), EncodingUTF8)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if list.Len() != 0 || list.FirstTitle() != "" {
			t.Errorf("expected empty list, got %+v", list)
		}
	})

	for _, column := range []string{"label", "url", "title"} {
		t.Run("missing "+column+" column", func(t *testing.T) {
			t.Parallel()

			header := make([]string, 0, 2)
			for _, c := range BoostersHeader {
				if c != column {
					header = append(header, c)
				}
			}
			in := strings.Join(header, ",") + "\na,b\n"
			_, err := ParseBoosters("b1.csv", strings.NewReader(in), EncodingUTF8)
			var mc *MissingColumnError
			if !errors.As(err, &mc) {
				t.Fatalf("expected MissingColumnError, got %v", err)
			}
			if mc.Column != column {
				t.Errorf("expected missing column %q, got %q", column, mc.Column)
			}
		})
	}
}

func TestReadFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	urls := filepath.Join(dir, "urls.csv")
	booster := filepath.Join(dir, "b0.csv")
	if err := os.WriteFile(urls, []byte("url,locale\n/p/paris,fr-FR\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(booster, []byte("label,url,title\nParis,/p/paris,T\n"), 0600); err != nil {
		t.Fatal(err)
	}

	pf, err := ReadPages(urls, EncodingLatin1)
	if err != nil {
		t.Fatalf("ReadPages: %v", err)
	}
	if len(pf.Pages) != 1 {
		t.Errorf("expected 1 page, got %d", len(pf.Pages))
	}

	list, err := ReadBoosters(booster, EncodingUTF8)
	if err != nil {
		t.Fatalf("ReadBoosters: %v", err)
	}
	if list.Len() != 1 {
		t.Errorf("expected 1 row, got %d", list.Len())
	}

	if _, err := ReadPages(filepath.Join(dir, "missing.csv"), EncodingUTF8); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestLocales(t *testing.T) {
	t.Parallel()

	in := "url,locale\n/a,fr-FR\n/b,fr-BE\n/c,\n/d,fr-FR\n"
	pf, err := ParsePages("urls.csv", strings.NewReader(in), EncodingUTF8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := Locales(pf.Pages)
	want := []string{"fr-FR", "fr-BE"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Locales() = %v, want %v", got, want)
	}
}

func TestParseEncoding(t *testing.T) {
	t.Parallel()

	tests := map[string]Encoding{
		"":           EncodingUTF8,
		"UTF-8":      EncodingUTF8,
		"utf8":       EncodingUTF8,
		"latin1":     EncodingLatin1,
		"ISO-8859-1": EncodingLatin1,
	}
	for in, want := range tests {
		got, err := ParseEncoding(in)
		if err != nil {
			t.Errorf("ParseEncoding(%q) error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseEncoding(%q) = %q, want %q", in, got, want)
		}
	}

	if _, err := ParseEncoding("ebcdic"); !errors.Is(err, ErrUnknownEncoding) {
		t.Errorf("expected ErrUnknownEncoding, got %v", err)
	}
}
