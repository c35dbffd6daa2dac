package urlnorm

import (
	"errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("accepts default brand", func(t *testing.T) {
		t.Parallel()
		n, err := New(DefaultBrand)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n.Brand() != "clubmed" {
			t.Errorf("Brand() = %q, want %q", n.Brand(), "clubmed")
		}
	})

	t.Run("lower-cases and trims brand", func(t *testing.T) {
		t.Parallel()
		n, err := New("  ClubMed ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n.Brand() != "clubmed" {
			t.Errorf("Brand() = %q, want %q", n.Brand(), "clubmed")
		}
	})

	invalid := []string{"", "club med", "clubmed.fr", "-clubmed", "https://clubmed"}
	for _, brand := range invalid {
		t.Run("rejects "+brand, func(t *testing.T) {
			t.Parallel()
			if _, err := New(brand); !errors.Is(err, ErrInvalidBrand) {
				t.Errorf("New(%q) error = %v, want ErrInvalidBrand", brand, err)
			}
		})
	}
}

func TestNormalizer_Clean(t *testing.T) {
	t.Parallel()

	n := MustNew(DefaultBrand)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "https with www", in: "https://www.clubmed.fr/p/paris", want: "/p/paris"},
		{name: "http without www", in: "http://clubmed.fr/p/paris", want: "/p/paris"},
		{name: "multi-part suffix", in: "https://www.clubmed.co.uk/l/europe", want: "/l/europe"},
		{name: "com suffix", in: "https://www.clubmed.com/", want: "/"},
		{name: "domain only", in: "https://www.clubmed.fr", want: ""},
		{name: "query kept", in: "https://www.clubmed.fr/s?q=ski", want: "/s?q=ski"},
		{name: "already relative", in: "/p/paris", want: "/p/paris"},
		{name: "surrounding whitespace", in: "  https://www.clubmed.fr/p/paris \t", want: "/p/paris"},
		{name: "upper-case scheme and host", in: "HTTPS://WWW.CLUBMED.FR/p/paris", want: "/p/paris"},
		{name: "foreign domain untouched", in: "https://example.com/p/paris", want: "https://example.com/p/paris"},
		{name: "other subdomain untouched", in: "https://m.clubmed.fr/p/paris", want: "https://m.clubmed.fr/p/paris"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := n.Clean(tt.in); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// TestNormalizer_CleanNeverKeepsBrand checks that cleaned brand URLs carry
// neither the scheme nor the brand domain.
func TestNormalizer_CleanNeverKeepsBrand(t *testing.T) {
	t.Parallel()

	n := MustNew(DefaultBrand)
	inputs := []string{
		"https://www.clubmed.fr/p/paris",
		"http://www.clubmed.be/p/val-thorens",
		"https://clubmed.com.br/r/trancoso",
		"https://www.clubmed.ch/o/offres?x=https://www.clubmed.ch/y",
	}
	for _, in := range inputs {
		got := n.Clean(in)
		if strings.Contains(got, "clubmed.") || strings.Contains(got, "://") {
			t.Errorf("Clean(%q) = %q still contains the brand domain or a scheme", in, got)
		}
		if n.ContainsBrand(got) {
			t.Errorf("ContainsBrand(%q) = true after cleaning", got)
		}
	}
}

func TestIsAbsolute(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"https://www.clubmed.fr/p/paris": true,
		"http://example.com":             true,
		"/p/paris":                       false,
		"www.clubmed.fr/p/paris":         false,
		"ftp://example.com/file":         false,
		"":                               false,
	}
	for in, want := range tests {
		if got := IsAbsolute(in); got != want {
			t.Errorf("IsAbsolute(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNormalizer_IsBrandHost(t *testing.T) {
	t.Parallel()

	n := MustNew(DefaultBrand)
	tests := map[string]bool{
		"www.clubmed.fr":      true,
		"clubmed.co.uk":       true,
		"m.clubmed.fr":        true,
		"www.clubmed.fr:443":  true,
		"WWW.CLUBMED.COM.":    true,
		"example.com":         false,
		"clubmed.example.com": false,
		"notclubmed.fr":       false,
		"":                    false,
	}
	for host, want := range tests {
		if got := n.IsBrandHost(host); got != want {
			t.Errorf("IsBrandHost(%q) = %v, want %v", host, got, want)
		}
	}
}

func TestNormalizer_IsForeign(t *testing.T) {
	t.Parallel()

	n := MustNew(DefaultBrand)
	tests := map[string]bool{
		"https://example.com/p/paris":    true,
		"https://www.clubmed.fr/p/paris": false,
		"https://m.clubmed.fr/p/paris":   false,
		"/p/paris":                       false,
	}
	for in, want := range tests {
		if got := n.IsForeign(in); got != want {
			t.Errorf("IsForeign(%q) = %v, want %v", in, got, want)
		}
	}
}
