package urlnorm

import (
	"errors"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// DefaultBrand is the brand used when none is configured.
const DefaultBrand = "clubmed"

// ErrInvalidBrand is returned when the brand is not a single DNS label.
var ErrInvalidBrand = errors.New("invalid brand: must be a single DNS label such as \"clubmed\"")

// brandLabel matches a single lower-case DNS label.
var brandLabel = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

// Normalizer strips the brand domain prefix from URLs.
type Normalizer struct {
	brand  string
	prefix *regexp.Regexp
}

// New creates a Normalizer for the given brand.
func New(brand string) (*Normalizer, error) {
	brand = strings.ToLower(strings.TrimSpace(brand))
	if !brandLabel.MatchString(brand) {
		return nil, ErrInvalidBrand
	}
	return &Normalizer{
		brand: brand,
		// scheme + optional www. + brand + any suffix made of letters and dots
		prefix: regexp.MustCompile(`(?i)https?://(www\.)?` + regexp.QuoteMeta(brand) + `\.[a-z.]+`),
	}, nil
}

// MustNew is like New but panics on an invalid brand.
func MustNew(brand string) *Normalizer {
	n, err := New(brand)
	if err != nil {
		panic(err)
	}
	return n
}

// Brand returns the configured brand label.
func (n *Normalizer) Brand() string {
	return n.brand
}

// Clean removes every occurrence of the brand domain prefix from raw and
// trims surrounding whitespace. URLs on other domains are returned as is.
func (n *Normalizer) Clean(raw string) string {
	return n.prefix.ReplaceAllString(strings.TrimSpace(raw), "")
}

// ContainsBrand reports whether s still carries a brand domain prefix.
func (n *Normalizer) ContainsBrand(s string) bool {
	return n.prefix.MatchString(s)
}

// IsAbsolute reports whether raw has an http or https scheme.
func IsAbsolute(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// IsBrandHost reports whether host belongs to the brand, i.e. its
// registrable domain is "<brand>.<public suffix>".
func (n *Normalizer) IsBrandHost(host string) bool {
	host = strings.ToLower(strings.TrimSuffix(host, "."))
	if h, _, ok := strings.Cut(host, ":"); ok {
		host = h
	}
	etld1, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return false
	}
	label, _, _ := strings.Cut(etld1, ".")
	return label == n.brand
}

// IsForeign reports whether raw is an absolute URL pointing outside the
// brand domain. Such URLs survive Clean unchanged and will never match a
// CMS page.
func (n *Normalizer) IsForeign(raw string) bool {
	if !IsAbsolute(raw) {
		return false
	}
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return !n.IsBrandHost(u.Host)
}
