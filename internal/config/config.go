package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"golang.org/x/text/language"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "seobooster"

	// DefaultLocale is the locale used when --locale is not given.
	DefaultLocale = "fr-FR"

	// DefaultBrand is the brand label stripped from URLs.
	DefaultBrand = "clubmed"

	// DefaultContentID is the CMS content identifier of the document.
	DefaultContentID = "dcx"

	// DefaultLinkType is the @metadata type of every booster link.
	DefaultLinkType = "#/definitions/textLinkWithRelativeUrlMandatory"

	// DefaultPlaceholderTitle is used when a booster list has no title.
	DefaultPlaceholderTitle = "Default Title"

	// DefaultProbeTimeout bounds each HEAD request of the liveness probe.
	DefaultProbeTimeout = 10 * time.Second

	// DefaultProbeConcurrency keeps the liveness probe serial.
	DefaultProbeConcurrency = 1

	// DefaultUserAgent identifies seobooster in HEAD requests.
	DefaultUserAgent = "seobooster/1.0 (+https://github.com/nao1215/seobooster)"

	// DefaultEmailSignature closes the generated email template.
	DefaultEmailSignature = "[Your Name]"

	// DefaultURLsEncoding is the charset of the URLs input file.
	// Spreadsheet exports of that file are Latin-1.
	DefaultURLsEncoding = "latin1"

	// DefaultBoostersEncoding is the charset of both booster files.
	DefaultBoostersEncoding = "utf-8"
)

// Config holds all options of a generation run.
// It is populated from CLI flags and the configuration file and passed
// through the application explicitly.
type Config struct {
	// URLsFile is the path to the URLs CSV (columns url, locale).
	URLsFile string

	// BoosterFiles are the paths to the two booster CSVs
	// (columns label, url, title).
	BoosterFiles [2]string

	// Locale is the target locale, e.g. "fr-FR".
	Locale string

	// URLsEncoding and BoostersEncoding name the input charsets.
	URLsEncoding     string
	BoostersEncoding string

	// Brand is the brand label stripped from URLs.
	Brand string

	// ContentID is the CMS content identifier.
	ContentID string

	// LinkType is the @metadata type written on every link.
	LinkType string

	// PlaceholderTitle replaces a missing booster title.
	PlaceholderTitle string

	// CheckLive enables the HEAD liveness probe.
	CheckLive bool

	// ProbeTimeout bounds each HEAD request.
	ProbeTimeout time.Duration

	// ProbeConcurrency is the maximum number of HEAD requests in flight.
	ProbeConcurrency int

	// ProbeBaseURL resolves relative page URLs for the probe,
	// e.g. "https://www.clubmed.fr".
	ProbeBaseURL string

	// ProbeHeaders are extra headers sent with each HEAD request.
	ProbeHeaders map[string]string

	// ProxyAddress routes probe traffic through a SOCKS5 proxy ("host:port").
	ProxyAddress string

	// UserAgent is the User-Agent of HEAD requests.
	UserAgent string

	// OutputFile is the path of the migration document. When empty,
	// seo_boosters_<locale>.json in the current directory is used.
	OutputFile string

	// Stdout writes the migration document to stdout instead of a file.
	Stdout bool

	// MarkdownSummary prints the run summary as Markdown.
	MarkdownSummary bool

	// Month and Topic parameterize the email template. No email is
	// produced when Topic is empty.
	Month string
	Topic string

	// EmailFile is where the email template is written. Stdout when empty.
	EmailFile string

	// EmailSignature closes the email template.
	EmailSignature string

	// ConfigFilePath is the explicit configuration file path, if any.
	ConfigFilePath string

	// Verbose enables debug logging.
	Verbose bool
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Locale:           DefaultLocale,
		URLsEncoding:     DefaultURLsEncoding,
		BoostersEncoding: DefaultBoostersEncoding,
		Brand:            DefaultBrand,
		ContentID:        DefaultContentID,
		LinkType:         DefaultLinkType,
		PlaceholderTitle: DefaultPlaceholderTitle,
		ProbeTimeout:     DefaultProbeTimeout,
		ProbeConcurrency: DefaultProbeConcurrency,
		UserAgent:        DefaultUserAgent,
		EmailSignature:   DefaultEmailSignature,
	}
}

// OutputPath returns the migration document path for this run.
func (c *Config) OutputPath() string {
	if c.OutputFile != "" {
		return c.OutputFile
	}
	return OutputFileName(c.Locale)
}

// OutputFileName returns the default document file name for a locale.
func OutputFileName(locale string) string {
	return "seo_boosters_" + locale + ".json"
}

// ApplyLocale overlays the settings a configuration file defines for the
// run's locale. Fields the file leaves empty keep their current value.
func (c *Config) ApplyLocale(lc LocaleConfig) {
	if lc.Brand != "" {
		c.Brand = lc.Brand
	}
	if lc.ContentID != "" {
		c.ContentID = lc.ContentID
	}
	if lc.LinkType != "" {
		c.LinkType = lc.LinkType
	}
	if lc.PlaceholderTitle != "" {
		c.PlaceholderTitle = lc.PlaceholderTitle
	}
	if lc.Probe.BaseURL != "" {
		c.ProbeBaseURL = lc.Probe.BaseURL
	}
	if lc.Probe.Timeout > 0 {
		c.ProbeTimeout = lc.Probe.Timeout
	}
	if lc.Probe.UserAgent != "" {
		c.UserAgent = lc.Probe.UserAgent
	}
	if lc.Probe.Proxy != "" {
		c.ProxyAddress = lc.Probe.Proxy
	}
	if len(lc.Probe.Headers) > 0 {
		if c.ProbeHeaders == nil {
			c.ProbeHeaders = make(map[string]string, len(lc.Probe.Headers))
		}
		for k, v := range lc.Probe.Headers {
			c.ProbeHeaders[k] = v
		}
	}
	if lc.Email.Signature != "" {
		c.EmailSignature = lc.Email.Signature
	}
}

// XDGConfigDir returns the XDG config directory for seobooster.
// On Linux: ~/.config/seobooster
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid and returns the first
// problem found.
func (c *Config) Validate() error {
	if c.URLsFile == "" {
		return ErrNoURLsFile
	}
	for _, f := range c.BoosterFiles {
		if f == "" {
			return ErrNoBoosterFile
		}
	}
	if err := ValidateLocale(c.Locale); err != nil {
		return err
	}
	if c.ContentID == "" {
		return ErrEmptyContentID
	}
	if c.CheckLive {
		if c.ProbeTimeout <= 0 {
			return ErrInvalidProbeTimeout
		}
		if c.ProbeConcurrency <= 0 {
			return ErrInvalidProbeConcurrency
		}
	}
	if c.Stdout && c.OutputFile != "" {
		return ErrConflictingOutputs
	}
	return nil
}

// ValidateLocale checks that locale is a well-formed BCP 47 tag with a
// region, such as "fr-FR".
func ValidateLocale(locale string) error {
	if locale == "" {
		return ErrNoLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return &InvalidLocaleError{Locale: locale, Err: err}
	}
	if _, conf := tag.Region(); conf != language.Exact {
		return &InvalidLocaleError{Locale: locale, Err: ErrLocaleWithoutRegion}
	}
	return nil
}
