package config

import "time"

// ProbeSettings configures the liveness probe in the configuration file.
type ProbeSettings struct {
	// BaseURL resolves relative page URLs, e.g. "https://www.clubmed.fr".
	BaseURL string `yaml:"baseURL,omitempty"`

	// Timeout bounds each HEAD request.
	Timeout time.Duration `yaml:"timeout,omitempty"`

	// UserAgent overrides the default User-Agent.
	UserAgent string `yaml:"userAgent,omitempty"`

	// Proxy is a SOCKS5 proxy address in "host:port" form.
	Proxy string `yaml:"proxy,omitempty"`

	// Headers are extra request headers, e.g. a staging Authorization.
	Headers map[string]string `yaml:"headers,omitempty"`
}

// EmailSettings configures the hand-off email template.
type EmailSettings struct {
	// Signature closes the email body.
	Signature string `yaml:"signature,omitempty"`
}

// LocaleConfig holds settings that may differ between locales.
type LocaleConfig struct {
	Brand            string        `yaml:"brand,omitempty"`
	ContentID        string        `yaml:"contentId,omitempty"`
	LinkType         string        `yaml:"linkType,omitempty"`
	PlaceholderTitle string        `yaml:"placeholderTitle,omitempty"`
	Probe            ProbeSettings `yaml:"probe,omitempty"`
	Email            EmailSettings `yaml:"email,omitempty"`
}

// File represents the structure of the .seobooster configuration file.
type File struct {
	// Defaults apply to every locale unless overridden.
	Defaults LocaleConfig `yaml:"defaults,omitempty"`

	// Locales maps a locale (e.g. "en-GB") to its overrides.
	Locales map[string]LocaleConfig `yaml:"locales,omitempty"`
}

// GetLocaleConfig returns the configuration for a locale, merging the
// locale-specific entry over the defaults.
func (cf *File) GetLocaleConfig(locale string) LocaleConfig {
	result := cf.Defaults
	override, ok := cf.Locales[locale]
	if !ok {
		return result
	}

	if override.Brand != "" {
		result.Brand = override.Brand
	}
	if override.ContentID != "" {
		result.ContentID = override.ContentID
	}
	if override.LinkType != "" {
		result.LinkType = override.LinkType
	}
	if override.PlaceholderTitle != "" {
		result.PlaceholderTitle = override.PlaceholderTitle
	}
	if override.Probe.BaseURL != "" {
		result.Probe.BaseURL = override.Probe.BaseURL
	}
	if override.Probe.Timeout > 0 {
		result.Probe.Timeout = override.Probe.Timeout
	}
	if override.Probe.UserAgent != "" {
		result.Probe.UserAgent = override.Probe.UserAgent
	}
	if override.Probe.Proxy != "" {
		result.Probe.Proxy = override.Probe.Proxy
	}
	if len(override.Probe.Headers) > 0 {
		headers := make(map[string]string, len(result.Probe.Headers)+len(override.Probe.Headers))
		for k, v := range result.Probe.Headers {
			headers[k] = v
		}
		for k, v := range override.Probe.Headers {
			headers[k] = v
		}
		result.Probe.Headers = headers
	}
	if override.Email.Signature != "" {
		result.Email.Signature = override.Email.Signature
	}

	return result
}
