package config

import (
	"errors"
	"fmt"
)

// Configuration validation errors returned by Config.Validate.
var (
	// ErrNoURLsFile is returned when --urls is missing.
	ErrNoURLsFile = errors.New("no URLs file specified: use --urls")

	// ErrNoBoosterFile is returned when --booster0 or --booster1 is missing.
	ErrNoBoosterFile = errors.New("both SEO booster files are required: use --booster0 and --booster1")

	// ErrNoLocale is returned when the locale is empty.
	ErrNoLocale = errors.New("no locale specified: use --locale (e.g. fr-FR)")

	// ErrLocaleWithoutRegion is wrapped by InvalidLocaleError for tags such as "fr".
	ErrLocaleWithoutRegion = errors.New("locale must include a region (e.g. fr-FR)")

	// ErrEmptyContentID is returned when the content ID is blank.
	ErrEmptyContentID = errors.New("content ID must not be empty")

	// ErrInvalidProbeTimeout is returned when the probe timeout is not positive.
	ErrInvalidProbeTimeout = errors.New("invalid probe timeout: must be positive")

	// ErrInvalidProbeConcurrency is returned when the probe concurrency is not positive.
	ErrInvalidProbeConcurrency = errors.New("invalid probe concurrency: must be positive")

	// ErrConflictingOutputs is returned when both --stdout and --output are given.
	ErrConflictingOutputs = errors.New("conflicting outputs: --stdout and --output cannot be used together")
)

// InvalidLocaleError reports a locale that is not a usable BCP 47 tag.
type InvalidLocaleError struct {
	Locale string
	Err    error
}

// Error implements error.
func (e *InvalidLocaleError) Error() string {
	return fmt.Sprintf("invalid locale %q: %v", e.Locale, e.Err)
}

// Unwrap returns the underlying parse error.
func (e *InvalidLocaleError) Unwrap() error {
	return e.Err
}
