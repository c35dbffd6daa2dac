package pipeline

import (
	"errors"
	"fmt"
	"strings"
)

// ErrLocaleMismatch is matched by every *LocaleMismatchError.
var ErrLocaleMismatch = errors.New("locale does not match the URLs file")

// LocaleMismatchError is returned when the requested locale is not among
// the locale column values of the URLs file.
type LocaleMismatchError struct {
	// Locale is the requested locale.
	Locale string

	// Available are the locales found in the file, in order of appearance.
	Available []string
}

func (e *LocaleMismatchError) Error() string {
	available := "none"
	if len(e.Available) > 0 {
		available = strings.Join(e.Available, ", ")
	}
	return fmt.Sprintf("locale '%s' does not match the uploaded file. Available locales: %s", e.Locale, available)
}

// Is reports whether target is ErrLocaleMismatch.
func (e *LocaleMismatchError) Is(target error) bool {
	return target == ErrLocaleMismatch
}
