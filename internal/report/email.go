package report

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/nao1215/markdown"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrInvalidMonth is returned for a month that is not an English month name.
var ErrInvalidMonth = errors.New("invalid month, expected an English month name such as \"March\"")

// DefaultSignature closes an email without a configured signature.
const DefaultSignature = "[Your Name]"

var monthTitle = cases.Title(language.English)

// NormalizeMonth returns the canonical English name of month ("march" and
// "MARCH" become "March"). An empty month means the month of now.
func NormalizeMonth(month string, now time.Time) (string, error) {
	month = strings.TrimSpace(month)
	if month == "" {
		return now.Month().String(), nil
	}
	titled := monthTitle.String(strings.ToLower(month))
	for m := time.January; m <= time.December; m++ {
		if m.String() == titled {
			return titled, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMonth, month)
}

// Email is the hand-off email that accompanies a migration document.
type Email struct {
	Locale      string
	Month       string
	Topic       string
	GeneratedAt time.Time
	Signature   string

	// Attachment is the document file name and Digest its SHA3-256.
	// Both are optional.
	Attachment string
	Digest     string
}

// Subject returns "SEO Booster Request - <locale> - <month> - <topic>".
func (e *Email) Subject() string {
	return fmt.Sprintf("SEO Booster Request - %s - %s - %s", e.Locale, e.Month, e.Topic)
}

// EmailWriter writes the email template.
type EmailWriter struct {
	baseWriter
}

// NewEmailWriter creates an EmailWriter that outputs to the given writer.
func NewEmailWriter(output io.Writer) *EmailWriter {
	return &EmailWriter{baseWriter: newBaseWriter(output)}
}

// WriteEmail writes the subject line and body of e.
func (w *EmailWriter) WriteEmail(e *Email) (int, error) {
	signature := e.Signature
	if signature == "" {
		signature = DefaultSignature
	}

	details := []string{
		"**Locale**: " + e.Locale,
		"**Month**: " + e.Month,
		"**Topic**: " + e.Topic,
		"**Generated on**: " + e.GeneratedAt.Format(dateLayout),
	}
	if e.Attachment != "" {
		details = append(details, "**File**: "+e.Attachment)
	}
	if e.Digest != "" {
		details = append(details, "**SHA3-256**: "+e.Digest)
	}

	md := markdown.NewMarkdown(w.output)
	md.PlainTextf("Subject: %s", e.Subject())
	md.PlainText("")
	md.PlainText("Hello Team,")
	md.PlainText("")
	md.PlainText("Please find attached the JSON file for the SEO Booster update.")
	md.PlainText("")
	md.BulletList(details...)
	md.PlainText("")
	md.PlainText("Let me know if you need any adjustments.")
	md.PlainText("")
	md.PlainText("Best regards,")
	md.PlainText(signature)

	return len(md.String()), md.Build()
}
