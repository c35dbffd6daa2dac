package source

import (
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encoding is the character set of a CSV input.
type Encoding string

const (
	// EncodingUTF8 reads the file as UTF-8.
	EncodingUTF8 Encoding = "utf-8"

	// EncodingLatin1 reads the file as ISO-8859-1.
	EncodingLatin1 Encoding = "latin1"
)

// ParseEncoding maps a user supplied charset name to an Encoding.
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return EncodingUTF8, nil
	case "latin1", "latin-1", "iso-8859-1", "iso8859-1":
		return EncodingLatin1, nil
	default:
		return "", ErrUnknownEncoding
	}
}

// decoder wraps r so that it yields UTF-8 without a byte order mark.
func (e Encoding) decoder(r io.Reader) io.Reader {
	switch e {
	case EncodingLatin1:
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	default:
		return transform.NewReader(r, unicode.UTF8BOM.NewDecoder())
	}
}
