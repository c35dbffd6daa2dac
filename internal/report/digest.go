package report

import (
	"encoding/hex"

	"github.com/nao1215/seobooster/internal/model"
	"golang.org/x/crypto/sha3"
)

// Digest returns the hex SHA3-256 of the encoded document, so that the
// file attached to the email can be matched with the one generated.
func Digest(doc *model.Document) (string, error) {
	data, err := EncodeDocument(doc)
	if err != nil {
		return "", err
	}
	return DigestBytes(data), nil
}

// DigestBytes returns the hex SHA3-256 of data.
func DigestBytes(data []byte) string {
	sum := sha3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ShortDigest returns the first 12 characters of a digest.
func ShortDigest(digest string) string {
	if len(digest) <= 12 {
		return digest
	}
	return digest[:12]
}
