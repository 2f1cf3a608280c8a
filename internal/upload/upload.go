// Package upload converts uploaded files into embeddable data URIs for
// service, blog and avatar images.
package upload

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// MaxSize is the upload size ceiling.
const MaxSize = 5 * 1024 * 1024 // 5 MB

var (
	// ErrNotAnImage is returned when the sniffed content type is not image/*.
	ErrNotAnImage = errors.New("file is not an image")

	// ErrTooLarge is returned when the file exceeds MaxSize.
	ErrTooLarge = errors.New("file exceeds the 5 MB limit")
)

// DataURI validates the file content and returns it as a base64 data URI.
// The MIME type is sniffed from the content rather than trusted from the
// client. On any error the input is discarded and no state changes.
func DataURI(data []byte) (string, error) {
	if len(data) > MaxSize {
		return "", ErrTooLarge
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", ErrNotAnImage
	}

	return fmt.Sprintf(
		"data:%s;base64,%s",
		mtype.String(),
		base64.StdEncoding.EncodeToString(data),
	), nil
}

// IsDataURI reports whether the stored avatar or image value is an embedded
// image payload rather than a symbolic glyph.
func IsDataURI(value string) bool {
	return strings.HasPrefix(value, "data:")
}
