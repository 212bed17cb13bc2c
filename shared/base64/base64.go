// Package base64 reads inline data URLs of the form data:<type>;base64,<payload>.
package base64

import (
	stdBase64 "encoding/base64"
	"strings"
)

const (
	dataPrefix   = "data:"
	base64Marker = ";base64,"
)

type DataURL struct {
	ContentType string
	Payload     string
}

// Parse splits a data URL. ok is false for anything not base64 encoded.
func Parse(value string) (DataURL, bool) {
	rest, found := strings.CutPrefix(value, dataPrefix)
	if !found {
		return DataURL{}, false
	}

	contentType, payload, found := strings.Cut(rest, base64Marker)
	if !found || contentType == "" {
		return DataURL{}, false
	}

	return DataURL{ContentType: contentType, Payload: payload}, true
}

func GetContentType(value string) string {
	url, _ := Parse(value)

	return url.ContentType
}

// DecodedLen is the byte size of the payload, or the raw length when value is not a data URL.
func DecodedLen(value string) int {
	url, ok := Parse(value)
	if !ok {
		return len(value)
	}

	return stdBase64.StdEncoding.DecodedLen(len(url.Payload)) - strings.Count(url.Payload, "=")
}

func (d DataURL) Decode() ([]byte, error) {
	return stdBase64.StdEncoding.DecodeString(d.Payload) //nolint:wrapcheck
}
