// Package branding decodes the logo payload served by the /config endpoint.
// The payload is either a ready-to-use data URI or a hex dump of raw image
// bytes, depending on how the logo was uploaded.
package branding

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedLogo marks a logo payload that is neither a data URI nor valid
// even-length hex.
var ErrMalformedLogo = errors.New("malformed logo payload")

const dataURIPrefix = "data:image"

// Logo is a displayable logo. Exactly one of DataURI or Data is populated.
type Logo struct {
	// DataURI is set when the payload already was a data:image URI.
	DataURI string
	// Data holds decoded raw image bytes, typed via ContentType.
	Data        []byte
	ContentType string
}

// DecodeLogo interprets the raw payload from the config endpoint. An empty
// payload means "no logo" and returns nil without error.
func DecodeLogo(raw string) (*Logo, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if strings.HasPrefix(raw, dataURIPrefix) {
		return &Logo{DataURI: raw}, nil
	}
	if len(raw)%2 != 0 {
		return nil, fmt.Errorf("%w: odd-length hex string", ErrMalformedLogo)
	}
	data, err := hex.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedLogo, err)
	}
	// Stored logos carry no type information; the uploads are PNGs.
	return &Logo{Data: data, ContentType: "image/png"}, nil
}

// URI returns something an <img> tag can consume: the original data URI, or
// the decoded bytes re-wrapped as a base64 data URI.
func (l *Logo) URI() string {
	if l == nil {
		return ""
	}
	if l.DataURI != "" {
		return l.DataURI
	}
	return "data:" + l.ContentType + ";base64," + base64.StdEncoding.EncodeToString(l.Data)
}
