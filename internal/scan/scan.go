// Package scan parses raw scanned QR/NFC payloads into a candidate
// (place id, token) pair. Parsing is pure: validation against the place
// registry is the caller's job.
package scan

import (
	"errors"
	"net/url"
	"strings"
)

// Decode errors, one per missing-field shape so the UI can name what was
// wrong with the code it scanned.
var (
	ErrMissingLocationID  = errors.New("missing_location_id")
	ErrMissingToken       = errors.New("missing_token")
	ErrUnrecognizedFormat = errors.New("unrecognized_format")
)

// Payload is the decoded content of a scanned code.
type Payload struct {
	PlaceID string
	Token   string
}

// Decode parses a raw scanned string. Two formats are accepted:
//
//	https://<host>/checkin?location_id=<id>&token=<token>
//	<id>|<token>
//
// The URL form is tried first; anything that is not an absolute URL falls
// back to the pipe form.
func Decode(raw string) (Payload, error) {
	raw = strings.TrimSpace(raw)

	if u, err := url.Parse(raw); err == nil && u.Scheme != "" && u.Host != "" {
		q := u.Query()
		p := Payload{
			PlaceID: q.Get("location_id"),
			Token:   q.Get("token"),
		}
		if p.PlaceID == "" {
			return Payload{}, ErrMissingLocationID
		}
		if p.Token == "" {
			return Payload{}, ErrMissingToken
		}
		return p, nil
	}

	if !strings.Contains(raw, "|") {
		return Payload{}, ErrUnrecognizedFormat
	}
	parts := strings.Split(raw, "|")
	if len(parts) != 2 {
		return Payload{}, ErrUnrecognizedFormat
	}
	p := Payload{
		PlaceID: strings.TrimSpace(parts[0]),
		Token:   strings.TrimSpace(parts[1]),
	}
	if p.PlaceID == "" {
		return Payload{}, ErrMissingLocationID
	}
	if p.Token == "" {
		return Payload{}, ErrMissingToken
	}
	return p, nil
}

// BuildURL produces the canonical check-in URL embedded in generated QR
// codes. Decode is a left-inverse of BuildURL.
func BuildURL(host, placeID, token string) string {
	q := url.Values{}
	q.Set("location_id", placeID)
	q.Set("token", token)
	u := url.URL{
		Scheme:   "https",
		Host:     host,
		Path:     "/checkin",
		RawQuery: q.Encode(),
	}
	return u.String()
}
