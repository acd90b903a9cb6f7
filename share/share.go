package share

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/aerissecure/roadmap"
	"github.com/charmbracelet/log"
	lzstring "github.com/daku10/go-lz-string"
)

var (
	// ErrNoPayload is returned when a location carries no shared document.
	ErrNoPayload = errors.New("no shared data in location")

	// ErrEmptyPayload is returned when a payload decompresses to nothing.
	ErrEmptyPayload = errors.New("share payload decompressed to nothing")

	// ErrMalformed is returned when the decompressed text is not a JSON object.
	ErrMalformed = errors.New("share payload is not a document")
)

// ToShareString serializes d in compact form and compresses it into
// URL-safe text.
func ToShareString(d *roadmap.Data) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(Compact(d)); err != nil {
		return "", fmt.Errorf("encoding share payload: %w", err)
	}
	out, err := lzstring.CompressToEncodedURIComponent(strings.TrimSuffix(buf.String(), "\n"))
	if err != nil {
		return "", fmt.Errorf("compressing share payload: %w", err)
	}
	return out, nil
}

// Decode reverses ToShareString. It also accepts payloads written with the
// full field names.
func Decode(s string) (*roadmap.Data, error) {
	text, err := lzstring.DecompressFromEncodedURIComponent(s)
	if err != nil {
		return nil, fmt.Errorf("decompressing share payload: %w", err)
	}
	if text == "" {
		return nil, ErrEmptyPayload
	}
	return decodeJSON([]byte(text))
}

func decodeJSON(text []byte) (*roadmap.Data, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(text, &probe); err != nil {
		return nil, fmt.Errorf("parsing share payload: %w", err)
	}
	if probe == nil {
		return nil, ErrMalformed
	}

	// Either key marks the compact form. A payload carrying only one of
	// them decodes with the other container empty.
	_, hasGoals := probe["gs"]
	_, hasItems := probe["ui"]
	if hasGoals || hasItems {
		var c CompactData
		if err := json.Unmarshal(text, &c); err != nil {
			return nil, fmt.Errorf("parsing compact payload: %w", err)
		}
		return Expand(c)
	}

	// Full field names; dates are revived by time.Time's JSON decoding.
	var d roadmap.Data
	if err := json.Unmarshal(text, &d); err != nil {
		return nil, fmt.Errorf("parsing legacy payload: %w", err)
	}
	return roadmap.Normalized(&d), nil
}

// FromShareString is Decode for callers that treat a broken link as "no
// shared data": every failure, including a panic in the decompressor,
// yields nil.
func FromShareString(s string) (data *roadmap.Data) {
	defer func() {
		if r := recover(); r != nil {
			log.Debug("share payload rejected", "panic", r)
			data = nil
		}
	}()

	d, err := Decode(s)
	if err != nil {
		log.Debug("share payload rejected", "err", err)
		return nil
	}
	return d
}

// ShareURL returns base with the document placed in the "#data=" fragment.
// Any legacy "data" query parameter is removed.
func ShareURL(base string, d *roadmap.Data) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parsing base url: %w", err)
	}
	payload, err := ToShareString(d)
	if err != nil {
		return "", err
	}

	q := u.Query()
	q.Del(queryKey)
	u.RawQuery = q.Encode()
	u.Fragment = fragmentPrefix + payload
	u.RawFragment = ""
	return u.String(), nil
}
