package share

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/aerissecure/roadmap"
)

const (
	fragmentPrefix = "data="
	queryKey       = "data"
)

// Location is the part of a page address that can carry a shared document.
type Location struct {
	Fragment string // with or without the leading '#'
	Query    string // with or without the leading '?'
}

// LocationFromURL extracts the fragment and raw query of u.
func LocationFromURL(u *url.URL) Location {
	return Location{Fragment: u.Fragment, Query: u.RawQuery}
}

// ParseLocation parses rawURL into a Location.
func ParseLocation(rawURL string) (Location, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return Location{}, fmt.Errorf("parsing url: %w", err)
	}
	return LocationFromURL(u), nil
}

// Payload returns the compressed document carried by loc. The fragment wins
// when it starts with "data=", even if nothing follows; otherwise the "data"
// query parameter is used.
func Payload(loc Location) (string, bool) {
	frag := strings.TrimPrefix(loc.Fragment, "#")
	if strings.HasPrefix(frag, fragmentPrefix) {
		p := frag[len(fragmentPrefix):]
		return p, p != ""
	}

	values, _ := url.ParseQuery(strings.TrimPrefix(loc.Query, "?"))
	// Query decoding turns '+' into ' '; '+' is part of the payload alphabet.
	p := strings.ReplaceAll(values.Get(queryKey), " ", "+")
	return p, p != ""
}

// Result is the outcome of resolving a location.
type Result struct {
	Data       *roadmap.Data
	HasPayload bool // false: nothing shared; true with nil Data: broken link
}

// ResolveResult reconstructs the shared document in loc.
func ResolveResult(loc Location) Result {
	p, ok := Payload(loc)
	if !ok {
		return Result{}
	}
	return Result{Data: FromShareString(p), HasPayload: true}
}

// Resolve returns the shared document in loc, or nil when there is none or
// it cannot be decoded.
func Resolve(loc Location) *roadmap.Data {
	return ResolveResult(loc).Data
}
