// Package search holds the query rules shared by the search input and the
// results page: how a typed query becomes a navigation target, how it is read
// back from a location, and the state machine that tracks the round trip.
package search

import (
	"net/url"
	"strings"

	nudleerrors "github.com/alexisbeaulieu97/nudle/pkg/errors"
)

const (
	// ResultsPath is the location of the results page.
	ResultsPath = "/search"
	// Param is the query parameter carrying the encoded query.
	Param = "q"
)

// Normalize trims the surrounding whitespace a committed query must not carry.
func Normalize(q string) string {
	return strings.TrimSpace(q)
}

// Encode percent-encodes a query component. Spaces become %20 rather than
// '+', so the result survives both form and strict URI decoders.
func Encode(q string) string {
	return strings.ReplaceAll(url.QueryEscape(q), "+", "%20")
}

// Target builds the results location for q. ok is false, and no target is
// built, when the trimmed query is empty.
func Target(q string) (target string, ok bool) {
	trimmed := Normalize(q)
	if trimmed == "" {
		return "", false
	}
	return ResultsPath + "?" + Param + "=" + Encode(trimmed), true
}

// Decode reads the first value of name from a raw query string. Absence is
// reported with ok=false and no error. Malformed percent-encoding yields an
// empty value and a *QueryDecodeError the caller may log and move past.
func Decode(rawQuery, name string) (value string, ok bool, err error) {
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(pair, "=")
		key, keyErr := url.QueryUnescape(rawKey)
		if keyErr != nil || key != name {
			continue
		}
		decoded, decodeErr := url.QueryUnescape(rawValue)
		if decodeErr != nil {
			return "", true, nudleerrors.NewQueryDecodeError(name, rawValue, decodeErr)
		}
		return decoded, true, nil
	}
	return "", false, nil
}
