package router

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/alexisbeaulieu97/nudle/internal/search"
)

// Location is an in-app address: a path plus its raw (still encoded) query.
type Location struct {
	Path     string
	RawQuery string
}

// Parse reads an in-app location such as "/" or "/search?q=hello%20world".
// Only the path and query are kept; scheme and host are rejected.
func Parse(raw string) (Location, error) {
	if !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") {
		return Location{}, fmt.Errorf("location %q must be an absolute in-app path", raw)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return Location{}, fmt.Errorf("parse location %q: %w", raw, err)
	}
	path := u.Path
	if path == "" {
		path = "/"
	}
	return Location{Path: path, RawQuery: u.RawQuery}, nil
}

// MustParse is Parse for locations known at compile time.
func MustParse(raw string) Location {
	loc, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return loc
}

// String renders the location as it would appear in an address bar.
func (l Location) String() string {
	if l.RawQuery == "" {
		return l.Path
	}
	return l.Path + "?" + l.RawQuery
}

// QueryParam extracts a query parameter. Absence is not an error. A value
// with broken percent-encoding comes back empty together with the decode
// error so callers can log it and carry on.
func (l Location) QueryParam(name string) (value string, ok bool, err error) {
	return search.Decode(l.RawQuery, name)
}
