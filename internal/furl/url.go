// Package furl decomposes URL-like strings into fields, renders them through
// templates and groups near-identical URLs together.
//
// A token becomes a *URL through a Parser. Fields are read through the
// catalog in fields.go, either by name (Lookup) or through a compiled
// Template. Dedup and Cluster collapse URLs that Compare reports as equal.
package furl

import (
	"net/url"
	"strings"
)

// URL is a normalized URL. It always carries a scheme and re-parses as an
// absolute URL.
//
// A URL caches its domain classification on first use and is not safe for
// concurrent use.
type URL struct {
	u      *url.URL
	policy Policy

	// Explicit is true when the token carried its own scheme.
	Explicit bool
	// Port is the explicit port, else the scheme's default port, else empty.
	Port string

	domain     *Domain
	classified bool
}

// Domain returns the classification of the host, or nil when the host is
// not a DNS name.
func (u *URL) Domain() *Domain {
	if !u.classified {
		u.domain, _ = Classify(u.u.Hostname())
		u.classified = true
	}

	return u.domain
}

// usableDomain returns the classification only when it satisfies the policy.
func (u *URL) usableDomain() *Domain {
	if d := u.Domain(); d != nil && d.Usable(u.policy.PrivateNeedsRoot) {
		return d
	}

	return nil
}

// Scheme returns the lowercase scheme.
func (u *URL) Scheme() string { return u.u.Scheme }

// String returns the full serialized URL.
func (u *URL) String() string { return u.u.String() }

// Authority returns userinfo@host:port, omitting a default port.
func (u *URL) Authority() string {
	if u.u.User == nil {
		return u.u.Host
	}

	return u.u.User.String() + "@" + u.u.Host
}

// Username returns the userinfo user name.
func (u *URL) Username() string {
	if u.u.User == nil {
		return ""
	}

	return u.u.User.Username()
}

// Password returns the userinfo password and whether one was given.
func (u *URL) Password() (string, bool) {
	if u.u.User == nil {
		return "", false
	}

	return u.u.User.Password()
}

// Path returns the escaped path. When the host is not a usable domain the
// path degrades to everything after "scheme://" in the serialized URL.
func (u *URL) Path() string {
	if u.usableDomain() != nil {
		return u.u.EscapedPath()
	}

	s := u.u.String()
	if rest, ok := strings.CutPrefix(s, u.u.Scheme+"://"); ok {
		return rest
	}

	return strings.TrimPrefix(s, u.u.Scheme+":")
}

// Query returns the raw query without the leading "?".
func (u *URL) Query() string { return u.u.RawQuery }

// Fragment returns the fragment without the leading "#".
func (u *URL) Fragment() string { return u.u.EscapedFragment() }

// segments returns the escaped path split on "/", without the leading slash.
func (u *URL) segments() []string {
	return strings.Split(strings.TrimPrefix(u.u.EscapedPath(), "/"), "/")
}

// withQuery returns a copy of u with its raw query replaced.
func (u *URL) withQuery(rawQuery string) *URL {
	nu := *u.u
	nu.RawQuery = rawQuery
	nu.ForceQuery = false

	cp := *u
	cp.u = &nu

	return &cp
}
