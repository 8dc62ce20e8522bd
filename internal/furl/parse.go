package furl

import (
	"fmt"
	"furl/pkg/serrors"
	"net/netip"
	"net/url"
	"strings"

	"golang.org/x/net/idna"
)

// DefaultScheme is prefixed to tokens that do not stand alone as absolute URLs.
const DefaultScheme = "https"

// defaultPorts holds the well-known port of each special scheme. "file" is
// special but has no port.
var defaultPorts = map[string]string{ //nolint: gochecknoglobals
	"ftp":   "21",
	"http":  "80",
	"https": "443",
	"ws":    "80",
	"wss":   "443",
	"file":  "",
}

// hostProfile folds hosts to lowercase ASCII. Underscores stay legal since
// they are common in real hostnames.
var hostProfile = idna.New(idna.MapForLookup(), idna.StrictDomainName(false)) //nolint: gochecknoglobals

// Parser turns raw tokens into normalized URLs under a fixed Policy.
type Parser struct {
	policy Policy
}

// NewParser returns a Parser applying the given policy.
func NewParser(policy Policy) *Parser {
	if policy.SuffixMode == "" {
		policy.SuffixMode = SuffixLastLabel
	}

	return &Parser{policy: policy}
}

// Policy returns the policy the parser applies.
func (p *Parser) Policy() Policy { return p.policy }

// Parse normalizes a token into a URL.
//
// The token is first parsed as an absolute URL. When that fails, or the
// result cannot serve as a base (no authority, e.g. "mailto:a@b" or
// "example.com:8080" read as scheme "example.com"), it is parsed again with
// DefaultScheme prefixed. Explicit records which attempt succeeded.
//
// A '%' that does not start a valid escape is read as a literal percent sign.
//
// Parse returns serrors.ErrNotAURL when both attempts fail, and
// serrors.ErrInvalidDomain when the policy demands a usable domain and the
// host does not provide one.
func (p *Parser) Parse(token string) (*URL, error) {
	raw := escapeStrayPercents(token)
	u, explicit := parseAbsolute(raw), true
	if u == nil {
		u, explicit = parseAbsolute(DefaultScheme+"://"+raw), false
	}
	if u == nil {
		return nil, serrors.With(serrors.ErrNotAURL, "could not parse %q as a URL", token)
	}

	res := &URL{
		u:        u,
		policy:   p.policy,
		Explicit: explicit,
		Port:     resolvePort(u),
	}

	if p.policy.StrictDomains && res.usableDomain() == nil {
		return nil, serrors.With(serrors.ErrInvalidDomain, "host %q is not a registrable domain", u.Hostname())
	}

	return res, nil
}

// parseAbsolute parses raw and normalizes it, returning nil unless the result
// is an absolute URL with an authority.
func parseAbsolute(raw string) *url.URL {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Opaque != "" {
		return nil
	}

	// url.Parse already lowercases the scheme
	_, special := defaultPorts[u.Scheme]
	if special && u.Host == "" && u.Scheme != "file" {
		return nil
	}

	if err := normalizeHost(u); err != nil {
		return nil
	}

	if special && u.Path == "" {
		u.Path = "/"
		u.RawPath = ""
	}

	return u
}

// normalizeHost lowercases the host, converts it to ASCII and drops an
// explicit port equal to the scheme's default.
func normalizeHost(u *url.URL) error {
	host, port := u.Hostname(), u.Port()
	if port == defaultPorts[u.Scheme] {
		port = ""
	}

	switch {
	case host == "":
	case isIP(host):
		host = strings.ToLower(host)
	default:
		ascii, err := hostProfile.ToASCII(host)
		if err != nil {
			return fmt.Errorf("invalid host %q: %w", host, err)
		}
		host = ascii
	}

	// IPv6 literals go back into brackets; String escapes the zone
	if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}
	if port != "" {
		host += ":" + port
	}
	u.Host = host

	return nil
}

// escapeStrayPercents rewrites every '%' that does not start a valid escape
// to "%25", so "example.com/50%off" keeps its path instead of failing.
func escapeStrayPercents(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && (i+2 >= len(s) || !isHex(s[i+1]) || !isHex(s[i+2])) {
			b.WriteString("%25")

			continue
		}
		b.WriteByte(s[i])
	}

	return b.String()
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// resolvePort returns the explicit port, else the scheme's default.
func resolvePort(u *url.URL) string {
	if p := u.Port(); p != "" {
		return p
	}

	return defaultPorts[u.Scheme]
}

func isIP(host string) bool {
	_, err := netip.ParseAddr(host)

	return err == nil
}
