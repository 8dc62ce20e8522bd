package furl

import (
	"strings"

	"golang.org/x/net/publicsuffix"
)

// Kind tells which kind of public suffix rule matched a host.
type Kind int

const (
	// KindUnknown means only the implicit "*" rule matched.
	KindUnknown Kind = iota
	// KindICANN means an ICANN-delegated suffix such as "com" or "co.uk".
	KindICANN
	// KindPrivate means a privately registered suffix such as "googleapis.com".
	KindPrivate
)

func (k Kind) String() string {
	switch k {
	case KindICANN:
		return "icann"
	case KindPrivate:
		return "private"
	default:
		return "unknown"
	}
}

// Domain is the public suffix classification of a host name.
type Domain struct {
	// Name is the classified host, without a trailing dot.
	Name string
	// Suffix is the public suffix, e.g. "co.uk".
	Suffix string
	// Root is the registrable apex, e.g. "example.co.uk". It is empty when the
	// host is itself a public suffix.
	Root string
	// Prefix holds the labels left of Root, e.g. "www".
	Prefix string
	Kind   Kind
}

// Classify classifies host against the public suffix list. It returns false
// when host is empty, an IP address or not a valid DNS name.
func Classify(host string) (*Domain, bool) {
	name := strings.TrimSuffix(strings.ToLower(host), ".")
	if !validDNSName(name) || isIP(name) {
		return nil, false
	}

	suffix, icann := publicsuffix.PublicSuffix(name)
	d := &Domain{Name: name, Suffix: suffix}

	switch {
	case icann:
		d.Kind = KindICANN
	case strings.Contains(suffix, "."):
		// the default rule only ever yields a single label
		d.Kind = KindPrivate
	default:
		d.Kind = KindUnknown
	}

	if name == suffix {
		return d, true
	}

	rest := strings.TrimSuffix(name, "."+suffix)
	label := rest
	if i := strings.LastIndexByte(rest, '.'); i >= 0 {
		label = rest[i+1:]
		d.Prefix = rest[:i]
	}
	d.Root = label + "." + suffix

	return d, true
}

// Usable reports whether the host is a domain worth exposing: an ICANN
// suffix with an apex, or a private suffix (with an apex when
// privateNeedsRoot is set).
func (d *Domain) Usable(privateNeedsRoot bool) bool {
	switch d.Kind {
	case KindICANN:
		return d.Root != ""
	case KindPrivate:
		return d.Root != "" || !privateNeedsRoot
	default:
		return false
	}
}

// Label returns the apex without its suffix, e.g. "example" for
// "example.co.uk".
func (d *Domain) Label() string {
	if d.Root == "" {
		return ""
	}

	return strings.TrimRight(strings.TrimSuffix(d.Root, d.Suffix), ".")
}

func validDNSName(name string) bool {
	if name == "" || len(name) > 253 {
		return false
	}

	for label := range strings.SplitSeq(name, ".") {
		if label == "" || len(label) > 63 || label[0] == '-' || label[len(label)-1] == '-' {
			return false
		}
		for i := range len(label) {
			c := label[i]
			if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '-' && c != '_' {
				return false
			}
		}
	}

	return true
}
