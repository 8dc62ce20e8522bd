package furl

import "fmt"

// SuffixMode selects what the tld field exposes.
type SuffixMode string

const (
	// SuffixLastLabel exposes the text after the last dot of the domain, so
	// "example.co.uk" yields "uk".
	SuffixLastLabel SuffixMode = "last-label"
	// SuffixPublic exposes the public suffix, so "example.co.uk" yields "co.uk".
	SuffixPublic SuffixMode = "public"
)

// ParseSuffixMode validates a suffix mode name. An empty name selects
// SuffixLastLabel.
func ParseSuffixMode(s string) (SuffixMode, error) {
	switch SuffixMode(s) {
	case "", SuffixLastLabel:
		return SuffixLastLabel, nil
	case SuffixPublic:
		return SuffixPublic, nil
	default:
		return "", fmt.Errorf("unknown suffix mode %q", s)
	}
}

// Policy holds the domain rules a Parser applies to every URL it produces.
type Policy struct {
	// StrictDomains rejects URLs whose host is not a usable domain.
	StrictDomains bool
	// PrivateNeedsRoot requires an apex below private suffixes as well, so a
	// bare "googleapis.com" is no longer a usable domain.
	PrivateNeedsRoot bool
	// SuffixMode selects the tld field definition.
	SuffixMode SuffixMode
}
