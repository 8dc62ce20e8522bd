package furl

import (
	"iter"
	"net/url"
	"slices"
	"strings"
)

// Value is the result of reading a field. It tells an absent field apart
// from a field that is present but empty, e.g. "https://a.com/?" has a
// present, empty query.
type Value struct {
	s  string
	ok bool
}

func present(s string) Value { return Value{s: s, ok: true} }

// Present reports whether the field exists on the URL.
func (v Value) Present() bool { return v.ok }

// String returns the field text, empty when absent.
func (v Value) String() string { return v.s }

// Field is one entry of the field catalog.
type Field struct {
	// Name is the canonical field name.
	Name string
	// Aliases are the other names Lookup accepts.
	Aliases []string
	// Code is the template placeholder letter following '%', 0 when the field
	// has no placeholder.
	Code byte
	// Help is a one-line description.
	Help string
	// Value reads the field. It is nil for sequence fields.
	Value func(*URL) Value
	// Each yields one element per query parameter. It is nil for value fields.
	Each func(*URL) iter.Seq[string]
}

// IsSequence reports whether the field yields several lines per URL.
func (f *Field) IsSequence() bool { return f.Each != nil }

//nolint: gochecknoglobals
var catalog = []Field{
	{Name: "scheme", Aliases: []string{"s", "schemes"}, Code: 's', Help: "scheme", Value: fieldScheme},
	{Name: "url", Aliases: []string{"c"}, Code: 'c', Help: "url-like with scheme (https is default)", Value: fieldURL},
	{Name: "authority", Aliases: []string{"a", "auth"}, Code: 'a', Help: "authority", Value: fieldAuthority},
	{Name: "username", Aliases: []string{"u", "user", "users", "usernames"}, Code: 'u', Help: "username", Value: fieldUsername},
	{Name: "password", Aliases: []string{"x", "pass", "passwords"}, Code: 'x', Help: "password", Value: fieldPassword},
	{Name: "domain", Aliases: []string{"d", "domains"}, Code: 'd', Help: "domain", Value: fieldDomain},
	{Name: "subdomain", Aliases: []string{"S", "sub", "subdomains"}, Code: 'S', Help: "subdomain", Value: fieldSubdomain},
	{Name: "apex", Aliases: []string{"r", "root", "roots", "apexes"}, Code: 'r', Help: "apex | root", Value: fieldApex},
	{Name: "name", Aliases: []string{"n", "names"}, Code: 'n', Help: "name (example.tld -> example)", Value: fieldName},
	{Name: "tld", Aliases: []string{"t", "suffix"}, Code: 't', Help: "tld | suffix", Value: fieldTLD},
	{Name: "port", Aliases: []string{"P", "ports"}, Code: 'P', Help: "port", Value: fieldPort},
	{Name: "path", Aliases: []string{"p", "paths"}, Code: 'p', Help: "path", Value: fieldPath},
	{Name: "query", Aliases: []string{"q", "queries"}, Code: 'q', Help: "query", Value: fieldQuery},
	{Name: "fragment", Aliases: []string{"f", "fragments"}, Code: 'f', Help: "fragment", Value: fieldFragment},
	{Name: "publicsuffix", Aliases: []string{"ps"}, Help: "public suffix (example.co.uk -> co.uk)", Value: fieldPublicSuffix},
	{Name: "keys", Aliases: []string{"k", "key"}, Help: "query keys, one per line", Each: queryKeys},
	{Name: "values", Aliases: []string{"v", "val", "value"}, Help: "query values, one per line", Each: queryValues},
	{Name: "json", Aliases: []string{"j"}, Help: "all fields as a JSON object", Value: fieldJSON},
}

// separators are template-only fields inserting punctuation when the field
// they precede or follow is set.
//
//nolint: gochecknoglobals
var separators = []Field{
	{Name: "slash", Code: '/', Help: "inserts :// if scheme is specified", Value: sepSlash},
	{Name: "at", Code: '@', Help: "inserts @ if user info is specified", Value: sepAt},
	{Name: "colon", Code: ':', Help: "inserts : if a port is specified", Value: sepColon},
	{Name: "question", Code: '?', Help: "inserts ? if a query string exists", Value: sepQuestion},
	{Name: "hashtag", Code: '#', Help: "inserts # if a fragment exists", Value: sepHashtag},
}

//nolint: gochecknoglobals
var byName = func() map[string]*Field {
	m := make(map[string]*Field)
	for i := range catalog {
		f := &catalog[i]
		m[f.Name] = f
		for _, alias := range f.Aliases {
			m[alias] = f
		}
	}

	return m
}()

// Lookup resolves a field name or alias.
func Lookup(name string) (*Field, bool) {
	f, ok := byName[name]

	return f, ok
}

// Fields returns the named fields in catalog order.
func Fields() []Field { return slices.Clone(catalog) }

// Placeholders returns every field that has a template code, separators
// included, in catalog order.
func Placeholders() []Field {
	var res []Field
	for _, f := range catalog {
		if f.Code != 0 {
			res = append(res, f)
		}
	}

	return append(res, separators...)
}

func fieldScheme(u *URL) Value    { return present(u.Scheme()) }
func fieldURL(u *URL) Value       { return present(u.String()) }
func fieldAuthority(u *URL) Value { return present(u.Authority()) }
func fieldPath(u *URL) Value      { return present(u.Path()) }

func fieldUsername(u *URL) Value {
	if u.u.User == nil {
		return Value{}
	}

	return present(u.Username())
}

func fieldPassword(u *URL) Value {
	s, ok := u.Password()

	return Value{s: s, ok: ok}
}

func fieldDomain(u *URL) Value {
	if d := u.usableDomain(); d != nil {
		return present(d.Name)
	}

	return Value{}
}

func fieldSubdomain(u *URL) Value {
	if d := u.usableDomain(); d != nil {
		return present(d.Prefix)
	}

	return Value{}
}

func fieldApex(u *URL) Value {
	if d := u.usableDomain(); d != nil {
		return present(d.Root)
	}

	return Value{}
}

func fieldName(u *URL) Value {
	if d := u.usableDomain(); d != nil {
		return present(d.Label())
	}

	return Value{}
}

func fieldTLD(u *URL) Value {
	d := u.usableDomain()
	if d == nil {
		return Value{}
	}
	if u.policy.SuffixMode == SuffixPublic {
		return present(d.Suffix)
	}

	_, last, _ := cutLast(d.Name, ".")

	return present(last)
}

func fieldPublicSuffix(u *URL) Value {
	if d := u.usableDomain(); d != nil {
		return present(d.Suffix)
	}

	return Value{}
}

func fieldPort(u *URL) Value {
	if u.Port == "" {
		return Value{}
	}

	return present(u.Port)
}

func fieldQuery(u *URL) Value {
	if u.u.RawQuery == "" && !u.u.ForceQuery {
		return Value{}
	}

	return present(u.u.RawQuery)
}

func fieldFragment(u *URL) Value {
	if u.u.Fragment == "" {
		return Value{}
	}

	return present(u.Fragment())
}

func sepSlash(u *URL) Value    { return punct(u.Scheme() != "", "://") }
func sepAt(u *URL) Value       { return punct(u.Username() != "", "@") }
func sepColon(u *URL) Value    { return punct(u.Port != "", ":") }
func sepQuestion(u *URL) Value { return punct(u.Query() != "", "?") }
func sepHashtag(u *URL) Value  { return punct(u.Fragment() != "", "#") }

func punct(cond bool, s string) Value {
	if cond {
		return present(s)
	}

	return present("")
}

// queryPairs yields the decoded key/value pairs of a raw query in order.
// Parts without "=" have an empty value; empty parts are skipped.
func queryPairs(rawQuery string) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for part := range strings.SplitSeq(rawQuery, "&") {
			if part == "" {
				continue
			}
			k, v, _ := strings.Cut(part, "=")
			if !yield(unescapeQuery(k), unescapeQuery(v)) {
				return
			}
		}
	}
}

func queryKeys(u *URL) iter.Seq[string] {
	return func(yield func(string) bool) {
		for k := range queryPairs(u.u.RawQuery) {
			if !yield(k) {
				return
			}
		}
	}
}

func queryValues(u *URL) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, v := range queryPairs(u.u.RawQuery) {
			if !yield(v) {
				return
			}
		}
	}
}

func unescapeQuery(s string) string {
	if res, err := url.QueryUnescape(s); err == nil {
		return res
	}

	return s
}

// cutLast slices s around the last instance of sep.
func cutLast(s, sep string) (before, after string, found bool) {
	if i := strings.LastIndex(s, sep); i >= 0 {
		return s[:i], s[i+len(sep):], true
	}

	return s, "", false
}
