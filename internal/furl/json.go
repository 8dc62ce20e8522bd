package furl

import "github.com/go-faster/jx"

// jsonFields lists the members of the json field. Absent fields are omitted.
//
//nolint: gochecknoglobals
var jsonFields = []struct {
	key   string
	value func(*URL) Value
}{
	{"scheme", fieldScheme},
	{"url", fieldURL},
	{"authority", fieldAuthority},
	{"username", fieldUsername},
	{"password", fieldPassword},
	{"domain", fieldDomain},
	{"subdomain", fieldSubdomain},
	{"apex", fieldApex},
	{"name", fieldName},
	{"tld", fieldTLD},
	{"publicsuffix", fieldPublicSuffix},
	{"port", fieldPort},
	{"path", fieldPath},
	{"query", fieldQuery},
	{"fragment", fieldFragment},
}

func fieldJSON(u *URL) Value {
	var e jx.Encoder

	e.ObjStart()
	for _, f := range jsonFields {
		v := f.value(u)
		if !v.Present() {
			continue
		}
		e.FieldStart(f.key)
		e.Str(v.String())
	}

	e.FieldStart("explicit")
	e.Bool(u.Explicit)

	e.FieldStart("params")
	e.ArrStart()
	for k, v := range queryPairs(u.u.RawQuery) {
		e.ObjStart()
		e.FieldStart("key")
		e.Str(k)
		e.FieldStart("value")
		e.Str(v)
		e.ObjEnd()
	}
	e.ArrEnd()
	e.ObjEnd()

	return present(e.String())
}
