package furl

import "strings"

// codes maps a placeholder letter to the accessor it renders.
//
//nolint: gochecknoglobals
var codes = func() map[byte]func(*URL) Value {
	m := make(map[byte]func(*URL) Value)
	for _, f := range Placeholders() {
		m[f.Code] = f.Value
	}

	return m
}()

// segment is either literal text or a field placeholder.
type segment struct {
	lit   string
	value func(*URL) Value
}

// Template is a compiled pattern such as "%s%/%d%p".
//
// Placeholders are '%' followed by one code letter; "%%" is a literal
// percent sign and any other '%' is copied as is. Substituted values are
// never scanned again, so a '%' inside a URL cannot trigger a placeholder.
type Template struct {
	pattern  string
	segments []segment
}

// Compile splits pattern into literal and placeholder segments in a single
// left-to-right pass.
func Compile(pattern string) *Template {
	t := &Template{pattern: pattern}

	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			t.segments = append(t.segments, segment{lit: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '%' || i+1 == len(pattern) {
			lit.WriteByte(c)

			continue
		}

		next := pattern[i+1]
		if next == '%' {
			lit.WriteByte('%')
			i++

			continue
		}

		value, ok := codes[next]
		if !ok {
			lit.WriteByte(c)

			continue
		}

		flush()
		t.segments = append(t.segments, segment{value: value})
		i++
	}
	flush()

	return t
}

// Pattern returns the source pattern.
func (t *Template) Pattern() string { return t.pattern }

// Render substitutes every placeholder with the field value of u. Absent
// fields render as empty text.
func (t *Template) Render(u *URL) string {
	var b strings.Builder
	for _, s := range t.segments {
		if s.value == nil {
			b.WriteString(s.lit)

			continue
		}
		b.WriteString(s.value(u).String())
	}

	return b.String()
}
