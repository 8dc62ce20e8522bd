package v1handler

import (
	"furl/internal/furl"
	"net/http"

	"github.com/go-faster/jx"
)

// Fields lists the named fields and the template placeholders.
func (h Handler) Fields(w http.ResponseWriter, _ *http.Request) {
	var e jx.Encoder
	e.ObjStart()

	e.FieldStart("fields")
	e.ArrStart()
	for _, f := range furl.Fields() {
		e.ObjStart()
		e.FieldStart("name")
		e.Str(f.Name)
		e.FieldStart("aliases")
		e.ArrStart()
		for _, alias := range f.Aliases {
			e.Str(alias)
		}
		e.ArrEnd()
		e.FieldStart("help")
		e.Str(f.Help)
		e.FieldStart("sequence")
		e.Bool(f.IsSequence())
		e.ObjEnd()
	}
	e.ArrEnd()

	e.FieldStart("placeholders")
	e.ArrStart()
	for _, f := range furl.Placeholders() {
		e.ObjStart()
		e.FieldStart("code")
		e.Str("%" + string(f.Code))
		e.FieldStart("name")
		e.Str(f.Name)
		e.FieldStart("help")
		e.Str(f.Help)
		e.ObjEnd()
	}
	e.ObjStart()
	e.FieldStart("code")
	e.Str("%%")
	e.FieldStart("name")
	e.Str("percent")
	e.FieldStart("help")
	e.Str("a literal %")
	e.ObjEnd()
	e.ArrEnd()

	e.ObjEnd()

	writeJSON(w, http.StatusOK, e.Bytes())
}
