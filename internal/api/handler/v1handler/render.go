package v1handler

import (
	"errors"
	"fmt"
	"furl/pkg/serrors"
	"io"
	"net/http"

	"github.com/go-faster/jx"
)

// RenderRequest is the body of POST /render.
type RenderRequest struct {
	Pattern string
	URLs    []string
}

// DecodeRenderRequest reads {"pattern": string, "urls": [string]}. Unknown
// members are ignored.
func DecodeRenderRequest(data []byte) (*RenderRequest, error) {
	var req RenderRequest
	err := jx.DecodeBytes(data).Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "pattern":
			s, err := d.Str()
			req.Pattern = s

			return err //nolint: wrapcheck
		case "urls":
			return d.Arr(func(d *jx.Decoder) error { //nolint: wrapcheck
				s, err := d.Str()
				if err != nil {
					return err //nolint: wrapcheck
				}
				req.URLs = append(req.URLs, s)

				return nil
			})
		default:
			return d.Skip() //nolint: wrapcheck
		}
	})
	if err != nil {
		return nil, fmt.Errorf("could not decode render request: %w", err)
	}

	return &req, nil
}

// Render runs the pattern over the posted URLs and returns the output lines.
func (h Handler) Render(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.options.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "request body exceeds %d bytes", tooLarge.Limit))

			return
		}
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "could not read request body"))

		return
	}

	req, err := DecodeRenderRequest(body)
	if err != nil {
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid payload"))

		return
	}

	batch, err := h.deps.Runner.Run(r.Context(), req.Pattern, req.URLs)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("mode")
	e.Str(batch.Mode)
	e.FieldStart("lines")
	e.ArrStart()
	for line := range batch.Lines() {
		e.Str(line)
	}
	e.ArrEnd()
	e.FieldStart("dropped")
	e.Int(batch.Dropped)
	e.ObjEnd()

	writeJSON(w, http.StatusOK, e.Bytes())
}
