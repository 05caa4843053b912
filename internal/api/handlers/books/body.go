package books

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bookly-app/bookly-api/internal/api/apperr"
	"github.com/bookly-app/bookly-api/internal/schemas"
)

// decodeBody reads the request body into a raw mapping for shape validation.
// UseNumber keeps integers exact instead of forcing float64.
func decodeBody(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	defer r.Body.Close()

	var m map[string]any
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&m); err != nil {
		apperr.WriteStatus(w, r, http.StatusBadRequest, "Bad Request", "invalid JSON")
		return nil, false
	}
	return m, true
}

// writeShapeError writes a decode failure. Shape violations carry the full
// field error list; anything else is a generic 400.
func writeShapeError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *schemas.ValidationError
	if errors.As(err, &ve) {
		apperr.WriteValidation(w, r, ve)
		return
	}
	apperr.WriteStatus(w, r, http.StatusBadRequest, "Bad Request", "invalid payload")
}
