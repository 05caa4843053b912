package books

import (
	"net/http"
	"strconv"

	"github.com/bookly-app/bookly-api/internal/api/apperr"
)

// bookID parses the {id} path segment. On failure it writes a 400 problem
// and returns ok=false.
func bookID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		apperr.WriteStatus(w, r, http.StatusBadRequest, "Bad Request", "id must be a positive integer")
		return 0, false
	}
	return id, true
}
