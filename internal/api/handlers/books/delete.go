package books

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/bookly-app/bookly-api/internal/api/apperr"
	storebooks "github.com/bookly-app/bookly-api/internal/store/books"
)

func handleDelete(db *sql.DB, cache *storebooks.Cache, w http.ResponseWriter, r *http.Request) {
	id, ok := bookID(w, r)
	if !ok {
		return
	}

	err := storebooks.Delete(r.Context(), db, id)
	if errors.Is(err, sql.ErrNoRows) {
		apperr.WriteStatus(w, r, http.StatusNotFound, "Not Found", "book not found")
		return
	}
	if err != nil {
		apperr.HandleDBError(w, r, err, "failed to delete book")
		return
	}

	cache.Bump(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
