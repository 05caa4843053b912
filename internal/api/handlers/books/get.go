package books

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/bookly-app/bookly-api/internal/api/apperr"
	"github.com/bookly-app/bookly-api/internal/api/httpx"
	storebooks "github.com/bookly-app/bookly-api/internal/store/books"
)

func handleGet(db *sql.DB, w http.ResponseWriter, r *http.Request) {
	id, ok := bookID(w, r)
	if !ok {
		return
	}

	b, err := storebooks.GetByID(r.Context(), db, id)
	if errors.Is(err, sql.ErrNoRows) {
		apperr.WriteStatus(w, r, http.StatusNotFound, "Not Found", "book not found")
		return
	}
	if err != nil {
		apperr.HandleDBError(w, r, err, "failed to fetch book")
		return
	}

	httpx.OK(w, b)
}

// HEAD /books/{id}: status only, no body.
func handleHead(db *sql.DB, w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("id")
	if raw == "" {
		w.WriteHeader(http.StatusOK)
		return
	}
	id, ok := bookID(w, r)
	if !ok {
		return
	}

	exists, err := storebooks.ExistsByID(r.Context(), db, id)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if !exists {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusOK)
}
