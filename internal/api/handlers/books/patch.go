package books

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/bookly-app/bookly-api/internal/api/apperr"
	"github.com/bookly-app/bookly-api/internal/api/httpx"
	"github.com/bookly-app/bookly-api/internal/schemas"
	storebooks "github.com/bookly-app/bookly-api/internal/store/books"
)

func handlePatch(db *sql.DB, cache *storebooks.Cache, w http.ResponseWriter, r *http.Request) {
	id, ok := bookID(w, r)
	if !ok {
		return
	}

	m, ok := decodeBody(w, r)
	if !ok {
		return
	}

	in, err := schemas.DecodeBookUpdate(m)
	if err != nil {
		writeShapeError(w, r, err)
		return
	}

	b, err := storebooks.Update(r.Context(), db, id, in)
	if errors.Is(err, sql.ErrNoRows) {
		apperr.WriteStatus(w, r, http.StatusNotFound, "Not Found", "book not found")
		return
	}
	if err != nil {
		apperr.HandleDBError(w, r, err, "failed to update book")
		return
	}

	cache.Bump(r.Context())
	httpx.OK(w, b)
}
