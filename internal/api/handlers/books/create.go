package books

import (
	"database/sql"
	"net/http"

	"github.com/bookly-app/bookly-api/internal/api/apperr"
	"github.com/bookly-app/bookly-api/internal/api/httpx"
	"github.com/bookly-app/bookly-api/internal/schemas"
	storebooks "github.com/bookly-app/bookly-api/internal/store/books"
)

func handleCreate(db *sql.DB, cache *storebooks.Cache, w http.ResponseWriter, r *http.Request) {
	m, ok := decodeBody(w, r)
	if !ok {
		return
	}

	in, err := schemas.DecodeBookCreate(m)
	if err != nil {
		writeShapeError(w, r, err)
		return
	}

	b, err := storebooks.Create(r.Context(), db, in)
	if err != nil {
		apperr.HandleDBError(w, r, err, "failed to create book")
		return
	}

	cache.Bump(r.Context())
	httpx.Created(w, b)
}
