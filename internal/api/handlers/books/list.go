package books

import (
	"database/sql"
	"net/http"

	"github.com/bookly-app/bookly-api/internal/api/apperr"
	"github.com/bookly-app/bookly-api/internal/api/httpx"
	storebooks "github.com/bookly-app/bookly-api/internal/store/books"
)

func handleList(db *sql.DB, cache *storebooks.Cache, w http.ResponseWriter, r *http.Request) {
	if list, ok := cache.GetList(r.Context()); ok {
		httpx.OK(w, list)
		return
	}

	list, err := storebooks.List(r.Context(), db)
	if err != nil {
		apperr.HandleDBError(w, r, err, "failed to list books")
		return
	}

	cache.SetList(r.Context(), list)
	httpx.OK(w, list)
}
