// Package books exposes the book CRUD endpoints. Request and response bodies
// are validated against the payload shapes in internal/schemas.
package books

import (
	"database/sql"
	"net/http"

	storebooks "github.com/bookly-app/bookly-api/internal/store/books"
)

const allowBooks = "GET, POST, PATCH, DELETE, OPTIONS, HEAD"

// Handler dispatches /books/ and /books/{id} by method.
func Handler(db *sql.DB, cache *storebooks.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			if r.PathValue("id") == "" {
				handleList(db, cache, w, r)
				return
			}
			handleGet(db, w, r)

		case http.MethodHead:
			handleHead(db, w, r)

		case http.MethodPost:
			handleCreate(db, cache, w, r)

		case http.MethodPatch:
			handlePatch(db, cache, w, r)

		case http.MethodDelete:
			handleDelete(db, cache, w, r)

		case http.MethodOptions:
			w.Header().Set("Allow", allowBooks)
			w.WriteHeader(http.StatusNoContent)

		default:
			w.Header().Set("Allow", allowBooks)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
}
