package router

import (
	"database/sql"
	"net/http"

	"github.com/bookly-app/bookly-api/internal/api/handlers"
	"github.com/bookly-app/bookly-api/internal/api/handlers/books"
	storebooks "github.com/bookly-app/bookly-api/internal/store/books"
)

func Router(db *sql.DB, cache *storebooks.Cache) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /", handlers.RootHandler)

	// Keep legacy /books -> /books/
	mux.HandleFunc("GET /books", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/books/", http.StatusMovedPermanently)
	})

	// {$} anchors the collection routes; stray subpaths like /books/1/2
	// fall through to a 404 instead of the collection handler.
	// GET on the collection also serves HEAD.
	h := books.Handler(db, cache)
	mux.Handle("GET /books/{$}", h)      // list
	mux.Handle("POST /books/{$}", h)     // create
	mux.Handle("GET /books/{id}", h)     // get
	mux.Handle("HEAD /books/{id}", h)    // existence probe
	mux.Handle("PATCH /books/{id}", h)   // update
	mux.Handle("DELETE /books/{id}", h)  // delete
	mux.Handle("OPTIONS /books/{$}", h)  // preflight
	mux.Handle("OPTIONS /books/{id}", h) // preflight

	return mux
}
