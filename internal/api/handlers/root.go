package handlers

import (
	"net/http"

	"github.com/bookly-app/bookly-api/internal/api/httpx"
)

// RootHandler answers the service root with a liveness payload.
func RootHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	httpx.OK(w, map[string]string{"service": "bookly-api"})
}
