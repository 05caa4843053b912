package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	mw "github.com/bookly-app/bookly-api/internal/api/middlewares"
)

func TestResponseTime_Stamped(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	rec := httptest.NewRecorder()
	mw.ResponseTime(handler).ServeHTTP(rec, httptest.NewRequest("GET", "/books/", nil))

	if rec.Header().Get("X-Response-Time") == "" {
		t.Error("expected X-Response-Time header")
	}
}

func TestResponseTime_NoBody(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 204 path: header must still be stamped afterwards
	})

	rec := httptest.NewRecorder()
	mw.ResponseTime(handler).ServeHTTP(rec, httptest.NewRequest("DELETE", "/books/1", nil))

	if rec.Header().Get("X-Response-Time") == "" {
		t.Error("expected X-Response-Time header even without a body")
	}
}
