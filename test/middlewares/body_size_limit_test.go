package middlewares_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mw "github.com/bookly-app/bookly-api/internal/api/middlewares"
)

func TestBodySizeLimit_RejectsOversized(t *testing.T) {
	t.Setenv("MAX_BODY_SIZE", "16")

	var readErr error
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
	})

	body := strings.Repeat("x", 64)
	req := httptest.NewRequest("POST", "/books/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mw.BodySizeLimit(handler).ServeHTTP(rec, req)

	if readErr == nil {
		t.Fatal("expected oversized body read to fail")
	}
}

func TestBodySizeLimit_IgnoresGet(t *testing.T) {
	t.Setenv("MAX_BODY_SIZE", "16")

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/books/", nil)
	rec := httptest.NewRecorder()
	mw.BodySizeLimit(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}
