package books_test

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bookly-app/bookly-api/internal/api/router"
	storebooks "github.com/bookly-app/bookly-api/internal/store/books"
)

type problemBody struct {
	Title       string `json:"title"`
	Status      int    `json:"status"`
	FieldErrors []struct {
		Field string `json:"field"`
		Code  string `json:"code"`
	} `json:"field_errors"`
}

func newServer(t *testing.T) (http.Handler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return router.Router(db, storebooks.NewCache(nil)), mock
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCreateBook_Created(t *testing.T) {
	h, mock := newServer(t)

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`INSERT INTO books`).
		WithArgs("X", "Y", "978-0-13-468599-1", "...").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "title", "author", "publisher", "isbn", "description",
			"published_date", "page_count", "language", "created_at", "updated_at",
		}).AddRow(1, "X", "Y", "", "978-0-13-468599-1", "...", nil, 0, "", now, now))

	rec := do(h, http.MethodPost, "/books/", `{"title":"X","author":"Y","isbn":"978-0-13-468599-1","description":"..."}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Status string `json:"status"`
		Data   struct {
			ID int64 `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Status != "success" || resp.Data.ID != 1 {
		t.Fatalf("bad body: %s", rec.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestCreateBook_MissingFieldsAggregated(t *testing.T) {
	h, _ := newServer(t)

	rec := do(h, http.MethodPost, "/books/", `{"title":"X"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Fatalf("content-type = %q", ct)
	}
	var p problemBody
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatal(err)
	}
	if len(p.FieldErrors) != 3 {
		t.Fatalf("want 3 field errors (author, isbn, description), got %+v", p.FieldErrors)
	}
}

func TestCreateBook_InvalidJSON(t *testing.T) {
	h, _ := newServer(t)

	rec := do(h, http.MethodPost, "/books/", `{"title":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestPatchBook_WrongType(t *testing.T) {
	h, _ := newServer(t)

	rec := do(h, http.MethodPatch, "/books/1",
		`{"title":"X","author":"Y","publisher":"Z","page_count":"many","language":"English"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	var p problemBody
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatal(err)
	}
	if len(p.FieldErrors) != 1 || p.FieldErrors[0].Field != "page_count" {
		t.Fatalf("expected page_count cited, got %+v", p.FieldErrors)
	}
}

func TestGetBook_NotFound(t *testing.T) {
	h, mock := newServer(t)

	mock.ExpectQuery(`SELECT .+ FROM books WHERE id = \$1`).
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	rec := do(h, http.MethodGet, "/books/42", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestGetBook_BadID(t *testing.T) {
	h, _ := newServer(t)

	rec := do(h, http.MethodGet, "/books/abc", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestDeleteBook_NoContent(t *testing.T) {
	h, mock := newServer(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM books WHERE id = $1)`)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM books WHERE id = $1`)).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rec := do(h, http.MethodDelete, "/books/7", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
}

func TestListBooks(t *testing.T) {
	h, mock := newServer(t)

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	pub := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT .+ FROM books ORDER BY created_at`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "title", "author", "publisher", "isbn", "description",
			"published_date", "page_count", "language", "created_at", "updated_at",
		}).AddRow(1, "Think Python", "Allen B. Downey", "O'Reilly Media", "isbn", "d", pub, 1234, "English", now, now))

	rec := do(h, http.MethodGet, "/books/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Status string `json:"status"`
		Data   []struct {
			ID            int64  `json:"id"`
			Title         string `json:"title"`
			PublishedDate string `json:"published_date"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Data) != 1 || resp.Data[0].Title != "Think Python" {
		t.Fatalf("bad body: %s", rec.Body.String())
	}
	if resp.Data[0].PublishedDate != "2021-01-01T00:00:00Z" {
		t.Fatalf("published_date = %q", resp.Data[0].PublishedDate)
	}
}

func TestHeadCollection(t *testing.T) {
	h, _ := newServer(t)

	rec := do(h, http.MethodHead, "/books/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestStraySubpath_NotFound(t *testing.T) {
	h, _ := newServer(t)

	rec := do(h, http.MethodGet, "/books/1/2", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404 for /books/1/2", rec.Code)
	}
}

func TestCreateOnItemPath_MethodNotAllowed(t *testing.T) {
	h, _ := newServer(t)

	rec := do(h, http.MethodPost, "/books/99", `{"title":"X","author":"Y","isbn":"i","description":"d"}`)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405 for POST /books/99", rec.Code)
	}
}

func TestHeadBook(t *testing.T) {
	h, mock := newServer(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM books WHERE id = $1)`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	rec := do(h, http.MethodHead, "/books/1", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}
