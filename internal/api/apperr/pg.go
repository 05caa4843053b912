package apperr

import (
	"errors"
	"net/http"
	"strings"

	"github.com/bookly-app/bookly-api/internal/schemas"
	"github.com/jackc/pgx/v5/pgconn"
)

// Known constraint names on the books table.
var constraintField = map[string]string{
	"books_isbn_key":         "isbn",
	"books_page_count_check": "page_count",
	"books_title_not_null":   "title",
	"books_author_not_null":  "author",
	"books_isbn_not_null":    "isbn",
}

func fieldFromDetail(detail string) string {
	for _, k := range []string{"isbn", "title", "author", "publisher", "page_count", "language", "description", "published_date", "id"} {
		if strings.Contains(detail, k) {
			return k
		}
	}
	return ""
}

// FromPG maps a Postgres error to a Problem. Returns (Problem, true) if mapped.
func FromPG(err error) (Problem, bool) {
	var pg *pgconn.PgError
	if !errors.As(err, &pg) {
		return Problem{}, false
	}

	p := Problem{
		Title:  "Database error",
		Status: http.StatusInternalServerError,
	}

	field := constraintField[pg.ConstraintName]
	if field == "" && pg.Detail != "" {
		field = fieldFromDetail(pg.Detail)
	}

	switch pg.Code {
	case "23505": // unique_violation
		if field == "" {
			field = "resource"
		}
		p.Status = http.StatusConflict
		p.Title = "Conflict"
		p.FieldErrors = []schemas.FieldError{{Field: field, Code: "unique", Message: "value already exists"}}
	case "23502": // not_null_violation
		if field == "" && pg.ColumnName != "" {
			field = pg.ColumnName
		}
		if field == "" {
			field = "field"
		}
		p.Status = http.StatusBadRequest
		p.Title = "Bad Request"
		p.FieldErrors = []schemas.FieldError{{Field: field, Code: schemas.CodeMissing, Message: "required field is missing"}}
	case "23514": // check_violation
		if field == "" {
			field = "field"
		}
		p.Status = http.StatusUnprocessableEntity
		p.Title = "Unprocessable Entity"
		p.FieldErrors = []schemas.FieldError{{Field: field, Code: "check", Message: "constraint failed"}}
	case "22001": // string_data_right_truncation
		if field == "" {
			field = "field"
		}
		p.Status = http.StatusBadRequest
		p.Title = "Bad Request"
		p.FieldErrors = []schemas.FieldError{{Field: field, Code: "too_long", Message: "value is too long"}}
	case "22P02": // invalid_text_representation
		if field == "" {
			field = "id"
		}
		p.Status = http.StatusBadRequest
		p.Title = "Bad Request"
		p.FieldErrors = []schemas.FieldError{{Field: field, Code: schemas.CodeInvalid, Message: "invalid format"}}
	case "40001": // serialization_failure
		p.Status = http.StatusConflict
		p.Title = "Conflict"
		p.Detail = "transaction conflict, please retry"
		p.Retryable = true
	case "40P01": // deadlock_detected
		p.Status = http.StatusConflict
		p.Title = "Conflict"
		p.Detail = "deadlock detected, please retry"
		p.Retryable = true
	}

	return p, true
}

// HandleDBError writes the mapped Problem for err, or a generic 500.
// Returns false when err is nil.
func HandleDBError(w http.ResponseWriter, r *http.Request, err error, fallbackTitle string) bool {
	if err == nil {
		return false
	}
	if p, ok := FromPG(err); ok {
		Write(w, r, p)
		return true
	}
	Write(w, r, Problem{Status: http.StatusInternalServerError, Title: fallbackTitle})
	return true
}
