package apperr

import (
	"encoding/json"
	"net/http"

	"github.com/bookly-app/bookly-api/internal/schemas"
)

// Problem is an RFC 7807 error body.
type Problem struct {
	Type        string               `json:"type,omitempty"`
	Title       string               `json:"title"`
	Status      int                  `json:"status"`
	Detail      string               `json:"detail,omitempty"`
	Instance    string               `json:"instance,omitempty"`
	RequestID   string               `json:"request_id,omitempty"`
	FieldErrors []schemas.FieldError `json:"field_errors,omitempty"`
	Retryable   bool                 `json:"retryable,omitempty"`
}

func Write(w http.ResponseWriter, r *http.Request, p Problem) {
	if p.Status == 0 {
		p.Status = http.StatusInternalServerError
	}
	if p.Instance == "" && r != nil {
		p.Instance = r.URL.Path
	}
	if p.RequestID == "" && r != nil {
		if rid := r.Header.Get("X-Request-ID"); rid != "" {
			p.RequestID = rid
		}
	}
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(p.Status)
	_ = json.NewEncoder(w).Encode(p)
}

// WriteStatus is the short form: status + title + detail.
func WriteStatus(w http.ResponseWriter, r *http.Request, status int, title, detail string) {
	Write(w, r, Problem{Status: status, Title: title, Detail: detail})
}

// WriteValidation writes a 400 problem carrying every field violation from ve.
func WriteValidation(w http.ResponseWriter, r *http.Request, ve *schemas.ValidationError) {
	Write(w, r, Problem{
		Status:      http.StatusBadRequest,
		Title:       "Bad Request",
		Detail:      "payload does not match the " + ve.Shape + " shape",
		FieldErrors: ve.Fields,
	})
}
