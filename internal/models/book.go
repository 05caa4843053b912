package models

import (
	"database/sql"
	"time"
)

// Book is the stored row shape: the union of the payload shapes' fields plus
// bookkeeping timestamps. PublishedDate stays null until the catalog fields
// are filled in.
type Book struct {
	ID            int64
	Title         string
	Author        string
	Publisher     string
	ISBN          string
	Description   string
	PublishedDate sql.NullTime
	PageCount     int64
	Language      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
