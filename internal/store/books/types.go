// Package books persists book records in Postgres and serves the catalog
// read view, with an optional Redis cache in front of the list.
package books

import (
	"github.com/bookly-app/bookly-api/internal/models"
	"github.com/bookly-app/bookly-api/internal/schemas"
)

// bookCols is the full column set scanned into models.Book, in scan order.
const bookCols = `id, title, author, publisher, isbn, description, published_date, page_count, language, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBook(s rowScanner) (models.Book, error) {
	var m models.Book
	err := s.Scan(
		&m.ID, &m.Title, &m.Author, &m.Publisher, &m.ISBN, &m.Description,
		&m.PublishedDate, &m.PageCount, &m.Language, &m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}

// readView projects a stored row onto the Book payload shape. An unset
// published_date surfaces as the zero time.
func readView(m models.Book) schemas.Book {
	b := schemas.Book{
		ID:        m.ID,
		Title:     m.Title,
		Author:    m.Author,
		Publisher: m.Publisher,
		PageCount: m.PageCount,
		Language:  m.Language,
	}
	if m.PublishedDate.Valid {
		b.PublishedDate = m.PublishedDate.Time.UTC()
	}
	return b
}
