package books

import (
	"context"
	"database/sql"

	"github.com/bookly-app/bookly-api/internal/schemas"
)

// Update replaces the editable catalog fields of an existing book.
// The id and published_date are never touched. sql.ErrNoRows when absent.
func Update(ctx context.Context, db *sql.DB, id int64, in schemas.BookUpdate) (schemas.Book, error) {
	row := db.QueryRowContext(ctx, `
		UPDATE books
		SET title = $1, author = $2, publisher = $3, page_count = $4, language = $5, updated_at = now()
		WHERE id = $6
		RETURNING `+bookCols,
		in.Title, in.Author, in.Publisher, in.PageCount, in.Language, id,
	)
	m, err := scanBook(row)
	if err != nil {
		return schemas.Book{}, err
	}
	return readView(m), nil
}
