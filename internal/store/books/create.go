package books

import (
	"context"
	"database/sql"

	"github.com/bookly-app/bookly-api/internal/schemas"
)

// Create inserts a new book from its submission fields and returns the read
// view of the stored row.
func Create(ctx context.Context, db *sql.DB, in schemas.BookCreate) (schemas.Book, error) {
	row := db.QueryRowContext(ctx, `
		INSERT INTO books (title, author, isbn, description)
		VALUES ($1, $2, $3, $4)
		RETURNING `+bookCols,
		in.Title, in.Author, in.ISBN, in.Description,
	)
	m, err := scanBook(row)
	if err != nil {
		return schemas.Book{}, err
	}
	return readView(m), nil
}
