package books

import (
	"context"

	"github.com/bookly-app/bookly-api/internal/schemas"
	"github.com/bookly-app/bookly-api/internal/store/dbx"
)

// GetByID returns the read view of one book. sql.ErrNoRows when absent.
func GetByID(ctx context.Context, g dbx.Getter, id int64) (schemas.Book, error) {
	row := g.QueryRowContext(ctx, `SELECT `+bookCols+` FROM books WHERE id = $1`, id)
	m, err := scanBook(row)
	if err != nil {
		return schemas.Book{}, err
	}
	return readView(m), nil
}

// ExistsByID reports whether a book with the given id exists.
func ExistsByID(ctx context.Context, g dbx.Getter, id int64) (bool, error) {
	var exists bool
	err := g.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM books WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

// List returns all books in creation order.
func List(ctx context.Context, q dbx.Queryer) ([]schemas.Book, error) {
	rows, err := q.QueryContext(ctx, `SELECT `+bookCols+` FROM books ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []schemas.Book{}
	for rows.Next() {
		m, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, readView(m))
	}
	return out, rows.Err()
}
