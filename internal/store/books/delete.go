package books

import (
	"context"
	"database/sql"

	"github.com/bookly-app/bookly-api/internal/store/dbx"
)

// Delete removes a book. sql.ErrNoRows when it never existed.
func Delete(ctx context.Context, db *sql.DB, id int64) error {
	return dbx.WithinTx(ctx, db, func(tx *sql.Tx) error {
		var exists bool
		if err := tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM books WHERE id = $1)`, id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return sql.ErrNoRows
		}

		res, err := tx.ExecContext(ctx, `DELETE FROM books WHERE id = $1`, id)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return sql.ErrNoRows
		}
		return nil
	})
}
