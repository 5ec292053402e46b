package bookrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/nvquang/libsys/internal/domain"
	"github.com/nvquang/libsys/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Book, error) {
	query := `
        SELECT id, title, author, total_copies, available_copies
        FROM books
        WHERE id = $1
    `
	var book domain.Book
	err := r.db.QueryRow(ctx, query, id).Scan(&book.ID, &book.Title, &book.Author, &book.TotalCopies, &book.AvailableCopies)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find book", zap.Error(err))
		return nil, err
	}
	return &book, nil
}

// DecrementAvailable takes qty copies off the shelf. The availability
// guard in the WHERE clause makes the decrement atomic; the bool result
// reports whether any row matched.
func (r *Repository) DecrementAvailable(ctx context.Context, bookID, qty int) (bool, error) {
	query := `
		UPDATE books
		SET available_copies = available_copies - $2
		WHERE id = $1 AND available_copies >= $2
	`
	tag, err := r.db.Exec(ctx, query, bookID, qty)
	if err != nil {
		zap.L().Error("can't decrement available copies", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) IncrementAvailable(ctx context.Context, bookID, qty int) error {
	query := `
		UPDATE books
		SET available_copies = available_copies + $2
		WHERE id = $1
	`
	if _, err := r.db.Exec(ctx, query, bookID, qty); err != nil {
		zap.L().Error("can't increment available copies", zap.Error(err))
		return err
	}
	return nil
}
