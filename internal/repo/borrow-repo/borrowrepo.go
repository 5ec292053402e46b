package borrowrepo

import (
	"context"
	"errors"
	"time"

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

const columns = "id, user_id, full_name, student_id, email, book_id, book_title, quantity, status, payment_status, borrow_date, return_date"

func scanRecord(row pgx.Row) (*domain.BorrowRecord, error) {
	var record domain.BorrowRecord
	err := row.Scan(
		&record.ID, &record.UserID, &record.FullName, &record.StudentID, &record.Email,
		&record.BookID, &record.BookTitle, &record.Quantity,
		&record.Status, &record.PaymentStatus, &record.BorrowDate, &record.ReturnDate,
	)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *Repository) Save(ctx context.Context, record *domain.BorrowRecord) (*domain.BorrowRecord, error) {
	query := `
		INSERT INTO borrowings (user_id, full_name, student_id, email, book_id, book_title, quantity, status, payment_status, borrow_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		record.UserID, record.FullName, record.StudentID, record.Email,
		record.BookID, record.BookTitle, record.Quantity,
		record.Status, record.PaymentStatus, record.BorrowDate,
	).Scan(&record.ID)
	if err != nil {
		zap.L().Error("can't save borrow record", zap.Error(err))
		return nil, err
	}
	return record, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.BorrowRecord, error) {
	query := `
        SELECT ` + columns + `
        FROM borrowings
        WHERE id = $1
    `
	record, err := scanRecord(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find borrow record", zap.Error(err))
		return nil, err
	}
	return record, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.BorrowRecord, error) {
	query := `
        SELECT ` + columns + `
        FROM borrowings
        WHERE user_id = $1
        ORDER BY borrow_date DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get borrowings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectRecords(rows)
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.BorrowRecord, error) {
	query := `
        SELECT ` + columns + `
        FROM borrowings
        ORDER BY borrow_date DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get borrowings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectRecords(rows)
}

func collectRecords(rows pgx.Rows) ([]domain.BorrowRecord, error) {
	var records []domain.BorrowRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			zap.L().Error("can't scan borrow row", zap.Error(err))
			return nil, err
		}
		records = append(records, *record)
	}
	return records, nil
}

// CloseFromBorrowed moves a record out of the borrowed state. The status
// guard in the WHERE clause is what serializes concurrent close attempts:
// only one caller gets the row back, the rest get nil.
func (r *Repository) CloseFromBorrowed(ctx context.Context, id int, status string, paymentStatus string, returnDate time.Time) (*domain.BorrowRecord, error) {
	query := `
		UPDATE borrowings
		SET status = $2, payment_status = $3, return_date = $4
		WHERE id = $1 AND status = 'borrowed'
		RETURNING ` + columns + `
	`
	record, err := scanRecord(r.db.QueryRow(ctx, query, id, status, paymentStatus, returnDate))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't close borrow record", zap.Error(err))
		return nil, err
	}
	return record, nil
}

func (r *Repository) SetPaymentStatus(ctx context.Context, id int, status string) (*domain.BorrowRecord, error) {
	query := `
		UPDATE borrowings
		SET payment_status = $2
		WHERE id = $1
		RETURNING ` + columns + `
	`
	record, err := scanRecord(r.db.QueryRow(ctx, query, id, status))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't update payment status", zap.Error(err))
		return nil, err
	}
	return record, nil
}
