package chargerepo

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

const columns = "id, borrowing_id, damage_type, reason, evidence_image, amount, txn_ref, payment_status, payment_date, created_at"

func scanCharge(row pgx.Row) (*domain.CompensationCharge, error) {
	var charge domain.CompensationCharge
	err := row.Scan(
		&charge.ID, &charge.BorrowingID, &charge.DamageType, &charge.Reason, &charge.EvidenceImage,
		&charge.Amount, &charge.TxnRef, &charge.PaymentStatus, &charge.PaymentDate, &charge.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &charge, nil
}

func (r *Repository) Create(ctx context.Context, charge *domain.CompensationCharge) (*domain.CompensationCharge, error) {
	query := `
		INSERT INTO compensation_charges (borrowing_id, damage_type, reason, evidence_image, amount, payment_status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		charge.BorrowingID, charge.DamageType, charge.Reason, charge.EvidenceImage,
		charge.Amount, charge.PaymentStatus,
	).Scan(&charge.ID, &charge.CreatedAt)
	if err != nil {
		zap.L().Error("can't save compensation charge", zap.Error(err))
		return nil, err
	}
	return charge, nil
}

func (r *Repository) FindOpenByBorrowingID(ctx context.Context, borrowingID int) (*domain.CompensationCharge, error) {
	query := `
        SELECT ` + columns + `
        FROM compensation_charges
        WHERE borrowing_id = $1 AND payment_status <> 'completed'
    `
	charge, err := scanCharge(r.db.QueryRow(ctx, query, borrowingID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find open charge", zap.Error(err))
		return nil, err
	}
	return charge, nil
}

func (r *Repository) FindByTxnRef(ctx context.Context, txnRef string) (*domain.CompensationCharge, error) {
	query := `
        SELECT ` + columns + `
        FROM compensation_charges
        WHERE txn_ref = $1
    `
	charge, err := scanCharge(r.db.QueryRow(ctx, query, txnRef))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find charge by txn_ref", zap.Error(err))
		return nil, err
	}
	return charge, nil
}

// AssignTxnRef stamps a reference onto a charge that is still payable and
// resets it to pending. Guarded against completed charges.
func (r *Repository) AssignTxnRef(ctx context.Context, chargeID int, txnRef string) (*domain.CompensationCharge, error) {
	query := `
		UPDATE compensation_charges
		SET txn_ref = $2, payment_status = 'pending'
		WHERE id = $1 AND payment_status <> 'completed'
		RETURNING ` + columns + `
	`
	charge, err := scanCharge(r.db.QueryRow(ctx, query, chargeID, txnRef))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't assign txn_ref", zap.Error(err))
		return nil, err
	}
	return charge, nil
}

// MarkCompleted finalizes a charge. The payment_status guard makes racing
// verifications safe: only one of them gets the updated row, and the
// amount plus payment_date are written in a single statement.
func (r *Repository) MarkCompleted(ctx context.Context, txnRef string, paymentDate time.Time) (*domain.CompensationCharge, error) {
	query := `
		UPDATE compensation_charges
		SET payment_status = 'completed', payment_date = $2
		WHERE txn_ref = $1 AND payment_status = 'pending'
		RETURNING ` + columns + `
	`
	charge, err := scanCharge(r.db.QueryRow(ctx, query, txnRef, paymentDate))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't mark charge completed", zap.Error(err))
		return nil, err
	}
	return charge, nil
}

func (r *Repository) MarkFailed(ctx context.Context, txnRef string) (*domain.CompensationCharge, error) {
	query := `
		UPDATE compensation_charges
		SET payment_status = 'failed'
		WHERE txn_ref = $1 AND payment_status = 'pending'
		RETURNING ` + columns + `
	`
	charge, err := scanCharge(r.db.QueryRow(ctx, query, txnRef))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't mark charge failed", zap.Error(err))
		return nil, err
	}
	return charge, nil
}

func (r *Repository) FindPending(ctx context.Context, limit uint32) ([]domain.CompensationCharge, error) {
	query := `
        SELECT ` + columns + `
        FROM compensation_charges
		WHERE payment_status = 'pending' AND txn_ref <> ''
        ORDER BY created_at ASC
		LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get pending charges", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var charges []domain.CompensationCharge
	for rows.Next() {
		charge, err := scanCharge(rows)
		if err != nil {
			zap.L().Error("can't scan charge row", zap.Error(err))
			return nil, err
		}
		charges = append(charges, *charge)
	}
	return charges, nil
}

// SummarizeCompleted recomputes the fund total from scratch in one
// statement, so the sum and count always describe the same snapshot.
func (r *Repository) SummarizeCompleted(ctx context.Context) (float64, int, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0), COUNT(*)
        FROM compensation_charges
        WHERE payment_status = 'completed'
    `
	var total float64
	var count int
	err := r.db.QueryRow(ctx, query).Scan(&total, &count)
	if err != nil {
		zap.L().Error("can't summarize completed charges", zap.Error(err))
		return 0, 0, err
	}
	return total, count, nil
}

func (r *Repository) FindRecentCompleted(ctx context.Context, limit int) ([]domain.FundEntry, error) {
	query := `
        SELECT c.id, b.book_title, b.full_name, b.student_id, c.damage_type, c.amount, c.payment_date
        FROM compensation_charges c
        JOIN borrowings b ON b.id = c.borrowing_id
        WHERE c.payment_status = 'completed'
        ORDER BY c.payment_date DESC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't get recent completed charges", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.FundEntry
	for rows.Next() {
		var entry domain.FundEntry
		err := rows.Scan(&entry.ChargeID, &entry.BookTitle, &entry.FullName, &entry.StudentID, &entry.DamageType, &entry.Amount, &entry.PaymentDate)
		if err != nil {
			zap.L().Error("can't scan fund entry", zap.Error(err))
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
