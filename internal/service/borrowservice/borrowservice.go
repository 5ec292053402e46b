package borrowservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nvquang/libsys/internal/domain"
	"github.com/nvquang/libsys/internal/pg"
	"go.uber.org/zap"
)

type Repo interface {
	Save(ctx context.Context, record *domain.BorrowRecord) (*domain.BorrowRecord, error)
	FindByID(ctx context.Context, id int) (*domain.BorrowRecord, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.BorrowRecord, error)
	FindAll(ctx context.Context) ([]domain.BorrowRecord, error)
	CloseFromBorrowed(ctx context.Context, id int, status string, paymentStatus string, returnDate time.Time) (*domain.BorrowRecord, error)
}

type BookRepo interface {
	DecrementAvailable(ctx context.Context, bookID, qty int) (bool, error)
	IncrementAvailable(ctx context.Context, bookID, qty int) error
}

type ChargeRepo interface {
	Create(ctx context.Context, charge *domain.CompensationCharge) (*domain.CompensationCharge, error)
}

type Notifier interface {
	Notify(ctx context.Context, userID int, kind, title, message, data string) error
}

// PricingFn computes the compensation amount for a lost or broken item.
// The default charges a flat rate per copy; deployments plug in their own.
type PricingFn func(record *domain.BorrowRecord, damageType string) float64

type Service struct {
	repo       Repo
	bookRepo   BookRepo
	chargeRepo ChargeRepo
	notifier   Notifier
	txManager  pg.TXManager
	price      PricingFn
}

func New(repo Repo, bookRepo BookRepo, chargeRepo ChargeRepo, notifier Notifier, txManager pg.TXManager) *Service {
	return &Service{
		repo:       repo,
		bookRepo:   bookRepo,
		chargeRepo: chargeRepo,
		notifier:   notifier,
		txManager:  txManager,
		price:      DefaultPricing,
	}
}

func (s *Service) SetPricing(fn PricingFn) {
	s.price = fn
}

const (
	// StatusBorrowed is the initial state of a borrow record.
	StatusBorrowed string = "borrowed"
	// StatusReturned means the copies came back undamaged.
	StatusReturned string = "returned"
	// StatusLost means the borrower reported the copies lost.
	StatusLost string = "lost"
	// StatusBroken means the copies came back damaged.
	StatusBroken string = "broken"

	PaymentNone      string = "none"
	PaymentPending   string = "pending"
	PaymentCompleted string = "completed"
	PaymentFailed    string = "failed"
)

const defaultCompensationPerCopy = 100000

func DefaultPricing(record *domain.BorrowRecord, damageType string) float64 {
	amount := float64(defaultCompensationPerCopy * record.Quantity)
	if damageType == StatusBroken {
		// damaged copies are usually repairable, charge half
		amount /= 2
	}
	return amount
}

var (
	ErrBookRequired      = errors.New("book id and title are required")
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrNoAvailableCopies = errors.New("no available copies")
	ErrBorrowNotFound    = errors.New("borrow record not found")
	ErrAlreadyClosed     = errors.New("borrow record is already closed")
	ErrReasonRequired    = errors.New("reason is required for a broken report")
	ErrUnknownDamageType = errors.New("unknown damage type")
)

type Borrower struct {
	UserID    int
	FullName  string
	StudentID string
	Email     string
}

// OpenBorrow creates a borrow record and decrements catalog availability
// in one transaction, so a failed decrement leaves no record behind.
func (s *Service) OpenBorrow(ctx context.Context, borrower Borrower, bookID int, bookTitle string, quantity int, borrowDate time.Time) (*domain.BorrowRecord, error) {
	if bookID == 0 || bookTitle == "" {
		return nil, ErrBookRequired
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if borrowDate.IsZero() {
		borrowDate = time.Now()
	}

	record := &domain.BorrowRecord{
		UserID:        borrower.UserID,
		FullName:      borrower.FullName,
		StudentID:     borrower.StudentID,
		Email:         borrower.Email,
		BookID:        bookID,
		BookTitle:     bookTitle,
		Quantity:      quantity,
		Status:        StatusBorrowed,
		PaymentStatus: PaymentNone,
		BorrowDate:    borrowDate,
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.bookRepo.DecrementAvailable(ctx, bookID, quantity)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNoAvailableCopies
		}
		saved, err := s.repo.Save(ctx, record)
		if err != nil {
			return err
		}
		record = saved
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrNoAvailableCopies) {
			zap.L().Error("can't open borrow", zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("borrow opened", zap.Int("borrowID", record.ID), zap.Int("bookID", bookID))
	return record, nil
}

// ReportReturn closes a borrow as returned and restocks the catalog.
// Only valid from the borrowed state; the guard is a conditional update.
func (s *Service) ReportReturn(ctx context.Context, borrowID int) (*domain.BorrowRecord, error) {
	var record *domain.BorrowRecord
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		updated, err := s.repo.CloseFromBorrowed(ctx, borrowID, StatusReturned, PaymentNone, time.Now())
		if err != nil {
			return err
		}
		if updated == nil {
			return s.closedOrMissing(ctx, borrowID)
		}
		if err := s.bookRepo.IncrementAvailable(ctx, updated.BookID, updated.Quantity); err != nil {
			return err
		}
		record = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("borrow returned", zap.Int("borrowID", borrowID))
	return record, nil
}

// ReportLossOrDamage closes a borrow as lost or broken and opens a
// compensation charge for it. Two racing reports cannot both succeed:
// the second one loses the conditional update and gets ErrAlreadyClosed.
func (s *Service) ReportLossOrDamage(ctx context.Context, borrowID int, damageType, reason, evidenceImage string) (*domain.BorrowRecord, *domain.CompensationCharge, error) {
	if damageType != StatusLost && damageType != StatusBroken {
		return nil, nil, ErrUnknownDamageType
	}
	if damageType == StatusBroken && reason == "" {
		return nil, nil, ErrReasonRequired
	}

	var record *domain.BorrowRecord
	var charge *domain.CompensationCharge
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		updated, err := s.repo.CloseFromBorrowed(ctx, borrowID, damageType, PaymentPending, time.Now())
		if err != nil {
			return err
		}
		if updated == nil {
			return s.closedOrMissing(ctx, borrowID)
		}

		created, err := s.chargeRepo.Create(ctx, &domain.CompensationCharge{
			BorrowingID:   updated.ID,
			DamageType:    damageType,
			Reason:        reason,
			EvidenceImage: evidenceImage,
			Amount:        s.price(updated, damageType),
			PaymentStatus: PaymentPending,
		})
		if err != nil {
			return err
		}
		record = updated
		charge = created
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.notifyStaff(ctx, record, charge)

	zap.L().Info("loss or damage reported",
		zap.Int("borrowID", borrowID),
		zap.String("damageType", damageType),
		zap.Float64("amount", charge.Amount),
	)
	return record, charge, nil
}

// closedOrMissing turns a failed conditional update into the right error.
func (s *Service) closedOrMissing(ctx context.Context, borrowID int) error {
	existing, err := s.repo.FindByID(ctx, borrowID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrBorrowNotFound
	}
	return ErrAlreadyClosed
}

// notifyStaff is best effort: a slow or failed notification must never
// roll back the state transition, so the error is only logged.
func (s *Service) notifyStaff(ctx context.Context, record *domain.BorrowRecord, charge *domain.CompensationCharge) {
	title := "Book reported " + record.Status
	message := fmt.Sprintf("%s reported %q as %s, compensation %.0f", record.FullName, record.BookTitle, record.Status, charge.Amount)
	if err := s.notifier.Notify(ctx, record.UserID, record.Status, title, message, ""); err != nil {
		zap.L().Warn("can't send notification", zap.Int("borrowID", record.ID), zap.Error(err))
	}
}

func (s *Service) ListByUser(ctx context.Context, userID int) ([]domain.BorrowRecord, error) {
	records, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get borrowings", zap.Error(err))
		return nil, err
	}
	return records, nil
}

func (s *Service) ListAll(ctx context.Context) ([]domain.BorrowRecord, error) {
	records, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to get borrowings", zap.Error(err))
		return nil, err
	}
	return records, nil
}
