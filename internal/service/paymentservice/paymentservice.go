package paymentservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nvquang/libsys/internal/domain"
	"github.com/nvquang/libsys/internal/service/borrowservice"
	"go.uber.org/zap"
)

type ChargeRepo interface {
	FindOpenByBorrowingID(ctx context.Context, borrowingID int) (*domain.CompensationCharge, error)
	FindByTxnRef(ctx context.Context, txnRef string) (*domain.CompensationCharge, error)
	AssignTxnRef(ctx context.Context, chargeID int, txnRef string) (*domain.CompensationCharge, error)
	MarkCompleted(ctx context.Context, txnRef string, paymentDate time.Time) (*domain.CompensationCharge, error)
	MarkFailed(ctx context.Context, txnRef string) (*domain.CompensationCharge, error)
	FindPending(ctx context.Context, limit uint32) ([]domain.CompensationCharge, error)
	SummarizeCompleted(ctx context.Context) (float64, int, error)
	FindRecentCompleted(ctx context.Context, limit int) ([]domain.FundEntry, error)
}

type BorrowRepo interface {
	FindByID(ctx context.Context, id int) (*domain.BorrowRecord, error)
	SetPaymentStatus(ctx context.Context, id int, status string) (*domain.BorrowRecord, error)
}

// Gateway statuses as reported by the external payment provider.
const (
	GatewaySuccess string = "success"
	GatewayFailed  string = "failed"
	GatewayPending string = "pending"
)

type Gateway interface {
	PaymentURL(txnRef string, amount float64, orderInfo string) (string, error)
	QueryTransaction(ctx context.Context, txnRef string) (string, error)
}

type Notifier interface {
	Notify(ctx context.Context, userID int, kind, title, message, data string) error
}

type Service struct {
	chargeRepo ChargeRepo
	borrowRepo BorrowRepo
	gateway    Gateway
	notifier   Notifier
}

func New(chargeRepo ChargeRepo, borrowRepo BorrowRepo, gateway Gateway, notifier Notifier) *Service {
	return &Service{
		chargeRepo: chargeRepo,
		borrowRepo: borrowRepo,
		gateway:    gateway,
		notifier:   notifier,
	}
}

var (
	ErrTxnNotFound  = errors.New("transaction reference not found")
	ErrNoOpenCharge = errors.New("no payable charge for this borrowing")
	ErrGateway      = errors.New("payment gateway request failed")
)

type InitiatedPayment struct {
	TxnRef     string
	PaymentURL string
	Amount     float64
}

// InitiatePayment hands out a gateway redirect for the open charge of a
// borrowing. Idempotent per borrowing: while a charge is pending with a
// reference assigned, the same reference is reused; a fresh one is minted
// only for the first call or a retry after failure.
func (s *Service) InitiatePayment(ctx context.Context, borrowID int) (*InitiatedPayment, error) {
	borrow, err := s.borrowRepo.FindByID(ctx, borrowID)
	if err != nil {
		zap.L().Error("can't find borrow record", zap.Error(err))
		return nil, err
	}
	if borrow == nil {
		return nil, borrowservice.ErrBorrowNotFound
	}

	charge, err := s.chargeRepo.FindOpenByBorrowingID(ctx, borrowID)
	if err != nil {
		zap.L().Error("can't find open charge", zap.Error(err))
		return nil, err
	}
	if charge == nil || charge.PaymentStatus == borrowservice.PaymentCompleted {
		return nil, ErrNoOpenCharge
	}

	if charge.TxnRef == "" || charge.PaymentStatus == borrowservice.PaymentFailed {
		assigned, err := s.chargeRepo.AssignTxnRef(ctx, charge.ID, uuid.NewString())
		if err != nil {
			zap.L().Error("can't assign transaction reference", zap.Error(err))
			return nil, err
		}
		if assigned == nil {
			// the charge settled under us while we were minting a reference
			return nil, ErrNoOpenCharge
		}
		charge = assigned
	}

	url, err := s.gateway.PaymentURL(charge.TxnRef, charge.Amount, fmt.Sprintf("Compensation for borrowing #%d", borrowID))
	if err != nil {
		zap.L().Error("can't build payment url", zap.Error(err))
		return nil, errors.Join(ErrGateway, err)
	}

	zap.L().Info("payment initiated", zap.Int("borrowID", borrowID), zap.String("txnRef", charge.TxnRef))
	return &InitiatedPayment{
		TxnRef:     charge.TxnRef,
		PaymentURL: url,
		Amount:     charge.Amount,
	}, nil
}

// VerifyTransaction resolves a charge by querying the gateway out-of-band.
// A client-supplied success flag is never trusted. Safe to call repeatedly
// for the same reference: an already completed charge is left untouched,
// and concurrent verifications are serialized by conditional updates on
// payment_status, not by locks.
func (s *Service) VerifyTransaction(ctx context.Context, txnRef string) (*domain.CompensationCharge, *domain.BorrowRecord, error) {
	charge, err := s.chargeRepo.FindByTxnRef(ctx, txnRef)
	if err != nil {
		zap.L().Error("can't find charge by txnRef", zap.Error(err))
		return nil, nil, err
	}
	if charge == nil {
		return nil, nil, ErrTxnNotFound
	}

	if charge.PaymentStatus != borrowservice.PaymentCompleted {
		status, err := s.gateway.QueryTransaction(ctx, txnRef)
		if err != nil {
			zap.L().Error("gateway query failed", zap.String("txnRef", txnRef), zap.Error(err))
			return nil, nil, errors.Join(ErrGateway, err)
		}

		switch status {
		case GatewaySuccess:
			charge, err = s.complete(ctx, charge, txnRef)
		case GatewayFailed:
			charge, err = s.fail(ctx, charge, txnRef)
		case GatewayPending:
			// ambiguous, leave the charge pending and let the caller re-poll
			zap.L().Info("gateway still pending", zap.String("txnRef", txnRef))
		default:
			zap.L().Warn("unrecognized gateway status", zap.String("txnRef", txnRef), zap.String("status", status))
		}
		if err != nil {
			return nil, nil, err
		}
	}

	borrow, err := s.borrowRepo.FindByID(ctx, charge.BorrowingID)
	if err != nil {
		zap.L().Error("can't find borrow record", zap.Error(err))
		return nil, nil, err
	}
	return charge, borrow, nil
}

func (s *Service) complete(ctx context.Context, charge *domain.CompensationCharge, txnRef string) (*domain.CompensationCharge, error) {
	updated, err := s.chargeRepo.MarkCompleted(ctx, txnRef, time.Now())
	if err != nil {
		zap.L().Error("can't mark charge completed", zap.Error(err))
		return nil, err
	}
	if updated == nil {
		// lost the race to another verification, re-read the final state
		return s.chargeRepo.FindByTxnRef(ctx, txnRef)
	}
	borrow, err := s.borrowRepo.SetPaymentStatus(ctx, charge.BorrowingID, borrowservice.PaymentCompleted)
	if err != nil {
		zap.L().Error("can't update borrow payment status", zap.Error(err))
		return nil, err
	}
	if borrow != nil {
		s.notifyPaid(ctx, borrow, updated)
	}
	zap.L().Info("payment completed", zap.String("txnRef", txnRef), zap.Float64("amount", updated.Amount))
	return updated, nil
}

// notifyPaid is best effort, like the loss/damage notification: the
// completed payment must never be rolled back by a notification failure,
// so the error is only logged.
func (s *Service) notifyPaid(ctx context.Context, borrow *domain.BorrowRecord, charge *domain.CompensationCharge) {
	title := "Payment confirmed"
	message := fmt.Sprintf("Compensation of %.0f for %q was received", charge.Amount, borrow.BookTitle)
	if err := s.notifier.Notify(ctx, borrow.UserID, "payment", title, message, charge.TxnRef); err != nil {
		zap.L().Warn("can't send notification", zap.String("txnRef", charge.TxnRef), zap.Error(err))
	}
}

func (s *Service) fail(ctx context.Context, charge *domain.CompensationCharge, txnRef string) (*domain.CompensationCharge, error) {
	updated, err := s.chargeRepo.MarkFailed(ctx, txnRef)
	if err != nil {
		zap.L().Error("can't mark charge failed", zap.Error(err))
		return nil, err
	}
	if updated == nil {
		return s.chargeRepo.FindByTxnRef(ctx, txnRef)
	}
	if _, err := s.borrowRepo.SetPaymentStatus(ctx, charge.BorrowingID, borrowservice.PaymentFailed); err != nil {
		zap.L().Error("can't update borrow payment status", zap.Error(err))
		return nil, err
	}
	// the charge stays payable, InitiatePayment may retry with a fresh reference
	zap.L().Info("payment failed", zap.String("txnRef", txnRef))
	return updated, nil
}

type FundSummary struct {
	TotalFund    float64
	TotalRecords int
	Recent       []domain.FundEntry
}

// SummarizeFund recomputes the compensation fund from the charges table on
// every call. No cached counter: out-of-band corrections are picked up on
// the next read.
func (s *Service) SummarizeFund(ctx context.Context, recentLimit int) (*FundSummary, error) {
	total, count, err := s.chargeRepo.SummarizeCompleted(ctx)
	if err != nil {
		zap.L().Error("can't summarize fund", zap.Error(err))
		return nil, err
	}

	recent, err := s.chargeRepo.FindRecentCompleted(ctx, recentLimit)
	if err != nil {
		zap.L().Error("can't fetch recent completed charges", zap.Error(err))
		return nil, err
	}

	return &FundSummary{
		TotalFund:    total,
		TotalRecords: count,
		Recent:       recent,
	}, nil
}

// PendingCharges lists charges awaiting verification, for the reconciler.
func (s *Service) PendingCharges(ctx context.Context, limit uint32) ([]domain.CompensationCharge, error) {
	charges, err := s.chargeRepo.FindPending(ctx, limit)
	if err != nil {
		zap.L().Error("can't fetch pending charges", zap.Error(err))
		return nil, err
	}
	return charges, nil
}
