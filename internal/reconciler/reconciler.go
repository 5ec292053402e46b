// Package reconciler drives pending compensation charges through
// gateway verification in the background, so payments complete even
// when the borrower never lands on the return URL.
package reconciler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nvquang/libsys/internal/domain"
	"github.com/nvquang/libsys/internal/service/borrowservice"
	"github.com/nvquang/libsys/internal/service/paymentservice"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var processingCharges sync.Map

type Payments interface {
	PendingCharges(ctx context.Context, limit uint32) ([]domain.CompensationCharge, error)
	VerifyTransaction(ctx context.Context, txnRef string) (*domain.CompensationCharge, *domain.BorrowRecord, error)
}

type Service struct {
	payments       Payments
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(payments Payments) *Service {
	return &Service{
		payments:       payments,
		limit:          1000,
		workerPool:     NewWorkerPool(10),
		updateInterval: time.Second * 5,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Payment reconciler started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping reconciler")
			return
		case <-ticker.C:
			s.processCharges(ctx)
		}
	}
}

func (s *Service) processCharges(ctx context.Context) {
	charges, err := s.payments.PendingCharges(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch charges for verification", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, charge := range charges {
		charge := charge

		if _, loaded := processingCharges.LoadOrStore(charge.TxnRef, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingCharges.Delete(charge.TxnRef)
				return s.handleCharge(ctx, charge)
			})
			if err != nil {
				processingCharges.Delete(charge.TxnRef)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error processing charges", zap.Error(err))
	}
}

func (s *Service) handleCharge(ctx context.Context, charge domain.CompensationCharge) error {
	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			verified, _, err := s.payments.VerifyTransaction(ctx, charge.TxnRef)
			if errors.Is(err, paymentservice.ErrGateway) {
				if attempt < maxRetries {
					retryAfter := retryInterval * time.Duration(attempt)
					zap.L().Warn(
						"Gateway unavailable, retrying",
						zap.String("txnRef", charge.TxnRef),
						zap.Int("attempt", attempt),
						zap.Duration("retryAfter", retryAfter),
					)
					time.Sleep(retryAfter)
					continue
				}
				return fmt.Errorf("failed to verify charge %s after %d retries: %w", charge.TxnRef, maxRetries, err)
			}
			if err != nil {
				return fmt.Errorf("failed to verify charge %s: %w", charge.TxnRef, err)
			}

			if verified.PaymentStatus == borrowservice.PaymentPending {
				zap.L().Info("Charge still pending at gateway", zap.String("txnRef", charge.TxnRef))
			}
			return nil
		}
	}
	return nil
}
