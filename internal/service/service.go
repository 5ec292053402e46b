package service

import (
	"context"

	"github.com/nvquang/libsys/internal/domain"
	"github.com/nvquang/libsys/internal/handlers/auth"
	"github.com/nvquang/libsys/internal/handlers/borrowings"
	"github.com/nvquang/libsys/internal/handlers/chat"
	"github.com/nvquang/libsys/internal/handlers/notifications"
	"github.com/nvquang/libsys/internal/handlers/payments"

	pkgauth "github.com/nvquang/libsys/pkg/auth"
	"github.com/nvquang/libsys/pkg/clients"

	"github.com/nvquang/libsys/internal/pg"
	"github.com/nvquang/libsys/internal/repo"
	authservice "github.com/nvquang/libsys/internal/service/authservice"
	borrowservice "github.com/nvquang/libsys/internal/service/borrowservice"
	chatservice "github.com/nvquang/libsys/internal/service/chatservice"
	notifyservice "github.com/nvquang/libsys/internal/service/notifyservice"
	paymentservice "github.com/nvquang/libsys/internal/service/paymentservice"
)

// PaymentService is the handler-facing payment surface plus the pending
// scan used by the reconciliation loop.
type PaymentService interface {
	payments.Service
	PendingCharges(ctx context.Context, limit uint32) ([]domain.CompensationCharge, error)
}

type Services struct {
	AuthService    auth.Service
	BorrowService  borrowings.Service
	PaymentService PaymentService
	ChatService    chat.Service
	NotifyService  notifications.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, gateway paymentservice.Gateway, httpClient clients.HTTPClientI, chatUpstream string) *Services {
	notifyService := notifyservice.New(repo.NotificationRepo)
	borrowService := borrowservice.New(repo.BorrowRepo, repo.BookRepo, repo.ChargeRepo, notifyService, txManager)
	paymentService := paymentservice.New(repo.ChargeRepo, repo.BorrowRepo, gateway, notifyService)
	chatService := chatservice.New(httpClient, chatUpstream)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:    authService,
		BorrowService:  borrowService,
		PaymentService: paymentService,
		ChatService:    chatService,
		NotifyService:  notifyService,
	}
}
