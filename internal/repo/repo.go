package repo

import (
	"github.com/nvquang/libsys/internal/pg"
	bookrepo "github.com/nvquang/libsys/internal/repo/book-repo"
	borrowrepo "github.com/nvquang/libsys/internal/repo/borrow-repo"
	chargerepo "github.com/nvquang/libsys/internal/repo/charge-repo"
	notificationrepo "github.com/nvquang/libsys/internal/repo/notification-repo"
	userrepo "github.com/nvquang/libsys/internal/repo/user-repo"
	"github.com/nvquang/libsys/internal/service/authservice"
	"github.com/nvquang/libsys/internal/service/borrowservice"
	"github.com/nvquang/libsys/internal/service/notifyservice"
	"github.com/nvquang/libsys/internal/service/paymentservice"
)

// ChargeRepo joins the two views of the compensation-charge table:
// the borrow side only creates charges, the payment side settles them.
type ChargeRepo interface {
	borrowservice.ChargeRepo
	paymentservice.ChargeRepo
}

// BorrowRepo joins the lifecycle view of borrowings with the narrower
// payment view that only flips payment_status.
type BorrowRepo interface {
	borrowservice.Repo
	paymentservice.BorrowRepo
}

type Repositories struct {
	UserRepo         authservice.Repo
	BorrowRepo       BorrowRepo
	BookRepo         borrowservice.BookRepo
	ChargeRepo       ChargeRepo
	NotificationRepo notifyservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	borrowRepo := borrowrepo.New(conn)
	bookRepo := bookrepo.New(conn)
	chargeRepo := chargerepo.New(conn)
	notificationRepo := notificationrepo.New(conn)

	return &Repositories{
		UserRepo:         userRepo,
		BorrowRepo:       borrowRepo,
		BookRepo:         bookRepo,
		ChargeRepo:       chargeRepo,
		NotificationRepo: notificationRepo,
	}
}
