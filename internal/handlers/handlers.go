package handlers

import (
	"net/http"

	_ "github.com/nvquang/libsys/docs"
	authhandlers "github.com/nvquang/libsys/internal/handlers/auth"
	borrowinghandlers "github.com/nvquang/libsys/internal/handlers/borrowings"
	chathandlers "github.com/nvquang/libsys/internal/handlers/chat"
	notificationhandlers "github.com/nvquang/libsys/internal/handlers/notifications"
	paymenthandlers "github.com/nvquang/libsys/internal/handlers/payments"
	"github.com/nvquang/libsys/internal/service"
	"github.com/nvquang/libsys/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type BorrowingsHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Return(w http.ResponseWriter, r *http.Request)
	ReportLost(w http.ResponseWriter, r *http.Request)
	ReportBroken(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
}

type PaymentsHandler interface {
	Initiate(w http.ResponseWriter, r *http.Request)
	Verify(w http.ResponseWriter, r *http.Request)
	FundSummary(w http.ResponseWriter, r *http.Request)
}

type ChatHandler interface {
	Ask(w http.ResponseWriter, r *http.Request)
}

type NotificationsHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler          AuthHandler
	BorrowingsHandler    BorrowingsHandler
	PaymentsHandler      PaymentsHandler
	ChatHandler          ChatHandler
	NotificationsHandler NotificationsHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:          authhandlers.New(s.AuthService),
		BorrowingsHandler:    borrowinghandlers.New(s.BorrowService),
		PaymentsHandler:      paymenthandlers.New(s.PaymentService),
		ChatHandler:          chathandlers.New(s.ChatService),
		NotificationsHandler: notificationhandlers.New(s.NotifyService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)
	})

	// Return callback hit by the payment gateway redirect, no auth.
	r.Get("/api/vnpay/verify", h.PaymentsHandler.Verify)

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Route("/api/borrowings", func(r chi.Router) {
			r.Post("/", h.BorrowingsHandler.Create)
			r.Get("/", h.BorrowingsHandler.List)
			r.Put("/{id}/return", h.BorrowingsHandler.Return)
			r.Put("/{id}/report-lost", h.BorrowingsHandler.ReportLost)
			r.Put("/{id}/report-broken", h.BorrowingsHandler.ReportBroken)
			r.Post("/{id}/payment", h.PaymentsHandler.Initiate)

			r.Group(func(r chi.Router) {
				r.Use(auth.AdminOnly)
				r.Get("/all", h.BorrowingsHandler.ListAll)
				r.Get("/fund/summary", h.PaymentsHandler.FundSummary)
			})
		})

		r.Get("/api/notifications", h.NotificationsHandler.List)
		r.Post("/api/chat", h.ChatHandler.Ask)
	})

	return r
}
