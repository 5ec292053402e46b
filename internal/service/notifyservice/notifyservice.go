package notifyservice

import (
	"context"

	"github.com/nvquang/libsys/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	Create(ctx context.Context, notification *domain.Notification) (*domain.Notification, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Notification, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{repo: repo}
}

func (s *Service) Notify(ctx context.Context, userID int, kind, title, message, data string) error {
	notification := &domain.Notification{
		UserID:  userID,
		Type:    kind,
		Title:   title,
		Message: message,
		Data:    data,
	}
	if _, err := s.repo.Create(ctx, notification); err != nil {
		zap.L().Error("can't create notification", zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) ListByUser(ctx context.Context, userID int) ([]domain.Notification, error) {
	return s.repo.FindByUserID(ctx, userID)
}
