package notificationrepo

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/nvquang/libsys/internal/domain"
)

func TestCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mock.Close()
	repo := New(mock)

	ctx := context.Background()
	now := time.Now()

	t.Run("Creates notification", func(t *testing.T) {
		n := &domain.Notification{
			UserID:  2,
			Type:    "compensation_required",
			Title:   "Book reported lost",
			Message: "A borrowed book was reported lost",
			Data:    `{"borrowing_id":7}`,
		}
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO notifications")).
			WithArgs(2, "compensation_required", "Book reported lost", "A borrowed book was reported lost", `{"borrowing_id":7}`).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(1, now))

		saved, err := repo.Create(ctx, n)
		assert.NoError(t, err)
		assert.Equal(t, 1, saved.ID)
		assert.Equal(t, now, saved.CreatedAt)
	})

	t.Run("Insert fails", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO notifications")).
			WithArgs(2, "compensation_required", "", "", "").
			WillReturnError(assert.AnError)

		_, err := repo.Create(ctx, &domain.Notification{UserID: 2, Type: "compensation_required"})
		assert.Error(t, err)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByUserID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mock.Close()
	repo := New(mock)

	ctx := context.Background()
	now := time.Now()

	rows := pgxmock.NewRows([]string{"id", "user_id", "type", "title", "message", "data", "created_at"}).
		AddRow(2, 5, "payment_completed", "Payment received", "Compensation paid", `{"charge_id":3}`, now).
		AddRow(1, 5, "compensation_required", "Book reported lost", "Pay the compensation", `{"borrowing_id":7}`, now.Add(-time.Hour))
	mock.ExpectQuery(regexp.QuoteMeta("FROM notifications")).
		WithArgs(5).
		WillReturnRows(rows)

	notifications, err := repo.FindByUserID(ctx, 5)
	assert.NoError(t, err)
	assert.Len(t, notifications, 2)
	assert.Equal(t, "payment_completed", notifications[0].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}
