package paymentservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nvquang/libsys/internal/domain"
	"github.com/nvquang/libsys/internal/service/borrowservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockChargeRepo, *MockBorrowRepo, *MockGateway, *MockNotifier) {
	ctrl := gomock.NewController(t)
	chargeRepo := NewMockChargeRepo(ctrl)
	borrowRepo := NewMockBorrowRepo(ctrl)
	gateway := NewMockGateway(ctrl)
	notifier := NewMockNotifier(ctrl)
	service := New(chargeRepo, borrowRepo, gateway, notifier)
	defer ctrl.Finish()
	return service, chargeRepo, borrowRepo, gateway, notifier
}

func TestInitiatePayment(t *testing.T) {
	service, chargeRepo, borrowRepo, gateway, _ := NewMock(t)

	tests := []struct {
		name           string
		borrowID       int
		prepareMock    func()
		expectedTxnRef string
		expectedError  error
	}{
		{
			name:     "First initiation assigns a reference",
			borrowID: 1,
			prepareMock: func() {
				borrowRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.BorrowRecord{ID: 1, Status: borrowservice.StatusBroken}, nil)
				chargeRepo.EXPECT().FindOpenByBorrowingID(gomock.Any(), 1).
					Return(&domain.CompensationCharge{ID: 5, BorrowingID: 1, Amount: 50000, PaymentStatus: borrowservice.PaymentPending}, nil)
				chargeRepo.EXPECT().AssignTxnRef(gomock.Any(), 5, gomock.Any()).DoAndReturn(func(ctx context.Context, chargeID int, txnRef string) (*domain.CompensationCharge, error) {
					return &domain.CompensationCharge{ID: 5, BorrowingID: 1, Amount: 50000, TxnRef: txnRef, PaymentStatus: borrowservice.PaymentPending}, nil
				})
				gateway.EXPECT().PaymentURL(gomock.Any(), 50000.0, gomock.Any()).Return("https://gateway.local/pay?ref=x", nil)
			},
		},
		{
			name:     "Second initiation reuses the pending reference",
			borrowID: 1,
			prepareMock: func() {
				borrowRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.BorrowRecord{ID: 1, Status: borrowservice.StatusBroken}, nil)
				chargeRepo.EXPECT().FindOpenByBorrowingID(gomock.Any(), 1).
					Return(&domain.CompensationCharge{ID: 5, BorrowingID: 1, Amount: 50000, TxnRef: "ref-1", PaymentStatus: borrowservice.PaymentPending}, nil)
				gateway.EXPECT().PaymentURL("ref-1", 50000.0, gomock.Any()).Return("https://gateway.local/pay?ref=ref-1", nil)
			},
			expectedTxnRef: "ref-1",
		},
		{
			name:     "Retry after failure mints a fresh reference",
			borrowID: 1,
			prepareMock: func() {
				borrowRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.BorrowRecord{ID: 1, Status: borrowservice.StatusBroken}, nil)
				chargeRepo.EXPECT().FindOpenByBorrowingID(gomock.Any(), 1).
					Return(&domain.CompensationCharge{ID: 5, BorrowingID: 1, Amount: 50000, TxnRef: "ref-1", PaymentStatus: borrowservice.PaymentFailed}, nil)
				chargeRepo.EXPECT().AssignTxnRef(gomock.Any(), 5, gomock.Any()).DoAndReturn(func(ctx context.Context, chargeID int, txnRef string) (*domain.CompensationCharge, error) {
					assert.NotEqual(t, "ref-1", txnRef)
					return &domain.CompensationCharge{ID: 5, BorrowingID: 1, Amount: 50000, TxnRef: txnRef, PaymentStatus: borrowservice.PaymentPending}, nil
				})
				gateway.EXPECT().PaymentURL(gomock.Any(), 50000.0, gomock.Any()).Return("https://gateway.local/pay?ref=y", nil)
			},
		},
		{
			name:     "Unknown borrow",
			borrowID: 99,
			prepareMock: func() {
				borrowRepo.EXPECT().FindByID(gomock.Any(), 99).Return(nil, nil)
			},
			expectedError: borrowservice.ErrBorrowNotFound,
		},
		{
			name:     "No open charge",
			borrowID: 1,
			prepareMock: func() {
				borrowRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.BorrowRecord{ID: 1, Status: borrowservice.StatusReturned}, nil)
				chargeRepo.EXPECT().FindOpenByBorrowingID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrNoOpenCharge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			payment, err := service.InitiatePayment(context.Background(), tt.borrowID)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, payment)
				return
			}
			assert.NoError(t, err)
			assert.NotEmpty(t, payment.TxnRef)
			assert.NotEmpty(t, payment.PaymentURL)
			if tt.expectedTxnRef != "" {
				assert.Equal(t, tt.expectedTxnRef, payment.TxnRef)
			}
		})
	}
}

func TestVerifyTransaction(t *testing.T) {
	service, chargeRepo, borrowRepo, gateway, notifier := NewMock(t)
	paymentDate := time.Now()

	tests := []struct {
		name           string
		txnRef         string
		prepareMock    func()
		expectedStatus string
		expectedError  error
	}{
		{
			name:   "Verified success completes the charge",
			txnRef: "ref-1",
			prepareMock: func() {
				chargeRepo.EXPECT().FindByTxnRef(gomock.Any(), "ref-1").
					Return(&domain.CompensationCharge{ID: 5, BorrowingID: 1, TxnRef: "ref-1", PaymentStatus: borrowservice.PaymentPending}, nil)
				gateway.EXPECT().QueryTransaction(gomock.Any(), "ref-1").Return(GatewaySuccess, nil)
				chargeRepo.EXPECT().MarkCompleted(gomock.Any(), "ref-1", gomock.Any()).
					Return(&domain.CompensationCharge{ID: 5, BorrowingID: 1, TxnRef: "ref-1", PaymentStatus: borrowservice.PaymentCompleted, PaymentDate: &paymentDate}, nil)
				borrowRepo.EXPECT().SetPaymentStatus(gomock.Any(), 1, borrowservice.PaymentCompleted).
					Return(&domain.BorrowRecord{ID: 1, UserID: 9, PaymentStatus: borrowservice.PaymentCompleted}, nil)
				notifier.EXPECT().Notify(gomock.Any(), 9, "payment", gomock.Any(), gomock.Any(), "ref-1").Return(nil)
				borrowRepo.EXPECT().FindByID(gomock.Any(), 1).
					Return(&domain.BorrowRecord{ID: 1, UserID: 9, PaymentStatus: borrowservice.PaymentCompleted}, nil)
			},
			expectedStatus: borrowservice.PaymentCompleted,
		},
		{
			name:   "Verified failure leaves the charge retryable",
			txnRef: "ref-2",
			prepareMock: func() {
				chargeRepo.EXPECT().FindByTxnRef(gomock.Any(), "ref-2").
					Return(&domain.CompensationCharge{ID: 6, BorrowingID: 2, TxnRef: "ref-2", PaymentStatus: borrowservice.PaymentPending}, nil)
				gateway.EXPECT().QueryTransaction(gomock.Any(), "ref-2").Return(GatewayFailed, nil)
				chargeRepo.EXPECT().MarkFailed(gomock.Any(), "ref-2").
					Return(&domain.CompensationCharge{ID: 6, BorrowingID: 2, TxnRef: "ref-2", PaymentStatus: borrowservice.PaymentFailed}, nil)
				borrowRepo.EXPECT().SetPaymentStatus(gomock.Any(), 2, borrowservice.PaymentFailed).
					Return(&domain.BorrowRecord{ID: 2, PaymentStatus: borrowservice.PaymentFailed}, nil)
				borrowRepo.EXPECT().FindByID(gomock.Any(), 2).
					Return(&domain.BorrowRecord{ID: 2, PaymentStatus: borrowservice.PaymentFailed}, nil)
			},
			expectedStatus: borrowservice.PaymentFailed,
		},
		{
			name:   "Gateway pending leaves the charge pending",
			txnRef: "ref-3",
			prepareMock: func() {
				chargeRepo.EXPECT().FindByTxnRef(gomock.Any(), "ref-3").
					Return(&domain.CompensationCharge{ID: 7, BorrowingID: 3, TxnRef: "ref-3", PaymentStatus: borrowservice.PaymentPending}, nil)
				gateway.EXPECT().QueryTransaction(gomock.Any(), "ref-3").Return(GatewayPending, nil)
				borrowRepo.EXPECT().FindByID(gomock.Any(), 3).
					Return(&domain.BorrowRecord{ID: 3, PaymentStatus: borrowservice.PaymentPending}, nil)
			},
			expectedStatus: borrowservice.PaymentPending,
		},
		{
			name:   "Unknown reference",
			txnRef: "nope",
			prepareMock: func() {
				chargeRepo.EXPECT().FindByTxnRef(gomock.Any(), "nope").Return(nil, nil)
			},
			expectedError: ErrTxnNotFound,
		},
		{
			name:   "Gateway error",
			txnRef: "ref-4",
			prepareMock: func() {
				chargeRepo.EXPECT().FindByTxnRef(gomock.Any(), "ref-4").
					Return(&domain.CompensationCharge{ID: 8, BorrowingID: 4, TxnRef: "ref-4", PaymentStatus: borrowservice.PaymentPending}, nil)
				gateway.EXPECT().QueryTransaction(gomock.Any(), "ref-4").Return("", errors.New("timeout"))
			},
			expectedError: ErrGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			charge, _, err := service.VerifyTransaction(context.Background(), tt.txnRef)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, charge.PaymentStatus)
		})
	}
}

func TestVerifyTransactionIdempotent(t *testing.T) {
	service, chargeRepo, borrowRepo, gateway, notifier := NewMock(t)
	paymentDate := time.Now()
	completed := &domain.CompensationCharge{ID: 5, BorrowingID: 1, TxnRef: "ref-1", Amount: 50000, PaymentStatus: borrowservice.PaymentCompleted, PaymentDate: &paymentDate}

	// first call drives the transition
	chargeRepo.EXPECT().FindByTxnRef(gomock.Any(), "ref-1").
		Return(&domain.CompensationCharge{ID: 5, BorrowingID: 1, TxnRef: "ref-1", Amount: 50000, PaymentStatus: borrowservice.PaymentPending}, nil)
	gateway.EXPECT().QueryTransaction(gomock.Any(), "ref-1").Return(GatewaySuccess, nil)
	chargeRepo.EXPECT().MarkCompleted(gomock.Any(), "ref-1", gomock.Any()).Return(completed, nil)
	borrowRepo.EXPECT().SetPaymentStatus(gomock.Any(), 1, borrowservice.PaymentCompleted).
		Return(&domain.BorrowRecord{ID: 1, UserID: 9, PaymentStatus: borrowservice.PaymentCompleted}, nil)
	notifier.EXPECT().Notify(gomock.Any(), 9, "payment", gomock.Any(), gomock.Any(), "ref-1").Return(nil)
	borrowRepo.EXPECT().FindByID(gomock.Any(), 1).
		Return(&domain.BorrowRecord{ID: 1, PaymentStatus: borrowservice.PaymentCompleted}, nil)

	first, _, err := service.VerifyTransaction(context.Background(), "ref-1")
	assert.NoError(t, err)

	// second call must not touch the gateway or write anything
	chargeRepo.EXPECT().FindByTxnRef(gomock.Any(), "ref-1").Return(completed, nil)
	borrowRepo.EXPECT().FindByID(gomock.Any(), 1).
		Return(&domain.BorrowRecord{ID: 1, PaymentStatus: borrowservice.PaymentCompleted}, nil)

	second, _, err := service.VerifyTransaction(context.Background(), "ref-1")
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestVerifyTransactionLostRace(t *testing.T) {
	service, chargeRepo, borrowRepo, gateway, _ := NewMock(t)
	paymentDate := time.Now()
	completed := &domain.CompensationCharge{ID: 5, BorrowingID: 1, TxnRef: "ref-1", PaymentStatus: borrowservice.PaymentCompleted, PaymentDate: &paymentDate}

	chargeRepo.EXPECT().FindByTxnRef(gomock.Any(), "ref-1").
		Return(&domain.CompensationCharge{ID: 5, BorrowingID: 1, TxnRef: "ref-1", PaymentStatus: borrowservice.PaymentPending}, nil)
	gateway.EXPECT().QueryTransaction(gomock.Any(), "ref-1").Return(GatewaySuccess, nil)
	// a concurrent verification already completed the charge
	chargeRepo.EXPECT().MarkCompleted(gomock.Any(), "ref-1", gomock.Any()).Return(nil, nil)
	chargeRepo.EXPECT().FindByTxnRef(gomock.Any(), "ref-1").Return(completed, nil)
	borrowRepo.EXPECT().FindByID(gomock.Any(), 1).
		Return(&domain.BorrowRecord{ID: 1, PaymentStatus: borrowservice.PaymentCompleted}, nil)

	charge, _, err := service.VerifyTransaction(context.Background(), "ref-1")
	assert.NoError(t, err)
	assert.Equal(t, borrowservice.PaymentCompleted, charge.PaymentStatus)
}

func TestVerifyTransactionNotifierFailure(t *testing.T) {
	service, chargeRepo, borrowRepo, gateway, notifier := NewMock(t)
	paymentDate := time.Now()

	chargeRepo.EXPECT().FindByTxnRef(gomock.Any(), "ref-1").
		Return(&domain.CompensationCharge{ID: 5, BorrowingID: 1, TxnRef: "ref-1", PaymentStatus: borrowservice.PaymentPending}, nil)
	gateway.EXPECT().QueryTransaction(gomock.Any(), "ref-1").Return(GatewaySuccess, nil)
	chargeRepo.EXPECT().MarkCompleted(gomock.Any(), "ref-1", gomock.Any()).
		Return(&domain.CompensationCharge{ID: 5, BorrowingID: 1, TxnRef: "ref-1", PaymentStatus: borrowservice.PaymentCompleted, PaymentDate: &paymentDate}, nil)
	borrowRepo.EXPECT().SetPaymentStatus(gomock.Any(), 1, borrowservice.PaymentCompleted).
		Return(&domain.BorrowRecord{ID: 1, UserID: 9, PaymentStatus: borrowservice.PaymentCompleted}, nil)
	// a broken notifier must not roll back the completed payment
	notifier.EXPECT().Notify(gomock.Any(), 9, "payment", gomock.Any(), gomock.Any(), "ref-1").
		Return(errors.New("notification store down"))
	borrowRepo.EXPECT().FindByID(gomock.Any(), 1).
		Return(&domain.BorrowRecord{ID: 1, UserID: 9, PaymentStatus: borrowservice.PaymentCompleted}, nil)

	charge, _, err := service.VerifyTransaction(context.Background(), "ref-1")
	assert.NoError(t, err)
	assert.Equal(t, borrowservice.PaymentCompleted, charge.PaymentStatus)
}

func TestInitiatePaymentAssignLostRace(t *testing.T) {
	service, chargeRepo, borrowRepo, _, _ := NewMock(t)

	borrowRepo.EXPECT().FindByID(gomock.Any(), 1).
		Return(&domain.BorrowRecord{ID: 1, Status: borrowservice.StatusBroken}, nil)
	chargeRepo.EXPECT().FindOpenByBorrowingID(gomock.Any(), 1).
		Return(&domain.CompensationCharge{ID: 5, BorrowingID: 1, Amount: 50000, PaymentStatus: borrowservice.PaymentPending}, nil)
	// the charge settled between the read and the reference assignment
	chargeRepo.EXPECT().AssignTxnRef(gomock.Any(), 5, gomock.Any()).Return(nil, nil)

	payment, err := service.InitiatePayment(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNoOpenCharge)
	assert.Nil(t, payment)
}

func TestSummarizeFund(t *testing.T) {
	service, chargeRepo, _, _, _ := NewMock(t)
	paymentDate := time.Now()

	tests := []struct {
		name          string
		prepareMock   func()
		expected      *FundSummary
		expectedError error
	}{
		{
			name: "Two completed charges",
			prepareMock: func() {
				chargeRepo.EXPECT().SummarizeCompleted(gomock.Any()).Return(150000.0, 2, nil)
				chargeRepo.EXPECT().FindRecentCompleted(gomock.Any(), 5).Return([]domain.FundEntry{
					{ChargeID: 2, BookTitle: "B2", FullName: "Kim Anh", Amount: 100000, PaymentDate: paymentDate},
					{ChargeID: 1, BookTitle: "B1", FullName: "Jamie Reed", Amount: 50000, PaymentDate: paymentDate.Add(-time.Hour)},
				}, nil)
			},
			expected: &FundSummary{
				TotalFund:    150000,
				TotalRecords: 2,
				Recent: []domain.FundEntry{
					{ChargeID: 2, BookTitle: "B2", FullName: "Kim Anh", Amount: 100000, PaymentDate: paymentDate},
					{ChargeID: 1, BookTitle: "B1", FullName: "Jamie Reed", Amount: 50000, PaymentDate: paymentDate.Add(-time.Hour)},
				},
			},
		},
		{
			name: "Empty fund",
			prepareMock: func() {
				chargeRepo.EXPECT().SummarizeCompleted(gomock.Any()).Return(0.0, 0, nil)
				chargeRepo.EXPECT().FindRecentCompleted(gomock.Any(), 5).Return(nil, nil)
			},
			expected: &FundSummary{TotalFund: 0, TotalRecords: 0, Recent: nil},
		},
		{
			name: "Repo error",
			prepareMock: func() {
				chargeRepo.EXPECT().SummarizeCompleted(gomock.Any()).Return(0.0, 0, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			summary, err := service.SummarizeFund(context.Background(), 5)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, summary)
			}
		})
	}
}

func TestPendingCharges(t *testing.T) {
	service, chargeRepo, _, _, _ := NewMock(t)

	chargeRepo.EXPECT().FindPending(gomock.Any(), uint32(100)).Return([]domain.CompensationCharge{
		{ID: 1, TxnRef: "ref-1", PaymentStatus: borrowservice.PaymentPending},
	}, nil)
	charges, err := service.PendingCharges(context.Background(), 100)
	assert.NoError(t, err)
	assert.Len(t, charges, 1)

	chargeRepo.EXPECT().FindPending(gomock.Any(), uint32(100)).Return(nil, errors.New("db error"))
	_, err = service.PendingCharges(context.Background(), 100)
	assert.Error(t, err)
}
