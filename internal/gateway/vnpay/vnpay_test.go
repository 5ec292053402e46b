package vnpay

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/nvquang/libsys/internal/service/paymentservice"
	"github.com/nvquang/libsys/pkg/clients"
)

func newGateway(t *testing.T) (*Gateway, *clients.MockHTTPClientI) {
	ctrl := gomock.NewController(t)
	client := clients.NewMockHTTPClientI(ctrl)
	gateway := New(Config{
		PayURL:     "https://sandbox.example/pay",
		QueryURL:   "https://sandbox.example/querydr",
		TmnCode:    "TESTCODE",
		HashSecret: "testsecret",
		ReturnURL:  "http://localhost:8080/api/vnpay/verify",
	}, client)
	gateway.now = func() time.Time {
		return time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)
	}
	defer ctrl.Finish()
	return gateway, client
}

func TestPaymentURL(t *testing.T) {
	gateway, _ := newGateway(t)

	paymentURL, err := gateway.PaymentURL("ref-1", 100000, "compensation for borrowing 7")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(paymentURL, "https://sandbox.example/pay?"))

	parsed, err := url.Parse(paymentURL)
	assert.NoError(t, err)
	params := parsed.Query()

	assert.Equal(t, "2.1.0", params.Get("vnp_Version"))
	assert.Equal(t, "pay", params.Get("vnp_Command"))
	assert.Equal(t, "TESTCODE", params.Get("vnp_TmnCode"))
	assert.Equal(t, "10000000", params.Get("vnp_Amount"))
	assert.Equal(t, "VND", params.Get("vnp_CurrCode"))
	assert.Equal(t, "ref-1", params.Get("vnp_TxnRef"))
	assert.Equal(t, "20250315103000", params.Get("vnp_CreateDate"))

	// The signature must verify against the remaining params re-encoded
	// in sorted order.
	signature := params.Get("vnp_SecureHash")
	params.Del("vnp_SecureHash")
	mac := hmac.New(sha512.New, []byte("testsecret"))
	mac.Write([]byte(params.Encode()))
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), signature)
}

func TestQueryTransaction(t *testing.T) {
	gateway, client := newGateway(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		prepareMock func()
		want        string
		wantErr     error
	}{
		{
			name: "Paid transaction",
			prepareMock: func() {
				client.EXPECT().
					Post("https://sandbox.example/querydr", gomock.Any(), gomock.Any()).
					Return(http.StatusOK, []byte(`{"vnp_ResponseCode":"00","vnp_TransactionStatus":"00"}`), nil, nil)
			},
			want: paymentservice.GatewaySuccess,
		},
		{
			name: "Still processing",
			prepareMock: func() {
				client.EXPECT().
					Post("https://sandbox.example/querydr", gomock.Any(), gomock.Any()).
					Return(http.StatusOK, []byte(`{"vnp_ResponseCode":"00","vnp_TransactionStatus":"01"}`), nil, nil)
			},
			want: paymentservice.GatewayPending,
		},
		{
			name: "Declined transaction",
			prepareMock: func() {
				client.EXPECT().
					Post("https://sandbox.example/querydr", gomock.Any(), gomock.Any()).
					Return(http.StatusOK, []byte(`{"vnp_ResponseCode":"00","vnp_TransactionStatus":"02"}`), nil, nil)
			},
			want: paymentservice.GatewayFailed,
		},
		{
			name: "Transport error",
			prepareMock: func() {
				client.EXPECT().
					Post("https://sandbox.example/querydr", gomock.Any(), gomock.Any()).
					Return(0, nil, nil, errors.New("connection refused"))
			},
			wantErr: ErrQueryFailed,
		},
		{
			name: "Gateway HTTP error",
			prepareMock: func() {
				client.EXPECT().
					Post("https://sandbox.example/querydr", gomock.Any(), gomock.Any()).
					Return(http.StatusInternalServerError, []byte("oops"), nil, nil)
			},
			wantErr: ErrQueryFailed,
		},
		{
			name: "Malformed response body",
			prepareMock: func() {
				client.EXPECT().
					Post("https://sandbox.example/querydr", gomock.Any(), gomock.Any()).
					Return(http.StatusOK, []byte("not json"), nil, nil)
			},
			wantErr: ErrQueryFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			status, err := gateway.QueryTransaction(ctx, "ref-1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, status)
		})
	}
}

func TestQueryTransactionCancelledContext(t *testing.T) {
	gateway, _ := newGateway(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gateway.QueryTransaction(ctx, "ref-1")
	assert.ErrorIs(t, err, context.Canceled)
}
