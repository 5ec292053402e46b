// Package vnpay implements the redirect-URL signing and the querydr
// transaction lookup of the VNPay merchant API.
package vnpay

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/nvquang/libsys/internal/service/paymentservice"
	"github.com/nvquang/libsys/pkg/clients"
	"go.uber.org/zap"
)

var ErrQueryFailed = errors.New("gateway query failed")

const (
	version    = "2.1.0"
	dateLayout = "20060102150405"
)

type Config struct {
	PayURL     string
	QueryURL   string
	TmnCode    string
	HashSecret string
	ReturnURL  string
}

type Gateway struct {
	config Config
	client clients.HTTPClientI
	now    func() time.Time
}

func New(config Config, client clients.HTTPClientI) *Gateway {
	return &Gateway{
		config: config,
		client: client,
		now:    time.Now,
	}
}

// PaymentURL builds the signed redirect URL the borrower is sent to.
// The signature is HMAC-SHA512 over the URL-encoded parameters, which
// url.Values.Encode emits in sorted key order as the gateway requires.
func (g *Gateway) PaymentURL(txnRef string, amount float64, orderInfo string) (string, error) {
	params := url.Values{}
	params.Set("vnp_Version", version)
	params.Set("vnp_Command", "pay")
	params.Set("vnp_TmnCode", g.config.TmnCode)
	params.Set("vnp_Amount", strconv.FormatInt(int64(amount*100), 10))
	params.Set("vnp_CurrCode", "VND")
	params.Set("vnp_TxnRef", txnRef)
	params.Set("vnp_OrderInfo", orderInfo)
	params.Set("vnp_ReturnUrl", g.config.ReturnURL)
	params.Set("vnp_CreateDate", g.now().Format(dateLayout))

	hashData := params.Encode()
	params.Set("vnp_SecureHash", g.sign(hashData))

	return g.config.PayURL + "?" + params.Encode(), nil
}

func (g *Gateway) sign(data string) string {
	mac := hmac.New(sha512.New, []byte(g.config.HashSecret))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}

type queryRequest struct {
	RequestID  string `json:"vnp_RequestId"`
	Version    string `json:"vnp_Version"`
	Command    string `json:"vnp_Command"`
	TmnCode    string `json:"vnp_TmnCode"`
	TxnRef     string `json:"vnp_TxnRef"`
	OrderInfo  string `json:"vnp_OrderInfo"`
	CreateDate string `json:"vnp_CreateDate"`
	SecureHash string `json:"vnp_SecureHash"`
}

type queryResponse struct {
	ResponseCode      string `json:"vnp_ResponseCode"`
	TransactionStatus string `json:"vnp_TransactionStatus"`
}

// QueryTransaction asks the gateway's querydr endpoint for the real
// state of a transaction. The client-side success flag on the return
// redirect is never consulted.
func (g *Gateway) QueryTransaction(ctx context.Context, txnRef string) (string, error) {
	req := queryRequest{
		RequestID:  uuid.NewString(),
		Version:    version,
		Command:    "querydr",
		TmnCode:    g.config.TmnCode,
		TxnRef:     txnRef,
		OrderInfo:  "query transaction " + txnRef,
		CreateDate: g.now().Format(dateLayout),
	}
	req.SecureHash = g.sign(req.RequestID + "|" + req.Version + "|" + req.Command + "|" + req.TmnCode + "|" + req.TxnRef + "|" + req.CreateDate)

	body, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	statusCode, respBody, _, err := g.client.Post(g.config.QueryURL, headers, body)
	if err != nil {
		zap.L().Error("gateway query request failed", zap.Error(err), zap.String("txn_ref", txnRef))
		return "", ErrQueryFailed
	}
	if statusCode != http.StatusOK {
		zap.L().Error("gateway query returned error", zap.Int("status", statusCode), zap.String("txn_ref", txnRef))
		return "", ErrQueryFailed
	}

	var resp queryResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		zap.L().Error("can't decode gateway query response", zap.Error(err))
		return "", ErrQueryFailed
	}

	switch {
	case resp.ResponseCode == "00" && resp.TransactionStatus == "00":
		return paymentservice.GatewaySuccess, nil
	case resp.TransactionStatus == "01":
		return paymentservice.GatewayPending, nil
	default:
		return paymentservice.GatewayFailed, nil
	}
}
