package payments

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nvquang/libsys/internal/domain"
	"github.com/nvquang/libsys/internal/dto"
	"github.com/nvquang/libsys/internal/service/borrowservice"
	"github.com/nvquang/libsys/internal/service/paymentservice"
	"github.com/nvquang/libsys/pkg/utils"
)

type Service interface {
	InitiatePayment(ctx context.Context, borrowID int) (*paymentservice.InitiatedPayment, error)
	VerifyTransaction(ctx context.Context, txnRef string) (*domain.CompensationCharge, *domain.BorrowRecord, error)
	SummarizeFund(ctx context.Context, recentLimit int) (*paymentservice.FundSummary, error)
}

const recentFundEntries = 10

type PaymentsHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentsHandler {
	return &PaymentsHandler{
		paymentService: paymentService,
	}
}

// Initiate godoc
//
//	@Summary		Initiate a compensation payment
//	@Description	Return the signed gateway redirect URL for the open charge of a borrowing
//	@Tags			Payments
//	@Produce		json
//	@Param			id	path		int	true	"Borrowing ID"
//	@Success		200	{object}	dto.InitiatePaymentResponseDTO
//	@Failure		404	{object}	utils.Response	"Borrowing or payable charge not found"
//	@Failure		502	{object}	utils.Response	"Gateway unavailable"
//	@Security		BearerAuth
//	@Router			/api/borrowings/{id}/payment [post]
func (h *PaymentsHandler) Initiate(w http.ResponseWriter, r *http.Request) {
	borrowID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid borrowing id")
		return
	}

	payment, err := h.paymentService.InitiatePayment(r.Context(), borrowID)
	switch {
	case errors.Is(err, borrowservice.ErrBorrowNotFound), errors.Is(err, paymentservice.ErrNoOpenCharge):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
		return
	case errors.Is(err, paymentservice.ErrGateway):
		utils.RespondWithError(w, http.StatusBadGateway, err.Error())
		return
	case err != nil:
		utils.RespondWithError(w, http.StatusInternalServerError, "Error initiating payment")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.InitiatePaymentResponseDTO{
		TxnRef:     payment.TxnRef,
		Amount:     payment.Amount,
		PaymentURL: payment.PaymentURL,
	})
}

// Verify godoc
//
//	@Summary		Verify a payment transaction
//	@Description	Query the gateway for the real transaction state and settle the charge. Client success flags are ignored.
//	@Tags			Payments
//	@Produce		json
//	@Param			txnRef	query		string	true	"Transaction reference"
//	@Success		200		{object}	dto.VerifyResponseDTO
//	@Failure		404		{object}	utils.Response	"Unknown transaction reference"
//	@Failure		502		{object}	utils.Response	"Gateway unavailable"
//	@Router			/api/vnpay/verify [get]
func (h *PaymentsHandler) Verify(w http.ResponseWriter, r *http.Request) {
	txnRef := r.URL.Query().Get("txnRef")
	if txnRef == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "txnRef is required")
		return
	}

	charge, borrowing, err := h.paymentService.VerifyTransaction(r.Context(), txnRef)
	switch {
	case errors.Is(err, paymentservice.ErrTxnNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
		return
	case errors.Is(err, paymentservice.ErrGateway):
		utils.RespondWithError(w, http.StatusBadGateway, err.Error())
		return
	case err != nil:
		utils.RespondWithError(w, http.StatusInternalServerError, "Error verifying transaction")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.VerifyResponseDTO{
		Payment: dto.VerifyPaymentDTO{
			TxnRef: charge.TxnRef,
			Status: charge.PaymentStatus,
		},
		Borrowing: dto.VerifyBorrowingDTO{
			ID:            borrowing.ID,
			Status:        borrowing.Status,
			PaymentStatus: borrowing.PaymentStatus,
		},
	})
}

// FundSummary godoc
//
//	@Summary		Compensation fund summary
//	@Description	Fund total, completed charge count and the most recent completed charges. Admin only.
//	@Tags			Payments
//	@Produce		json
//	@Success		200	{object}	dto.FundSummaryResponseDTO
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/borrowings/fund/summary [get]
func (h *PaymentsHandler) FundSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.paymentService.SummarizeFund(r.Context(), recentFundEntries)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error summarizing fund")
		return
	}

	recent := make([]dto.FundEntryDTO, 0, len(summary.Recent))
	for _, entry := range summary.Recent {
		recent = append(recent, dto.FundEntryDTO{
			ChargeID:    entry.ChargeID,
			BookTitle:   entry.BookTitle,
			FullName:    entry.FullName,
			StudentID:   entry.StudentID,
			DamageType:  entry.DamageType,
			Amount:      entry.Amount,
			PaymentDate: &entry.PaymentDate,
		})
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.FundSummaryResponseDTO{
		TotalFund:    summary.TotalFund,
		TotalRecords: summary.TotalRecords,
		Recent:       recent,
	})
}
