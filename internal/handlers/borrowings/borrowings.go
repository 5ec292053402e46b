package borrowings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nvquang/libsys/internal/domain"
	"github.com/nvquang/libsys/internal/dto"
	"github.com/nvquang/libsys/internal/service/borrowservice"
	"github.com/nvquang/libsys/pkg/auth"
	"github.com/nvquang/libsys/pkg/utils"
)

type Service interface {
	OpenBorrow(ctx context.Context, borrower borrowservice.Borrower, bookID int, bookTitle string, quantity int, borrowDate time.Time) (*domain.BorrowRecord, error)
	ReportReturn(ctx context.Context, borrowID int) (*domain.BorrowRecord, error)
	ReportLossOrDamage(ctx context.Context, borrowID int, damageType, reason, evidenceImage string) (*domain.BorrowRecord, *domain.CompensationCharge, error)
	ListByUser(ctx context.Context, userID int) ([]domain.BorrowRecord, error)
	ListAll(ctx context.Context) ([]domain.BorrowRecord, error)
}

type BorrowingsHandler struct {
	borrowService Service
}

func New(borrowService Service) *BorrowingsHandler {
	return &BorrowingsHandler{
		borrowService: borrowService,
	}
}

func toResponseDTO(record *domain.BorrowRecord) dto.BorrowingResponseDTO {
	return dto.BorrowingResponseDTO{
		ID:            record.ID,
		UserID:        record.UserID,
		FullName:      record.FullName,
		StudentID:     record.StudentID,
		Email:         record.Email,
		BookID:        record.BookID,
		BookTitle:     record.BookTitle,
		Quantity:      record.Quantity,
		Status:        record.Status,
		PaymentStatus: record.PaymentStatus,
		BorrowDate:    record.BorrowDate,
		ReturnDate:    record.ReturnDate,
	}
}

// Create godoc
//
//	@Summary		Borrow a book
//	@Description	Create a borrow record and take copies off the shelf
//	@Tags			Borrowings
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateBorrowingRequestDTO	true	"Borrow request body"
//	@Success		201		{object}	dto.BorrowingResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/borrowings [post]
func (h *BorrowingsHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(int)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.CreateBorrowingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	borrower := borrowservice.Borrower{
		UserID:    userID,
		FullName:  req.FullName,
		StudentID: req.StudentID,
		Email:     req.Email,
	}
	record, err := h.borrowService.OpenBorrow(r.Context(), borrower, req.BookID, req.BookTitle, req.Quantity, time.Time{})
	switch {
	case errors.Is(err, borrowservice.ErrBookRequired),
		errors.Is(err, borrowservice.ErrInvalidQuantity),
		errors.Is(err, borrowservice.ErrNoAvailableCopies):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		utils.RespondWithError(w, http.StatusInternalServerError, "Error creating borrowing")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, toResponseDTO(record))
}

// Return godoc
//
//	@Summary		Return a borrowed book
//	@Description	Close the borrow record and restore catalog availability
//	@Tags			Borrowings
//	@Produce		json
//	@Param			id	path		int	true	"Borrowing ID"
//	@Success		200	{object}	dto.BorrowingResponseDTO
//	@Failure		404	{object}	utils.Response	"Borrowing not found"
//	@Failure		409	{object}	utils.Response	"Borrowing already closed"
//	@Security		BearerAuth
//	@Router			/api/borrowings/{id}/return [put]
func (h *BorrowingsHandler) Return(w http.ResponseWriter, r *http.Request) {
	borrowID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid borrowing id")
		return
	}

	record, err := h.borrowService.ReportReturn(r.Context(), borrowID)
	if h.respondLifecycleError(w, err) {
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(record))
}

// ReportLost godoc
//
//	@Summary		Report a borrowed book lost
//	@Description	Close the borrow record as lost and open a compensation charge
//	@Tags			Borrowings
//	@Produce		json
//	@Param			id	path		int	true	"Borrowing ID"
//	@Success		200	{object}	dto.BorrowingResponseDTO
//	@Failure		404	{object}	utils.Response	"Borrowing not found"
//	@Failure		409	{object}	utils.Response	"Borrowing already closed"
//	@Security		BearerAuth
//	@Router			/api/borrowings/{id}/report-lost [put]
func (h *BorrowingsHandler) ReportLost(w http.ResponseWriter, r *http.Request) {
	borrowID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid borrowing id")
		return
	}

	record, _, err := h.borrowService.ReportLossOrDamage(r.Context(), borrowID, borrowservice.StatusLost, "", "")
	if h.respondLifecycleError(w, err) {
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(record))
}

// ReportBroken godoc
//
//	@Summary		Report a borrowed book broken
//	@Description	Close the borrow record as broken with a required reason and open a compensation charge
//	@Tags			Borrowings
//	@Accept			mpfd
//	@Produce		json
//	@Param			id		path		int		true	"Borrowing ID"
//	@Param			reason	formData	string	true	"Damage description"
//	@Param			image	formData	string	false	"Evidence image reference"
//	@Success		200		{object}	dto.BorrowingResponseDTO
//	@Failure		400		{object}	utils.Response	"Reason missing"
//	@Failure		404		{object}	utils.Response	"Borrowing not found"
//	@Failure		409		{object}	utils.Response	"Borrowing already closed"
//	@Security		BearerAuth
//	@Router			/api/borrowings/{id}/report-broken [put]
func (h *BorrowingsHandler) ReportBroken(w http.ResponseWriter, r *http.Request) {
	borrowID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid borrowing id")
		return
	}

	if err := r.ParseMultipartForm(1 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid form body")
		return
	}
	reason := r.FormValue("reason")
	image := r.FormValue("image")

	record, _, err := h.borrowService.ReportLossOrDamage(r.Context(), borrowID, borrowservice.StatusBroken, reason, image)
	if h.respondLifecycleError(w, err) {
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(record))
}

// List godoc
//
//	@Summary		List own borrowings
//	@Description	Borrow history of the authenticated user, newest first
//	@Tags			Borrowings
//	@Produce		json
//	@Success		200	{array}		dto.BorrowingResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/borrowings [get]
func (h *BorrowingsHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(int)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	records, err := h.borrowService.ListByUser(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error listing borrowings")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toResponseDTOs(records))
}

// ListAll godoc
//
//	@Summary		List all borrowings
//	@Description	Full borrow history, newest first. Admin only.
//	@Tags			Borrowings
//	@Produce		json
//	@Success		200	{array}		dto.BorrowingResponseDTO
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/borrowings/all [get]
func (h *BorrowingsHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	records, err := h.borrowService.ListAll(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error listing borrowings")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toResponseDTOs(records))
}

func toResponseDTOs(records []domain.BorrowRecord) []dto.BorrowingResponseDTO {
	resp := make([]dto.BorrowingResponseDTO, 0, len(records))
	for i := range records {
		resp = append(resp, toResponseDTO(&records[i]))
	}
	return resp
}

// respondLifecycleError maps state machine errors onto HTTP codes and
// reports whether a response was written.
func (h *BorrowingsHandler) respondLifecycleError(w http.ResponseWriter, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, borrowservice.ErrBorrowNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, borrowservice.ErrAlreadyClosed):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, borrowservice.ErrReasonRequired), errors.Is(err, borrowservice.ErrUnknownDamageType):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating borrowing")
	}
	return true
}
