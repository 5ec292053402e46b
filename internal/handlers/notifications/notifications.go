package notifications

import (
	"context"
	"net/http"

	"github.com/nvquang/libsys/internal/domain"
	"github.com/nvquang/libsys/internal/dto"
	"github.com/nvquang/libsys/pkg/auth"
	"github.com/nvquang/libsys/pkg/utils"
)

type Service interface {
	ListByUser(ctx context.Context, userID int) ([]domain.Notification, error)
}

type NotificationsHandler struct {
	notifyService Service
}

func New(notifyService Service) *NotificationsHandler {
	return &NotificationsHandler{
		notifyService: notifyService,
	}
}

// List godoc
//
//	@Summary		List own notifications
//	@Description	Notifications raised for the authenticated user, newest first
//	@Tags			Notifications
//	@Produce		json
//	@Success		200	{array}		dto.NotificationDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/notifications [get]
func (h *NotificationsHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(int)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	items, err := h.notifyService.ListByUser(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error listing notifications")
		return
	}

	response := make([]dto.NotificationDTO, 0, len(items))
	for _, n := range items {
		response = append(response, dto.NotificationDTO{
			ID:        n.ID,
			Type:      n.Type,
			Title:     n.Title,
			Message:   n.Message,
			Data:      n.Data,
			CreatedAt: n.CreatedAt,
		})
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}
