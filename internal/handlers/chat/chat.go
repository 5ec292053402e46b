package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nvquang/libsys/internal/dto"
	"github.com/nvquang/libsys/internal/service/chatservice"
	"github.com/nvquang/libsys/pkg/utils"
)

type Service interface {
	Ask(ctx context.Context, prompt string) (string, error)
}

type ChatHandler struct {
	chatService Service
}

func New(chatService Service) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// Ask godoc
//
//	@Summary		Ask the library assistant
//	@Description	Forward a prompt to the assistant upstream; arithmetic spans in the reply are computed server side
//	@Tags			Chat
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ChatRequestDTO	true	"Chat request body"
//	@Success		200		{object}	dto.ChatResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		502		{object}	utils.Response	"Assistant upstream unavailable"
//	@Security		BearerAuth
//	@Router			/api/chat [post]
func (h *ChatHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req dto.ChatRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Prompt == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Prompt is required")
		return
	}

	reply, err := h.chatService.Ask(r.Context(), req.Prompt)
	switch {
	case errors.Is(err, chatservice.ErrUpstream):
		utils.RespondWithError(w, http.StatusBadGateway, err.Error())
		return
	case err != nil:
		utils.RespondWithError(w, http.StatusInternalServerError, "Error handling chat request")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ChatResponseDTO{Reply: reply})
}
