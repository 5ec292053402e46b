package dto

type ChatRequestDTO struct {
	Prompt string `json:"prompt" validate:"required" example:"How much is the fine for two lost books?"`
}

type ChatResponseDTO struct {
	Reply string `json:"reply"`
}
