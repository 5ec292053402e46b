package dto

import "time"

type NotificationDTO struct {
	ID        int       `json:"id" example:"3"`
	Type      string    `json:"type" example:"payment"`
	Title     string    `json:"title" example:"Payment confirmed"`
	Message   string    `json:"message" example:"Compensation of 100000 for \"SICP\" was received"`
	Data      string    `json:"data,omitempty"`
	CreatedAt time.Time `json:"createdAt" example:"2025-03-01T09:00:00+07:00"`
}
