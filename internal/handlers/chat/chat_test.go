package chat

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/nvquang/libsys/internal/dto"
	"github.com/nvquang/libsys/internal/service/chatservice"
)

func TestChatHandler_Ask(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockService(ctrl)
	handler := New(mockService)

	tests := []struct {
		name         string
		body         string
		mockSetup    func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "successful reply",
			body: `{"prompt":"how many books can I borrow?"}`,
			mockSetup: func() {
				mockService.EXPECT().
					Ask(gomock.Any(), "how many books can I borrow?").
					Return("Up to five at a time.", nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"reply":"Up to five at a time."}`,
		},
		{
			name:         "invalid body",
			body:         `{bad json`,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"Invalid request body"}`,
		},
		{
			name:         "empty prompt",
			body:         `{"prompt":""}`,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"Prompt is required"}`,
		},
		{
			name: "upstream unavailable",
			body: `{"prompt":"hello"}`,
			mockSetup: func() {
				mockService.EXPECT().
					Ask(gomock.Any(), "hello").
					Return("", chatservice.ErrUpstream)
			},
			expectedCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			handler.Ask(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestChatHandler_Ask_InternalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockService(ctrl)
	handler := New(mockService)

	mockService.EXPECT().
		Ask(gomock.Any(), "hello").
		Return("", assert.AnError)

	body, _ := json.Marshal(dto.ChatRequestDTO{Prompt: "hello"})
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBuffer(body))
	rr := httptest.NewRecorder()

	handler.Ask(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
