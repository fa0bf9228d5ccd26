package send_message

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ndemina/Salon-AdminService/internal/api/handlers"
	conversationsService "github.com/ndemina/Salon-AdminService/internal/service/conversations"
	"github.com/ndemina/Salon-AdminService/internal/service/conversations/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "требуются sender и body"
)

type Handler struct {
	service ConversationsService
	logger  Logger
}

func NewHandler(service ConversationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/conversations/{conversationId}/messages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	conversationID := mux.Vars(r)["conversationId"]

	var req models.SendMessageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /conversations/{id}/messages - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SendMessage(r.Context(), conversationID, &req)
	if err != nil {
		switch {
		case errors.Is(err, conversationsService.ErrInvalidInput):
			h.logger.Warn("POST /conversations/{id}/messages - Invalid input: conversation_id=%s", conversationID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /conversations/{id}/messages - Failed: conversation_id=%s, error=%v",
				conversationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /conversations/{id}/messages - Message sent: conversation_id=%s, message_id=%s",
		conversationID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
