package get_conversation_messages

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ndemina/Salon-AdminService/internal/api/handlers"
	conversationsService "github.com/ndemina/Salon-AdminService/internal/service/conversations"
)

const (
	msgInvalidConversation = "некорректный идентификатор диалога"
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

// Handle GET /api/v1/conversations/{conversationId}/messages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	conversationID := mux.Vars(r)["conversationId"]

	result, err := h.service.GetMessages(r.Context(), conversationID)
	if err != nil {
		switch {
		case errors.Is(err, conversationsService.ErrInvalidInput):
			h.logger.Warn("GET /conversations/{id}/messages - Invalid conversation: %s", conversationID)
			handlers.RespondBadRequest(w, msgInvalidConversation)

		default:
			h.logger.Error("GET /conversations/{id}/messages - Failed: conversation_id=%s, error=%v",
				conversationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /conversations/{id}/messages - Success: conversation_id=%s, %d messages",
		conversationID, len(result.Messages))
	handlers.RespondJSON(w, http.StatusOK, result)
}
