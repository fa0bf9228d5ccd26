package record_inbound_message

import (
	"errors"
	"net/http"

	"github.com/ndemina/Salon-AdminService/internal/api/handlers"
	conversationsService "github.com/ndemina/Salon-AdminService/internal/service/conversations"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "требуются conversationId и body"
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

// Handle POST /api/v1/webhooks/inbound-message
// Вызывается push-каналом при сообщении клиента: сохраняет его и
// рассылает подписчикам живой ленты
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req InboundMessageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /webhooks/inbound-message - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.RecordInbound(r.Context(), req.ConversationID, req.Sender, req.Body)
	if err != nil {
		switch {
		case errors.Is(err, conversationsService.ErrInvalidInput):
			h.logger.Warn("POST /webhooks/inbound-message - Invalid input: conversation_id=%s", req.ConversationID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /webhooks/inbound-message - Failed: conversation_id=%s, error=%v",
				req.ConversationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /webhooks/inbound-message - Recorded: conversation_id=%s, message_id=%s",
		req.ConversationID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
