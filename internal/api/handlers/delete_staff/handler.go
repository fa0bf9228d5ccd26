package delete_staff

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ndemina/Salon-AdminService/internal/api/handlers"
	staffService "github.com/ndemina/Salon-AdminService/internal/service/staff"
)

const (
	msgStaffNotFound = "сотрудник не найден"
)

type Handler struct {
	service StaffService
	logger  Logger
}

func NewHandler(service StaffService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/staff/{staffId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID := mux.Vars(r)["staffId"]

	if err := h.service.Delete(r.Context(), staffID); err != nil {
		switch {
		case errors.Is(err, staffService.ErrStaffNotFound):
			h.logger.Warn("DELETE /staff/{id} - Staff member not found: staff_id=%s", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		default:
			h.logger.Error("DELETE /staff/{id} - Failed: staff_id=%s, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /staff/{id} - Success: staff_id=%s", staffID)
	handlers.RespondNoContent(w)
}
