package get_staff

import (
	"net/http"

	"github.com/ndemina/Salon-AdminService/internal/api/handlers"
	"github.com/ndemina/Salon-AdminService/internal/domain"
)

type Handler struct {
	directory StaffDirectory
	logger    Logger
}

func NewHandler(directory StaffDirectory, logger Logger) *Handler {
	return &Handler{
		directory: directory,
		logger:    logger,
	}
}

// Handle GET /api/v1/staff?service={name}
// Без параметра service возвращает весь справочник,
// с параметром - только квалифицированных для услуги мастеров
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceName := r.URL.Query().Get("service")

	var (
		staff []domain.StaffMember
		err   error
	)
	if serviceName != "" {
		staff, err = h.directory.GetQualifiedStaff(r.Context(), serviceName)
	} else {
		staff, err = h.directory.ListStaff(r.Context())
	}

	if err != nil {
		h.logger.Error("GET /staff - Failed: service=%q, error=%v", serviceName, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /staff - Success: service=%q, %d staff members", serviceName, len(staff))
	handlers.RespondJSON(w, http.StatusOK, FromDomainStaff(staff))
}
