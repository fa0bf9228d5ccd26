package get_booking_options

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/ndemina/Salon-AdminService/internal/api/handlers"
	"github.com/ndemina/Salon-AdminService/internal/domain"
	getBookingOptions "github.com/ndemina/Salon-AdminService/internal/usecase/get_booking_options"
)

const (
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgServiceNotFound = "услуга не найдена"
	msgInvalidDuration = "некорректная длительность услуги"
	msgInvalidInput    = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetBookingOptionsUseCase
	logger  Logger
}

func NewHandler(useCase GetBookingOptionsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/services/{serviceName}/booking-options?date={YYYY-MM-DD}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceName := mux.Vars(r)["serviceName"]

	dateStr := r.URL.Query().Get("date")
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /services/{name}/booking-options - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getBookingOptions.Request{
		ServiceName: serviceName,
		Date:        date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getBookingOptions.ErrServiceNotFound):
			h.logger.Warn("GET /services/{name}/booking-options - Service not found: service=%s", serviceName)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getBookingOptions.ErrInvalidDuration):
			h.logger.Warn("GET /services/{name}/booking-options - Invalid duration: service=%s", serviceName)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidDuration)

		case errors.Is(err, getBookingOptions.ErrInvalidInput), errors.Is(err, getBookingOptions.ErrInvalidDate):
			h.logger.Warn("GET /services/{name}/booking-options - Invalid input: service=%s, date=%s", serviceName, dateStr)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /services/{name}/booking-options - Failed: service=%s, date=%s, error=%v",
				serviceName, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /services/{name}/booking-options - Success: service=%s, date=%s, hasAvailability=%t",
		serviceName, dateStr, result.HasAvailability)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
