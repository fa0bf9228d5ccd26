package get_appointments

import (
	"net/url"
	"time"

	"github.com/ndemina/Salon-AdminService/internal/domain"
	"github.com/ndemina/Salon-AdminService/internal/service/appointments/models"
)

// parseQuery собирает фильтр из query-параметров:
// staffId, clientId, startDate, endDate, date (сокращение для startDate=endDate),
// status, includeInactive
func parseQuery(query url.Values) (*models.GetAppointmentsRequest, error) {
	req := &models.GetAppointmentsRequest{}

	if staffID := query.Get("staffId"); staffID != "" {
		req.StaffID = &staffID
	}

	if clientID := query.Get("clientId"); clientID != "" {
		req.ClientID = &clientID
	}

	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &date
		req.EndDate = &date
	} else {
		if startStr := query.Get("startDate"); startStr != "" {
			start, err := time.Parse(domain.DateFormat, startStr)
			if err != nil {
				return nil, err
			}
			req.StartDate = &start
		}
		if endStr := query.Get("endDate"); endStr != "" {
			end, err := time.Parse(domain.DateFormat, endStr)
			if err != nil {
				return nil, err
			}
			req.EndDate = &end
		}
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	req.IncludeInactive = query.Get("includeInactive") == "true"

	return req, nil
}
