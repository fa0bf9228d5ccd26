package create_appointment

import (
	"fmt"
	"time"

	"github.com/ndemina/Salon-AdminService/internal/domain"
	"github.com/ndemina/Salon-AdminService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientID == "" {
		return fmt.Errorf("%w: clientId is required", ErrInvalidInput)
	}

	if req.ClientName == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}

	if req.ServiceName == "" {
		return fmt.Errorf("%w: serviceName is required", ErrInvalidInput)
	}

	if req.StaffID == "" {
		return fmt.Errorf("%w: staffId is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что дата записи не в прошлом
func validateDate(date time.Time, now time.Time) error {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}
	return nil
}

// validateTimeSlot проверяет время начала записи:
// - старт кратен шагу сетки слотов
// - старт не раньше открытия
// - запись целиком укладывается до закрытия
func validateTimeSlot(startTime types.TimeString, durationMinutes int) error {
	startMinutes, err := startTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}

	if startMinutes%domain.SlotStepMinutes != 0 {
		return fmt.Errorf("%w: start time must be aligned to %d-minute grid", ErrInvalidTimeSlot, domain.SlotStepMinutes)
	}

	if startTime.IsBefore(domain.BusinessOpenTime) {
		return fmt.Errorf("%w: start time is before opening", ErrInvalidTimeSlot)
	}

	endTime, err := startTime.AddMinutes(durationMinutes)
	if err != nil {
		return fmt.Errorf("%w: appointment does not fit into the day", ErrInvalidTimeSlot)
	}

	if endTime.IsAfter(domain.BusinessCloseTime) {
		return fmt.Errorf("%w: appointment ends after closing", ErrInvalidTimeSlot)
	}

	return nil
}

// findStaffMember ищет мастера в списке квалифицированных по ID
func findStaffMember(staff []domain.StaffMember, staffID string) *domain.StaffMember {
	for i := range staff {
		if staff[i].ID == staffID {
			return &staff[i]
		}
	}
	return nil
}

// hasOverlap проверяет пересечение нового слота с активными записями мастера
// Строгие неравенства: записи, соприкасающиеся границами, не пересекаются
func hasOverlap(
	startTime types.TimeString,
	durationMinutes int,
	appointments []*domain.Appointment,
) (bool, error) {
	slotEnd, err := startTime.AddMinutes(durationMinutes)
	if err != nil {
		return false, err
	}

	for _, apt := range appointments {
		if !apt.IsActive() {
			continue
		}

		aptEnd, err := apt.StartTime.AddMinutes(apt.DurationMinutes)
		if err != nil {
			// Некорректная длительность в хранимой записи, пропускаем
			continue
		}

		if apt.StartTime.IsBefore(slotEnd) && aptEnd.IsAfter(startTime) {
			return true, nil
		}
	}

	return false, nil
}
