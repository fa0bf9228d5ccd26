package get_booking_options

import (
	"fmt"
	"time"

	"github.com/ndemina/Salon-AdminService/internal/domain"
)

// generateTimeSlots генерирует сетку слотов на день для услуги заданной длительности
// Кандидаты идут с шагом SlotStepMinutes от начала рабочего дня; слот принимается,
// только если его конец не выходит за время закрытия (слот отбрасывается, не обрезается)
// Чистая функция: результат зависит только от длительности и констант рабочих часов
func generateTimeSlots(durationMinutes int) ([]domain.TimeSlot, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive, got %d", ErrInvalidDuration, durationMinutes)
	}

	slots := make([]domain.TimeSlot, 0)

	for current := domain.BusinessOpenTime; current.IsBefore(domain.BusinessCloseTime); {
		slotEnd, err := current.AddMinutes(durationMinutes)
		if err != nil {
			// Конец слота за пределами суток - дальше будет только хуже
			break
		}

		if slotEnd.IsAfter(domain.BusinessCloseTime) {
			break
		}

		slots = append(slots, domain.TimeSlot{
			StartTime:       current,
			EndTime:         slotEnd,
			DurationMinutes: durationMinutes,
			Available:       true,
		})

		next, err := current.AddMinutes(domain.SlotStepMinutes)
		if err != nil {
			break
		}
		current = next
	}

	return slots, nil
}

// isStaffAvailable проверяет доступность мастера в указанную календарную дату
// Доступность определяется только днём недели из еженедельного графика
func isStaffAvailable(staff domain.StaffMember, date time.Time) bool {
	return staff.IsAvailableOn(date.Weekday())
}

// hasAvailabilityOnDate проверяет, доступен ли хотя бы один мастер в указанную дату
func hasAvailabilityOnDate(staff []domain.StaffMember, date time.Time) bool {
	for _, member := range staff {
		if isStaffAvailable(member, date) {
			return true
		}
	}
	return false
}

// filterAvailableStaff возвращает мастеров, доступных в указанную дату
func filterAvailableStaff(staff []domain.StaffMember, date time.Time) []domain.StaffMember {
	available := make([]domain.StaffMember, 0)
	for _, member := range staff {
		if isStaffAvailable(member, date) {
			available = append(available, member)
		}
	}
	return available
}
