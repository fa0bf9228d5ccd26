package get_booking_options

import (
	"time"

	"github.com/ndemina/Salon-AdminService/internal/domain"
)

// findAlternativeAvailability ищет доступных мастеров в соседних днях,
// когда в запрошенную дату никто не доступен
// Проверяются ровно windowDays дней до и после даты, ближайшие первыми;
// переходы через границы месяца и года обрабатываются календарной арифметикой
// Оба списка возвращаются всегда - пустота обоих означает "альтернатив нет"
// и решается вызывающей стороной, а не ошибкой
func findAlternativeAvailability(qualifiedStaff []domain.StaffMember, date time.Time, windowDays int) Alternatives {
	if windowDays <= 0 {
		windowDays = domain.DefaultAlternativeWindowDays
	}

	alternatives := Alternatives{
		Previous: make([]DayAvailability, 0, windowDays),
		Next:     make([]DayAvailability, 0, windowDays),
	}

	for offset := 1; offset <= windowDays; offset++ {
		previousDate := date.AddDate(0, 0, -offset)
		alternatives.Previous = append(alternatives.Previous, DayAvailability{
			Date:    previousDate,
			Weekday: previousDate.Weekday(),
			Staff:   filterAvailableStaff(qualifiedStaff, previousDate),
		})

		nextDate := date.AddDate(0, 0, offset)
		alternatives.Next = append(alternatives.Next, DayAvailability{
			Date:    nextDate,
			Weekday: nextDate.Weekday(),
			Staff:   filterAvailableStaff(qualifiedStaff, nextDate),
		})
	}

	return alternatives
}
