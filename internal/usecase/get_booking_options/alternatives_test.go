package get_booking_options

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndemina/Salon-AdminService/internal/domain"
)

func staffForWeekdays(id string, weekdays ...time.Weekday) domain.StaffMember {
	available := make(map[time.Weekday]bool, len(weekdays))
	for _, wd := range weekdays {
		available[wd] = true
	}
	return domain.StaffMember{ID: id, FullName: "Staff " + id, AvailableWeekdays: available}
}

func TestFindAlternativeAvailability_AdjacentDays(t *testing.T) {
	monday := staffForWeekdays("mon", time.Monday)
	wednesday := staffForWeekdays("wed", time.Wednesday)
	staff := []domain.StaffMember{monday, wednesday}

	// 2025-07-15 - вторник: никто не доступен, соседние дни - понедельник и среда
	tuesday := time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC)
	require.False(t, hasAvailabilityOnDate(staff, tuesday))

	alternatives := findAlternativeAvailability(staff, tuesday, 1)

	require.Len(t, alternatives.Previous, 1)
	require.Len(t, alternatives.Next, 1)

	previous := alternatives.Previous[0]
	assert.Equal(t, "2025-07-14", previous.Date.Format(domain.DateFormat))
	assert.Equal(t, time.Monday, previous.Weekday)
	require.Len(t, previous.Staff, 1)
	assert.Equal(t, "mon", previous.Staff[0].ID)

	next := alternatives.Next[0]
	assert.Equal(t, "2025-07-16", next.Date.Format(domain.DateFormat))
	assert.Equal(t, time.Wednesday, next.Weekday)
	require.Len(t, next.Staff, 1)
	assert.Equal(t, "wed", next.Staff[0].ID)
}

func TestFindAlternativeAvailability_YearRollover(t *testing.T) {
	staff := []domain.StaffMember{staffForWeekdays("any", time.Tuesday)}

	newYear := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	alternatives := findAlternativeAvailability(staff, newYear, 1)

	require.Len(t, alternatives.Previous, 1)
	assert.Equal(t, "2024-12-31", alternatives.Previous[0].Date.Format(domain.DateFormat))
	assert.Equal(t, "2025-01-02", alternatives.Next[0].Date.Format(domain.DateFormat))
}

func TestFindAlternativeAvailability_MonthRollover(t *testing.T) {
	staff := []domain.StaffMember{staffForWeekdays("any", time.Sunday)}

	endOfMonth := time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)
	alternatives := findAlternativeAvailability(staff, endOfMonth, 1)

	assert.Equal(t, "2025-06-29", alternatives.Previous[0].Date.Format(domain.DateFormat))
	assert.Equal(t, "2025-07-01", alternatives.Next[0].Date.Format(domain.DateFormat))
}

func TestFindAlternativeAvailability_EmptyStaff(t *testing.T) {
	date := time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC)
	alternatives := findAlternativeAvailability(nil, date, 1)

	// Структурно валидный пустой результат, а не ошибка
	require.Len(t, alternatives.Previous, 1)
	require.Len(t, alternatives.Next, 1)
	assert.Empty(t, alternatives.Previous[0].Staff)
	assert.Empty(t, alternatives.Next[0].Staff)
	assert.False(t, alternatives.HasAnyStaff())
}

func TestFindAlternativeAvailability_WiderWindow(t *testing.T) {
	friday := staffForWeekdays("fri", time.Friday)
	staff := []domain.StaffMember{friday}

	// 2025-07-16 - среда; при окне в 2 дня пятница не попадает,
	// но порядок дней - ближайшие первыми
	wednesday := time.Date(2025, time.July, 16, 0, 0, 0, 0, time.UTC)
	alternatives := findAlternativeAvailability(staff, wednesday, 2)

	require.Len(t, alternatives.Previous, 2)
	require.Len(t, alternatives.Next, 2)

	assert.Equal(t, "2025-07-15", alternatives.Previous[0].Date.Format(domain.DateFormat))
	assert.Equal(t, "2025-07-14", alternatives.Previous[1].Date.Format(domain.DateFormat))
	assert.Equal(t, "2025-07-17", alternatives.Next[0].Date.Format(domain.DateFormat))
	assert.Equal(t, "2025-07-18", alternatives.Next[1].Date.Format(domain.DateFormat))

	// Пятница 2025-07-18 - единственный день с доступным мастером
	assert.Empty(t, alternatives.Next[0].Staff)
	require.Len(t, alternatives.Next[1].Staff, 1)
	assert.Equal(t, "fri", alternatives.Next[1].Staff[0].ID)
}

func TestFindAlternativeAvailability_DefaultWindowFallback(t *testing.T) {
	date := time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC)

	// Неположительное окно заменяется значением по умолчанию (1 день)
	alternatives := findAlternativeAvailability(nil, date, 0)
	assert.Len(t, alternatives.Previous, 1)
	assert.Len(t, alternatives.Next, 1)
}
