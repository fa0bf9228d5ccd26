package get_booking_options

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndemina/Salon-AdminService/internal/domain"
)

func TestGenerateTimeSlots_ThirtyMinutes(t *testing.T) {
	slots, err := generateTimeSlots(30)
	require.NoError(t, err)

	// 30-минутная услуга: слоты 09:00, 09:30, ..., 16:30
	require.Len(t, slots, 16)
	assert.Equal(t, "09:00", slots[0].StartTime.String())
	assert.Equal(t, "09:30", slots[0].EndTime.String())
	assert.Equal(t, "16:30", slots[15].StartTime.String())
	assert.Equal(t, "17:00", slots[15].EndTime.String())

	for i, slot := range slots {
		assert.Equal(t, 30, slot.DurationMinutes)
		assert.True(t, slot.Available)
		if i > 0 {
			assert.True(t, slots[i-1].StartTime.IsBefore(slot.StartTime), "slots must be ascending")
		}
	}
}

func TestGenerateTimeSlots_FullDayService(t *testing.T) {
	// 8-часовая услуга: ровно один слот 09:00-17:00
	slots, err := generateTimeSlots(480)
	require.NoError(t, err)

	require.Len(t, slots, 1)
	assert.Equal(t, "09:00", slots[0].StartTime.String())
	assert.Equal(t, "17:00", slots[0].EndTime.String())
}

func TestGenerateTimeSlots_NinetyMinutes(t *testing.T) {
	slots, err := generateTimeSlots(90)
	require.NoError(t, err)

	starts := make([]string, 0, len(slots))
	for _, slot := range slots {
		starts = append(starts, slot.StartTime.String())
	}

	// 15:30 (конец 17:00) - последний допустимый старт, 16:00 (конец 17:30) отброшен
	assert.Contains(t, starts, "15:30")
	assert.NotContains(t, starts, "16:00")
	assert.Equal(t, "15:30", slots[len(slots)-1].StartTime.String())
}

func TestGenerateTimeSlots_WithinBusinessHours(t *testing.T) {
	// Для любой длительности каждый слот целиком в рабочих часах
	for _, duration := range []int{15, 30, 45, 60, 90, 120, 240, 480} {
		slots, err := generateTimeSlots(duration)
		require.NoError(t, err)

		for _, slot := range slots {
			assert.False(t, slot.StartTime.IsBefore(domain.BusinessOpenTime),
				"duration=%d: slot %s starts before opening", duration, slot.StartTime)
			assert.False(t, slot.EndTime.IsAfter(domain.BusinessCloseTime),
				"duration=%d: slot ending %s exceeds closing", duration, slot.EndTime)
		}
	}
}

func TestGenerateTimeSlots_LongerThanBusinessDay(t *testing.T) {
	slots, err := generateTimeSlots(481)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlots_InvalidDuration(t *testing.T) {
	for _, duration := range []int{0, -1, -30} {
		_, err := generateTimeSlots(duration)
		require.ErrorIs(t, err, ErrInvalidDuration, "duration=%d", duration)
	}
}

func TestGenerateTimeSlots_Deterministic(t *testing.T) {
	first, err := generateTimeSlots(60)
	require.NoError(t, err)
	second, err := generateTimeSlots(60)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestIsStaffAvailable(t *testing.T) {
	staff := domain.StaffMember{
		ID:       "stf1",
		FullName: "Anna Petrova",
		AvailableWeekdays: map[time.Weekday]bool{
			time.Monday:    true,
			time.Wednesday: true,
		},
	}

	// Полный календарный месяц: доступность совпадает с днём недели,
	// повторный вызов даёт тот же результат
	for day := 1; day <= 31; day++ {
		date := time.Date(2025, time.July, day, 0, 0, 0, 0, time.UTC)
		expected := date.Weekday() == time.Monday || date.Weekday() == time.Wednesday

		assert.Equal(t, expected, isStaffAvailable(staff, date), "date=%s", date.Format(domain.DateFormat))
		assert.Equal(t, expected, isStaffAvailable(staff, date), "repeated call must match, date=%s", date.Format(domain.DateFormat))
	}
}

func TestHasAvailabilityOnDate_EmptyStaff(t *testing.T) {
	for day := 1; day <= 7; day++ {
		date := time.Date(2025, time.September, day, 0, 0, 0, 0, time.UTC)
		assert.False(t, hasAvailabilityOnDate(nil, date))
		assert.False(t, hasAvailabilityOnDate([]domain.StaffMember{}, date))
	}
}
