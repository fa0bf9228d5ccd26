package domain

import "github.com/ndemina/Salon-AdminService/pkg/types"

// Рабочие часы салона - фиксированный инвариант [09:00, 17:00)
// Слот валиден только если целиком помещается в рабочие часы
const (
	BusinessOpenTime  = types.TimeString("09:00")
	BusinessCloseTime = types.TimeString("17:00")
)

// Сетка слотов и окно поиска альтернативных дней
const (
	SlotStepMinutes = 30

	// DefaultAlternativeWindowDays количество дней до и после запрошенной даты,
	// проверяемых при поиске альтернативной доступности
	DefaultAlternativeWindowDays = 1
)

// Ограничения валидации
const (
	MinServiceDurationMinutes = 1
	MaxServiceDurationMinutes = 480 // целиком рабочий день
	MaxNotesLength            = 500
	MaxCancellationReasonLen  = 500
	MaxMessageLength          = 2000
)

// DateFormat формат даты YYYY-MM-DD
const DateFormat = "2006-01-02"
