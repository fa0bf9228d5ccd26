package domain

import "github.com/ndemina/Salon-AdminService/pkg/types"

// TimeSlot кандидат на бронирование внутри рабочих часов
// EndTime вычисляется как StartTime + DurationMinutes в минутах от начала суток
type TimeSlot struct {
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int

	// Available всегда true на этапе генерации: проверка пересечений с
	// существующими записями выполняется на шаге создания записи, а не здесь
	Available bool
}
