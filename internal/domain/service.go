package domain

// Service услуга салона из каталога (hosted table store)
// Неизменяема в рамках одного расчёта доступности
type Service struct {
	ID              string
	Name            string
	Description     string
	Category        string
	DurationMinutes int
	Price           float64
}

// FitsBusinessDay проверяет, что услуга в принципе помещается в рабочий день
func (s *Service) FitsBusinessDay() bool {
	return s.DurationMinutes >= MinServiceDurationMinutes &&
		s.DurationMinutes <= MaxServiceDurationMinutes
}
