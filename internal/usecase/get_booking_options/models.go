package get_booking_options

import (
	"time"

	"github.com/ndemina/Salon-AdminService/internal/domain"
)

// Request модель запроса вариантов записи на услугу
type Request struct {
	ServiceName string    // Название услуги из каталога
	Date        time.Time // Запрошенная дата (без времени)
}

// Response модель ответа с вариантами записи
// Ровно одно из двух: при наличии доступных мастеров заполнен Staff,
// иначе заполнены Alternatives
type Response struct {
	Service         domain.Service
	Date            time.Time
	Weekday         time.Weekday
	HasAvailability bool

	// Staff мастера, доступные в запрошенную дату, каждый со своей сеткой слотов
	Staff []StaffSlots

	// Alternatives результат поиска по соседним дням, nil при наличии доступности
	Alternatives *Alternatives
}

// StaffSlots доступный мастер с сеткой слотов на день
type StaffSlots struct {
	Staff domain.StaffMember
	Slots []domain.TimeSlot
}

// DayAvailability доступность мастеров в конкретный соседний день
type DayAvailability struct {
	Date    time.Time
	Weekday time.Weekday
	Staff   []domain.StaffMember // может быть пустым - это нормальный результат
}

// Alternatives результат поиска альтернативной доступности по соседним дням
// Оба списка возвращаются всегда, независимо от пустоты
type Alternatives struct {
	Previous []DayAvailability // дни до запрошенной даты, ближайший первым
	Next     []DayAvailability // дни после запрошенной даты, ближайший первым
}

// HasAnyStaff возвращает true, если хотя бы в одном соседнем дне есть доступные мастера
func (a *Alternatives) HasAnyStaff() bool {
	for _, day := range a.Previous {
		if len(day.Staff) > 0 {
			return true
		}
	}
	for _, day := range a.Next {
		if len(day.Staff) > 0 {
			return true
		}
	}
	return false
}
