package models

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ndemina/Salon-AdminService/internal/domain"
)

// Request модели

// CreateStaffRequest запрос на создание записи сотрудника
// Дни недели принимаются английскими названиями без учета регистра
type CreateStaffRequest struct {
	FullName          string   `json:"fullName"`
	EmployeeNumber    *string  `json:"employeeNumber,omitempty"`
	ContactNumber     *string  `json:"contactNumber,omitempty"`
	AvailableWeekdays []string `json:"availableWeekdays"`
	QualifiedServices []string `json:"qualifiedServices"`
}

// ToDomainUpdate конвертирует request в domain частичное обновление
// Возвращает ошибку при неизвестном названии дня недели
func (r *CreateStaffRequest) ToDomainUpdate() (domain.StaffUpdate, error) {
	weekdays, err := parseWeekdayNames(r.AvailableWeekdays)
	if err != nil {
		return domain.StaffUpdate{}, err
	}

	update := domain.StaffUpdate{
		FullName:          &r.FullName,
		EmployeeNumber:    r.EmployeeNumber,
		ContactNumber:     r.ContactNumber,
		AvailableWeekdays: &weekdays,
	}
	if r.QualifiedServices != nil {
		update.QualifiedServices = &r.QualifiedServices
	}
	return update, nil
}

// UpdateStaffRequest запрос на частичное обновление записи сотрудника
// nil-поля не изменяются
type UpdateStaffRequest struct {
	FullName          *string   `json:"fullName,omitempty"`
	EmployeeNumber    *string   `json:"employeeNumber,omitempty"`
	ContactNumber     *string   `json:"contactNumber,omitempty"`
	AvailableWeekdays *[]string `json:"availableWeekdays,omitempty"`
	QualifiedServices *[]string `json:"qualifiedServices,omitempty"`
}

// ToDomainUpdate конвертирует request в domain частичное обновление
// Возвращает ошибку при неизвестном названии дня недели
func (r *UpdateStaffRequest) ToDomainUpdate() (domain.StaffUpdate, error) {
	update := domain.StaffUpdate{
		FullName:          r.FullName,
		EmployeeNumber:    r.EmployeeNumber,
		ContactNumber:     r.ContactNumber,
		QualifiedServices: r.QualifiedServices,
	}

	if r.AvailableWeekdays != nil {
		weekdays, err := parseWeekdayNames(*r.AvailableWeekdays)
		if err != nil {
			return domain.StaffUpdate{}, err
		}
		update.AvailableWeekdays = &weekdays
	}

	return update, nil
}

// IsEmpty возвращает true, если запрос не изменяет ни одного поля
func (r *UpdateStaffRequest) IsEmpty() bool {
	return r.FullName == nil &&
		r.EmployeeNumber == nil &&
		r.ContactNumber == nil &&
		r.AvailableWeekdays == nil &&
		r.QualifiedServices == nil
}

// Response модели

// StaffResponse ответ с данными сотрудника
type StaffResponse struct {
	ID                string   `json:"id"`
	FullName          string   `json:"fullName"`
	EmployeeNumber    string   `json:"employeeNumber,omitempty"`
	ContactNumber     string   `json:"contactNumber,omitempty"`
	AvailableWeekdays []string `json:"availableWeekdays"`
	QualifiedServices []string `json:"qualifiedServices"`
}

// Методы конвертации

// FromDomainStaffMember конвертирует domain модель в DTO
// Дни недели отдаются в порядке недели, начиная с понедельника
func FromDomainStaffMember(m *domain.StaffMember) *StaffResponse {
	if m == nil {
		return nil
	}

	weekdays := make([]time.Weekday, 0, len(m.AvailableWeekdays))
	for day := range m.AvailableWeekdays {
		weekdays = append(weekdays, day)
	}
	sort.Slice(weekdays, func(i, j int) bool {
		return weekOrder(weekdays[i]) < weekOrder(weekdays[j])
	})

	names := make([]string, 0, len(weekdays))
	for _, day := range weekdays {
		names = append(names, strings.ToLower(day.String()))
	}

	services := m.QualifiedServices
	if services == nil {
		services = []string{}
	}

	return &StaffResponse{
		ID:                m.ID,
		FullName:          m.FullName,
		EmployeeNumber:    m.EmployeeNumber,
		ContactNumber:     m.ContactNumber,
		AvailableWeekdays: names,
		QualifiedServices: services,
	}
}

// parseWeekdayNames разбирает названия дней недели без учета регистра
func parseWeekdayNames(names []string) ([]time.Weekday, error) {
	weekdays := make([]time.Weekday, 0, len(names))
	for _, name := range names {
		day, ok := parseWeekdayName(name)
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", name)
		}
		weekdays = append(weekdays, day)
	}
	return weekdays, nil
}

func parseWeekdayName(name string) (time.Weekday, bool) {
	for day := time.Sunday; day <= time.Saturday; day++ {
		if strings.EqualFold(day.String(), name) {
			return day, true
		}
	}
	return 0, false
}

// weekOrder возвращает порядковый номер дня в неделе с понедельника
func weekOrder(day time.Weekday) int {
	if day == time.Sunday {
		return 6
	}
	return int(day) - 1
}
