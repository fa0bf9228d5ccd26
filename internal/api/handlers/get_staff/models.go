package get_staff

import (
	"sort"
	"strings"
	"time"

	"github.com/ndemina/Salon-AdminService/internal/domain"
)

// StaffResponse HTTP модель сотрудника справочника
type StaffResponse struct {
	ID                string   `json:"id"`
	FullName          string   `json:"fullName"`
	EmployeeNumber    string   `json:"employeeNumber,omitempty"`
	ContactNumber     string   `json:"contactNumber,omitempty"`
	AvailableWeekdays []string `json:"availableWeekdays"`
	QualifiedServices []string `json:"qualifiedServices"`
}

// StaffListResponse HTTP ответ со списком сотрудников
type StaffListResponse struct {
	Staff []StaffResponse `json:"staff"`
}

// FromDomainStaff конвертирует список сотрудников в HTTP response
// Дни недели отдаются в порядке недели, начиная с понедельника
func FromDomainStaff(staff []domain.StaffMember) *StaffListResponse {
	resp := &StaffListResponse{
		Staff: make([]StaffResponse, 0, len(staff)),
	}

	for _, member := range staff {
		weekdays := make([]time.Weekday, 0, len(member.AvailableWeekdays))
		for day := range member.AvailableWeekdays {
			weekdays = append(weekdays, day)
		}
		sort.Slice(weekdays, func(i, j int) bool {
			return weekOrder(weekdays[i]) < weekOrder(weekdays[j])
		})

		names := make([]string, 0, len(weekdays))
		for _, day := range weekdays {
			names = append(names, strings.ToLower(day.String()))
		}

		services := member.QualifiedServices
		if services == nil {
			services = []string{}
		}

		resp.Staff = append(resp.Staff, StaffResponse{
			ID:                member.ID,
			FullName:          member.FullName,
			EmployeeNumber:    member.EmployeeNumber,
			ContactNumber:     member.ContactNumber,
			AvailableWeekdays: names,
			QualifiedServices: services,
		})
	}

	return resp
}

// weekOrder возвращает порядковый номер дня в неделе с понедельника
func weekOrder(day time.Weekday) int {
	if day == time.Sunday {
		return 6
	}
	return int(day) - 1
}
