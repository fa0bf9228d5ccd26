package get_booking_options

import (
	"strings"

	"github.com/ndemina/Salon-AdminService/internal/domain"
	getBookingOptions "github.com/ndemina/Salon-AdminService/internal/usecase/get_booking_options"
)

// ServiceInfo HTTP модель услуги
type ServiceInfo struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Category        string  `json:"category,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// StaffInfo HTTP модель мастера
type StaffInfo struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
}

// SlotInfo HTTP модель слота
type SlotInfo struct {
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "11:00"
	Available bool   `json:"available"`
}

// StaffSlotsInfo доступный мастер с сеткой слотов
type StaffSlotsInfo struct {
	Staff StaffInfo  `json:"staff"`
	Slots []SlotInfo `json:"slots"`
}

// DayAvailabilityInfo доступность мастеров в соседний день
type DayAvailabilityInfo struct {
	Date    string      `json:"date"` // "2025-07-14"
	Weekday string      `json:"weekday"`
	Staff   []StaffInfo `json:"staff"`
}

// AlternativesInfo результат поиска по соседним дням
type AlternativesInfo struct {
	Previous []DayAvailabilityInfo `json:"previous"`
	Next     []DayAvailabilityInfo `json:"next"`
}

// BookingOptionsResponse HTTP response model
type BookingOptionsResponse struct {
	Service         ServiceInfo       `json:"service"`
	Date            string            `json:"date"`
	Weekday         string            `json:"weekday"`
	HasAvailability bool              `json:"hasAvailability"`
	Staff           []StaffSlotsInfo  `json:"staff"`
	Alternatives    *AlternativesInfo `json:"alternatives,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getBookingOptions.Response) *BookingOptionsResponse {
	out := &BookingOptionsResponse{
		Service: ServiceInfo{
			ID:              resp.Service.ID,
			Name:            resp.Service.Name,
			Category:        resp.Service.Category,
			DurationMinutes: resp.Service.DurationMinutes,
			Price:           resp.Service.Price,
		},
		Date:            resp.Date.Format(domain.DateFormat),
		Weekday:         strings.ToLower(resp.Weekday.String()),
		HasAvailability: resp.HasAvailability,
		Staff:           make([]StaffSlotsInfo, 0, len(resp.Staff)),
	}

	for _, staffSlots := range resp.Staff {
		info := StaffSlotsInfo{
			Staff: toStaffInfo(staffSlots.Staff),
			Slots: make([]SlotInfo, 0, len(staffSlots.Slots)),
		}
		for _, slot := range staffSlots.Slots {
			info.Slots = append(info.Slots, SlotInfo{
				StartTime: slot.StartTime.String(),
				EndTime:   slot.EndTime.String(),
				Available: slot.Available,
			})
		}
		out.Staff = append(out.Staff, info)
	}

	if resp.Alternatives != nil {
		out.Alternatives = &AlternativesInfo{
			Previous: toDayAvailabilityList(resp.Alternatives.Previous),
			Next:     toDayAvailabilityList(resp.Alternatives.Next),
		}
	}

	return out
}

func toStaffInfo(member domain.StaffMember) StaffInfo {
	return StaffInfo{
		ID:       member.ID,
		FullName: member.FullName,
	}
}

func toDayAvailabilityList(days []getBookingOptions.DayAvailability) []DayAvailabilityInfo {
	out := make([]DayAvailabilityInfo, 0, len(days))
	for _, day := range days {
		info := DayAvailabilityInfo{
			Date:    day.Date.Format(domain.DateFormat),
			Weekday: strings.ToLower(day.Weekday.String()),
			Staff:   make([]StaffInfo, 0, len(day.Staff)),
		}
		for _, member := range day.Staff {
			info.Staff = append(info.Staff, toStaffInfo(member))
		}
		out = append(out, info)
	}
	return out
}
