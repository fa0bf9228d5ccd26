package models

import (
	"github.com/ndemina/Salon-AdminService/internal/integrations/tablestore"
)

// MonthlyRow строка помесячной аналитики
type MonthlyRow struct {
	Month        string  `json:"month"` // "2025-07"
	Revenue      float64 `json:"revenue"`
	Appointments int     `json:"appointments"`
	NewClients   int     `json:"newClients"`
}

// SummaryResponse сводка аналитики для дашборда
type SummaryResponse struct {
	TotalRevenue      float64      `json:"totalRevenue"`
	TotalAppointments int          `json:"totalAppointments"`
	TotalNewClients   int          `json:"totalNewClients"`
	Monthly           []MonthlyRow `json:"monthly"`
}

// FromRevenueRows собирает сводку из пред-агрегированных строк хранилища
// Строки уже отсортированы хранилищем по месяцам, порядок сохраняется
func FromRevenueRows(rows []tablestore.RevenueRow) *SummaryResponse {
	resp := &SummaryResponse{
		Monthly: make([]MonthlyRow, 0, len(rows)),
	}

	for _, row := range rows {
		resp.TotalRevenue += row.Revenue
		resp.TotalAppointments += row.Appointments
		resp.TotalNewClients += row.NewClients

		resp.Monthly = append(resp.Monthly, MonthlyRow{
			Month:        row.Month,
			Revenue:      row.Revenue,
			Appointments: row.Appointments,
			NewClients:   row.NewClients,
		})
	}

	return resp
}
