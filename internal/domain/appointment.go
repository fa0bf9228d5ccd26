package domain

import (
	"time"

	"github.com/ndemina/Salon-AdminService/pkg/types"
)

// AppointmentStatus статус записи клиента
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// Appointment запись клиента к мастеру
// ClientID и StaffID - идентификаторы записей во внешнем табличном хранилище,
// сама запись хранится локально в Postgres
type Appointment struct {
	ID              int64
	ClientID        string
	ClientName      string
	StaffID         string
	StaffName       string
	ServiceID       string
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          AppointmentStatus

	// Денормализованные данные услуги для истории
	ServiceName  string
	ServicePrice float64

	Notes          *string
	IdempotencyKey *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive возвращает true для записей, занимающих слот в расписании
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled && a.Status != StatusNoShow
}

// CanBeCancelled возвращает true, если запись можно отменить
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusScheduled
}

// AppointmentsFilter фильтр для выборки записей
type AppointmentsFilter struct {
	StaffID         *string            // Фильтр по мастеру (опционально)
	ClientID        *string            // Фильтр по клиенту (опционально)
	StartDate       *time.Time         // Начало периода (опционально)
	EndDate         *time.Time         // Конец периода (опционально)
	Status          *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отменённые и no-show записи
}

// InactiveStatuses статусы записей, не занимающих слот в расписании
var InactiveStatuses = []AppointmentStatus{
	StatusCancelled,
	StatusNoShow,
}

// ValidAppointmentStatuses все допустимые статусы записи
var ValidAppointmentStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}
