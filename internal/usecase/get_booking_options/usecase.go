package get_booking_options

import (
	"context"
	"errors"
	"fmt"

	"github.com/ndemina/Salon-AdminService/internal/domain"
	"github.com/ndemina/Salon-AdminService/internal/integrations/tablestore"
)

// UseCase use case расчёта вариантов записи на услугу
// Чистый и синхронный: все данные получаются до вызова генерации слотов,
// сами вычисления не делают I/O и детерминированы
type UseCase struct {
	catalog               ServiceCatalog
	staffDirectory        StaffDirectory
	alternativeWindowDays int
	logger                Logger
}

// NewUseCase создает новый экземпляр use case
// alternativeWindowDays <= 0 заменяется значением по умолчанию (1 день)
func NewUseCase(
	catalog ServiceCatalog,
	staffDirectory StaffDirectory,
	alternativeWindowDays int,
	logger Logger,
) *UseCase {
	if alternativeWindowDays <= 0 {
		alternativeWindowDays = domain.DefaultAlternativeWindowDays
	}

	return &UseCase{
		catalog:               catalog,
		staffDirectory:        staffDirectory,
		alternativeWindowDays: alternativeWindowDays,
		logger:                logger,
	}
}

// Execute выполняет use case получения вариантов записи
// При наличии доступных мастеров возвращает сетку слотов на каждого,
// иначе - результат поиска по соседним дням
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetBookingOptions: service=%q, date=%s",
		req.ServiceName, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetBookingOptions: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу из каталога
	service, err := uc.catalog.GetServiceByName(ctx, req.ServiceName)
	if err != nil {
		if errors.Is(err, tablestore.ErrServiceNotFound) {
			uc.logger.Warn("GetBookingOptions: service %q not found", req.ServiceName)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetBookingOptions: failed to get service %q: %v", req.ServiceName, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Услуга должна помещаться в рабочий день
	if !service.FitsBusinessDay() {
		uc.logger.Warn("GetBookingOptions: service %q has invalid duration %d",
			req.ServiceName, service.DurationMinutes)
		return nil, fmt.Errorf("%w: service duration is %d", ErrInvalidDuration, service.DurationMinutes)
	}

	// 4. Получаем квалифицированных мастеров
	// Пустой список - не ошибка: запрос вырождается в "нет доступности"
	qualifiedStaff, err := uc.staffDirectory.GetQualifiedStaff(ctx, req.ServiceName)
	if err != nil {
		uc.logger.Error("GetBookingOptions: failed to get qualified staff for %q: %v", req.ServiceName, err)
		return nil, fmt.Errorf("%w: failed to get qualified staff: %v", ErrInternal, err)
	}

	response := &Response{
		Service: *service,
		Date:    req.Date,
		Weekday: req.Date.Weekday(),
	}

	// 5. Если в запрошенную дату никто не доступен - ищем по соседним дням
	if !hasAvailabilityOnDate(qualifiedStaff, req.Date) {
		alternatives := findAlternativeAvailability(qualifiedStaff, req.Date, uc.alternativeWindowDays)
		response.Alternatives = &alternatives

		uc.logger.Info("GetBookingOptions: no availability for %q on %s, alternatives found=%t",
			req.ServiceName, req.Date.Format(domain.DateFormat), alternatives.HasAnyStaff())
		return response, nil
	}

	// 6. Генерируем сетку слотов один раз и привязываем к каждому доступному мастеру
	slots, err := generateTimeSlots(service.DurationMinutes)
	if err != nil {
		uc.logger.Warn("GetBookingOptions: slot generation failed for %q: %v", req.ServiceName, err)
		return nil, err
	}

	availableStaff := filterAvailableStaff(qualifiedStaff, req.Date)
	response.HasAvailability = true
	response.Staff = make([]StaffSlots, 0, len(availableStaff))
	for _, member := range availableStaff {
		response.Staff = append(response.Staff, StaffSlots{
			Staff: member,
			Slots: slots,
		})
	}

	uc.logger.Info("GetBookingOptions: %d staff available for %q on %s, %d slots each",
		len(availableStaff), req.ServiceName, req.Date.Format(domain.DateFormat), len(slots))

	return response, nil
}
