package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/ndemina/Salon-AdminService/internal/domain"
	aptRepo "github.com/ndemina/Salon-AdminService/internal/infra/storage/appointment"
	"github.com/ndemina/Salon-AdminService/internal/integrations/pushchannel"
	"github.com/ndemina/Salon-AdminService/internal/integrations/tablestore"
)

// UseCase use case для создания записи клиента
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalog         ServiceCatalog
	staffDirectory  StaffDirectory
	notifier        Notifier
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalog ServiceCatalog,
	staffDirectory StaffDirectory,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalog:         catalog,
		staffDirectory:  staffDirectory,
		notifier:        notifier,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// проверка пересечений и вставка выполняются атомарно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%s, staff=%s, service=%s, date=%s, time=%s",
		req.ClientID, req.StaffID, req.ServiceName, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не должна быть в прошлом
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateAppointment: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	// 3. Дедупликация по ключу идемпотентности: повторный запрос с тем же
	// ключом возвращает ранее созданную запись без повторной вставки
	if req.IdempotencyKey != nil && *req.IdempotencyKey != "" {
		existing, err := uc.appointmentRepo.GetByIdempotencyKey(ctx, *req.IdempotencyKey)
		if err == nil {
			uc.logger.Info("CreateAppointment: idempotency key hit, returning appointment id=%d", existing.ID)
			return toResponse(existing), nil
		}
		if !errors.Is(err, aptRepo.ErrAppointmentNotFound) {
			uc.logger.Error("CreateAppointment: failed to check idempotency key: %v", err)
			return nil, fmt.Errorf("%w: failed to check idempotency key: %v", ErrInternal, err)
		}
	}

	// 4. Получаем услугу из каталога
	service, err := uc.catalog.GetServiceByName(ctx, req.ServiceName)
	if err != nil {
		if errors.Is(err, tablestore.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service %q not found", req.ServiceName)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service %q: %v", req.ServiceName, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 5. Время должно попадать в сетку слотов и укладываться в рабочие часы
	if err := validateTimeSlot(req.StartTime, service.DurationMinutes); err != nil {
		uc.logger.Warn("CreateAppointment: time slot validation failed: %v", err)
		return nil, err
	}

	// 6. Мастер должен быть квалифицирован и работать в этот день недели
	qualifiedStaff, err := uc.staffDirectory.GetQualifiedStaff(ctx, service.Name)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get qualified staff: %v", err)
		return nil, fmt.Errorf("%w: failed to get qualified staff: %v", ErrInternal, err)
	}

	staffMember := findStaffMember(qualifiedStaff, req.StaffID)
	if staffMember == nil {
		uc.logger.Warn("CreateAppointment: staff id=%s is not qualified for service %q", req.StaffID, service.Name)
		return nil, ErrStaffNotQualified
	}

	if !staffMember.IsAvailableOn(req.Date.Weekday()) {
		uc.logger.Warn("CreateAppointment: staff id=%s is not available on %s", req.StaffID, req.Date.Weekday())
		return nil, ErrStaffNotAvailable
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 7. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Получаем все активные записи мастера на эту дату с блокировкой (FOR UPDATE)
		filter := domain.AppointmentsFilter{
			StaffID:         &req.StaffID,
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			IncludeInactive: false,
		}

		appointments, err := uc.appointmentRepo.GetWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 7.2. Проверяем пересечение с существующими записями
		overlap, err := hasOverlap(req.StartTime, service.DurationMinutes, appointments)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to check overlap: %v", err)
			return fmt.Errorf("%w: failed to check overlap: %v", ErrInternal, err)
		}

		if overlap {
			uc.logger.Warn("CreateAppointment: slot %s is taken for staff id=%s on %s",
				req.StartTime, req.StaffID, req.Date.Format(domain.DateFormat))
			return ErrSlotNotAvailable
		}

		// 7.3. Создаем запись с денормализацией данных услуги
		apt := &domain.Appointment{
			ClientID:        req.ClientID,
			ClientName:      req.ClientName,
			StaffID:         staffMember.ID,
			StaffName:       staffMember.FullName,
			ServiceID:       service.ID,
			Date:            req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: service.DurationMinutes,
			Status:          domain.StatusScheduled,
			// Денормализация данных услуги для истории
			ServiceName:     service.Name,
			ServicePrice:    service.Price,
			Notes:           req.Notes,
			IdempotencyKey:  req.IdempotencyKey,
		}

		created, err := uc.appointmentRepo.Create(txCtx, apt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	// 8. Уведомляем клиента через push-канал (best effort, ошибка не откатывает запись)
	uc.notifyClient(ctx, req, result)

	return toResponse(result), nil
}

// notifyClient отправляет подтверждение записи в диалог клиента
// Канал не является источником истины, сбой доставки только логируется
func (uc *UseCase) notifyClient(ctx context.Context, req *Request, apt *domain.Appointment) {
	if req.ConversationID == nil || *req.ConversationID == "" {
		return
	}

	notification := pushchannel.Notification{
		ConversationID: *req.ConversationID,
		Event:          "appointment_created",
		Text: fmt.Sprintf("%s: %s, %s %s",
			apt.ClientName, apt.ServiceName, apt.Date.Format(domain.DateFormat), apt.StartTime),
	}

	if err := uc.notifier.NotifyWithGracefulDegradation(ctx, notification); err != nil {
		uc.logger.Warn("CreateAppointment: notification skipped for appointment id=%d: %v", apt.ID, err)
	}
}

// toResponse конвертирует доменную запись в response
func toResponse(apt *domain.Appointment) *Response {
	return &Response{
		ID:              apt.ID,
		ClientID:        apt.ClientID,
		ClientName:      apt.ClientName,
		StaffID:         apt.StaffID,
		StaffName:       apt.StaffName,
		ServiceID:       apt.ServiceID,
		Date:            apt.Date,
		StartTime:       apt.StartTime,
		DurationMinutes: apt.DurationMinutes,
		Status:          string(apt.Status),
		ServiceName:     apt.ServiceName,
		ServicePrice:    apt.ServicePrice,
		Notes:           apt.Notes,
		CreatedAt:       apt.CreatedAt,
		UpdatedAt:       apt.UpdatedAt,
	}
}
