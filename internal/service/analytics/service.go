package analytics

import (
	"context"
	"fmt"

	"github.com/ndemina/Salon-AdminService/internal/service/analytics/models"
)

// Service сервис аналитики для дашборда панели
// Показатели пред-агрегированы на стороне табличного хранилища,
// сервис только собирает из них сводку
type Service struct {
	source RevenueSource
	logger Logger
}

// NewService создает новый экземпляр сервиса аналитики
func NewService(source RevenueSource, logger Logger) *Service {
	return &Service{
		source: source,
		logger: logger,
	}
}

// GetSummary возвращает сводку аналитики: итоги и помесячную разбивку
func (s *Service) GetSummary(ctx context.Context) (*models.SummaryResponse, error) {
	s.logger.Info("GetSummary: fetching revenue rows")

	rows, err := s.source.ListRevenueRows(ctx)
	if err != nil {
		s.logger.Error("GetSummary: source error: %v", err)
		return nil, fmt.Errorf("%w: GetSummary - source error: %v", ErrInternal, err)
	}

	s.logger.Info("GetSummary: successfully fetched %d revenue rows", len(rows))
	return models.FromRevenueRows(rows), nil
}
