package get_analytics_summary

import (
	"context"

	"github.com/ndemina/Salon-AdminService/internal/service/analytics/models"
)

type AnalyticsService interface {
	GetSummary(ctx context.Context) (*models.SummaryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
