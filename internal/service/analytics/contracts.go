package analytics

import (
	"context"

	"github.com/ndemina/Salon-AdminService/internal/integrations/tablestore"
)

// RevenueSource источник пред-агрегированных строк аналитики
type RevenueSource interface {
	ListRevenueRows(ctx context.Context) ([]tablestore.RevenueRow, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
