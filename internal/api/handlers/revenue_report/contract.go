package revenue_report

import (
	"context"

	revenueReport "github.com/m04kA/SMC-HotelService/internal/usecase/revenue_report"
)

type RevenueReportUseCase interface {
	Execute(ctx context.Context, req *revenueReport.Request) (*revenueReport.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
