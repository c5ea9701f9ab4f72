package occupancy_report

import (
	"context"

	occupancyReport "github.com/m04kA/SMC-HotelService/internal/usecase/occupancy_report"
)

type OccupancyReportUseCase interface {
	Execute(ctx context.Context, req *occupancyReport.Request) (*occupancyReport.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
