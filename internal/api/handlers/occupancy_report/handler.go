package occupancy_report

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	occupancyReport "github.com/m04kA/SMC-HotelService/internal/usecase/occupancy_report"
)

const (
	msgMissingStartDate = "начальная дата обязательна"
	msgMissingEndDate   = "конечная дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDateRange = "начальная дата позже конечной"
	msgWindowTooLarge   = "слишком большое окно отчета"
)

type Handler struct {
	useCase  OccupancyReportUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase OccupancyReportUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/reports/occupancy
// Query params: startDate (required), endDate (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	startStr := query.Get("startDate")
	if startStr == "" {
		h.logger.Warn("GET /reports/occupancy - Missing start date")
		handlers.RespondBadRequest(w, msgMissingStartDate)
		return
	}

	endStr := query.Get("endDate")
	if endStr == "" {
		h.logger.Warn("GET /reports/occupancy - Missing end date")
		handlers.RespondBadRequest(w, msgMissingEndDate)
		return
	}

	// Формируем запрос к use case (с парсингом дат)
	useCaseReq, err := ToUseCaseRequest(startStr, endStr, h.location)
	if err != nil {
		h.logger.Warn("GET /reports/occupancy - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, occupancyReport.ErrInvalidDateRange):
			h.logger.Warn("GET /reports/occupancy - Invalid date range: start=%s, end=%s", startStr, endStr)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, occupancyReport.ErrInvalidInput):
			h.logger.Warn("GET /reports/occupancy - Window too large: start=%s, end=%s", startStr, endStr)
			handlers.RespondBadRequest(w, msgWindowTooLarge)

		default:
			h.logger.Error("GET /reports/occupancy - Failed to build report: start=%s, end=%s, error=%v",
				startStr, endStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /reports/occupancy - Report built successfully: start=%s, end=%s, days=%d, average_rate=%.2f",
		startStr, endStr, len(result.Days), result.AverageRate)
	handlers.RespondJSON(w, http.StatusOK, response)
}
