package occupancy_report

import (
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// validateRequest валидирует окно отчёта
func validateRequest(req *Request) error {
	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	if req.EndDate.IsZero() {
		return fmt.Errorf("%w: endDate is required", ErrInvalidInput)
	}

	if req.StartDate.After(req.EndDate) {
		return ErrInvalidDateRange
	}

	if domain.DaysBetween(req.StartDate, req.EndDate) > domain.MaxReportRangeDays {
		return fmt.Errorf("%w: report window exceeds %d days", ErrInvalidInput, domain.MaxReportRangeDays)
	}

	return nil
}
