package reschedule_booking

import (
	"fmt"

	"github.com/aimanhzq/Survey-BookingService/internal/timegrid"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SurveyorBookingID <= 0 {
		return fmt.Errorf("%w: surveyorBookingId must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !timegrid.Contains(req.StartLabel) {
		return fmt.Errorf("%w: startLabel %q is not a bookable slot", ErrInvalidInput, req.StartLabel)
	}

	return nil
}
