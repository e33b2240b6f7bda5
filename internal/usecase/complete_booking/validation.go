package complete_booking

import (
	"fmt"
	"strings"

	"github.com/aimanhzq/Survey-BookingService/internal/domain"
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

	if strings.TrimSpace(req.SurveyRemarks) == "" {
		return fmt.Errorf("%w: surveyRemarks are required", ErrInvalidInput)
	}

	if len(req.SurveyRemarks) > domain.MaxRemarksLength {
		return fmt.Errorf("%w: remarks exceed %d characters", ErrInvalidInput, domain.MaxRemarksLength)
	}

	if req.SurveyPhotoRef == "" {
		return fmt.Errorf("%w: surveyPhotoRef is required", ErrInvalidInput)
	}

	return nil
}
