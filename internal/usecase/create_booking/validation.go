package create_booking

import (
	"fmt"
	"strings"

	"github.com/aimanhzq/Survey-BookingService/internal/domain"
	"github.com/aimanhzq/Survey-BookingService/internal/timegrid"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SurveyorBookingID < 0 {
		return fmt.Errorf("%w: surveyorBookingId must not be negative", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !timegrid.Contains(req.StartLabel) {
		return fmt.Errorf("%w: startLabel %q is not a bookable slot", ErrInvalidInput, req.StartLabel)
	}

	if strings.TrimSpace(req.SiteIdx) == "" {
		return fmt.Errorf("%w: site is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.SurveyType) == "" {
		return fmt.Errorf("%w: surveyType is required", ErrInvalidInput)
	}
	if !isKnownSurveyType(req.SurveyType) {
		return fmt.Errorf("%w: unknown surveyType %q", ErrInvalidInput, req.SurveyType)
	}

	if len(req.BDRemarks) > domain.MaxRemarksLength {
		return fmt.Errorf("%w: remarks exceed %d characters", ErrInvalidInput, domain.MaxRemarksLength)
	}

	return nil
}

func isKnownSurveyType(surveyType string) bool {
	for _, t := range domain.SurveyTypes {
		if t == surveyType {
			return true
		}
	}
	return false
}
