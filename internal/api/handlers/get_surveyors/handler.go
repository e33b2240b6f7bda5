package get_surveyors

import (
	"net/http"

	"github.com/aimanhzq/Survey-BookingService/internal/api/handlers"
)

type Handler struct {
	directory SurveyorDirectory
	logger    Logger
}

func NewHandler(directory SurveyorDirectory, logger Logger) *Handler {
	return &Handler{
		directory: directory,
		logger:    logger,
	}
}

// SurveyorResponse HTTP response model
type SurveyorResponse struct {
	SurveyorBookingID int64  `json:"surveyorBookingId"`
	Name              string `json:"name"`
	Region            string `json:"region"`
	State             string `json:"state"`
	AvatarURL         string `json:"avatarUrl,omitempty"`
	Bookable          bool   `json:"bookable"`
}

// Handle GET /api/v1/surveyors
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	surveyors := h.directory.Surveyors()

	response := make([]SurveyorResponse, 0, len(surveyors))
	for _, sv := range surveyors {
		response = append(response, SurveyorResponse{
			SurveyorBookingID: sv.BookingID,
			Name:              sv.Name,
			Region:            sv.Region,
			State:             sv.State,
			AvatarURL:         sv.AvatarURL,
			Bookable:          sv.IsBookable(),
		})
	}

	h.logger.Info("GET /surveyors - Surveyors retrieved: count=%d", len(response))
	handlers.RespondJSON(w, http.StatusOK, response)
}
