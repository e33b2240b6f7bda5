package get_sites

import (
	"net/http"

	"github.com/aimanhzq/Survey-BookingService/internal/api/handlers"
)

type Handler struct {
	directory SiteDirectory
	logger    Logger
}

func NewHandler(directory SiteDirectory, logger Logger) *Handler {
	return &Handler{
		directory: directory,
		logger:    logger,
	}
}

// SiteResponse HTTP response model
type SiteResponse struct {
	Idx   string `json:"idx"`
	Label string `json:"label"`
}

// Handle GET /api/v1/sites
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sites := h.directory.Sites()

	response := make([]SiteResponse, 0, len(sites))
	for _, s := range sites {
		response = append(response, SiteResponse{Idx: s.Idx, Label: s.Label})
	}

	h.logger.Info("GET /sites - Sites retrieved: count=%d", len(response))
	handlers.RespondJSON(w, http.StatusOK, response)
}
