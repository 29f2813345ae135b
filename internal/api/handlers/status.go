package handlers

import (
	"net/http"

	"github.com/moviarr/moviarr/internal/models"
	"github.com/sirupsen/logrus"
)

// StatusHandler handles status requests
type StatusHandler struct {
	db     *models.Database
	logger *logrus.Logger
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(db *models.Database, logger *logrus.Logger) *StatusHandler {
	return &StatusHandler{
		db:     db,
		logger: logger,
	}
}

// StatusResponse represents the status response
type StatusResponse struct {
	TotalMovies   int            `json:"total_movies"`
	MoviesByGenre map[string]int `json:"movies_by_genre"`
}

// ServeHTTP handles the status endpoint
func (h *StatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	counts, err := h.db.CountMoviesByGenre()
	if err != nil {
		serverErrorResponse(w, r, h.logger, err)
		return
	}

	response := StatusResponse{
		MoviesByGenre: counts,
	}
	for _, n := range counts {
		response.TotalMovies += n
	}

	writeJSON(w, http.StatusOK, response)
}
