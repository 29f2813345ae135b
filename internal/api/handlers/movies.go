package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/moviarr/moviarr/internal/models"
	"github.com/moviarr/moviarr/internal/validator"
	"github.com/sirupsen/logrus"
)

// MovieHandler handles the movie CRUD endpoints
type MovieHandler struct {
	db     *models.Database
	logger *logrus.Logger
}

// NewMovieHandler creates a new movie handler
func NewMovieHandler(db *models.Database, logger *logrus.Logger) *MovieHandler {
	return &MovieHandler{
		db:     db,
		logger: logger,
	}
}

// movieRequest is the client write payload for create and update
type movieRequest struct {
	Title       string `json:"title"`
	Director    string `json:"director"`
	ReleaseYear int    `json:"releaseYear"`
	Genre       string `json:"genre"`
	Image       string `json:"image"`
}

// List handles GET /api/movies with optional title, releaseYear and genre
// query filters. Filters combine with AND; absent filters are omitted.
func (h *MovieHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := models.MovieFilter{
		Title: query.Get("title"),
		Genre: query.Get("genre"),
	}

	// A non-numeric releaseYear is dropped from the filter, not an error
	if raw := query.Get("releaseYear"); raw != "" {
		if year, err := strconv.Atoi(raw); err == nil {
			filter.ReleaseYear = &year
		}
	}

	movies, err := h.db.FindMovies(filter)
	if err != nil {
		serverErrorResponse(w, r, h.logger, err)
		return
	}

	if movies == nil {
		movies = []*models.Movie{}
	}

	writeJSON(w, http.StatusOK, movies)
}

// Create handles POST /api/movies
func (h *MovieHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload movieRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	movie := &models.Movie{
		Title:       payload.Title,
		Director:    payload.Director,
		ReleaseYear: payload.ReleaseYear,
		Genre:       models.Genre(payload.Genre),
		Image:       payload.Image,
	}

	v := validator.New()
	if models.ValidateMovie(v, movie); !v.Valid() {
		failedValidationResponse(w, v.Violations)
		return
	}

	if err := h.db.CreateMovie(movie); err != nil {
		serverErrorResponse(w, r, h.logger, err)
		return
	}

	h.logger.WithFields(logrus.Fields{
		"id":    movie.ID,
		"title": movie.Title,
	}).Info("Movie created")

	writeJSON(w, http.StatusCreated, movie)
}

// Update handles PUT /api/movies/:id. It replaces all mutable fields of
// the record; validation runs before the id is even looked at.
func (h *MovieHandler) Update(w http.ResponseWriter, r *http.Request) {
	var payload movieRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	update := &models.Movie{
		Title:       payload.Title,
		Director:    payload.Director,
		ReleaseYear: payload.ReleaseYear,
		Genre:       models.Genre(payload.Genre),
		Image:       payload.Image,
	}

	v := validator.New()
	if models.ValidateMovie(v, update); !v.Valid() {
		failedValidationResponse(w, v.Violations)
		return
	}

	id, err := parseID(r)
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid movie id")
		return
	}

	movie, err := h.db.GetMovieByID(id)
	if err != nil {
		if models.IsNotFound(err) {
			errorResponse(w, http.StatusNotFound, "movie not found")
			return
		}
		serverErrorResponse(w, r, h.logger, err)
		return
	}

	movie.Title = update.Title
	movie.Director = update.Director
	movie.ReleaseYear = update.ReleaseYear
	movie.Genre = update.Genre
	movie.Image = update.Image

	if err := h.db.UpdateMovie(movie); err != nil {
		serverErrorResponse(w, r, h.logger, err)
		return
	}

	h.logger.WithFields(logrus.Fields{
		"id":    movie.ID,
		"title": movie.Title,
	}).Info("Movie updated")

	writeJSON(w, http.StatusOK, movie)
}

// Delete handles DELETE /api/movies/:id
func (h *MovieHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid movie id")
		return
	}

	if err := h.db.DeleteMovie(id); err != nil {
		if models.IsNotFound(err) {
			errorResponse(w, http.StatusNotFound, "movie not found")
			return
		}
		serverErrorResponse(w, r, h.logger, err)
		return
	}

	h.logger.WithField("id", id).Info("Movie deleted")

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "movie deleted",
	})
}

// parseID reads the :id path parameter
func parseID(r *http.Request) (uint64, error) {
	params := httprouter.ParamsFromContext(r.Context())
	return strconv.ParseUint(params.ByName("id"), 10, 64)
}
