package models

import (
	"testing"
	"time"

	"github.com/moviarr/moviarr/internal/validator"
)

func validMovie() *Movie {
	return &Movie{
		Title:       "Arrival",
		Director:    "Villeneuve",
		ReleaseYear: 2016,
		Genre:       GenreSciFi,
	}
}

func violationFields(v *validator.Validator) []string {
	fields := make([]string, 0, len(v.Violations))
	for _, violation := range v.Violations {
		fields = append(fields, violation.Field)
	}
	return fields
}

func hasViolation(v *validator.Validator, field string) bool {
	for _, violation := range v.Violations {
		if violation.Field == field {
			return true
		}
	}
	return false
}

func TestValidateMovieAcceptsValidPayload(t *testing.T) {
	v := validator.New()
	ValidateMovie(v, validMovie())

	if !v.Valid() {
		t.Errorf("Expected no violations, got %v", violationFields(v))
	}
}

func TestValidateMovieMissingTitle(t *testing.T) {
	movie := validMovie()
	movie.Title = ""

	v := validator.New()
	ValidateMovie(v, movie)

	if !hasViolation(v, "title") {
		t.Error("Expected a violation naming 'title'")
	}
}

func TestValidateMovieMissingDirector(t *testing.T) {
	movie := validMovie()
	movie.Director = ""

	v := validator.New()
	ValidateMovie(v, movie)

	if !hasViolation(v, "director") {
		t.Error("Expected a violation naming 'director'")
	}
}

func TestValidateMovieReleaseYearBounds(t *testing.T) {
	currentYear := time.Now().Year()

	// Boundary years are accepted
	for _, year := range []int{EarliestReleaseYear, currentYear} {
		movie := validMovie()
		movie.ReleaseYear = year

		v := validator.New()
		ValidateMovie(v, movie)
		if hasViolation(v, "releaseYear") {
			t.Errorf("Expected year %d to be accepted", year)
		}
	}

	// Out-of-range years are rejected
	for _, year := range []int{1800, EarliestReleaseYear - 1, currentYear + 1} {
		movie := validMovie()
		movie.ReleaseYear = year

		v := validator.New()
		ValidateMovie(v, movie)
		if !hasViolation(v, "releaseYear") {
			t.Errorf("Expected year %d to be rejected", year)
		}
	}

	// Absent year is rejected as missing
	movie := validMovie()
	movie.ReleaseYear = 0

	v := validator.New()
	ValidateMovie(v, movie)
	if !hasViolation(v, "releaseYear") {
		t.Error("Expected a missing releaseYear to be rejected")
	}
}

func TestValidateMovieGenreEnumeration(t *testing.T) {
	for _, genre := range GenreValues() {
		movie := validMovie()
		movie.Genre = Genre(genre)

		v := validator.New()
		ValidateMovie(v, movie)
		if hasViolation(v, "genre") {
			t.Errorf("Expected genre '%s' to be accepted", genre)
		}
	}

	// Exact case match is required
	for _, genre := range []Genre{"", "sci-fi", "SCI-FI", "Thriller"} {
		movie := validMovie()
		movie.Genre = genre

		v := validator.New()
		ValidateMovie(v, movie)
		if !hasViolation(v, "genre") {
			t.Errorf("Expected genre '%s' to be rejected", genre)
		}
	}
}

func TestValidateMovieImage(t *testing.T) {
	// Absence is not a violation
	movie := validMovie()
	movie.Image = ""

	v := validator.New()
	ValidateMovie(v, movie)
	if hasViolation(v, "image") {
		t.Error("Expected an absent image to be accepted")
	}

	movie.Image = "https://example.com/poster.jpg"
	v = validator.New()
	ValidateMovie(v, movie)
	if hasViolation(v, "image") {
		t.Error("Expected a well-formed URL to be accepted")
	}

	for _, image := range []string{"not a url", "/relative/path", "example.com/poster.jpg"} {
		movie.Image = image
		v = validator.New()
		ValidateMovie(v, movie)
		if !hasViolation(v, "image") {
			t.Errorf("Expected image '%s' to be rejected", image)
		}
	}
}

func TestValidateMovieCollectsAllViolations(t *testing.T) {
	movie := &Movie{}

	v := validator.New()
	ValidateMovie(v, movie)

	for _, field := range []string{"title", "director", "releaseYear", "genre"} {
		if !hasViolation(v, field) {
			t.Errorf("Expected a violation naming '%s', got %v", field, violationFields(v))
		}
	}
}
