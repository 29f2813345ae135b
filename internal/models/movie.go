package models

import (
	"fmt"
	"net/url"
	"time"

	"github.com/moviarr/moviarr/internal/validator"
)

// EarliestReleaseYear is the year of the first motion picture
const EarliestReleaseYear = 1888

// Movie represents a single movie record
type Movie struct {
	ID uint64 `boltholdKey:"ID" json:"id"`

	Title       string `boltholdIndex:"Title" json:"title"`
	Director    string `json:"director"`
	ReleaseYear int    `boltholdIndex:"ReleaseYear" json:"releaseYear"`
	Genre       Genre  `boltholdIndex:"Genre" json:"genre"`
	Image       string `json:"image,omitempty"` // optional poster URL

	// Metadata
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// ValidateMovie checks the mutable fields of a movie against the write
// payload rules. All rules are evaluated; violations accumulate in v.
func ValidateMovie(v *validator.Validator, movie *Movie) {
	v.Check(movie.Title != "", "title", "must be provided")

	v.Check(movie.Director != "", "director", "must be provided")

	v.Check(movie.ReleaseYear != 0, "releaseYear", "must be provided")
	if movie.ReleaseYear != 0 {
		currentYear := time.Now().Year()
		v.Check(movie.ReleaseYear >= EarliestReleaseYear && movie.ReleaseYear <= currentYear,
			"releaseYear", fmt.Sprintf("must be between %d and %d", EarliestReleaseYear, currentYear))
	}

	if movie.Genre == "" {
		v.AddViolation("genre", "must be provided")
	} else {
		v.Check(validator.In(string(movie.Genre), GenreValues()...),
			"genre", "must be one of "+genreList())
	}

	if movie.Image != "" {
		v.Check(isAbsoluteURL(movie.Image), "image", "must be a valid URL")
	}
}

func genreList() string {
	list := ""
	for i, g := range GenreValues() {
		if i > 0 {
			list += ", "
		}
		list += g
	}
	return list
}

func isAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.IsAbs() && u.Host != ""
}
