package models

import (
	"path/filepath"
	"testing"
)

func newTestDatabase(t *testing.T) *Database {
	t.Helper()

	db, err := NewDatabase(filepath.Join(t.TempDir(), "moviarr.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func TestCreateAssignsID(t *testing.T) {
	db := newTestDatabase(t)

	movie := &Movie{Title: "Arrival", Director: "Villeneuve", ReleaseYear: 2016, Genre: GenreSciFi}
	if err := db.CreateMovie(movie); err != nil {
		t.Fatalf("Failed to create movie: %v", err)
	}
	if movie.ID == 0 {
		t.Error("Expected the store to assign a non-zero ID")
	}
	if movie.CreatedAt.IsZero() || movie.UpdatedAt.IsZero() {
		t.Error("Expected CreatedAt and UpdatedAt to be set")
	}

	second := &Movie{Title: "Dune", Director: "Villeneuve", ReleaseYear: 2021, Genre: GenreSciFi}
	if err := db.CreateMovie(second); err != nil {
		t.Fatalf("Failed to create second movie: %v", err)
	}
	if second.ID == movie.ID {
		t.Errorf("Expected distinct IDs, both got %d", movie.ID)
	}
}

func TestGetUpdateRoundTrip(t *testing.T) {
	db := newTestDatabase(t)

	movie := &Movie{Title: "Arrival", Director: "Villeneuve", ReleaseYear: 2016, Genre: GenreSciFi}
	if err := db.CreateMovie(movie); err != nil {
		t.Fatalf("Failed to create movie: %v", err)
	}

	got, err := db.GetMovieByID(movie.ID)
	if err != nil {
		t.Fatalf("Failed to get movie: %v", err)
	}
	if got.Title != "Arrival" || got.Director != "Villeneuve" || got.ReleaseYear != 2016 || got.Genre != GenreSciFi {
		t.Errorf("Fetched movie does not match created one: %+v", got)
	}

	got.ReleaseYear = 2017
	if err := db.UpdateMovie(got); err != nil {
		t.Fatalf("Failed to update movie: %v", err)
	}

	updated, err := db.GetMovieByID(movie.ID)
	if err != nil {
		t.Fatalf("Failed to get updated movie: %v", err)
	}
	if updated.ReleaseYear != 2017 {
		t.Errorf("Expected release year 2017, got %d", updated.ReleaseYear)
	}
}

func TestGetUnknownIDIsNotFound(t *testing.T) {
	db := newTestDatabase(t)

	_, err := db.GetMovieByID(42)
	if !IsNotFound(err) {
		t.Errorf("Expected a not-found error, got %v", err)
	}
}

func TestDeleteIsIdempotentlyNotFound(t *testing.T) {
	db := newTestDatabase(t)

	movie := &Movie{Title: "Arrival", Director: "Villeneuve", ReleaseYear: 2016, Genre: GenreSciFi}
	if err := db.CreateMovie(movie); err != nil {
		t.Fatalf("Failed to create movie: %v", err)
	}

	// First delete succeeds
	if err := db.DeleteMovie(movie.ID); err != nil {
		t.Fatalf("Failed to delete movie: %v", err)
	}

	// Second delete reports not found
	if err := db.DeleteMovie(movie.ID); !IsNotFound(err) {
		t.Errorf("Expected a not-found error on second delete, got %v", err)
	}
}

func TestFindMoviesFilters(t *testing.T) {
	db := newTestDatabase(t)

	fixtures := []*Movie{
		{Title: "Dune", Director: "Villeneuve", ReleaseYear: 2021, Genre: GenreSciFi},
		{Title: "Dune", Director: "Lynch", ReleaseYear: 1984, Genre: GenreSciFi},
		{Title: "Amélie", Director: "Jeunet", ReleaseYear: 2001, Genre: GenreRomance},
	}
	for _, movie := range fixtures {
		if err := db.CreateMovie(movie); err != nil {
			t.Fatalf("Failed to create fixture %q: %v", movie.Title, err)
		}
	}

	// No filters returns everything
	all, err := db.FindMovies(MovieFilter{})
	if err != nil {
		t.Fatalf("Unfiltered find failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 movies, got %d", len(all))
	}

	// Title match is a case-insensitive substring
	byTitle, err := db.FindMovies(MovieFilter{Title: "dUn"})
	if err != nil {
		t.Fatalf("Title find failed: %v", err)
	}
	if len(byTitle) != 2 {
		t.Errorf("Expected 2 movies titled Dune, got %d", len(byTitle))
	}

	// Filters combine with AND
	year := 1984
	combined, err := db.FindMovies(MovieFilter{Title: "Dune", ReleaseYear: &year})
	if err != nil {
		t.Fatalf("Combined find failed: %v", err)
	}
	if len(combined) != 1 {
		t.Fatalf("Expected exactly 1 movie, got %d", len(combined))
	}
	if combined[0].Director != "Lynch" {
		t.Errorf("Expected the 1984 Dune, got %+v", combined[0])
	}

	// Genre is an exact match
	byGenre, err := db.FindMovies(MovieFilter{Genre: "Romance"})
	if err != nil {
		t.Fatalf("Genre find failed: %v", err)
	}
	if len(byGenre) != 1 || byGenre[0].Title != "Amélie" {
		t.Errorf("Expected only Amélie for Romance, got %d results", len(byGenre))
	}

	// No match yields an empty result, not an error
	none, err := db.FindMovies(MovieFilter{Title: "Solaris"})
	if err != nil {
		t.Fatalf("No-match find failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("Expected no movies, got %d", len(none))
	}
}

func TestCountMoviesByGenre(t *testing.T) {
	db := newTestDatabase(t)

	fixtures := []*Movie{
		{Title: "Dune", Director: "Villeneuve", ReleaseYear: 2021, Genre: GenreSciFi},
		{Title: "Arrival", Director: "Villeneuve", ReleaseYear: 2016, Genre: GenreSciFi},
		{Title: "Amélie", Director: "Jeunet", ReleaseYear: 2001, Genre: GenreRomance},
	}
	for _, movie := range fixtures {
		if err := db.CreateMovie(movie); err != nil {
			t.Fatalf("Failed to create fixture %q: %v", movie.Title, err)
		}
	}

	counts, err := db.CountMoviesByGenre()
	if err != nil {
		t.Fatalf("Failed to count movies: %v", err)
	}
	if counts["Sci-Fi"] != 2 {
		t.Errorf("Expected 2 Sci-Fi movies, got %d", counts["Sci-Fi"])
	}
	if counts["Romance"] != 1 {
		t.Errorf("Expected 1 Romance movie, got %d", counts["Romance"])
	}
}
