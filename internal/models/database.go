package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/timshannon/bolthold"
	"go.etcd.io/bbolt"
)

// Database wraps the bolthold store
type Database struct {
	store *bolthold.Store
}

// NewDatabase creates a new database connection
func NewDatabase(path string) (*Database, error) {
	store, err := bolthold.Open(path, 0600, &bolthold.Options{
		Options: &bbolt.Options{
			Timeout: 1 * time.Second,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &Database{store: store}, nil
}

// Close closes the database connection
func (db *Database) Close() error {
	return db.store.Close()
}

// Movie operations

// CreateMovie inserts a new movie and lets the store assign its ID
func (db *Database) CreateMovie(movie *Movie) error {
	movie.CreatedAt = time.Now()
	movie.UpdatedAt = time.Now()
	return db.store.Insert(bolthold.NextSequence(), movie)
}

// UpdateMovie replaces an existing movie record
func (db *Database) UpdateMovie(movie *Movie) error {
	movie.UpdatedAt = time.Now()
	return db.store.Update(movie.ID, movie)
}

// GetMovieByID retrieves a movie by ID
func (db *Database) GetMovieByID(id uint64) (*Movie, error) {
	var movie Movie
	err := db.store.Get(id, &movie)
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// DeleteMovie deletes a movie by ID
func (db *Database) DeleteMovie(id uint64) error {
	return db.store.Delete(id, &Movie{})
}

// MovieFilter holds the optional list constraints. Zero values mean the
// constraint is absent; present constraints combine with AND.
type MovieFilter struct {
	Title       string // case-insensitive substring match
	ReleaseYear *int   // exact match
	Genre       string // exact match
}

// FindMovies retrieves all movies matching the filter, in store order
func (db *Database) FindMovies(filter MovieFilter) ([]*Movie, error) {
	var query *bolthold.Query

	if filter.Title != "" {
		needle := strings.ToLower(filter.Title)
		query = bolthold.Where("Title").MatchFunc(func(ra *bolthold.RecordAccess) (bool, error) {
			title, ok := ra.Field().(string)
			if !ok {
				return false, nil
			}
			return strings.Contains(strings.ToLower(title), needle), nil
		})
	}

	if filter.ReleaseYear != nil {
		if query != nil {
			query = query.And("ReleaseYear").Eq(*filter.ReleaseYear)
		} else {
			query = bolthold.Where("ReleaseYear").Eq(*filter.ReleaseYear)
		}
	}

	if filter.Genre != "" {
		if query != nil {
			query = query.And("Genre").Eq(Genre(filter.Genre))
		} else {
			query = bolthold.Where("Genre").Eq(Genre(filter.Genre))
		}
	}

	var movies []*Movie
	err := db.store.Find(&movies, query)
	return movies, err
}

// CountMoviesByGenre returns the number of stored movies per genre
func (db *Database) CountMoviesByGenre() (map[string]int, error) {
	movies, err := db.FindMovies(MovieFilter{})
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, movie := range movies {
		counts[string(movie.Genre)]++
	}
	return counts, nil
}

// IsNotFound reports whether err means the record does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, bolthold.ErrNotFound)
}
