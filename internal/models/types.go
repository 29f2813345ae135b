package models

// Genre represents the genre classification of a movie
type Genre string

const (
	GenreAction  Genre = "Action"
	GenreComedy  Genre = "Comedy"
	GenreDrama   Genre = "Drama"
	GenreHorror  Genre = "Horror"
	GenreSciFi   Genre = "Sci-Fi"
	GenreRomance Genre = "Romance"
	GenreOther   Genre = "Other"
)

// GenreValues returns every valid genre, in declaration order
func GenreValues() []string {
	return []string{
		string(GenreAction),
		string(GenreComedy),
		string(GenreDrama),
		string(GenreHorror),
		string(GenreSciFi),
		string(GenreRomance),
		string(GenreOther),
	}
}
