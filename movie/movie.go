package movie

import (
	"strings"

	"moviehub/errs"
)

var ErrCatalogUnavailable = errs.Errorf(errs.EUNAVAILABLE, "movie catalog unavailable")

// Movie is a catalog record as served by the upstream movies API.
// Numeric-looking fields are kept as text.
type Movie struct {
	Year        string   `json:"year"`
	Votes       string   `json:"votes"`
	Title       string   `json:"title"`
	Runtime     string   `json:"runtime"`
	Revenue     string   `json:"revenue"`
	Rating      string   `json:"rating"`
	Rank        string   `json:"rank"`
	Metascore   string   `json:"metascore"`
	Genre       []string `json:"genre"`
	Director    string   `json:"director"`
	Description string   `json:"description"`
	Actors      []string `json:"actors"`
}

// AdaptedMovie is a Movie with its genre labels joined for display.
type AdaptedMovie struct {
	Movie
	Genres string `json:"genres"`
}

// Page is one page of a movie query.
type Page struct {
	Movies         []AdaptedMovie `json:"movies"`
	TotalPages     int            `json:"totalPages"`
	TotalRegisters int            `json:"totalRegisters"`
}

func (m Movie) HasGenre(genre string) bool {
	for _, g := range m.Genre {
		if g == genre {
			return true
		}
	}
	return false
}

func Adapt(m Movie) AdaptedMovie {
	return AdaptedMovie{
		Movie:  m,
		Genres: strings.Join(m.Genre, ", "),
	}
}

// ExtractGenres returns every genre label in the catalog once, in order of
// first appearance.
func ExtractGenres(movies []Movie) []string {
	seen := make(map[string]struct{})
	genres := make([]string, 0)
	for _, m := range movies {
		for _, g := range m.Genre {
			if _, ok := seen[g]; ok {
				continue
			}
			seen[g] = struct{}{}
			genres = append(genres, g)
		}
	}
	return genres
}

func FilterByGenre(movies []Movie, genre string) []Movie {
	if genre == "" {
		return movies
	}
	filtered := make([]Movie, 0, len(movies))
	for _, m := range movies {
		if m.HasGenre(genre) {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

// FilterByTitle keeps movies whose title contains q, ignoring case.
func FilterByTitle(movies []Movie, q string) []Movie {
	if q == "" {
		return movies
	}
	needle := strings.ToLower(q)
	filtered := make([]Movie, 0, len(movies))
	for _, m := range movies {
		if strings.Contains(strings.ToLower(m.Title), needle) {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

// Paginate returns the 1-indexed page of movies. Pages outside the sequence,
// and non-positive page or page size, yield an empty slice.
func Paginate(movies []Movie, page, pageSize int) []Movie {
	if page < 1 || pageSize < 1 {
		return []Movie{}
	}
	// page-1 is checked against the page count before multiplying so huge
	// page numbers cannot overflow into a negative offset.
	if page-1 >= TotalPages(len(movies), pageSize) {
		return []Movie{}
	}
	start := (page - 1) * pageSize
	end := len(movies)
	if pageSize < end-start {
		end = start + pageSize
	}
	return movies[start:end]
}

func TotalPages(total, pageSize int) int {
	if pageSize < 1 || total < 1 {
		return 0
	}
	pages := total / pageSize
	if total%pageSize != 0 {
		pages++
	}
	return pages
}
