package movie

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type Service interface {
	Genres(ctx context.Context) ([]string, error)
	Movies(ctx context.Context, query Query) (Page, error)
	Browse(ctx context.Context, query Query) (Browse, error)
}

// CatalogSource returns the full, unfiltered movie catalog.
type CatalogSource interface {
	AllMovies(ctx context.Context) ([]Movie, error)
}

// Browse is the initial listing: one page of movies plus the genre options.
type Browse struct {
	Page
	Genres []string `json:"genres"`
}

type Usecase struct {
	c CatalogSource
}

func NewUsecase(c CatalogSource) *Usecase {
	return &Usecase{c: c}
}

func (uc *Usecase) Genres(ctx context.Context) ([]string, error) {
	movies, err := uc.c.AllMovies(ctx)
	if err != nil {
		return nil, err
	}
	return ExtractGenres(movies), nil
}

// Movies filters the catalog by genre, then by title, and returns the
// requested page. Totals always describe the filtered set.
func (uc *Usecase) Movies(ctx context.Context, query Query) (Page, error) {
	movies, err := uc.c.AllMovies(ctx)
	if err != nil {
		return Page{}, err
	}
	return Search(movies, query), nil
}

// Browse runs the movie query and the genre extraction concurrently.
func (uc *Usecase) Browse(ctx context.Context, query Query) (Browse, error) {
	var result Browse
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		page, err := uc.Movies(ctx, query)
		result.Page = page
		return err
	})
	g.Go(func() error {
		genres, err := uc.Genres(ctx)
		result.Genres = genres
		return err
	})
	if err := g.Wait(); err != nil {
		return Browse{}, err
	}
	return result, nil
}

// Search applies query to an already fetched catalog.
func Search(movies []Movie, query Query) Page {
	query = query.withDefaults()

	filtered := FilterByTitle(FilterByGenre(movies, query.Genre), query.Q)
	paginated := Paginate(filtered, query.Page, query.PageSize)

	adapted := make([]AdaptedMovie, len(paginated))
	for i, m := range paginated {
		adapted[i] = Adapt(m)
	}

	return Page{
		Movies:         adapted,
		TotalPages:     TotalPages(len(filtered), query.PageSize),
		TotalRegisters: len(filtered),
	}
}
