package httpserver

import (
	"net/http"

	"moviehub/errs"
	"moviehub/movie"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterMovieRoutes(g *echo.Group) {
	g.GET("/movies", s.handleListMovies)
	g.GET("/genres", s.handleListGenres)
	g.GET("/browse", s.handleBrowse)
}

// handleListMovies godoc
// @Summary List Movies
// @Description Filter the movie catalog by genre and title, then paginate
// @Tags movies
// @Produce json
// @Param q query string false "Case-insensitive title substring"
// @Param genre query string false "Exact genre label"
// @Param page query int false "1-indexed page, default 1"
// @Param pageSize query int false "Page size, default 10"
// @Success 200 {object} movie.Page
// @Failure 503 {object} APIResponse
// @Router /api/movies [get]
func (s *Server) handleListMovies(c echo.Context) error {
	if s.MovieService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
	}

	page, err := s.MovieService.Movies(c.Request().Context(), movie.ParseQuery(c.QueryParams()))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, page)
}

// handleListGenres godoc
// @Summary List Genres
// @Description Distinct genre labels in order of first appearance
// @Tags movies
// @Produce json
// @Success 200 {array} string
// @Failure 503 {object} APIResponse
// @Router /api/genres [get]
func (s *Server) handleListGenres(c echo.Context) error {
	if s.MovieService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
	}

	genres, err := s.MovieService.Genres(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, genres)
}

// handleBrowse godoc
// @Summary Browse Movies
// @Description One page of movies together with the genre options
// @Tags movies
// @Produce json
// @Param q query string false "Case-insensitive title substring"
// @Param genre query string false "Exact genre label"
// @Param page query int false "1-indexed page, default 1"
// @Param pageSize query int false "Page size, default 10"
// @Success 200 {object} movie.Browse
// @Failure 503 {object} APIResponse
// @Router /api/browse [get]
func (s *Server) handleBrowse(c echo.Context) error {
	if s.MovieService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
	}

	result, err := s.MovieService.Browse(c.Request().Context(), movie.ParseQuery(c.QueryParams()))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}
