package httpserver

import (
	"net/http"

	"moviehub/errs"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterCommentRoutes(g *echo.Group) {
	g.GET("/comments", s.handleListComments)
	g.POST("/comments", s.handleCreateComment)
}

// handleCreateComment godoc
// @Summary Create Comment
// @Description Leave a comment on a movie, keyed by its title
// @Tags comments
// @Accept json
// @Produce json
// @Param comment body CreateCommentRequest true "Comment"
// @Success 200 {object} comment.AdaptedComment
// @Failure 400 {object} APIResponse
// @Failure 503 {object} APIResponse
// @Router /api/comments [post]
func (s *Server) handleCreateComment(c echo.Context) error {
	if s.CommentService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "comment service not configured")
	}

	var req CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return errs.Errorf(errs.EINVALID, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	created, err := s.CommentService.CreateComment(c.Request().Context(), req.ToComment())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, created)
}

// handleListComments godoc
// @Summary List Comments
// @Description Every stored comment; clients filter by movie title
// @Tags comments
// @Produce json
// @Success 200 {array} comment.AdaptedComment
// @Failure 503 {object} APIResponse
// @Router /api/comments [get]
func (s *Server) handleListComments(c echo.Context) error {
	if s.CommentService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "comment service not configured")
	}

	comments, err := s.CommentService.ListComments(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, comments)
}
