package comment

import (
	"strings"

	"moviehub/errs"
)

var (
	ErrInvalidTitle   = errs.Errorf(errs.EINVALID, "invalid title")
	ErrInvalidComment = errs.Errorf(errs.EINVALID, "invalid comment")
)

// Comment is free text left on a movie, keyed by the movie title.
type Comment struct {
	Title   string `json:"title"`
	Comment string `json:"comment"`
}

// AdaptedComment is a stored comment with the identifier assigned at creation.
type AdaptedComment struct {
	ID string `json:"id"`
	Comment
}

func (c Comment) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return ErrInvalidTitle
	}

	if strings.TrimSpace(c.Comment) == "" {
		return ErrInvalidComment
	}

	return nil
}
