package httpserver

import (
	"moviehub/comment"
)

type CreateCommentRequest struct {
	Title   string `json:"title" validate:"required,notblank,max=500"`
	Comment string `json:"comment" validate:"required,notblank,max=5000"`
}

func (r CreateCommentRequest) ToComment() comment.Comment {
	return comment.Comment{
		Title:   r.Title,
		Comment: r.Comment,
	}
}
