package postgres

import (
	"context"
	"time"

	"moviehub/comment"

	"gorm.io/gorm"
)

// CommentModel represents the database model for comments
type CommentModel struct {
	ID        uint      `gorm:"primaryKey"`
	CommentID string    `gorm:"column:comment_id;type:uuid;not null;uniqueIndex"`
	Title     string    `gorm:"not null;index"`
	Comment   string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (CommentModel) TableName() string {
	return "comments"
}

// CommentRepository implements comment.Repository interface
type CommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// CreateComment appends a comment to the comments table
func (r *CommentRepository) CreateComment(ctx context.Context, c comment.AdaptedComment) error {
	model := CommentModel{
		CommentID: c.ID,
		Title:     c.Title,
		Comment:   c.Comment.Comment,
	}
	return r.db.WithContext(ctx).Create(&model).Error
}

// AllComments returns every comment in insertion order
func (r *CommentRepository) AllComments(ctx context.Context) ([]comment.AdaptedComment, error) {
	var models []CommentModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}

	comments := make([]comment.AdaptedComment, len(models))
	for i, model := range models {
		comments[i] = comment.AdaptedComment{
			ID: model.CommentID,
			Comment: comment.Comment{
				Title:   model.Title,
				Comment: model.Comment,
			},
		}
	}
	return comments, nil
}
