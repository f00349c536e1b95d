package mongodb

import (
	"context"
	"fmt"
	"time"

	"moviehub/comment"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// commentDocument is keyed by an ObjectID so that sorting by _id follows
// insertion order; the public identifier lives in comment_id.
type commentDocument struct {
	ObjectID  bson.ObjectID `bson:"_id,omitempty"`
	CommentID string        `bson:"comment_id"`
	Title     string        `bson:"title"`
	Comment   string        `bson:"comment"`
	CreatedAt time.Time     `bson:"created_at"`
}

type CommentRepository struct {
	collection *mongo.Collection
}

func NewCommentRepository(db *mongo.Database, collection string) *CommentRepository {
	return &CommentRepository{collection: db.Collection(collection)}
}

// EnsureIndexes creates the unique comment_id and the title indexes.
func (r *CommentRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "comment_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "title", Value: 1}},
		},
	})
	if err != nil {
		return fmt.Errorf("mongodb: create comment indexes: %w", err)
	}
	return nil
}

func (r *CommentRepository) CreateComment(ctx context.Context, c comment.AdaptedComment) error {
	doc := commentDocument{
		ObjectID:  bson.NewObjectID(),
		CommentID: c.ID,
		Title:     c.Title,
		Comment:   c.Comment.Comment,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("mongodb: insert comment: %w", err)
	}
	return nil
}

func (r *CommentRepository) AllComments(ctx context.Context) ([]comment.AdaptedComment, error) {
	cursor, err := r.collection.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("mongodb: find comments: %w", err)
	}

	var docs []commentDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongodb: decode comments: %w", err)
	}

	comments := make([]comment.AdaptedComment, len(docs))
	for i, doc := range docs {
		comments[i] = comment.AdaptedComment{
			ID: doc.CommentID,
			Comment: comment.Comment{
				Title:   doc.Title,
				Comment: doc.Comment,
			},
		}
	}
	return comments, nil
}
