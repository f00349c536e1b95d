package dynamodb_test

import (
	"context"
	"testing"

	"moviehub/comment"
	"moviehub/dynamodb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepository(t *testing.T) {
	client := CreateLocalClient(t)

	t.Run("fails without table name", func(t *testing.T) {
		repo := dynamodb.NewCommentRepository(client, "")

		err := repo.CreateComment(context.Background(), comment.AdaptedComment{ID: "1"})
		assert.Error(t, err)

		_, err = repo.AllComments(context.Background())
		assert.Error(t, err)
	})

	t.Run("lists created comments in creation order", func(t *testing.T) {
		table := "comments_list"
		require.NoError(t, dynamodb.CreateCommentsTable(context.Background(), client, table))
		repo := dynamodb.NewCommentRepository(client, table)
		expected := []comment.AdaptedComment{
			{ID: "a1", Comment: comment.Comment{Title: "Inception", Comment: "Great"}},
			{ID: "b2", Comment: comment.Comment{Title: "Up", Comment: "Sad start"}},
			{ID: "c3", Comment: comment.Comment{Title: "Inception", Comment: "Confusing"}},
		}
		for _, c := range expected {
			require.NoError(t, repo.CreateComment(context.Background(), c))
		}

		comments, err := repo.AllComments(context.Background())

		require.NoError(t, err)
		assert.Equal(t, expected, comments)
	})

	t.Run("rejects duplicate identifiers", func(t *testing.T) {
		table := "comments_duplicate"
		require.NoError(t, dynamodb.CreateCommentsTable(context.Background(), client, table))
		repo := dynamodb.NewCommentRepository(client, table)
		c := comment.AdaptedComment{ID: "dup", Comment: comment.Comment{Title: "Up", Comment: "Balloons"}}
		require.NoError(t, repo.CreateComment(context.Background(), c))

		err := repo.CreateComment(context.Background(), c)

		assert.Error(t, err)
	})

	t.Run("returns empty list for empty table", func(t *testing.T) {
		table := "comments_empty"
		require.NoError(t, dynamodb.CreateCommentsTable(context.Background(), client, table))
		repo := dynamodb.NewCommentRepository(client, table)

		comments, err := repo.AllComments(context.Background())

		require.NoError(t, err)
		assert.Empty(t, comments)
	})
}
