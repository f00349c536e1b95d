package comment_test

import (
	"context"
	"errors"
	"testing"

	"moviehub/comment"
	"moviehub/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInstrumentedRepository(t *testing.T) {
	t.Run("counts successful operations", func(t *testing.T) {
		r := new(MockCommentRepository)
		ir := comment.Instrument(r, "test-ok")
		c := comment.AdaptedComment{ID: "1", Comment: comment.Comment{Title: "Up", Comment: "ok"}}
		r.On("CreateComment", mock.Anything, c).Return(nil).Once()
		r.On("AllComments", mock.Anything).Return([]comment.AdaptedComment{c}, nil).Once()

		require.NoError(t, ir.CreateComment(context.Background(), c))
		comments, err := ir.AllComments(context.Background())
		require.NoError(t, err)

		assert.Equal(t, []comment.AdaptedComment{c}, comments)
		assert.Equal(t, 1.0, testutil.ToFloat64(metrics.CommentStoreOperations.WithLabelValues("test-ok", "create", "success")))
		assert.Equal(t, 1.0, testutil.ToFloat64(metrics.CommentStoreOperations.WithLabelValues("test-ok", "list", "success")))
		r.AssertExpectations(t)
	})

	t.Run("counts failures and passes the error through", func(t *testing.T) {
		r := new(MockCommentRepository)
		ir := comment.Instrument(r, "test-fail")
		storeErr := errors.New("connection refused")
		r.On("AllComments", mock.Anything).Return(nil, storeErr).Once()

		_, err := ir.AllComments(context.Background())

		assert.ErrorIs(t, err, storeErr)
		assert.Equal(t, 1.0, testutil.ToFloat64(metrics.CommentStoreOperations.WithLabelValues("test-fail", "list", "failure")))
		assert.Equal(t, 0.0, testutil.ToFloat64(metrics.CommentStoreOperations.WithLabelValues("test-fail", "list", "success")))
	})
}
