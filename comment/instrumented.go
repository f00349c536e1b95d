package comment

import (
	"context"

	"moviehub/pkg/metrics"
)

// InstrumentedRepository counts store operations per driver.
type InstrumentedRepository struct {
	r      Repository
	driver string
}

func Instrument(r Repository, driver string) *InstrumentedRepository {
	return &InstrumentedRepository{r: r, driver: driver}
}

func (ir *InstrumentedRepository) CreateComment(ctx context.Context, c AdaptedComment) error {
	err := ir.r.CreateComment(ctx, c)
	ir.observe("create", err)
	return err
}

func (ir *InstrumentedRepository) AllComments(ctx context.Context) ([]AdaptedComment, error) {
	comments, err := ir.r.AllComments(ctx)
	ir.observe("list", err)
	return comments, err
}

func (ir *InstrumentedRepository) observe(operation string, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	metrics.CommentStoreOperations.WithLabelValues(ir.driver, operation, result).Inc()
}
