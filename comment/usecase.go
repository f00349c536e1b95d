package comment

import (
	"context"

	"moviehub/errs"

	"github.com/google/uuid"
)

type Service interface {
	CreateComment(ctx context.Context, c Comment) (AdaptedComment, error)
	ListComments(ctx context.Context) ([]AdaptedComment, error)
}

// Repository is the append-only comment store.
type Repository interface {
	CreateComment(ctx context.Context, c AdaptedComment) error
	AllComments(ctx context.Context) ([]AdaptedComment, error)
}

type Usecase struct {
	r     Repository
	newID func() string
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r, newID: uuid.NewString}
}

func (uc *Usecase) CreateComment(ctx context.Context, c Comment) (AdaptedComment, error) {
	if err := c.Validate(); err != nil {
		return AdaptedComment{}, err
	}

	adapted := AdaptedComment{ID: uc.newID(), Comment: c}
	if err := uc.r.CreateComment(ctx, adapted); err != nil {
		return AdaptedComment{}, errs.Wrap(errs.EUNAVAILABLE, err, "comment store unavailable")
	}
	return adapted, nil
}

func (uc *Usecase) ListComments(ctx context.Context) ([]AdaptedComment, error) {
	comments, err := uc.r.AllComments(ctx)
	if err != nil {
		return nil, errs.Wrap(errs.EUNAVAILABLE, err, "comment store unavailable")
	}
	if comments == nil {
		comments = []AdaptedComment{}
	}
	return comments, nil
}
