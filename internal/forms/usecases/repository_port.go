package usecases

import (
	"context"
	"errors"

	"stepform-server/internal/forms/domain"
)

var (
	ErrFormNotFound      = errors.New("form not found")
	ErrNoQuestions       = errors.New("form has no questions")
	ErrValidationFailure = errors.New("form validation failed")
)

type Pagination struct {
	Limit  int
	Offset int
}

type FormRepository interface {
	Create(ctx context.Context, form domain.Form, seed []domain.Question) error
	GetByID(ctx context.Context, id domain.ID) (domain.Form, error)
	FindAllByUser(ctx context.Context, userID domain.ID) ([]domain.Form, error)
	Update(ctx context.Context, form domain.Form) error
	Delete(ctx context.Context, id domain.ID) error
}

type QuestionRepository interface {
	FindByForm(ctx context.Context, formID domain.ID, includeDeleted bool) ([]domain.Question, error)
	Reconcile(ctx context.Context, form domain.Form, softDeleted, updates, creates []domain.Question) ([]domain.Question, error)
}

type ResponseRepository interface {
	Create(ctx context.Context, response domain.Response) error
	FindAllByForm(ctx context.Context, formID domain.ID, pagination Pagination) ([]domain.Response, int, error)
}

// QuestionCacheService fronts QuestionRepository for the hot submission
// path. Invalidate must run after every publish.
type QuestionCacheService interface {
	LiveQuestions(ctx context.Context, formID domain.ID) ([]domain.Question, error)
	Invalidate(ctx context.Context, formID domain.ID)
}
