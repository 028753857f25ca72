package persistence

import (
	"context"
	"fmt"
	"time"

	formsdomain "stepform-server/internal/forms/domain"
	"stepform-server/internal/forms/usecases"
	"stepform-server/internal/infra/cache"
)

const (
	_questionCacheKeyPrefix = "form_questions:"
	_questionCacheTTL       = 5 * time.Minute
)

func NewCachedQuestionService(
	questions usecases.QuestionRepository,
	store cache.Cache,
) *CachedQuestionService {
	return &CachedQuestionService{
		questions: questions,
		store:     store,
	}
}

var _ usecases.QuestionCacheService = (*CachedQuestionService)(nil)

// CachedQuestionService keeps the live question set of a form in memory
// for the submission hot path. Publish and delete invalidate the entry,
// so a stale set lives at most the TTL on other replicas.
type CachedQuestionService struct {
	questions usecases.QuestionRepository
	store     cache.Cache
}

func (s *CachedQuestionService) LiveQuestions(ctx context.Context, formID formsdomain.ID) ([]formsdomain.Question, error) {
	key := _questionCacheKeyPrefix + formID.String()

	value, err := s.store.GetOrSet(ctx, key, _questionCacheTTL, func() (any, error) {
		return s.questions.FindByForm(ctx, formID, false)
	})
	if err != nil {
		return nil, fmt.Errorf("loading questions: %w", err)
	}

	questions, ok := value.([]formsdomain.Question)
	if !ok {
		// Serializing backends lose the slice type on the way back.
		// Treat the entry as a miss rather than failing the submission.
		return s.questions.FindByForm(ctx, formID, false)
	}

	return questions, nil
}

func (s *CachedQuestionService) Invalidate(ctx context.Context, formID formsdomain.ID) {
	s.store.Delete(ctx, _questionCacheKeyPrefix+formID.String())
}
