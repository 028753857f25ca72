package usecases

import (
	"context"
	"fmt"

	"stepform-server/internal/forms/domain"
)

type ResponseService interface {
	Submit(ctx context.Context, formID domain.ID, answers []domain.SubmittedAnswer) (domain.Response, []domain.ValidationError, error)
	ListResponses(ctx context.Context, formID domain.ID, pagination Pagination) ([]domain.Response, int, error)
}

var _ ResponseService = (*SimpleResponseService)(nil)

func NewSimpleResponseService(
	questions QuestionCacheService,
	responses ResponseRepository,
) *SimpleResponseService {
	return &SimpleResponseService{
		questions: questions,
		responses: responses,
	}
}

type SimpleResponseService struct {
	questions QuestionCacheService
	responses ResponseRepository
}

// Submit validates a submission against the live question set and stores
// it when clean. A non-empty ValidationError slice with a nil error means
// the submission was rejected, not that anything failed.
func (s *SimpleResponseService) Submit(ctx context.Context, formID domain.ID, answers []domain.SubmittedAnswer) (domain.Response, []domain.ValidationError, error) {
	questions, err := s.questions.LiveQuestions(ctx, formID)
	if err != nil {
		return domain.Response{}, nil, fmt.Errorf("fetching questions: %w", err)
	}
	if len(questions) == 0 {
		return domain.Response{}, nil, ErrNoQuestions
	}

	collectable := make([]domain.Question, 0, len(questions))
	byID := make(map[domain.ID]domain.Question, len(questions))
	for _, question := range questions {
		byID[question.ID] = question
		if question.Type.Collectable() {
			collectable = append(collectable, question)
		}
	}

	if errs := domain.ValidateAll(collectable, answers); len(errs) > 0 {
		return domain.Response{}, errs, nil
	}

	normalized := make([]domain.SubmittedAnswer, 0, len(answers))
	for _, answer := range answers {
		question, ok := byID[answer.QuestionID]
		if !ok {
			continue
		}
		normalized = append(normalized, domain.SubmittedAnswer{
			QuestionID: answer.QuestionID,
			Value:      domain.NormalizeAnswer(question.Type, answer.Value),
		})
	}

	response, err := domain.NewResponseBuilder().
		WithFormID(formID).
		WithAnswers(normalized).
		Build()
	if err != nil {
		return domain.Response{}, nil, fmt.Errorf("building response: %w", err)
	}

	if err := s.responses.Create(ctx, response); err != nil {
		return domain.Response{}, nil, fmt.Errorf("creating response: %w", err)
	}

	return response, nil, nil
}

func (s *SimpleResponseService) ListResponses(ctx context.Context, formID domain.ID, pagination Pagination) ([]domain.Response, int, error) {
	responses, total, err := s.responses.FindAllByForm(ctx, formID, pagination)
	if err != nil {
		return nil, 0, fmt.Errorf("listing responses: %w", err)
	}
	return responses, total, nil
}
