package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"stepform-server/internal/forms/domain"
	"stepform-server/internal/infra/utils"
)

type FormService interface {
	CreateForm(ctx context.Context, form domain.Form) error
	GetForm(ctx context.Context, id domain.ID) (domain.Form, error)
	ListUserForms(ctx context.Context, userID domain.ID) ([]domain.Form, error)
	UpdateForm(ctx context.Context, id domain.ID, title string, settings map[string]any, status domain.FormStatus) (domain.Form, error)
	DeleteForm(ctx context.Context, id domain.ID) error
	GetQuestions(ctx context.Context, formID domain.ID) ([]domain.Question, error)
	Publish(ctx context.Context, formID domain.ID, drafts []domain.Question) (domain.Form, []domain.Question, error)
}

var _ FormService = (*SimpleFormService)(nil)

func NewSimpleFormService(
	forms FormRepository,
	questions QuestionRepository,
	cache QuestionCacheService,
) *SimpleFormService {
	return &SimpleFormService{
		forms:     forms,
		questions: questions,
		cache:     cache,
	}
}

type SimpleFormService struct {
	forms     FormRepository
	questions QuestionRepository
	cache     QuestionCacheService
}

// CreateForm persists the form together with its welcome and thank-you
// steps so a fresh form renders without any authoring.
func (s *SimpleFormService) CreateForm(ctx context.Context, form domain.Form) error {
	start, err := domain.NewQuestionBuilder().
		WithFormID(form.ID).
		WithType(domain.QuestionTypeStartStep).
		WithStep(0).
		WithTitle("Hey there 😀").
		WithDescription("Mind filling out this form?").
		WithButtonText("Get Started").
		WithData(domain.StartStepData{}).
		Build()
	if err != nil {
		return fmt.Errorf("building start step: %w", err)
	}

	end, err := domain.NewQuestionBuilder().
		WithFormID(form.ID).
		WithType(domain.QuestionTypeEndStep).
		WithStep(1).
		WithTitle("Thank you! 🙌").
		WithDescription("That's all. You may now close this window.").
		WithData(domain.EndStepData{}).
		Build()
	if err != nil {
		return fmt.Errorf("building end step: %w", err)
	}

	if err := s.forms.Create(ctx, form, []domain.Question{start, end}); err != nil {
		return fmt.Errorf("creating form: %w", err)
	}

	return nil
}

func (s *SimpleFormService) GetForm(ctx context.Context, id domain.ID) (domain.Form, error) {
	return s.forms.GetByID(ctx, id)
}

func (s *SimpleFormService) ListUserForms(ctx context.Context, userID domain.ID) ([]domain.Form, error) {
	forms, err := s.forms.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing forms: %w", err)
	}
	return forms, nil
}

func (s *SimpleFormService) UpdateForm(ctx context.Context, id domain.ID, title string, settings map[string]any, status domain.FormStatus) (domain.Form, error) {
	form, err := s.forms.GetByID(ctx, id)
	if err != nil {
		return domain.Form{}, err
	}

	form.UpdateInfo(title, settings, status)
	if err := s.forms.Update(ctx, form); err != nil {
		return domain.Form{}, fmt.Errorf("updating form: %w", err)
	}

	return form, nil
}

func (s *SimpleFormService) DeleteForm(ctx context.Context, id domain.ID) error {
	if _, err := s.forms.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.forms.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting form: %w", err)
	}
	s.cache.Invalidate(ctx, id)
	return nil
}

func (s *SimpleFormService) GetQuestions(ctx context.Context, formID domain.ID) ([]domain.Question, error) {
	if _, err := s.forms.GetByID(ctx, formID); err != nil {
		return nil, err
	}
	questions, err := s.questions.FindByForm(ctx, formID, false)
	if err != nil {
		return nil, fmt.Errorf("fetching questions: %w", err)
	}
	return questions, nil
}

// Publish reconciles the submitted question list against the persisted
// one and flips the form to PUBLISHED, all inside one transaction.
// Persisted questions absent from the list are soft deleted so historical
// answers stay resolvable; the welcome and thank-you steps are never
// deleted. Drafts carrying an id that does not belong to this form are
// dropped.
func (s *SimpleFormService) Publish(ctx context.Context, formID domain.ID, drafts []domain.Question) (domain.Form, []domain.Question, error) {
	form, err := s.forms.GetByID(ctx, formID)
	if err != nil {
		return domain.Form{}, nil, err
	}

	persisted, err := s.questions.FindByForm(ctx, formID, false)
	if err != nil {
		return domain.Form{}, nil, fmt.Errorf("fetching persisted questions: %w", err)
	}

	byID := make(map[domain.ID]domain.Question, len(persisted))
	for _, question := range persisted {
		byID[question.ID] = question
	}

	now := utils.Time{Time: time.Now()}
	kept := make(map[domain.ID]bool, len(drafts))
	var updates, creates []domain.Question

	for _, draft := range drafts {
		if draft.ID == "" {
			question, err := domain.NewQuestionBuilder().
				WithFormID(formID).
				WithType(draft.Type).
				WithStep(draft.Step).
				WithTitle(draft.Title).
				WithDescription(draft.Description).
				WithRequired(draft.Required).
				WithButtonText(draft.ButtonText).
				WithData(draft.Data).
				Build()
			if err != nil {
				return domain.Form{}, nil, fmt.Errorf("building question: %w", err)
			}
			creates = append(creates, question)
			continue
		}

		existing, ok := byID[draft.ID]
		if !ok {
			slog.Warn("ignoring question not owned by form",
				slog.String("form_id", formID.String()),
				slog.String("question_id", draft.ID.String()),
			)
			continue
		}

		draft.FormID = formID
		draft.CreatedAt = existing.CreatedAt
		draft.UpdatedAt = now
		draft.Deleted = false
		updates = append(updates, draft)
		kept[draft.ID] = true
	}

	var softDeleted []domain.Question
	for _, question := range persisted {
		if kept[question.ID] || question.Type.Structural() {
			continue
		}
		question.SoftDelete()
		softDeleted = append(softDeleted, question)
	}

	form.Publish()

	questions, err := s.questions.Reconcile(ctx, form, softDeleted, updates, creates)
	if err != nil {
		return domain.Form{}, nil, fmt.Errorf("reconciling questions: %w", err)
	}

	s.cache.Invalidate(ctx, formID)

	return form, questions, nil
}
