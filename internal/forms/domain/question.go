package domain

import (
	"time"
	"stepform-server/internal/infra/utils"
)

type QuestionType string

const (
	QuestionTypeShortText    QuestionType = "SHORT_TEXT"
	QuestionTypeLongText     QuestionType = "LONG_TEXT"
	QuestionTypeNumber       QuestionType = "NUMBER"
	QuestionTypeDate         QuestionType = "DATE"
	QuestionTypeURL          QuestionType = "URL"
	QuestionTypeDropdown     QuestionType = "DROPDOWN"
	QuestionTypeSingleSelect QuestionType = "SINGLE_SELECT_OPTION"
	QuestionTypeMultiSelect  QuestionType = "MULTI_SELECT_OPTION"
	QuestionTypeContactInfo  QuestionType = "CONTACT_INFO"
	QuestionTypeAddress      QuestionType = "ADDRESS"
	QuestionTypeStatement    QuestionType = "STATEMENT"
	QuestionTypeStartStep    QuestionType = "START_STEP"
	QuestionTypeEndStep      QuestionType = "END_STEP"
)

// Collectable reports whether answers are gathered for this type.
// Statement and the start/end steps are presentation-only and must be
// filtered out before validation.
func (t QuestionType) Collectable() bool {
	switch t {
	case QuestionTypeStatement, QuestionTypeStartStep, QuestionTypeEndStep:
		return false
	default:
		return true
	}
}

// Structural reports whether this type anchors the form layout. The
// reconciliation flow never soft-deletes structural questions.
func (t QuestionType) Structural() bool {
	return t == QuestionTypeStartStep || t == QuestionTypeEndStep
}

// Question is one step of a form. Data is the constraint payload whose
// concrete variant is dictated by Type. A zero ID means the question has
// not been persisted yet.
type Question struct {
	ID          ID
	FormID      ID
	Step        int
	Type        QuestionType
	Title       string
	Description string
	Required    bool
	ButtonText  string
	Data        QuestionData
	Deleted     bool
	CreatedAt   utils.Time
	UpdatedAt   utils.Time
}

func (q *Question) SoftDelete() {
	q.Deleted = true
	q.UpdatedAt = utils.Time{Time: time.Now()}
}

func NewQuestionBuilder() *questionBuilder {
	return &questionBuilder{}
}

type questionBuilder struct {
	actions []questionHandler
}

type questionHandler func(q *Question) error

func (b *questionBuilder) WithFormID(value ID) *questionBuilder {
	b.actions = append(b.actions, func(q *Question) error {
		q.FormID = value
		return nil
	})
	return b
}

func (b *questionBuilder) WithType(value QuestionType) *questionBuilder {
	b.actions = append(b.actions, func(q *Question) error {
		q.Type = value
		return nil
	})
	return b
}

func (b *questionBuilder) WithStep(value int) *questionBuilder {
	b.actions = append(b.actions, func(q *Question) error {
		q.Step = value
		return nil
	})
	return b
}

func (b *questionBuilder) WithTitle(value string) *questionBuilder {
	b.actions = append(b.actions, func(q *Question) error {
		q.Title = value
		return nil
	})
	return b
}

func (b *questionBuilder) WithDescription(value string) *questionBuilder {
	b.actions = append(b.actions, func(q *Question) error {
		q.Description = value
		return nil
	})
	return b
}

func (b *questionBuilder) WithRequired(value bool) *questionBuilder {
	b.actions = append(b.actions, func(q *Question) error {
		q.Required = value
		return nil
	})
	return b
}

func (b *questionBuilder) WithButtonText(value string) *questionBuilder {
	b.actions = append(b.actions, func(q *Question) error {
		q.ButtonText = value
		return nil
	})
	return b
}

func (b *questionBuilder) WithData(value QuestionData) *questionBuilder {
	b.actions = append(b.actions, func(q *Question) error {
		q.Data = value
		return nil
	})
	return b
}

func (b *questionBuilder) Build() (Question, error) {
	now := utils.Time{Time: time.Now()}
	result := Question{
		ID:        ID(utils.GenerateUUID()),
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Question{}, err
		}
	}

	return result, nil
}
