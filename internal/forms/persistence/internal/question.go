package internal

import (
	"fmt"

	"gorm.io/datatypes"

	formsdomain "stepform-server/internal/forms/domain"
	"stepform-server/internal/infra/utils"
)

type Question struct {
	ID          string         `json:"id" gorm:"primaryKey"`
	FormID      string         `json:"form_id" gorm:"index:idx_form_questions_form_step;not null"`
	Step        int            `json:"step" gorm:"index:idx_form_questions_form_step"`
	Type        string         `json:"type" gorm:"not null"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Required    bool           `json:"required"`
	ButtonText  string         `json:"button_text"`
	Data        datatypes.JSON `json:"data"`
	Deleted     bool           `json:"deleted" gorm:"index;default:false"`
	CreatedAt   utils.Time     `json:"created_at"`
	UpdatedAt   utils.Time     `json:"updated_at"`
}

func (Question) TableName() string {
	return "form_questions"
}

func (m Question) ToDomain() (formsdomain.Question, error) {
	data, err := formsdomain.DecodeQuestionData(formsdomain.QuestionType(m.Type), m.Data)
	if err != nil {
		return formsdomain.Question{}, fmt.Errorf("decoding question data: %w", err)
	}

	return formsdomain.Question{
		ID:          formsdomain.ID(m.ID),
		FormID:      formsdomain.ID(m.FormID),
		Step:        m.Step,
		Type:        formsdomain.QuestionType(m.Type),
		Title:       m.Title,
		Description: m.Description,
		Required:    m.Required,
		ButtonText:  m.ButtonText,
		Data:        data,
		Deleted:     m.Deleted,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}, nil
}

func FromQuestion(value formsdomain.Question) (Question, error) {
	data, err := formsdomain.EncodeQuestionData(value.Data)
	if err != nil {
		return Question{}, fmt.Errorf("encoding question data: %w", err)
	}

	return Question{
		ID:          value.ID.String(),
		FormID:      value.FormID.String(),
		Step:        value.Step,
		Type:        string(value.Type),
		Title:       value.Title,
		Description: value.Description,
		Required:    value.Required,
		ButtonText:  value.ButtonText,
		Data:        datatypes.JSON(data),
		Deleted:     value.Deleted,
		CreatedAt:   value.CreatedAt,
		UpdatedAt:   value.UpdatedAt,
	}, nil
}
