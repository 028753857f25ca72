package internal

import (
	"encoding/json"
	"fmt"

	formsdomain "stepform-server/internal/forms/domain"
	"stepform-server/internal/infra/utils"
)

type PublishRequest struct {
	Questions []QuestionRequest `json:"questions"`
}

// QuestionRequest is one question of a publish payload. A missing id
// marks the question as new.
type QuestionRequest struct {
	ID          *string         `json:"id,omitempty"`
	Type        string          `json:"type"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Step        int             `json:"step"`
	Required    *bool           `json:"required,omitempty"`
	ButtonText  *string         `json:"button_text,omitempty"`
	Data        json.RawMessage `json:"data,omitempty"`
}

func (r QuestionRequest) ToDraft(formID formsdomain.ID) (formsdomain.Question, error) {
	questionType := formsdomain.QuestionType(r.Type)

	data, err := formsdomain.DecodeQuestionData(questionType, r.Data)
	if err != nil {
		return formsdomain.Question{}, fmt.Errorf("question %q: %w", r.Title, err)
	}

	draft := formsdomain.Question{
		FormID:      formID,
		Step:        r.Step,
		Type:        questionType,
		Title:       r.Title,
		Description: r.Description,
		Data:        data,
	}

	if r.ID != nil {
		draft.ID = formsdomain.ID(*r.ID)
	}
	if r.Required != nil {
		draft.Required = *r.Required
	}
	if r.ButtonText != nil {
		draft.ButtonText = *r.ButtonText
	}

	return draft, nil
}

type QuestionResponse struct {
	ID          string          `json:"id"`
	FormID      string          `json:"form_id"`
	Step        int             `json:"step"`
	Type        string          `json:"type"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Required    bool            `json:"required"`
	ButtonText  string          `json:"button_text,omitempty"`
	Data        json.RawMessage `json:"data"`
	CreatedAt   utils.Time      `json:"created_at"`
	UpdatedAt   utils.Time      `json:"updated_at"`
}

func ToQuestionResponse(question formsdomain.Question) QuestionResponse {
	data, err := formsdomain.EncodeQuestionData(question.Data)
	if err != nil {
		data = []byte("{}")
	}

	return QuestionResponse{
		ID:          question.ID.String(),
		FormID:      question.FormID.String(),
		Step:        question.Step,
		Type:        string(question.Type),
		Title:       question.Title,
		Description: question.Description,
		Required:    question.Required,
		ButtonText:  question.ButtonText,
		Data:        data,
		CreatedAt:   question.CreatedAt,
		UpdatedAt:   question.UpdatedAt,
	}
}

type PublishResponse struct {
	Form      FormResponse       `json:"form"`
	Questions []QuestionResponse `json:"questions"`
}
