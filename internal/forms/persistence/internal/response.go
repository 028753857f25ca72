package internal

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	formsdomain "stepform-server/internal/forms/domain"
	"stepform-server/internal/infra/utils"
)

type Response struct {
	ID        string     `json:"id" gorm:"primaryKey"`
	FormID    string     `json:"form_id" gorm:"index;not null"`
	Answers   []Answer   `json:"answers" gorm:"foreignKey:ResponseID"`
	CreatedAt utils.Time `json:"created_at"`
	UpdatedAt utils.Time `json:"updated_at"`
}

func (Response) TableName() string {
	return "form_responses"
}

type Answer struct {
	ID         string         `json:"id" gorm:"primaryKey"`
	ResponseID string         `json:"response_id" gorm:"index;not null"`
	QuestionID string         `json:"question_id" gorm:"index;not null"`
	Value      datatypes.JSON `json:"value"`
	CreatedAt  utils.Time     `json:"created_at"`
}

func (Answer) TableName() string {
	return "form_answers"
}

func (m Response) ToDomain() formsdomain.Response {
	answers := make([]formsdomain.Answer, len(m.Answers))
	for i, answer := range m.Answers {
		answers[i] = answer.ToDomain()
	}

	return formsdomain.Response{
		ID:        formsdomain.ID(m.ID),
		FormID:    formsdomain.ID(m.FormID),
		Answers:   answers,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (m Answer) ToDomain() formsdomain.Answer {
	var value any
	if len(m.Value) > 0 {
		_ = json.Unmarshal(m.Value, &value)
	}

	return formsdomain.Answer{
		ID:         formsdomain.ID(m.ID),
		ResponseID: formsdomain.ID(m.ResponseID),
		QuestionID: formsdomain.ID(m.QuestionID),
		Value:      value,
		CreatedAt:  m.CreatedAt,
	}
}

func FromResponse(value formsdomain.Response) (Response, error) {
	answers := make([]Answer, len(value.Answers))
	for i, answer := range value.Answers {
		entity, err := FromAnswer(answer)
		if err != nil {
			return Response{}, err
		}
		answers[i] = entity
	}

	return Response{
		ID:        value.ID.String(),
		FormID:    value.FormID.String(),
		Answers:   answers,
		CreatedAt: value.CreatedAt,
		UpdatedAt: value.UpdatedAt,
	}, nil
}

func FromAnswer(value formsdomain.Answer) (Answer, error) {
	encoded, err := json.Marshal(value.Value)
	if err != nil {
		return Answer{}, fmt.Errorf("encoding answer value: %w", err)
	}

	return Answer{
		ID:         value.ID.String(),
		ResponseID: value.ResponseID.String(),
		QuestionID: value.QuestionID.String(),
		Value:      datatypes.JSON(encoded),
		CreatedAt:  value.CreatedAt,
	}, nil
}
