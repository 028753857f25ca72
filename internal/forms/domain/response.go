package domain

import (
	"time"

	"stepform-server/internal/infra/utils"
)

// Answer is one stored answer of a response. Value keeps whatever shape
// the normalizer produced and round-trips through the database as JSON.
type Answer struct {
	ID         ID
	ResponseID ID
	QuestionID ID
	Value      any
	CreatedAt  utils.Time
}

// Response is one completed submission of a published form.
type Response struct {
	ID        ID
	FormID    ID
	Answers   []Answer
	CreatedAt utils.Time
	UpdatedAt utils.Time
}

func NewResponseBuilder() *responseBuilder {
	return &responseBuilder{}
}

type responseBuilder struct {
	actions []responseHandler
}

type responseHandler func(r *Response) error

func (b *responseBuilder) WithFormID(value ID) *responseBuilder {
	b.actions = append(b.actions, func(r *Response) error {
		r.FormID = value
		return nil
	})
	return b
}

func (b *responseBuilder) WithAnswers(values []SubmittedAnswer) *responseBuilder {
	b.actions = append(b.actions, func(r *Response) error {
		now := utils.Time{Time: time.Now()}
		for _, value := range values {
			r.Answers = append(r.Answers, Answer{
				ID:         ID(utils.GenerateUUID()),
				ResponseID: r.ID,
				QuestionID: value.QuestionID,
				Value:      value.Value,
				CreatedAt:  now,
			})
		}
		return nil
	})
	return b
}

func (b *responseBuilder) Build() (Response, error) {
	now := utils.Time{Time: time.Now()}
	result := Response{
		ID:        ID(utils.GenerateUUID()),
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Response{}, err
		}
	}

	return result, nil
}
