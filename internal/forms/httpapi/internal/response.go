package internal

import (
	formsdomain "stepform-server/internal/forms/domain"
	"stepform-server/internal/infra/utils"
)

type SubmitRequest struct {
	Answers []SubmittedAnswerRequest `json:"answers"`
}

type SubmittedAnswerRequest struct {
	FormQuestionID string `json:"form_question_id"`
	Answer         any    `json:"answer"`
}

func (r SubmitRequest) ToDomain() []formsdomain.SubmittedAnswer {
	answers := make([]formsdomain.SubmittedAnswer, len(r.Answers))
	for i, answer := range r.Answers {
		answers[i] = formsdomain.SubmittedAnswer{
			QuestionID: formsdomain.ID(answer.FormQuestionID),
			Value:      answer.Answer,
		}
	}
	return answers
}

type ValidationFailureResponse struct {
	Error            string                        `json:"error"`
	ValidationErrors []formsdomain.ValidationError `json:"validationErrors"`
}

type AnswerResponse struct {
	ID         string     `json:"id"`
	QuestionID string     `json:"question_id"`
	Value      any        `json:"value"`
	CreatedAt  utils.Time `json:"created_at"`
}

type ResponseBody struct {
	ID        string           `json:"id"`
	FormID    string           `json:"form_id"`
	Answers   []AnswerResponse `json:"answers"`
	CreatedAt utils.Time       `json:"created_at"`
	UpdatedAt utils.Time       `json:"updated_at"`
}

func ToResponseBody(response formsdomain.Response) ResponseBody {
	answers := make([]AnswerResponse, len(response.Answers))
	for i, answer := range response.Answers {
		answers[i] = AnswerResponse{
			ID:         answer.ID.String(),
			QuestionID: answer.QuestionID.String(),
			Value:      answer.Value,
			CreatedAt:  answer.CreatedAt,
		}
	}

	return ResponseBody{
		ID:        response.ID.String(),
		FormID:    response.FormID.String(),
		Answers:   answers,
		CreatedAt: response.CreatedAt,
		UpdatedAt: response.UpdatedAt,
	}
}
