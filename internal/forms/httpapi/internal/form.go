package internal

import (
	formsdomain "stepform-server/internal/forms/domain"
	"stepform-server/internal/infra/utils"
)

// DataResponse is the envelope every successful reply uses.
type DataResponse struct {
	Data any `json:"data"`
}

type FormCreateRequest struct {
	UserID   string         `json:"user_id"`
	Title    string         `json:"title"`
	Settings map[string]any `json:"settings,omitempty"`
}

type FormUpdateRequest struct {
	Title    string         `json:"title,omitempty"`
	Settings map[string]any `json:"settings,omitempty"`
	Status   string         `json:"status,omitempty"`
}

type FormResponse struct {
	ID          string         `json:"id"`
	UserID      string         `json:"user_id"`
	Title       string         `json:"title"`
	Status      string         `json:"status"`
	Settings    map[string]any `json:"settings"`
	CreatedAt   utils.Time     `json:"created_at"`
	UpdatedAt   utils.Time     `json:"updated_at"`
	PublishedAt *utils.Time    `json:"published_at,omitempty"`
}

func ToFormResponse(form formsdomain.Form) FormResponse {
	return FormResponse{
		ID:          form.ID.String(),
		UserID:      form.UserID.String(),
		Title:       form.Title,
		Status:      string(form.Status),
		Settings:    form.Settings,
		CreatedAt:   form.CreatedAt,
		UpdatedAt:   form.UpdatedAt,
		PublishedAt: form.PublishedAt,
	}
}
