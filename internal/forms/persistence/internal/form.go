package internal

import (
	"encoding/json"

	"gorm.io/datatypes"

	formsdomain "stepform-server/internal/forms/domain"
	"stepform-server/internal/infra/utils"
)

type Form struct {
	ID          string         `json:"id" gorm:"primaryKey"`
	UserID      string         `json:"user_id" gorm:"index;not null"`
	Title       string         `json:"title" gorm:"not null"`
	Status      string         `json:"status" gorm:"not null"`
	Settings    datatypes.JSON `json:"settings"`
	CreatedAt   utils.Time     `json:"created_at"`
	UpdatedAt   utils.Time     `json:"updated_at"`
	PublishedAt *utils.Time    `json:"published_at,omitempty"`
}

func (Form) TableName() string {
	return "forms"
}

func (m Form) ToDomain() formsdomain.Form {
	settings := map[string]any{}
	if len(m.Settings) > 0 {
		_ = json.Unmarshal(m.Settings, &settings)
	}

	return formsdomain.Form{
		ID:          formsdomain.ID(m.ID),
		UserID:      formsdomain.ID(m.UserID),
		Title:       m.Title,
		Status:      formsdomain.FormStatus(m.Status),
		Settings:    settings,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		PublishedAt: m.PublishedAt,
	}
}

func FromForm(value formsdomain.Form) Form {
	settings, err := json.Marshal(value.Settings)
	if err != nil || value.Settings == nil {
		settings = []byte("{}")
	}

	return Form{
		ID:          value.ID.String(),
		UserID:      value.UserID.String(),
		Title:       value.Title,
		Status:      string(value.Status),
		Settings:    datatypes.JSON(settings),
		CreatedAt:   value.CreatedAt,
		UpdatedAt:   value.UpdatedAt,
		PublishedAt: value.PublishedAt,
	}
}
