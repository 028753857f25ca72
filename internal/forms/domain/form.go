package domain

import (
	"time"
	"stepform-server/internal/infra/utils"
)

type FormStatus string

const (
	FormStatusDraft     FormStatus = "DRAFT"
	FormStatusPublished FormStatus = "PUBLISHED"
	FormStatusClosed    FormStatus = "CLOSED"
)

// Form owns an ordered set of Questions. Settings is an opaque display
// document (colors, fonts) the server stores and echoes back untouched.
type Form struct {
	ID          ID
	UserID      ID
	Title       string
	Status      FormStatus
	Settings    map[string]any
	CreatedAt   utils.Time
	UpdatedAt   utils.Time
	PublishedAt *utils.Time
}

func (f *Form) Publish() {
	now := utils.Time{Time: time.Now()}
	f.Status = FormStatusPublished
	f.PublishedAt = &now
	f.UpdatedAt = now
}

func (f *Form) UpdateInfo(title string, settings map[string]any, status FormStatus) {
	if title != "" {
		f.Title = title
	}
	if settings != nil {
		f.Settings = settings
	}
	if status != "" {
		f.Status = status
	}
	f.UpdatedAt = utils.Time{Time: time.Now()}
}

func NewFormBuilder() *formBuilder {
	return &formBuilder{}
}

type formBuilder struct {
	actions []formHandler
}

type formHandler func(f *Form) error

func (b *formBuilder) WithUserID(value ID) *formBuilder {
	b.actions = append(b.actions, func(f *Form) error {
		f.UserID = value
		return nil
	})
	return b
}

func (b *formBuilder) WithTitle(value string) *formBuilder {
	b.actions = append(b.actions, func(f *Form) error {
		f.Title = value
		return nil
	})
	return b
}

func (b *formBuilder) WithSettings(value map[string]any) *formBuilder {
	b.actions = append(b.actions, func(f *Form) error {
		f.Settings = value
		return nil
	})
	return b
}

func (b *formBuilder) Build() (Form, error) {
	now := utils.Time{Time: time.Now()}
	result := Form{
		ID:        ID(utils.GenerateUUID()),
		Status:    FormStatusDraft,
		Settings:  map[string]any{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Form{}, err
		}
	}

	return result, nil
}
