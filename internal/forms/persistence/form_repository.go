package persistence

import (
	"context"
	"errors"
	"fmt"

	formsdomain "stepform-server/internal/forms/domain"
	"stepform-server/internal/forms/persistence/internal"
	"stepform-server/internal/forms/usecases"
	"stepform-server/internal/infra/sql"
)

func NewFormRepository(orm sql.ORM) (*SimpleFormRepository, error) {
	err := orm.AutoMigrate(&internal.Form{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleFormRepository{orm: orm}, nil
}

var _ usecases.FormRepository = (*SimpleFormRepository)(nil)

type SimpleFormRepository struct {
	orm sql.ORM
}

// Create writes the form and its seed questions in one transaction so a
// half-seeded form never exists.
func (r *SimpleFormRepository) Create(ctx context.Context, form formsdomain.Form, seed []formsdomain.Question) error {
	entity := internal.FromForm(form)

	questions := make([]internal.Question, len(seed))
	for i, question := range seed {
		questionEntity, err := internal.FromQuestion(question)
		if err != nil {
			return fmt.Errorf("converting seed question: %w", err)
		}
		questions[i] = questionEntity
	}

	err := r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		if err := tx.Create(&entity).Error(); err != nil {
			return fmt.Errorf("creating form in database: %w", err)
		}
		for i := range questions {
			if err := tx.Create(&questions[i]).Error(); err != nil {
				return fmt.Errorf("creating seed question in database: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	return nil
}

func (r *SimpleFormRepository) GetByID(ctx context.Context, id formsdomain.ID) (formsdomain.Form, error) {
	var entity internal.Form
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return formsdomain.Form{}, usecases.ErrFormNotFound
	}

	if err != nil {
		return formsdomain.Form{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleFormRepository) FindAllByUser(ctx context.Context, userID formsdomain.ID) ([]formsdomain.Form, error) {
	var entities []internal.Form
	err := r.orm.
		WithContext(ctx).
		Where("user_id = ?", userID.String()).
		Order("created_at DESC").
		Find(&entities).
		Error()

	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]formsdomain.Form, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, nil
}

func (r *SimpleFormRepository) Update(ctx context.Context, form formsdomain.Form) error {
	entity := internal.FromForm(form)

	err := r.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return fmt.Errorf("updating form in database: %w", err)
	}

	return nil
}

func (r *SimpleFormRepository) Delete(ctx context.Context, id formsdomain.ID) error {
	err := r.orm.
		WithContext(ctx).
		Delete(&internal.Form{}, "id = ?", id.String()).
		Error()

	if err != nil {
		return fmt.Errorf("deleting form in database: %w", err)
	}

	return nil
}
