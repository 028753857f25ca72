package persistence

import (
	"context"
	"fmt"

	formsdomain "stepform-server/internal/forms/domain"
	"stepform-server/internal/forms/persistence/internal"
	"stepform-server/internal/forms/usecases"
	"stepform-server/internal/infra/sql"
)

func NewResponseRepository(orm sql.ORM) (*SimpleResponseRepository, error) {
	err := orm.AutoMigrate(&internal.Response{}, &internal.Answer{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleResponseRepository{orm: orm}, nil
}

var _ usecases.ResponseRepository = (*SimpleResponseRepository)(nil)

type SimpleResponseRepository struct {
	orm sql.ORM
}

// Create writes the response and all its answers in one transaction.
// Responses are immutable once written.
func (r *SimpleResponseRepository) Create(ctx context.Context, response formsdomain.Response) error {
	entity, err := internal.FromResponse(response)
	if err != nil {
		return fmt.Errorf("converting response: %w", err)
	}

	answers := entity.Answers
	entity.Answers = nil

	err = r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		if err := tx.Create(&entity).Error(); err != nil {
			return fmt.Errorf("creating response in database: %w", err)
		}
		for i := range answers {
			if err := tx.Create(&answers[i]).Error(); err != nil {
				return fmt.Errorf("creating answer in database: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	return nil
}

func (r *SimpleResponseRepository) FindAllByForm(
	ctx context.Context,
	formID formsdomain.ID,
	pagination usecases.Pagination,
) ([]formsdomain.Response, int, error) {
	var total int64
	err := r.orm.
		WithContext(ctx).
		Model(&internal.Response{}).
		Where("form_id = ?", formID.String()).
		Count(&total).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("count query: %w", err)
	}

	var entities []internal.Response
	err = r.orm.
		WithContext(ctx).
		Preload("Answers").
		Where("form_id = ?", formID.String()).
		Order("created_at DESC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()

	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]formsdomain.Response, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}
