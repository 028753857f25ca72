package persistence

import (
	"context"
	"fmt"

	formsdomain "stepform-server/internal/forms/domain"
	"stepform-server/internal/forms/persistence/internal"
	"stepform-server/internal/forms/usecases"
	"stepform-server/internal/infra/sql"
)

func NewQuestionRepository(orm sql.ORM) (*SimpleQuestionRepository, error) {
	err := orm.AutoMigrate(&internal.Question{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleQuestionRepository{orm: orm}, nil
}

var _ usecases.QuestionRepository = (*SimpleQuestionRepository)(nil)

type SimpleQuestionRepository struct {
	orm sql.ORM
}

func (r *SimpleQuestionRepository) FindByForm(ctx context.Context, formID formsdomain.ID, includeDeleted bool) ([]formsdomain.Question, error) {
	query := r.orm.
		WithContext(ctx).
		Where("form_id = ?", formID.String())

	if !includeDeleted {
		query = query.Where("deleted = ?", false)
	}

	var entities []internal.Question
	err := query.
		Order("step ASC").
		Find(&entities).
		Error()

	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]formsdomain.Question, len(entities))
	for i, entity := range entities {
		question, err := entity.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("converting question %s: %w", entity.ID, err)
		}
		result[i] = question
	}

	return result, nil
}

// Reconcile applies a publish in one transaction: soft deletes, updates
// and inserts land together with the PUBLISHED flip or not at all. It
// returns the live question set as the renderer will see it.
func (r *SimpleQuestionRepository) Reconcile(
	ctx context.Context,
	form formsdomain.Form,
	softDeleted, updates, creates []formsdomain.Question,
) ([]formsdomain.Question, error) {
	err := r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		for _, question := range softDeleted {
			entity, err := internal.FromQuestion(question)
			if err != nil {
				return fmt.Errorf("converting question: %w", err)
			}
			if err := tx.Save(&entity).Error(); err != nil {
				return fmt.Errorf("soft deleting question in database: %w", err)
			}
		}

		for _, question := range updates {
			entity, err := internal.FromQuestion(question)
			if err != nil {
				return fmt.Errorf("converting question: %w", err)
			}
			if err := tx.Save(&entity).Error(); err != nil {
				return fmt.Errorf("updating question in database: %w", err)
			}
		}

		for _, question := range creates {
			entity, err := internal.FromQuestion(question)
			if err != nil {
				return fmt.Errorf("converting question: %w", err)
			}
			if err := tx.Create(&entity).Error(); err != nil {
				return fmt.Errorf("creating question in database: %w", err)
			}
		}

		formEntity := internal.FromForm(form)
		if err := tx.Save(&formEntity).Error(); err != nil {
			return fmt.Errorf("publishing form in database: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.FindByForm(ctx, form.ID, false)
}
