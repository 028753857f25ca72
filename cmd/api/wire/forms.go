//go:build wireinject
// +build wireinject

package wire

import (
	"stepform-server/internal/forms/httpapi"
	"stepform-server/internal/forms/persistence"
	"stepform-server/internal/forms/usecases"
	"stepform-server/internal/infra/cache"

	"github.com/google/wire"
)

func InitializeFormController(store cache.Cache) (*httpapi.FormController, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		persistence.NewFormRepository,
		wire.Bind(new(usecases.FormRepository), new(*persistence.SimpleFormRepository)),
		persistence.NewQuestionRepository,
		wire.Bind(new(usecases.QuestionRepository), new(*persistence.SimpleQuestionRepository)),
		persistence.NewCachedQuestionService,
		wire.Bind(new(usecases.QuestionCacheService), new(*persistence.CachedQuestionService)),
		usecases.NewSimpleFormService,
		wire.Bind(new(usecases.FormService), new(*usecases.SimpleFormService)),
		httpapi.NewFormController,
	)
	return nil, nil
}

func InitializeResponseController(store cache.Cache) (*httpapi.ResponseController, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		persistence.NewQuestionRepository,
		wire.Bind(new(usecases.QuestionRepository), new(*persistence.SimpleQuestionRepository)),
		persistence.NewCachedQuestionService,
		wire.Bind(new(usecases.QuestionCacheService), new(*persistence.CachedQuestionService)),
		persistence.NewResponseRepository,
		wire.Bind(new(usecases.ResponseRepository), new(*persistence.SimpleResponseRepository)),
		usecases.NewSimpleResponseService,
		wire.Bind(new(usecases.ResponseService), new(*usecases.SimpleResponseService)),
		httpapi.NewResponseController,
	)
	return nil, nil
}
