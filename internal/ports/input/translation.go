package input

import (
	"context"

	"translatable/internal/domain/entities"
)

// TranslationUseCase is the entity-facing surface used by host applications.
type TranslationUseCase interface {
	Save(ctx context.Context, entity any, set entities.TranslationSet) error
	Translate(ctx context.Context, entity any, locale string) error
	TranslateLoaded(ctx context.Context, entity any) error
	List(ctx context.Context, entity any) (entities.TranslationSet, error)
}

// TranslationAdminUseCase addresses entities by alias and id, without a live
// instance. It backs the HTTP surface.
type TranslationAdminUseCase interface {
	SaveByAlias(ctx context.Context, alias, entityID string, set entities.TranslationSet) error
	ListByAlias(ctx context.Context, alias, entityID string) (entities.TranslationSet, error)
	ListByAliasAndLocale(ctx context.Context, alias, entityID, locale string) (map[string]string, error)
	DeleteByAlias(ctx context.Context, alias, entityID string) error
}
