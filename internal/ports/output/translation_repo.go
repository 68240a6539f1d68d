package output

import (
	"context"

	"translatable/internal/domain/entities"
)

type TranslationRepository interface {
	// UpsertBatch writes every entry, overwriting existing values for the
	// same (alias, id, locale, field). Last write wins.
	UpsertBatch(ctx context.Context, entries []entities.TranslationEntry) error
	FindByEntity(ctx context.Context, alias, entityID string) ([]entities.TranslationEntry, error)
	FindByEntityAndLocale(ctx context.Context, alias, entityID, locale string) ([]entities.TranslationEntry, error)
	DeleteByEntity(ctx context.Context, alias, entityID string) error
	Ping(ctx context.Context) error
}
