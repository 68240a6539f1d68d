package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"translatable/internal/domain/entities"
	"translatable/internal/ports/output"
)

var _ output.TranslationRepository = (*TranslationRepository)(nil)

const upsertTranslationSQL = `
INSERT INTO translations (entity_alias, entity_id, locale, field_name, value)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (entity_alias, entity_id, locale, field_name)
DO UPDATE SET value = EXCLUDED.value, updated_at = now()`

const selectByEntitySQL = `
SELECT id, entity_alias, entity_id, locale, field_name, value, created_at, updated_at
FROM translations
WHERE entity_alias = $1 AND entity_id = $2
ORDER BY locale, field_name`

const selectByEntityAndLocaleSQL = `
SELECT id, entity_alias, entity_id, locale, field_name, value, created_at, updated_at
FROM translations
WHERE entity_alias = $1 AND entity_id = $2 AND locale = $3
ORDER BY field_name`

const deleteByEntitySQL = `
DELETE FROM translations WHERE entity_alias = $1 AND entity_id = $2`

type TranslationRepository struct {
	pool *pgxpool.Pool
}

func NewTranslationRepository(pool *pgxpool.Pool) *TranslationRepository {
	return &TranslationRepository{pool: pool}
}

func (r *TranslationRepository) UpsertBatch(ctx context.Context, batch []entities.TranslationEntry) error {
	b := &pgx.Batch{}
	for _, e := range batch {
		b.Queue(upsertTranslationSQL, e.EntityAlias, e.EntityID, e.Locale, e.Field, e.Value)
	}
	br := r.pool.SendBatch(ctx, b)
	defer br.Close()
	for range batch {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("upsert translation: %w", err)
		}
	}
	return nil
}

func (r *TranslationRepository) FindByEntity(ctx context.Context, alias, entityID string) ([]entities.TranslationEntry, error) {
	rows, err := r.pool.Query(ctx, selectByEntitySQL, alias, entityID)
	if err != nil {
		return nil, fmt.Errorf("select translations by entity: %w", err)
	}
	defer rows.Close()
	return collectEntries(rows)
}

func (r *TranslationRepository) FindByEntityAndLocale(ctx context.Context, alias, entityID, locale string) ([]entities.TranslationEntry, error) {
	rows, err := r.pool.Query(ctx, selectByEntityAndLocaleSQL, alias, entityID, locale)
	if err != nil {
		return nil, fmt.Errorf("select translations by entity and locale: %w", err)
	}
	defer rows.Close()
	return collectEntries(rows)
}

func (r *TranslationRepository) DeleteByEntity(ctx context.Context, alias, entityID string) error {
	if _, err := r.pool.Exec(ctx, deleteByEntitySQL, alias, entityID); err != nil {
		return fmt.Errorf("delete translations: %w", err)
	}
	return nil
}

func (r *TranslationRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}
