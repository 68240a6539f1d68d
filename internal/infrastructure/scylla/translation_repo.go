package scylla

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gocql/gocql"

	"translatable/internal/domain/entities"
	"translatable/internal/ports/output"
)

var _ output.TranslationRepository = (*TranslationRepository)(nil)

// Schéma attendu (clé de partition = entité, clustering = locale + champ) :
//
//	CREATE TABLE translations (
//	    entity_alias text,
//	    entity_id    text,
//	    locale       text,
//	    field_name   text,
//	    value        text,
//	    updated_at   timestamp,
//	    PRIMARY KEY ((entity_alias, entity_id), locale, field_name)
//	);
const (
	upsertCQL = `INSERT INTO translations (entity_alias, entity_id, locale, field_name, value, updated_at) VALUES (?, ?, ?, ?, ?, ?)`

	selectByEntityCQL          = `SELECT locale, field_name, value, updated_at FROM translations WHERE entity_alias = ? AND entity_id = ?`
	selectByEntityAndLocaleCQL = `SELECT locale, field_name, value, updated_at FROM translations WHERE entity_alias = ? AND entity_id = ? AND locale = ?`
	deleteByEntityCQL          = `DELETE FROM translations WHERE entity_alias = ? AND entity_id = ?`
)

// TranslationRepository stores translations in Scylla/Cassandra. An INSERT
// is already an upsert there, which matches the last-write-wins contract.
type TranslationRepository struct {
	session *gocql.Session
}

// NewSession connects to the cluster hosting the translations keyspace.
func NewSession(hosts []string, keyspace string) (*gocql.Session, error) {
	cluster := gocql.NewCluster(hosts...)
	cluster.Keyspace = keyspace
	cluster.Consistency = gocql.Quorum
	session, err := cluster.CreateSession()
	if err != nil {
		return nil, fmt.Errorf("scylla session: %w", err)
	}
	log.Println("✅ Store de traductions Scylla connecté.")
	return session, nil
}

func NewTranslationRepository(session *gocql.Session) *TranslationRepository {
	return &TranslationRepository{session: session}
}

func (r *TranslationRepository) UpsertBatch(ctx context.Context, batch []entities.TranslationEntry) error {
	b := r.session.NewBatch(gocql.UnloggedBatch).WithContext(ctx)
	now := time.Now()
	for _, e := range batch {
		b.Query(upsertCQL, e.EntityAlias, e.EntityID, e.Locale, e.Field, e.Value, now)
	}
	if err := r.session.ExecuteBatch(b); err != nil {
		return fmt.Errorf("upsert translations: %w", err)
	}
	return nil
}

func (r *TranslationRepository) FindByEntity(ctx context.Context, alias, entityID string) ([]entities.TranslationEntry, error) {
	iter := r.session.Query(selectByEntityCQL, alias, entityID).WithContext(ctx).Iter()
	return collect(iter, alias, entityID)
}

func (r *TranslationRepository) FindByEntityAndLocale(ctx context.Context, alias, entityID, locale string) ([]entities.TranslationEntry, error) {
	iter := r.session.Query(selectByEntityAndLocaleCQL, alias, entityID, locale).WithContext(ctx).Iter()
	return collect(iter, alias, entityID)
}

func (r *TranslationRepository) DeleteByEntity(ctx context.Context, alias, entityID string) error {
	if err := r.session.Query(deleteByEntityCQL, alias, entityID).WithContext(ctx).Exec(); err != nil {
		return fmt.Errorf("delete translations: %w", err)
	}
	return nil
}

func (r *TranslationRepository) Ping(ctx context.Context) error {
	return r.session.Query(`SELECT release_version FROM system.local`).WithContext(ctx).Exec()
}

func collect(iter *gocql.Iter, alias, entityID string) ([]entities.TranslationEntry, error) {
	var (
		out       []entities.TranslationEntry
		locale    string
		field     string
		value     string
		updatedAt time.Time
	)
	for iter.Scan(&locale, &field, &value, &updatedAt) {
		out = append(out, entities.TranslationEntry{
			EntityAlias: alias,
			EntityID:    entityID,
			Locale:      locale,
			Field:       field,
			Value:       value,
			UpdatedAt:   updatedAt,
		})
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("read translations: %w", err)
	}
	return out, nil
}
