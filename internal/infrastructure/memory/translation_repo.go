package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"translatable/internal/domain/entities"
	"translatable/internal/ports/output"
)

var _ output.TranslationRepository = (*TranslationRepository)(nil)

type entryKey struct {
	alias, entityID, locale, field string
}

// TranslationRepository is a map-backed store, used by tests and by hosts
// that embed the library without a database.
type TranslationRepository struct {
	mu      sync.RWMutex
	entries map[entryKey]entities.TranslationEntry
	nextID  uint
}

func NewTranslationRepository() *TranslationRepository {
	return &TranslationRepository{entries: make(map[entryKey]entities.TranslationEntry)}
}

func (r *TranslationRepository) UpsertBatch(_ context.Context, batch []entities.TranslationEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	for _, e := range batch {
		k := entryKey{e.EntityAlias, e.EntityID, e.Locale, e.Field}
		if prev, ok := r.entries[k]; ok {
			prev.Value = e.Value
			prev.UpdatedAt = now
			r.entries[k] = prev
			continue
		}
		r.nextID++
		e.ID = r.nextID
		e.CreatedAt = now
		e.UpdatedAt = now
		r.entries[k] = e
	}
	return nil
}

func (r *TranslationRepository) FindByEntity(_ context.Context, alias, entityID string) ([]entities.TranslationEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []entities.TranslationEntry
	for k, e := range r.entries {
		if k.alias == alias && k.entityID == entityID {
			out = append(out, e)
		}
	}
	sortEntries(out)
	return out, nil
}

func (r *TranslationRepository) FindByEntityAndLocale(_ context.Context, alias, entityID, locale string) ([]entities.TranslationEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []entities.TranslationEntry
	for k, e := range r.entries {
		if k.alias == alias && k.entityID == entityID && k.locale == locale {
			out = append(out, e)
		}
	}
	sortEntries(out)
	return out, nil
}

func (r *TranslationRepository) DeleteByEntity(_ context.Context, alias, entityID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k := range r.entries {
		if k.alias == alias && k.entityID == entityID {
			delete(r.entries, k)
		}
	}
	return nil
}

func (r *TranslationRepository) Ping(context.Context) error { return nil }

func sortEntries(entries []entities.TranslationEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Locale != entries[j].Locale {
			return entries[i].Locale < entries[j].Locale
		}
		return entries[i].Field < entries[j].Field
	})
}
