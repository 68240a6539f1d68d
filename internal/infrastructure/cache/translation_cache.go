package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"translatable/internal/domain/entities"
	"translatable/internal/ports/output"
)

var _ output.TranslationRepository = (*TranslationCache)(nil)

// TranslationCache is a read-through decorator over a TranslationRepository.
// The full entry list of one entity is cached as JSON under prefix+alias:id
// and invalidated on any write to that entity. Cache failures degrade to the
// underlying store, they are never fatal.
type TranslationCache struct {
	inner  output.TranslationRepository
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

func New(inner output.TranslationRepository, rdb *redis.Client, prefix string, ttl time.Duration) *TranslationCache {
	return &TranslationCache{inner: inner, rdb: rdb, prefix: prefix, ttl: ttl}
}

func (c *TranslationCache) key(alias, entityID string) string {
	return c.prefix + alias + ":" + entityID
}

func (c *TranslationCache) UpsertBatch(ctx context.Context, batch []entities.TranslationEntry) error {
	if err := c.inner.UpsertBatch(ctx, batch); err != nil {
		return err
	}
	seen := make(map[string]struct{}, 1)
	for _, e := range batch {
		k := c.key(e.EntityAlias, e.EntityID)
		if _, done := seen[k]; done {
			continue
		}
		seen[k] = struct{}{}
		c.invalidate(ctx, k)
	}
	return nil
}

func (c *TranslationCache) FindByEntity(ctx context.Context, alias, entityID string) ([]entities.TranslationEntry, error) {
	if cached, ok := c.lookup(ctx, alias, entityID); ok {
		return cached, nil
	}
	stored, err := c.inner.FindByEntity(ctx, alias, entityID)
	if err != nil {
		return nil, err
	}
	c.fill(ctx, alias, entityID, stored)
	return stored, nil
}

func (c *TranslationCache) FindByEntityAndLocale(ctx context.Context, alias, entityID, locale string) ([]entities.TranslationEntry, error) {
	if cached, ok := c.lookup(ctx, alias, entityID); ok {
		var out []entities.TranslationEntry
		for _, e := range cached {
			if e.Locale == locale {
				out = append(out, e)
			}
		}
		return out, nil
	}
	return c.inner.FindByEntityAndLocale(ctx, alias, entityID, locale)
}

func (c *TranslationCache) DeleteByEntity(ctx context.Context, alias, entityID string) error {
	if err := c.inner.DeleteByEntity(ctx, alias, entityID); err != nil {
		return err
	}
	c.invalidate(ctx, c.key(alias, entityID))
	return nil
}

func (c *TranslationCache) Ping(ctx context.Context) error {
	if err := c.rdb.Ping(ctx).Err(); err != nil {
		log.Printf("cache: redis injoignable: %v", err)
	}
	return c.inner.Ping(ctx)
}

func (c *TranslationCache) lookup(ctx context.Context, alias, entityID string) ([]entities.TranslationEntry, bool) {
	val, err := c.rdb.Get(ctx, c.key(alias, entityID)).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Printf("cache: lecture échouée (alias=%s, id=%s): %v", alias, entityID, err)
		return nil, false
	}
	var entries []entities.TranslationEntry
	if err := json.Unmarshal([]byte(val), &entries); err != nil {
		log.Printf("cache: entrée corrompue (alias=%s, id=%s): %v", alias, entityID, err)
		return nil, false
	}
	return entries, true
}

func (c *TranslationCache) fill(ctx context.Context, alias, entityID string, entries []entities.TranslationEntry) {
	b, err := json.Marshal(entries)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, c.key(alias, entityID), string(b), c.ttl).Err(); err != nil {
		log.Printf("cache: écriture échouée (alias=%s, id=%s): %v", alias, entityID, err)
	}
}

func (c *TranslationCache) invalidate(ctx context.Context, key string) {
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		log.Printf("cache: invalidation échouée (%s): %v", key, err)
	}
}
