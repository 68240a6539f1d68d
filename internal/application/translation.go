package application

import (
	"context"
	"fmt"
	"log"

	"translatable/internal/domain"
	"translatable/internal/domain/entities"
	"translatable/internal/ports/input"
	"translatable/internal/ports/output"
	"translatable/internal/translatable"
)

var (
	_ input.TranslationUseCase      = (*TranslationService)(nil)
	_ input.TranslationAdminUseCase = (*TranslationService)(nil)
)

// TranslationService implements the save/translate indirection over the
// entity registry and the translation repository.
type TranslationService struct {
	registry      *translatable.Registry
	repo          output.TranslationRepository
	publisher     output.Publisher // nil quand aucun broker n'est configuré
	defaultLocale string
	autoTranslate bool
}

func NewTranslationService(
	registry *translatable.Registry,
	repo output.TranslationRepository,
	publisher output.Publisher,
	defaultLocale string,
	autoTranslate bool,
) *TranslationService {
	return &TranslationService{
		registry:      registry,
		repo:          repo,
		publisher:     publisher,
		defaultLocale: defaultLocale,
		autoTranslate: autoTranslate,
	}
}

// Save upserts every declared field present in set, for every locale.
// Fields not declared in the entity's configuration are skipped.
func (s *TranslationService) Save(ctx context.Context, entity any, set entities.TranslationSet) error {
	cfg, err := s.registry.ForEntity(entity)
	if err != nil {
		return err
	}
	id, err := translatable.EntityID(entity, cfg)
	if err != nil {
		return err
	}
	return s.save(ctx, cfg, id, set)
}

// SaveByAlias is Save for callers that only hold alias + id (HTTP admin).
func (s *TranslationService) SaveByAlias(ctx context.Context, alias, entityID string, set entities.TranslationSet) error {
	cfg, err := s.registry.ForAlias(alias)
	if err != nil {
		return err
	}
	if entityID == "" {
		return domain.ErrMissingEntityID
	}
	return s.save(ctx, cfg, entityID, set)
}

func (s *TranslationService) save(ctx context.Context, cfg translatable.EntityConfig, id string, set entities.TranslationSet) error {
	if len(set) == 0 {
		return domain.ErrEmptyTranslationSet
	}

	var batch []entities.TranslationEntry
	var locales []string
	skipped := 0
	for locale, fields := range set {
		canonical, err := translatable.CanonicalLocale(locale)
		if err != nil {
			return err
		}
		locales = append(locales, canonical)
		for field, value := range fields {
			if _, declared := cfg.Fields[field]; !declared {
				skipped++
				continue
			}
			batch = append(batch, entities.TranslationEntry{
				EntityAlias: cfg.Alias,
				EntityID:    id,
				Locale:      canonical,
				Field:       field,
				Value:       value,
			})
		}
	}
	if skipped > 0 {
		log.Printf("translation: %d champ(s) non déclaré(s) ignoré(s) (alias=%s, id=%s)", skipped, cfg.Alias, id)
	}
	if len(batch) == 0 {
		return domain.ErrEmptyTranslationSet
	}

	if err := s.repo.UpsertBatch(ctx, batch); err != nil {
		return fmt.Errorf("save translations: %w", err)
	}
	if s.publisher != nil {
		if err := s.publisher.TranslationsSaved(ctx, cfg.Alias, id, locales); err != nil {
			log.Printf("translation: publication de l'événement échouée (alias=%s, id=%s): %v", cfg.Alias, id, err)
		}
	}
	return nil
}

// Translate fills the entity's configured fields with the values stored for
// locale. Fields with no stored value are left untouched.
func (s *TranslationService) Translate(ctx context.Context, entity any, locale string) error {
	cfg, err := s.registry.ForEntity(entity)
	if err != nil {
		return err
	}
	id, err := translatable.EntityID(entity, cfg)
	if err != nil {
		return err
	}
	canonical, err := translatable.CanonicalLocale(locale)
	if err != nil {
		return err
	}

	stored, err := s.repo.FindByEntityAndLocale(ctx, cfg.Alias, id, canonical)
	if err != nil {
		return fmt.Errorf("find translations: %w", err)
	}
	for _, entry := range stored {
		if _, declared := cfg.Fields[entry.Field]; !declared {
			continue
		}
		if err := translatable.SetField(entity, cfg, entry.Field, entry.Value); err != nil {
			return err
		}
	}
	return nil
}

// TranslateLoaded is the post-load hook: hosts call it right after the ORM
// materializes an entity. It is a no-op when auto-translate is disabled.
func (s *TranslationService) TranslateLoaded(ctx context.Context, entity any) error {
	if !s.autoTranslate {
		return nil
	}
	return s.Translate(ctx, entity, s.defaultLocale)
}

// List returns every stored locale/field/value for the entity, the shape an
// edit form needs for prefilling.
func (s *TranslationService) List(ctx context.Context, entity any) (entities.TranslationSet, error) {
	cfg, err := s.registry.ForEntity(entity)
	if err != nil {
		return nil, err
	}
	id, err := translatable.EntityID(entity, cfg)
	if err != nil {
		return nil, err
	}
	return s.list(ctx, cfg.Alias, id)
}

// ListByAlias is List for alias + id callers.
func (s *TranslationService) ListByAlias(ctx context.Context, alias, entityID string) (entities.TranslationSet, error) {
	if _, err := s.registry.ForAlias(alias); err != nil {
		return nil, err
	}
	if entityID == "" {
		return nil, domain.ErrMissingEntityID
	}
	return s.list(ctx, alias, entityID)
}

// ListByAliasAndLocale returns field -> value for a single locale.
func (s *TranslationService) ListByAliasAndLocale(ctx context.Context, alias, entityID, locale string) (map[string]string, error) {
	if _, err := s.registry.ForAlias(alias); err != nil {
		return nil, err
	}
	if entityID == "" {
		return nil, domain.ErrMissingEntityID
	}
	canonical, err := translatable.CanonicalLocale(locale)
	if err != nil {
		return nil, err
	}
	stored, err := s.repo.FindByEntityAndLocale(ctx, alias, entityID, canonical)
	if err != nil {
		return nil, fmt.Errorf("find translations: %w", err)
	}
	out := make(map[string]string, len(stored))
	for _, entry := range stored {
		out[entry.Field] = entry.Value
	}
	return out, nil
}

func (s *TranslationService) list(ctx context.Context, alias, entityID string) (entities.TranslationSet, error) {
	stored, err := s.repo.FindByEntity(ctx, alias, entityID)
	if err != nil {
		return nil, fmt.Errorf("find translations: %w", err)
	}
	return entities.SetFromEntries(stored), nil
}

// DeleteByAlias wipes every stored translation of one entity.
func (s *TranslationService) DeleteByAlias(ctx context.Context, alias, entityID string) error {
	if _, err := s.registry.ForAlias(alias); err != nil {
		return err
	}
	if entityID == "" {
		return domain.ErrMissingEntityID
	}
	if err := s.repo.DeleteByEntity(ctx, alias, entityID); err != nil {
		return fmt.Errorf("delete translations: %w", err)
	}
	if s.publisher != nil {
		if err := s.publisher.TranslationsDeleted(ctx, alias, entityID); err != nil {
			log.Printf("translation: publication de l'événement échouée (alias=%s, id=%s): %v", alias, entityID, err)
		}
	}
	return nil
}
