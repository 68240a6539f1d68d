package output

import "context"

// Publisher notifies downstream consumers that an entity's translations
// changed. Implementations must never block a save on delivery.
type Publisher interface {
	TranslationsSaved(ctx context.Context, alias, entityID string, locales []string) error
	TranslationsDeleted(ctx context.Context, alias, entityID string) error
	Close()
}
