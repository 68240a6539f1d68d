package output

// Messages exposes a minimal i18n contract for user-facing strings (API
// errors, status text). Implementations provide message lookup + templating
// for a given locale. This is for the service's own vocabulary, not for the
// entity field translations it stores.
type Messages interface {
	// T renders the message identified by key for the given locale.
	// data is an optional map used for template placeholders (may be nil).
	T(locale, key string, data map[string]any) string
}
