package i18n

import (
	"embed"
	"log"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"translatable/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

// Ensure Messages implements the output.Messages port.
var _ output.Messages = (*Messages)(nil)

// Messages is a thin wrapper around go-i18n's Bundle/Localizer for the
// service's own API vocabulary (error bodies, status text). The entity
// field translations managed by the store never go through here.
type Messages struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
}

// NewMessages builds a Messages translator backed by go-i18n using the given
// default locale (e.g. "fr").
//
// It currently loads messages from the embedded active.*.toml files.
func NewMessages(defaultLocale string) *Messages {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.French
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range []string{"active.fr.toml", "active.en.toml"} {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			log.Printf("i18n: failed to load %s: %v", file, err)
		}
	}

	return &Messages{
		bundle:          bundle,
		defaultLanguage: tag,
	}
}

// T renders the message identified by key for the given locale.
// If the key/locale is not found, it falls back to the default locale,
// then finally to the key itself.
func (m *Messages) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, m.defaultLanguage.String())

	localizer := i18n.NewLocalizer(m.bundle, languages...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		log.Printf("i18n: localize failed (key=%s, locales=%v): %v", key, languages, err)
		return key
	}
	return msg
}
