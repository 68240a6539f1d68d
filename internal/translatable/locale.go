package translatable

import (
	"fmt"

	"golang.org/x/text/language"

	"translatable/internal/domain"
)

// CanonicalLocale parses and canonicalizes a BCP 47 locale code so that
// "FR", "fr" and "fr-FR" do not produce distinct storage keys.
func CanonicalLocale(locale string) (string, error) {
	if locale == "" {
		return "", fmt.Errorf("%w: code vide", domain.ErrInvalidLocale)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidLocale, locale)
	}
	return tag.String(), nil
}

// Resolver maps Accept-Language style preferences onto the configured
// supported locales. The first supported code is the default.
type Resolver struct {
	matcher language.Matcher
	codes   []string
}

// NewResolver builds a Resolver over the supported locale codes.
func NewResolver(supported []string) (*Resolver, error) {
	if len(supported) == 0 {
		return nil, fmt.Errorf("locale: aucune locale supportée configurée")
	}
	tags := make([]language.Tag, 0, len(supported))
	codes := make([]string, 0, len(supported))
	for _, code := range supported {
		tag, err := language.Parse(code)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidLocale, code)
		}
		tags = append(tags, tag)
		codes = append(codes, tag.String())
	}
	return &Resolver{matcher: language.NewMatcher(tags), codes: codes}, nil
}

// Default returns the canonical code of the default locale.
func (r *Resolver) Default() string { return r.codes[0] }

// Supported returns the canonical codes of every supported locale.
func (r *Resolver) Supported() []string {
	out := make([]string, len(r.codes))
	copy(out, r.codes)
	return out
}

// Resolve returns the supported locale best matching an Accept-Language
// header value. An empty or unparseable preference yields the default.
func (r *Resolver) Resolve(acceptLanguage string) string {
	if acceptLanguage == "" {
		return r.Default()
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return r.Default()
	}
	_, idx, _ := r.matcher.Match(tags...)
	return r.codes[idx]
}
