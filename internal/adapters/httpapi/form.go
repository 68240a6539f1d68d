package httpapi

import (
	"fmt"
	"net/url"
	"strings"

	"translatable/internal/domain/entities"
)

// parseFormTranslations turns translations[fr][title]=... form keys into a
// TranslationSet. Keys not matching that shape are ignored; malformed
// bracket nesting is an error.
func parseFormTranslations(form url.Values) (entities.TranslationSet, error) {
	set := make(entities.TranslationSet)
	for key, values := range form {
		if !strings.HasPrefix(key, "translations[") {
			continue
		}
		locale, field, err := splitFormKey(key)
		if err != nil {
			return nil, err
		}
		if len(values) == 0 {
			continue
		}
		// La dernière valeur gagne, comme pour un champ de formulaire répété.
		set.Set(locale, field, values[len(values)-1])
	}
	return set, nil
}

func splitFormKey(key string) (locale, field string, err error) {
	rest := strings.TrimPrefix(key, "translations[")
	end := strings.Index(rest, "]")
	if end <= 0 {
		return "", "", fmt.Errorf("clé de formulaire invalide: %q", key)
	}
	locale = rest[:end]
	rest = rest[end+1:]
	if !strings.HasPrefix(rest, "[") || !strings.HasSuffix(rest, "]") || len(rest) < 3 {
		return "", "", fmt.Errorf("clé de formulaire invalide: %q", key)
	}
	field = rest[1 : len(rest)-1]
	return locale, field, nil
}
