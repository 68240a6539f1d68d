package entities

import "time"

// TranslationEntry is one stored value for one field of one entity in one
// locale. The tuple (EntityAlias, EntityID, Locale, Field) is unique.
type TranslationEntry struct {
	ID          uint
	EntityAlias string
	EntityID    string
	Locale      string
	Field       string
	Value       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TranslationSet groups values by locale then field. It is the batch shape
// accepted on save and returned on list.
type TranslationSet map[string]map[string]string

// Locales returns the locale codes present in the set, in no particular order.
func (s TranslationSet) Locales() []string {
	out := make([]string, 0, len(s))
	for locale := range s {
		out = append(out, locale)
	}
	return out
}

// Get returns the value for (locale, field) and whether it is present.
func (s TranslationSet) Get(locale, field string) (string, bool) {
	fields, ok := s[locale]
	if !ok {
		return "", false
	}
	v, ok := fields[field]
	return v, ok
}

// Set stores value under (locale, field), allocating the inner map as needed.
func (s TranslationSet) Set(locale, field, value string) {
	if s[locale] == nil {
		s[locale] = make(map[string]string)
	}
	s[locale][field] = value
}

// SetFromEntries rebuilds a TranslationSet from stored rows.
func SetFromEntries(entries []TranslationEntry) TranslationSet {
	set := make(TranslationSet, len(entries))
	for _, e := range entries {
		set.Set(e.Locale, e.Field, e.Value)
	}
	return set
}
