package domain

import "errors"

// Domain errors.
var (
	ErrEntityNotRegistered = errors.New("type d'entité non enregistré dans la configuration")
	ErrMissingEntityID     = errors.New("identifiant d'entité manquant")
	ErrUnknownAlias        = errors.New("alias d'entité inconnu")
	ErrInvalidLocale       = errors.New("code de locale invalide")
	ErrEmptyTranslationSet = errors.New("aucune traduction à enregistrer")
)
