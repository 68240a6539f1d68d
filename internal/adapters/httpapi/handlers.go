package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"translatable/internal/domain"
	"translatable/internal/domain/entities"
)

type saveRequest struct {
	Translations entities.TranslationSet `json:"translations"`
}

func (s *Server) putTranslations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	alias := chi.URLParam(r, "alias")
	id := chi.URLParam(r, "id")

	set, err := decodeTranslationSet(r)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, "ErrorBadPayload", nil)
		return
	}

	if err := s.svc.SaveByAlias(ctx, alias, id, set); err != nil {
		s.writeDomainError(w, r, alias, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status": s.messages.T(requestLocale(ctx), "StatusSaved", nil),
		"alias":  alias,
		"id":     id,
	})
}

func (s *Server) getTranslations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	alias := chi.URLParam(r, "alias")
	id := chi.URLParam(r, "id")

	// ?locale explicite = une seule locale; sinon l'ensemble complet.
	if locale := r.URL.Query().Get("locale"); locale != "" {
		fields, err := s.svc.ListByAliasAndLocale(ctx, alias, id, locale)
		if err != nil {
			s.writeDomainError(w, r, alias, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"alias":        alias,
			"id":           id,
			"locale":       locale,
			"translations": fields,
		})
		return
	}

	set, err := s.svc.ListByAlias(ctx, alias, id)
	if err != nil {
		s.writeDomainError(w, r, alias, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"alias":        alias,
		"id":           id,
		"translations": set,
	})
}

func (s *Server) deleteTranslations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	alias := chi.URLParam(r, "alias")
	id := chi.URLParam(r, "id")

	if err := s.svc.DeleteByAlias(ctx, alias, id); err != nil {
		s.writeDomainError(w, r, alias, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status": s.messages.T(requestLocale(ctx), "StatusDeleted", nil),
		"alias":  alias,
		"id":     id,
	})
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	err := s.repo.Ping(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"store_ping": err == nil,
	})
}

// decodeTranslationSet accepts either a JSON body or an urlencoded form with
// translations[locale][field] keys, the shape a multi-locale edit form posts.
func decodeTranslationSet(r *http.Request) (entities.TranslationSet, error) {
	ct := r.Header.Get("Content-Type")
	switch {
	case strings.HasPrefix(ct, "application/x-www-form-urlencoded"):
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
		return parseFormTranslations(r.PostForm)
	case strings.HasPrefix(ct, "multipart/form-data"):
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			return nil, err
		}
		return parseFormTranslations(r.PostForm)
	}
	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, err
	}
	return req.Translations, nil
}

func (s *Server) writeDomainError(w http.ResponseWriter, r *http.Request, alias string, err error) {
	switch {
	case errors.Is(err, domain.ErrUnknownAlias), errors.Is(err, domain.ErrEntityNotRegistered):
		s.writeError(w, r, http.StatusNotFound, "ErrorUnknownAlias", map[string]any{"Alias": alias})
	case errors.Is(err, domain.ErrMissingEntityID):
		s.writeError(w, r, http.StatusUnprocessableEntity, "ErrorMissingEntityID", nil)
	case errors.Is(err, domain.ErrInvalidLocale):
		s.writeError(w, r, http.StatusUnprocessableEntity, "ErrorInvalidLocale", nil)
	case errors.Is(err, domain.ErrEmptyTranslationSet):
		s.writeError(w, r, http.StatusUnprocessableEntity, "ErrorEmptyTranslations", nil)
	default:
		s.writeError(w, r, http.StatusInternalServerError, "ErrorInternal", nil)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, code int, key string, data map[string]any) {
	writeJSON(w, code, map[string]any{
		"error": s.messages.T(requestLocale(r.Context()), key, data),
	})
}
