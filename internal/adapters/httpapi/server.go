package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"translatable/internal/ports/input"
	"translatable/internal/ports/output"
	"translatable/internal/translatable"
)

// Server exposes the translation store over HTTP. It is the Go rendition of
// the host-framework "form submit" and read hooks: entities are addressed by
// alias + id, multi-locale batches are submitted in one request.
type Server struct {
	svc      input.TranslationAdminUseCase
	repo     output.TranslationRepository
	messages output.Messages
	resolver *translatable.Resolver
}

func NewServer(
	svc input.TranslationAdminUseCase,
	repo output.TranslationRepository,
	messages output.Messages,
	resolver *translatable.Resolver,
) *Server {
	return &Server{svc: svc, repo: repo, messages: messages, resolver: resolver}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.localeContext)

	r.Get("/healthz", s.healthz)

	r.Route("/entities/{alias}/{id}/translations", func(r chi.Router) {
		r.Put("/", s.putTranslations)
		r.Get("/", s.getTranslations)
		r.Delete("/", s.deleteTranslations)
	})

	return r
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
