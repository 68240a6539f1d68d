package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"translatable/internal/domain"
	"translatable/internal/domain/entities"
	"translatable/internal/infrastructure/memory"
	"translatable/internal/translatable"
)

type article struct {
	id      uint
	title   string
	summary string
}

func (a *article) GetID() uint         { return a.id }
func (a *article) GetTitle() string    { return a.title }
func (a *article) SetTitle(v string)   { a.title = v }
func (a *article) GetSummary() string  { return a.summary }
func (a *article) SetSummary(v string) { a.summary = v }

type fakePublisher struct {
	saved   []string
	deleted []string
}

func (p *fakePublisher) TranslationsSaved(_ context.Context, alias, id string, _ []string) error {
	p.saved = append(p.saved, alias+":"+id)
	return nil
}

func (p *fakePublisher) TranslationsDeleted(_ context.Context, alias, id string) error {
	p.deleted = append(p.deleted, alias+":"+id)
	return nil
}

func (p *fakePublisher) Close() {}

func newTestService(t *testing.T, publisher *fakePublisher) *TranslationService {
	t.Helper()
	registry, err := translatable.NewRegistry(map[string]translatable.EntityConfig{
		"article": {
			Alias:    "article",
			IDGetter: "GetID",
			Fields: map[string]translatable.FieldAccessors{
				"title":   {Getter: "GetTitle", Setter: "SetTitle"},
				"summary": {Getter: "GetSummary", Setter: "SetSummary"},
			},
		},
	})
	require.NoError(t, err)
	if publisher == nil {
		return NewTranslationService(registry, memory.NewTranslationRepository(), nil, "fr", true)
	}
	return NewTranslationService(registry, memory.NewTranslationRepository(), publisher, "fr", true)
}

func TestSaveThenTranslate(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()
	a := &article{id: 1, title: "Hello", summary: "Original"}

	set := entities.TranslationSet{
		"fr": {"title": "Bonjour", "summary": "Résumé"},
		"en": {"title": "Hello"},
	}
	require.NoError(t, svc.Save(ctx, a, set))

	require.NoError(t, svc.Translate(ctx, a, "fr"))
	assert.Equal(t, "Bonjour", a.title)
	assert.Equal(t, "Résumé", a.summary)
}

func TestTranslate_MissingLocaleLeavesFieldsUntouched(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()
	a := &article{id: 1, title: "Hello", summary: "Original"}

	require.NoError(t, svc.Save(ctx, a, entities.TranslationSet{"fr": {"title": "Bonjour"}}))

	require.NoError(t, svc.Translate(ctx, a, "de"))
	assert.Equal(t, "Hello", a.title)
	assert.Equal(t, "Original", a.summary)
}

func TestTranslate_PartialLocaleOnlyTouchesStoredFields(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()
	a := &article{id: 1, title: "Hello", summary: "Original"}

	require.NoError(t, svc.Save(ctx, a, entities.TranslationSet{"fr": {"title": "Bonjour"}}))

	require.NoError(t, svc.Translate(ctx, a, "fr"))
	assert.Equal(t, "Bonjour", a.title)
	assert.Equal(t, "Original", a.summary)
}

func TestSave_OverwritesPreviousValue(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()
	a := &article{id: 1}

	require.NoError(t, svc.Save(ctx, a, entities.TranslationSet{"fr": {"title": "Premier"}}))
	require.NoError(t, svc.Save(ctx, a, entities.TranslationSet{"fr": {"title": "Second"}}))

	require.NoError(t, svc.Translate(ctx, a, "fr"))
	assert.Equal(t, "Second", a.title)
}

func TestSave_SkipsUndeclaredFields(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()
	a := &article{id: 1}

	set := entities.TranslationSet{"fr": {"title": "Bonjour", "body": "ignoré"}}
	require.NoError(t, svc.Save(ctx, a, set))

	stored, err := svc.List(ctx, a)
	require.NoError(t, err)
	_, hasBody := stored.Get("fr", "body")
	assert.False(t, hasBody)
	v, _ := stored.Get("fr", "title")
	assert.Equal(t, "Bonjour", v)
}

func TestSave_OnlyUndeclaredFieldsIsAnError(t *testing.T) {
	svc := newTestService(t, nil)
	a := &article{id: 1}

	err := svc.Save(context.Background(), a, entities.TranslationSet{"fr": {"body": "x"}})
	assert.ErrorIs(t, err, domain.ErrEmptyTranslationSet)
}

func TestSave_EmptySet(t *testing.T) {
	svc := newTestService(t, nil)

	err := svc.Save(context.Background(), &article{id: 1}, entities.TranslationSet{})
	assert.ErrorIs(t, err, domain.ErrEmptyTranslationSet)
}

func TestSave_CanonicalizesLocales(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()
	a := &article{id: 1}

	require.NoError(t, svc.Save(ctx, a, entities.TranslationSet{"FR": {"title": "Bonjour"}}))

	require.NoError(t, svc.Translate(ctx, a, "fr"))
	assert.Equal(t, "Bonjour", a.title)
}

func TestSave_UnregisteredEntity(t *testing.T) {
	svc := newTestService(t, nil)

	type page struct{}
	err := svc.Save(context.Background(), &page{}, entities.TranslationSet{"fr": {"title": "x"}})
	assert.ErrorIs(t, err, domain.ErrEntityNotRegistered)
}

func TestSave_MissingID(t *testing.T) {
	svc := newTestService(t, nil)

	err := svc.Save(context.Background(), &article{}, entities.TranslationSet{"fr": {"title": "x"}})
	assert.ErrorIs(t, err, domain.ErrMissingEntityID)
}

func TestTranslate_InvalidLocale(t *testing.T) {
	svc := newTestService(t, nil)

	err := svc.Translate(context.Background(), &article{id: 1}, "!!")
	assert.ErrorIs(t, err, domain.ErrInvalidLocale)
}

func TestTranslateLoaded_UsesDefaultLocale(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()
	a := &article{id: 1, title: "Hello"}

	require.NoError(t, svc.Save(ctx, a, entities.TranslationSet{"fr": {"title": "Bonjour"}}))

	require.NoError(t, svc.TranslateLoaded(ctx, a))
	assert.Equal(t, "Bonjour", a.title)
}

func TestTranslateLoaded_DisabledIsNoop(t *testing.T) {
	registry, err := translatable.NewRegistry(map[string]translatable.EntityConfig{
		"article": {
			Alias:    "article",
			IDGetter: "GetID",
			Fields:   map[string]translatable.FieldAccessors{"title": {Getter: "GetTitle", Setter: "SetTitle"}},
		},
	})
	require.NoError(t, err)
	repo := memory.NewTranslationRepository()
	svc := NewTranslationService(registry, repo, nil, "fr", false)

	ctx := context.Background()
	a := &article{id: 1, title: "Hello"}
	require.NoError(t, svc.Save(ctx, a, entities.TranslationSet{"fr": {"title": "Bonjour"}}))

	require.NoError(t, svc.TranslateLoaded(ctx, a))
	assert.Equal(t, "Hello", a.title)
}

func TestSaveByAlias_AndListByAlias(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	set := entities.TranslationSet{"en": {"title": "Hello"}}
	require.NoError(t, svc.SaveByAlias(ctx, "article", "7", set))

	got, err := svc.ListByAlias(ctx, "article", "7")
	require.NoError(t, err)
	v, ok := got.Get("en", "title")
	require.True(t, ok)
	assert.Equal(t, "Hello", v)

	fields, err := svc.ListByAliasAndLocale(ctx, "article", "7", "en")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"title": "Hello"}, fields)
}

func TestSaveByAlias_UnknownAlias(t *testing.T) {
	svc := newTestService(t, nil)

	err := svc.SaveByAlias(context.Background(), "nope", "1", entities.TranslationSet{"fr": {"title": "x"}})
	assert.ErrorIs(t, err, domain.ErrUnknownAlias)
}

func TestSaveByAlias_MissingID(t *testing.T) {
	svc := newTestService(t, nil)

	err := svc.SaveByAlias(context.Background(), "article", "", entities.TranslationSet{"fr": {"title": "x"}})
	assert.ErrorIs(t, err, domain.ErrMissingEntityID)
}

func TestDeleteByAlias(t *testing.T) {
	pub := &fakePublisher{}
	svc := newTestService(t, pub)
	ctx := context.Background()

	require.NoError(t, svc.SaveByAlias(ctx, "article", "1", entities.TranslationSet{"fr": {"title": "Bonjour"}}))
	require.NoError(t, svc.DeleteByAlias(ctx, "article", "1"))

	got, err := svc.ListByAlias(ctx, "article", "1")
	require.NoError(t, err)
	assert.Empty(t, got)

	assert.Equal(t, []string{"article:1"}, pub.saved)
	assert.Equal(t, []string{"article:1"}, pub.deleted)
}
