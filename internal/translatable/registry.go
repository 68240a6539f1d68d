package translatable

import (
	"fmt"
	"os"
	"reflect"

	"github.com/pelletier/go-toml/v2"

	"translatable/internal/domain"
)

// FieldAccessors names the getter/setter methods for one translatable field.
type FieldAccessors struct {
	Getter string `toml:"getter"`
	Setter string `toml:"setter"`
}

// EntityConfig describes how to address one entity type in the translation
// store: its alias, its id accessor and its translatable fields.
type EntityConfig struct {
	Alias    string                    `toml:"alias"`
	IDGetter string                    `toml:"id_getter"`
	Fields   map[string]FieldAccessors `toml:"fields"`
}

type registryFile struct {
	Entities map[string]EntityConfig `toml:"entities"`
}

// Registry holds the entity configurations, keyed both by Go type name and by
// alias. Loaded once at startup, read-only afterwards.
type Registry struct {
	byType  map[string]EntityConfig
	byAlias map[string]EntityConfig
}

// LoadRegistry parses a TOML entity configuration file.
//
//	[entities.Article]
//	alias = "article"
//	id_getter = "GetID"
//	[entities.Article.fields.title]
//	getter = "GetTitle"
//	setter = "SetTitle"
func LoadRegistry(path string) (*Registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("registry: lecture de %s: %w", path, err)
	}
	var file registryFile
	if err := toml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("registry: toml invalide (%s): %w", path, err)
	}
	return NewRegistry(file.Entities)
}

// NewRegistry builds a Registry from already-parsed entity configurations.
func NewRegistry(entities map[string]EntityConfig) (*Registry, error) {
	r := &Registry{
		byType:  make(map[string]EntityConfig, len(entities)),
		byAlias: make(map[string]EntityConfig, len(entities)),
	}
	for typeName, cfg := range entities {
		if cfg.Alias == "" {
			return nil, fmt.Errorf("registry: %s: alias requis", typeName)
		}
		if cfg.IDGetter == "" {
			return nil, fmt.Errorf("registry: %s: id_getter requis", typeName)
		}
		if len(cfg.Fields) == 0 {
			return nil, fmt.Errorf("registry: %s: aucun champ traduisible déclaré", typeName)
		}
		for field, acc := range cfg.Fields {
			if acc.Getter == "" || acc.Setter == "" {
				return nil, fmt.Errorf("registry: %s.%s: getter et setter requis", typeName, field)
			}
		}
		if _, dup := r.byAlias[cfg.Alias]; dup {
			return nil, fmt.Errorf("registry: alias %q déclaré deux fois", cfg.Alias)
		}
		r.byType[typeName] = cfg
		r.byAlias[cfg.Alias] = cfg
	}
	return r, nil
}

// ForEntity returns the configuration for the entity's concrete type.
func (r *Registry) ForEntity(entity any) (EntityConfig, error) {
	name := typeName(entity)
	cfg, ok := r.byType[name]
	if !ok {
		return EntityConfig{}, fmt.Errorf("%w: %s", domain.ErrEntityNotRegistered, name)
	}
	return cfg, nil
}

// ForAlias returns the configuration registered under alias.
func (r *Registry) ForAlias(alias string) (EntityConfig, error) {
	cfg, ok := r.byAlias[alias]
	if !ok {
		return EntityConfig{}, fmt.Errorf("%w: %s", domain.ErrUnknownAlias, alias)
	}
	return cfg, nil
}

// Aliases lists every registered alias.
func (r *Registry) Aliases() []string {
	out := make([]string, 0, len(r.byAlias))
	for alias := range r.byAlias {
		out = append(out, alias)
	}
	return out
}

// Validate checks that every configured accessor of the entity's type
// resolves to a method with a usable signature. Hosts call it at startup,
// once per registered type, to fail fast on typos in the configuration.
func (r *Registry) Validate(entity any) error {
	cfg, err := r.ForEntity(entity)
	if err != nil {
		return err
	}
	t := reflect.TypeOf(entity)
	if _, ok := t.MethodByName(cfg.IDGetter); !ok {
		return fmt.Errorf("registry: %s: méthode %s introuvable", typeName(entity), cfg.IDGetter)
	}
	for field, acc := range cfg.Fields {
		getter, ok := t.MethodByName(acc.Getter)
		if !ok {
			return fmt.Errorf("registry: %s.%s: méthode %s introuvable", typeName(entity), field, acc.Getter)
		}
		// receiver + no args, one string return
		if getter.Type.NumIn() != 1 || getter.Type.NumOut() != 1 || getter.Type.Out(0).Kind() != reflect.String {
			return fmt.Errorf("registry: %s.%s: %s doit être func() string", typeName(entity), field, acc.Getter)
		}
		setter, ok := t.MethodByName(acc.Setter)
		if !ok {
			return fmt.Errorf("registry: %s.%s: méthode %s introuvable", typeName(entity), field, acc.Setter)
		}
		if setter.Type.NumIn() != 2 || setter.Type.In(1).Kind() != reflect.String {
			return fmt.Errorf("registry: %s.%s: %s doit être func(string)", typeName(entity), field, acc.Setter)
		}
	}
	return nil
}

func typeName(entity any) string {
	t := reflect.TypeOf(entity)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "<nil>"
	}
	return t.Name()
}
