package translatable

import (
	"fmt"
	"reflect"
	"strconv"

	"translatable/internal/domain"
)

// EntityID derives the storage key for entity using the configured id getter.
// String, integer and fmt.Stringer results are accepted; a zero id is an
// error because the entry could not be keyed.
func EntityID(entity any, cfg EntityConfig) (string, error) {
	m := reflect.ValueOf(entity).MethodByName(cfg.IDGetter)
	if !m.IsValid() {
		return "", fmt.Errorf("accessor: %s: méthode %s introuvable", typeName(entity), cfg.IDGetter)
	}
	out := m.Call(nil)
	if len(out) == 0 {
		return "", fmt.Errorf("accessor: %s ne retourne aucune valeur", cfg.IDGetter)
	}

	id, err := formatID(out[0])
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", fmt.Errorf("%w (%s)", domain.ErrMissingEntityID, typeName(entity))
	}
	return id, nil
}

func formatID(v reflect.Value) (string, error) {
	if s, ok := v.Interface().(fmt.Stringer); ok {
		return s.String(), nil
	}
	switch v.Kind() {
	case reflect.String:
		return v.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if v.Int() == 0 {
			return "", nil
		}
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if v.Uint() == 0 {
			return "", nil
		}
		return strconv.FormatUint(v.Uint(), 10), nil
	default:
		return "", fmt.Errorf("accessor: type d'identifiant non géré: %s", v.Kind())
	}
}

// GetField invokes the configured getter for field on entity.
func GetField(entity any, cfg EntityConfig, field string) (string, error) {
	acc, ok := cfg.Fields[field]
	if !ok {
		return "", fmt.Errorf("accessor: champ %q non déclaré pour %s", field, cfg.Alias)
	}
	m := reflect.ValueOf(entity).MethodByName(acc.Getter)
	if !m.IsValid() {
		return "", fmt.Errorf("accessor: %s: méthode %s introuvable", typeName(entity), acc.Getter)
	}
	out := m.Call(nil)
	if len(out) != 1 || out[0].Kind() != reflect.String {
		return "", fmt.Errorf("accessor: %s doit retourner une string", acc.Getter)
	}
	return out[0].String(), nil
}

// SetField invokes the configured setter for field on entity with value.
// Setters mutate state, so entity must be addressable (a pointer).
func SetField(entity any, cfg EntityConfig, field, value string) error {
	acc, ok := cfg.Fields[field]
	if !ok {
		return fmt.Errorf("accessor: champ %q non déclaré pour %s", field, cfg.Alias)
	}
	m := reflect.ValueOf(entity).MethodByName(acc.Setter)
	if !m.IsValid() {
		return fmt.Errorf("accessor: %s: méthode %s introuvable", typeName(entity), acc.Setter)
	}
	if m.Type().NumIn() != 1 || m.Type().In(0).Kind() != reflect.String {
		return fmt.Errorf("accessor: %s doit accepter une string", acc.Setter)
	}
	m.Call([]reflect.Value{reflect.ValueOf(value)})
	return nil
}
