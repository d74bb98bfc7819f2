package interpolation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// InterpolateStruct expands string fields tagged `env_interpolation:"yes"`
// in place and descends into nested structs. v must be a pointer to a struct.
func InterpolateStruct(v any, lookup LookupFunc) error {
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr || val.IsNil() || val.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("expected pointer to struct, got %T", v)
	}
	return interpolate(val.Elem(), lookup)
}

func interpolate(val reflect.Value, lookup LookupFunc) error {
	typ := val.Type()
	var errs []error

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)
		if !field.CanSet() {
			continue
		}

		switch field.Kind() {
		case reflect.Struct:
			if err := interpolate(field, lookup); err != nil {
				errs = append(errs, fmt.Errorf("field %s: %w", fieldType.Name, err))
			}

		case reflect.String:
			if strings.ToLower(fieldType.Tag.Get("env_interpolation")) != "yes" || field.String() == "" {
				continue
			}
			expanded, err := Expand(field.String(), lookup)
			if err != nil {
				errs = append(errs, fmt.Errorf("field %s: %w", fieldType.Name, err))
				continue
			}
			field.SetString(expanded)
		}
	}

	return errors.Join(errs...)
}
