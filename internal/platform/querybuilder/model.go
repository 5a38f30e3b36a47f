package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// InsertModel builds an INSERT from the db-tagged exported fields of model.
// Fields tagged with ",readonly" are skipped so database defaults apply.
func InsertModel(table string, model any, suffix string) (string, []any, error) {
	cols, vals, err := modelColumns(model)
	if err != nil {
		return "", nil, err
	}
	return InsertInto(table).
		Columns(cols...).
		Values(vals...).
		Suffix(suffix).
		ToSQL()
}

// Columns lists the db column names of model, readonly ones included, for
// SELECT and RETURNING lists.
func Columns(model any) []string {
	typ := reflect.TypeOf(model)
	for typ != nil && typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ == nil || typ.Kind() != reflect.Struct {
		return nil
	}

	out := make([]string, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		col, _, ok := dbTag(typ.Field(i))
		if ok {
			out = append(out, col)
		}
	}
	return out
}

func modelColumns(model any) ([]string, []any, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be struct")
	}

	typ := value.Type()
	cols := make([]string, 0, typ.NumField())
	vals := make([]any, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		col, readonly, ok := dbTag(typ.Field(i))
		if !ok || readonly {
			continue
		}
		cols = append(cols, col)
		vals = append(vals, value.Field(i).Interface())
	}

	if len(cols) == 0 {
		return nil, nil, fmt.Errorf("model has no db columns")
	}
	return cols, vals, nil
}

func dbTag(field reflect.StructField) (column string, readonly bool, ok bool) {
	if field.PkgPath != "" {
		return "", false, false
	}
	parts := strings.Split(strings.TrimSpace(field.Tag.Get("db")), ",")
	column = strings.TrimSpace(parts[0])
	if column == "" || column == "-" {
		return "", false, false
	}
	for _, opt := range parts[1:] {
		if strings.TrimSpace(opt) == "readonly" {
			readonly = true
		}
	}
	return column, readonly, true
}
