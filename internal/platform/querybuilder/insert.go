package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// InsertModel renders a single-row INSERT from the exported `db`-tagged fields of model.
func InsertModel(table string, model any) (string, []any, error) {
	if strings.TrimSpace(table) == "" {
		return "", nil, fmt.Errorf("insert table is required")
	}
	columns, values, err := taggedFields(model)
	if err != nil {
		return "", nil, err
	}

	var w writer
	w.sql.WriteString("INSERT INTO ")
	w.sql.WriteString(table)
	w.sql.WriteString(" (")
	w.sql.WriteString(strings.Join(columns, ", "))
	w.sql.WriteString(") VALUES (")
	for i, v := range values {
		if i > 0 {
			w.sql.WriteString(", ")
		}
		w.bind(v)
	}
	w.sql.WriteString(")")
	return w.sql.String(), w.args, nil
}

func taggedFields(model any) ([]string, []any, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be struct, got %s", value.Kind())
	}

	typ := value.Type()
	var (
		columns []string
		values  []any
	)
	for i := range typ.NumField() {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		column, _, _ := strings.Cut(field.Tag.Get("db"), ",")
		column = strings.TrimSpace(column)
		if column == "" || column == "-" {
			continue
		}
		columns = append(columns, column)
		values = append(values, value.Field(i).Interface())
	}
	if len(columns) == 0 {
		return nil, nil, fmt.Errorf("model %s has no db columns", typ.Name())
	}
	return columns, values, nil
}
