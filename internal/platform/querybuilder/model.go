package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// InsertOption adds a conflict clause to a model insert.
type InsertOption func(*insertModelConfig)

type insertModelConfig struct {
	conflictColumns []string
}

// OnConflictDoNothing skips rows colliding on the unique key formed by columns.
func OnConflictDoNothing(columns ...string) InsertOption {
	return func(cfg *insertModelConfig) {
		cfg.conflictColumns = append([]string(nil), columns...)
	}
}

// InsertModel builds an insert of one struct whose exported fields carry `db` tags.
func InsertModel(table string, model any, opts ...InsertOption) (string, []any, error) {
	return InsertModels(table, []any{model}, opts...)
}

// InsertModels builds one multi-row insert. Every model must map to the same columns.
func InsertModels[T any](table string, models []T, opts ...InsertOption) (string, []any, error) {
	if len(models) == 0 {
		return "", nil, fmt.Errorf("insert %s: no models", table)
	}

	var cfg insertModelConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	builder := InsertInto(table)
	var cols []string
	for i, model := range models {
		rowCols, vals, err := columnsAndValuesFromModel(model)
		if err != nil {
			return "", nil, fmt.Errorf("insert %s row %d: %w", table, i, err)
		}
		if i == 0 {
			cols = rowCols
			builder.Columns(cols...)
		} else if strings.Join(rowCols, ",") != strings.Join(cols, ",") {
			return "", nil, fmt.Errorf("insert %s row %d: columns differ from first row", table, i)
		}
		builder.Values(vals...)
	}

	suffix, err := conflictClause(cfg, cols)
	if err != nil {
		return "", nil, fmt.Errorf("insert %s: %w", table, err)
	}
	return builder.Suffix(suffix).ToSQL()
}

func conflictClause(cfg insertModelConfig, cols []string) (string, error) {
	if len(cfg.conflictColumns) == 0 {
		return "", nil
	}
	known := make(map[string]struct{}, len(cols))
	for _, col := range cols {
		known[col] = struct{}{}
	}
	for _, col := range cfg.conflictColumns {
		if _, ok := known[col]; !ok {
			return "", fmt.Errorf("conflict column %q is not a model column", col)
		}
	}
	return "ON CONFLICT (" + strings.Join(cfg.conflictColumns, ", ") + ") DO NOTHING", nil
}

func columnsAndValuesFromModel(model any) ([]string, []any, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer || value.Kind() == reflect.Interface {
		if value.IsNil() {
			return nil, nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be struct, got %s", value.Kind())
	}

	typ := value.Type()
	cols := make([]string, 0, typ.NumField())
	vals := make([]any, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		col, ok := dbColumn(field.Tag.Get("db"))
		if !ok {
			continue
		}
		cols = append(cols, col)
		vals = append(vals, value.Field(i).Interface())
	}

	if len(cols) == 0 {
		return nil, nil, fmt.Errorf("model %s has no db columns", typ.Name())
	}
	return cols, vals, nil
}

func dbColumn(tag string) (string, bool) {
	col := strings.TrimSpace(strings.Split(strings.TrimSpace(tag), ",")[0])
	if col == "" || col == "-" {
		return "", false
	}
	return col, true
}
