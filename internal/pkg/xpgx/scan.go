package xpgx

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/jackc/pgx/v5"
)

// scanOne сканирует первую строку в структуру по db тегам.
func scanOne(rows pgx.Rows, dst any) error {
	defer rows.Close()

	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("xpgx: dst must be a pointer to struct, got %T", dst)
	}

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return err
		}
		return pgx.ErrNoRows
	}

	if err := scanRow(rows, v.Elem()); err != nil {
		return err
	}

	return rows.Err()
}

// scanAll сканирует все строки в слайс указателей на структуры.
func scanAll(rows pgx.Rows, dst any) error {
	defer rows.Close()

	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("xpgx: dst must be a pointer to slice, got %T", dst)
	}

	slice := v.Elem()
	elemType := slice.Type().Elem()
	isPtr := elemType.Kind() == reflect.Pointer
	if isPtr {
		elemType = elemType.Elem()
	}
	if elemType.Kind() != reflect.Struct {
		return fmt.Errorf("xpgx: slice element must be a struct, got %s", elemType)
	}

	for rows.Next() {
		elem := reflect.New(elemType)
		if err := scanRow(rows, elem.Elem()); err != nil {
			return err
		}

		if isPtr {
			slice = reflect.Append(slice, elem)
		} else {
			slice = reflect.Append(slice, elem.Elem())
		}
	}

	v.Elem().Set(slice)
	return rows.Err()
}

func scanRow(rows pgx.Rows, structVal reflect.Value) error {
	fields := map[string]reflect.Value{}
	collectFields(structVal, fields)

	descs := rows.FieldDescriptions()
	targets := make([]any, len(descs))
	for i, desc := range descs {
		field, ok := fields[desc.Name]
		if !ok {
			var discard any
			targets[i] = &discard
			continue
		}
		targets[i] = field.Addr().Interface()
	}

	return rows.Scan(targets...)
}

func collectFields(structVal reflect.Value, out map[string]reflect.Value) {
	t := structVal.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
			collectFields(structVal.Field(i), out)
			continue
		}
		if !sf.IsExported() {
			continue
		}

		name := sf.Tag.Get("db")
		if name == "-" {
			continue
		}
		if name == "" {
			name = strings.ToLower(sf.Name)
		}
		if _, exists := out[name]; !exists {
			out[name] = structVal.Field(i)
		}
	}
}
