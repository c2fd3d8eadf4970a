package store

import "reflect"

// columns flattens a row struct into parallel column/value slices using its
// `db` tags. The generated id column is skipped so the database assigns it.
func columns(row any) ([]string, []any) {
	rv := reflect.ValueOf(row)
	for rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	rt := rv.Type()

	cols := make([]string, 0, rt.NumField())
	vals := make([]any, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		tag := rt.Field(i).Tag.Get("db")
		if tag == "" || tag == "-" || tag == "id" {
			continue
		}
		cols = append(cols, tag)
		vals = append(vals, rv.Field(i).Interface())
	}
	return cols, vals
}
