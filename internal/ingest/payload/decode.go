package payload

import (
	"reflect"
	"strings"
)

// DecodeRow fills dst, a pointer to a row struct, from a payload object.
// Each field's `payload` tag names a dot-separated path into the object;
// fields without a tag are left alone. Coercion follows the field type and a
// path that is missing or mistyped simply leaves the field at its zero
// (null) value, matching the tolerant semantics of the rest of this package.
func DecodeRow(dst any, obj map[string]any) {
	rv := reflect.ValueOf(dst).Elem()
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		tag := rt.Field(i).Tag.Get("payload")
		if tag == "" || tag == "-" {
			continue
		}
		v := Nested(obj, strings.Split(tag, ".")...)
		if v == nil {
			continue
		}
		setField(rv.Field(i), v)
	}
}

func setField(field reflect.Value, v any) {
	switch p := field.Addr().Interface().(type) {
	case *Decimal:
		*p = Dec(v)
	case *Date:
		*p = ParseDate(v)
	case *JSONText:
		*p = JSONFrom(v)
	case **string:
		*p = String(v)
	case **int64:
		*p = Int(v)
	case **bool:
		*p = Bool(v)
	}
}
