package payload

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Decimal is an exact fixed-point value carried as its decimal string. The
// engine only stores and retrieves amounts, so keeping the upstream digits
// untouched beats converting through float64 and back.
type Decimal struct {
	Number string
	Valid  bool
}

// Value implements driver.Valuer.
func (d Decimal) Value() (driver.Value, error) {
	if !d.Valid {
		return nil, nil
	}
	return d.Number, nil
}

// Scan implements sql.Scanner.
func (d *Decimal) Scan(src any) error {
	switch t := src.(type) {
	case nil:
		*d = Decimal{}
	case string:
		*d = Decimal{Number: t, Valid: true}
	case []byte:
		*d = Decimal{Number: string(t), Valid: true}
	case float64:
		*d = Decimal{Number: strconv.FormatFloat(t, 'f', -1, 64), Valid: true}
	case int64:
		*d = Decimal{Number: strconv.FormatInt(t, 10), Valid: true}
	default:
		return fmt.Errorf("cannot scan %T into Decimal", src)
	}
	return nil
}

const dateLayout = "2006-01-02"

// Date is a nullable calendar date.
type Date struct {
	Time  time.Time
	Valid bool
}

// ParseDate parses the two date spellings the provider emits: full
// year-month-day and bare year-month. Anything else, including non-string
// input, is a null date. It never fails.
func ParseDate(v any) Date {
	s, ok := v.(string)
	if !ok {
		return Date{}
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return Date{Time: t, Valid: true}
	}
	if t, err := time.Parse("2006-01", s); err == nil {
		return Date{Time: t, Valid: true}
	}
	return Date{}
}

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	if !d.Valid {
		return nil, nil
	}
	return d.Time.Format(dateLayout), nil
}

// Scan implements sql.Scanner. PostgreSQL hands back time.Time for DATE
// columns, SQLite returns the stored text.
func (d *Date) Scan(src any) error {
	switch t := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = Date{Time: t, Valid: true}
		return nil
	case string:
		return d.scanString(t)
	case []byte:
		return d.scanString(string(t))
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

func (d *Date) scanString(s string) error {
	for _, layout := range []string{dateLayout, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			*d = Date{Time: t, Valid: true}
			return nil
		}
	}
	return fmt.Errorf("cannot scan %q into Date", s)
}

// JSONText stores an arbitrary payload fragment as its JSON encoding,
// used for pass-through columns like period summaries.
type JSONText []byte

// JSONFrom re-encodes a decoded payload fragment. Nil input stays nil.
func JSONFrom(v any) JSONText {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return JSONText(b)
}

// Value implements driver.Valuer.
func (j JSONText) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return string(j), nil
}

// Scan implements sql.Scanner.
func (j *JSONText) Scan(src any) error {
	switch t := src.(type) {
	case nil:
		*j = nil
	case string:
		*j = JSONText(t)
	case []byte:
		*j = JSONText(string(t))
	default:
		return fmt.Errorf("cannot scan %T into JSONText", src)
	}
	return nil
}
