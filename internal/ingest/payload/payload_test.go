package payload

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) map[string]any {
	t.Helper()
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.UseNumber()
	var m map[string]any
	require.NoError(t, dec.Decode(&m))
	return m
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		in    any
		valid bool
		want  string
	}{
		{name: "full date", in: "2024-03-15", valid: true, want: "2024-03-15"},
		{name: "year month", in: "2024-03", valid: true, want: "2024-03-01"},
		{name: "garbage", in: "not-a-date", valid: false},
		{name: "empty", in: "", valid: false},
		{name: "nil", in: nil, valid: false},
		{name: "wrong type", in: json.Number("20240315"), valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ParseDate(tt.in)
			assert.Equal(t, tt.valid, d.Valid)
			if tt.valid {
				assert.Equal(t, tt.want, d.Time.Format("2006-01-02"))
			}
		})
	}
}

func TestNested(t *testing.T) {
	obj := decode(t, `{"a":{"b":{"c":"deep"}},"flat":1,"null":null}`)

	assert.Equal(t, "deep", Nested(obj, "a", "b", "c"))
	assert.Nil(t, Nested(obj, "a", "missing", "c"))
	assert.Nil(t, Nested(obj, "flat", "c"), "descending through a scalar")
	assert.Nil(t, Nested(obj, "null"))
	assert.Nil(t, Nested(nil, "a"))
}

func TestList(t *testing.T) {
	obj := decode(t, `{"items":[1,2],"scalar":"x","null":null}`)

	assert.Len(t, List(obj, "items"), 2)
	assert.Empty(t, List(obj, "scalar"))
	assert.Empty(t, List(obj, "null"))
	assert.Empty(t, List(obj, "missing"))
}

func TestCoercers(t *testing.T) {
	obj := decode(t, `{"n":42,"frac":1.5,"s":"text","b":true}`)

	require.NotNil(t, Int(obj["n"]))
	assert.Equal(t, int64(42), *Int(obj["n"]))
	assert.Nil(t, Int(obj["frac"]), "fractional values do not truncate")
	assert.Nil(t, Int(obj["s"]))

	require.NotNil(t, String(obj["s"]))
	assert.Equal(t, "text", *String(obj["s"]))
	assert.Equal(t, "42", *String(obj["n"]), "numbers keep their literal form")
	assert.Nil(t, String(obj["b"]))

	require.NotNil(t, Bool(obj["b"]))
	assert.True(t, *Bool(obj["b"]))
	assert.Nil(t, Bool(obj["s"]))

	assert.Equal(t, "1.5", Dec(obj["frac"]).Number)
	assert.False(t, Dec(obj["s"]).Valid, "arbitrary text is not a number")
}

func TestDecodeRow(t *testing.T) {
	type row struct {
		Name     *string `payload:"name"`
		Code     *int64  `payload:"type.dnbCode"`
		Open     *bool   `payload:"isOpen"`
		Filed    Date    `payload:"filingDate"`
		Amount   Decimal `payload:"amount.value"`
		Currency *string `payload:"amount.currency"`
		Ignored  *string
	}

	obj := decode(t, `{
		"name": "Acme",
		"type": {"dnbCode": 15426},
		"isOpen": true,
		"filingDate": "2023-11",
		"amount": {"value": 99.90, "currency": "EUR"}
	}`)

	var r row
	DecodeRow(&r, obj)

	require.NotNil(t, r.Name)
	assert.Equal(t, "Acme", *r.Name)
	require.NotNil(t, r.Code)
	assert.Equal(t, int64(15426), *r.Code)
	require.NotNil(t, r.Open)
	assert.True(t, *r.Open)
	assert.True(t, r.Filed.Valid)
	assert.Equal(t, "2023-11-01", r.Filed.Time.Format("2006-01-02"))
	assert.Equal(t, "99.90", r.Amount.Number)
	require.NotNil(t, r.Currency)
	assert.Equal(t, "EUR", *r.Currency)
	assert.Nil(t, r.Ignored)
}

func TestDecodeRowMissingFields(t *testing.T) {
	type row struct {
		Name  *string `payload:"name"`
		Filed Date    `payload:"filingDate"`
	}

	var r row
	DecodeRow(&r, decode(t, `{"filingDate": "bogus"}`))

	assert.Nil(t, r.Name)
	assert.False(t, r.Filed.Valid, "unparseable dates fall back to null")
}
