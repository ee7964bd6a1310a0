package content

import (
	"bytes"
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Number is an integer that also accepts numeric strings on the wire, since
// form inputs post "3" as often as 3.
type Number int

func (n *Number) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		return nil
	}
	s := raw
	if strings.HasPrefix(raw, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		s = strings.TrimSpace(str)
	}
	if v, err := strconv.Atoi(s); err == nil {
		*n = Number(v)
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) || f > math.MaxInt32 || f < math.MinInt32 {
		return &json.UnmarshalTypeError{Value: raw, Type: reflect.TypeOf(Number(0))}
	}
	*n = Number(int(f))
	return nil
}

func (n *Number) Int() int {
	if n == nil {
		return 0
	}
	return int(*n)
}

// IntPtr and StringPtr build payload fields.
func IntPtr(v int) *Number { n := Number(v); return &n }

func StringPtr(s string) *string { return &s }

// NullableString distinguishes an absent field from an explicit null.
// Set is true whenever the key appeared in the document.
type NullableString struct {
	Set   bool
	Value *string
}

// Null returns a NullableString that clears the field.
func Null() NullableString { return NullableString{Set: true} }

// Some returns a NullableString holding s.
func Some(s string) NullableString { return NullableString{Set: true, Value: &s} }

func (n *NullableString) UnmarshalJSON(b []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}

func (n NullableString) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}

// IsZero reports an absent field so omitzero drops it on encode.
func (n NullableString) IsZero() bool { return !n.Set }

func (n NullableString) apply(dst **string) {
	if !n.Set {
		return
	}
	if n.Value == nil {
		*dst = nil
		return
	}
	v := *n.Value
	*dst = &v
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
