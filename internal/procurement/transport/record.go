// Package transport provides DTOs for the procurement domain.
package transport

import (
	"encoding/json"
	"strconv"
)

// ValueKind discriminates the shapes a dataset field can take.
type ValueKind int

const (
	// KindAbsent marks a field that was missing or JSON null.
	KindAbsent ValueKind = iota
	// KindString marks a plain string value.
	KindString
	// KindNumber marks a JSON number.
	KindNumber
	// KindBool marks a JSON boolean.
	KindBool
	// KindNested marks an object or array value.
	KindNested
)

// Value is one field of a SECOP record. The dataset enforces no schema, so
// every field is a tagged variant over absent, scalar, and nested shapes and
// callers must tolerate absence on every access.
type Value struct {
	kind   ValueKind
	str    string
	num    float64
	b      bool
	nested json.RawMessage
}

// UnmarshalJSON classifies the raw field into the variant.
func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = Value{}
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Value{kind: KindString, str: s}
	case '{', '[':
		*v = Value{kind: KindNested, nested: append(json.RawMessage(nil), data...)}
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*v = Value{kind: KindBool, b: b}
	default:
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*v = Value{kind: KindNumber, num: n}
	}
	return nil
}

// Kind returns the variant tag.
func (v Value) Kind() ValueKind { return v.kind }

// Present reports whether the field carried any value at all.
func (v Value) Present() bool { return v.kind != KindAbsent }

// Text returns the textual form of the value. Nested structures render as
// their compact JSON encoding rather than being rejected. Absent values
// render as the empty string.
func (v Value) Text() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNested:
		return string(v.nested)
	default:
		return ""
	}
}

// Number returns the numeric form of the value. Socrata serves numeric
// columns as strings, so string values are parsed as well.
func (v Value) Number() (float64, bool) {
	switch v.kind {
	case KindNumber:
		return v.num, true
	case KindString:
		n, err := strconv.ParseFloat(v.str, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// Record is one row returned by the dataset API.
type Record map[string]Value

// Field returns the named field, absent if the record does not carry it.
func (r Record) Field(name string) Value {
	return r[name]
}

// First returns the first present value among the named fields, or an
// absent Value when none is set.
func (r Record) First(names ...string) Value {
	for _, name := range names {
		if v := r[name]; v.Present() {
			return v
		}
	}
	return Value{}
}
