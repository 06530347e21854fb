package model

import (
	"strconv"

	"bem-translator/internal/common"
)

// ValueKind is the kind of an attribute value.
type ValueKind int

const (
	KindString ValueKind = iota + 1
	KindDouble
	KindBool
	KindEnum
)

// String returns a human-readable kind name.
func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindDouble:
		return "double"
	case KindBool:
		return "bool"
	case KindEnum:
		return "enum"
	default:
		return common.UnknownStr
	}
}

// Value is a tagged attribute value. The zero Value is invalid.
type Value struct {
	kind ValueKind
	str  string
	num  float64
	flag bool
}

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Double returns a double value.
func Double(f float64) Value { return Value{kind: KindDouble, num: f} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, flag: b} }

// Enum returns an enumerated string value.
func Enum(s string) Value { return Value{kind: KindEnum, str: s} }

// Kind returns the value kind.
func (v Value) Kind() ValueKind { return v.kind }

// IsValid reports whether v was built by one of the constructors.
func (v Value) IsValid() bool { return v.kind != 0 }

// AsString returns the text of a string or enum value.
func (v Value) AsString() (string, bool) {
	if v.kind == KindString || v.kind == KindEnum {
		return v.str, true
	}

	return "", false
}

// AsDouble returns the number of a double value.
func (v Value) AsDouble() (float64, bool) {
	if v.kind == KindDouble {
		return v.num, true
	}

	return 0, false
}

// AsBool returns the flag of a boolean value.
func (v Value) AsBool() (bool, bool) {
	if v.kind == KindBool {
		return v.flag, true
	}

	return false, false
}

// Text renders the value the way the Workspace text form writes it.
func (v Value) Text() string {
	switch v.kind {
	case KindString, KindEnum:
		return v.str
	case KindDouble:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindBool:
		if v.flag {
			return "Yes"
		}

		return "No"
	default:
		return ""
	}
}

// String implements fmt.Stringer.
func (v Value) String() string {
	if v.kind == 0 {
		return "<invalid>"
	}

	return v.kind.String() + "(" + v.Text() + ")"
}
