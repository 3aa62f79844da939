package models

import (
	"github.com/guregu/null/v6"
)

// FieldKind selects the formatting rule for a Field.
type FieldKind string

const (
	KindText       FieldKind = "text"
	KindCurrency   FieldKind = "currency"   // $1,234.56
	KindCount      FieldKind = "count"      // 1,234,567
	KindPercent    FieldKind = "percent"    // fraction rendered as 12.34%
	KindBillions   FieldKind = "billions"   // raw count rendered as 15.44 B
	KindMultiplier FieldKind = "multiplier" // 1.24 x
	KindNumber     FieldKind = "number"     // 1,234.56
	KindDate       FieldKind = "date"       // 2006-01-02
)

// Field is a labeled, typed value whose formatting rule is fixed when the
// record is built. Exactly one of Text, Number or Time is meaningful,
// depending on Kind.
type Field struct {
	Key    string      `json:"key"`
	Label  string      `json:"label"`
	Kind   FieldKind   `json:"kind"`
	Text   null.String `json:"text"`
	Number null.Float  `json:"number"`
	Time   null.Time   `json:"time"`
}

// Present reports whether the field carries a value.
func (f Field) Present() bool {
	switch f.Kind {
	case KindText:
		return f.Text.Valid
	case KindDate:
		return f.Time.Valid
	default:
		return f.Number.Valid
	}
}

// TextField builds a text-valued field.
func TextField(key, label string, v null.String) Field {
	return Field{Key: key, Label: label, Kind: KindText, Text: v}
}

// NumberField builds a numeric field of the given kind.
func NumberField(key, label string, kind FieldKind, v null.Float) Field {
	return Field{Key: key, Label: label, Kind: kind, Number: v}
}

// IntField builds a numeric field from an integer value.
func IntField(key, label string, kind FieldKind, v null.Int) Field {
	f := Field{Key: key, Label: label, Kind: kind}
	if v.Valid {
		f.Number = null.FloatFrom(float64(v.Int64))
	}
	return f
}

// DateField builds a date field.
func DateField(key, label string, v null.Time) Field {
	return Field{Key: key, Label: label, Kind: KindDate, Time: v}
}
