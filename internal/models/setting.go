package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// SettingType discriminates how a setting's text value is interpreted.
type SettingType string

const (
	SettingString  SettingType = "string"
	SettingNumber  SettingType = "number"
	SettingBoolean SettingType = "boolean"
	SettingJSON    SettingType = "json"
)

func (t SettingType) IsValid() bool {
	switch t {
	case SettingString, SettingNumber, SettingBoolean, SettingJSON:
		return true
	default:
		return false
	}
}

// Setting is one key of the key-value configuration store. The value is
// persisted as text and interpreted through Type.
type Setting struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Key         string      `gorm:"size:255;not null;uniqueIndex" json:"key"`
	Value       string      `gorm:"not null" json:"value"`
	Type        SettingType `gorm:"type:varchar(32);not null;default:string" json:"type"`
	Description string      `json:"description"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// SettingValue is the typed form of a setting value. Exactly one variant
// field is meaningful, selected by Type.
type SettingValue struct {
	Type SettingType
	Str  string
	Num  float64
	Bool bool
	Raw  json.RawMessage
}

// ParseSettingValue interprets a raw JSON value against the declared type.
func ParseSettingValue(t SettingType, raw json.RawMessage) (SettingValue, error) {
	v := SettingValue{Type: t}

	if len(raw) == 0 {
		return v, fmt.Errorf("value is required")
	}

	switch t {
	case SettingNumber:
		if err := json.Unmarshal(raw, &v.Num); err != nil {
			return v, fmt.Errorf("value must be a number")
		}
	case SettingBoolean:
		if err := json.Unmarshal(raw, &v.Bool); err != nil {
			return v, fmt.Errorf("value must be a boolean")
		}
	case SettingJSON:
		if !json.Valid(raw) {
			return v, fmt.Errorf("value must be valid JSON")
		}
		v.Raw = raw
	case SettingString:
		if err := json.Unmarshal(raw, &v.Str); err != nil {
			// Non-string scalars are accepted and stored verbatim.
			v.Str = string(raw)
		}
	default:
		return v, fmt.Errorf("unknown setting type %q", t)
	}

	return v, nil
}

// Encode renders the variant into its stored text form.
func (v SettingValue) Encode() string {
	switch v.Type {
	case SettingNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case SettingBoolean:
		return strconv.FormatBool(v.Bool)
	case SettingJSON:
		return string(v.Raw)
	default:
		return v.Str
	}
}

// TypedValue decodes the stored text back into the shape declared by Type,
// falling back to the raw string when the stored text does not parse.
func (s *Setting) TypedValue() interface{} {
	switch s.Type {
	case SettingBoolean:
		return s.Value == "true"
	case SettingNumber:
		n, err := strconv.ParseFloat(s.Value, 64)
		if err != nil {
			return s.Value
		}
		return n
	case SettingJSON:
		if json.Valid([]byte(s.Value)) {
			return json.RawMessage(s.Value)
		}
		return s.Value
	default:
		return s.Value
	}
}
