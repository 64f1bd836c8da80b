package seed

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
)

// Field names whose values are coerced before building.
const (
	metadataField = "asset_info"
	holdingsField = "holdings"
)

// timestampLayouts are tried in order. Layouts without a zone are read as UTC.
var timestampLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTimestamp parses an ISO-8601 timestamp string. It returns nil for a
// missing value, a non-string value, or a string none of the layouts accept.
// A trailing "Z" is rewritten to "+00:00" before parsing.
func ParseTimestamp(v any) *time.Time {
	s, ok := v.(string)
	if !ok || s == "" {
		return nil
	}

	if strings.HasSuffix(s, "Z") {
		s = strings.TrimSuffix(s, "Z") + "+00:00"
	}
	if len(s) > 10 && s[10] == ' ' {
		s = s[:10] + "T" + s[11:]
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

// ParseMetadata coerces the asset_info value into a JSON object. Strings are
// decoded as JSON; objects are taken as they are. Anything else, including
// malformed JSON or a JSON document that is not an object, yields nil.
func ParseMetadata(v any) datatypes.JSONMap {
	switch value := v.(type) {
	case datatypes.JSONMap:
		return value
	case map[string]any:
		return datatypes.JSONMap(value)
	case string:
		var decoded any
		if err := json.Unmarshal([]byte(value), &decoded); err != nil {
			return nil
		}
		if m, ok := decoded.(map[string]any); ok {
			return datatypes.JSONMap(m)
		}
	}
	return nil
}

// StructuredToText returns the text stored in a legacy text column that may be
// supplied as structured JSON. Strings pass through, nil stays nil, and any
// other value is serialized to compact JSON with HTML characters left as is.
func StructuredToText(v any) (*string, error) {
	switch value := v.(type) {
	case nil:
		return nil, nil
	case string:
		return &value, nil
	default:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(value); err != nil {
			return nil, fmt.Errorf("cannot serialize %T to text: %w", v, err)
		}
		s := strings.TrimSuffix(buf.String(), "\n")
		return &s, nil
	}
}

// Coerce returns a copy of a normalized record with its timestamp, asset_info
// and holdings values replaced by their coerced forms. Timestamps and
// metadata fail soft to nil; only a holdings value that cannot be serialized
// is an error.
func Coerce(normalized map[string]any) (map[string]any, error) {
	coerced := make(map[string]any, len(normalized))
	for key, value := range normalized {
		coerced[key] = value
	}

	for _, key := range TimestampFields {
		if value, ok := normalized[key]; ok {
			coerced[key] = ParseTimestamp(value)
		}
	}

	if value, ok := normalized[metadataField]; ok {
		coerced[metadataField] = ParseMetadata(value)
	}

	if value, ok := normalized[holdingsField]; ok {
		text, err := StructuredToText(value)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", holdingsField, err)
		}
		coerced[holdingsField] = text
	}

	return coerced, nil
}
