package seed

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want time.Time
	}{
		{"zulu", "2024-01-15T10:30:00Z", time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)},
		{"zulu_fraction", "2024-01-15T10:30:00.123Z", time.Date(2024, 1, 15, 10, 30, 0, 123000000, time.UTC)},
		{"offset", "2024-01-15T12:30:00+02:00", time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)},
		{"compact_offset", "2024-01-15T12:30:00+0200", time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)},
		{"naive_is_utc", "2024-01-15T10:30:00", time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)},
		{"space_separator", "2024-01-15 10:30:00", time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)},
		{"minutes_only", "2024-01-15T10:30", time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)},
		{"date_only", "2024-01-15", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTimestamp(tt.in)
			require.NotNil(t, got)
			assert.True(t, tt.want.Equal(*got), "got %s, want %s", got, tt.want)
			assert.Equal(t, time.UTC, got.Location())
		})
	}

	t.Run("invalid_inputs_are_nil", func(t *testing.T) {
		for _, in := range []any{nil, "", "not-a-date", "2024-13-45T99:99:99Z", 1705314600.0, true} {
			assert.Nil(t, ParseTimestamp(in), "input %v", in)
		}
	})
}

func TestParseMetadata(t *testing.T) {
	t.Run("json_object_string", func(t *testing.T) {
		got := ParseMetadata(`{"type":"checking","nested":{"a":1}}`)
		require.NotNil(t, got)
		assert.Equal(t, "checking", got["type"])
		assert.Equal(t, map[string]any{"a": 1.0}, got["nested"])
	})

	t.Run("object_passes_through", func(t *testing.T) {
		in := map[string]any{"k": "v"}
		assert.Equal(t, datatypes.JSONMap(in), ParseMetadata(in))
	})

	t.Run("malformed_json_is_nil", func(t *testing.T) {
		assert.Nil(t, ParseMetadata(`{not json`))
	})

	t.Run("non_object_json_is_nil", func(t *testing.T) {
		assert.Nil(t, ParseMetadata(`[1,2,3]`))
		assert.Nil(t, ParseMetadata(`"text"`))
	})

	t.Run("other_kinds_are_nil", func(t *testing.T) {
		assert.Nil(t, ParseMetadata(nil))
		assert.Nil(t, ParseMetadata(12.5))
		assert.Nil(t, ParseMetadata([]any{"a", "b"}))
	})
}

func TestStructuredToText(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		got, err := StructuredToText(nil)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("string_passes_through", func(t *testing.T) {
		got, err := StructuredToText("AAPL:10")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "AAPL:10", *got)
	})

	t.Run("object_is_serialized", func(t *testing.T) {
		got, err := StructuredToText(map[string]any{"stocks": []any{"AAPL", "GOOG"}})
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.JSONEq(t, `{"stocks":["AAPL","GOOG"]}`, *got)
	})

	t.Run("array_is_serialized", func(t *testing.T) {
		got, err := StructuredToText([]any{json.Number("1"), "two"})
		require.NoError(t, err)
		assert.Equal(t, `[1,"two"]`, *got)
	})

	t.Run("html_characters_are_literal", func(t *testing.T) {
		got, err := StructuredToText(map[string]any{"x": "a&b <c>"})
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, `{"x":"a&b <c>"}`, *got)
	})

	t.Run("unserializable_is_error", func(t *testing.T) {
		_, err := StructuredToText(math.NaN())
		assert.Error(t, err)
	})
}

func TestCoerce(t *testing.T) {
	t.Run("coerces_known_fields", func(t *testing.T) {
		in := map[string]any{
			"asset_id":      "a-1",
			"balance_as_of": "2024-01-15T10:30:00Z",
			"asset_info":    `{"type":"checking"}`,
			"holdings":      map[string]any{"stocks": []any{"AAPL"}},
		}

		got, err := Coerce(in)
		require.NoError(t, err)

		assert.Equal(t, "a-1", got["asset_id"])
		ts, ok := got["balance_as_of"].(*time.Time)
		require.True(t, ok)
		assert.Equal(t, 2024, ts.Year())
		assert.Equal(t, datatypes.JSONMap{"type": "checking"}, got["asset_info"])
		holdings, ok := got["holdings"].(*string)
		require.True(t, ok)
		assert.JSONEq(t, `{"stocks":["AAPL"]}`, *holdings)

		// input untouched
		assert.Equal(t, "2024-01-15T10:30:00Z", in["balance_as_of"])
	})

	t.Run("malformed_timestamp_becomes_nil", func(t *testing.T) {
		got, err := Coerce(map[string]any{"creation_date": "yesterday"})
		require.NoError(t, err)

		v, ok := got["creation_date"]
		assert.True(t, ok)
		assert.Nil(t, v.(*time.Time))
	})

	t.Run("absent_fields_stay_absent", func(t *testing.T) {
		got, err := Coerce(map[string]any{"asset_id": "a-1"})
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("unserializable_holdings_is_error", func(t *testing.T) {
		_, err := Coerce(map[string]any{"holdings": map[string]any{"bad": math.Inf(1)}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"holdings"`)
	})
}
