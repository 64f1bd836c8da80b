package seed

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"wealthview/internal/models"
	"wealthview/internal/uuid"
)

func buildFrom(t *testing.T, record map[string]any) (*models.Asset, error) {
	t.Helper()
	coerced, err := Coerce(NormalizeKeys(record))
	require.NoError(t, err)
	return Build(coerced, uuid.New())
}

func TestBuild(t *testing.T) {
	t.Run("full_record", func(t *testing.T) {
		wid := uuid.New()
		coerced, err := Coerce(NormalizeKeys(map[string]any{
			"assetId":              "a-1",
			"nickname":             "Main checking",
			"wealthAssetType":      "Cash",
			"primaryAssetCategory": "Cash",
			"assetInfo":            `{"type":"checking"}`,
			"balanceCurrent":       json.Number("1000.50"),
			"balanceAsOf":          "2024-01-15T10:30:00Z",
			"isActive":             true,
			"institutionId":        json.Number("101"),
			"holdings":             map[string]any{"stocks": []any{"AAPL"}},
			"wid":                  "ignored",
		}))
		require.NoError(t, err)

		asset, err := Build(coerced, wid)
		require.NoError(t, err)

		assert.Equal(t, wid, asset.WID)
		require.NotNil(t, asset.AssetID)
		assert.Equal(t, "a-1", *asset.AssetID)
		assert.Equal(t, "Main checking", *asset.Nickname)
		assert.Equal(t, "Cash", *asset.WealthAssetType)
		assert.Equal(t, datatypes.JSONMap{"type": "checking"}, asset.AssetInfo)
		assert.Equal(t, 1000.50, *asset.BalanceCurrent)
		assert.True(t, time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC).Equal(*asset.BalanceAsOf))
		assert.True(t, *asset.IsActive)
		assert.Equal(t, int64(101), *asset.InstitutionID)
		assert.JSONEq(t, `{"stocks":["AAPL"]}`, *asset.Holdings)
	})

	t.Run("missing_fields_stay_nil", func(t *testing.T) {
		asset, err := buildFrom(t, map[string]any{"assetId": "a-2"})
		require.NoError(t, err)

		assert.Nil(t, asset.Nickname)
		assert.Nil(t, asset.BalanceCurrent)
		assert.Nil(t, asset.IsActive)
		assert.Nil(t, asset.InstitutionID)
		assert.Nil(t, asset.AssetInfo)
		assert.Nil(t, asset.CreationDate)
	})

	t.Run("empty_record_builds", func(t *testing.T) {
		asset, err := buildFrom(t, map[string]any{})
		require.NoError(t, err)
		assert.Nil(t, asset.AssetID)
	})

	t.Run("malformed_timestamp_is_nil", func(t *testing.T) {
		asset, err := buildFrom(t, map[string]any{"assetId": "a-3", "creationDate": "garbage"})
		require.NoError(t, err)
		assert.Nil(t, asset.CreationDate)
	})

	t.Run("integral_float_institution_id", func(t *testing.T) {
		asset, err := buildFrom(t, map[string]any{"institutionId": 7.0})
		require.NoError(t, err)
		assert.Equal(t, int64(7), *asset.InstitutionID)
	})

	t.Run("type_mismatch_names_field", func(t *testing.T) {
		tests := []struct {
			name   string
			record map[string]any
			field  string
		}{
			{"string_for_number", map[string]any{"balanceCurrent": "lots"}, "balance_current"},
			{"number_for_string", map[string]any{"nickname": 12.0}, "nickname"},
			{"string_for_bool", map[string]any{"isActive": "yes"}, "is_active"},
			{"fractional_integer", map[string]any{"institutionId": 1.5}, "institution_id"},
			{"non_string_asset_id", map[string]any{"assetId": 42.0}, "asset_id"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := buildFrom(t, tt.record)
				require.Error(t, err)
				assert.Contains(t, err.Error(), `"`+tt.field+`"`)
			})
		}
	})
}
