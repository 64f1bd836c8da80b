package seed

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	googleuuid "github.com/google/uuid"
	"gorm.io/datatypes"

	"wealthview/internal/models"
)

// Build assembles an Asset from a normalized, coerced record. The wid
// supplied by the caller is the asset's identity; any "wid" in the record is
// ignored. Missing or null fields stay nil. A value of the wrong JSON kind
// for its column is an error naming the field.
func Build(fields map[string]any, wid googleuuid.UUID) (*models.Asset, error) {
	r := &fieldReader{fields: fields}

	asset := &models.Asset{
		WID: wid,

		AssetID:          r.str("asset_id"),
		CognitoID:        r.str("cognito_id"),
		Nickname:         r.str("nickname"),
		AssetName:        r.str("asset_name"),
		AssetDescription: r.str("asset_description"),

		AssetInfoType:        r.str("asset_info_type"),
		WealthAssetType:      r.str("wealth_asset_type"),
		PrimaryAssetCategory: r.str("primary_asset_category"),

		AssetInfo: r.jsonMap(metadataField),

		BalanceCurrent:         r.float("balance_current"),
		BalanceCostBasis:       r.float("balance_cost_basis"),
		BalanceQuantityCurrent: r.float("balance_quantity_current"),
		BalanceAsOf:            r.time("balance_as_of"),
		BalanceFrom:            r.str("balance_from"),
		BalanceCostFrom:        r.str("balance_cost_from"),
		BalancePrice:           r.float("balance_price"),
		BalancePriceFrom:       r.str("balance_price_from"),

		IsActive:          r.boolean("is_active"),
		IsAsset:           r.boolean("is_asset"),
		IsFavorite:        r.boolean("is_favorite"),
		IncludeInNetWorth: r.boolean("include_in_net_worth"),
		HasInvestment:     r.boolean("has_investment"),
		IsLinkedVendor:    r.boolean("is_linked_vendor"),

		InstitutionID:     r.integer("institution_id"),
		InstitutionName:   r.str("institution_name"),
		UserInstitutionID: r.str("user_institution_id"),

		Integration:          r.str("integration"),
		IntegrationAccountID: r.str("integration_account_id"),

		AssetOwnerName:         r.str("asset_owner_name"),
		Ownership:              r.str("ownership"),
		BeneficiaryComposition: r.str("beneficiary_composition"),

		VendorAccountType:  r.str("vendor_account_type"),
		VendorContainer:    r.str("vendor_container"),
		VendorResponse:     r.str("vendor_response"),
		VendorResponseType: r.str("vendor_response_type"),

		AssetMask:             r.str("asset_mask"),
		CurrencyCode:          r.str("currency_code"),
		DescriptionEstatePlan: r.str("description_estate_plan"),
		Holdings:              r.str(holdingsField),
		LogoName:              r.str("logo_name"),
		Note:                  r.str("note"),
		NoteDate:              r.time("note_date"),
		Status:                r.str("status"),
		StatusCode:            r.str("status_code"),

		CreationDate:      r.time("creation_date"),
		ModificationDate:  r.time("modification_date"),
		LastUpdate:        r.time("last_update"),
		LastUpdateAttempt: r.time("last_update_attempt"),
		NextUpdate:        r.time("next_update"),
		DeactivateBy:      r.time("deactivate_by"),
	}

	if r.err != nil {
		return nil, r.err
	}
	return asset, nil
}

// fieldReader pulls typed values out of a record and remembers the first
// type mismatch.
type fieldReader struct {
	fields map[string]any
	err    error
}

func (r *fieldReader) fail(key, expected string, got any) {
	if r.err == nil {
		r.err = fmt.Errorf("field %q: expected %s, got %T", key, expected, got)
	}
}

func (r *fieldReader) str(key string) *string {
	switch v := r.fields[key].(type) {
	case nil:
		return nil
	case string:
		return &v
	case *string:
		return v
	default:
		r.fail(key, "string", v)
		return nil
	}
}

func (r *fieldReader) float(key string) *float64 {
	raw := r.fields[key]
	if raw == nil {
		return nil
	}
	f, ok := toFloat(raw)
	if !ok {
		r.fail(key, "number", raw)
		return nil
	}
	return &f
}

func (r *fieldReader) integer(key string) *int64 {
	raw := r.fields[key]
	if raw == nil {
		return nil
	}
	if n, ok := raw.(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			return &i
		}
	}
	f, ok := toFloat(raw)
	if !ok || f != math.Trunc(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		r.fail(key, "integer", raw)
		return nil
	}
	i := int64(f)
	return &i
}

func (r *fieldReader) boolean(key string) *bool {
	switch v := r.fields[key].(type) {
	case nil:
		return nil
	case bool:
		return &v
	default:
		r.fail(key, "boolean", v)
		return nil
	}
}

// time reads a field already coerced by ParseTimestamp.
func (r *fieldReader) time(key string) *time.Time {
	switch v := r.fields[key].(type) {
	case nil:
		return nil
	case *time.Time:
		return v
	case time.Time:
		return &v
	default:
		r.fail(key, "timestamp", v)
		return nil
	}
}

// jsonMap reads a field already coerced by ParseMetadata.
func (r *fieldReader) jsonMap(key string) datatypes.JSONMap {
	switch v := r.fields[key].(type) {
	case nil:
		return nil
	case datatypes.JSONMap:
		return v
	case map[string]any:
		return datatypes.JSONMap(v)
	default:
		r.fail(key, "object", v)
		return nil
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
