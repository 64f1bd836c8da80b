// Package seed turns externally sourced asset records into Asset models.
//
// Records arrive as camelCase JSON objects. They are re-keyed to the
// snake_case column names (NormalizeKeys), their timestamp and metadata
// fields are coerced (Coerce), and the result is assembled into a
// models.Asset (Build). Persistence and the per-batch loop live in the
// services package.
package seed

// NaturalIDField is the normalized name of the external natural identifier
// used to detect already-seeded assets.
const NaturalIDField = "asset_id"

// KeyRenames maps external record keys to asset column names. Keys missing
// from the table pass through NormalizeKeys unchanged.
var KeyRenames = map[string]string{
	"assetDescription":       "asset_description",
	"assetId":                "asset_id",
	"assetInfo":              "asset_info",
	"assetInfoType":          "asset_info_type",
	"assetMask":              "asset_mask",
	"assetName":              "asset_name",
	"assetOwnerName":         "asset_owner_name",
	"balanceAsOf":            "balance_as_of",
	"balanceCostBasis":       "balance_cost_basis",
	"balanceCostFrom":        "balance_cost_from",
	"balanceCurrent":         "balance_current",
	"balanceFrom":            "balance_from",
	"balancePrice":           "balance_price",
	"balancePriceFrom":       "balance_price_from",
	"balanceQuantityCurrent": "balance_quantity_current",
	"beneficiaryComposition": "beneficiary_composition",
	"cognitoId":              "cognito_id",
	"creationDate":           "creation_date",
	"currencyCode":           "currency_code",
	"deactivateBy":           "deactivate_by",
	"descriptionEstatePlan":  "description_estate_plan",
	"hasInvestment":          "has_investment",
	"holdings":               "holdings",
	"includeInNetWorth":      "include_in_net_worth",
	"institutionId":          "institution_id",
	"institutionName":        "institution_name",
	"integration":            "integration",
	"integrationAccountId":   "integration_account_id",
	"isActive":               "is_active",
	"isAsset":                "is_asset",
	"isFavorite":             "is_favorite",
	"isLinkedVendor":         "is_linked_vendor",
	"lastUpdate":             "last_update",
	"lastUpdateAttempt":      "last_update_attempt",
	"logoName":               "logo_name",
	"modificationDate":       "modification_date",
	"nextUpdate":             "next_update",
	"nickname":               "nickname",
	"note":                   "note",
	"noteDate":               "note_date",
	"ownership":              "ownership",
	"primaryAssetCategory":   "primary_asset_category",
	"status":                 "status",
	"statusCode":             "status_code",
	"userInstitutionId":      "user_institution_id",
	"vendorAccountType":      "vendor_account_type",
	"vendorContainer":        "vendor_container",
	"vendorResponse":         "vendor_response",
	"vendorResponseType":     "vendor_response_type",
	"wealthAssetType":        "wealth_asset_type",
	"wid":                    "wid",
}

// TimestampFields lists the normalized keys coerced with ParseTimestamp.
var TimestampFields = []string{
	"balance_as_of",
	"note_date",
	"creation_date",
	"modification_date",
	"last_update",
	"last_update_attempt",
	"next_update",
	"deactivate_by",
}

// NormalizeKeys returns a copy of record re-keyed through KeyRenames.
// Values are not inspected. When a record carries both the external and the
// internal spelling of a key, the external one wins.
func NormalizeKeys(record map[string]any) map[string]any {
	normalized := make(map[string]any, len(record))
	for key, value := range record {
		if _, ok := KeyRenames[key]; !ok {
			normalized[key] = value
		}
	}
	for key, value := range record {
		if renamed, ok := KeyRenames[key]; ok {
			normalized[renamed] = value
		}
	}
	return normalized
}

// NaturalID returns the record's natural identifier from a normalized
// record, or "" when it is absent, null, empty or not a string.
func NaturalID(normalized map[string]any) string {
	id, _ := normalized[NaturalIDField].(string)
	return id
}
