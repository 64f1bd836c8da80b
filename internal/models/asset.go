package models

import (
	"time"

	googleuuid "github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"wealthview/internal/uuid"
)

// Asset is one financial holding (bank account, brokerage, retirement plan, ...).
// Apart from WID every column is optional; nil means the source never supplied it.
type Asset struct {
	WID googleuuid.UUID `gorm:"column:wid;type:uuid;primaryKey" json:"wid"`

	// Identification
	AssetID          *string `gorm:"size:255;index" json:"asset_id"`
	CognitoID        *string `gorm:"size:255;index" json:"cognito_id"`
	Nickname         *string `gorm:"size:255" json:"nickname"`
	AssetName        *string `gorm:"size:255" json:"asset_name"`
	AssetDescription *string `gorm:"type:text" json:"asset_description"`

	// Classification
	AssetInfoType        *string `gorm:"size:100" json:"asset_info_type"`
	WealthAssetType      *string `gorm:"size:100;index" json:"wealth_asset_type"`
	PrimaryAssetCategory *string `gorm:"size:100;index" json:"primary_asset_category"`

	AssetInfo datatypes.JSONMap `json:"asset_info"`

	// Balance
	BalanceCurrent         *float64   `json:"balance_current"`
	BalanceCostBasis       *float64   `json:"balance_cost_basis"`
	BalanceQuantityCurrent *float64   `json:"balance_quantity_current"`
	BalanceAsOf            *time.Time `json:"balance_as_of"`
	BalanceFrom            *string    `gorm:"size:100" json:"balance_from"`
	BalanceCostFrom        *string    `gorm:"size:100" json:"balance_cost_from"`
	BalancePrice           *float64   `json:"balance_price"`
	BalancePriceFrom       *string    `gorm:"size:100" json:"balance_price_from"`

	// Status flags
	IsActive          *bool `gorm:"index" json:"is_active"`
	IsAsset           *bool `json:"is_asset"`
	IsFavorite        *bool `json:"is_favorite"`
	IncludeInNetWorth *bool `json:"include_in_net_worth"`
	HasInvestment     *bool `json:"has_investment"`
	IsLinkedVendor    *bool `json:"is_linked_vendor"`

	// Institution
	InstitutionID     *int64  `json:"institution_id"`
	InstitutionName   *string `gorm:"size:255" json:"institution_name"`
	UserInstitutionID *string `gorm:"size:255" json:"user_institution_id"`

	// Integration
	Integration          *string `gorm:"size:255" json:"integration"`
	IntegrationAccountID *string `gorm:"size:255" json:"integration_account_id"`

	// Ownership
	AssetOwnerName         *string `gorm:"size:255" json:"asset_owner_name"`
	Ownership              *string `gorm:"type:text" json:"ownership"`
	BeneficiaryComposition *string `gorm:"type:text" json:"beneficiary_composition"`

	// Vendor
	VendorAccountType  *string `gorm:"size:100" json:"vendor_account_type"`
	VendorContainer    *string `gorm:"size:100" json:"vendor_container"`
	VendorResponse     *string `gorm:"type:text" json:"vendor_response"`
	VendorResponseType *string `gorm:"size:100" json:"vendor_response_type"`

	// Additional metadata. Holdings is a text column that historically
	// carries a JSON document.
	AssetMask             *string    `gorm:"size:50" json:"asset_mask"`
	CurrencyCode          *string    `gorm:"size:10" json:"currency_code"`
	DescriptionEstatePlan *string    `gorm:"type:text" json:"description_estate_plan"`
	Holdings              *string    `gorm:"type:text" json:"holdings"`
	LogoName              *string    `gorm:"size:255" json:"logo_name"`
	Note                  *string    `gorm:"type:text" json:"note"`
	NoteDate              *time.Time `json:"note_date"`
	Status                *string    `gorm:"size:100" json:"status"`
	StatusCode            *string    `gorm:"size:50" json:"status_code"`

	// Source-system timestamps
	CreationDate      *time.Time `json:"creation_date"`
	ModificationDate  *time.Time `json:"modification_date"`
	LastUpdate        *time.Time `json:"last_update"`
	LastUpdateAttempt *time.Time `json:"last_update_attempt"`
	NextUpdate        *time.Time `json:"next_update"`
	DeactivateBy      *time.Time `json:"deactivate_by"`
}

// TableName pins the table name used by the SQL migrations.
func (Asset) TableName() string { return "assets" }

// BeforeCreate hook generates a UUIDv7 for assets inserted without a wid.
func (a *Asset) BeforeCreate(tx *gorm.DB) error {
	if a.WID == googleuuid.Nil {
		a.WID = uuid.New()
	}
	return nil
}
