package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/gorm"

	"wealthview/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// AssetOption customizes an asset before CreateTestAsset inserts it.
type AssetOption func(*models.Asset)

// WithAssetID sets the natural identifier.
func WithAssetID(id string) AssetOption {
	return func(a *models.Asset) { a.AssetID = &id }
}

// WithType sets wealth_asset_type.
func WithType(assetType string) AssetOption {
	return func(a *models.Asset) { a.WealthAssetType = &assetType }
}

// WithCategory sets primary_asset_category.
func WithCategory(category string) AssetOption {
	return func(a *models.Asset) { a.PrimaryAssetCategory = &category }
}

// WithActive sets is_active.
func WithActive(active bool) AssetOption {
	return func(a *models.Asset) { a.IsActive = &active }
}

// CreateTestAsset inserts an asset with a unique asset_id and nickname.
func CreateTestAsset(t *testing.T, db *gorm.DB, opts ...AssetOption) *models.Asset {
	t.Helper()

	n := nextID()
	assetID := fmt.Sprintf("test-asset-%d", n)
	nickname := fmt.Sprintf("Asset %d", n)
	balance := float64(n) * 100
	asset := &models.Asset{
		AssetID:        &assetID,
		Nickname:       &nickname,
		BalanceCurrent: &balance,
	}
	for _, opt := range opts {
		opt(asset)
	}

	if err := db.Create(asset).Error; err != nil {
		t.Fatalf("failed to create test asset: %v", err)
	}
	return asset
}

// CreateTestAssets inserts n assets. Even indexes are Cash and the rest
// Investment; the first eight are active.
func CreateTestAssets(t *testing.T, db *gorm.DB, n int) []*models.Asset {
	t.Helper()

	assets := make([]*models.Asset, 0, n)
	for i := 0; i < n; i++ {
		assetType := "Investment"
		if i%2 == 0 {
			assetType = "Cash"
		}
		assets = append(assets, CreateTestAsset(t, db,
			WithType(assetType),
			WithCategory(assetType),
			WithActive(i < 8),
		))
	}
	return assets
}
