package testutil_test

import (
	"testing"

	googleuuid "github.com/google/uuid"

	"wealthview/internal/errors"
	"wealthview/internal/models"
	"wealthview/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	var count int64
	if err := db.Table("assets").Count(&count).Error; err != nil {
		t.Errorf("table assets should exist after migration: %v", err)
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	asset := testutil.CreateTestAsset(t, db, testutil.WithType("Cash"), testutil.WithActive(true))
	if asset.WID == googleuuid.Nil {
		t.Fatal("asset should have a generated wid")
	}
	if asset.WID.Version() != 7 {
		t.Errorf("expected UUIDv7 wid, got version %d", asset.WID.Version())
	}
	if asset.AssetID == nil || *asset.AssetID == "" {
		t.Error("expected a generated asset_id")
	}
	if *asset.WealthAssetType != "Cash" {
		t.Errorf("expected type Cash, got %s", *asset.WealthAssetType)
	}

	assets := testutil.CreateTestAssets(t, db, 10)
	if len(assets) != 10 {
		t.Fatalf("expected 10 assets, got %d", len(assets))
	}

	var count int64
	db.Model(&models.Asset{}).Count(&count)
	if count != 11 {
		t.Errorf("expected 11 stored assets, got %d", count)
	}
}

func TestAssertAppError(t *testing.T) {
	testutil.AssertAppError(t, errors.ErrAssetNotFound, "ASSET_NOT_FOUND")
	testutil.AssertAppError(t, errors.Wrap(errors.ErrSeedFailed, errors.ErrInternalServer), "SEED_FAILED")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
