package services

import (
	"context"

	googleuuid "github.com/google/uuid"

	"wealthview/internal/models"
	"wealthview/internal/pagination"
	"wealthview/internal/seed"
)

// AssetFilter holds optional equality filters for listing assets. Nil fields
// are not applied; set fields are combined with AND.
type AssetFilter struct {
	WealthAssetType      *string
	PrimaryAssetCategory *string
	IsActive             *bool
}

// AssetServicer defines the read side of the asset catalog.
type AssetServicer interface {
	ListAssets(ctx context.Context, filter AssetFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Asset], error)
	GetAssetByWID(ctx context.Context, wid googleuuid.UUID) (*models.Asset, error)
}

// SeedServicer defines the seed ingestion pipeline.
type SeedServicer interface {
	// Seed processes one batch of raw external records. The run always
	// completes; cancellation of ctx does not cut it short.
	Seed(ctx context.Context, records []map[string]any) (*seed.Result, error)
	// SeedFromSource loads a batch from location and seeds it. An empty
	// location selects the configured default.
	SeedFromSource(ctx context.Context, location string) (*seed.Result, error)
}
