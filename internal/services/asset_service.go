package services

import (
	"context"
	"errors"

	googleuuid "github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "wealthview/internal/errors"
	"wealthview/internal/models"
	"wealthview/internal/pagination"
)

// assetService handles asset queries.
type assetService struct {
	db *gorm.DB
}

// NewAssetService creates a new AssetServicer.
func NewAssetService(db *gorm.DB) AssetServicer {
	return &assetService{db: db}
}

// ListAssets returns one page of assets matching filter, ordered by wid.
func (s *assetService) ListAssets(ctx context.Context, filter AssetFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Asset], error) {
	page.Defaults()

	query := s.db.WithContext(ctx).Model(&models.Asset{})
	if filter.WealthAssetType != nil {
		query = query.Where("wealth_asset_type = ?", *filter.WealthAssetType)
	}
	if filter.PrimaryAssetCategory != nil {
		query = query.Where("primary_asset_category = ?", *filter.PrimaryAssetCategory)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var assets []models.Asset
	if err := query.Order("wid").Scopes(pagination.Paginate(page)).Find(&assets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resp := pagination.NewPageResponse(assets, page.Page, page.PageSize, total)
	return &resp, nil
}

// GetAssetByWID retrieves a single asset by its wid.
func (s *assetService) GetAssetByWID(ctx context.Context, wid googleuuid.UUID) (*models.Asset, error) {
	var asset models.Asset
	if err := s.db.WithContext(ctx).Where("wid = ?", wid).First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &asset, nil
}
