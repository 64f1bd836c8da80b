package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "wealthview/internal/errors"
	"wealthview/internal/logger"
	"wealthview/internal/metrics"
	"wealthview/internal/models"
	"wealthview/internal/seed"
	"wealthview/internal/uuid"
)

// DefaultSeedBatchSize is used when SeedConfig.BatchSize is not positive.
const DefaultSeedBatchSize = 100

// SeedConfig configures the seed pipeline.
type SeedConfig struct {
	DefaultLocation string
	BatchSize       int
	S3              seed.S3Options
}

// seedService runs the seed pipeline against the asset table.
type seedService struct {
	db      *gorm.DB
	cfg     SeedConfig
	metrics *metrics.Metrics
	open    func(ctx context.Context, location string, opts seed.S3Options) (seed.Source, error)
}

// NewSeedService creates a new SeedServicer. m may be nil.
func NewSeedService(db *gorm.DB, cfg SeedConfig, m *metrics.Metrics) SeedServicer {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultSeedBatchSize
	}
	return &seedService{db: db, cfg: cfg, metrics: m, open: seed.OpenSource}
}

// SeedFromSource loads records from location (or the configured default)
// and seeds them. Like Seed, it ignores cancellation of ctx.
func (s *seedService) SeedFromSource(ctx context.Context, location string) (*seed.Result, error) {
	ctx = context.WithoutCancel(ctx)
	if location == "" {
		location = s.cfg.DefaultLocation
	}

	src, err := s.open(ctx, location, s.cfg.S3)
	if err != nil {
		s.metrics.ObserveSeedRun(0, 0, 0, err)
		return nil, apperrors.Wrap(apperrors.ErrSeedFailed, err)
	}

	records, err := src.Load(ctx)
	if err != nil {
		s.metrics.ObserveSeedRun(0, 0, 0, err)
		if errors.Is(err, seed.ErrSourceNotFound) {
			logger.Get().Warnw("seed source not found", "location", src.Location())
			return nil, apperrors.WithMessage(apperrors.Wrap(apperrors.ErrSeedSourceNotFound, err),
				"Seed file not found: "+src.Location())
		}
		logger.Get().Errorw("failed to load seed source", "location", src.Location(), "error", err)
		return nil, apperrors.Wrap(apperrors.ErrSeedFailed, err)
	}

	logger.Get().Infow("loaded seed source", "location", src.Location(), "records", len(records))
	return s.Seed(ctx, records)
}

// Seed processes records in order. Each record ends up inserted, skipped or
// failed; a failure never stops the batch. Staged assets are committed in
// one transaction at the end. A run always covers the whole batch, so
// cancellation of ctx is ignored; its values are kept.
func (s *seedService) Seed(ctx context.Context, records []map[string]any) (*seed.Result, error) {
	ctx = context.WithoutCancel(ctx)
	start := time.Now()
	result := seed.NewResult()
	staged := make([]*models.Asset, 0, len(records))

	for i, record := range records {
		outcome := s.process(ctx, record)
		if outcome.Kind == seed.OutcomeFailed {
			logger.Get().Warnw("seed record failed", "index", i, "asset_id", outcome.AssetID, "error", outcome.Err)
		}
		if outcome.Kind == seed.OutcomeInserted {
			staged = append(staged, outcome.Asset)
		}
		result.Add(outcome)
	}

	if len(staged) > 0 {
		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return tx.CreateInBatches(staged, s.cfg.BatchSize).Error
		})
		if err != nil {
			s.metrics.ObserveSeedRun(0, 0, 0, err)
			logger.Get().Errorw("seed commit failed", "staged", len(staged), "error", err)
			return nil, apperrors.Wrap(apperrors.ErrSeedCommitFailed, err)
		}
	}

	s.metrics.ObserveSeedRun(result.Inserted, result.Skipped, len(result.Errors), nil)
	logger.Get().Infow("seed run finished",
		"records", len(records),
		"inserted", result.Inserted,
		"skipped", result.Skipped,
		"errors", len(result.Errors),
		"duration", time.Since(start),
	)
	return result, nil
}

// process runs one record through normalize, duplicate check, coerce and
// build.
func (s *seedService) process(ctx context.Context, record map[string]any) (outcome seed.Outcome) {
	var assetID string
	defer func() {
		if r := recover(); r != nil {
			outcome = seed.Failed(assetID, fmt.Errorf("panic: %v", r))
		}
	}()

	normalized := seed.NormalizeKeys(record)
	assetID = seed.NaturalID(normalized)

	if assetID != "" {
		exists, err := s.exists(ctx, assetID)
		if err != nil {
			return seed.Failed(assetID, err)
		}
		if exists {
			return seed.Skipped(assetID)
		}
	}

	coerced, err := seed.Coerce(normalized)
	if err != nil {
		return seed.Failed(assetID, err)
	}

	asset, err := seed.Build(coerced, uuid.New())
	if err != nil {
		return seed.Failed(assetID, err)
	}
	return seed.Inserted(asset)
}

// exists reports whether an asset with the natural identifier is already
// committed.
func (s *seedService) exists(ctx context.Context, assetID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Asset{}).
		Where("asset_id = ?", assetID).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("checking existing asset: %w", err)
	}
	return count > 0, nil
}
