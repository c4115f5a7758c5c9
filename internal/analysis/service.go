package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Average sale price assumed per carbon credit when estimating earnings.
const defaultCreditValue = 1500

// Service provides analysis history and per-user statistics.
type Service struct {
	repo        Repository
	logger      *zap.Logger
	creditValue float64
}

// NewService creates an analysis service. creditValue <= 0 falls back to
// the default average credit price.
func NewService(repo Repository, logger *zap.Logger, creditValue float64) *Service {
	if creditValue <= 0 {
		creditValue = defaultCreditValue
	}
	return &Service{repo: repo, logger: logger, creditValue: creditValue}
}

// Save records an analysis result for a user.
func (s *Service) Save(ctx context.Context, req SaveRequest) (*Record, error) {
	if req.QuantityKg < 0 {
		return nil, fmt.Errorf("quantity must be non-negative, got %v", req.QuantityKg)
	}

	record := &Record{
		ID:               uuid.New(),
		UserID:           req.UserID,
		WasteType:        req.WasteType,
		QuantityKg:       req.QuantityKg,
		Confidence:       req.Confidence,
		Source:           req.Source,
		ProcessingMethod: req.ProcessingMethod,
		CO2SavedTons:     req.CO2SavedTons,
		CarbonCredits:    req.CarbonCredits,
		Location:         req.Location,
		Details:          req.Details,
		CreatedAt:        time.Now(),
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info("analysis result saved",
		zap.String("record_id", record.ID.String()),
		zap.String("user_id", record.UserID),
		zap.String("waste_type", record.WasteType))

	return record, nil
}

// UserStats aggregates a user's saved analyses.
func (s *Service) UserStats(ctx context.Context, userID string) (*Stats, error) {
	records, err := s.repo.ListByUser(ctx, userID, 0)
	if err != nil {
		return nil, err
	}

	stats := &Stats{}
	for _, r := range records {
		stats.TotalAnalyses++
		stats.TotalCO2Saved += r.CO2SavedTons
		stats.TotalCarbonCredits += r.CarbonCredits
		stats.TotalWasteProcessed += r.QuantityKg
	}
	stats.EstimatedEarnings = stats.TotalCarbonCredits * s.creditValue
	return stats, nil
}

// RecentActivity returns a user's most recent analyses.
func (s *Service) RecentActivity(ctx context.Context, userID string, limit int) ([]Record, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	return s.repo.ListByUser(ctx, userID, limit)
}

// PlatformTotals reports the number of analyses stored platform-wide.
func (s *Service) PlatformTotals(ctx context.Context) (int64, error) {
	return s.repo.CountAll(ctx)
}
