// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/MKhiriev/go-seltzer-tracker/internal/logger"
	"github.com/MKhiriev/go-seltzer-tracker/internal/store"
	"github.com/MKhiriev/go-seltzer-tracker/models"
)

// statsWindow is how far back "this week" reaches.
const statsWindow = 7 * 24 * time.Hour

type statsService struct {
	entryRepository store.EntryRepository

	now func() time.Time

	logger *logger.Logger
}

// NewStatsService constructs a StatsService over entryRepository.
func NewStatsService(entryRepository store.EntryRepository, logger *logger.Logger) StatsService {
	return &statsService{
		entryRepository: entryRepository,
		now:             time.Now,
		logger:          logger,
	}
}

// Stats summarises the owner's entries. The average rating is rounded to
// one decimal place and is 0 without entries; the top brand is the head of
// the distribution or models.NoTopBrand.
func (s *statsService) Stats(ctx context.Context, userID string) (models.Stats, error) {
	log := logger.FromContext(ctx)

	aggregate, err := s.entryRepository.EntryStats(ctx, userID, s.now().UTC().Add(-statsWindow))
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("aggregating entries failed")
		return models.Stats{}, fmt.Errorf("aggregating entries failed: %w", err)
	}

	distribution, err := s.entryRepository.BrandDistribution(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("brand distribution failed")
		return models.Stats{}, fmt.Errorf("brand distribution failed: %w", err)
	}
	if distribution == nil {
		distribution = []models.BrandCount{}
	}

	stats := models.Stats{
		TotalSeltzers:     aggregate.Total,
		ThisWeek:          aggregate.CreatedSince,
		TopBrand:          models.NoTopBrand,
		BrandDistribution: distribution,
	}
	if aggregate.Total > 0 {
		stats.AvgRating = roundRating(aggregate.RatingSum / float64(aggregate.Total))
	}
	if len(distribution) > 0 {
		stats.TopBrand = distribution[0].Brand
	}

	return stats, nil
}

func roundRating(avg float64) float64 {
	return math.Round(avg*10) / 10
}
