package service

import (
	"context"
	"fmt"

	"hallbook/config"
	"hallbook/infras/otel"
	"hallbook/internal/domains/stats/model"
	"hallbook/internal/domains/stats/model/dto"
	"hallbook/internal/domains/stats/repository"
	"hallbook/shared"
	"hallbook/shared/cache"
	"hallbook/shared/constant"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	cacheDashboard = "stats:dashboard"

	defaultRevenueMonths = 12
)

type Stats interface {
	Dashboard(ctx context.Context) (dto.DashboardResponse, error)
}

type serviceImpl struct {
	repo  repository.Stats
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Stats, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Stats {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Dashboard loads the three aggregates in parallel.
func (s *serviceImpl) Dashboard(ctx context.Context) (res dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheDashboard)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for dashboard stats")

		return res, nil
	}

	var (
		statuses []model.StatusCount
		revenue  []model.MonthlyRevenue
		upcoming int
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		models, err := s.repo.BookingsByStatus(gctx)
		if err != nil {
			return err
		}

		statuses = models

		return nil
	})

	g.Go(func() error {
		models, err := s.repo.RevenueByMonth(gctx, defaultRevenueMonths)
		if err != nil {
			return err
		}

		revenue = models

		return nil
	})

	g.Go(func() error {
		count, err := s.repo.UpcomingEventsCount(gctx)
		if err != nil {
			return err
		}

		upcoming = count

		return nil
	})

	if err = g.Wait(); err != nil {
		log.Error().Err(err).Msg("failed to load dashboard stats")

		return res, fmt.Errorf("failed to load dashboard stats: %w", err)
	}

	res.FromModels(statuses, revenue, upcoming)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save dashboard stats to cache")
		}
	}()

	return res, nil
}
