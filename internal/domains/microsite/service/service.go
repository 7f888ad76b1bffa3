package service

import (
	"context"
	"fmt"

	"hallbook/config"
	"hallbook/infras/otel"
	hallModel "hallbook/internal/domains/hall/model"
	hallRepo "hallbook/internal/domains/hall/repository"
	"hallbook/internal/domains/microsite/model"
	"hallbook/internal/domains/microsite/model/dto"
	"hallbook/internal/domains/microsite/repository"
	"hallbook/shared"
	"hallbook/shared/cache"
	"hallbook/shared/constant"
	gDto "hallbook/shared/dto"
	"hallbook/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllSection = "microsite:gets"
	cacheCountSection  = "microsite:count"
)

type Microsite interface {
	Create(ctx context.Context, req dto.CreateSectionRequest) error
	GetByHall(ctx context.Context, hallID string, req gDto.QueryParams) (dto.GetSectionsResponse, error)
	Update(ctx context.Context, req dto.UpdateSectionRequest, id string) error
	Reorder(ctx context.Context, req dto.ReorderRequest, hallID string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Microsite
	hallRepo hallRepo.Hall
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.Microsite, hallRepo hallRepo.Hall, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Microsite {
	return &serviceImpl{
		repo:     repo,
		hallRepo: hallRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

// Create appends the section at the end of the hall's page when no
// position is given.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateSectionRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.hallRepo.Exist(ctx, shared.FilterByID(req.HallID, hallModel.FieldID, hallModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if hall exists")

		return fmt.Errorf("failed to check if hall exists: %w", err)
	}

	if !exist {
		return failure.BadRequestFromString("hall does not exist") // nolint:wrapcheck
	}

	section := req.ToModel(user)

	if req.Position == nil {
		total, err := s.repo.Count(ctx, shared.FilterByID(req.HallID, model.FieldHallID, model.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to count sections")

			return fmt.Errorf("failed to count sections: %w", err)
		}

		section.Position = total
	}

	if err = s.repo.Insert(ctx, section); err != nil {
		log.Error().Err(err).Msg("failed to create section")

		return fmt.Errorf("failed to create section: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) GetByHall(ctx context.Context, hallID string, req gDto.QueryParams) (res dto.GetSectionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByHall")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.SortBy == constant.Empty {
		req.SortBy = model.FieldPosition
		req.SortDir = "ASC"
	}

	filter := shared.FilterByID(hallID, model.FieldHallID, model.TableName)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllSection, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for sections")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count sections")

		return res, fmt.Errorf("failed to count sections: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get sections")

		return res, fmt.Errorf("failed to get sections: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save sections to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateSectionRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()

	if req == (dto.UpdateSectionRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if section exists")

		return fmt.Errorf("failed to check if section exists: %w", err)
	}

	if !exist {
		return failure.NotFound("section not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update section")

		return fmt.Errorf("failed to update section: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

// Reorder rewrites the hall's section positions to match the request
// order. Every section of the hall must appear exactly once.
func (s *serviceImpl) Reorder(ctx context.Context, req dto.ReorderRequest, hallID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reorder")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	total, err := s.repo.Count(ctx, shared.FilterByID(hallID, model.FieldHallID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to count sections")

		return fmt.Errorf("failed to count sections: %w", err)
	}

	if total != len(req.SectionIDs) {
		return failure.BadRequestFromString("section list does not match the hall's sections") // nolint:wrapcheck
	}

	seen := make(map[string]struct{}, len(req.SectionIDs))
	for _, sectionID := range req.SectionIDs {
		if _, dup := seen[sectionID]; dup {
			return failure.BadRequestFromString("duplicate section in reorder list") // nolint:wrapcheck
		}

		seen[sectionID] = struct{}{}
	}

	if err = s.repo.Reorder(ctx, hallID, req.SectionIDs, user); err != nil {
		log.Error().Err(err).Msg("failed to reorder sections")

		return fmt.Errorf("failed to reorder sections: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if section exists")

		return fmt.Errorf("failed to check if section exists: %w", err)
	}

	if !exist {
		return failure.NotFound("section not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete section")

		return fmt.Errorf("failed to delete section: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllSection)
		shared.InvalidateCaches(c, s.cache, cacheCountSection)
	}()
}
