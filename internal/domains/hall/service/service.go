package service

import (
	"context"
	"fmt"
	"time"

	"hallbook/config"
	"hallbook/infras/otel"
	"hallbook/internal/domains/booking/calendar"
	bookingModel "hallbook/internal/domains/booking/model"
	bookingRepo "hallbook/internal/domains/booking/repository"
	"hallbook/internal/domains/hall/model"
	"hallbook/internal/domains/hall/model/dto"
	"hallbook/internal/domains/hall/repository"
	organizationModel "hallbook/internal/domains/organization/model"
	organizationRepo "hallbook/internal/domains/organization/repository"
	"hallbook/shared"
	"hallbook/shared/cache"
	"hallbook/shared/constant"
	gDto "hallbook/shared/dto"
	"hallbook/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetHall    = "hall:get"
	cacheGetAllHall = "hall:gets"
	cacheCountHall  = "hall:count"

	maxAvailabilityRangeDays = 366
)

type Hall interface {
	Create(ctx context.Context, req dto.CreateHallRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetHallsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.HallResponse, error)
	Update(ctx context.Context, req dto.UpdateHallRequest, id string) error
	Delete(ctx context.Context, id string) error
	GetAvailability(ctx context.Context, id, from, to string) (dto.GetAvailabilityResponse, error)
}

type serviceImpl struct {
	repo        repository.Hall
	orgRepo     organizationRepo.Organization
	bookingRepo bookingRepo.Booking
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(repo repository.Hall, orgRepo organizationRepo.Organization, bookingRepo bookingRepo.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Hall {
	return &serviceImpl{
		repo:        repo,
		orgRepo:     orgRepo,
		bookingRepo: bookingRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateHallRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	orgExists, err := s.orgRepo.Exist(ctx, shared.FilterByID(req.OrganizationID, organizationModel.FieldID, organizationModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if organization exists")

		return fmt.Errorf("failed to check if organization exists: %w", err)
	}

	if !orgExists {
		return failure.BadRequestFromString("organization does not exist") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create hall")

		return fmt.Errorf("failed to create hall: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllHall)
		shared.InvalidateCaches(c, s.cache, cacheCountHall)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetHallsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllHall, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for halls")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count halls")

		return res, fmt.Errorf("failed to count halls: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get halls")

		return res, fmt.Errorf("failed to get halls: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save halls to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountHall, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count halls")

		return res, fmt.Errorf("failed to count halls: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hall count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.HallResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetHall, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hall")

		return res, nil
	}

	hall, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hall")

		return res, fmt.Errorf("failed to get hall: %w", err)
	}

	if hall.ID == constant.Empty {
		return res, failure.NotFound("hall not found") // nolint:wrapcheck
	}

	res.FromModel(hall)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hall to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateHallRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()

	if req == (dto.UpdateHallRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if hall exists")

		return fmt.Errorf("failed to check if hall exists: %w", err)
	}

	if !exist {
		return failure.NotFound("hall not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update hall")

		return fmt.Errorf("failed to update hall: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetHall, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete hall from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllHall)
		shared.InvalidateCaches(c, s.cache, cacheCountHall)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if hall exists")

		return fmt.Errorf("failed to check if hall exists: %w", err)
	}

	if !exist {
		return failure.NotFound("hall not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete hall")

		return fmt.Errorf("failed to delete hall: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetHall, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete hall from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllHall)
		shared.InvalidateCaches(c, s.cache, cacheCountHall)
	}()

	return nil
}

// GetAvailability classifies every date in [from, to] for the hall.
// Only confirmed and active bookings block a slot.
func (s *serviceImpl) GetAvailability(ctx context.Context, id, from, to string) (res dto.GetAvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	fromDate, err := time.Parse(constant.DateOnlyFormat, from)
	if err != nil {
		return res, failure.BadRequestFromString("invalid from date, expected YYYY-MM-DD") // nolint:wrapcheck
	}

	toDate, err := time.Parse(constant.DateOnlyFormat, to)
	if err != nil {
		return res, failure.BadRequestFromString("invalid to date, expected YYYY-MM-DD") // nolint:wrapcheck
	}

	if toDate.Before(fromDate) {
		return res, failure.BadRequestFromString("to date must not precede from date") // nolint:wrapcheck
	}

	if toDate.Sub(fromDate) > maxAvailabilityRangeDays*24*time.Hour {
		return res, failure.BadRequestFromString("availability range too large") // nolint:wrapcheck
	}

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if hall exists")

		return res, fmt.Errorf("failed to check if hall exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("hall not found") // nolint:wrapcheck
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    bookingModel.FieldHallID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				ArgName:  "event_date_from",
				Field:    bookingModel.FieldEventDate,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    fromDate,
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				ArgName:  "event_date_to",
				Field:    bookingModel.FieldEventDate,
				Operator: gDto.FilterOperatorLessEq,
				Value:    toDate,
				Table:    bookingModel.TableName,
			},
		},
	}

	bookings, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for availability")

		return res, fmt.Errorf("failed to get bookings for availability: %w", err)
	}

	days := calendar.ClassifyRange(bookings, fromDate, toDate)

	res.HallID = id
	res.From = from
	res.To = to
	res.Days = make([]dto.DayAvailability, len(days))

	for i, day := range days {
		res.Days[i] = dto.DayAvailability{Date: day.Date, Status: day.Status}
	}

	return res, nil
}
