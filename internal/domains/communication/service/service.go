package service

import (
	"context"
	"fmt"

	"hallbook/config"
	"hallbook/infras/otel"
	bookingModel "hallbook/internal/domains/booking/model"
	bookingRepo "hallbook/internal/domains/booking/repository"
	"hallbook/internal/domains/communication/model"
	"hallbook/internal/domains/communication/model/dto"
	"hallbook/internal/domains/communication/repository"
	"hallbook/shared"
	"hallbook/shared/cache"
	"hallbook/shared/constant"
	gDto "hallbook/shared/dto"
	"hallbook/shared/failure"
	"hallbook/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllCommunication = "communication:gets"
	cacheCountCommunication  = "communication:count"
)

// Communication is the booking's append-only contact log. Entries are
// never updated or removed.
type Communication interface {
	Create(ctx context.Context, req dto.CreateCommunicationRequest) error
	GetByBooking(ctx context.Context, bookingID string, req gDto.QueryParams) (dto.GetCommunicationsResponse, error)
}

type serviceImpl struct {
	repo        repository.Communication
	bookingRepo bookingRepo.Booking
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(repo repository.Communication, bookingRepo bookingRepo.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Communication {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// Create appends an entry and stamps the booking's last contact date.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCommunicationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	bookingFilter := shared.FilterByID(req.BookingID, bookingModel.FieldID, bookingModel.TableName)

	exist, err := s.bookingRepo.Exist(ctx, bookingFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		return failure.BadRequestFromString("booking does not exist") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create communication")

		return fmt.Errorf("failed to create communication: %w", err)
	}

	now := timezone.Now()
	updatedFields := map[string]any{
		bookingModel.FieldLastContactDate: now,
		constant.FieldModifiedAt:          now,
		constant.FieldModifiedBy:          user,
	}

	if err := s.bookingRepo.Update(ctx, updatedFields, bookingFilter); err != nil {
		log.Error().Err(err).Msg("failed to stamp booking last contact date")
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllCommunication)
		shared.InvalidateCaches(c, s.cache, cacheCountCommunication)
	}()

	return nil
}

func (s *serviceImpl) GetByBooking(ctx context.Context, bookingID string, req gDto.QueryParams) (res dto.GetCommunicationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(bookingID, model.FieldBookingID, model.TableName)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllCommunication, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for communications")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count communications")

		return res, fmt.Errorf("failed to count communications: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get communications")

		return res, fmt.Errorf("failed to get communications: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save communications to cache")
		}
	}()

	return res, nil
}
