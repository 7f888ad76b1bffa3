package service

import (
	"context"
	"fmt"

	"hallbook/config"
	"hallbook/infras/otel"
	bookingModel "hallbook/internal/domains/booking/model"
	bookingRepo "hallbook/internal/domains/booking/repository"
	communicationModel "hallbook/internal/domains/communication/model"
	communicationRepo "hallbook/internal/domains/communication/repository"
	"hallbook/internal/domains/inventory/model"
	"hallbook/internal/domains/inventory/model/dto"
	"hallbook/internal/domains/inventory/repository"
	"hallbook/shared"
	"hallbook/shared/cache"
	"hallbook/shared/constant"
	gDto "hallbook/shared/dto"
	"hallbook/shared/failure"
	gModel "hallbook/shared/model"
	"hallbook/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllInventory = "inventory:gets"
	cacheCountInventory  = "inventory:count"
)

type Inventory interface {
	Create(ctx context.Context, req dto.CreateInventoryRequest) error
	GetByBooking(ctx context.Context, bookingID string, req gDto.QueryParams) (dto.GetInventoriesResponse, error)
	Update(ctx context.Context, req dto.UpdateInventoryRequest, id string) error
	Delete(ctx context.Context, req dto.DeleteInventoryRequest, id string) error
}

type serviceImpl struct {
	repo              repository.Inventory
	bookingRepo       bookingRepo.Booking
	communicationRepo communicationRepo.Communication
	cfg               *config.Config
	cache             cache.RedisCache
	otel              otel.Otel
}

func New(repo repository.Inventory, bookingRepo bookingRepo.Booking, communicationRepo communicationRepo.Communication, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Inventory {
	return &serviceImpl{
		repo:              repo,
		bookingRepo:       bookingRepo,
		communicationRepo: communicationRepo,
		cfg:               cfg,
		cache:             cache,
		otel:              otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateInventoryRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.bookingRepo.Exist(ctx, shared.FilterByID(req.BookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		return failure.BadRequestFromString("booking does not exist") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create inventory")

		return fmt.Errorf("failed to create inventory: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) GetByBooking(ctx context.Context, bookingID string, req gDto.QueryParams) (res dto.GetInventoriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(bookingID, model.FieldBookingID, model.TableName)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllInventory, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for inventorys")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count inventorys")

		return res, fmt.Errorf("failed to count inventorys: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get inventorys")

		return res, fmt.Errorf("failed to get inventorys: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save inventorys to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateInventoryRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()

	if req == (dto.UpdateInventoryRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if inventory exists")

		return fmt.Errorf("failed to check if inventory exists: %w", err)
	}

	if !exist {
		return failure.NotFound("inventory not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update inventory")

		return fmt.Errorf("failed to update inventory: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

// Delete removes the inventory and appends the removal reason to the
// booking's communication log. The two writes are independent.
func (s *serviceImpl) Delete(ctx context.Context, req dto.DeleteInventoryRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	inventory, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get inventory")

		return fmt.Errorf("failed to get inventory: %w", err)
	}

	if inventory.ID == constant.Empty {
		return failure.NotFound("inventory not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete inventory")

		return fmt.Errorf("failed to delete inventory: %w", err)
	}

	now := timezone.Now()
	comm := communicationModel.Communication{
		ID:        uuid.NewString(),
		BookingID: inventory.BookingID,
		SentAt:    now,
		Sender:    user,
		Detail:    fmt.Sprintf("Removed inventory item %s. Reason: %s", inventory.Name, req.Reason),
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if err = s.communicationRepo.Insert(ctx, comm); err != nil {
		log.Error().Err(err).Msg("failed to append removal communication")

		return fmt.Errorf("failed to append removal communication: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllInventory)
		shared.InvalidateCaches(c, s.cache, cacheCountInventory)
	}()
}
