package service

import (
	"context"
	"fmt"
	"time"

	"hallbook/config"
	"hallbook/infras/kafka"
	"hallbook/infras/otel"
	billingModel "hallbook/internal/domains/billing/model"
	billingRepo "hallbook/internal/domains/billing/repository"
	"hallbook/internal/domains/booking/charge"
	"hallbook/internal/domains/booking/model"
	"hallbook/internal/domains/booking/model/dto"
	"hallbook/internal/domains/booking/repository"
	communicationModel "hallbook/internal/domains/communication/model"
	communicationDto "hallbook/internal/domains/communication/model/dto"
	communicationRepo "hallbook/internal/domains/communication/repository"
	featureModel "hallbook/internal/domains/feature/model"
	featureDto "hallbook/internal/domains/feature/model/dto"
	featureRepo "hallbook/internal/domains/feature/repository"
	hallModel "hallbook/internal/domains/hall/model"
	hallRepo "hallbook/internal/domains/hall/repository"
	inventoryModel "hallbook/internal/domains/inventory/model"
	inventoryDto "hallbook/internal/domains/inventory/model/dto"
	inventoryRepo "hallbook/internal/domains/inventory/repository"
	paymentModel "hallbook/internal/domains/payment/model"
	paymentDto "hallbook/internal/domains/payment/model/dto"
	paymentRepo "hallbook/internal/domains/payment/repository"
	serviceModel "hallbook/internal/domains/service/model"
	serviceDto "hallbook/internal/domains/service/model/dto"
	serviceRepo "hallbook/internal/domains/service/repository"
	ticketModel "hallbook/internal/domains/ticket/model"
	ticketDto "hallbook/internal/domains/ticket/model/dto"
	ticketRepo "hallbook/internal/domains/ticket/repository"
	"hallbook/shared"
	"hallbook/shared/cache"
	"hallbook/shared/constant"
	gDto "hallbook/shared/dto"
	"hallbook/shared/failure"
	gModel "hallbook/shared/model"
	"hallbook/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) error
	PublicCreate(ctx context.Context, req dto.PublicCreateBookingRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Search(ctx context.Context, req gDto.QueryParams, query string) (dto.GetBookingsResponse, error)
	GetActive(ctx context.Context, req gDto.QueryParams) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	UpdateBillingDetails(ctx context.Context, req dto.UpdateBillingDetailsRequest, id string) error
	UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) error
	ToggleActive(ctx context.Context, id string) error
	Handover(ctx context.Context, req dto.HandoverRequest, id string) error
	GetCharges(ctx context.Context, id string) (dto.ChargesResponse, error)
	GetManage(ctx context.Context, id string) (dto.ManageBookingResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo              repository.Booking
	hallRepo          hallRepo.Hall
	billingRepo       billingRepo.Billing
	featureRepo       featureRepo.Feature
	serviceRepo       serviceRepo.Service
	inventoryRepo     inventoryRepo.Inventory
	paymentRepo       paymentRepo.Payment
	communicationRepo communicationRepo.Communication
	ticketRepo        ticketRepo.Ticket
	cfg               *config.Config
	cache             cache.RedisCache
	otel              otel.Otel
	kafka             kafka.Client
}

func New(
	repo repository.Booking,
	hallRepo hallRepo.Hall,
	billingRepo billingRepo.Billing,
	featureRepo featureRepo.Feature,
	serviceRepo serviceRepo.Service,
	inventoryRepo inventoryRepo.Inventory,
	paymentRepo paymentRepo.Payment,
	communicationRepo communicationRepo.Communication,
	ticketRepo ticketRepo.Ticket,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	kafka kafka.Client,
) Booking {
	return &serviceImpl{
		repo:              repo,
		hallRepo:          hallRepo,
		billingRepo:       billingRepo,
		featureRepo:       featureRepo,
		serviceRepo:       serviceRepo,
		inventoryRepo:     inventoryRepo,
		paymentRepo:       paymentRepo,
		communicationRepo: communicationRepo,
		ticketRepo:        ticketRepo,
		cfg:               cfg,
		cache:             cache,
		otel:              otel,
		kafka:             kafka,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	hall, err := s.hallRepo.Get(ctx, shared.FilterByID(req.HallID, hallModel.FieldID, hallModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hall for booking")

		return fmt.Errorf("failed to get hall for booking: %w", err)
	}

	if hall.ID == constant.Empty {
		return failure.BadRequestFromString("hall does not exist") // nolint:wrapcheck
	}

	booking, err := req.ToModel(user)
	if err != nil {
		return failure.BadRequestFromString("invalid event date, expected YYYY-MM-DD") // nolint:wrapcheck
	}

	if req.BaseAmount == nil {
		booking.BaseAmount = charge.ResolveBaseAmount(hall, booking.TimeSlot)
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return fmt.Errorf("failed to create booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return nil
}

// PublicCreate takes the storefront form. The booking always lands
// pending and the base amount comes from the hall rate card; an
// unknown slot prices at 0 rather than failing the submission.
func (s *serviceImpl) PublicCreate(ctx context.Context, req dto.PublicCreateBookingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PublicCreate")
	defer scope.End()
	defer scope.TraceIfError(err)

	hall, err := s.hallRepo.Get(ctx, shared.FilterByID(req.HallID, hallModel.FieldID, hallModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hall for public booking")

		return fmt.Errorf("failed to get hall for public booking: %w", err)
	}

	if hall.ID == constant.Empty {
		return failure.BadRequestFromString("hall does not exist") // nolint:wrapcheck
	}

	if !hall.Active {
		return failure.BadRequestFromString("hall is not accepting bookings") // nolint:wrapcheck
	}

	booking, err := req.ToModel(charge.ResolveBaseAmount(hall, req.TimeSlot))
	if err != nil {
		return failure.BadRequestFromString("invalid event date, expected YYYY-MM-DD") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create public booking")

		return fmt.Errorf("failed to create public booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

// Search matches the query against customer name, phone, and email.
func (s *serviceImpl) Search(ctx context.Context, req gDto.QueryParams, query string) (dto.GetBookingsResponse, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Search")
	defer scope.End()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorOr,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldCustomerName,
				Operator: gDto.FilterOperatorLike,
				Value:    query,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldCustomerPhone,
				Operator: gDto.FilterOperatorLike,
				Value:    query,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldCustomerEmail,
				Operator: gDto.FilterOperatorLike,
				Value:    query,
				Table:    model.TableName,
			},
		},
	}

	return s.GetAll(ctx, req, filter)
}

func (s *serviceImpl) GetActive(ctx context.Context, req gDto.QueryParams) (dto.GetBookingsResponse, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetActive")
	defer scope.End()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.TableName,
			},
		},
	}

	return s.GetAll(ctx, req, filter)
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()

	if req == (dto.UpdateBookingRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	if req.EventDate != "" {
		if _, err := time.Parse(constant.DateOnlyFormat, req.EventDate); err != nil {
			return failure.BadRequestFromString("invalid event date, expected YYYY-MM-DD") // nolint:wrapcheck
		}
	}

	if req.LastContactDate != "" {
		if _, err := time.Parse(constant.DateOnlyFormat, req.LastContactDate); err != nil {
			return failure.BadRequestFromString("invalid last contact date, expected YYYY-MM-DD") // nolint:wrapcheck
		}
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	s.invalidateBooking(ctx, id)

	return nil
}

func (s *serviceImpl) UpdateBillingDetails(ctx context.Context, req dto.UpdateBillingDetailsRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateBillingDetails")
	defer scope.End()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldBillingDetails: model.BillingDetails{
			Name:      req.Name,
			Address:   req.Address,
			GSTNumber: req.GSTNumber,
		},
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking billing details")

		return fmt.Errorf("failed to update booking billing details: %w", err)
	}

	s.invalidateBooking(ctx, id)

	return nil
}

// UpdateStatus moves the booking to the requested status. Any
// transition between valid statuses is permitted. A reason appends one
// entry to the communication log and stamps the last contact date; the
// two writes are independent, so a failure between them leaves the
// status change in place. Every change publishes a status event.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	now := timezone.Now()

	updatedFields := map[string]any{
		model.FieldStatus:        req.Status,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: user,
	}

	if req.Reason != "" {
		updatedFields[model.FieldLastContactDate] = now
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	if req.Reason != "" {
		comm := communicationModel.Communication{
			ID:        uuid.NewString(),
			BookingID: booking.ID,
			SentAt:    now,
			Sender:    user,
			Recipient: booking.CustomerName,
			Detail:    fmt.Sprintf("Status changed to %s. Reason: %s", req.Status, req.Reason),
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  user,
				ModifiedBy: user,
			},
		}

		if err = s.communicationRepo.Insert(ctx, comm); err != nil {
			log.Error().Err(err).Msg("failed to append status communication")

			return fmt.Errorf("failed to append status communication: %w", err)
		}
	}

	event := dto.StatusEvent{
		BookingID: booking.ID,
		HallID:    booking.HallID,
		From:      booking.Status,
		To:        req.Status,
		Reason:    req.Reason,
		ChangedBy: user,
		ChangedAt: now.Format(time.RFC3339),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.BookingStatus, kafka.Message{
			Key:   booking.ID,
			Value: event,
		}); err != nil {
			log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to publish booking status event")
		}
	}()

	s.invalidateBooking(ctx, id)

	return nil
}

func (s *serviceImpl) ToggleActive(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ToggleActive")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	updatedFields := map[string]any{
		model.FieldActive:        !booking.Active,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to toggle booking active flag")

		return fmt.Errorf("failed to toggle booking active flag: %w", err)
	}

	s.invalidateBooking(ctx, id)

	return nil
}

func (s *serviceImpl) Handover(ctx context.Context, req dto.HandoverRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Handover")
	defer scope.End()

	if _, err := time.Parse(constant.DateOnlyFormat, req.Date); err != nil {
		return failure.BadRequestFromString("invalid handover date, expected YYYY-MM-DD") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldHandover:      req.ToModel(),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to record booking handover")

		return fmt.Errorf("failed to record booking handover: %w", err)
	}

	s.invalidateBooking(ctx, id)

	return nil
}

// GetCharges folds the hall rate, line items, discount, tax, and
// payments into the booking's charge summary. The tax percentage comes
// from the owning organization's billing settings; a missing settings
// row taxes at zero.
func (s *serviceImpl) GetCharges(ctx context.Context, id string) (res dto.ChargesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCharges")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	taxPercentage, err := s.resolveTaxPercentage(ctx, booking.HallID)
	if err != nil {
		return res, err
	}

	features, err := s.featureRepo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByID(id, featureModel.FieldBookingID, featureModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking features")

		return res, fmt.Errorf("failed to get booking features: %w", err)
	}

	services, err := s.serviceRepo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByID(id, serviceModel.FieldBookingID, serviceModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking services")

		return res, fmt.Errorf("failed to get booking services: %w", err)
	}

	inventory, err := s.inventoryRepo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByID(id, inventoryModel.FieldBookingID, inventoryModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking inventory")

		return res, fmt.Errorf("failed to get booking inventory: %w", err)
	}

	payments, err := s.paymentRepo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByID(id, paymentModel.FieldBookingID, paymentModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking payments")

		return res, fmt.Errorf("failed to get booking payments: %w", err)
	}

	totals := charge.Aggregate(features, services, inventory)
	bill := charge.ComputeBill(booking.BaseAmount, totals, booking.Discount, taxPercentage)
	totalPaid, balance := charge.ComputeBalance(payments, bill.BillAmount)

	res.FromBill(booking.ID, bill, totalPaid, balance)

	return res, nil
}

// GetManage loads everything the booking manage screen shows in one
// round trip. The sections are fetched in parallel and a failed
// section degrades to an empty list instead of failing the whole
// payload.
func (s *serviceImpl) GetManage(ctx context.Context, id string) (res dto.ManageBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetManage")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	var (
		hall           hallModel.Hall
		settings       billingModel.Settings
		features       []featureModel.Feature
		services       []serviceModel.Service
		inventory      []inventoryModel.Inventory
		payments       []paymentModel.Payment
		communications []communicationModel.Communication
		tickets        []ticketModel.Ticket
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		m, err := s.hallRepo.Get(gctx, shared.FilterByID(booking.HallID, hallModel.FieldID, hallModel.TableName))
		if err != nil {
			log.Warn().Err(err).Str("bookingID", id).Msg("manage: failed to load hall")

			return nil
		}

		hall = m

		if m.OrganizationID != constant.Empty {
			settingsModel, err := s.billingRepo.Get(gctx, shared.FilterByID(m.OrganizationID, billingModel.FieldOrganizationID, billingModel.TableName))
			if err != nil {
				log.Warn().Err(err).Str("bookingID", id).Msg("manage: failed to load billing settings")

				return nil
			}

			settings = settingsModel
		}

		return nil
	})

	g.Go(func() error {
		models, err := s.featureRepo.GetAll(gctx, gDto.QueryParams{}, shared.FilterByID(id, featureModel.FieldBookingID, featureModel.TableName))
		if err != nil {
			log.Warn().Err(err).Str("bookingID", id).Msg("manage: failed to load features")

			return nil
		}

		features = models

		return nil
	})

	g.Go(func() error {
		models, err := s.serviceRepo.GetAll(gctx, gDto.QueryParams{}, shared.FilterByID(id, serviceModel.FieldBookingID, serviceModel.TableName))
		if err != nil {
			log.Warn().Err(err).Str("bookingID", id).Msg("manage: failed to load services")

			return nil
		}

		services = models

		return nil
	})

	g.Go(func() error {
		models, err := s.inventoryRepo.GetAll(gctx, gDto.QueryParams{}, shared.FilterByID(id, inventoryModel.FieldBookingID, inventoryModel.TableName))
		if err != nil {
			log.Warn().Err(err).Str("bookingID", id).Msg("manage: failed to load inventory")

			return nil
		}

		inventory = models

		return nil
	})

	g.Go(func() error {
		models, err := s.paymentRepo.GetAll(gctx, gDto.QueryParams{}, shared.FilterByID(id, paymentModel.FieldBookingID, paymentModel.TableName))
		if err != nil {
			log.Warn().Err(err).Str("bookingID", id).Msg("manage: failed to load payments")

			return nil
		}

		payments = models

		return nil
	})

	g.Go(func() error {
		models, err := s.communicationRepo.GetAll(gctx, gDto.QueryParams{}, shared.FilterByID(id, communicationModel.FieldBookingID, communicationModel.TableName))
		if err != nil {
			log.Warn().Err(err).Str("bookingID", id).Msg("manage: failed to load communications")

			return nil
		}

		communications = models

		return nil
	})

	g.Go(func() error {
		models, err := s.ticketRepo.GetAll(gctx, gDto.QueryParams{}, shared.FilterByID(id, ticketModel.FieldBookingID, ticketModel.TableName))
		if err != nil {
			log.Warn().Err(err).Str("bookingID", id).Msg("manage: failed to load tickets")

			return nil
		}

		tickets = models

		return nil
	})

	if err := g.Wait(); err != nil {
		return res, fmt.Errorf("failed to load booking sections: %w", err)
	}

	res.Booking.FromModel(booking)
	res.Hall.FromModel(hall)

	res.Features = make([]featureDto.FeatureResponse, len(features))
	for i, m := range features {
		res.Features[i].FromModel(m)
	}

	res.Services = make([]serviceDto.ServiceResponse, len(services))
	for i, m := range services {
		res.Services[i].FromModel(m)
	}

	res.Inventory = make([]inventoryDto.InventoryResponse, len(inventory))
	for i, m := range inventory {
		res.Inventory[i].FromModel(m)
	}

	res.Payments = make([]paymentDto.PaymentResponse, len(payments))
	for i, m := range payments {
		res.Payments[i].FromModel(m)
	}

	res.Communications = make([]communicationDto.CommunicationResponse, len(communications))
	for i, m := range communications {
		res.Communications[i].FromModel(m)
	}

	res.Tickets = make([]ticketDto.TicketResponse, len(tickets))
	for i, m := range tickets {
		res.Tickets[i].FromModel(m)
	}

	totals := charge.Aggregate(features, services, inventory)
	bill := charge.ComputeBill(booking.BaseAmount, totals, booking.Discount, settings.TaxPercentage)
	totalPaid, balance := charge.ComputeBalance(payments, bill.BillAmount)

	res.Charges.FromBill(booking.ID, bill, totalPaid, balance)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	s.invalidateBooking(ctx, id)

	return nil
}

func (s *serviceImpl) getBooking(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

// resolveTaxPercentage walks booking -> hall -> organization billing
// settings. No settings row means no tax.
func (s *serviceImpl) resolveTaxPercentage(ctx context.Context, hallID string) (float64, error) {
	hall, err := s.hallRepo.Get(ctx, shared.FilterByID(hallID, hallModel.FieldID, hallModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hall for tax resolution")

		return 0, fmt.Errorf("failed to get hall for tax resolution: %w", err)
	}

	if hall.OrganizationID == constant.Empty {
		return 0, nil
	}

	settings, err := s.billingRepo.Get(ctx, shared.FilterByID(hall.OrganizationID, billingModel.FieldOrganizationID, billingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get billing settings for tax resolution")

		return 0, fmt.Errorf("failed to get billing settings for tax resolution: %w", err)
	}

	return settings.TaxPercentage, nil
}

func (s *serviceImpl) invalidateBooking(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}
