package service

import (
	"context"
	"fmt"

	"hallbook/config"
	"hallbook/infras/otel"
	"hallbook/internal/domains/billing/model"
	"hallbook/internal/domains/billing/model/dto"
	"hallbook/internal/domains/billing/repository"
	bookingService "hallbook/internal/domains/booking/service"
	hallModel "hallbook/internal/domains/hall/model"
	hallRepo "hallbook/internal/domains/hall/repository"
	organizationModel "hallbook/internal/domains/organization/model"
	organizationRepo "hallbook/internal/domains/organization/repository"
	"hallbook/shared"
	"hallbook/shared/cache"
	"hallbook/shared/constant"
	"hallbook/shared/failure"

	"github.com/rs/zerolog/log"
)

const cacheGetSettings = "billing:settings"

type Billing interface {
	GetSettings(ctx context.Context, organizationID string) (dto.SettingsResponse, error)
	UpsertSettings(ctx context.Context, req dto.CreateSettingsRequest) error
	Invoice(ctx context.Context, bookingID string) (dto.InvoiceResponse, error)
}

type serviceImpl struct {
	repo           repository.Billing
	orgRepo        organizationRepo.Organization
	hallRepo       hallRepo.Hall
	bookingService bookingService.Booking
	cfg            *config.Config
	cache          cache.RedisCache
	otel           otel.Otel
}

func New(
	repo repository.Billing,
	orgRepo organizationRepo.Organization,
	hallRepo hallRepo.Hall,
	bookingService bookingService.Booking,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Billing {
	return &serviceImpl{
		repo:           repo,
		orgRepo:        orgRepo,
		hallRepo:       hallRepo,
		bookingService: bookingService,
		cfg:            cfg,
		cache:          cache,
		otel:           otel,
	}
}

func (s *serviceImpl) GetSettings(ctx context.Context, organizationID string) (res dto.SettingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSettings")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetSettings, organizationID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for billing settings")

		return res, nil
	}

	settings, err := s.repo.Get(ctx, shared.FilterByID(organizationID, model.FieldOrganizationID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get billing settings")

		return res, fmt.Errorf("failed to get billing settings: %w", err)
	}

	if settings.ID == constant.Empty {
		return res, failure.NotFound("billing settings not found") // nolint:wrapcheck
	}

	res.FromModel(settings)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save billing settings to cache")
		}
	}()

	return res, nil
}

// UpsertSettings creates the organization's settings row on first
// write and updates it afterwards. One row per organization.
func (s *serviceImpl) UpsertSettings(ctx context.Context, req dto.CreateSettingsRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpsertSettings")
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

	filter := shared.FilterByID(req.OrganizationID, model.FieldOrganizationID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if billing settings exist")

		return fmt.Errorf("failed to check if billing settings exist: %w", err)
	}

	if exist {
		settings := req.ToModel(user)

		updatedFields := map[string]any{
			model.FieldCompanyName:   settings.CompanyName,
			model.FieldAddress:       settings.Address,
			model.FieldGSTNumber:     settings.GSTNumber,
			model.FieldTaxPercentage: settings.TaxPercentage,
			model.FieldBankDetails:   settings.BankDetails,
			model.FieldHSNCode:       settings.HSNCode,
			constant.FieldModifiedAt: settings.ModifiedAt,
			constant.FieldModifiedBy: user,
		}

		if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
			log.Error().Err(err).Msg("failed to update billing settings")

			return fmt.Errorf("failed to update billing settings: %w", err)
		}
	} else {
		if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
			log.Error().Err(err).Msg("failed to create billing settings")

			return fmt.Errorf("failed to create billing settings: %w", err)
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetSettings, req.OrganizationID)); err != nil {
			log.Error().Err(err).Msg("failed to delete billing settings from cache")
		}
	}()

	return nil
}

// Invoice composes the booking, its charge summary, and the owning
// organization's billing settings into the invoice payload.
func (s *serviceImpl) Invoice(ctx context.Context, bookingID string) (res dto.InvoiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Invoice")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.bookingService.Get(ctx, bookingID)
	if err != nil {
		return res, err
	}

	charges, err := s.bookingService.GetCharges(ctx, bookingID)
	if err != nil {
		return res, err
	}

	hall, err := s.hallRepo.Get(ctx, shared.FilterByID(booking.HallID, hallModel.FieldID, hallModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hall for invoice")

		return res, fmt.Errorf("failed to get hall for invoice: %w", err)
	}

	settings, err := s.repo.Get(ctx, shared.FilterByID(hall.OrganizationID, model.FieldOrganizationID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get billing settings for invoice")

		return res, fmt.Errorf("failed to get billing settings for invoice: %w", err)
	}

	res.Booking = booking
	res.HallName = hall.Name
	res.Charges = charges
	res.Settings.FromModel(settings)

	return res, nil
}
