package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hallbook/config"
	"hallbook/infras/otel/mocks"
	billingMocks "hallbook/internal/domains/billing/mocks"
	"hallbook/internal/domains/billing/model"
	"hallbook/internal/domains/billing/model/dto"
	"hallbook/internal/domains/billing/service"
	bookingDto "hallbook/internal/domains/booking/model/dto"
	bookingServiceMocks "hallbook/internal/domains/booking/service/mocks"
	hallMocks "hallbook/internal/domains/hall/mocks"
	hallModel "hallbook/internal/domains/hall/model"
	organizationMocks "hallbook/internal/domains/organization/mocks"
	cacheMocks "hallbook/shared/cache/mocks"
	"hallbook/shared/constant"
)

func newBillingService(t *testing.T) (service.Billing, *billingMocks.MockBilling, *organizationMocks.MockOrganization, *hallMocks.MockHall, *bookingServiceMocks.MockBooking, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := billingMocks.NewMockBilling(ctrl)
	mockOrgRepo := organizationMocks.NewMockOrganization(ctrl)
	mockHallRepo := hallMocks.NewMockHall(ctrl)
	mockBookingService := bookingServiceMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockOrgRepo, mockHallRepo, mockBookingService, cfg, mockCache, mocks.NewOtel())

	return svc, mockRepo, mockOrgRepo, mockHallRepo, mockBookingService, mockCache
}

func TestBillingService_UpsertSettings(t *testing.T) {
	taxPercentage := 18.0

	req := dto.CreateSettingsRequest{
		OrganizationID: "org-1",
		CompanyName:    "Sharma Halls Pvt Ltd",
		GSTNumber:      "27AAPFU0939F1ZV",
		TaxPercentage:  &taxPercentage,
	}

	t.Run("first write inserts", func(t *testing.T) {
		svc, mockRepo, mockOrgRepo, _, _, mockCache := newBillingService(t)

		mockOrgRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, settings model.Settings) error {
				assert.Equal(t, "org-1", settings.OrganizationID)
				assert.Equal(t, 18.0, settings.TaxPercentage)

				return nil
			})
		mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		err := svc.UpsertSettings(ctx, req)

		assert.NoError(t, err)
	})

	t.Run("second write updates the existing row", func(t *testing.T) {
		svc, mockRepo, mockOrgRepo, _, _, mockCache := newBillingService(t)

		mockOrgRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, "Sharma Halls Pvt Ltd", fields[model.FieldCompanyName])
				assert.Equal(t, 18.0, fields[model.FieldTaxPercentage])

				return nil
			})
		mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		err := svc.UpsertSettings(ctx, req)

		assert.NoError(t, err)
	})

	t.Run("unknown organization rejected", func(t *testing.T) {
		svc, _, mockOrgRepo, _, _, _ := newBillingService(t)

		mockOrgRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.UpsertSettings(context.Background(), req)

		assert.Error(t, err)
	})
}

func TestBillingService_GetSettings(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, mockRepo, _, _, _, mockCache := newBillingService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Settings{
				ID:             "settings-1",
				OrganizationID: "org-1",
				CompanyName:    "Sharma Halls Pvt Ltd",
				TaxPercentage:  18,
			}, nil)
		mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := svc.GetSettings(context.Background(), "org-1")

		assert.NoError(t, err)
		assert.Equal(t, "Sharma Halls Pvt Ltd", res.CompanyName)
		assert.Equal(t, 18.0, res.TaxPercentage)
	})

	t.Run("missing row", func(t *testing.T) {
		svc, mockRepo, _, _, _, mockCache := newBillingService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Settings{}, nil)

		_, err := svc.GetSettings(context.Background(), "org-1")

		assert.Error(t, err)
	})
}

func TestBillingService_Invoice(t *testing.T) {
	t.Run("composes booking, charges, hall, and settings", func(t *testing.T) {
		svc, mockRepo, _, mockHallRepo, mockBookingService, _ := newBillingService(t)

		mockBookingService.EXPECT().
			Get(gomock.Any(), "booking-1").
			Return(bookingDto.BookingResponse{
				ID:     "booking-1",
				HallID: "hall-1",
			}, nil)
		mockBookingService.EXPECT().
			GetCharges(gomock.Any(), "booking-1").
			Return(bookingDto.ChargesResponse{BillAmount: 118000}, nil)
		mockHallRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(hallModel.Hall{
				ID:             "hall-1",
				OrganizationID: "org-1",
				Name:           "Grand Pavilion",
			}, nil)
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Settings{
				ID:             "settings-1",
				OrganizationID: "org-1",
				CompanyName:    "Sharma Halls Pvt Ltd",
				TaxPercentage:  18,
			}, nil)

		res, err := svc.Invoice(context.Background(), "booking-1")

		assert.NoError(t, err)
		assert.Equal(t, "booking-1", res.Booking.ID)
		assert.Equal(t, "Grand Pavilion", res.HallName)
		assert.Equal(t, 118000.0, res.Charges.BillAmount)
		assert.Equal(t, 18.0, res.Settings.TaxPercentage)
	})

	t.Run("booking lookup failure bubbles up", func(t *testing.T) {
		svc, _, _, _, mockBookingService, _ := newBillingService(t)

		mockBookingService.EXPECT().
			Get(gomock.Any(), "missing").
			Return(bookingDto.BookingResponse{}, errors.New("booking not found"))

		_, err := svc.Invoice(context.Background(), "missing")

		assert.Error(t, err)
	})
}
