package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hallbook/config"
	"hallbook/infras/otel/mocks"
	"hallbook/internal/domains/booking/calendar"
	bookingMocks "hallbook/internal/domains/booking/mocks"
	bookingModel "hallbook/internal/domains/booking/model"
	hallMocks "hallbook/internal/domains/hall/mocks"
	"hallbook/internal/domains/hall/model/dto"
	"hallbook/internal/domains/hall/service"
	organizationMocks "hallbook/internal/domains/organization/mocks"
	cacheMocks "hallbook/shared/cache/mocks"
	"hallbook/shared/constant"
)

func newHallService(t *testing.T) (service.Hall, *hallMocks.MockHall, *organizationMocks.MockOrganization, *bookingMocks.MockBooking, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := hallMocks.NewMockHall(ctrl)
	mockOrgRepo := organizationMocks.NewMockOrganization(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockOrgRepo, mockBookingRepo, cfg, mockCache, mocks.NewOtel())

	return svc, mockRepo, mockOrgRepo, mockBookingRepo, mockCache
}

func TestHallService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateHallRequest
		setupMock func(repo *hallMocks.MockHall, orgRepo *organizationMocks.MockOrganization, cache *cacheMocks.MockRedisCache)
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreateHallRequest{
				OrganizationID: "org-1",
				Name:           "Grand Pavilion",
			},
			setupMock: func(repo *hallMocks.MockHall, orgRepo *organizationMocks.MockOrganization, cache *cacheMocks.MockRedisCache) {
				orgRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
				cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
		},
		{
			name: "unknown organization rejected",
			req: dto.CreateHallRequest{
				OrganizationID: "missing",
				Name:           "Grand Pavilion",
			},
			setupMock: func(repo *hallMocks.MockHall, orgRepo *organizationMocks.MockOrganization, cache *cacheMocks.MockRedisCache) {
				orgRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockOrgRepo, _, mockCache := newHallService(t)
			tt.setupMock(mockRepo, mockOrgRepo, mockCache)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHallService_GetAvailability(t *testing.T) {
	eventDate := func(day string) time.Time {
		d, _ := time.Parse(constant.DateOnlyFormat, day)

		return d
	}

	t.Run("classifies each date of the range", func(t *testing.T) {
		svc, mockRepo, _, mockBookingRepo, _ := newHallService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockBookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]bookingModel.Booking{
				{
					HallID:    "hall-1",
					EventDate: eventDate("2026-05-01"),
					TimeSlot:  bookingModel.SlotFullday,
					Status:    bookingModel.StatusConfirmed,
				},
				{
					HallID:    "hall-1",
					EventDate: eventDate("2026-05-02"),
					TimeSlot:  bookingModel.SlotMorning,
					Status:    bookingModel.StatusActive,
				},
				{
					HallID:    "hall-1",
					EventDate: eventDate("2026-05-03"),
					TimeSlot:  bookingModel.SlotEvening,
					Status:    bookingModel.StatusPending,
				},
			}, nil)

		res, err := svc.GetAvailability(context.Background(), "hall-1", "2026-05-01", "2026-05-03")

		assert.NoError(t, err)
		assert.Equal(t, "hall-1", res.HallID)
		assert.Len(t, res.Days, 3)
		assert.Equal(t, calendar.StatusFull, res.Days[0].Status)
		assert.Equal(t, calendar.StatusMorning, res.Days[1].Status)
		assert.Equal(t, calendar.StatusAvailable, res.Days[2].Status, "pending bookings never block")
	})

	t.Run("rejects malformed from date", func(t *testing.T) {
		svc, _, _, _, _ := newHallService(t)

		_, err := svc.GetAvailability(context.Background(), "hall-1", "01-05-2026", "2026-05-03")

		assert.Error(t, err)
	})

	t.Run("rejects inverted range", func(t *testing.T) {
		svc, _, _, _, _ := newHallService(t)

		_, err := svc.GetAvailability(context.Background(), "hall-1", "2026-05-03", "2026-05-01")

		assert.Error(t, err)
	})

	t.Run("rejects oversized range", func(t *testing.T) {
		svc, _, _, _, _ := newHallService(t)

		_, err := svc.GetAvailability(context.Background(), "hall-1", "2026-01-01", "2028-01-01")

		assert.Error(t, err)
	})

	t.Run("unknown hall", func(t *testing.T) {
		svc, mockRepo, _, _, _ := newHallService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		_, err := svc.GetAvailability(context.Background(), "missing", "2026-05-01", "2026-05-03")

		assert.Error(t, err)
	})
}
