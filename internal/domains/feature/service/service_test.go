package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hallbook/config"
	"hallbook/infras/otel/mocks"
	bookingMocks "hallbook/internal/domains/booking/mocks"
	communicationMocks "hallbook/internal/domains/communication/mocks"
	communicationModel "hallbook/internal/domains/communication/model"
	featureMocks "hallbook/internal/domains/feature/mocks"
	"hallbook/internal/domains/feature/model"
	"hallbook/internal/domains/feature/model/dto"
	"hallbook/internal/domains/feature/service"
	cacheMocks "hallbook/shared/cache/mocks"
	"hallbook/shared/constant"
)

func TestFeatureService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := featureMocks.NewMockFeature(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockCommunicationRepo := communicationMocks.NewMockCommunication(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockBookingRepo, mockCommunicationRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		req       dto.CreateFeatureRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreateFeatureRequest{
				BookingID: "booking-1",
				Name:      "Stage decor",
			},
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, feature model.Feature) error {
						assert.Equal(t, 1, feature.Quantity, "quantity defaults to 1")

						return nil
					})
			},
		},
		{
			name: "unknown booking rejected",
			req: dto.CreateFeatureRequest{
				BookingID: "missing",
				Name:      "Stage decor",
			},
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

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

func TestFeatureService_Delete(t *testing.T) {
	feature := model.Feature{
		ID:        "feature-1",
		BookingID: "booking-1",
		Name:      "Stage decor",
		Price:     200,
		Quantity:  1,
	}

	t.Run("reason lands in the communication log", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := featureMocks.NewMockFeature(ctrl)
		mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
		mockCommunicationRepo := communicationMocks.NewMockCommunication(ctrl)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		cfg := &config.Config{}
		cfg.Cache.TTL = 3600

		mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		svc := service.New(mockRepo, mockBookingRepo, mockCommunicationRepo, cfg, mockCache, mocks.NewOtel())

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(feature, nil)
		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)
		mockCommunicationRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, comm communicationModel.Communication) error {
				assert.Equal(t, "booking-1", comm.BookingID)
				assert.Equal(t, "Removed feature Stage decor. Reason: customer dropped it", comm.Detail)

				return nil
			}).
			Times(1)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		err := svc.Delete(ctx, dto.DeleteFeatureRequest{Reason: "customer dropped it"}, "feature-1")

		assert.NoError(t, err)
	})

	t.Run("unknown feature", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := featureMocks.NewMockFeature(ctrl)
		mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
		mockCommunicationRepo := communicationMocks.NewMockCommunication(ctrl)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		cfg := &config.Config{}
		cfg.Cache.TTL = 3600

		svc := service.New(mockRepo, mockBookingRepo, mockCommunicationRepo, cfg, mockCache, mocks.NewOtel())

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Feature{}, nil)

		err := svc.Delete(context.Background(), dto.DeleteFeatureRequest{Reason: "duplicate entry"}, "missing")

		assert.Error(t, err)
	})

	t.Run("delete failure keeps the log untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := featureMocks.NewMockFeature(ctrl)
		mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
		mockCommunicationRepo := communicationMocks.NewMockCommunication(ctrl)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		cfg := &config.Config{}
		cfg.Cache.TTL = 3600

		svc := service.New(mockRepo, mockBookingRepo, mockCommunicationRepo, cfg, mockCache, mocks.NewOtel())

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(feature, nil)
		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		err := svc.Delete(context.Background(), dto.DeleteFeatureRequest{Reason: "customer dropped it"}, "feature-1")

		assert.Error(t, err)
	})
}
