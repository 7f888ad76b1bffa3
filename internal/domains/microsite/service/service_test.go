package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hallbook/config"
	"hallbook/infras/otel/mocks"
	hallMocks "hallbook/internal/domains/hall/mocks"
	micrositeMocks "hallbook/internal/domains/microsite/mocks"
	"hallbook/internal/domains/microsite/model"
	"hallbook/internal/domains/microsite/model/dto"
	"hallbook/internal/domains/microsite/service"
	cacheMocks "hallbook/shared/cache/mocks"
	"hallbook/shared/constant"
)

func TestMicrositeService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := micrositeMocks.NewMockMicrosite(ctrl)
	mockHallRepo := hallMocks.NewMockHall(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockHallRepo, cfg, mockCache, mocks.NewOtel())

	t.Run("appends at the end when no position given", func(t *testing.T) {
		mockHallRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(3, nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, section model.Section) error {
				assert.Equal(t, 3, section.Position)

				return nil
			})

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		err := svc.Create(ctx, dto.CreateSectionRequest{
			HallID: "hall-1",
			Kind:   "hero",
			Title:  "Welcome",
		})

		assert.NoError(t, err)
	})

	t.Run("unknown hall rejected", func(t *testing.T) {
		mockHallRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Create(context.Background(), dto.CreateSectionRequest{
			HallID: "missing",
			Kind:   "hero",
		})

		assert.Error(t, err)
	})
}

func TestMicrositeService_Reorder(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	t.Run("positions reassigned in list order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := micrositeMocks.NewMockMicrosite(ctrl)
		mockHallRepo := hallMocks.NewMockHall(ctrl)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		svc := service.New(mockRepo, mockHallRepo, cfg, mockCache, mocks.NewOtel())

		order := []string{"section-c", "section-a", "section-b"}

		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(3, nil)
		mockRepo.EXPECT().
			Reorder(gomock.Any(), "hall-1", order, "test-user-id").
			Return(nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		err := svc.Reorder(ctx, dto.ReorderRequest{SectionIDs: order}, "hall-1")

		assert.NoError(t, err)
	})

	t.Run("incomplete section list rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := micrositeMocks.NewMockMicrosite(ctrl)
		mockHallRepo := hallMocks.NewMockHall(ctrl)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		svc := service.New(mockRepo, mockHallRepo, cfg, mockCache, mocks.NewOtel())

		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(3, nil)

		err := svc.Reorder(context.Background(), dto.ReorderRequest{
			SectionIDs: []string{"section-a", "section-b"},
		}, "hall-1")

		assert.Error(t, err)
	})

	t.Run("duplicate section rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := micrositeMocks.NewMockMicrosite(ctrl)
		mockHallRepo := hallMocks.NewMockHall(ctrl)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		svc := service.New(mockRepo, mockHallRepo, cfg, mockCache, mocks.NewOtel())

		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(2, nil)

		err := svc.Reorder(context.Background(), dto.ReorderRequest{
			SectionIDs: []string{"section-a", "section-a"},
		}, "hall-1")

		assert.Error(t, err)
	})

	t.Run("repository failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := micrositeMocks.NewMockMicrosite(ctrl)
		mockHallRepo := hallMocks.NewMockHall(ctrl)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		svc := service.New(mockRepo, mockHallRepo, cfg, mockCache, mocks.NewOtel())

		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)
		mockRepo.EXPECT().
			Reorder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		err := svc.Reorder(context.Background(), dto.ReorderRequest{
			SectionIDs: []string{"section-a"},
		}, "hall-1")

		assert.Error(t, err)
	})
}
