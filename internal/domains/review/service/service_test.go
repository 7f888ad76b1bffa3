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
	reviewMocks "hallbook/internal/domains/review/mocks"
	"hallbook/internal/domains/review/model"
	"hallbook/internal/domains/review/model/dto"
	"hallbook/internal/domains/review/service"
	cacheMocks "hallbook/shared/cache/mocks"
	"hallbook/shared/constant"
	gDto "hallbook/shared/dto"
)

func newReviewService(t *testing.T) (service.Review, *reviewMocks.MockReview, *hallMocks.MockHall, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := reviewMocks.NewMockReview(ctrl)
	mockHallRepo := hallMocks.NewMockHall(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockHallRepo, cfg, mockCache, mocks.NewOtel())

	return svc, mockRepo, mockHallRepo, mockCache
}

func TestReviewService_PublicCreate(t *testing.T) {
	req := dto.CreateReviewRequest{
		HallID: "hall-1",
		Author: "Priya",
		Rating: 5,
		Text:   "Lovely venue",
	}

	t.Run("lands unapproved", func(t *testing.T) {
		svc, mockRepo, mockHallRepo, mockCache := newReviewService(t)

		mockHallRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, review model.Review) error {
				assert.False(t, review.Approved, "new reviews stay off the storefront")
				assert.Equal(t, constant.ContextGuest, review.CreatedBy)

				return nil
			})
		mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := svc.PublicCreate(context.Background(), req)

		assert.NoError(t, err)
	})

	t.Run("unknown hall rejected", func(t *testing.T) {
		svc, _, mockHallRepo, _ := newReviewService(t)

		mockHallRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.PublicCreate(context.Background(), req)

		assert.Error(t, err)
	})
}

func TestReviewService_GetApprovedByHall(t *testing.T) {
	t.Run("filters on hall and approved", func(t *testing.T) {
		svc, mockRepo, _, mockCache := newReviewService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
				assert.Len(t, filter.Filters, 2)

				return 1, nil
			})
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Review{
				{ID: "review-1", HallID: "hall-1", Author: "Priya", Rating: 5, Approved: true},
			}, nil)
		mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := svc.GetApprovedByHall(context.Background(), "hall-1", gDto.QueryParams{Limit: 10})

		assert.NoError(t, err)
		assert.Len(t, res.Reviews, 1)
		assert.True(t, res.Reviews[0].Approved)
	})
}

func TestReviewService_Approve(t *testing.T) {
	t.Run("sets the approved flag", func(t *testing.T) {
		svc, mockRepo, _, mockCache := newReviewService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, true, fields[model.FieldApproved])

				return nil
			})
		mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		err := svc.Approve(ctx, "review-1")

		assert.NoError(t, err)
	})

	t.Run("unknown review", func(t *testing.T) {
		svc, mockRepo, _, _ := newReviewService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Approve(context.Background(), "missing")

		assert.Error(t, err)
	})
}
