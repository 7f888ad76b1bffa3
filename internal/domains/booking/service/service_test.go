package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hallbook/config"
	kafkaMocks "hallbook/infras/kafka/mocks"
	"hallbook/infras/otel/mocks"
	billingMocks "hallbook/internal/domains/billing/mocks"
	billingModel "hallbook/internal/domains/billing/model"
	bookingMocks "hallbook/internal/domains/booking/mocks"
	"hallbook/internal/domains/booking/model"
	"hallbook/internal/domains/booking/model/dto"
	"hallbook/internal/domains/booking/service"
	communicationMocks "hallbook/internal/domains/communication/mocks"
	communicationModel "hallbook/internal/domains/communication/model"
	featureMocks "hallbook/internal/domains/feature/mocks"
	featureModel "hallbook/internal/domains/feature/model"
	hallMocks "hallbook/internal/domains/hall/mocks"
	hallModel "hallbook/internal/domains/hall/model"
	inventoryMocks "hallbook/internal/domains/inventory/mocks"
	inventoryModel "hallbook/internal/domains/inventory/model"
	paymentMocks "hallbook/internal/domains/payment/mocks"
	paymentModel "hallbook/internal/domains/payment/model"
	serviceMocks "hallbook/internal/domains/service/mocks"
	serviceModel "hallbook/internal/domains/service/model"
	ticketMocks "hallbook/internal/domains/ticket/mocks"
	cacheMocks "hallbook/shared/cache/mocks"
	"hallbook/shared/constant"
	gDto "hallbook/shared/dto"
)

type serviceMockSet struct {
	repo              *bookingMocks.MockBooking
	hallRepo          *hallMocks.MockHall
	billingRepo       *billingMocks.MockBilling
	featureRepo       *featureMocks.MockFeature
	serviceRepo       *serviceMocks.MockService
	inventoryRepo     *inventoryMocks.MockInventory
	paymentRepo       *paymentMocks.MockPayment
	communicationRepo *communicationMocks.MockCommunication
	ticketRepo        *ticketMocks.MockTicket
	cache             *cacheMocks.MockRedisCache
	kafka             *kafkaMocks.MockClient
}

func newService(ctrl *gomock.Controller) (service.Booking, *serviceMockSet) {
	m := &serviceMockSet{
		repo:              bookingMocks.NewMockBooking(ctrl),
		hallRepo:          hallMocks.NewMockHall(ctrl),
		billingRepo:       billingMocks.NewMockBilling(ctrl),
		featureRepo:       featureMocks.NewMockFeature(ctrl),
		serviceRepo:       serviceMocks.NewMockService(ctrl),
		inventoryRepo:     inventoryMocks.NewMockInventory(ctrl),
		paymentRepo:       paymentMocks.NewMockPayment(ctrl),
		communicationRepo: communicationMocks.NewMockCommunication(ctrl),
		ticketRepo:        ticketMocks.NewMockTicket(ctrl),
		cache:             cacheMocks.NewMockRedisCache(ctrl),
		kafka:             kafkaMocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Kafka.Topics.BookingStatus = "booking.status"

	svc := service.New(
		m.repo,
		m.hallRepo,
		m.billingRepo,
		m.featureRepo,
		m.serviceRepo,
		m.inventoryRepo,
		m.paymentRepo,
		m.communicationRepo,
		m.ticketRepo,
		cfg,
		m.cache,
		mocks.NewOtel(),
		m.kafka,
	)

	return svc, m
}

// async cache invalidation and kafka publishes race the test exit;
// they are not the behavior under test.
func allowAsyncSideEffects(m *serviceMockSet) {
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func TestBookingService_PublicCreate(t *testing.T) {
	hall := hallModel.Hall{
		ID:          "hall-1",
		RateMorning: 5000,
		RateEvening: 7000,
		RateFullday: 10000,
		Active:      true,
	}

	tests := []struct {
		name           string
		req            dto.PublicCreateBookingRequest
		setupMock      func(m *serviceMockSet)
		wantErr        bool
		wantBaseAmount float64
	}{
		{
			name: "lands pending with rate card amount",
			req: dto.PublicCreateBookingRequest{
				HallID:       "hall-1",
				CustomerName: "Anita Rao",
				EventDate:    "2026-10-12",
				TimeSlot:     model.SlotEvening,
			},
			setupMock: func(m *serviceMockSet) {
				m.hallRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(hall, nil)
				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) error {
						assert.Equal(t, model.StatusPending, booking.Status)
						assert.InDelta(t, 7000, booking.BaseAmount, 0.001)
						assert.Equal(t, constant.ContextGuest, booking.CreatedBy)

						return nil
					})
			},
		},
		{
			name: "unknown hall rejected",
			req: dto.PublicCreateBookingRequest{
				HallID:       "missing",
				CustomerName: "Anita Rao",
				EventDate:    "2026-10-12",
				TimeSlot:     model.SlotMorning,
			},
			setupMock: func(m *serviceMockSet) {
				m.hallRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(hallModel.Hall{}, nil)
			},
			wantErr: true,
		},
		{
			name: "inactive hall rejected",
			req: dto.PublicCreateBookingRequest{
				HallID:       "hall-1",
				CustomerName: "Anita Rao",
				EventDate:    "2026-10-12",
				TimeSlot:     model.SlotMorning,
			},
			setupMock: func(m *serviceMockSet) {
				inactive := hall
				inactive.Active = false

				m.hallRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(inactive, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newService(ctrl)
			allowAsyncSideEffects(m)
			tt.setupMock(m)

			err := svc.PublicCreate(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_UpdateStatus(t *testing.T) {
	booking := model.Booking{
		ID:           "booking-1",
		HallID:       "hall-1",
		CustomerName: "Anita Rao",
		Status:       model.StatusPending,
	}

	t.Run("reason appends one communication and stamps last contact", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)
		allowAsyncSideEffects(m)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)

		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, model.StatusConfirmed, fields[model.FieldStatus])

				lastContact, ok := fields[model.FieldLastContactDate].(time.Time)
				assert.True(t, ok, "last contact date must be set when a reason is given")
				assert.WithinDuration(t, time.Now(), lastContact, time.Minute)

				return nil
			})

		m.communicationRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, comm communicationModel.Communication) error {
				assert.Equal(t, "booking-1", comm.BookingID)
				assert.Equal(t, "Status changed to confirmed. Reason: advance received", comm.Detail)
				assert.Equal(t, "Anita Rao", comm.Recipient)
				assert.Equal(t, "test-user-id", comm.Sender)

				return nil
			}).
			Times(1)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		err := svc.UpdateStatus(ctx, dto.UpdateStatusRequest{
			Status: model.StatusConfirmed,
			Reason: "advance received",
		}, "booking-1")

		assert.NoError(t, err)
	})

	t.Run("no reason skips the communication log", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)
		allowAsyncSideEffects(m)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)

		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, model.StatusCancelled, fields[model.FieldStatus])
				assert.NotContains(t, fields, model.FieldLastContactDate)

				return nil
			})

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		err := svc.UpdateStatus(ctx, dto.UpdateStatusRequest{Status: model.StatusCancelled}, "booking-1")

		assert.NoError(t, err)
	})

	t.Run("unknown booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)
		allowAsyncSideEffects(m)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, nil)

		err := svc.UpdateStatus(context.Background(), dto.UpdateStatusRequest{Status: model.StatusActive}, "missing")

		assert.Error(t, err)
	})
}

func TestBookingService_GetCharges(t *testing.T) {
	booking := model.Booking{
		ID:         "booking-1",
		HallID:     "hall-1",
		BaseAmount: 1000,
		Status:     model.StatusConfirmed,
	}

	hall := hallModel.Hall{ID: "hall-1", OrganizationID: "org-1"}
	settings := billingModel.Settings{ID: "settings-1", OrganizationID: "org-1", TaxPercentage: 18}

	t.Run("full charge summary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)
		allowAsyncSideEffects(m)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
		m.hallRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hall, nil)
		m.billingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(settings, nil)

		m.featureRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]featureModel.Feature{{Name: "Stage decor", Price: 100, Quantity: 2}}, nil)
		m.serviceRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]serviceModel.Service{
				{Name: "Catering", Price: 300},
				{Name: "Photography", Price: 900, DirectPay: true},
			}, nil)
		m.inventoryRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]inventoryModel.Inventory{{Name: "Chairs", Price: 1, Quantity: 100}}, nil)
		m.paymentRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]paymentModel.Payment{{Amount: 500}, {Amount: 300}}, nil)

		res, err := svc.GetCharges(context.Background(), "booking-1")

		assert.NoError(t, err)
		assert.InDelta(t, 1600, res.TotalCharges, 0.001)
		assert.InDelta(t, 288, res.TaxAmount, 0.001)
		assert.InDelta(t, 1888, res.BillAmount, 0.001)
		assert.InDelta(t, 800, res.TotalPaid, 0.001)
		assert.InDelta(t, 1088, res.Balance, 0.001)
	})

	t.Run("line item failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)
		allowAsyncSideEffects(m)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
		m.hallRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hall, nil)
		m.billingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(settings, nil)
		m.featureRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := svc.GetCharges(context.Background(), "booking-1")

		assert.Error(t, err)
	})
}

func TestBookingService_GetManage(t *testing.T) {
	booking := model.Booking{
		ID:         "booking-1",
		HallID:     "hall-1",
		BaseAmount: 1000,
		Status:     model.StatusActive,
	}

	t.Run("failed sections degrade to empty lists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)
		allowAsyncSideEffects(m)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
		m.hallRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(hallModel.Hall{ID: "hall-1", OrganizationID: "org-1"}, nil)
		m.billingRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(billingModel.Settings{}, nil)

		m.featureRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))
		m.serviceRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]serviceModel.Service{{Name: "Catering", Price: 300}}, nil)
		m.inventoryRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)
		m.paymentRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]paymentModel.Payment{{Amount: 200}}, nil)
		m.communicationRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))
		m.ticketRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)

		res, err := svc.GetManage(context.Background(), "booking-1")

		assert.NoError(t, err)
		assert.Equal(t, "booking-1", res.Booking.ID)
		assert.Empty(t, res.Features)
		assert.Len(t, res.Services, 1)
		assert.Empty(t, res.Communications)
		assert.InDelta(t, 200, res.Charges.TotalPaid, 0.001)
	})
}
