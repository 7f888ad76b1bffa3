package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hallbook/infras/otel"
	"hallbook/infras/postgres"
	bookingModel "hallbook/internal/domains/booking/model"
	paymentModel "hallbook/internal/domains/payment/model"
	"hallbook/internal/domains/stats/model"
	"hallbook/shared/constant"

	"github.com/rs/zerolog/log"
)

type Stats interface {
	BookingsByStatus(ctx context.Context) ([]model.StatusCount, error)
	RevenueByMonth(ctx context.Context, months int) ([]model.MonthlyRevenue, error)
	UpcomingEventsCount(ctx context.Context) (int, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Stats {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) BookingsByStatus(ctx context.Context) (res []model.StatusCount, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".BookingsByStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(`
		SELECT status, COUNT(*) AS count
		FROM %s
		GROUP BY status
		ORDER BY status`, bookingModel.TableName)

	if err = repo.db.Read.SelectContext(ctx, &res, query); err != nil {
		log.Error().Err(err).Msg("failed to query bookings by status")

		return nil, fmt.Errorf("failed to query bookings by status: %w", err)
	}

	return res, nil
}

func (repo *repositoryImpl) RevenueByMonth(ctx context.Context, months int) (res []model.MonthlyRevenue, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".RevenueByMonth")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(`
		SELECT to_char(payment_date, 'YYYY-MM') AS month, COALESCE(SUM(amount), 0) AS revenue
		FROM %s
		GROUP BY 1
		ORDER BY 1 DESC
		LIMIT $1`, paymentModel.TableName)

	if err = repo.db.Read.SelectContext(ctx, &res, query, months); err != nil {
		log.Error().Err(err).Msg("failed to query revenue by month")

		return nil, fmt.Errorf("failed to query revenue by month: %w", err)
	}

	return res, nil
}

// UpcomingEventsCount counts confirmed and active bookings from today
// onwards.
func (repo *repositoryImpl) UpcomingEventsCount(ctx context.Context) (res int, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".UpcomingEventsCount")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM %s
		WHERE event_date >= CURRENT_DATE AND status IN ($1, $2)`, bookingModel.TableName)

	if err = repo.db.Read.GetContext(ctx, &res, query, bookingModel.StatusConfirmed, bookingModel.StatusActive); err != nil {
		log.Error().Err(err).Msg("failed to count upcoming events")

		return 0, fmt.Errorf("failed to count upcoming events: %w", err)
	}

	return res, nil
}
