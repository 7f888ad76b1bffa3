package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hallbook/infras/otel"
	"hallbook/infras/postgres"
	"hallbook/internal/domains/microsite/model"
	"hallbook/shared/constant"
	gDto "hallbook/shared/dto"
	gRepo "hallbook/shared/repository"
	"hallbook/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Microsite interface {
	Insert(ctx context.Context, model model.Section) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Section, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Section, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	Reorder(ctx context.Context, hallID string, sectionIDs []string, user string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Section]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Microsite {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Section](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Reorder rewrites the positions of the hall's sections to match the
// given order, 0 through n-1, in one transaction.
func (repo *repositoryImpl) Reorder(ctx context.Context, hallID string, sectionIDs []string, user string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Reorder")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin reorder transaction")

		return fmt.Errorf("failed to begin reorder transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback reorder transaction")
			}
		}
	}()

	now := timezone.Now()

	for position, sectionID := range sectionIDs {
		updatedFields := map[string]any{
			model.FieldPosition:      position,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: user,
		}

		filter := gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				gDto.Filter{
					Field:    model.FieldID,
					Operator: gDto.FilterOperatorEq,
					Value:    sectionID,
					Table:    model.TableName,
				},
				gDto.Filter{
					Field:    model.FieldHallID,
					Operator: gDto.FilterOperatorEq,
					Value:    hallID,
					Table:    model.TableName,
				},
			},
		}

		if err = repo.UpdateTx(ctx, tx, updatedFields, filter); err != nil {
			log.Error().Err(err).Str("sectionID", sectionID).Msg("failed to reindex section")

			return fmt.Errorf("failed to reindex section: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit reorder transaction")

		return fmt.Errorf("failed to commit reorder transaction: %w", err)
	}

	return nil
}
