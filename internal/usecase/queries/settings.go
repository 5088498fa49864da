package queries

import (
	"context"

	"glamping-booking/internal/domain/pricing"
	"glamping-booking/internal/pkg/errs"
	"glamping-booking/internal/usecase/shared"
)

type SettingsQueries interface {
	Get(ctx context.Context, product pricing.Product) (pricing.Settings, error)
	BlockedRanges(ctx context.Context, product *pricing.Product) ([]BlockedRangeView, error)
}

type settingsQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewSettingsQueries(uow shared.UnitOfWork) SettingsQueries {
	return &settingsQueriesImpl{uow: uow}
}

func (q *settingsQueriesImpl) Get(ctx context.Context, product pricing.Product) (pricing.Settings, error) {
	return shared.LoadSettings(ctx, q.uow.Reads().Settings(), product)
}

func (q *settingsQueriesImpl) BlockedRanges(ctx context.Context, product *pricing.Product) ([]BlockedRangeView, error) {
	ranges, err := q.uow.Reads().BlockedRanges().List(ctx, product)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	views := make([]BlockedRangeView, 0, len(ranges))
	for _, r := range ranges {
		views = append(views, NewBlockedRangeView(r))
	}
	return views, nil
}
