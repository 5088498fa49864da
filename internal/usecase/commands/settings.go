package commands

import (
	"context"
	"log/slog"

	"glamping-booking/internal/domain/availability"
	"glamping-booking/internal/domain/calendar"
	"glamping-booking/internal/domain/pricing"
	"glamping-booking/internal/infra"
	"glamping-booking/internal/pkg/errs"
	"glamping-booking/internal/usecase/queries"
	"glamping-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCatalogItemNotFound = errs.Mark(errs.New("Settings item not found"), errs.ErrNotFound)
	ErrBlockedRangeMissing = errs.Mark(errs.New("Blocked date range not found"), errs.ErrNotFound)
)

type BlockedRangeInput struct {
	Product   pricing.Product
	StartDate calendar.Date
	EndDate   calendar.Date
	Reason    string
}

type SettingsCommands interface {
	// Replace stores a whole settings document after normalizing it.
	Replace(ctx context.Context, product pricing.Product, doc map[string]any) (pricing.Settings, error)
	AddCustomAddOn(ctx context.Context, product pricing.Product, addOn pricing.CustomAddOn) (pricing.Settings, error)
	RemoveCustomAddOn(ctx context.Context, product pricing.Product, id string) (pricing.Settings, error)
	AddSpecialPeriod(ctx context.Context, product pricing.Product, period pricing.SpecialPeriod) (pricing.Settings, error)
	UpdateSpecialPeriod(ctx context.Context, product pricing.Product, period pricing.SpecialPeriod) (pricing.Settings, error)
	RemoveSpecialPeriod(ctx context.Context, product pricing.Product, id string) (pricing.Settings, error)
	CreateBlockedRange(ctx context.Context, in BlockedRangeInput) (*queries.BlockedRangeView, error)
	DeleteBlockedRange(ctx context.Context, id uuid.UUID) error
}

type settingsCommandsImpl struct {
	uow      shared.UnitOfWork
	calendar *shared.BookingCalendar
}

func NewSettingsCommands(uow shared.UnitOfWork, cal *shared.BookingCalendar) SettingsCommands {
	return &settingsCommandsImpl{uow: uow, calendar: cal}
}

func (uc *settingsCommandsImpl) Replace(ctx context.Context, product pricing.Product, doc map[string]any) (pricing.Settings, error) {
	return uc.mutate(ctx, product, func(current pricing.Settings) (pricing.Settings, error) {
		return pricing.Normalize(product, doc), nil
	})
}

func (uc *settingsCommandsImpl) AddCustomAddOn(ctx context.Context, product pricing.Product, addOn pricing.CustomAddOn) (pricing.Settings, error) {
	if addOn.ID == "" {
		addOn.ID = uuid.NewString()
	}
	return uc.mutateCatalog(ctx, product, func(c *pricing.Catalog) error {
		return c.AddCustomAddOn(addOn)
	})
}

func (uc *settingsCommandsImpl) RemoveCustomAddOn(ctx context.Context, product pricing.Product, id string) (pricing.Settings, error) {
	return uc.mutateCatalog(ctx, product, func(c *pricing.Catalog) error {
		return c.RemoveCustomAddOn(id)
	})
}

func (uc *settingsCommandsImpl) AddSpecialPeriod(ctx context.Context, product pricing.Product, period pricing.SpecialPeriod) (pricing.Settings, error) {
	if period.ID == "" {
		period.ID = uuid.NewString()
	}
	if period.Multiplier <= 0 {
		period.Multiplier = 1
	}
	return uc.mutateCatalog(ctx, product, func(c *pricing.Catalog) error {
		return c.AddSpecialPeriod(period)
	})
}

func (uc *settingsCommandsImpl) UpdateSpecialPeriod(ctx context.Context, product pricing.Product, period pricing.SpecialPeriod) (pricing.Settings, error) {
	if period.Multiplier <= 0 {
		period.Multiplier = 1
	}
	return uc.mutateCatalog(ctx, product, func(c *pricing.Catalog) error {
		return c.UpdateSpecialPeriod(period)
	})
}

func (uc *settingsCommandsImpl) RemoveSpecialPeriod(ctx context.Context, product pricing.Product, id string) (pricing.Settings, error) {
	return uc.mutateCatalog(ctx, product, func(c *pricing.Catalog) error {
		return c.RemoveSpecialPeriod(id)
	})
}

func (uc *settingsCommandsImpl) mutateCatalog(ctx context.Context, product pricing.Product, fn func(c *pricing.Catalog) error) (pricing.Settings, error) {
	return uc.mutate(ctx, product, func(current pricing.Settings) (pricing.Settings, error) {
		if err := fn(current.CatalogRef()); err != nil {
			return nil, catalogError(err)
		}
		return current, nil
	})
}

// mutate applies fn to the stored settings while holding the document row lock.
func (uc *settingsCommandsImpl) mutate(ctx context.Context, product pricing.Product, fn func(current pricing.Settings) (pricing.Settings, error)) (pricing.Settings, error) {
	var saved pricing.Settings
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := shared.EnsureSettings(ctx, tx.Settings(), product); derr != nil {
			return derr
		}
		doc, derr := tx.Settings().LockDocument(ctx, product)
		if derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}

		next, derr := fn(pricing.Normalize(product, doc))
		if derr != nil {
			return derr
		}
		out, derr := pricing.ToDocument(next)
		if derr != nil {
			return errs.Wrap(derr, "failed to encode settings")
		}
		if derr = tx.Settings().Save(ctx, product, out, uc.calendar.Now()); derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		saved = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("pricing settings updated", "product", product.String())
	return saved, nil
}

func catalogError(err error) error {
	switch {
	case errs.Is(err, pricing.ErrCatalogItemNotFound):
		return ErrCatalogItemNotFound
	case errs.Is(err, pricing.ErrDuplicateCatalogItem):
		return errs.Mark(errs.New("An item with this id already exists"), errs.ErrValidation)
	case errs.Is(err, pricing.ErrInvalidSettings):
		return errs.Mark(err, errs.ErrValidation)
	default:
		return err
	}
}

func (uc *settingsCommandsImpl) CreateBlockedRange(ctx context.Context, in BlockedRangeInput) (*queries.BlockedRangeView, error) {
	if !in.Product.IsValid() {
		return nil, errs.Mark(errs.New("Unknown product"), errs.ErrValidation)
	}
	if in.StartDate.IsZero() || in.EndDate.IsZero() {
		return nil, errs.Mark(errs.New("Start and end dates are required"), errs.ErrValidation)
	}
	if in.EndDate.Before(in.StartDate) {
		return nil, errs.Mark(errs.New("End date must not be before start date"), errs.ErrValidation)
	}

	r := availability.BlockedRange{
		ID:        uuid.New(),
		Product:   in.Product,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Reason:    in.Reason,
		CreatedAt: uc.calendar.Now(),
	}
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.BlockedRanges().Create(ctx, r)
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	view := queries.NewBlockedRangeView(r)
	return &view, nil
}

func (uc *settingsCommandsImpl) DeleteBlockedRange(ctx context.Context, id uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.BlockedRanges().Delete(ctx, id)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBlockedRangeMissing
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
