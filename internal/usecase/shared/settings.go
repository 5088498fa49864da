package shared

import (
	"context"
	"log/slog"

	"glamping-booking/internal/domain/pricing"
	"glamping-booking/internal/infra"
	"glamping-booking/internal/pkg/errs"
)

// LoadSettings reads the settings document of product. A missing document is
// created from defaults; a malformed one is normalized silently.
func LoadSettings(ctx context.Context, repo SettingsRepository, product pricing.Product) (pricing.Settings, error) {
	doc, err := repo.LoadDocument(ctx, product)
	if err == nil {
		return pricing.Normalize(product, doc), nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	settings := pricing.DefaultSettings(product)
	if err := EnsureSettings(ctx, repo, product); err != nil {
		// defaults are still usable for this request
		slog.Warn("failed to persist default settings", "product", product.String(), "error", err.Error())
	}
	return settings, nil
}

// EnsureSettings stores the defaults unless a document already exists.
func EnsureSettings(ctx context.Context, repo SettingsRepository, product pricing.Product) error {
	doc, err := pricing.ToDocument(pricing.DefaultSettings(product))
	if err != nil {
		return errs.Wrap(err, "failed to encode default settings")
	}
	if err := repo.InsertDefault(ctx, product, doc); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
