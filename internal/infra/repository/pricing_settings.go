package repository

import (
	"context"
	"encoding/json"
	"time"

	"glamping-booking/internal/domain/pricing"
	"glamping-booking/internal/infra"
	sqlc "glamping-booking/internal/infra/sqlc/generated"
	"glamping-booking/internal/pkg/pgconv"
)

type PricingSettingsQueries interface {
	GetPricingSettings(ctx context.Context, db sqlc.DBTX, product string) ([]byte, error)
	GetPricingSettingsForUpdate(ctx context.Context, db sqlc.DBTX, product string) ([]byte, error)
	InsertDefaultPricingSettings(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertDefaultPricingSettingsParams) error
	UpsertPricingSettings(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertPricingSettingsParams) error
}

// PricingSettingsRepository stores the raw settings documents. Decoding into
// typed settings happens in the pricing package so that malformed documents
// degrade to defaults instead of failing reads.
type PricingSettingsRepository struct {
	queries PricingSettingsQueries
	db      sqlc.DBTX
}

func NewPricingSettingsRepository(queries PricingSettingsQueries, db sqlc.DBTX) *PricingSettingsRepository {
	return &PricingSettingsRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PricingSettingsRepository) LoadDocument(ctx context.Context, product pricing.Product) (map[string]any, error) {
	raw, err := r.queries.GetPricingSettings(ctx, r.db, product.String())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pricing settings not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load pricing settings", err)
	}
	return decodeDocument(raw), nil
}

func (r *PricingSettingsRepository) LockDocument(ctx context.Context, product pricing.Product) (map[string]any, error) {
	raw, err := r.queries.GetPricingSettingsForUpdate(ctx, r.db, product.String())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pricing settings not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock pricing settings", err)
	}
	return decodeDocument(raw), nil
}

func (r *PricingSettingsRepository) InsertDefault(ctx context.Context, product pricing.Product, doc map[string]any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return infra.WrapRepoErr("failed to encode pricing settings", err)
	}
	err = r.queries.InsertDefaultPricingSettings(ctx, r.db, sqlc.InsertDefaultPricingSettingsParams{
		Product:  product.String(),
		Document: raw,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to insert default pricing settings", err)
	}
	return nil
}

func (r *PricingSettingsRepository) Save(ctx context.Context, product pricing.Product, doc map[string]any, updatedAt time.Time) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return infra.WrapRepoErr("failed to encode pricing settings", err)
	}
	err = r.queries.UpsertPricingSettings(ctx, r.db, sqlc.UpsertPricingSettingsParams{
		Product:   product.String(),
		Document:  raw,
		UpdatedAt: pgconv.TimeToPgtype(updatedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to save pricing settings", err)
	}
	return nil
}

// decodeDocument returns nil for an unreadable document; Normalize then
// falls back to defaults.
func decodeDocument(raw []byte) map[string]any {
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil
	}
	return doc
}
