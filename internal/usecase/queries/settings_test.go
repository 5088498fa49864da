//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"glamping-booking/internal/domain/availability"
	"glamping-booking/internal/domain/calendar"
	"glamping-booking/internal/domain/pricing"
	"glamping-booking/internal/infra"
	"glamping-booking/internal/pkg/errs"
	"glamping-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSettingsQueries_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 保存済みの設定を正規化して返す", func(t *testing.T) {
		m := newUOWMocks(t)
		m.settings.EXPECT().LoadDocument(gomock.Any(), pricing.ProductCamping).
			Return(map[string]any{"vatRate": 0.1}, nil)

		got, err := queries.NewSettingsQueries(m.uow).Get(ctx, pricing.ProductCamping)

		require.NoError(t, err)
		camping, ok := got.(*pricing.CampingSettings)
		require.True(t, ok)
		assert.InDelta(t, 0.1, camping.VATRate, 1e-9)
		assert.Equal(t, pricing.DefaultMaxUnitsPerDay, camping.MaxUnitsPerDay)
	})

	t.Run("正常系: 未保存ならデフォルトを保存して返す", func(t *testing.T) {
		m := newUOWMocks(t)
		m.settings.EXPECT().LoadDocument(gomock.Any(), pricing.ProductBarbecue).
			Return(nil, infra.WrapRepoErr("settings not found", pgx.ErrNoRows, infra.KindNotFound))
		m.settings.EXPECT().InsertDefault(gomock.Any(), pricing.ProductBarbecue, gomock.Any()).Return(nil)

		got, err := queries.NewSettingsQueries(m.uow).Get(ctx, pricing.ProductBarbecue)

		require.NoError(t, err)
		assert.Equal(t, pricing.DefaultBarbecueSettings(), got)
	})

	t.Run("異常系: DBエラー", func(t *testing.T) {
		m := newUOWMocks(t)
		m.settings.EXPECT().LoadDocument(gomock.Any(), pricing.ProductBarbecue).Return(nil, errors.New("connection reset"))

		_, err := queries.NewSettingsQueries(m.uow).Get(ctx, pricing.ProductBarbecue)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}

func TestSettingsQueries_BlockedRanges(t *testing.T) {
	ctx := context.Background()
	product := pricing.ProductCamping
	createdAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	r := availability.BlockedRange{
		ID:        uuid.New(),
		Product:   product,
		StartDate: calendar.MustParse("2026-04-01"),
		EndDate:   calendar.MustParse("2026-04-03"),
		Reason:    "Maintenance",
		CreatedAt: createdAt,
	}

	m := newUOWMocks(t)
	m.blocked.EXPECT().List(gomock.Any(), &product).Return([]availability.BlockedRange{r}, nil)

	got, err := queries.NewSettingsQueries(m.uow).BlockedRanges(ctx, &product)

	require.NoError(t, err)
	assert.Equal(t, []queries.BlockedRangeView{{
		ID:        r.ID,
		Product:   "camping",
		StartDate: "2026-04-01",
		EndDate:   "2026-04-03",
		Reason:    "Maintenance",
		CreatedAt: createdAt,
	}}, got)
}
