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
	"glamping-booking/internal/domain/reservation"
	"glamping-booking/internal/pkg/errs"
	"glamping-booking/internal/usecase/queries"
	"glamping-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var bookingDate = calendar.DateOf(fixedNow, time.UTC).AddDays(7)

func newAvailabilityQueries(m *uowMocks) queries.AvailabilityQueries {
	factory := reservation.NewFactory(m.clock, pricing.NewDefaultPriceCalculator(), availability.DefaultHoldTTL)
	return queries.NewAvailabilityQueries(m.uow, factory, m.calendar)
}

func heldAt(t *testing.T, b *builder.ReservationBuilder, createdAt time.Time) *reservation.Reservation {
	t.Helper()
	return b.With(func(b *builder.ReservationBuilder) { b.Date = bookingDate }).BuildReservation(createdAt)
}

func TestAvailabilityQueries_Availability(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 予約のない日は全枠が空いている", func(t *testing.T) {
		m := newUOWMocks(t)
		m.storedSettings(t, pricing.DefaultCampingSettings())
		m.reservations.EXPECT().ListByDate(gomock.Any(), pricing.ProductCamping, bookingDate).Return(nil, nil)
		m.blocked.EXPECT().ListCovering(gomock.Any(), pricing.ProductCamping, bookingDate).Return(nil, nil)

		view, err := newAvailabilityQueries(m).Availability(ctx, pricing.ProductCamping, bookingDate)

		require.NoError(t, err)
		assert.Equal(t, "camping", view.Product)
		assert.Equal(t, bookingDate.String(), view.Date)
		assert.True(t, view.OK())
		assert.Equal(t, pricing.DefaultMaxUnitsPerDay, view.Constraints.RemainingUnits)
		assert.Equal(t, availability.CampingSlots, view.Constraints.FreeSlots)
	})

	t.Run("正常系: 期限切れの仮押さえは枠を消費しない", func(t *testing.T) {
		m := newUOWMocks(t)
		m.storedSettings(t, pricing.DefaultBarbecueSettings())
		stale := heldAt(t, builder.NewBarbecueBuilder(), fixedNow.Add(-2*availability.DefaultHoldTTL))
		m.reservations.EXPECT().ListByDate(gomock.Any(), pricing.ProductBarbecue, bookingDate).
			Return([]*reservation.Reservation{stale}, nil)
		m.blocked.EXPECT().ListCovering(gomock.Any(), pricing.ProductBarbecue, bookingDate).Return(nil, nil)

		view, err := newAvailabilityQueries(m).Availability(ctx, pricing.ProductBarbecue, bookingDate)

		require.NoError(t, err)
		assert.True(t, view.OK())
	})

	t.Run("正常系: 有効な仮押さえがあればバーベキューは埋まっている", func(t *testing.T) {
		m := newUOWMocks(t)
		m.storedSettings(t, pricing.DefaultBarbecueSettings())
		held := heldAt(t, builder.NewBarbecueBuilder(), fixedNow.Add(-time.Minute))
		m.reservations.EXPECT().ListByDate(gomock.Any(), pricing.ProductBarbecue, bookingDate).
			Return([]*reservation.Reservation{held}, nil)
		m.blocked.EXPECT().ListCovering(gomock.Any(), pricing.ProductBarbecue, bookingDate).Return(nil, nil)

		view, err := newAvailabilityQueries(m).Availability(ctx, pricing.ProductBarbecue, bookingDate)

		require.NoError(t, err)
		assert.Equal(t, availability.StatusRejected, view.Status)
		assert.Equal(t, "This date is already booked", view.Reason)
	})

	t.Run("正常系: ブロック期間は理由付きで返す", func(t *testing.T) {
		m := newUOWMocks(t)
		m.storedSettings(t, pricing.DefaultCampingSettings())
		m.reservations.EXPECT().ListByDate(gomock.Any(), pricing.ProductCamping, bookingDate).Return(nil, nil)
		m.blocked.EXPECT().ListCovering(gomock.Any(), pricing.ProductCamping, bookingDate).
			Return([]availability.BlockedRange{{
				ID:        uuid.New(),
				Product:   pricing.ProductCamping,
				StartDate: bookingDate,
				EndDate:   bookingDate.AddDays(1),
				Reason:    "Private event",
			}}, nil)

		view, err := newAvailabilityQueries(m).Availability(ctx, pricing.ProductCamping, bookingDate)

		require.NoError(t, err)
		assert.Equal(t, availability.StatusBlocked, view.Status)
		assert.Equal(t, "Private event", view.Reason)
	})

	t.Run("異常系: 予約の読み込みに失敗", func(t *testing.T) {
		m := newUOWMocks(t)
		m.storedSettings(t, pricing.DefaultCampingSettings())
		m.reservations.EXPECT().ListByDate(gomock.Any(), pricing.ProductCamping, bookingDate).
			Return(nil, errors.New("connection reset"))

		_, err := newAvailabilityQueries(m).Availability(ctx, pricing.ProductCamping, bookingDate)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}

func TestAvailabilityQueries_Quote(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 見積もりと判定を書き込みなしで返す", func(t *testing.T) {
		m := newUOWMocks(t)
		m.storedSettings(t, pricing.DefaultCampingSettings())
		m.reservations.EXPECT().ListByDate(gomock.Any(), pricing.ProductCamping, bookingDate).Return(nil, nil)
		m.blocked.EXPECT().ListCovering(gomock.Any(), pricing.ProductCamping, bookingDate).Return(nil, nil)
		req := builder.NewCampingBuilder().With(func(b *builder.ReservationBuilder) { b.Date = bookingDate }).BuildDomain()

		view, err := newAvailabilityQueries(m).Quote(ctx, pricing.ProductCamping, req)

		require.NoError(t, err)
		expected := pricing.QuoteCamping(pricing.DefaultCampingSettings(), req.CampingInput())
		assert.Equal(t, expected.Total, view.Quote.Total)
		assert.True(t, view.Availability.OK())
	})

	t.Run("異常系: 不正なリクエストは検証エラー", func(t *testing.T) {
		m := newUOWMocks(t)
		req := builder.NewCampingBuilder().With(func(b *builder.ReservationBuilder) {
			b.Date = bookingDate
			b.Location = "beach"
		}).BuildDomain()

		_, err := newAvailabilityQueries(m).Quote(ctx, pricing.ProductCamping, req)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("異常系: カタログにない追加オプションは拒否", func(t *testing.T) {
		m := newUOWMocks(t)
		m.storedSettings(t, pricing.DefaultBarbecueSettings())
		req := builder.NewBarbecueBuilder().With(func(b *builder.ReservationBuilder) {
			b.Date = bookingDate
			b.CustomAddOnIDs = []string{"gone"}
		}).BuildDomain()

		_, err := newAvailabilityQueries(m).Quote(ctx, pricing.ProductBarbecue, req)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrValidation))
		assert.Contains(t, err.Error(), "no longer available")
	})
}
