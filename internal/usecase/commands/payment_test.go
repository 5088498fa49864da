//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"glamping-booking/internal/domain/pricing"
	"glamping-booking/internal/domain/reservation"
	"glamping-booking/internal/infra"
	"glamping-booking/internal/pkg/errs"
	"glamping-booking/internal/usecase/commands"
	"glamping-booking/internal/usecase/queries"
	"glamping-booking/tests/common/builder"
	commandsmock "glamping-booking/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPaymentCommands_Confirm(t *testing.T) {
	ctx := context.Background()

	pending := func() *builder.ReservationBuilder {
		return builder.NewCampingBuilder().With(func(b *builder.ReservationBuilder) { b.Date = bookingDate })
	}
	// dayOf makes the date read under the lock return r and others.
	dayOf := func(m *uowMocks, r *reservation.Reservation, others ...*reservation.Reservation) {
		m.storedSettings(t, pricing.DefaultSettings(r.Product()))
		m.reservations.EXPECT().ListByDate(gomock.Any(), r.Product(), r.Date()).
			Return(append([]*reservation.Reservation{r}, others...), nil)
		m.blocked.EXPECT().ListCovering(gomock.Any(), r.Product(), r.Date()).Return(nil, nil)
	}

	t.Run("正常系: 支払い済みに更新して確定通知を1回だけ発行する", func(t *testing.T) {
		m := newUOWMocks(t)
		publisher := commandsmock.NewMockConfirmationPublisher(gomock.NewController(t))
		r := pending().BuildReservation(fixedNow.Add(-time.Minute))

		m.reservations.EXPECT().FindByID(gomock.Any(), r.ID()).Return(r, nil)
		m.days.EXPECT().Lock(gomock.Any(), r.Product(), r.Date()).Return(nil)
		dayOf(m, r)
		m.reservations.EXPECT().MarkPaid(gomock.Any(), r.ID(), fixedNow).Return(true, nil)
		publisher.EXPECT().PublishConfirmed(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e commands.ReservationConfirmedEvent) error {
				assert.Equal(t, commands.EventReservationConfirmed, e.Type)
				assert.Equal(t, r.ID(), e.Reservation.ID)
				assert.True(t, e.Reservation.IsPaid)
				return nil
			}).Times(1)

		res, err := commands.NewPaymentCommands(m.uow, m.calendar, publisher).
			Confirm(ctx, commands.PaymentEvent{Type: commands.PaymentSucceeded, ReservationID: r.ID()})

		require.NoError(t, err)
		assert.False(t, res.Replayed)
		assert.False(t, res.Ignored)
		assert.True(t, res.Reservation.IsPaid)
		assert.Nil(t, res.Reservation.HoldExpiresAt)
		require.NotNil(t, res.Reservation.PaidAt)
		assert.Equal(t, fixedNow, *res.Reservation.PaidAt)
	})

	t.Run("正常系: 再送された支払いイベントは通知しない", func(t *testing.T) {
		m := newUOWMocks(t)
		publisher := commandsmock.NewMockConfirmationPublisher(gomock.NewController(t))
		r := pending().BuildReservation(fixedNow.Add(-time.Hour))
		require.NoError(t, r.MarkPaid(fixedNow.Add(-30*time.Minute)))

		m.reservations.EXPECT().FindByID(gomock.Any(), r.ID()).Return(r, nil)
		m.days.EXPECT().Lock(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		publisher.EXPECT().PublishConfirmed(gomock.Any(), gomock.Any()).Times(0)

		res, err := commands.NewPaymentCommands(m.uow, m.calendar, publisher).
			Confirm(ctx, commands.PaymentEvent{Type: commands.PaymentSucceeded, ReservationID: r.ID()})

		require.NoError(t, err)
		assert.True(t, res.Replayed)
		assert.True(t, res.Reservation.IsPaid)
	})

	t.Run("正常系: 同時配信で更新できなかった場合も再送扱い", func(t *testing.T) {
		m := newUOWMocks(t)
		publisher := commandsmock.NewMockConfirmationPublisher(gomock.NewController(t))
		r := pending().BuildReservation(fixedNow.Add(-time.Minute))

		m.reservations.EXPECT().FindByID(gomock.Any(), r.ID()).Return(r, nil)
		m.days.EXPECT().Lock(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		dayOf(m, r)
		m.reservations.EXPECT().MarkPaid(gomock.Any(), r.ID(), gomock.Any()).Return(false, nil)
		publisher.EXPECT().PublishConfirmed(gomock.Any(), gomock.Any()).Times(0)

		res, err := commands.NewPaymentCommands(m.uow, m.calendar, publisher).
			Confirm(ctx, commands.PaymentEvent{Type: commands.PaymentSucceeded, ReservationID: r.ID()})

		require.NoError(t, err)
		assert.True(t, res.Replayed)
	})

	t.Run("正常系: 通知の失敗は支払い確定を取り消さない", func(t *testing.T) {
		m := newUOWMocks(t)
		publisher := commandsmock.NewMockConfirmationPublisher(gomock.NewController(t))
		r := pending().BuildReservation(fixedNow.Add(-time.Minute))

		m.reservations.EXPECT().FindByID(gomock.Any(), r.ID()).Return(r, nil)
		m.days.EXPECT().Lock(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		dayOf(m, r)
		m.reservations.EXPECT().MarkPaid(gomock.Any(), r.ID(), gomock.Any()).Return(true, nil)
		publisher.EXPECT().PublishConfirmed(gomock.Any(), gomock.Any()).Return(errors.New("broker unavailable"))

		res, err := commands.NewPaymentCommands(m.uow, m.calendar, publisher).
			Confirm(ctx, commands.PaymentEvent{Type: commands.PaymentSucceeded, ReservationID: r.ID()})

		require.NoError(t, err)
		assert.True(t, res.Reservation.IsPaid)
	})

	t.Run("正常系: 未払いのキャンプ予約は日付を塞がず別の確定予約と両立する", func(t *testing.T) {
		m := newUOWMocks(t)
		r := pending().BuildReservation(fixedNow.Add(-time.Minute))
		otherPending := pending().With(func(b *builder.ReservationBuilder) {
			b.Location = pricing.LocationMountain
		}).BuildReservation(fixedNow.Add(-2 * time.Minute))

		m.reservations.EXPECT().FindByID(gomock.Any(), r.ID()).Return(r, nil)
		m.days.EXPECT().Lock(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		dayOf(m, r, otherPending)
		m.reservations.EXPECT().MarkPaid(gomock.Any(), r.ID(), gomock.Any()).Return(true, nil)

		res, err := commands.NewPaymentCommands(m.uow, m.calendar, nil).
			Confirm(ctx, commands.PaymentEvent{Type: commands.PaymentSucceeded, ReservationID: r.ID()})

		require.NoError(t, err)
		assert.False(t, res.Conflict)
		assert.True(t, res.Reservation.IsPaid)
	})

	t.Run("異常系: 保留切れのBBQ予約は別の確定予約があれば確定しない", func(t *testing.T) {
		m := newUOWMocks(t)
		publisher := commandsmock.NewMockConfirmationPublisher(gomock.NewController(t))
		bbq := builder.NewBarbecueBuilder().With(func(b *builder.ReservationBuilder) { b.Date = bookingDate })
		expired := bbq.BuildReservation(fixedNow.Add(-2 * time.Hour))
		winner := bbq.BuildReservation(fixedNow.Add(-time.Hour))
		require.NoError(t, winner.MarkPaid(fixedNow.Add(-50*time.Minute)))

		m.reservations.EXPECT().FindByID(gomock.Any(), expired.ID()).Return(expired, nil)
		m.days.EXPECT().Lock(gomock.Any(), pricing.ProductBarbecue, bookingDate).Return(nil)
		dayOf(m, expired, winner)
		m.reservations.EXPECT().MarkPaid(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		publisher.EXPECT().PublishConfirmed(gomock.Any(), gomock.Any()).Times(0)

		res, err := commands.NewPaymentCommands(m.uow, m.calendar, publisher).
			Confirm(ctx, commands.PaymentEvent{Type: commands.PaymentSucceeded, ReservationID: expired.ID()})

		require.NoError(t, err)
		assert.True(t, res.Conflict)
		assert.Equal(t, "This date is already booked", res.Reason)
		assert.False(t, res.Reservation.IsPaid)
		assert.Equal(t, reservation.StatusPending.String(), res.Reservation.Status)
	})

	t.Run("異常系: 確定済みのキャンプ予約と場所が違えば確定しない", func(t *testing.T) {
		m := newUOWMocks(t)
		r := pending().BuildReservation(fixedNow.Add(-time.Hour))
		confirmed := pending().With(func(b *builder.ReservationBuilder) {
			b.Location = pricing.LocationMountain
			b.ArrivalSlot = "15:00"
		}).BuildReservation(fixedNow.Add(-30 * time.Minute))
		require.NoError(t, confirmed.MarkPaid(fixedNow.Add(-10*time.Minute)))

		m.reservations.EXPECT().FindByID(gomock.Any(), r.ID()).Return(r, nil)
		m.days.EXPECT().Lock(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		dayOf(m, r, confirmed)
		m.reservations.EXPECT().MarkPaid(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		res, err := commands.NewPaymentCommands(m.uow, m.calendar, nil).
			Confirm(ctx, commands.PaymentEvent{Type: commands.PaymentSucceeded, ReservationID: r.ID()})

		require.NoError(t, err)
		assert.True(t, res.Conflict)
		assert.Equal(t, "This date is already booked at Mountain. Only Mountain is available on this date", res.Reason)
	})

	t.Run("正常系: 対象外のイベント種別は無視する", func(t *testing.T) {
		m := newUOWMocks(t)
		publisher := commandsmock.NewMockConfirmationPublisher(gomock.NewController(t))

		res, err := commands.NewPaymentCommands(m.uow, m.calendar, publisher).
			Confirm(ctx, commands.PaymentEvent{Type: "payment.failed", ReservationID: uuid.New()})

		require.NoError(t, err)
		assert.True(t, res.Ignored)
		assert.Nil(t, res.Reservation)
	})

	t.Run("異常系: 存在しない予約はNotFound", func(t *testing.T) {
		m := newUOWMocks(t)
		id := uuid.New()
		m.reservations.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("reservation not found", pgx.ErrNoRows))

		_, err := commands.NewPaymentCommands(m.uow, m.calendar, nil).
			Confirm(ctx, commands.PaymentEvent{Type: commands.PaymentSucceeded, ReservationID: id})

		require.Error(t, err)
		assert.True(t, errors.Is(err, queries.ErrReservationNotFound))
	})

	t.Run("異常系: DB更新の失敗はDBエラーになる", func(t *testing.T) {
		m := newUOWMocks(t)
		r := pending().BuildReservation(fixedNow.Add(-time.Minute))
		m.reservations.EXPECT().FindByID(gomock.Any(), r.ID()).Return(r, nil)
		m.days.EXPECT().Lock(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		dayOf(m, r)
		m.reservations.EXPECT().MarkPaid(gomock.Any(), r.ID(), gomock.Any()).
			Return(false, infra.WrapRepoErr("failed to mark paid", errors.New("connection reset")))

		_, err := commands.NewPaymentCommands(m.uow, m.calendar, nil).
			Confirm(ctx, commands.PaymentEvent{Type: commands.PaymentSucceeded, ReservationID: r.ID()})

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}
