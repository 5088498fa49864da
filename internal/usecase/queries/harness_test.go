//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"glamping-booking/internal/domain/availability"
	"glamping-booking/internal/domain/pricing"
	"glamping-booking/internal/pkg/clock"
	"glamping-booking/internal/usecase/shared"
	sharedmock "glamping-booking/tests/mock/shared"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// 2026-03-02 is a Monday
var fixedNow = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

type uowMocks struct {
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	reservations *sharedmock.MockReservationRepository
	settings     *sharedmock.MockSettingsRepository
	blocked      *sharedmock.MockBlockedRangeRepository
	clock        *clock.MockClock
	calendar     *shared.BookingCalendar
}

func newUOWMocks(t *testing.T) *uowMocks {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &uowMocks{
		uow:          sharedmock.NewMockUnitOfWork(ctrl),
		tx:           sharedmock.NewMockTx(ctrl),
		reservations: sharedmock.NewMockReservationRepository(ctrl),
		settings:     sharedmock.NewMockSettingsRepository(ctrl),
		blocked:      sharedmock.NewMockBlockedRangeRepository(ctrl),
		clock:        clock.NewMockClock(fixedNow),
	}
	m.calendar = shared.NewBookingCalendar(m.clock, time.UTC, availability.DefaultHoldTTL)

	m.tx.EXPECT().Reservations().Return(m.reservations).AnyTimes()
	m.tx.EXPECT().Settings().Return(m.settings).AnyTimes()
	m.tx.EXPECT().BlockedRanges().Return(m.blocked).AnyTimes()
	m.uow.EXPECT().Reads().Return(m.tx).AnyTimes()
	// queries never open a write transaction
	m.uow.EXPECT().WithinReadOnly(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	return m
}

func (m *uowMocks) storedSettings(t *testing.T, s pricing.Settings) {
	t.Helper()
	doc, err := pricing.ToDocument(s)
	require.NoError(t, err)
	m.settings.EXPECT().LoadDocument(gomock.Any(), s.Product()).Return(doc, nil).AnyTimes()
}
