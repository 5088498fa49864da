//go:build unit

package calendar_test

import (
	"encoding/json"
	"testing"
	"time"

	"glamping-booking/internal/domain/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    calendar.Date
		wantErr bool
	}{
		{name: "iso date", input: "2025-03-14", want: calendar.NewDate(2025, time.March, 14)},
		{name: "slashes", input: "2025/03/14", want: calendar.NewDate(2025, time.March, 14)},
		{name: "rfc3339 timestamp keeps the calendar day", input: "2025-03-14T22:30:00Z", want: calendar.NewDate(2025, time.March, 14)},
		{name: "surrounding spaces", input: "  2025-03-14 ", want: calendar.NewDate(2025, time.March, 14)},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "not a date", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := calendar.ParseDate(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, calendar.ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got), "want %s got %s", tc.want, got)
		})
	}
}

func TestDate_IsWeekend(t *testing.T) {
	// 2025-03-10 is a Monday
	monday := calendar.NewDate(2025, time.March, 10)
	expected := map[time.Weekday]bool{
		time.Monday:    false,
		time.Tuesday:   false,
		time.Wednesday: false,
		time.Thursday:  false,
		time.Friday:    true,
		time.Saturday:  true,
		time.Sunday:    true,
	}
	for i := 0; i < 7; i++ {
		d := monday.AddDays(i)
		assert.Equal(t, expected[d.Weekday()], d.IsWeekend(), d.String())
	}
}

func TestDate_Between(t *testing.T) {
	start := calendar.MustParse("2025-12-20")
	end := calendar.MustParse("2025-12-31")

	assert.True(t, start.Between(start, end))
	assert.True(t, end.Between(start, end))
	assert.True(t, calendar.MustParse("2025-12-25").Between(start, end))
	assert.False(t, calendar.MustParse("2025-12-19").Between(start, end))
	assert.False(t, calendar.MustParse("2026-01-01").Between(start, end))
}

func TestDate_DateOf(t *testing.T) {
	dubai := time.FixedZone("Asia/Dubai", 4*60*60)
	instant := time.Date(2025, time.March, 14, 21, 30, 0, 0, time.UTC)

	assert.Equal(t, "2025-03-15", calendar.DateOf(instant, dubai).String())
	assert.Equal(t, "2025-03-14", calendar.DateOf(instant, time.UTC).String())
}

func TestDate_JSON(t *testing.T) {
	type payload struct {
		Date calendar.Date `json:"date"`
	}

	b, err := json.Marshal(payload{Date: calendar.MustParse("2025-01-02")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2025-01-02"}`, string(b))

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2025-07-04"}`), &p))
	assert.Equal(t, "2025-07-04", p.Date.String())

	err = json.Unmarshal([]byte(`{"date":"nope"}`), &p)
	assert.Error(t, err)
}
