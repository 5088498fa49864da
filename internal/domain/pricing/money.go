package pricing

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
)

// Money is an amount in minor units (fils).
type Money struct {
	cents int64
}

const rateScale = 1_000_000

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

// MoneyFromMajor converts a major-unit amount, rounding half away from zero.
func MoneyFromMajor(v float64) Money {
	return Money{cents: int64(math.Round(v * 100))}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Major() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) IsNegative() bool {
	return m.cents < 0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Sub(other Money) Money {
	return Money{cents: m.cents - other.cents}
}

func (m Money) Times(n int) Money {
	return Money{cents: m.cents * int64(n)}
}

// MulRate multiplies by a decimal rate and rounds the result half away from
// zero to the nearest minor unit. Rates are resolved to six decimal places.
func (m Money) MulRate(rate float64) Money {
	r := int64(math.Round(rate * rateScale))
	p := m.cents * r
	q, rem := p/rateScale, p%rateScale
	if rem < 0 {
		rem = -rem
	}
	if rem*2 >= rateScale {
		if p < 0 {
			q--
		} else {
			q++
		}
	}
	return Money{cents: q}
}

func (m Money) String() string {
	sign := ""
	c := m.cents
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(bytes.TrimSpace(b), `"`)
	if len(b) == 0 || string(b) == "null" {
		*m = Money{}
		return nil
	}
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("invalid money amount %q: %w", string(b), err)
	}
	*m = MoneyFromMajor(v)
	return nil
}

func SumMoney(values ...Money) Money {
	var total Money
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
