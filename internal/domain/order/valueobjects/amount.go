package valueobjects

import (
	"fmt"
	"math"
)

// Amount is a monetary amount in decimal major units (e.g. 12.50 DKK).
// The gateway boundary works in integer minor units; MinorUnits performs the
// conversion by rounding to two decimals first.
type Amount struct {
	value    float64
	currency string
}

func NewAmount(value float64, currency string) Amount {
	return Amount{
		value:    value,
		currency: currency,
	}
}

// AmountFromMinorUnits builds an Amount from an integer minor-unit value
// (e.g. 1250 -> 12.50).
func AmountFromMinorUnits(minor int64, currency string) Amount {
	return Amount{
		value:    float64(minor) / 100.0,
		currency: currency,
	}
}

func (a Amount) Value() float64 {
	return a.value
}

func (a Amount) Currency() string {
	return a.currency
}

// MinorUnits returns round(value, 2) * 100 as an integer.
func (a Amount) MinorUnits() int64 {
	return int64(math.Round(a.value * 100))
}

func (a Amount) IsPositive() bool {
	return a.value > 0
}

func (a Amount) String() string {
	return fmt.Sprintf("%.2f %s", a.value, a.currency)
}
