package renderer

import (
	"math"

	"github.com/Rhymond/go-money"
)

// Currency formats a float amount for display, e.g. "$1,234.50". Amounts are
// rounded to cents for display only; the stored figures keep full float
// precision.
func Currency(v float64) string {
	return money.New(int64(math.Round(v*100)), money.USD).Display()
}

// SignedCurrency formats a delta with an explicit sign, e.g. "-$50.00".
func SignedCurrency(v float64) string {
	if v < 0 {
		return "-" + Currency(-v)
	}
	return Currency(v)
}
