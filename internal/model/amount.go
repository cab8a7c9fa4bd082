package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/yunz06/quan-li-chi-tieu/internal/common"
)

// ParseAmount parses monetary input. Non-numeric input and negative values
// are rejected before anything reaches the storage layer.
func ParseAmount(s string) (float64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", common.ErrInvalidAmount, s)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("%w: %s is negative", common.ErrInvalidAmount, d)
	}
	f, _ := d.Float64()
	return f, nil
}
