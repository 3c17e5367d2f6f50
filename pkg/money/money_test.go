package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventario-hogar/pkg/money"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "1,350.00", money.Format(decimal.NewFromInt(1350)))
	assert.Equal(t, "0.00", money.Format(decimal.Zero))
	assert.Equal(t, "1,234,567.89", money.Format(decimal.RequireFromString("1234567.891")))
}

func TestFormatWithSymbol(t *testing.T) {
	assert.Equal(t, "₦1,350.00", money.FormatWithSymbol(decimal.NewFromInt(1350)))
	assert.Equal(t, "-₦5.00", money.FormatWithSymbol(decimal.NewFromInt(-5)))
}
