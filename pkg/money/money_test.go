package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kumisdelbalcon/balcon-api/pkg/money"
)

func TestFormatCOP_SeparadorDeMiles(t *testing.T) {
	casos := []struct {
		monto    int64
		esperado string
	}{
		{0, "$0"},
		{500, "$500"},
		{8000, "$8.000"},
		{18000, "$18.000"},
		{1650000, "$1.650.000"},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, money.FormatCOP(c.monto),
			"el COP usa punto como separador de miles y no lleva centavos")
	}
}

func TestFormatCOPDecimal_TruncaAPesos(t *testing.T) {
	v := decimal.RequireFromString("250000.75")
	assert.Equal(t, "$250.000", money.FormatCOPDecimal(v))
}
