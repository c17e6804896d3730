package format_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/estoque-api/pkg/format"
)

func TestCurrency_AgrupaMilesYDecimales(t *testing.T) {
	got := format.Currency(decimal.RequireFromString("1234.56"))
	assert.True(t, strings.HasPrefix(got, "R$"), "debe iniciar con el símbolo BRL: %q", got)
	assert.True(t, strings.HasSuffix(got, "1.234,56"), "separadores pt-BR: %q", got)
}

func TestCurrency_Cero(t *testing.T) {
	got := format.Currency(decimal.Zero)
	assert.True(t, strings.HasSuffix(got, "0,00"), got)
}

func TestCurrency_Negativo(t *testing.T) {
	got := format.Currency(decimal.RequireFromString("-10.5"))
	assert.True(t, strings.HasPrefix(got, "-R$"), got)
	assert.True(t, strings.HasSuffix(got, "10,50"), got)
}

func TestCurrency_ValoresGrandesSinPerderPrecision(t *testing.T) {
	got := format.Currency(decimal.RequireFromString("90071992547409.93"))
	assert.True(t, strings.HasSuffix(got, "90.071.992.547.409,93"), got)

	got = format.Currency(decimal.RequireFromString("123456789012345678901.005"))
	assert.True(t, strings.HasSuffix(got, "123.456.789.012.345.678.901,01"), got)
}

func TestCurrency_Agrupacion(t *testing.T) {
	for in, want := range map[string]string{
		"0.5":     "0,50",
		"999":     "999,00",
		"1000":    "1.000,00",
		"100000":  "100.000,00",
		"1000000": "1.000.000,00",
	} {
		got := format.Currency(decimal.RequireFromString(in))
		assert.True(t, strings.HasSuffix(got, " "+want), "%s -> %q", in, got)
	}
}

func TestDate(t *testing.T) {
	d := time.Date(2026, time.March, 7, 18, 45, 9, 0, time.UTC)
	assert.Equal(t, "07/03/2026", format.Date(d))
	assert.Equal(t, "07/03/2026 18:45:09", format.DateTime(d))
}

func TestNumber(t *testing.T) {
	assert.Equal(t, "1.234.567", format.Number(1234567))
	assert.Equal(t, "42", format.Number(42))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Caneta", format.Truncate("Caneta", 10))
	assert.Equal(t, "Caneta", format.Truncate("Caneta", 6))
	assert.Equal(t, "Can...", format.Truncate("Caneta", 3))
	assert.Equal(t, "Lápi...", format.Truncate("Lápis de cor", 4), "cuenta runas, no bytes")
	assert.Equal(t, "...", format.Truncate("abc", 0))
}
