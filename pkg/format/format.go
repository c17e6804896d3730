// Package format convierte números y fechas a texto de presentación en pt-BR.
package format

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Locale es el idioma de presentación fijo de la aplicación.
var Locale = language.BrazilianPortuguese

const (
	dateLayout     = "02/01/2006"
	dateTimeLayout = "02/01/2006 15:04:05"
)

// Separadores de miles y decimales del locale, tomados del formato de 1234,5.
var groupSep, decimalSep = localeSeparators()

func printer() *message.Printer {
	return message.NewPrinter(Locale)
}

func localeSeparators() (group, dec string) {
	sample := []rune(printer().Sprint(number.Decimal(1234.5, number.Scale(1))))
	return string(sample[1]), string(sample[len(sample)-2])
}

// Currency formatea un valor en reales: R$ 1.234,56.
// Trabaja sobre los dígitos del decimal, sin pasar por float64.
func Currency(v decimal.Decimal) string {
	sym := printer().Sprint(currency.Symbol(currency.BRL))
	r := v.Round(2)
	intPart, frac, _ := strings.Cut(r.Abs().StringFixed(2), ".")
	amount := groupDigits(intPart) + decimalSep + frac
	if r.IsNegative() {
		return "-" + sym + " " + amount
	}
	return sym + " " + amount
}

func groupDigits(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(groupSep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// Date formatea una fecha como dd/mm/aaaa.
func Date(t time.Time) string {
	return t.Format(dateLayout)
}

// DateTime formatea fecha y hora como dd/mm/aaaa hh:mm:ss.
func DateTime(t time.Time) string {
	return t.Format(dateTimeLayout)
}

// Number formatea un entero con separador de miles: 1.234.567.
func Number(n int) string {
	return printer().Sprint(number.Decimal(n))
}

// Truncate corta el texto a n runas y agrega "..." si era más largo.
func Truncate(s string, n int) string {
	if n < 0 {
		n = 0
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}
