// Package money formatea importes para presentación. Los cálculos nunca redondean; solo la salida.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultSymbol es el símbolo de moneda usado en correos, PDF y respuestas formateadas.
const DefaultSymbol = "₦"

var printer = message.NewPrinter(language.English)

// Format devuelve el importe con separador de miles y dos decimales, sin símbolo: "1,350.00".
func Format(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return printer.Sprint(number.Decimal(f, number.Scale(2)))
}

// FormatWithSymbol antepone DefaultSymbol: "₦1,350.00". Los negativos quedan "-₦5.00".
func FormatWithSymbol(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + DefaultSymbol + Format(d.Neg())
	}
	return DefaultSymbol + Format(d)
}
