// Package money formatea montos en pesos colombianos (COP) para los textos
// del asistente y los enlaces de pedido. Los precios se manejan como enteros
// (el COP no usa centavos en comercio minorista).
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer usa la localización española: separador de miles con punto (8.000).
var printer = message.NewPrinter(language.Spanish)

// FormatCOP devuelve el monto con símbolo y separador de miles: $8.000.
func FormatCOP(amount int64) string {
	return printer.Sprintf("$%d", amount)
}

// FormatCOPDecimal formatea un decimal (valores de negocios) truncado a pesos.
func FormatCOPDecimal(amount decimal.Decimal) string {
	return FormatCOP(amount.IntPart())
}
