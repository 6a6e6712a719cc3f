// Package moneyfmt formatea montos en pesos para tickets y reportes.
// Convención es-AR: punto como separador de miles y coma decimal ($ 1.234,56).
package moneyfmt

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.MustParse("es-AR"))

// Pesos devuelve el monto con símbolo y dos decimales: "$ 1.234,56".
func Pesos(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return printer.Sprintf("$ %v", number.Decimal(f, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// Cantidad devuelve una cantidad sin símbolo, recortando decimales nulos ("3", "1,5").
func Cantidad(d decimal.Decimal) string {
	f, _ := d.Float64()
	return printer.Sprintf("%v", number.Decimal(f, number.MaxFractionDigits(2)))
}
