// Package currency formatea montos en centavos como cadenas de moneda
// localizadas. La lógica de cálculo trabaja siempre en centavos; la conversión
// a unidades mayores y el formato por locale viven solo aquí.
package currency

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var centsPerUnit = decimal.NewFromInt(100)

// Formatter convierte centavos a texto con símbolo, separador de miles y dos
// decimales según el locale configurado.
type Formatter struct {
	printer *message.Printer
	symbol  string
}

// New construye el formateador. Si el locale no parsea se usa en-US.
func New(locale, symbol string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	return &Formatter{printer: message.NewPrinter(tag), symbol: symbol}
}

// Format convierte centavos a unidades mayores (división exacta por 100 vía
// decimal) y renderiza con el printer del locale.
func (f *Formatter) Format(cents int64) string {
	major := decimal.NewFromInt(cents).Div(centsPerUnit)
	return f.printer.Sprintf("%s%.2f", f.symbol, major.InexactFloat64())
}
