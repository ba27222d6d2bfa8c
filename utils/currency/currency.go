package currency

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const rupiahPrefix = "Rp"

var printer = message.NewPrinter(language.Indonesian)

// FormatRupiah renders an amount the Indonesian way, e.g. Rp1.250.000 or Rp12.500,50.
func FormatRupiah(amount decimal.Decimal) string {
	if amount.IsInteger() {
		return rupiahPrefix + printer.Sprintf("%d", amount.IntPart())
	}
	return rupiahPrefix + printer.Sprintf("%.2f", amount.Round(2).InexactFloat64())
}
