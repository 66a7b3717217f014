package content

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencySymbol prefixes every displayed price.
const CurrencySymbol = "$"

var priceLocale = language.MustParse("es-AR")

// FormatPrice renders a whole-unit amount with "." thousands grouping and no
// decimals, e.g. 29000 -> "29.000".
func FormatPrice(amount int) string {
	return message.NewPrinter(priceLocale).Sprintf("%d", amount)
}
