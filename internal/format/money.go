// Package format renders balances for display. Amounts are integer cents
// throughout, matching the storage layer; floats never touch money.
package format

import (
	"fmt"
	"strings"
)

// DefaultCurrency applies whenever the configured currency is empty. This is
// the single place the default lives; nothing else may invent one.
const DefaultCurrency = "USD"

var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"AUD": "A$",
	"BTC": "₿",
}

// Normalize upper-cases a currency code and substitutes DefaultCurrency for
// an empty or blank one.
func Normalize(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return DefaultCurrency
	}
	return code
}

// Symbol returns the display symbol for a currency code, or "" when the
// currency has no symbol and should be rendered as a suffix code.
func Symbol(code string) string {
	return symbols[Normalize(code)]
}

// Balance renders an amount in cents as a display string: "$1,234.56",
// "-€0.75", or "12.00 XYZ" for currencies without a known symbol.
func Balance(cents int64, code string) string {
	code = Normalize(code)
	sign := ""
	abs := uint64(cents)
	if cents < 0 {
		sign = "-"
		// Negate in uint64: exact even for the minimum int64, where int64
		// negation would overflow.
		abs = -abs
	}
	body := fmt.Sprintf("%s.%02d", group(abs/100), abs%100)
	if sym, ok := symbols[code]; ok {
		return sign + sym + body
	}
	return sign + body + " " + code
}

// group inserts thousands separators into a non-negative integer.
func group(n uint64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
