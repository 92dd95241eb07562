package utils

import (
	"fmt"
	"math"
	"strings"
)

const DefaultCurrency = "NGN"

type currencyInfo struct {
	Name    string
	Symbol  string
	Subunit int64
}

var currencies = map[string]currencyInfo{
	"NGN": {Name: "Nigerian Naira", Symbol: "₦", Subunit: 100},
	"USD": {Name: "United States Dollar", Symbol: "$", Subunit: 100},
	"EUR": {Name: "Euro", Symbol: "€", Subunit: 100},
	"GBP": {Name: "British Pound", Symbol: "£", Subunit: 100},
}

// IsSupportedCurrency reports whether the code is one the store accepts.
func IsSupportedCurrency(code string) bool {
	_, ok := currencies[strings.ToUpper(code)]
	return ok
}

// ToSubunit converts a main-unit amount to the smallest unit (Naira to kobo).
// Payment processors expect subunit amounts.
func ToSubunit(amount float64, code string) int64 {
	info, ok := currencies[strings.ToUpper(code)]
	if !ok {
		info = currencies[DefaultCurrency]
	}
	return int64(math.Round(amount * float64(info.Subunit)))
}

// FromSubunit converts a subunit amount back to the main unit.
func FromSubunit(amount int64, code string) float64 {
	info, ok := currencies[strings.ToUpper(code)]
	if !ok {
		info = currencies[DefaultCurrency]
	}
	return float64(amount) / float64(info.Subunit)
}

// FormatCurrency renders an amount for display, e.g. ₦15,000.00.
func FormatCurrency(amount float64, code string) string {
	info, ok := currencies[strings.ToUpper(code)]
	if !ok {
		info = currencies[DefaultCurrency]
	}
	return info.Symbol + groupThousands(fmt.Sprintf("%.2f", amount))
}

func CurrencySymbol(code string) string {
	if info, ok := currencies[strings.ToUpper(code)]; ok {
		return info.Symbol
	}
	return currencies[DefaultCurrency].Symbol
}

func CurrencyName(code string) string {
	if info, ok := currencies[strings.ToUpper(code)]; ok {
		return info.Name
	}
	return currencies[DefaultCurrency].Name
}

func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	out := b.String()
	if fracPart != "" {
		out += "." + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out
}
