package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSupportedCurrency(t *testing.T) {
	assert.True(t, IsSupportedCurrency("NGN"))
	assert.True(t, IsSupportedCurrency("usd"))
	assert.True(t, IsSupportedCurrency("Eur"))
	assert.True(t, IsSupportedCurrency("GBP"))
	assert.False(t, IsSupportedCurrency("ZAR"))
	assert.False(t, IsSupportedCurrency(""))
}

func TestToSubunit(t *testing.T) {
	assert.Equal(t, int64(1500000), ToSubunit(15000, "NGN"))
	assert.Equal(t, int64(1999), ToSubunit(19.99, "USD"))
	assert.Equal(t, int64(1), ToSubunit(0.005, "NGN"), "half a kobo rounds up")
	assert.Equal(t, int64(500), ToSubunit(5, "ZAR"), "unknown currency falls back to the default")
}

func TestFromSubunit(t *testing.T) {
	assert.Equal(t, 15000.0, FromSubunit(1500000, "NGN"))
	assert.Equal(t, 19.99, FromSubunit(1999, "USD"))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "₦15,000.00", FormatCurrency(15000, "NGN"))
	assert.Equal(t, "$1,234,567.89", FormatCurrency(1234567.89, "USD"))
	assert.Equal(t, "€99.50", FormatCurrency(99.5, "EUR"))
	assert.Equal(t, "£0.99", FormatCurrency(0.99, "gbp"))
	assert.Equal(t, "₦-250.00", FormatCurrency(-250, "NGN"))
	assert.Equal(t, "₦100.00", FormatCurrency(100, "ZAR"), "unknown currency falls back to the default")
}

func TestCurrencySymbolAndName(t *testing.T) {
	assert.Equal(t, "₦", CurrencySymbol("ngn"))
	assert.Equal(t, "$", CurrencySymbol("USD"))
	assert.Equal(t, "₦", CurrencySymbol("JPY"))
	assert.Equal(t, "Euro", CurrencyName("EUR"))
	assert.Equal(t, "Nigerian Naira", CurrencyName("unknown"))
}
