package domain

// CurrencyCode identifies one of the two currencies the ledger operates in.
type CurrencyCode string

const (
	CurrencyUSD CurrencyCode = "USD"
	CurrencyUZS CurrencyCode = "UZS"
)

// Valid reports whether the code is one of the supported currencies.
func (c CurrencyCode) Valid() bool {
	return c == CurrencyUSD || c == CurrencyUZS
}

// Precision returns the number of decimal places of the currency's minor unit.
func (c CurrencyCode) Precision() int32 {
	// Both USD cents and UZS tiyin are hundredths.
	return 2
}
