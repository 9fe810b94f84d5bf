package domain

// Currency represents a currency supported for revenue and commission amounts.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // ISO-4217 code, Primary Key
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	Precision    int    `json:"precision"` // Minor-unit digits, 2 for standard currencies
	AuditFields
}
