package mapping

import (
	"github.com/fieldglass/salesops_backend/internal/core/domain"
	"github.com/fieldglass/salesops_backend/internal/models"
)

// ToModelCurrency converts a domain currency to its persistence model.
func ToModelCurrency(c domain.Currency) models.Currency {
	return models.Currency{
		CurrencyCode: c.CurrencyCode,
		Symbol:       c.Symbol,
		Name:         c.Name,
		Precision:    c.Precision,
		AuditFields:  ToModelAuditFields(c.AuditFields),
	}
}

// ToDomainCurrency converts a persistence currency to the domain form.
func ToDomainCurrency(c models.Currency) domain.Currency {
	return domain.Currency{
		CurrencyCode: c.CurrencyCode,
		Symbol:       c.Symbol,
		Name:         c.Name,
		Precision:    c.Precision,
		AuditFields:  ToDomainAuditFields(c.AuditFields),
	}
}

// ToModelExchangeRate converts a domain exchange rate to its persistence model.
func ToModelExchangeRate(r domain.ExchangeRate) models.ExchangeRate {
	return models.ExchangeRate{
		ExchangeRateID:   r.ExchangeRateID,
		FromCurrencyCode: r.FromCurrencyCode,
		ToCurrencyCode:   r.ToCurrencyCode,
		Rate:             r.Rate,
		DateEffective:    r.DateEffective,
		AuditFields:      ToModelAuditFields(r.AuditFields),
	}
}

// ToDomainExchangeRate converts a persistence exchange rate to the domain form.
func ToDomainExchangeRate(r models.ExchangeRate) domain.ExchangeRate {
	return domain.ExchangeRate{
		ExchangeRateID:   r.ExchangeRateID,
		FromCurrencyCode: r.FromCurrencyCode,
		ToCurrencyCode:   r.ToCurrencyCode,
		Rate:             r.Rate,
		DateEffective:    r.DateEffective,
		AuditFields:      ToDomainAuditFields(r.AuditFields),
	}
}
