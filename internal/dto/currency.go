package dto

import (
	"github.com/SscSPs/walleto/internal/core/domain"
)

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
}

// MoneyResponse is the wire form of domain.Money.
type MoneyResponse struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
	Formatted    string `json:"formatted"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(c domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode: c.Code(),
		Symbol:       c.Symbol(),
		Name:         c.Name(),
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, c := range currencies {
		res[i] = ToCurrencyResponse(c)
	}
	return res
}

func ToMoneyResponse(m domain.Money) MoneyResponse {
	return MoneyResponse{
		Amount:       m.Amount().StringFixed(2),
		CurrencyCode: m.Currency().Code(),
		Formatted:    m.String(),
	}
}
