package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/walleto/internal/apperrors"
	"github.com/SscSPs/walleto/internal/core/domain"
	portssvc "github.com/SscSPs/walleto/internal/core/ports/services"
)

// CurrencyService exposes the fixed currency registry.
type CurrencyService struct {
	BaseService
}

func NewCurrencyService() *CurrencyService {
	return &CurrencyService{}
}

var _ portssvc.CurrencySvcFacade = (*CurrencyService)(nil)

func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (domain.Currency, error) {
	currency, err := domain.CurrencyFromCode(currencyCode)
	if err != nil {
		if domain.KindOf(err) == domain.KindUnsupportedCurrency {
			s.LogDebug(ctx, "Unknown currency requested")
			return domain.Currency{}, fmt.Errorf("currency %q: %w", currencyCode, apperrors.ErrNotFound)
		}
		return domain.Currency{}, err
	}
	return currency, nil
}

func (s *CurrencyService) ListCurrencies(_ context.Context) ([]domain.Currency, error) {
	return domain.SupportedCurrencies(), nil
}
