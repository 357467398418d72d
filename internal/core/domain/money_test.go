package domain_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/SscSPs/walleto/internal/apperrors"
	"github.com/SscSPs/walleto/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, amount string, c domain.Currency) domain.Money {
	t.Helper()
	m, err := domain.NewMoney(decimal.RequireFromString(amount), c)
	require.NoError(t, err)
	return m
}

func TestNewMoney_Rounding(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already two places", "12.50", "12.5"},
		{"rounds half up", "2.345", "2.35"},
		{"rounds half away from zero on exact tie", "1.005", "1.01"},
		{"rounds down below half", "2.344", "2.34"},
		{"whole number", "1500000", "1500000"},
		{"zero", "0", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mustMoney(t, tt.in, domain.USD)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(m.Amount()), "got %s", m.Amount())
		})
	}
}

func TestNewMoney_Rejects(t *testing.T) {
	_, err := domain.NewMoney(decimal.NewFromInt(-1), domain.IRR)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, domain.KindInvalidArgument, domain.KindOf(err))

	_, err = domain.NewMoney(decimal.NewFromInt(1), domain.Currency{})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = domain.NewMoney(decimal.RequireFromString("1e30"), domain.IRR)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestMoney_AddSubtract(t *testing.T) {
	a := mustMoney(t, "10.25", domain.USD)
	b := mustMoney(t, "0.75", domain.USD)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, mustMoney(t, "11", domain.USD), sum)

	diff, err := a.Subtract(b)
	require.NoError(t, err)
	assert.Equal(t, mustMoney(t, "9.5", domain.USD), diff)

	zero, err := a.Subtract(a)
	require.NoError(t, err)
	assert.True(t, zero.IsZero())
}

func TestMoney_SubtractBelowZeroIsRejected(t *testing.T) {
	a := mustMoney(t, "1", domain.USD)
	b := mustMoney(t, "1.01", domain.USD)

	_, err := a.Subtract(b)
	require.Error(t, err)
	assert.Equal(t, domain.KindInvalidArgument, domain.KindOf(err))
}

func TestMoney_CurrencyMismatch(t *testing.T) {
	usd := mustMoney(t, "1", domain.USD)
	eur := mustMoney(t, "1", domain.EUR)

	_, err := usd.Add(eur)
	var cm *domain.CurrencyMismatchError
	require.ErrorAs(t, err, &cm)
	assert.Equal(t, domain.USD, cm.Expected)
	assert.Equal(t, domain.EUR, cm.Actual)
	assert.ErrorIs(t, err, apperrors.ErrCurrencyMismatch)

	_, err = usd.Subtract(eur)
	assert.ErrorIs(t, err, apperrors.ErrCurrencyMismatch)

	_, err = usd.IsGreaterThan(eur)
	assert.ErrorIs(t, err, apperrors.ErrCurrencyMismatch)

	_, err = usd.IsLessThan(eur)
	assert.ErrorIs(t, err, apperrors.ErrCurrencyMismatch)
}

func TestMoney_Comparisons(t *testing.T) {
	small := mustMoney(t, "5", domain.IRR)
	big := mustMoney(t, "7", domain.IRR)

	gt, err := big.IsGreaterThan(small)
	require.NoError(t, err)
	assert.True(t, gt)

	lt, err := big.IsLessThan(small)
	require.NoError(t, err)
	assert.False(t, lt)

	assert.True(t, small.Equal(mustMoney(t, "5.00", domain.IRR)))
	assert.False(t, small.Equal(mustMoney(t, "5", domain.USD)))
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "1,500,000 IRR", mustMoney(t, "1500000", domain.IRR).String())
	assert.Equal(t, "12.50 USD", mustMoney(t, "12.5", domain.USD).String())
	assert.Equal(t, "0.05 EUR", mustMoney(t, "0.05", domain.EUR).String())
	assert.Equal(t, "0 IRR", domain.ZeroMoney(domain.IRR).String())
}

func TestMoney_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(mustMoney(t, "12.5", domain.USD))
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":"12.50","currency":"USD"}`, string(b))
}

func TestMoneyFromRial(t *testing.T) {
	m, err := domain.MoneyFromRial(decimal.NewFromInt(250000))
	require.NoError(t, err)
	assert.Equal(t, domain.IRR, m.Currency())
}

func TestErrorKinds_UnwrapToSentinels(t *testing.T) {
	err := error(&domain.InsufficientFundsError{})
	assert.True(t, errors.Is(err, apperrors.ErrInsufficientFunds))
	assert.Equal(t, domain.KindInsufficientFunds, domain.KindOf(err))
	assert.Equal(t, domain.ErrorKind(""), domain.KindOf(errors.New("boom")))
}
