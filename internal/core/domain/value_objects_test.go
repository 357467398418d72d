package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/SscSPs/walleto/internal/apperrors"
	"github.com/SscSPs/walleto/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrencyFromCode(t *testing.T) {
	c, err := domain.CurrencyFromCode(" usd ")
	require.NoError(t, err)
	assert.Equal(t, domain.USD, c)
	assert.Equal(t, "US Dollar", c.Name())
	assert.Equal(t, "$", c.Symbol())

	_, err = domain.CurrencyFromCode("")
	assert.Equal(t, domain.KindInvalidArgument, domain.KindOf(err))

	_, err = domain.CurrencyFromCode("GBP")
	assert.Equal(t, domain.KindUnsupportedCurrency, domain.KindOf(err))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestSupportedCurrencies_SortedByCode(t *testing.T) {
	got := domain.SupportedCurrencies()
	require.Len(t, got, 3)
	assert.Equal(t, []string{"EUR", "IRR", "USD"}, []string{got[0].Code(), got[1].Code(), got[2].Code()})
}

func TestCurrency_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(domain.EUR)
	require.NoError(t, err)
	assert.Equal(t, `"EUR"`, string(b))
}

func TestNewBankAccountNumber(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "plain digits", in: "0123456789", want: "0123456789"},
		{name: "spaces and dashes are stripped", in: "0123-4567 8901", want: "012345678901"},
		{name: "max length", in: "12345678901234567890123456", want: "12345678901234567890123456"},
		{name: "blank", in: "   ", wantErr: true},
		{name: "too short", in: "123456789", wantErr: true},
		{name: "too long", in: "123456789012345678901234567", wantErr: true},
		{name: "letters", in: "12345ABCDE", wantErr: true},
		{name: "non-ascii digits", in: "۱۲۳۴۵۶۷۸۹۰", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := domain.NewBankAccountNumber(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				assert.True(t, n.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, n.Value())
			assert.Equal(t, tt.want, n.String())
		})
	}
}

func TestSameEntity(t *testing.T) {
	a := newAccount(t, domain.USD)
	c := newCategory(t, domain.IncomeCategory)

	assert.True(t, domain.SameEntity(a, a))
	assert.False(t, domain.SameEntity(a, c))
	assert.False(t, domain.SameEntity(a, newAccount(t, domain.USD)))
	assert.False(t, domain.SameEntity(a, nil))
	assert.True(t, domain.SameEntity(nil, nil))
}
