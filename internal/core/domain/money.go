package domain

import (
	"encoding/json"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// moneyScale is the number of fractional digits every Money amount is rounded to.
const moneyScale = 2

var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

var amountPrinter = message.NewPrinter(language.English)

// Money is an immutable, non-negative amount in a single currency.
// The amount is held in minor units so Money stays comparable and usable as a map key.
type Money struct {
	minor    int64
	currency Currency
}

// NewMoney rounds amount half away from zero to two places and binds it to currency.
func NewMoney(amount decimal.Decimal, currency Currency) (Money, error) {
	if currency.IsZero() {
		return Money{}, invalidArgument("currency", "currency is required")
	}
	if amount.IsNegative() {
		return Money{}, invalidArgument("amount", "amount cannot be negative")
	}
	minor := amount.Round(moneyScale).Shift(moneyScale)
	if minor.GreaterThan(maxMinorUnits) {
		return Money{}, invalidArgument("amount", "amount %s is too large", amount.String())
	}
	return Money{minor: minor.IntPart(), currency: currency}, nil
}

// ZeroMoney returns a zero amount in currency.
func ZeroMoney(currency Currency) Money {
	return Money{currency: currency}
}

// MoneyFromRial is a shorthand for amounts in IRR.
func MoneyFromRial(amount decimal.Decimal) (Money, error) {
	return NewMoney(amount, IRR)
}

func (m Money) Amount() decimal.Decimal {
	return decimal.New(m.minor, -moneyScale)
}

func (m Money) Currency() Currency { return m.currency }

func (m Money) IsZero() bool { return m.minor == 0 }

// Equal reports whether both amount and currency match.
func (m Money) Equal(other Money) bool {
	return m == other
}

func (m Money) sameCurrency(other Money) error {
	if !m.currency.Equal(other.currency) {
		return &CurrencyMismatchError{Expected: m.currency, Actual: other.currency}
	}
	return nil
}

// Add returns m + other.
func (m Money) Add(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	return NewMoney(m.Amount().Add(other.Amount()), m.currency)
}

// Subtract returns m - other. A negative result is rejected, since Money is never negative.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	if m.minor < other.minor {
		return Money{}, invalidArgument("amount", "cannot subtract %s from %s: result would be negative", other, m)
	}
	return Money{minor: m.minor - other.minor, currency: m.currency}, nil
}

func (m Money) IsGreaterThan(other Money) (bool, error) {
	if err := m.sameCurrency(other); err != nil {
		return false, err
	}
	return m.minor > other.minor, nil
}

func (m Money) IsLessThan(other Money) (bool, error) {
	if err := m.sameCurrency(other); err != nil {
		return false, err
	}
	return m.minor < other.minor, nil
}

// String renders the amount with thousand separators, e.g. "1,500,000 IRR" or "12.50 USD".
func (m Money) String() string {
	whole, frac := m.minor/100, m.minor%100
	if frac == 0 {
		return amountPrinter.Sprintf("%d %s", whole, m.currency.code)
	}
	return amountPrinter.Sprintf("%d.%02d %s", whole, frac, m.currency.code)
}

type moneyJSON struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyJSON{Amount: m.Amount().StringFixed(moneyScale), Currency: m.currency.code})
}
