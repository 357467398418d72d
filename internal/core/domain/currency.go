package domain

import (
	"encoding/json"
	"sort"
	"strings"
)

// Currency represents a supported currency in the domain.
// Values only come from the registry below, so two currencies with the same code are identical.
type Currency struct {
	code   string
	name   string
	symbol string
}

var (
	IRR = Currency{code: "IRR", name: "Iranian Rial", symbol: "﷼"}
	USD = Currency{code: "USD", name: "US Dollar", symbol: "$"}
	EUR = Currency{code: "EUR", name: "Euro", symbol: "€"}
)

var currencyRegistry = map[string]Currency{
	IRR.code: IRR,
	USD.code: USD,
	EUR.code: EUR,
}

// CurrencyFromCode resolves a registered currency. The lookup ignores case and surrounding spaces.
func CurrencyFromCode(code string) (Currency, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return Currency{}, invalidArgument("currencyCode", "currency code cannot be empty")
	}
	c, ok := currencyRegistry[normalized]
	if !ok {
		return Currency{}, &Error{
			Kind:    KindUnsupportedCurrency,
			Field:   "currencyCode",
			Message: "currency with code '" + code + "' is not supported",
		}
	}
	return c, nil
}

// SupportedCurrencies lists the registry ordered by code.
func SupportedCurrencies() []Currency {
	out := make([]Currency, 0, len(currencyRegistry))
	for _, c := range currencyRegistry {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].code < out[j].code })
	return out
}

func (c Currency) Code() string   { return c.code }
func (c Currency) Name() string   { return c.name }
func (c Currency) Symbol() string { return c.symbol }

// IsZero reports whether c is the unset currency.
func (c Currency) IsZero() bool { return c.code == "" }

// Equal compares currencies by code.
func (c Currency) Equal(other Currency) bool { return c.code == other.code }

func (c Currency) String() string { return c.code }

func (c Currency) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.code)
}
