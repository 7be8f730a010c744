// Package currency converts between currencies using a fixed exchange rate
// table with USD as the base. Rates are process-wide constants, read-only
// after startup.
package currency

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"aihub/types"
)

// rates maps a currency code to its rate against 1 USD.
var rates = map[string]float64{
	"USD": 1.0,
	"INR": 83.0,
	"EUR": 0.92,
	"GBP": 0.79,
	"JPY": 148.0,
	"AUD": 1.55,
	"CAD": 1.35,
	"CHF": 0.91,
	"CNY": 6.95,
	"SGD": 1.38,
	"NZD": 1.68,
	"HKD": 7.83,
	"SEK": 10.6,
	"KRW": 1330.0,
	"MXN": 17.0,
	"BRL": 5.0,
	"ZAR": 18.0,
}

// Supported returns the supported currency codes in sorted order.
func Supported() []string {
	codes := make([]string, 0, len(rates))
	for code := range rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Rate returns the exchange rate from one currency to another, i.e. how many
// units of "to" one unit of "from" buys.
func Rate(from, to string) (float64, error) {
	from = strings.ToUpper(from)
	to = strings.ToUpper(to)

	fromRate, ok := rates[from]
	if !ok {
		return 0, fmt.Errorf("unsupported currency: %s", from)
	}
	toRate, ok := rates[to]
	if !ok {
		return 0, fmt.Errorf("unsupported currency: %s", to)
	}
	return toRate / fromRate, nil
}

// Convert converts amount from one currency to another through the USD base.
func Convert(amount float64, from, to string) (*types.ConversionResult, error) {
	from = strings.ToUpper(from)
	to = strings.ToUpper(to)

	rate, err := Rate(from, to)
	if err != nil {
		return nil, err
	}

	return &types.ConversionResult{
		Amount:    amount,
		From:      from,
		To:        to,
		Rate:      round(rate, 4),
		Converted: round(amount*rate, 2),
	}, nil
}

func round(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}
