package domain

import "github.com/shopspring/decimal"

// Centavos is a BRL amount in minor units. All arithmetic in the
// storefront happens in centavos; conversion to whole reais is a
// display concern only.
type Centavos int64

func (c Centavos) Decimal() decimal.Decimal {
	return decimal.NewFromInt(int64(c)).Div(decimal.NewFromInt(100))
}

// BRL formats the amount the way the store displays it, e.g. "R$ 12,50".
func (c Centavos) BRL() string {
	s := c.Decimal().StringFixed(2)
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '.' {
			s = s[:i] + "," + s[i+1:]
			break
		}
	}
	return "R$ " + s
}

func (c Centavos) Mul(n int) Centavos {
	return c * Centavos(n)
}
