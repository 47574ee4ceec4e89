package payroll

import "github.com/shopspring/decimal"

var two = decimal.NewFromInt(2)

// TaxableIncome halves gross income net of the SSS, PhilHealth and Pag-Ibig
// amounts applied this period. Negative results clamp to zero.
func TaxableIncome(gross decimal.Decimal, s Statutory) decimal.Decimal {
	taxable := gross.Sub(s.SSS).Sub(s.PhilHealth).Sub(s.PagIbig).Div(two)
	if taxable.IsNegative() {
		return decimal.Zero
	}
	return taxable
}

// WithholdingTax looks up taxable income in TaxBrackets.
func WithholdingTax(taxable decimal.Decimal) decimal.Decimal {
	if !taxable.IsPositive() {
		return decimal.Zero
	}
	for _, b := range TaxBrackets {
		if b.Unbounded || taxable.LessThanOrEqual(b.Ceiling) {
			return b.Base.Add(taxable.Sub(b.Floor).Mul(b.Rate))
		}
	}
	return decimal.Zero
}
