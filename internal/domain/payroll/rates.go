package payroll

import "github.com/shopspring/decimal"

var (
	HoursPerDay    = decimal.NewFromInt(8)
	MinutesPerHour = decimal.NewFromInt(60)
	MinutesPerDay  = HoursPerDay.Mul(MinutesPerHour)

	// IponPondoRate is the forced savings share of gross income.
	IponPondoRate          = decimal.RequireFromString("0.05")
	ThirteenthMonthDivisor = decimal.NewFromInt(12)

	// PetServiceAllowance is granted once per qualifying calendar month.
	PetServiceAllowance = decimal.NewFromInt(2000)
)

var (
	multiplierRegular        = decimal.RequireFromString("1.25")
	multiplierRestDay        = decimal.RequireFromString("1.69")
	multiplierRegularHoliday = decimal.RequireFromString("2.30")
)

// OvertimeMultiplier returns the pay multiplier for an overtime type.
// Unrecognised types are paid as regular overtime.
func OvertimeMultiplier(t OvertimeType) decimal.Decimal {
	switch t {
	case OvertimeRestDay, OvertimeSpecial:
		return multiplierRestDay
	case OvertimeRegularHoliday:
		return multiplierRegularHoliday
	default:
		return multiplierRegular
	}
}

var (
	holidayRegularWorked   = decimal.RequireFromString("2.00")
	holidayRegularUnworked = decimal.RequireFromString("1.00")
	holidaySpecialWorked   = decimal.RequireFromString("1.30")
)

// HolidayFactor returns the share of the daily rate paid for a holiday.
func HolidayFactor(t HolidayType, worked bool) decimal.Decimal {
	switch t {
	case HolidayRegular:
		if worked {
			return holidayRegularWorked
		}
		return holidayRegularUnworked
	case HolidaySpecialNonWorking:
		if worked {
			return holidaySpecialWorked
		}
	}
	return decimal.Zero
}

// TaxBracket is one row of the withholding table. Income above Floor and up
// to Ceiling is taxed at Base + (income - Floor) * Rate.
type TaxBracket struct {
	Ceiling   decimal.Decimal
	Unbounded bool
	Floor     decimal.Decimal
	Base      decimal.Decimal
	Rate      decimal.Decimal
}

func bracket(ceiling, floor, base, rate string) TaxBracket {
	b := TaxBracket{
		Floor: decimal.RequireFromString(floor),
		Base:  decimal.RequireFromString(base),
		Rate:  decimal.RequireFromString(rate),
	}
	if ceiling == "" {
		b.Unbounded = true
	} else {
		b.Ceiling = decimal.RequireFromString(ceiling)
	}
	return b
}

// TaxBrackets is the half-month withholding schedule, lowest bracket first.
var TaxBrackets = []TaxBracket{
	bracket("20833", "0", "0", "0"),
	bracket("33333", "20833", "0", "0.20"),
	bracket("66666", "33333", "2500", "0.25"),
	bracket("166666", "66666", "10833", "0.30"),
	bracket("666666", "166666", "40833.33", "0.32"),
	bracket("", "666666", "200833.33", "0.35"),
}
