package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/transco/backoffice-go/internal/domain/attendance"
	"github.com/transco/backoffice-go/internal/domain/employee"
	"github.com/transco/backoffice-go/internal/domain/loan"
	"github.com/transco/backoffice-go/internal/domain/trip"
)

// DayKey is the map key used for per-date lookups.
type DayKey string

func dayKeyOf(r attendance.Record) DayKey {
	return DayKey(DateOf(r.Date).Format(DateLayout))
}

// AttendanceByDate keeps one canonical record per date for the employee
// within the period.
func AttendanceByDate(employeeID string, records []attendance.Record, p Period) map[DayKey]attendance.Record {
	if employeeID == "" {
		return map[DayKey]attendance.Record{}
	}
	grouped := make(map[DayKey][]attendance.Record)
	for _, r := range records {
		if r.EmployeeID != employeeID || !p.Contains(r.Date) {
			continue
		}
		k := dayKeyOf(r)
		grouped[k] = append(grouped[k], r)
	}

	byDate := make(map[DayKey]attendance.Record, len(grouped))
	for k, rs := range grouped {
		if c, ok := attendance.Canonical(rs); ok {
			byDate[k] = c
		}
	}
	return byDate
}

func workedOn(byDate map[DayKey]attendance.Record, k DayKey) bool {
	r, ok := byDate[k]
	return ok && r.Status.Worked()
}

// AttendancePay sums the stored pay snapshots of the period's days, skipping
// holiday dates whose pay is set by the holiday rules instead.
func AttendancePay(byDate map[DayKey]attendance.Record, holidayDates map[DayKey]struct{}) decimal.Decimal {
	total := decimal.Zero
	for k, r := range byDate {
		if _, ok := holidayDates[k]; ok {
			continue
		}
		total = total.Add(r.ComputedPay)
	}
	return total
}

// ValueTrips counts each driver or helper assignment of the employee within
// the period and sums the matching rate. An empty slot on a trip never
// matches.
func ValueTrips(employeeID string, trips []trip.Trip, p Period) (count int, income decimal.Decimal) {
	income = decimal.Zero
	if employeeID == "" {
		return 0, income
	}
	for _, t := range trips {
		if !p.Contains(t.Date) {
			continue
		}
		if t.DriverID == employeeID {
			count++
			income = income.Add(t.DriverRate)
		}
		if t.HelperID == employeeID {
			count++
			income = income.Add(t.HelperRate)
		}
	}
	return count, income
}

// TripCashAdvance sums the driver or helper cash advances recorded against
// the employee's trips in the period.
func TripCashAdvance(employeeID string, trips []trip.Trip, expenses []trip.Expense, p Period) decimal.Decimal {
	if employeeID == "" {
		return decimal.Zero
	}
	type role struct{ driver, helper bool }
	roles := make(map[string]role)
	for _, t := range trips {
		if !p.Contains(t.Date) {
			continue
		}
		r := role{driver: t.DriverID == employeeID, helper: t.HelperID == employeeID}
		if r.driver || r.helper {
			roles[t.ID] = r
		}
	}

	total := decimal.Zero
	for _, e := range expenses {
		r, ok := roles[e.TripID]
		if !ok {
			continue
		}
		if r.driver {
			total = total.Add(e.DriverCA)
		}
		if r.helper {
			total = total.Add(e.HelperCA)
		}
	}
	return total
}

// OvertimePay is hours * (dailyRate / 8) * multiplier.
func OvertimePay(dailyRate, hours decimal.Decimal, t OvertimeType) decimal.Decimal {
	return hours.Mul(dailyRate).Mul(OvertimeMultiplier(t)).Div(HoursPerDay)
}

// UndertimeDeduction is minutes * (dailyRate / 8 / 60).
func UndertimeDeduction(dailyRate, minutes decimal.Decimal) decimal.Decimal {
	return minutes.Mul(dailyRate).Div(MinutesPerDay)
}

func ValueOvertime(employeeID string, dailyRate decimal.Decimal, records []OvertimeRecord, p Period) decimal.Decimal {
	total := decimal.Zero
	if employeeID == "" {
		return total
	}
	for _, r := range records {
		if r.EmployeeID == employeeID && p.Contains(r.Date) {
			total = total.Add(OvertimePay(dailyRate, r.Hours, r.Type))
		}
	}
	return total
}

func ValueUndertime(employeeID string, dailyRate decimal.Decimal, records []UndertimeRecord, p Period) decimal.Decimal {
	total := decimal.Zero
	if employeeID == "" {
		return total
	}
	for _, r := range records {
		if r.EmployeeID == employeeID && p.Contains(r.Date) {
			total = total.Add(UndertimeDeduction(dailyRate, r.Minutes))
		}
	}
	return total
}

// HolidayPay is the day's pay on a holiday given whether the employee worked.
func HolidayPay(dailyRate decimal.Decimal, t HolidayType, worked bool) decimal.Decimal {
	return dailyRate.Mul(HolidayFactor(t, worked))
}

// ValueHolidays pays each holiday date in the period once. When a date holds
// both kinds of holiday the Regular rule applies. The returned set lists the
// dates that were valued.
func ValueHolidays(dailyRate decimal.Decimal, holidays []Holiday, byDate map[DayKey]attendance.Record, p Period) (decimal.Decimal, map[DayKey]struct{}) {
	kinds := make(map[DayKey]HolidayType)
	for _, h := range holidays {
		if !p.Contains(h.Date) {
			continue
		}
		k := DayKey(DateOf(h.Date).Format(DateLayout))
		if prev, ok := kinds[k]; ok && prev == HolidayRegular {
			continue
		}
		kinds[k] = h.Type
	}

	total := decimal.Zero
	dates := make(map[DayKey]struct{}, len(kinds))
	for k, t := range kinds {
		dates[k] = struct{}{}
		total = total.Add(HolidayPay(dailyRate, t, workedOn(byDate, k)))
	}
	return total, dates
}

// AdminAllowanceTotal sums transportation and meal allowances on dates the
// employee actually worked. Stored records on other dates are ignored.
func AdminAllowanceTotal(employeeID string, allowances []AdminAllowance, byDate map[DayKey]attendance.Record, p Period) decimal.Decimal {
	total := decimal.Zero
	if employeeID == "" {
		return total
	}
	for _, a := range allowances {
		if a.EmployeeID != employeeID || !p.Contains(a.Date) {
			continue
		}
		if !workedOn(byDate, DayKey(DateOf(a.Date).Format(DateLayout))) {
			continue
		}
		total = total.Add(a.Transportation).Add(a.Meal)
	}
	return total
}

// PetServiceTotal grants PetServiceAllowance once for every month touched by
// the period that the employee qualified in.
func PetServiceTotal(employeeID string, records []PetServiceRecord, p Period) decimal.Decimal {
	if employeeID == "" {
		return decimal.Zero
	}
	qualified := make(map[YearMonth]bool)
	for _, r := range records {
		if r.EmployeeID == employeeID && r.Qualified {
			qualified[YearMonth{Year: r.Year, Month: r.Month}] = true
		}
	}

	total := decimal.Zero
	for _, m := range p.Months() {
		if qualified[m] {
			total = total.Add(PetServiceAllowance)
		}
	}
	return total
}

// Statutory holds the government contributions withheld in a period.
type Statutory struct {
	SSS        decimal.Decimal
	PhilHealth decimal.Decimal
	PagIbig    decimal.Decimal
	MP2        decimal.Decimal
}

func (s Statutory) Total() decimal.Decimal {
	return s.SSS.Add(s.PhilHealth).Add(s.PagIbig).Add(s.MP2)
}

// StatutoryDeductions applies the employee's contributions on month-end
// cut-offs only.
func StatutoryDeductions(e employee.Employee, p Period) Statutory {
	if !p.IsMonthEnd() {
		return Statutory{
			SSS:        decimal.Zero,
			PhilHealth: decimal.Zero,
			PagIbig:    decimal.Zero,
			MP2:        decimal.Zero,
		}
	}
	return Statutory{
		SSS:        e.SSS,
		PhilHealth: e.PhilHealth,
		PagIbig:    e.PagIbig,
		MP2:        e.MP2,
	}
}

// LoanAmortizationTotal previews the scheduled deduction of active loans.
// It never records a payment.
func LoanAmortizationTotal(loans []loan.Loan) decimal.Decimal {
	total := decimal.Zero
	for _, l := range loans {
		if l.Status == loan.StatusActive {
			total = total.Add(l.Amortization)
		}
	}
	return total
}
