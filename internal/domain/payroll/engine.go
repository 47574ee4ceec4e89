package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/transco/backoffice-go/internal/domain/attendance"
	"github.com/transco/backoffice-go/internal/domain/employee"
	"github.com/transco/backoffice-go/internal/domain/trip"
)

// Inputs is everything the engine needs to value one employee for one
// period. The record slices may hold other employees' data and dates
// outside the period; Compute filters them.
type Inputs struct {
	Employee        employee.Employee
	Period          Period
	Attendance      []attendance.Record
	Trips           []trip.Trip
	Expenses        []trip.Expense
	Overtime        []OvertimeRecord
	Undertime       []UndertimeRecord
	Holidays        []Holiday
	AdminAllowances []AdminAllowance
	PetService      []PetServiceRecord
}

// Line is the full breakdown of one employee's pay for a period.
type Line struct {
	EmployeeID   string
	EmployeeName string
	Role         employee.Role
	PeriodStart  time.Time
	PeriodEnd    time.Time

	TripCount          int
	TripIncome         decimal.Decimal
	AttendancePay      decimal.Decimal
	BaseIncome         decimal.Decimal
	OvertimePay        decimal.Decimal
	UndertimeDeduction decimal.Decimal
	GrossIncome        decimal.Decimal

	HolidayPay     decimal.Decimal
	AdminAllowance decimal.Decimal
	PetServicePay  decimal.Decimal

	MonthEnd         bool
	Statutory        Statutory
	TaxableIncome    decimal.Decimal
	Tax              decimal.Decimal
	IponPondo        decimal.Decimal
	ThirteenthMonth  decimal.Decimal
	TripCA           decimal.Decimal
	LoanAmortization decimal.Decimal
	FixedDeductions  decimal.Decimal
	TotalDeductions  decimal.Decimal

	NetPay decimal.Decimal
}

// Compute values one employee for one period. It does no I/O and always
// returns a line; absent records count as zero.
func Compute(in Inputs) Line {
	emp := in.Employee
	p := in.Period

	line := Line{
		EmployeeID:   emp.ID,
		EmployeeName: emp.FullName,
		Role:         emp.Role,
		PeriodStart:  p.Start,
		PeriodEnd:    p.End,
		MonthEnd:     p.IsMonthEnd(),
	}

	byDate := AttendanceByDate(emp.ID, in.Attendance, p)
	holidayPay, holidayDates := ValueHolidays(emp.DailyRate, in.Holidays, byDate, p)
	line.HolidayPay = holidayPay
	line.AttendancePay = AttendancePay(byDate, holidayDates)

	line.TripCount, line.TripIncome = ValueTrips(emp.ID, in.Trips, p)
	if emp.Role.IsSalaried() {
		line.BaseIncome = emp.Rate
	} else {
		line.BaseIncome = line.TripIncome
	}

	line.OvertimePay = ValueOvertime(emp.ID, emp.DailyRate, in.Overtime, p)
	line.UndertimeDeduction = ValueUndertime(emp.ID, emp.DailyRate, in.Undertime, p)
	line.GrossIncome = line.BaseIncome.Add(line.OvertimePay).Sub(line.UndertimeDeduction)

	line.AdminAllowance = AdminAllowanceTotal(emp.ID, in.AdminAllowances, byDate, p)
	line.PetServicePay = PetServiceTotal(emp.ID, in.PetService, p)

	line.Statutory = StatutoryDeductions(emp, p)
	line.TaxableIncome = TaxableIncome(line.GrossIncome, line.Statutory)
	line.Tax = WithholdingTax(line.TaxableIncome)
	line.IponPondo = line.GrossIncome.Mul(IponPondoRate)
	line.ThirteenthMonth = line.GrossIncome.Div(ThirteenthMonthDivisor)
	line.TripCA = TripCashAdvance(emp.ID, in.Trips, in.Expenses, p)
	line.LoanAmortization = LoanAmortizationTotal(emp.Loans)
	line.FixedDeductions = emp.FixedDeductions()

	line.TotalDeductions = line.Statutory.Total().
		Add(line.IponPondo).
		Add(line.TripCA).
		Add(line.LoanAmortization).
		Add(line.FixedDeductions).
		Add(line.Tax)

	line.NetPay = line.GrossIncome.
		Add(line.HolidayPay).
		Add(line.AdminAllowance).
		Add(line.PetServicePay).
		Sub(line.TotalDeductions)

	return line
}

// Record converts the line into its persisted form.
func (l Line) Record(id string, generatedAt time.Time) PayrollRecord {
	return PayrollRecord{
		ID:              id,
		EmployeeID:      l.EmployeeID,
		PeriodStart:     l.PeriodStart,
		PeriodEnd:       l.PeriodEnd,
		GrossIncome:     l.GrossIncome,
		NetPay:          l.NetPay,
		IponPondo:       l.IponPondo,
		ThirteenthMonth: l.ThirteenthMonth,
		DateGenerated:   generatedAt,
		EmployeeName:    l.EmployeeName,
	}
}
