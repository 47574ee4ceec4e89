package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transco/backoffice-go/internal/domain/attendance"
	"github.com/transco/backoffice-go/internal/domain/employee"
	"github.com/transco/backoffice-go/internal/domain/loan"
	"github.com/transco/backoffice-go/internal/domain/trip"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func mustPeriod(t *testing.T, start, end string) Period {
	t.Helper()
	p, err := ParsePeriod(start, end)
	require.NoError(t, err)
	return p
}

func TestOvertimePay(t *testing.T) {
	assert.Equal(t, "250.00", OvertimePay(dec("800"), dec("2"), OvertimeRegular).StringFixed(2))
	assert.Equal(t, "338.00", OvertimePay(dec("800"), dec("2"), OvertimeRestDay).StringFixed(2))
	assert.Equal(t, "460.00", OvertimePay(dec("800"), dec("2"), OvertimeRegularHoliday).StringFixed(2))
	assert.Equal(t, "125.00", OvertimePay(dec("800"), dec("1"), OvertimeType("unknown")).StringFixed(2))
	assert.Equal(t, "0.00", OvertimePay(decimal.Zero, dec("3"), OvertimeRegular).StringFixed(2))
}

func TestUndertimeDeduction(t *testing.T) {
	assert.Equal(t, "50.00", UndertimeDeduction(dec("800"), dec("30")).StringFixed(2))
	assert.Equal(t, "800.00", UndertimeDeduction(dec("800"), dec("480")).StringFixed(2))
	assert.Equal(t, "0.00", UndertimeDeduction(dec("800"), decimal.Zero).StringFixed(2))
}

func TestHolidayPay(t *testing.T) {
	rate := dec("800")
	assert.Equal(t, "1600.00", HolidayPay(rate, HolidayRegular, true).StringFixed(2))
	assert.Equal(t, "800.00", HolidayPay(rate, HolidayRegular, false).StringFixed(2))
	assert.Equal(t, "1040.00", HolidayPay(rate, HolidaySpecialNonWorking, true).StringFixed(2))
	assert.Equal(t, "0.00", HolidayPay(rate, HolidaySpecialNonWorking, false).StringFixed(2))
}

func TestValueOvertimeAndUndertime_PeriodFiltered(t *testing.T) {
	p := mustPeriod(t, "2024-02-01", "2024-02-15")
	rate := dec("800")

	overtime := []OvertimeRecord{
		{ID: "o1", EmployeeID: "e1", Date: date("2024-02-01"), Hours: dec("2"), Type: OvertimeRegular},
		{ID: "o2", EmployeeID: "e1", Date: date("2024-02-15"), Hours: dec("1"), Type: OvertimeRegularHoliday},
		{ID: "o3", EmployeeID: "e1", Date: date("2024-02-16"), Hours: dec("5"), Type: OvertimeRegular},
		{ID: "o4", EmployeeID: "e2", Date: date("2024-02-05"), Hours: dec("5"), Type: OvertimeRegular},
	}
	assert.Equal(t, "480.00", ValueOvertime("e1", rate, overtime, p).StringFixed(2))

	undertime := []UndertimeRecord{
		{ID: "u1", EmployeeID: "e1", Date: date("2024-02-03"), Minutes: dec("30")},
		{ID: "u2", EmployeeID: "e1", Date: date("2024-01-31"), Minutes: dec("60")},
		{ID: "u3", EmployeeID: "e2", Date: date("2024-02-03"), Minutes: dec("60")},
	}
	assert.Equal(t, "50.00", ValueUndertime("e1", rate, undertime, p).StringFixed(2))
}

func TestValueTrips(t *testing.T) {
	p := mustPeriod(t, "2024-02-01", "2024-02-15")
	trips := []trip.Trip{
		{ID: "t1", DriverID: "e1", HelperID: "e2", DriverRate: dec("1500"), HelperRate: dec("800"), Date: date("2024-02-02")},
		{ID: "t2", DriverID: "e2", HelperID: "e1", DriverRate: dec("1400"), HelperRate: dec("700"), Date: date("2024-02-10")},
		{ID: "t3", DriverID: "e1", DriverRate: dec("1500"), Date: date("2024-02-16")},
		{ID: "t4", DriverID: "e3", HelperID: "e2", DriverRate: dec("1300"), HelperRate: dec("600"), Date: date("2024-02-11")},
	}

	count, income := ValueTrips("e1", trips, p)
	assert.Equal(t, 2, count)
	assert.Equal(t, "2200.00", income.StringFixed(2))

	count, income = ValueTrips("e2", trips, p)
	assert.Equal(t, 3, count)
	assert.Equal(t, "2800.00", income.StringFixed(2))

	count, income = ValueTrips("nobody", trips, p)
	assert.Zero(t, count)
	assert.True(t, income.IsZero())
}

func TestValueTrips_EmptySlotNeverMatches(t *testing.T) {
	p := mustPeriod(t, "2024-02-01", "2024-02-15")
	trips := []trip.Trip{
		{ID: "t1", DriverID: "d1", DriverRate: dec("1500"), HelperRate: dec("500"), Date: date("2024-02-02")},
		{ID: "t2", HelperID: "h1", DriverRate: dec("1500"), HelperRate: dec("500"), Date: date("2024-02-03")},
	}
	expenses := []trip.Expense{
		{ID: "x1", TripID: "t1", DriverCA: dec("300"), HelperCA: dec("100")},
		{ID: "x2", TripID: "t2", DriverCA: dec("200"), HelperCA: dec("50")},
	}

	count, income := ValueTrips("", trips, p)
	assert.Zero(t, count)
	assert.True(t, income.IsZero())
	assert.True(t, TripCashAdvance("", trips, expenses, p).IsZero())

	count, income = ValueTrips("d1", trips, p)
	assert.Equal(t, 1, count)
	assert.Equal(t, "1500.00", income.StringFixed(2))
}

func TestTripCashAdvance(t *testing.T) {
	p := mustPeriod(t, "2024-02-01", "2024-02-15")
	trips := []trip.Trip{
		{ID: "t1", DriverID: "e1", HelperID: "e2", Date: date("2024-02-02")},
		{ID: "t2", DriverID: "e2", HelperID: "e1", Date: date("2024-02-10")},
		{ID: "t3", DriverID: "e1", Date: date("2024-02-20")},
	}
	expenses := []trip.Expense{
		{ID: "x1", TripID: "t1", DriverCA: dec("300"), HelperCA: dec("100"), ClientCharge: dec("9000")},
		{ID: "x2", TripID: "t2", DriverCA: dec("50"), HelperCA: dec("70")},
		{ID: "x3", TripID: "t3", DriverCA: dec("999")},
	}

	assert.Equal(t, "370.00", TripCashAdvance("e1", trips, expenses, p).StringFixed(2))
	assert.Equal(t, "150.00", TripCashAdvance("e2", trips, expenses, p).StringFixed(2))
}

func TestAttendanceByDate_KeepsCanonical(t *testing.T) {
	p := mustPeriod(t, "2024-02-01", "2024-02-15")
	base := time.Date(2024, 2, 5, 8, 0, 0, 0, time.UTC)
	records := []attendance.Record{
		{ID: "a1", EmployeeID: "e1", Date: date("2024-02-05"), Status: attendance.StatusPresent, ComputedPay: dec("800"), MarkedAt: base},
		{ID: "a2", EmployeeID: "e1", Date: date("2024-02-05"), Status: attendance.StatusAbsent, MarkedAt: base.Add(time.Hour)},
		{ID: "a3", EmployeeID: "e1", Date: date("2024-02-20"), Status: attendance.StatusPresent, ComputedPay: dec("800"), MarkedAt: base},
		{ID: "a4", EmployeeID: "e2", Date: date("2024-02-05"), Status: attendance.StatusPresent, ComputedPay: dec("700"), MarkedAt: base},
	}

	byDate := AttendanceByDate("e1", records, p)
	require.Len(t, byDate, 1)
	assert.Equal(t, "a2", byDate["2024-02-05"].ID)
	assert.True(t, AttendancePay(byDate, nil).IsZero())
}

func TestValueHolidays(t *testing.T) {
	p := mustPeriod(t, "2024-02-01", "2024-02-15")
	rate := dec("800")
	byDate := map[DayKey]attendance.Record{
		"2024-02-09": {ID: "a1", Status: attendance.StatusPresent},
		"2024-02-10": {ID: "a2", Status: attendance.StatusRestDay},
		"2024-02-12": {ID: "a3", Status: attendance.StatusHalfDay},
	}
	holidays := []Holiday{
		{Date: date("2024-02-09"), Type: HolidayRegular},
		{Date: date("2024-02-10"), Type: HolidayRegular},
		{Date: date("2024-02-12"), Type: HolidaySpecialNonWorking},
		{Date: date("2024-02-12"), Type: HolidayRegular},
		{Date: date("2024-02-14"), Type: HolidaySpecialNonWorking},
		{Date: date("2024-02-25"), Type: HolidayRegular},
	}

	total, dates := ValueHolidays(rate, holidays, byDate, p)
	// 1600 worked regular + 800 rest day regular + 1600 half-day on a regular/special date + 0 unworked special
	assert.Equal(t, "4000.00", total.StringFixed(2))
	assert.Len(t, dates, 4)
	assert.Contains(t, dates, DayKey("2024-02-14"))
	assert.NotContains(t, dates, DayKey("2024-02-25"))
}

func TestAttendancePay_SkipsHolidayDates(t *testing.T) {
	byDate := map[DayKey]attendance.Record{
		"2024-02-05": {Status: attendance.StatusPresent, ComputedPay: dec("800")},
		"2024-02-06": {Status: attendance.StatusHalfDay, ComputedPay: dec("400")},
		"2024-02-09": {Status: attendance.StatusPresent, ComputedPay: dec("800")},
	}
	holidayDates := map[DayKey]struct{}{"2024-02-09": {}}

	assert.Equal(t, "1200.00", AttendancePay(byDate, holidayDates).StringFixed(2))
}

func TestAdminAllowanceTotal_RequiresWorkedDay(t *testing.T) {
	p := mustPeriod(t, "2024-02-01", "2024-02-15")
	byDate := map[DayKey]attendance.Record{
		"2024-02-05": {Status: attendance.StatusPresent},
		"2024-02-06": {Status: attendance.StatusAbsent},
		"2024-02-08": {Status: attendance.StatusHalfDay},
	}
	allowances := []AdminAllowance{
		{ID: "al1", EmployeeID: "a1", Date: date("2024-02-05"), Transportation: dec("100"), Meal: dec("150")},
		{ID: "al2", EmployeeID: "a1", Date: date("2024-02-06"), Transportation: dec("100"), Meal: dec("150")},
		{ID: "al3", EmployeeID: "a1", Date: date("2024-02-07"), Transportation: dec("100"), Meal: dec("150")},
		{ID: "al4", EmployeeID: "a1", Date: date("2024-02-08"), Transportation: dec("80"), Meal: dec("0")},
		{ID: "al5", EmployeeID: "a2", Date: date("2024-02-05"), Transportation: dec("100"), Meal: dec("150")},
	}

	assert.Equal(t, "330.00", AdminAllowanceTotal("a1", allowances, byDate, p).StringFixed(2))
}

func TestPetServiceTotal(t *testing.T) {
	records := []PetServiceRecord{
		{EmployeeID: "e1", Year: 2024, Month: time.January, Qualified: true},
		{EmployeeID: "e1", Year: 2024, Month: time.February, Qualified: false},
		{EmployeeID: "e1", Year: 2024, Month: time.March, Qualified: true},
		{EmployeeID: "e2", Year: 2024, Month: time.February, Qualified: true},
	}

	t.Run("one allowance per qualifying month", func(t *testing.T) {
		p := mustPeriod(t, "2024-01-25", "2024-03-02")
		assert.Equal(t, "4000.00", PetServiceTotal("e1", records, p).StringFixed(2))
	})

	t.Run("not per day", func(t *testing.T) {
		p := mustPeriod(t, "2024-01-01", "2024-01-15")
		assert.Equal(t, "2000.00", PetServiceTotal("e1", records, p).StringFixed(2))
	})

	t.Run("unqualified month", func(t *testing.T) {
		p := mustPeriod(t, "2024-02-01", "2024-02-15")
		assert.True(t, PetServiceTotal("e1", records, p).IsZero())
	})
}

func TestStatutoryDeductions(t *testing.T) {
	e := employee.Employee{SSS: dec("500"), PhilHealth: dec("200"), PagIbig: dec("100"), MP2: dec("100")}

	monthEnd := StatutoryDeductions(e, mustPeriod(t, "2024-02-16", "2024-02-29"))
	assert.Equal(t, "900.00", monthEnd.Total().StringFixed(2))

	firstCutoff := StatutoryDeductions(e, mustPeriod(t, "2024-02-01", "2024-02-15"))
	assert.True(t, firstCutoff.Total().IsZero())
}

func TestLoanAmortizationTotal(t *testing.T) {
	loans := []loan.Loan{
		{ID: "l1", Amortization: dec("250"), Status: loan.StatusActive},
		{ID: "l2", Amortization: dec("500"), Status: loan.StatusActive},
		{ID: "l3", Amortization: dec("999"), Status: loan.StatusPaid},
	}

	assert.Equal(t, "750.00", LoanAmortizationTotal(loans).StringFixed(2))
	assert.True(t, LoanAmortizationTotal(nil).IsZero())
	assert.Equal(t, dec("250").String(), loans[0].Amortization.String(), "collector must not mutate loans")
}
