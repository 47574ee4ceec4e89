package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/transco/backoffice-go/internal/pkg/validator"
)

// ========== REQUEST DTOs ==========

type GeneratePeriodRequest struct {
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`

	Period Period `json:"-"`
}

func (r *GeneratePeriodRequest) Validate() error {
	period, errs := validatePeriod(r.PeriodStart, r.PeriodEnd)
	if len(errs) > 0 {
		return errs
	}
	r.Period = period
	return nil
}

// PeriodFilter selects one period. Empty bounds default to the cut-off
// containing today.
type PeriodFilter struct {
	PeriodStart string `json:"period_start,omitempty"`
	PeriodEnd   string `json:"period_end,omitempty"`

	Period Period `json:"-"`
}

func (f *PeriodFilter) Validate(today time.Time) error {
	if f.PeriodStart == "" && f.PeriodEnd == "" {
		f.Period = CutoffFor(today)
		return nil
	}
	period, errs := validatePeriod(f.PeriodStart, f.PeriodEnd)
	if len(errs) > 0 {
		return errs
	}
	f.Period = period
	return nil
}

func validatePeriod(start, end string) (Period, validator.ValidationErrors) {
	var errs validator.ValidationErrors

	s, okStart := validator.IsValidDate(start)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "must be a date in YYYY-MM-DD format"})
	}
	e, okEnd := validator.IsValidDate(end)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must be a date in YYYY-MM-DD format"})
	}
	if okStart && okEnd && !validator.IsDateRangeValid(s, e) {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must not be before period_start"})
	}
	if len(errs) > 0 {
		return Period{}, errs
	}

	period, err := NewPeriod(s, e)
	if err != nil {
		return Period{}, validator.ValidationErrors{{Field: "period_end", Message: err.Error()}}
	}
	return period, nil
}

// ========== RESPONSE DTOs ==========

type GeneratePeriodResponse struct {
	PeriodStart      string          `json:"period_start"`
	PeriodEnd        string          `json:"period_end"`
	MonthEnd         bool            `json:"month_end"`
	RecordsGenerated int             `json:"records_generated"`
	RecordsReplaced  int64           `json:"records_replaced"`
	TotalGross       decimal.Decimal `json:"total_gross"`
	TotalNet         decimal.Decimal `json:"total_net"`
	GeneratedAt      time.Time       `json:"generated_at"`
}

type PayrollRecordResponse struct {
	ID              string          `json:"id"`
	EmployeeID      string          `json:"employee_id"`
	EmployeeName    string          `json:"employee_name"`
	PeriodStart     string          `json:"period_start"`
	PeriodEnd       string          `json:"period_end"`
	GrossIncome     decimal.Decimal `json:"gross_income"`
	NetPay          decimal.Decimal `json:"net_pay"`
	IponPondo       decimal.Decimal `json:"ipon_pondo"`
	ThirteenthMonth decimal.Decimal `json:"thirteenth_month"`
	DateGenerated   time.Time       `json:"date_generated"`
}

func NewPayrollRecordResponse(r PayrollRecord) PayrollRecordResponse {
	return PayrollRecordResponse{
		ID:              r.ID,
		EmployeeID:      r.EmployeeID,
		EmployeeName:    r.EmployeeName,
		PeriodStart:     r.PeriodStart.Format(DateLayout),
		PeriodEnd:       r.PeriodEnd.Format(DateLayout),
		GrossIncome:     r.GrossIncome.Round(2),
		NetPay:          r.NetPay.Round(2),
		IponPondo:       r.IponPondo.Round(2),
		ThirteenthMonth: r.ThirteenthMonth.Round(2),
		DateGenerated:   r.DateGenerated,
	}
}

type StatutoryResponse struct {
	SSS        decimal.Decimal `json:"sss"`
	PhilHealth decimal.Decimal `json:"philhealth"`
	PagIbig    decimal.Decimal `json:"pagibig"`
	MP2        decimal.Decimal `json:"mp2"`
	Total      decimal.Decimal `json:"total"`
}

type PayrollLineResponse struct {
	EmployeeID         string            `json:"employee_id"`
	EmployeeName       string            `json:"employee_name"`
	Role               string            `json:"role"`
	PeriodStart        string            `json:"period_start"`
	PeriodEnd          string            `json:"period_end"`
	TripCount          int               `json:"trip_count"`
	TripIncome         decimal.Decimal   `json:"trip_income"`
	AttendancePay      decimal.Decimal   `json:"attendance_pay"`
	BaseIncome         decimal.Decimal   `json:"base_income"`
	OvertimePay        decimal.Decimal   `json:"overtime_pay"`
	UndertimeDeduction decimal.Decimal   `json:"undertime_deduction"`
	GrossIncome        decimal.Decimal   `json:"gross_income"`
	HolidayPay         decimal.Decimal   `json:"holiday_pay"`
	AdminAllowance     decimal.Decimal   `json:"admin_allowance"`
	PetServicePay      decimal.Decimal   `json:"pet_service_pay"`
	MonthEnd           bool              `json:"month_end"`
	Statutory          StatutoryResponse `json:"statutory"`
	TaxableIncome      decimal.Decimal   `json:"taxable_income"`
	Tax                decimal.Decimal   `json:"tax"`
	IponPondo          decimal.Decimal   `json:"ipon_pondo"`
	ThirteenthMonth    decimal.Decimal   `json:"thirteenth_month"`
	TripCA             decimal.Decimal   `json:"trip_ca"`
	LoanAmortization   decimal.Decimal   `json:"loan_amortization"`
	FixedDeductions    decimal.Decimal   `json:"fixed_deductions"`
	TotalDeductions    decimal.Decimal   `json:"total_deductions"`
	NetPay             decimal.Decimal   `json:"net_pay"`
}

func NewPayrollLineResponse(l Line) PayrollLineResponse {
	return PayrollLineResponse{
		EmployeeID:         l.EmployeeID,
		EmployeeName:       l.EmployeeName,
		Role:               string(l.Role),
		PeriodStart:        l.PeriodStart.Format(DateLayout),
		PeriodEnd:          l.PeriodEnd.Format(DateLayout),
		TripCount:          l.TripCount,
		TripIncome:         l.TripIncome.Round(2),
		AttendancePay:      l.AttendancePay.Round(2),
		BaseIncome:         l.BaseIncome.Round(2),
		OvertimePay:        l.OvertimePay.Round(2),
		UndertimeDeduction: l.UndertimeDeduction.Round(2),
		GrossIncome:        l.GrossIncome.Round(2),
		HolidayPay:         l.HolidayPay.Round(2),
		AdminAllowance:     l.AdminAllowance.Round(2),
		PetServicePay:      l.PetServicePay.Round(2),
		MonthEnd:           l.MonthEnd,
		Statutory: StatutoryResponse{
			SSS:        l.Statutory.SSS.Round(2),
			PhilHealth: l.Statutory.PhilHealth.Round(2),
			PagIbig:    l.Statutory.PagIbig.Round(2),
			MP2:        l.Statutory.MP2.Round(2),
			Total:      l.Statutory.Total().Round(2),
		},
		TaxableIncome:    l.TaxableIncome.Round(2),
		Tax:              l.Tax.Round(2),
		IponPondo:        l.IponPondo.Round(2),
		ThirteenthMonth:  l.ThirteenthMonth.Round(2),
		TripCA:           l.TripCA.Round(2),
		LoanAmortization: l.LoanAmortization.Round(2),
		FixedDeductions:  l.FixedDeductions.Round(2),
		TotalDeductions:  l.TotalDeductions.Round(2),
		NetPay:           l.NetPay.Round(2),
	}
}
