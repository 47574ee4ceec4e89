package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// OvertimeType enum
type OvertimeType string

const (
	OvertimeRegular        OvertimeType = "Regular"
	OvertimeRestDay        OvertimeType = "RestDay"
	OvertimeSpecial        OvertimeType = "Special"
	OvertimeRegularHoliday OvertimeType = "RegularHoliday"
)

type OvertimeRecord struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Hours      decimal.Decimal
	Type       OvertimeType
}

type UndertimeRecord struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Minutes    decimal.Decimal
}

// HolidayType enum
type HolidayType string

const (
	HolidayRegular           HolidayType = "Regular"
	HolidaySpecialNonWorking HolidayType = "Special Non-Working"
)

type Holiday struct {
	Date        time.Time
	Description string
	Type        HolidayType
}

// AdminAllowance - Daily transportation and meal allowance of admin staff
type AdminAllowance struct {
	ID             string
	EmployeeID     string
	Date           time.Time
	Transportation decimal.Decimal
	Meal           decimal.Decimal
}

// PetServiceRecord - Monthly pet service qualification
type PetServiceRecord struct {
	EmployeeID string
	Year       int
	Month      time.Month
	Qualified  bool
}

// PayrollRecord - Persisted result for one employee and one period
type PayrollRecord struct {
	ID              string
	EmployeeID      string
	PeriodStart     time.Time
	PeriodEnd       time.Time
	GrossIncome     decimal.Decimal
	NetPay          decimal.Decimal
	IponPondo       decimal.Decimal
	ThirteenthMonth decimal.Decimal
	DateGenerated   time.Time

	// Joined fields
	EmployeeName string
}
