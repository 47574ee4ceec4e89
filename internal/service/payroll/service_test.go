package payroll

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transco/backoffice-go/internal/domain/attendance"
	"github.com/transco/backoffice-go/internal/domain/employee"
	"github.com/transco/backoffice-go/internal/domain/loan"
	"github.com/transco/backoffice-go/internal/domain/payroll"
	"github.com/transco/backoffice-go/internal/domain/trip"
	"github.com/transco/backoffice-go/internal/pkg/validator"
)

// memoryPayrollRepo keeps records in memory. A failing replace leaves the
// stored records untouched, matching a rolled back transaction.
type memoryPayrollRepo struct {
	mu         sync.Mutex
	inputs     payroll.PeriodInputs
	records    []payroll.PayrollRecord
	loadErr    error
	replaceErr error
	loads      int
}

func (m *memoryPayrollRepo) LoadPeriodInputs(ctx context.Context, period payroll.Period) (payroll.PeriodInputs, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loads++
	if m.loadErr != nil {
		return payroll.PeriodInputs{}, m.loadErr
	}
	return m.inputs, nil
}

func (m *memoryPayrollRepo) ReplacePeriodRecords(ctx context.Context, period payroll.Period, records []payroll.PayrollRecord) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.replaceErr != nil {
		return 0, m.replaceErr
	}

	var kept []payroll.PayrollRecord
	var deleted int64
	for _, r := range m.records {
		if r.PeriodStart.Equal(period.Start) && r.PeriodEnd.Equal(period.End) {
			deleted++
			continue
		}
		kept = append(kept, r)
	}
	m.records = append(kept, records...)
	return deleted, nil
}

func (m *memoryPayrollRepo) ListPeriodRecords(ctx context.Context, period payroll.Period) ([]payroll.PayrollRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []payroll.PayrollRecord
	for _, r := range m.records {
		if r.PeriodStart.Equal(period.Start) && r.PeriodEnd.Equal(period.End) {
			out = append(out, r)
		}
	}
	return out, nil
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(s string) time.Time {
	t, err := time.Parse(payroll.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func fixtureInputs() payroll.PeriodInputs {
	marked := time.Date(2024, 2, 16, 9, 0, 0, 0, time.UTC)
	return payroll.PeriodInputs{
		Employees: []employee.Employee{
			{ID: "e-admin", FullName: "Ana Admin", Role: employee.RoleAdmin, DailyRate: d("600"), Rate: d("15000"), SSS: d("500")},
			{ID: "e-driver", FullName: "Dan Driver", Role: employee.RoleDriver, DailyRate: d("800"),
				Loans: []loan.Loan{{ID: "l1", Amount: d("3000"), Amortization: d("300"), Status: loan.StatusActive}}},
			{ID: "e-helper", FullName: "Hana Helper", Role: employee.RoleHelper, DailyRate: d("600")},
			{ID: "e-idle", FullName: "Ivan Idle", Role: employee.RoleHelper, DailyRate: d("600")},
		},
		Attendance: []attendance.Record{
			{ID: "a1", EmployeeID: "e-driver", Date: day("2024-02-16"), Status: attendance.StatusPresent, ComputedPay: d("800"), MarkedAt: marked},
		},
		Trips: []trip.Trip{
			{ID: "t1", DriverID: "e-driver", HelperID: "e-helper", DriverRate: d("1500"), HelperRate: d("700"), Date: day("2024-02-16")},
			{ID: "t2", DriverID: "e-driver", HelperID: "e-helper", DriverRate: d("1500"), HelperRate: d("700"), Date: day("2024-02-20")},
		},
		Expenses: []trip.Expense{
			{ID: "x1", TripID: "t1", DriverCA: d("200"), HelperCA: d("100")},
		},
		Overtime: []payroll.OvertimeRecord{
			{ID: "o1", EmployeeID: "e-driver", Date: day("2024-02-17"), Hours: d("2"), Type: payroll.OvertimeRegular},
		},
	}
}

func newTestService(repo *memoryPayrollRepo) *PayrollServiceImpl {
	svc := NewPayrollService(repo, 2).(*PayrollServiceImpl)
	svc.now = func() time.Time { return time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC) }
	return svc
}

type recordKey struct {
	EmployeeID string
	Gross      string
	Net        string
	Ipon       string
	Thirteenth string
}

func keys(records []payroll.PayrollRecord) []recordKey {
	out := make([]recordKey, 0, len(records))
	for _, r := range records {
		out = append(out, recordKey{
			EmployeeID: r.EmployeeID,
			Gross:      r.GrossIncome.String(),
			Net:        r.NetPay.String(),
			Ipon:       r.IponPondo.String(),
			Thirteenth: r.ThirteenthMonth.String(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EmployeeID < out[j].EmployeeID })
	return out
}

func TestGeneratePeriod_AllEmployees(t *testing.T) {
	repo := &memoryPayrollRepo{inputs: fixtureInputs()}
	svc := newTestService(repo)

	resp, err := svc.GeneratePeriod(context.Background(), payroll.GeneratePeriodRequest{
		PeriodStart: "2024-02-16",
		PeriodEnd:   "2024-02-29",
	})
	require.NoError(t, err)

	assert.Equal(t, 4, resp.RecordsGenerated)
	assert.Equal(t, int64(0), resp.RecordsReplaced)
	assert.True(t, resp.MonthEnd)
	require.Len(t, repo.records, 4)

	byEmployee := make(map[string]payroll.PayrollRecord)
	for _, r := range repo.records {
		byEmployee[r.EmployeeID] = r
		id, err := uuid.Parse(r.ID)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), id.Version(), r.ID)
	}
	assert.Equal(t, "15000.00", byEmployee["e-admin"].GrossIncome.StringFixed(2))
	assert.Equal(t, "3250.00", byEmployee["e-driver"].GrossIncome.StringFixed(2))
	assert.Equal(t, "1400.00", byEmployee["e-helper"].GrossIncome.StringFixed(2))
	assert.Equal(t, "0.00", byEmployee["e-idle"].NetPay.StringFixed(2))

	// driver: 3250 - 162.50 ipon - 200 CA - 300 loan
	assert.Equal(t, "2587.50", byEmployee["e-driver"].NetPay.StringFixed(2))
}

func TestGeneratePeriod_Idempotent(t *testing.T) {
	repo := &memoryPayrollRepo{inputs: fixtureInputs()}
	svc := newTestService(repo)
	req := payroll.GeneratePeriodRequest{PeriodStart: "2024-02-16", PeriodEnd: "2024-02-29"}

	_, err := svc.GeneratePeriod(context.Background(), req)
	require.NoError(t, err)
	first := keys(repo.records)
	firstIDs := map[string]bool{}
	for _, r := range repo.records {
		firstIDs[r.ID] = true
	}

	second, err := svc.GeneratePeriod(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, int64(4), second.RecordsReplaced)
	assert.Equal(t, first, keys(repo.records))
	for _, r := range repo.records {
		assert.False(t, firstIDs[r.ID], "regeneration must not keep old records")
	}
}

func TestGeneratePeriod_KeepsOtherPeriods(t *testing.T) {
	repo := &memoryPayrollRepo{inputs: fixtureInputs()}
	svc := newTestService(repo)

	_, err := svc.GeneratePeriod(context.Background(), payroll.GeneratePeriodRequest{PeriodStart: "2024-02-01", PeriodEnd: "2024-02-15"})
	require.NoError(t, err)
	_, err = svc.GeneratePeriod(context.Background(), payroll.GeneratePeriodRequest{PeriodStart: "2024-02-16", PeriodEnd: "2024-02-29"})
	require.NoError(t, err)

	assert.Len(t, repo.records, 8)
}

func TestGeneratePeriod_InvalidPeriod(t *testing.T) {
	repo := &memoryPayrollRepo{inputs: fixtureInputs()}
	svc := newTestService(repo)

	_, err := svc.GeneratePeriod(context.Background(), payroll.GeneratePeriodRequest{
		PeriodStart: "2024-02-29",
		PeriodEnd:   "2024-02-16",
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "period_end")
	assert.Zero(t, repo.loads)
}

func TestGeneratePeriod_ReplaceFailureKeepsPreviousRecords(t *testing.T) {
	repo := &memoryPayrollRepo{inputs: fixtureInputs()}
	svc := newTestService(repo)
	req := payroll.GeneratePeriodRequest{PeriodStart: "2024-02-16", PeriodEnd: "2024-02-29"}

	_, err := svc.GeneratePeriod(context.Background(), req)
	require.NoError(t, err)
	before := keys(repo.records)

	dbErr := errors.New("connection reset")
	repo.replaceErr = dbErr
	_, err = svc.GeneratePeriod(context.Background(), req)

	assert.ErrorIs(t, err, dbErr)
	assert.Equal(t, before, keys(repo.records))
}

func TestGeneratePeriod_LoadFailure(t *testing.T) {
	dbErr := errors.New("timeout")
	repo := &memoryPayrollRepo{loadErr: dbErr}
	svc := newTestService(repo)

	_, err := svc.GeneratePeriod(context.Background(), payroll.GeneratePeriodRequest{PeriodStart: "2024-02-16", PeriodEnd: "2024-02-29"})

	assert.ErrorIs(t, err, dbErr)
	assert.Empty(t, repo.records)
}

func TestGeneratePeriod_CancelledContext(t *testing.T) {
	repo := &memoryPayrollRepo{inputs: fixtureInputs()}
	svc := newTestService(repo)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.GeneratePeriod(ctx, payroll.GeneratePeriodRequest{PeriodStart: "2024-02-16", PeriodEnd: "2024-02-29"})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, repo.records)
}

func TestPreviewLines(t *testing.T) {
	repo := &memoryPayrollRepo{inputs: fixtureInputs()}
	svc := newTestService(repo)

	lines, err := svc.PreviewLines(context.Background(), payroll.PeriodFilter{PeriodStart: "2024-02-16", PeriodEnd: "2024-02-29"})
	require.NoError(t, err)
	require.Len(t, lines, 4)

	assert.Equal(t, "Ana Admin", lines[0].EmployeeName)
	assert.Equal(t, "Dan Driver", lines[1].EmployeeName)
	assert.Equal(t, 2, lines[1].TripCount)
	assert.Equal(t, "800.00", lines[1].AttendancePay.StringFixed(2))
	assert.Equal(t, "300.00", lines[1].LoanAmortization.StringFixed(2))
	assert.Equal(t, "500.00", lines[0].Statutory.SSS.StringFixed(2))
	assert.Empty(t, repo.records, "preview must not persist")
}

func TestListRecords_DefaultsToCurrentCutoff(t *testing.T) {
	repo := &memoryPayrollRepo{inputs: fixtureInputs()}
	svc := newTestService(repo)
	svc.now = func() time.Time { return time.Date(2024, 2, 20, 8, 0, 0, 0, time.UTC) }

	_, err := svc.GeneratePeriod(context.Background(), payroll.GeneratePeriodRequest{PeriodStart: "2024-02-16", PeriodEnd: "2024-02-29"})
	require.NoError(t, err)

	records, err := svc.ListRecords(context.Background(), payroll.PeriodFilter{})
	require.NoError(t, err)
	assert.Len(t, records, 4)
	for _, r := range records {
		assert.Equal(t, "2024-02-16", r.PeriodStart)
		assert.Equal(t, "2024-02-29", r.PeriodEnd)
	}

	none, err := svc.ListRecords(context.Background(), payroll.PeriodFilter{PeriodStart: "2024-02-01", PeriodEnd: "2024-02-15"})
	require.NoError(t, err)
	assert.Empty(t, none)
}
