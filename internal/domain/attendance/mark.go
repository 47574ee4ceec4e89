package attendance

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// MarkPlan is the set of writes needed to mark one (employee, date) pair.
type MarkPlan struct {
	DeleteIDs  []string
	Insert     *Record
	ToggledOff bool
}

// Canonical picks the record that represents the day when duplicates exist:
// the most recently marked one, ties broken by the greatest ID.
func Canonical(records []Record) (Record, bool) {
	if len(records) == 0 {
		return Record{}, false
	}
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].MarkedAt.Equal(sorted[j].MarkedAt) {
			return sorted[i].MarkedAt.After(sorted[j].MarkedAt)
		}
		return sorted[i].ID > sorted[j].ID
	})
	return sorted[0], true
}

// PlanMark decides how to apply a status to a day that may already hold one
// or more records. Re-marking the current status removes the day entirely.
// Any other status clears every existing record and writes a single new one
// with the pay snapshot taken at dailyRate.
func PlanMark(existing []Record, employeeID string, date time.Time, status Status, dailyRate decimal.Decimal, newID string, now time.Time) MarkPlan {
	var plan MarkPlan
	for _, r := range existing {
		plan.DeleteIDs = append(plan.DeleteIDs, r.ID)
	}

	if current, ok := Canonical(existing); ok && current.Status == status {
		plan.ToggledOff = true
		return plan
	}

	plan.Insert = &Record{
		ID:          newID,
		EmployeeID:  employeeID,
		Date:        date,
		Status:      status,
		ComputedPay: DailyPay(dailyRate, status),
		MarkedAt:    now,
	}
	return plan
}
