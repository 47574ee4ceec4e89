package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOvertimeMultiplier(t *testing.T) {
	tests := []struct {
		typ  OvertimeType
		want string
	}{
		{OvertimeRegular, "1.25"},
		{OvertimeRestDay, "1.69"},
		{OvertimeSpecial, "1.69"},
		{OvertimeRegularHoliday, "2.30"},
		{OvertimeType("Night"), "1.25"},
		{OvertimeType(""), "1.25"},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			assert.Equal(t, tt.want, OvertimeMultiplier(tt.typ).StringFixed(2))
		})
	}
}

func TestHolidayFactor(t *testing.T) {
	assert.Equal(t, "2.00", HolidayFactor(HolidayRegular, true).StringFixed(2))
	assert.Equal(t, "1.00", HolidayFactor(HolidayRegular, false).StringFixed(2))
	assert.Equal(t, "1.30", HolidayFactor(HolidaySpecialNonWorking, true).StringFixed(2))
	assert.Equal(t, "0.00", HolidayFactor(HolidaySpecialNonWorking, false).StringFixed(2))
	assert.Equal(t, "0.00", HolidayFactor(HolidayType("Local"), true).StringFixed(2))
}

func TestTaxBrackets_Ordered(t *testing.T) {
	for i := 1; i < len(TaxBrackets); i++ {
		prev, cur := TaxBrackets[i-1], TaxBrackets[i]
		assert.False(t, prev.Unbounded, "only the last bracket may be unbounded")
		assert.True(t, cur.Floor.Equal(prev.Ceiling), "bracket %d floor must equal previous ceiling", i)
	}
	assert.True(t, TaxBrackets[len(TaxBrackets)-1].Unbounded)
}
