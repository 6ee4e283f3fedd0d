package debt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinDSCR(t *testing.T) {
	tests := []struct {
		name     string
		rows     []ScheduleRow
		expected float64
	}{
		{
			name:     "No rows",
			rows:     nil,
			expected: 0,
		},
		{
			name: "No debt service",
			rows: []ScheduleRow{
				{Year: 1, DebtService: 0},
				{Year: 2, DebtService: 0},
			},
			expected: 0,
		},
		{
			name: "Picks the lowest ratio",
			rows: []ScheduleRow{
				{Year: 1, DebtService: 10, DSCR: floatPtr(3)},
				{Year: 2, DebtService: 10, DSCR: floatPtr(1.2)},
				{Year: 3, DebtService: 10, DSCR: floatPtr(2)},
			},
			expected: 1.2,
		},
		{
			name: "Skips years without debt service",
			rows: []ScheduleRow{
				{Year: 1, DebtService: 0},
				{Year: 2, DebtService: 10, DSCR: floatPtr(4)},
			},
			expected: 4,
		},
		{
			name: "Negative coverage is a real minimum",
			rows: []ScheduleRow{
				{Year: 1, DebtService: 10, DSCR: floatPtr(2)},
				{Year: 2, DebtService: 10, DSCR: floatPtr(-0.5)},
			},
			expected: -0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MinDSCR(tt.rows))
		})
	}
}

func TestSummarize(t *testing.T) {
	rows := []ScheduleRow{
		{Year: 1, Interest: 10, Principal: 0, DebtService: 10, DSCR: floatPtr(5), ReserveAlloc: 4, ReserveEnding: 4},
		{Year: 2, Interest: 10, Principal: 50, DebtService: 60, DSCR: floatPtr(1.5), ReserveAlloc: 2, ReserveEnding: 6},
		{Year: 3, Interest: 5, Principal: 50, DebtService: 55, DSCR: floatPtr(2.2), ReserveEnding: 6},
	}

	s := Summarize(rows, 2)

	assert.Equal(t, 25.0, s.TotalInterest)
	assert.Equal(t, 100.0, s.TotalPrincipal)
	assert.Equal(t, 125.0, s.TotalDebtService)
	assert.Equal(t, 6.0, s.TotalReserve)
	assert.Equal(t, 6.0, s.FinalReserve)
	assert.Equal(t, 1.5, s.MinDSCR)
	assert.Equal(t, []int{2}, s.YearsBelowFloor)
	assert.False(t, s.CoverageMet)

	s = Summarize(rows, 1.5)
	assert.Empty(t, s.YearsBelowFloor)
	assert.True(t, s.CoverageMet)
}

func TestSummarizeWithoutDebtService(t *testing.T) {
	s := Summarize([]ScheduleRow{{Year: 1}, {Year: 2}}, 2.5)

	assert.Equal(t, 0.0, s.MinDSCR)
	assert.False(t, s.CoverageMet, "the zero sentinel is not a coverage figure")
}
