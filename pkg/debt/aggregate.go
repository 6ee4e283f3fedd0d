package debt

// MinDSCR returns the lowest DSCR across years with positive debt service.
// It returns 0 when no year qualifies, so callers check for a positive
// result before treating it as a coverage figure.
func MinDSCR(rows []ScheduleRow) float64 {
	minD := 0.0
	found := false
	for _, row := range rows {
		if row.DebtService <= 0 || row.DSCR == nil {
			continue
		}
		if !found || *row.DSCR < minD {
			minD = *row.DSCR
			found = true
		}
	}
	return minD
}

// Summary aggregates a schedule.
type Summary struct {
	TotalInterest    float64 `json:"totalInterest"`
	TotalPrincipal   float64 `json:"totalPrincipal"`
	TotalDebtService float64 `json:"totalDebtService"`
	TotalReserve     float64 `json:"totalReserveAllocated"`
	FinalReserve     float64 `json:"finalReserve"`
	MinDSCR          float64 `json:"minDSCR"`
	// YearsBelowFloor lists years whose DSCR is under the required floor.
	YearsBelowFloor []int `json:"yearsBelowFloor,omitempty"`
	CoverageMet     bool  `json:"coverageMet"`
}

// Summarize totals the schedule and checks it against floor.
func Summarize(rows []ScheduleRow, floor float64) Summary {
	var s Summary
	for _, row := range rows {
		s.TotalInterest += row.Interest
		s.TotalPrincipal += row.Principal
		s.TotalDebtService += row.DebtService
		s.TotalReserve += row.ReserveAlloc
		s.FinalReserve = row.ReserveEnding
		if row.DSCR != nil && *row.DSCR < floor {
			s.YearsBelowFloor = append(s.YearsBelowFloor, row.Year)
		}
	}
	s.MinDSCR = MinDSCR(rows)
	s.CoverageMet = s.MinDSCR > 0 && s.MinDSCR >= floor
	return s
}
