package server

import (
	"github.com/iwvelando/debt-capacity/internal/analysis"
	"github.com/iwvelando/debt-capacity/pkg/debt"
	"github.com/iwvelando/debt-capacity/pkg/mathutil"
	"github.com/iwvelando/debt-capacity/pkg/output"
)

// Figures are pointers so that non-finite values encode as null.

type analysisResponse struct {
	ID         string             `json:"id"`
	Scenarios  []scenarioResponse `json:"scenarios"`
	Warnings   []string           `json:"warnings,omitempty"`
	Duration   string             `json:"duration"`
	Cached     bool               `json:"cached"`
	ConfigYAML string             `json:"configYaml,omitempty"`
}

type scenarioResponse struct {
	Name     string       `json:"name"`
	Capacity capacityView `json:"capacity"`
	Ceiling  ceilingView  `json:"ceiling"`
	Rows     []rowView    `json:"rows"`
	MinDSCR  *float64     `json:"minDscr"`
	Summary  summaryView  `json:"summary"`
	CSV      string       `json:"csv"`
	Warnings []string     `json:"warnings,omitempty"`
}

type capacityView struct {
	TotalRevenue         *float64 `json:"totalRevenue"`
	NetFinancing         *float64 `json:"netFinancing"`
	TotalOpex            *float64 `json:"totalOpex"`
	NOI                  *float64 `json:"noi"`
	StatutoryCeiling     *float64 `json:"statutoryCeiling"`
	MaxAnnualDebtService *float64 `json:"maxAnnualDebtService"`
	CoveragePresentValue *float64 `json:"coveragePresentValue"`
	InterestOnlyCeiling  *float64 `json:"interestOnlyCeiling"`
	CoverageCeiling      *float64 `json:"coverageCeiling"`
	AllowedDebt          *float64 `json:"allowedDebt"`
	Binding              string   `json:"binding"`
}

type ceilingView struct {
	Calculated *float64 `json:"calculated"`
	Override   *float64 `json:"override,omitempty"`
	Effective  *float64 `json:"effective"`
	Requested  *float64 `json:"requested,omitempty"`
	Draw       *float64 `json:"draw"`
	Capped     bool     `json:"capped"`
}

type rowView struct {
	Year             int      `json:"year"`
	BeginBalance     *float64 `json:"beginBalance"`
	Interest         *float64 `json:"interest"`
	Principal        *float64 `json:"principal"`
	DebtService      *float64 `json:"debtService"`
	Revenue          *float64 `json:"revenue"`
	Opex             *float64 `json:"opex"`
	AvailableForDS   *float64 `json:"availableForDS"`
	DSCR             *float64 `json:"dscr"`
	ReserveTarget    *float64 `json:"reserveTarget"`
	ReserveAlloc     *float64 `json:"reserveAlloc"`
	ReserveBeginning *float64 `json:"reserveBeginning"`
	ReserveEnding    *float64 `json:"reserveEnding"`
	Surplus          *float64 `json:"surplus"`
}

type summaryView struct {
	TotalInterest    *float64 `json:"totalInterest"`
	TotalPrincipal   *float64 `json:"totalPrincipal"`
	TotalDebtService *float64 `json:"totalDebtService"`
	TotalReserve     *float64 `json:"totalReserveAllocated"`
	FinalReserve     *float64 `json:"finalReserve"`
	YearsBelowFloor  []int    `json:"yearsBelowFloor,omitempty"`
	CoverageMet      bool     `json:"coverageMet"`
}

func buildScenarios(results []analysis.Result) ([]scenarioResponse, error) {
	scenarios := make([]scenarioResponse, 0, len(results))
	for _, result := range results {
		csv, err := output.CsvString(result.Schedule)
		if err != nil {
			return nil, err
		}

		scenario := scenarioResponse{
			Name:     result.Name,
			Capacity: buildCapacity(result.Capacity),
			Ceiling:  buildCeiling(result.Ceiling),
			Rows:     buildRows(result.Schedule),
			Summary:  buildSummary(result.Summary),
			CSV:      csv,
			Warnings: result.Warnings,
		}
		if result.HasCoverage() {
			scenario.MinDSCR = number(result.MinDSCR)
		}
		scenarios = append(scenarios, scenario)
	}
	return scenarios, nil
}

func buildCapacity(c debt.Capacity) capacityView {
	return capacityView{
		TotalRevenue:         number(c.TotalRevenue),
		NetFinancing:         number(c.NetFinancing),
		TotalOpex:            number(c.TotalOpex),
		NOI:                  number(c.NOI),
		StatutoryCeiling:     number(c.StatutoryCeiling),
		MaxAnnualDebtService: number(c.MaxAnnualDebtService),
		CoveragePresentValue: number(c.CoveragePresentValue),
		InterestOnlyCeiling:  number(c.InterestOnlyCeiling),
		CoverageCeiling:      number(c.CoverageCeiling),
		AllowedDebt:          number(c.AllowedDebt),
		Binding:              string(c.Binding),
	}
}

func buildCeiling(c debt.Ceiling) ceilingView {
	view := ceilingView{
		Calculated: number(c.Calculated),
		Effective:  number(c.Effective),
		Draw:       number(c.Draw),
		Capped:     c.Capped(),
	}
	if c.Override != nil {
		view.Override = number(*c.Override)
	}
	if c.Requested != nil {
		view.Requested = number(*c.Requested)
	}
	return view
}

func buildRows(schedule []debt.ScheduleRow) []rowView {
	rows := make([]rowView, 0, len(schedule))
	for _, row := range schedule {
		view := rowView{
			Year:             row.Year,
			BeginBalance:     number(row.BeginBalance),
			Interest:         number(row.Interest),
			Principal:        number(row.Principal),
			DebtService:      number(row.DebtService),
			Revenue:          number(row.Revenue),
			Opex:             number(row.Opex),
			AvailableForDS:   number(row.AvailableForDS),
			ReserveTarget:    number(row.ReserveTarget),
			ReserveAlloc:     number(row.ReserveAlloc),
			ReserveBeginning: number(row.ReserveBeginning),
			ReserveEnding:    number(row.ReserveEnding),
			Surplus:          number(row.Surplus),
		}
		if row.DSCR != nil {
			view.DSCR = number(*row.DSCR)
		}
		rows = append(rows, view)
	}
	return rows
}

func buildSummary(s debt.Summary) summaryView {
	return summaryView{
		TotalInterest:    number(s.TotalInterest),
		TotalPrincipal:   number(s.TotalPrincipal),
		TotalDebtService: number(s.TotalDebtService),
		TotalReserve:     number(s.TotalReserve),
		FinalReserve:     number(s.FinalReserve),
		YearsBelowFloor:  s.YearsBelowFloor,
		CoverageMet:      s.CoverageMet,
	}
}

// number returns nil for NaN and infinities, which JSON cannot encode.
func number(v float64) *float64 {
	if !mathutil.IsFinite(v) {
		return nil
	}
	return &v
}
