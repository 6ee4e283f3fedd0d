package debt

import (
	"github.com/iwvelando/debt-capacity/pkg/mathutil"
	"github.com/iwvelando/debt-capacity/pkg/tvm"
)

// ScheduleRow holds the figures for one year of the schedule.
type ScheduleRow struct {
	Year             int      `json:"year"`
	BeginBalance     float64  `json:"beginBalance"`
	Interest         float64  `json:"interest"`
	Principal        float64  `json:"principal"`
	DebtService      float64  `json:"debtService"`
	Revenue          float64  `json:"revenue"`
	Opex             float64  `json:"opex"`
	AvailableForDS   float64  `json:"availableForDS"`
	DSCR             *float64 `json:"dscr"`
	ReserveTarget    float64  `json:"reserveTarget"`
	ReserveAlloc     float64  `json:"reserveAlloc"`
	ReserveBeginning float64  `json:"reserveBeginning"`
	ReserveEnding    float64  `json:"reserveEnding"`
	Surplus          float64  `json:"surplus"`
}

// amortizer holds the loan-level figures shared by every year.
type amortizer struct {
	p            Parameters
	principal    float64
	amortYears   int
	levelPayment float64
}

func newAmortizer(p Parameters, principal float64) amortizer {
	a := amortizer{
		p:          p,
		principal:  principal,
		amortYears: p.AmortYears(),
	}
	a.levelPayment = tvm.Payment(p.Rate, a.amortYears, principal, 0, false)
	return a
}

// service returns the interest and principal due in year given the balance
// at the start of that year. Principal never exceeds the balance.
func (a amortizer) service(year int, begin float64) (interest, principal float64) {
	if a.p.DebtType == Bond {
		interest = a.principal * a.p.Rate
	} else {
		interest = begin * a.p.Rate
	}

	if year <= a.p.GraceYears {
		return interest, 0
	}

	switch {
	case a.p.DebtType == Bond:
		principal = a.principal / float64(a.p.TermYears)
	case a.p.PaymentType == EqualPrincipal:
		if a.amortYears > 0 {
			principal = a.principal / float64(a.amortYears)
		}
	default:
		principal = a.levelPayment - interest
	}

	return interest, mathutil.Clamp(principal, 0, begin)
}

// BuildSchedule produces one row per year for a loan of principal. Reserves
// for a year are funded in the year before it falls due.
func BuildSchedule(p Parameters, principal float64) []ScheduleRow {
	if p.TermYears <= 0 {
		return nil
	}

	a := newAmortizer(p, principal)
	rows := make([]ScheduleRow, 0, p.TermYears)

	begin := principal
	revenue := p.TotalRevenue() + p.Financing.Net()
	opex := p.OperatingExpenses.Sum()
	reserve := p.InitReserve

	for year := 1; year <= p.TermYears; year++ {
		interest, paid := a.service(year, begin)
		debtService := interest + paid

		var target float64
		if year < p.TermYears {
			nextInterest, nextPaid := a.service(year+1, nonNegative(begin-paid))
			target = nextInterest + nextPaid
		}

		alloc := nonNegative(nonNegative(target-reserve) * p.ReserveRatio)
		available := revenue - opex

		row := ScheduleRow{
			Year:             year,
			BeginBalance:     begin,
			Interest:         interest,
			Principal:        paid,
			DebtService:      debtService,
			Revenue:          revenue,
			Opex:             opex,
			AvailableForDS:   available,
			ReserveTarget:    target,
			ReserveAlloc:     alloc,
			ReserveBeginning: reserve,
			ReserveEnding:    reserve + alloc,
			Surplus:          available - debtService - alloc,
		}
		if debtService > 0 {
			dscr := available / debtService
			row.DSCR = &dscr
		}
		rows = append(rows, row)

		begin = nonNegative(begin - paid)
		revenue *= 1 + p.RevGrowth
		opex *= 1 + p.OpexGrowth
		reserve = row.ReserveEnding
	}

	return rows
}
