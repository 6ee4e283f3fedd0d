package config

import "github.com/iwvelando/debt-capacity/pkg/debt"

// Overrides holds the scenario-specific values. Unset fields keep the
// common value.
type Overrides struct {
	Revenue           []debt.Component
	Financing         *debt.Financing
	OperatingExpenses *debt.OperatingExpenses
	OpexTotal         *float64

	RevGrowth  *float64
	OpexGrowth *float64
	Rate       *float64

	TermYears  *int
	GraceYears *int

	PaymentType *string
	DebtType    *string

	ReserveRatio *float64
	MinDSCR      *float64
	InitReserve  *float64

	AllowedDebtOverride *float64
	FinalDebtTaken      *float64
}

// Apply returns a copy of common with the overrides applied.
func (o Overrides) Apply(common Parameters) Parameters {
	p := common

	if len(o.Revenue) > 0 {
		p.Revenue = append([]debt.Component(nil), o.Revenue...)
	}
	if o.Financing != nil {
		p.Financing = copyFinancing(*o.Financing)
	}
	if o.OperatingExpenses != nil {
		p.OperatingExpenses = copyOpex(*o.OperatingExpenses)
	}
	// opexTotal wins over any total in the operatingExpenses override.
	if o.OpexTotal != nil {
		p.OperatingExpenses = debt.OperatingExpenses{
			Components: p.OperatingExpenses.Components,
			Total:      copyFloat(o.OpexTotal),
		}
	}

	setFloat(&p.RevGrowth, o.RevGrowth)
	setFloat(&p.OpexGrowth, o.OpexGrowth)
	setFloat(&p.Rate, o.Rate)
	setFloat(&p.ReserveRatio, o.ReserveRatio)
	setFloat(&p.MinDSCR, o.MinDSCR)
	setFloat(&p.InitReserve, o.InitReserve)

	if o.TermYears != nil {
		p.TermYears = *o.TermYears
	}
	if o.GraceYears != nil {
		p.GraceYears = *o.GraceYears
	}
	if o.PaymentType != nil {
		p.PaymentType = *o.PaymentType
	}
	if o.DebtType != nil {
		p.DebtType = *o.DebtType
	}
	if o.AllowedDebtOverride != nil {
		p.AllowedDebtOverride = copyFloat(o.AllowedDebtOverride)
	}
	if o.FinalDebtTaken != nil {
		p.FinalDebtTaken = copyFloat(o.FinalDebtTaken)
	}

	return p
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
