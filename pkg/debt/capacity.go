package debt

import (
	"math"

	"github.com/iwvelando/debt-capacity/pkg/constants"
	"github.com/iwvelando/debt-capacity/pkg/mathutil"
	"github.com/iwvelando/debt-capacity/pkg/tvm"
)

// Binding names the rule that sets the allowed debt.
type Binding string

const (
	// BindingStatutory means the 75% revenue rule is the lower ceiling.
	BindingStatutory Binding = "statutory"
	// BindingCoverage means the DSCR floor is the lower ceiling.
	BindingCoverage Binding = "coverage"
)

// Capacity holds the derived debt ceilings for one set of parameters.
type Capacity struct {
	TotalRevenue float64 `json:"totalRevenue"`
	NetFinancing float64 `json:"netFinancing"`
	TotalOpex    float64 `json:"totalOpex"`
	NOI          float64 `json:"noi"`

	StatutoryCeiling float64 `json:"statutoryCeiling"`

	MaxAnnualDebtService float64 `json:"maxAnnualDebtService"`
	// CoveragePresentValue is a level annuity of MaxAnnualDebtService over
	// the amortizing years, discounted back through the grace period.
	CoveragePresentValue float64 `json:"coveragePresentValue"`
	// InterestOnlyCeiling is the principal whose interest alone equals
	// MaxAnnualDebtService. It is +Inf when the rate is zero.
	InterestOnlyCeiling float64 `json:"interestOnlyCeiling"`
	CoverageCeiling     float64 `json:"coverageCeiling"`

	AllowedDebt float64 `json:"allowedDebt"`
	Binding     Binding `json:"binding"`
}

// CalculateCapacity derives NOI, the statutory and coverage ceilings and the
// allowed debt. A zero MinDSCR is not guarded and yields an infinite or
// undefined capacity.
func CalculateCapacity(p Parameters) Capacity {
	var c Capacity

	c.TotalRevenue = p.TotalRevenue()
	c.NetFinancing = p.Financing.Net()
	c.TotalOpex = p.OperatingExpenses.Sum()
	c.NOI = nonNegative(c.TotalRevenue + c.NetFinancing - c.TotalOpex)

	c.StatutoryCeiling = constants.StatutoryDebtRatio * c.TotalRevenue
	c.MaxAnnualDebtService = c.NOI / p.MinDSCR

	if amortYears := p.AmortYears(); amortYears > 0 {
		pv := tvm.PresentValue(p.Rate, amortYears, c.MaxAnnualDebtService, 0, false)
		c.CoveragePresentValue = tvm.Discount(p.Rate, p.GraceYears, pv)
	}

	if p.Rate > 0 {
		c.InterestOnlyCeiling = c.MaxAnnualDebtService / p.Rate
	} else {
		c.InterestOnlyCeiling = math.Inf(1)
	}

	c.CoverageCeiling = math.Min(c.CoveragePresentValue, c.InterestOnlyCeiling)
	c.AllowedDebt = math.Max(0, math.Min(c.StatutoryCeiling, c.CoverageCeiling))

	if mathutil.WithinRelativeTolerance(c.AllowedDebt, c.StatutoryCeiling, constants.BindingTolerance) {
		c.Binding = BindingStatutory
	} else {
		c.Binding = BindingCoverage
	}

	return c
}
