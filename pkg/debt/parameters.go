// Package debt computes a municipality's debt capacity and builds the
// resulting amortization and reserve schedule.
//
// Every function in this package is a pure function of its inputs. Nothing
// is validated here: callers normalize and check their input at the
// boundary (see internal/config and pkg/validation).
package debt

import (
	"fmt"
	"strings"
)

// PaymentType selects how principal is amortized after the grace period.
type PaymentType string

const (
	// Annuity keeps the total payment level across the amortizing years.
	Annuity PaymentType = "annuity"
	// EqualPrincipal repays the same principal every amortizing year.
	EqualPrincipal PaymentType = "equal_principal"
)

// DebtType selects the interest basis.
type DebtType string

const (
	// Bond charges interest on the original principal every year.
	Bond DebtType = "bond"
	// OutstandingBalance charges interest on the declining balance.
	OutstandingBalance DebtType = "outstanding_balance"
)

// Component is one named revenue, financing or expense figure.
type Component struct {
	Name   string  `json:"name" yaml:"name"`
	Amount float64 `json:"amount" yaml:"amount"`
}

// Financing holds financing receipts and expenditures.
type Financing struct {
	Receipts     []Component `json:"receipts,omitempty" yaml:"receipts,omitempty"`
	Expenditures []Component `json:"expenditures,omitempty" yaml:"expenditures,omitempty"`
}

// OperatingExpenses is either a breakdown of components or a single total.
// Total wins when set.
type OperatingExpenses struct {
	Components []Component `json:"components,omitempty" yaml:"components,omitempty"`
	Total      *float64    `json:"total,omitempty" yaml:"total,omitempty"`
}

// Parameters is the input record of a single calculation.
type Parameters struct {
	Revenue           []Component       `json:"revenue"`
	Financing         Financing         `json:"financing"`
	OperatingExpenses OperatingExpenses `json:"operatingExpenses"`

	RevGrowth  float64 `json:"revGrowth"`
	OpexGrowth float64 `json:"opexGrowth"`
	Rate       float64 `json:"rate"`

	TermYears  int `json:"termYears"`
	GraceYears int `json:"graceYears"`

	PaymentType PaymentType `json:"paymentType"`
	DebtType    DebtType    `json:"debtType"`

	ReserveRatio float64 `json:"reserveRatio"`
	MinDSCR      float64 `json:"minDSCR"`
	InitReserve  float64 `json:"initReserve"`

	// AllowedDebtOverride replaces the calculated ceiling when set.
	AllowedDebtOverride *float64 `json:"allowedDebtOverride,omitempty"`
	// RequestedDraw is the principal the client wants to draw. It is capped
	// to the effective ceiling.
	RequestedDraw *float64 `json:"requestedDraw,omitempty"`
}

// SumComponents adds the amounts of all components.
func SumComponents(components []Component) float64 {
	total := 0.0
	for _, c := range components {
		total += c.Amount
	}
	return total
}

// Net returns receipts minus expenditures.
func (f Financing) Net() float64 {
	return SumComponents(f.Receipts) - SumComponents(f.Expenditures)
}

// Sum returns the explicit total when present, else the sum of components.
func (o OperatingExpenses) Sum() float64 {
	if o.Total != nil {
		return *o.Total
	}
	return SumComponents(o.Components)
}

// TotalRevenue returns the sum of all revenue sources.
func (p Parameters) TotalRevenue() float64 {
	return SumComponents(p.Revenue)
}

// AmortYears returns the number of years in which principal is repaid.
func (p Parameters) AmortYears() int {
	if p.TermYears > p.GraceYears {
		return p.TermYears - p.GraceYears
	}
	return 0
}

// ParsePaymentType converts a configuration string into a PaymentType.
// Empty input defaults to Annuity.
func ParsePaymentType(value string) (PaymentType, error) {
	switch normalizeEnum(value) {
	case "", string(Annuity):
		return Annuity, nil
	case string(EqualPrincipal):
		return EqualPrincipal, nil
	default:
		return "", fmt.Errorf("unknown payment type %q, expected %s or %s", value, Annuity, EqualPrincipal)
	}
}

// ParseDebtType converts a configuration string into a DebtType.
// Empty input defaults to OutstandingBalance.
func ParseDebtType(value string) (DebtType, error) {
	switch normalizeEnum(value) {
	case "", string(OutstandingBalance):
		return OutstandingBalance, nil
	case string(Bond):
		return Bond, nil
	default:
		return "", fmt.Errorf("unknown debt type %q, expected %s or %s", value, Bond, OutstandingBalance)
	}
}

func normalizeEnum(value string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	return strings.NewReplacer("-", "_", " ", "_").Replace(v)
}

// nonNegative floors val at zero. NaN passes through unchanged.
func nonNegative(val float64) float64 {
	if val < 0 {
		return 0
	}
	return val
}
