package debt

import "math"

// Ceiling separates the calculated ceiling, the client override and the
// principal actually drawn.
type Ceiling struct {
	Calculated float64  `json:"calculated"`
	Override   *float64 `json:"override,omitempty"`
	Effective  float64  `json:"effective"`
	Requested  *float64 `json:"requested,omitempty"`
	Draw       float64  `json:"draw"`
}

// Overridden reports whether a client override replaced the calculated ceiling.
func (c Ceiling) Overridden() bool {
	return c.Override != nil
}

// Capped reports whether the requested draw exceeded the effective ceiling.
func (c Ceiling) Capped() bool {
	return c.Requested != nil && *c.Requested > c.Effective
}

// ResolveCeiling picks the effective ceiling and the principal to amortize.
// Without a requested draw the whole effective ceiling is drawn.
func ResolveCeiling(capacity Capacity, p Parameters) Ceiling {
	ceiling := Ceiling{
		Calculated: capacity.AllowedDebt,
		Effective:  capacity.AllowedDebt,
	}

	if p.AllowedDebtOverride != nil {
		override := *p.AllowedDebtOverride
		ceiling.Override = &override
		ceiling.Effective = nonNegative(override)
	}

	ceiling.Draw = ceiling.Effective
	if p.RequestedDraw != nil {
		requested := *p.RequestedDraw
		ceiling.Requested = &requested
		ceiling.Draw = nonNegative(math.Min(requested, ceiling.Effective))
	}

	return ceiling
}
