// Package validation provides configuration and input validation utilities.
//
// The calculation engine computes over whatever it receives. The checks
// here run at the boundary and produce warnings for the user rather than
// errors.
package validation

import (
	"fmt"

	"github.com/iwvelando/debt-capacity/pkg/constants"
	"github.com/iwvelando/debt-capacity/pkg/debt"
	"github.com/iwvelando/debt-capacity/pkg/mathutil"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV:
		return nil
	default:
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
}

// ParameterWarnings flags degenerate parameters for scenario name.
func ParameterWarnings(name string, p debt.Parameters) []string {
	var warnings []string
	warn := func(format string, args ...interface{}) {
		warnings = append(warnings, fmt.Sprintf("Scenario '%s': ", name)+fmt.Sprintf(format, args...))
	}

	if p.TermYears <= 0 {
		warn("term of %d years produces an empty schedule", p.TermYears)
	} else if p.GraceYears >= p.TermYears {
		warn("grace period (%d years) covers the whole term (%d years); no principal is repaid",
			p.GraceYears, p.TermYears)
	}
	if p.GraceYears < 0 {
		warn("negative grace period (%d years)", p.GraceYears)
	}
	if p.MinDSCR <= 0 {
		warn("minimum DSCR of %.2f leaves debt capacity unbounded by coverage", p.MinDSCR)
	}
	if p.Rate < 0 {
		warn("negative interest rate %.4f", p.Rate)
	}
	if p.ReserveRatio < 0 || p.ReserveRatio > 1 {
		warn("reserve ratio %.2f is outside [0, 1]", p.ReserveRatio)
	}
	if p.InitReserve < 0 {
		warn("negative initial reserve %.2f", p.InitReserve)
	}
	if len(p.Revenue) == 0 {
		warn("no revenue sources configured")
	}

	return warnings
}

// CeilingWarnings flags a ceiling override that exceeds the calculated
// ceiling, a requested draw that had to be capped and a zero draw.
func CeilingWarnings(name string, c debt.Ceiling) []string {
	var warnings []string

	if c.Override != nil && *c.Override > c.Calculated {
		warnings = append(warnings, fmt.Sprintf(
			"Scenario '%s': allowed debt override %.0f exceeds the calculated ceiling %.0f",
			name, *c.Override, c.Calculated))
	}
	if c.Capped() {
		warnings = append(warnings, fmt.Sprintf(
			"Scenario '%s': requested draw %.0f capped to the effective ceiling %.0f",
			name, *c.Requested, c.Effective))
	}
	if mathutil.IsZero(c.Draw) {
		warnings = append(warnings, fmt.Sprintf(
			"Scenario '%s': no debt can be drawn", name))
	}

	return warnings
}
