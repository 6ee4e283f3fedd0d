// Package output provides utilities for formatting and displaying analysis results.
package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/iwvelando/debt-capacity/internal/analysis"
	"github.com/iwvelando/debt-capacity/pkg/debt"
	"github.com/iwvelando/debt-capacity/pkg/format"
	"github.com/iwvelando/debt-capacity/pkg/mathutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, results []analysis.Result) error {
	p := message.NewPrinter(language.English)
	for i, result := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := writeSummary(w, p, result); err != nil {
			return err
		}
		if err := writeTable(w, result.Schedule); err != nil {
			return err
		}
	}
	return nil
}

type summaryLine struct {
	format string
	args   []interface{}
}

func writeSummary(w io.Writer, p *message.Printer, result analysis.Result) error {
	c := result.Capacity
	ceiling := result.Ceiling

	lines := []summaryLine{
		{"--- Results for scenario %s ---\n", []interface{}{result.Name}},
		{"Net operating income:      %.0f\n", []interface{}{mathutil.Finite(c.NOI)}},
		{"Statutory ceiling:         %.0f\n", []interface{}{mathutil.Finite(c.StatutoryCeiling)}},
		{"Max annual debt service:   %.0f\n", []interface{}{mathutil.Finite(c.MaxAnnualDebtService)}},
		{"Coverage ceiling:          %.0f\n", []interface{}{mathutil.Finite(c.CoverageCeiling)}},
		{"Allowed debt:              %.0f (%s binding)\n", []interface{}{mathutil.Finite(c.AllowedDebt), string(c.Binding)}},
	}
	if ceiling.Overridden() {
		lines = append(lines, summaryLine{"Override ceiling:          %.0f\n", []interface{}{mathutil.Finite(ceiling.Effective)}})
	}
	lines = append(lines, summaryLine{"Principal drawn:           %.0f\n", []interface{}{mathutil.Finite(ceiling.Draw)}})

	for _, line := range lines {
		if _, err := p.Fprintf(w, line.format, line.args...); err != nil {
			return err
		}
	}

	minDSCR := "n/a"
	if result.HasCoverage() {
		minDSCR = format.Ratio(result.MinDSCR)
	}
	if _, err := fmt.Fprintf(w, "Interest rate:             %s over %d years (%d grace)\n",
		format.Percent(result.Parameters.Rate), result.Parameters.TermYears, result.Parameters.GraceYears); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Minimum DSCR:              %s (required %s)\n",
		minDSCR, format.Ratio(result.Parameters.MinDSCR)); err != nil {
		return err
	}

	for _, warning := range result.Warnings {
		if _, err := fmt.Fprintf(w, "Warning: %s\n", warning); err != nil {
			return err
		}
	}
	return nil
}

func writeTable(w io.Writer, rows []debt.ScheduleRow) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Year\tBegin\tInterest\tPrincipal\tDebt service\tAvailable\tDSCR\tReserve alloc\tReserve end\tSurplus\t")
	for _, row := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			row.Year,
			format.Amount(row.BeginBalance),
			format.Amount(row.Interest),
			format.Amount(row.Principal),
			format.Amount(row.DebtService),
			format.Amount(row.AvailableForDS),
			format.OptionalRatio(row.DSCR),
			format.Amount(row.ReserveAlloc),
			format.Amount(row.ReserveEnding),
			format.Amount(row.Surplus),
		)
	}
	return tw.Flush()
}
