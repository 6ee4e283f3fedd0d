package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/iwvelando/debt-capacity/internal/analysis"
	"github.com/iwvelando/debt-capacity/pkg/debt"
	"github.com/iwvelando/debt-capacity/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// ScheduleHeader lists the schedule CSV columns in order.
var ScheduleHeader = []string{
	"year",
	"beginning balance",
	"interest",
	"principal",
	"debt service",
	"revenue",
	"operating expense",
	"funds available",
	"DSCR",
	"reserve target",
	"reserve allocation",
	"reserve beginning",
	"reserve ending",
	"surplus",
}

// WriteCSV writes the schedule as CSV, amounts rounded to whole units.
func WriteCSV(w io.Writer, rows []debt.ScheduleRow) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(ScheduleHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			strconv.Itoa(row.Year),
			wholeUnits(row.BeginBalance),
			wholeUnits(row.Interest),
			wholeUnits(row.Principal),
			wholeUnits(row.DebtService),
			wholeUnits(row.Revenue),
			wholeUnits(row.Opex),
			wholeUnits(row.AvailableForDS),
			ratio(row.DSCR),
			wholeUnits(row.ReserveTarget),
			wholeUnits(row.ReserveAlloc),
			wholeUnits(row.ReserveBeginning),
			wholeUnits(row.ReserveEnding),
			wholeUnits(row.Surplus),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row for year %d: %w", row.Year, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// CsvString returns the schedule CSV as a string.
func CsvString(rows []debt.ScheduleRow) (string, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, rows); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// CsvFormat writes every scenario's schedule, each preceded by a comment line.
func CsvFormat(w io.Writer, results []analysis.Result) error {
	for i, result := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "# %s\n", result.Name); err != nil {
			return err
		}
		if err := WriteCSV(w, result.Schedule); err != nil {
			return fmt.Errorf("scenario %s: %w", result.Name, err)
		}
	}
	return nil
}

func wholeUnits(val float64) string {
	return decimal.NewFromFloat(mathutil.Finite(val)).Round(0).String()
}

// ratio leaves the cell blank for years without debt service.
func ratio(val *float64) string {
	if val == nil {
		return ""
	}
	return strconv.FormatFloat(mathutil.Finite(*val), 'f', -1, 64)
}
