// Package analysis runs the debt capacity engine for every active scenario
// of a configuration.
package analysis

import (
	"fmt"

	"github.com/iwvelando/debt-capacity/internal/config"
	"github.com/iwvelando/debt-capacity/pkg/debt"
	"github.com/iwvelando/debt-capacity/pkg/validation"
	"go.uber.org/zap"
)

// Result holds everything computed for a single scenario.
type Result struct {
	Name       string
	Parameters debt.Parameters
	Capacity   debt.Capacity
	Ceiling    debt.Ceiling
	Schedule   []debt.ScheduleRow
	// MinDSCR is 0 when no year carries debt service.
	MinDSCR  float64
	Summary  debt.Summary
	Warnings []string
}

// HasCoverage reports whether MinDSCR is a real coverage figure.
func (r Result) HasCoverage() bool {
	return r.MinDSCR > 0
}

// Run computes capacity, ceiling, schedule and summary for all active scenarios.
func Run(logger *zap.Logger, conf config.Configuration) ([]Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	named, err := conf.ScenarioParameters()
	if err != nil {
		logger.Error("failed to resolve scenario parameters",
			zap.String("op", "analysis.Run"),
			zap.Error(err),
		)
		return nil, err
	}

	results := make([]Result, 0, len(named))
	for _, n := range named {
		results = append(results, Evaluate(logger, n.Name, n.Parameters))
	}

	return results, nil
}

// Evaluate runs the engine for one set of parameters.
func Evaluate(logger *zap.Logger, name string, p debt.Parameters) Result {
	if logger == nil {
		logger = zap.NewNop()
	}

	capacity := debt.CalculateCapacity(p)
	ceiling := debt.ResolveCeiling(capacity, p)
	schedule := debt.BuildSchedule(p, ceiling.Draw)

	result := Result{
		Name:       name,
		Parameters: p,
		Capacity:   capacity,
		Ceiling:    ceiling,
		Schedule:   schedule,
		MinDSCR:    debt.MinDSCR(schedule),
		Summary:    debt.Summarize(schedule, p.MinDSCR),
	}
	result.Warnings = append(result.Warnings, validation.ParameterWarnings(name, p)...)
	result.Warnings = append(result.Warnings, validation.CeilingWarnings(name, ceiling)...)

	if result.HasCoverage() && !result.Summary.CoverageMet {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"Scenario '%s': minimum DSCR %.2f falls below the required %.2f in %d year(s)",
			name, result.MinDSCR, p.MinDSCR, len(result.Summary.YearsBelowFloor)))
	}

	logger.Debug(fmt.Sprintf("computed scenario %s", name),
		zap.String("op", "analysis.Evaluate"),
		zap.Float64("allowedDebt", capacity.AllowedDebt),
		zap.String("binding", string(capacity.Binding)),
		zap.Float64("draw", ceiling.Draw),
		zap.Float64("minDSCR", result.MinDSCR),
	)
	for _, w := range result.Warnings {
		logger.Warn(w, zap.String("op", "analysis.Evaluate"))
	}

	return result
}

// FindResult finds a scenario by name in the results slice.
// Returns a pointer to the result if found, nil otherwise.
func FindResult(results []Result, name string) *Result {
	for i := range results {
		if results[i].Name == name {
			return &results[i]
		}
	}
	return nil
}
