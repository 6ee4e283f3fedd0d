package analysis

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/debt-capacity/internal/config"
	"github.com/iwvelando/debt-capacity/pkg/debt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func loadTestConfig(t *testing.T) *config.Configuration {
	t.Helper()
	conf, err := config.LoadConfiguration(filepath.Join("..", "..", "test", "test_config.yaml"))
	require.NoError(t, err)
	return conf
}

func TestRun(t *testing.T) {
	conf := loadTestConfig(t)

	results, err := Run(zap.NewNop(), *conf)
	require.NoError(t, err)
	require.Len(t, results, 2, "inactive scenario skipped")
	assert.Nil(t, FindResult(results, "inactive"))

	annuity := FindResult(results, "annuity")
	require.NotNil(t, annuity)
	assert.Equal(t, debt.BindingCoverage, annuity.Capacity.Binding)
	assert.InDelta(t, 394_145_000_000, annuity.Capacity.AllowedDebt, 50_000_000)
	assert.Equal(t, annuity.Capacity.AllowedDebt, annuity.Ceiling.Draw)
	require.Len(t, annuity.Schedule, 10)
	assert.True(t, annuity.HasCoverage())
	assert.GreaterOrEqual(t, annuity.MinDSCR, 2.5)
	assert.True(t, annuity.Summary.CoverageMet)
	assert.Empty(t, annuity.Warnings)

	bond := FindResult(results, "bond")
	require.NotNil(t, bond)
	assert.Equal(t, debt.Bond, bond.Parameters.DebtType)
	assert.True(t, bond.Ceiling.Capped())
	assert.Equal(t, bond.Ceiling.Effective, bond.Ceiling.Draw)
	for _, row := range bond.Schedule {
		assert.InDelta(t, bond.Ceiling.Draw*0.08, row.Interest, 1e-3)
	}
	require.Len(t, bond.Warnings, 1)
	assert.Contains(t, bond.Warnings[0], "capped")
}

func TestRunNilLogger(t *testing.T) {
	conf := loadTestConfig(t)

	results, err := Run(nil, *conf)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestRunInvalidScenario(t *testing.T) {
	paymentType := "balloon"
	conf := config.Configuration{
		Common: config.Parameters{TermYears: 5},
		Scenarios: []config.Scenario{
			{Name: "broken", Active: true, Overrides: config.Overrides{PaymentType: &paymentType}},
		},
	}

	_, err := Run(zap.NewNop(), conf)
	assert.Error(t, err)
}

func TestEvaluateCoverageShortfall(t *testing.T) {
	override := 2_000.0
	p := debt.Parameters{
		Revenue:             []debt.Component{{Name: "taxes", Amount: 1_000}},
		OperatingExpenses:   debt.OperatingExpenses{Total: func() *float64 { v := 800.0; return &v }()},
		Rate:                0.05,
		TermYears:           5,
		MinDSCR:             2,
		AllowedDebtOverride: &override,
	}

	result := Evaluate(nil, "stretched", p)

	assert.Equal(t, 2_000.0, result.Ceiling.Draw)
	assert.True(t, result.HasCoverage())
	assert.False(t, result.Summary.CoverageMet)
	assert.NotEmpty(t, result.Summary.YearsBelowFloor)

	var sawOverride, sawShortfall bool
	for _, w := range result.Warnings {
		sawOverride = sawOverride || strings.Contains(w, "exceeds the calculated ceiling")
		sawShortfall = sawShortfall || strings.Contains(w, "falls below the required")
	}
	assert.True(t, sawOverride)
	assert.True(t, sawShortfall)
}

func TestEvaluateWithoutDebt(t *testing.T) {
	p := debt.Parameters{
		Revenue: []debt.Component{{Name: "taxes", Amount: 100}},
		OperatingExpenses: debt.OperatingExpenses{
			Components: []debt.Component{{Name: "operations", Amount: 200}},
		},
		Rate:      0.05,
		TermYears: 5,
		MinDSCR:   2,
	}

	result := Evaluate(zap.NewNop(), "deficit", p)

	assert.Equal(t, 0.0, result.Capacity.AllowedDebt)
	assert.Equal(t, 0.0, result.MinDSCR)
	assert.False(t, result.HasCoverage())
	assert.Len(t, result.Schedule, 5)
	for _, row := range result.Schedule {
		assert.Nil(t, row.DSCR)
	}
}

func TestFindResult(t *testing.T) {
	results := []Result{{Name: "a"}, {Name: "b"}}

	found := FindResult(results, "b")
	require.NotNil(t, found)
	assert.Equal(t, "b", found.Name)

	found.MinDSCR = 3
	assert.Equal(t, 3.0, results[1].MinDSCR, "returns a pointer into the slice")

	assert.Nil(t, FindResult(results, "missing"))
}
