// Package config defines the data structures related to configuration and
// includes functions for loading the config and turning it into engine
// parameters.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/debt-capacity/pkg/constants"
	"github.com/iwvelando/debt-capacity/pkg/debt"
	"github.com/iwvelando/debt-capacity/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for debt-capacity.
type Configuration struct {
	Common    Parameters
	Scenarios []Scenario
	Logging   LoggingConfig `yaml:"logging,omitempty"`
	Output    OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// Parameters holds the municipality's figures and the loan terms as they
// appear in the configuration file.
type Parameters struct {
	Revenue           []debt.Component
	Financing         debt.Financing
	OperatingExpenses debt.OperatingExpenses

	RevGrowth  float64
	OpexGrowth float64
	Rate       float64

	TermYears  int
	GraceYears int

	PaymentType string // annuity, equal_principal
	DebtType    string // bond, outstanding_balance

	ReserveRatio float64
	MinDSCR      float64
	InitReserve  float64

	AllowedDebtOverride *float64
	FinalDebtTaken      *float64
}

// Scenario applies overrides to the common parameters.
type Scenario struct {
	Name      string
	Active    bool
	Overrides Overrides
}

// NamedParameters pairs engine parameters with the scenario they came from.
type NamedParameters struct {
	Name       string
	Parameters debt.Parameters
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &configuration, nil
}

// ToParameters converts configuration parameters into engine parameters.
// Enumerations are parsed here so the engine never sees raw strings.
func (p Parameters) ToParameters() (debt.Parameters, error) {
	paymentType, err := debt.ParsePaymentType(p.PaymentType)
	if err != nil {
		return debt.Parameters{}, err
	}
	debtType, err := debt.ParseDebtType(p.DebtType)
	if err != nil {
		return debt.Parameters{}, err
	}

	return debt.Parameters{
		Revenue:             append([]debt.Component(nil), p.Revenue...),
		Financing:           copyFinancing(p.Financing),
		OperatingExpenses:   copyOpex(p.OperatingExpenses),
		RevGrowth:           p.RevGrowth,
		OpexGrowth:          p.OpexGrowth,
		Rate:                p.Rate,
		TermYears:           p.TermYears,
		GraceYears:          p.GraceYears,
		PaymentType:         paymentType,
		DebtType:            debtType,
		ReserveRatio:        p.ReserveRatio,
		MinDSCR:             p.MinDSCR,
		InitReserve:         p.InitReserve,
		AllowedDebtOverride: copyFloat(p.AllowedDebtOverride),
		RequestedDraw:       copyFloat(p.FinalDebtTaken),
	}, nil
}

// ScenarioParameters returns engine parameters for every active scenario.
// A configuration without scenarios runs the common parameters alone.
func (conf *Configuration) ScenarioParameters() ([]NamedParameters, error) {
	if len(conf.Scenarios) == 0 {
		params, err := conf.Common.ToParameters()
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", constants.BaselineScenarioName, err)
		}
		return []NamedParameters{{Name: constants.BaselineScenarioName, Parameters: params}}, nil
	}

	var result []NamedParameters
	for _, scenario := range conf.Scenarios {
		if !scenario.Active {
			continue
		}
		params, err := scenario.Overrides.Apply(conf.Common).ToParameters()
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
		}
		result = append(result, NamedParameters{Name: scenario.Name, Parameters: params})
	}
	return result, nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Scenarios whose enumerations do not parse are reported
// as warnings here and fail later in ScenarioParameters.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if len(conf.Scenarios) > 0 {
		active := 0
		for _, scenario := range conf.Scenarios {
			if scenario.Active {
				active++
			}
			if strings.TrimSpace(scenario.Name) == "" {
				warnings = append(warnings, "Scenario with empty name")
			}
		}
		if active == 0 {
			warnings = append(warnings, "No active scenarios; nothing will be computed")
		}
	}

	named, err := conf.ScenarioParameters()
	if err != nil {
		return append(warnings, err.Error())
	}
	for _, n := range named {
		warnings = append(warnings, validation.ParameterWarnings(n.Name, n.Parameters)...)
	}
	return warnings
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyFinancing(f debt.Financing) debt.Financing {
	return debt.Financing{
		Receipts:     append([]debt.Component(nil), f.Receipts...),
		Expenditures: append([]debt.Component(nil), f.Expenditures...),
	}
}

func copyOpex(o debt.OperatingExpenses) debt.OperatingExpenses {
	return debt.OperatingExpenses{
		Components: append([]debt.Component(nil), o.Components...),
		Total:      copyFloat(o.Total),
	}
}
