package cfd

import (
	"github.com/ghodss/yaml"

	"github.com/cfdlib/cfd-go/internal/bindings"
)

// Params holds the solver parameters threaded into a simulation run.
type Params struct {
	Dt        float64 `yaml:"Dt" json:"dt"`
	CFL       float64 `yaml:"CFL" json:"cfl"`
	Gamma     float64 `yaml:"Gamma" json:"gamma"`
	Mu        float64 `yaml:"Mu" json:"mu"`
	K         float64 `yaml:"K" json:"k"`
	MaxIter   int     `yaml:"MaxIterations" json:"max_iter"`
	Tolerance float64 `yaml:"Tolerance" json:"tolerance"`
}

// DefaultParams returns the engine's default solver parameters.
func (l *Library) DefaultParams() (Params, error) {
	const op = "DefaultParams"
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.ensure(op); err != nil {
		return Params{}, err
	}
	p := bindings.DefaultParams()
	return Params{
		Dt:        p.Dt,
		CFL:       p.CFL,
		Gamma:     p.Gamma,
		Mu:        p.Mu,
		K:         p.K,
		MaxIter:   p.MaxIter,
		Tolerance: p.Tolerance,
	}, nil
}

// ParseParams reads Params from YAML input. Fields absent from the document
// keep their zero values; call DefaultParams first and parse over it to
// override selectively.
func (p *Params) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, p); err != nil {
		return invalidf("ParseParams", "invalid parameter YAML: %v", err)
	}
	return p.Validate()
}

// Validate checks range invariants on the parameter set.
func (p *Params) Validate() error {
	const op = "ValidateParams"
	if p.Dt < 0 {
		return invalidf(op, "dt must not be negative, got %g", p.Dt)
	}
	if p.CFL < 0 || p.CFL > 1 {
		return invalidf(op, "cfl must be in [0,1], got %g", p.CFL)
	}
	if p.MaxIter < 0 {
		return invalidf(op, "max_iter must not be negative, got %d", p.MaxIter)
	}
	if p.Tolerance < 0 {
		return invalidf(op, "tolerance must not be negative, got %g", p.Tolerance)
	}
	return nil
}
