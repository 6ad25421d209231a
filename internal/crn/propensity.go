package crn

import (
	"fmt"
	"math"
)

// Propensity is the rate law attached to a reaction. MassAction covers the
// standard case; Hill propensities carry their own parameters and species.
type Propensity interface {
	Kind() string
	Species() []*Species
	Validate() error
}

type MassAction struct {
	KForward float64
	KReverse float64
}

func (m MassAction) Kind() string        { return "massaction" }
func (m MassAction) Species() []*Species { return nil }

func (m MassAction) Validate() error {
	if err := checkRate("k_forward", m.KForward); err != nil {
		return err
	}
	if m.KReverse != 0 {
		return checkRate("k_reverse", m.KReverse)
	}
	return nil
}

func (m MassAction) IsReversible() bool { return m.KReverse > 0 }

// ProportionalHillPositive models rate = k*d*s^n/(K^n + s^n) where s is an
// activator and d scales the propensity (typically the dna).
type ProportionalHillPositive struct {
	K         float64
	Half      float64
	N         float64
	Regulator *Species
	Scaled    *Species
}

func (p ProportionalHillPositive) Kind() string { return "proportionalhillpositive" }

func (p ProportionalHillPositive) Species() []*Species {
	return []*Species{p.Regulator, p.Scaled}
}

func (p ProportionalHillPositive) Validate() error {
	return validateHill(p.K, p.Half, p.N, p.Regulator, p.Scaled)
}

// ProportionalHillNegative models rate = k*d/(1 + (s/K)^n) where s is a
// repressor.
type ProportionalHillNegative struct {
	K         float64
	Half      float64
	N         float64
	Regulator *Species
	Scaled    *Species
}

func (p ProportionalHillNegative) Kind() string { return "proportionalhillnegative" }

func (p ProportionalHillNegative) Species() []*Species {
	return []*Species{p.Regulator, p.Scaled}
}

func (p ProportionalHillNegative) Validate() error {
	return validateHill(p.K, p.Half, p.N, p.Regulator, p.Scaled)
}

func validateHill(k, half, n float64, regulator, scaled *Species) error {
	if err := checkRate("k", k); err != nil {
		return err
	}
	if err := checkRate("K", half); err != nil {
		return err
	}
	if err := checkRate("n", n); err != nil {
		return err
	}
	if regulator == nil {
		return fmt.Errorf("hill propensity requires a regulator species")
	}
	if scaled == nil {
		return fmt.Errorf("hill propensity requires a scaled species")
	}
	return nil
}

func checkRate(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s must be finite, got %f", name, v)
	}
	if v <= 0 {
		return fmt.Errorf("%s must be positive, got %f", name, v)
	}
	return nil
}
