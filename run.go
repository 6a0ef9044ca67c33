/*
Copyright © 2026 the ADM authors.
This file is part of ADM.

ADM is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

ADM is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with ADM.  If not, see <http://www.gnu.org/licenses/>.
*/

package adm

import (
	"fmt"
	"math"
	"time"

	"github.com/GaryBoone/GoStats/stats"
	"github.com/sirupsen/logrus"
)

// steadyStateHRTs is how many hydraulic retention times SteadyState
// simulates when convergence is not reached earlier.
const steadyStateHRTs = 5

// SimulationConfig is everything one run needs. Parameter sets are value
// types and the config is copied on entry, so concurrent runs built from
// the same template never share mutable state.
type SimulationConfig struct {
	Reactor ReactorConfig

	// Influent is the 24-component inflow concentration vector; build it
	// with Influent.Fractionate when only bulk measurements are known.
	Influent State

	InitialState State
	InitialGas   GasPhase

	Kinetics   KineticParams
	Stoich     StoichParams
	PhysChem   PhysChemParams
	TempCoeffs TempCoeffs

	Duration       float64 `desc:"Simulated time" units:"d"`
	Dt             float64 `desc:"Integration step" units:"d"`
	OutputInterval float64 `desc:"Sampling interval" units:"d"`

	// Integrator defaults to forward Euler; RungeKutta4 trades three
	// extra derivative evaluations per step for fourth-order accuracy.
	Integrator Integrator
	// Solver defaults to NewPHSolver().
	Solver *PHSolver

	// ConvergenceTolerance, if positive, stops the run early once the
	// relative change of total COD between consecutive samples falls
	// below it (checked only after the first retention time has passed).
	ConvergenceTolerance float64

	// MaxSteps, if positive, bounds the number of integration steps; a
	// run cut short this way still returns valid partial results.
	MaxSteps int

	// Logger, if non-nil, receives progress lines during the run.
	Logger *logrus.Logger
}

// NewSimulationConfig returns a config for the given reactor and influent
// with the default parameter sets, a 1e-3 d time step, and daily sampling
// over 50 days.
func NewSimulationConfig(reactor ReactorConfig, influent State) SimulationConfig {
	return SimulationConfig{
		Reactor:        reactor,
		Influent:       influent,
		Kinetics:       DefaultKineticParams(),
		Stoich:         DefaultStoichParams(),
		PhysChem:       DefaultPhysChemParams(),
		TempCoeffs:     DefaultTempCoeffs(),
		Duration:       50,
		Dt:             1e-3,
		OutputInterval: 1,
	}
}

// Validate reports the first invalid configuration value. It is called by
// Run before any stepping begins.
func (c *SimulationConfig) Validate() error {
	if err := c.Reactor.Validate(); err != nil {
		return err
	}
	switch {
	case !(c.Duration > 0):
		return fmt.Errorf("adm: duration must be positive, got %g d", c.Duration)
	case !(c.Dt > 0):
		return fmt.Errorf("adm: time step must be positive, got %g d", c.Dt)
	case c.Dt > c.Duration:
		return fmt.Errorf("adm: time step %g d exceeds duration %g d", c.Dt, c.Duration)
	case c.OutputInterval < 0:
		return fmt.Errorf("adm: output interval must not be negative, got %g d", c.OutputInterval)
	}
	return c.Stoich.Validate()
}

// Run simulates the reactor over the configured duration and returns the
// sampled time series, the final state, and the aggregated metrics. The
// only error path is an invalid configuration; numerical anomalies during
// the run are recovered locally and surface in the result diagnostics.
func Run(cfg SimulationConfig) (*Results, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Integrator == nil {
		cfg.Integrator = ForwardEuler{}
	}
	if cfg.Solver == nil {
		cfg.Solver = NewPHSolver()
	}

	kp, err := CorrectKinetics(cfg.Kinetics, cfg.TempCoeffs, cfg.Reactor.Temperature)
	if err != nil {
		return nil, err
	}
	pc, err := CorrectPhysChem(cfg.PhysChem, cfg.TempCoeffs, cfg.Reactor.Temperature)
	if err != nil {
		return nil, err
	}
	petersen, err := PetersenMatrix(cfg.Stoich)
	if err != nil {
		return nil, err
	}

	nSteps := int(math.Round(cfg.Duration / cfg.Dt))
	if nSteps < 1 {
		nSteps = 1
	}
	sampleEvery := 1
	if cfg.OutputInterval > 0 {
		if se := int(math.Round(cfg.OutputInterval / cfg.Dt)); se > 1 {
			sampleEvery = se
		}
	}

	state := StateFromArray(cfg.InitialState.ToArray()) // clamps the initial condition
	gas := cfg.InitialGas
	inflow := cfg.Influent
	hrt := cfg.Reactor.HRT()

	r := &Results{}
	r.Stats.Integrator = cfg.Integrator.Name()

	rhsEvals := 0
	// rhs is the pure right-hand side handed to the integrator. The
	// headspace is frozen within a step, so the derivative depends on
	// the liquid state alone.
	rhs := func(y []float64) []float64 {
		rhsEvals++
		st := StateFromArray(y)
		eq := cfg.Solver.Solve(&st, pc)
		sNH3 := FreeAmmonia(st.SIN, eq.HIon, pc.KaNH4)
		rates, _ := ProcessRates(&st, kp, eq.PH, sNH3)
		tr := GasTransfer(&st, gas, pc, eq.HIon, cfg.Reactor.Temperature)
		return Derivatives(&st, &inflow, rates, tr, petersen, cfg.Reactor)
	}

	var stepStats stats.Stats
	start := time.Now()
	lastSampledCOD := math.NaN()
	logEvery := nSteps / 10
	if logEvery == 0 {
		logEvery = 1
	}

	for n := 0; n < nSteps; n++ {
		t := float64(n) * cfg.Dt
		stepStart := time.Now()

		eq := cfg.Solver.Solve(&state, pc)
		if !eq.Converged {
			r.Diagnostics.PHSolverFailures++
		}
		sNH3 := FreeAmmonia(state.SIN, eq.HIon, pc.KaNH4)
		rates, inh := ProcessRates(&state, kp, eq.PH, sNH3)
		tr := GasTransfer(&state, gas, pc, eq.HIon, cfg.Reactor.Temperature)
		biogas := BiogasProduction(tr, cfg.Reactor)

		if n%sampleEvery == 0 {
			r.TimeSeries = append(r.TimeSeries, Record{
				Time:       t,
				State:      state,
				Gas:        gas,
				PH:         eq.PH,
				Alkalinity: Alkalinity(&state, eq.PH, pc),
				TotalVFA:   state.TotalVFA(),
				Biogas:     biogas,
				Rates:      rates,
				Inhibition: inh,
			})
			if cfg.ConvergenceTolerance > 0 && t >= hrt {
				cod := state.TotalCOD()
				if !math.IsNaN(lastSampledCOD) &&
					!relativeChangeExceeds(cod, lastSampledCOD, cfg.ConvergenceTolerance) {
					r.Stats.Converged = true
				}
				lastSampledCOD = cod
			}
		}
		if cfg.Logger != nil && n%logEvery == 0 {
			cfg.Logger.WithFields(logrus.Fields{
				"step":    n,
				"day":     t,
				"pH":      eq.PH,
				"vfa":     state.TotalVFA(),
				"gasFlow": biogas.FlowStd,
			}).Info("simulating")
		}
		if r.Stats.Converged {
			break
		}

		y := cfg.Integrator.Step(rhs, state.ToArray(), cfg.Dt)
		state = StateFromArray(y) // non-negativity clamp, every step
		gas.Update(tr, cfg.Reactor, biogas.Flow, cfg.Dt)

		r.Stats.Steps++
		stepStats.Update(time.Since(stepStart).Seconds())

		if cfg.MaxSteps > 0 && r.Stats.Steps >= cfg.MaxSteps {
			r.Diagnostics.Warnings = append(r.Diagnostics.Warnings,
				fmt.Sprintf("step ceiling of %d reached at day %.3g; results are partial", cfg.MaxSteps, t))
			break
		}
	}

	// Final snapshot, so the series always ends on the final state.
	eq := cfg.Solver.Solve(&state, pc)
	sNH3 := FreeAmmonia(state.SIN, eq.HIon, pc.KaNH4)
	rates, inh := ProcessRates(&state, kp, eq.PH, sNH3)
	tr := GasTransfer(&state, gas, pc, eq.HIon, cfg.Reactor.Temperature)
	r.TimeSeries = append(r.TimeSeries, Record{
		Time:       float64(r.Stats.Steps) * cfg.Dt,
		State:      state,
		Gas:        gas,
		PH:         eq.PH,
		Alkalinity: Alkalinity(&state, eq.PH, pc),
		TotalVFA:   state.TotalVFA(),
		Biogas:     BiogasProduction(tr, cfg.Reactor),
		Rates:      rates,
		Inhibition: inh,
	})

	r.FinalState = state
	r.FinalGas = gas
	r.Stats.RHSEvaluations = rhsEvals
	r.Stats.Walltime = time.Since(start)
	if stepStats.Count() > 0 {
		r.Stats.StepWalltimeMean = secondsToDuration(stepStats.Mean())
		r.Stats.StepWalltimeMax = secondsToDuration(stepStats.Max())
	}

	r.summarize(&cfg, pc)

	if cfg.Logger != nil {
		cfg.Logger.WithFields(logrus.Fields{
			"steps":     r.Stats.Steps,
			"walltime":  r.Stats.Walltime,
			"converged": r.Stats.Converged,
		}).Info("simulation finished")
	}
	return r, nil
}

// SteadyState runs the reactor for five hydraulic retention times, stopping
// earlier once the total COD stops changing between samples, and returns
// only the final liquid and gas state. It trades time-series fidelity for
// speed when only the operating point matters.
func SteadyState(cfg SimulationConfig) (State, GasPhase, error) {
	if err := cfg.Reactor.Validate(); err != nil {
		return State{}, GasPhase{}, err
	}
	cfg.Duration = steadyStateHRTs * cfg.Reactor.HRT()
	if cfg.ConvergenceTolerance <= 0 {
		cfg.ConvergenceTolerance = 0.005
	}
	if cfg.OutputInterval <= 0 {
		cfg.OutputInterval = cfg.Reactor.HRT() / 10
	}
	r, err := Run(cfg)
	if err != nil {
		return State{}, GasPhase{}, err
	}
	return r.FinalState, r.FinalGas, nil
}

// relativeChangeExceeds reports whether a and b differ by more than tol
// relative to b. A zero baseline only passes when the new value is zero
// too.
func relativeChangeExceeds(a, b, tol float64) bool {
	if b == 0 {
		return a != 0
	}
	return math.Abs(a-b)/math.Abs(b) > tol
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
