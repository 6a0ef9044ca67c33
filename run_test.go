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
	"io"
	"math"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func primarySludgeConfig(t *testing.T) SimulationConfig {
	t.Helper()
	influent, err := primarySludge().Fractionate(DefaultFractionationCoeffs())
	require.NoError(t, err)

	cfg := NewSimulationConfig(testReactorConfig(), influent)
	cfg.InitialState = typicalDigesterState()
	return cfg
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	base := primarySludgeConfig(t)

	cases := map[string]func(*SimulationConfig){
		"zero liquid volume":       func(c *SimulationConfig) { c.Reactor.LiquidVolume = 0 },
		"zero inflow":              func(c *SimulationConfig) { c.Reactor.Inflow = 0 },
		"non-positive temperature": func(c *SimulationConfig) { c.Reactor.Temperature = 0 },
		"zero duration":            func(c *SimulationConfig) { c.Duration = 0 },
		"zero time step":           func(c *SimulationConfig) { c.Dt = 0 },
		"step beyond duration":     func(c *SimulationConfig) { c.Dt = c.Duration * 2 },
		"negative output interval": func(c *SimulationConfig) { c.OutputInterval = -1 },
		"broken stoichiometry":     func(c *SimulationConfig) { c.Stoich.FSIXc = 0.9 },
	}
	for name, corrupt := range cases {
		cfg := base
		corrupt(&cfg)
		_, err := Run(cfg)
		assert.Error(t, err, name)
	}
}

// TestRunPrimarySludge is the end-to-end scenario: 50 days of primary
// sludge at a 20-day retention time in a 1000 m³ digester.
func TestRunPrimarySludge(t *testing.T) {
	if testing.Short() {
		t.Skip("long dynamic simulation")
	}
	cfg := primarySludgeConfig(t)
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	cfg.Logger = logger

	r, err := Run(cfg)
	require.NoError(t, err)
	require.NotEmpty(t, r.TimeSeries)

	for _, rec := range r.TimeSeries {
		for j, v := range rec.State.ToArray() {
			if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
				t.Fatalf("day %g: %s = %g", rec.Time, ComponentNames[j], v)
			}
		}
		assert.GreaterOrEqual(t, rec.PH, 4.0)
		assert.LessOrEqual(t, rec.PH, 9.0)
		assert.GreaterOrEqual(t, rec.Biogas.MethaneFlowStd, 0.0)
		assert.GreaterOrEqual(t, rec.Biogas.CH4Percent, 0.0)
		assert.LessOrEqual(t, rec.Biogas.CH4Percent, 100.0)
	}

	assert.Greater(t, r.Performance.CODRemoval, 0.0)
	assert.Less(t, r.Performance.CODRemoval, 100.0)
	assert.Greater(t, r.Performance.OrganicLoadingRate, 0.0)
	assert.NotEmpty(t, r.Diagnostics.PHStability)
	assert.NotEmpty(t, r.Diagnostics.VFAAccumulation)
	assert.Equal(t, r.FinalState, r.TimeSeries[len(r.TimeSeries)-1].State)
	assert.Greater(t, r.Stats.Steps, 0)
	assert.GreaterOrEqual(t, r.Stats.RHSEvaluations, r.Stats.Steps)
}

// TestRunIntegratorAgreement compares forward Euler and Runge-Kutta on a
// smooth, lightly seeded system where both are well inside their stability
// regions.
func TestRunIntegratorAgreement(t *testing.T) {
	influent, err := primarySludge().Fractionate(DefaultFractionationCoeffs())
	require.NoError(t, err)

	cfg := NewSimulationConfig(testReactorConfig(), influent)
	initial := influent
	initial.Xsu, initial.Xaa, initial.Xfa, initial.Xc4 = 1, 1, 1, 1
	initial.Xpro, initial.Xac, initial.Xh2 = 1, 1, 1
	initial.SIC, initial.SIN = 40, 30
	cfg.InitialState = initial
	cfg.Duration = 0.1
	cfg.Dt = 1e-4
	cfg.OutputInterval = 0.05

	cfg.Integrator = ForwardEuler{}
	euler, err := Run(cfg)
	require.NoError(t, err)

	cfg.Integrator = RungeKutta4{}
	rk4, err := Run(cfg)
	require.NoError(t, err)

	e := euler.FinalState.ToArray()
	r := rk4.FinalState.ToArray()
	for j := range e {
		if e[j] < 1e-9 && r[j] < 1e-9 {
			continue
		}
		assert.InEpsilonf(t, r[j], e[j], 0.02,
			"%s: Euler %g vs RK4 %g", ComponentNames[j], e[j], r[j])
	}
	assert.Equal(t, "forward Euler", euler.Stats.Integrator)
	assert.Equal(t, "Runge-Kutta 4", rk4.Stats.Integrator)
	// Four derivative evaluations per step against one.
	assert.Greater(t, rk4.Stats.RHSEvaluations, 3*euler.Stats.RHSEvaluations)
}

func TestRunConvergesOnConstantState(t *testing.T) {
	// Inert-only feed equal to the initial state: nothing reacts, total
	// COD never changes, so the run stops at the first convergence check
	// after one retention time.
	inert := State{SI: 1000, XI: 5000}
	cfg := NewSimulationConfig(testReactorConfig(), inert) // HRT = 20 d
	cfg.InitialState = inert
	cfg.Duration = 40
	cfg.Dt = 0.01
	cfg.OutputInterval = 1
	cfg.ConvergenceTolerance = 0.005

	r, err := Run(cfg)
	require.NoError(t, err)
	assert.True(t, r.Stats.Converged)
	assert.Less(t, r.Stats.Steps, int(40/cfg.Dt))
	assert.InDelta(t, inert.SI, r.FinalState.SI, 1e-6)
}

func TestRunMaxStepsPartialResults(t *testing.T) {
	cfg := primarySludgeConfig(t)
	cfg.MaxSteps = 10

	r, err := Run(cfg)
	require.NoError(t, err)
	assert.Equal(t, 10, r.Stats.Steps)
	require.NotEmpty(t, r.Diagnostics.Warnings)
	assert.True(t, strings.Contains(r.Diagnostics.Warnings[len(r.Diagnostics.Warnings)-1], "partial"))
	assert.NotEmpty(t, r.TimeSeries)
}

func TestSteadyState(t *testing.T) {
	if testing.Short() {
		t.Skip("long dynamic simulation")
	}
	cfg := primarySludgeConfig(t)
	cfg.Dt = 0.01

	final, gas, err := SteadyState(cfg)
	require.NoError(t, err)
	for j, v := range final.ToArray() {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			t.Errorf("%s = %g", ComponentNames[j], v)
		}
	}
	assert.GreaterOrEqual(t, gas.CH4, 0.0)
	assert.GreaterOrEqual(t, gas.CO2, 0.0)
	assert.GreaterOrEqual(t, gas.H2, 0.0)

	cfg.Reactor.Inflow = 0
	if _, _, err := SteadyState(cfg); err == nil {
		t.Error("no error for zero inflow")
	}
}
