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

// DerivativeFunc is the autonomous right-hand side of the reactor ODE
// system: given the component array y it returns dy/dt. Implementations
// must be pure so an integrator can re-evaluate them at trial states.
type DerivativeFunc func(y []float64) []float64

// Integrator advances the component array by one explicit step. The reactor
// equations are stiff in the dissolved hydrogen pool, so a step size too
// large for the chosen scheme diverges; the driver clamps each result
// non-negative, which bounds but does not hide that error.
type Integrator interface {
	// Step returns the state after one step of size dt [d]; y is not
	// modified.
	Step(f DerivativeFunc, y []float64, dt float64) []float64
	// Name identifies the scheme in execution statistics.
	Name() string
}

// ForwardEuler is the first-order explicit Euler scheme, one derivative
// evaluation per step.
type ForwardEuler struct{}

// Step implements Integrator.
func (ForwardEuler) Step(f DerivativeFunc, y []float64, dt float64) []float64 {
	dy := f(y)
	out := make([]float64, len(y))
	for i := range y {
		out[i] = y[i] + dt*dy[i]
	}
	return out
}

// Name implements Integrator.
func (ForwardEuler) Name() string { return "forward Euler" }

// RungeKutta4 is the classic fourth-order Runge-Kutta scheme, four
// derivative evaluations per step.
type RungeKutta4 struct{}

// Step implements Integrator.
func (RungeKutta4) Step(f DerivativeFunc, y []float64, dt float64) []float64 {
	n := len(y)
	k1 := f(y)
	k2 := f(shifted(y, k1, dt/2))
	k3 := f(shifted(y, k2, dt/2))
	k4 := f(shifted(y, k3, dt))

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = y[i] + dt/6*(k1[i]+2*k2[i]+2*k3[i]+k4[i])
	}
	return out
}

// Name implements Integrator.
func (RungeKutta4) Name() string { return "Runge-Kutta 4" }

func shifted(y, dy []float64, h float64) []float64 {
	out := make([]float64, len(y))
	for i := range y {
		out[i] = y[i] + h*dy[i]
	}
	return out
}
