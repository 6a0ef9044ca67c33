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

import "math"

// pH solver limits. Results outside these bounds are not physically
// meaningful for a digester and are numerically fragile in the inhibition
// functions, so estimates are clamped into them.
const (
	pHMin = 4.0
	pHMax = 9.0

	hNeutral = 1e-7 // [mol/L], rescue target when a Newton step overshoots
)

// PHSolver computes the hydrogen ion concentration that closes the liquid
// phase charge balance. MaxIterations and Tolerance are part of the solver
// contract so alternative root finders can be substituted; the zero value
// is not usable, construct with NewPHSolver.
type PHSolver struct {
	// MaxIterations is the Newton-Raphson iteration budget.
	MaxIterations int
	// Tolerance is the charge balance residual [kmol/m³] below which the
	// solve is considered converged.
	Tolerance float64
}

// NewPHSolver returns a solver with the default iteration budget (100) and
// residual tolerance (1e-12).
func NewPHSolver() *PHSolver {
	return &PHSolver{MaxIterations: 100, Tolerance: 1e-12}
}

// PHResult is the outcome of a charge balance solve.
type PHResult struct {
	PH         float64 // clamped to [pHMin, pHMax]
	HIon       float64 // [mol/L], consistent with PH
	Converged  bool    // false if the iteration budget ran out
	Iterations int
}

// chargeBalance evaluates the electroneutrality residual and its analytic
// derivative with respect to the hydrogen ion concentration h [mol/L].
// Positive charges minus negative charges, in kmol/m³ of charge:
//
//	cat + NH4+ + H+ − HCO3− − VFA− − OH− − an
//
// The acid groups each contribute their dissociated fraction Ka/(Ka+h).
func chargeBalance(h float64, s *State, pc PhysChemParams) (f, df float64) {
	// Molar pools [kmol/m³ == mol/L].
	sIN := math.Max(0, s.SIN) / 1000
	sIC := math.Max(0, s.SIC) / 1000
	va := math.Max(0, s.Sva) / codVa / 1000
	bu := math.Max(0, s.Sbu) / codBu / 1000
	pro := math.Max(0, s.Spro) / codPro / 1000
	ac := math.Max(0, s.Sac) / codAc / 1000

	f = pc.SCat - pc.SAn + h - pc.KW/h
	df = 1 + pc.KW/(h*h)

	// Ammonium: the protonated fraction carries the charge.
	f += sIN * h / (h + pc.KaNH4)
	df += sIN * pc.KaNH4 / ((h + pc.KaNH4) * (h + pc.KaNH4))

	for _, sp := range [...]struct{ m, ka float64 }{
		{sIC, pc.KaCO2},
		{va, pc.KaVa},
		{bu, pc.KaBu},
		{pro, pc.KaPro},
		{ac, pc.KaAc},
	} {
		f -= sp.m * sp.ka / (sp.ka + h)
		df += sp.m * sp.ka / ((sp.ka + h) * (sp.ka + h))
	}
	return f, df
}

// Solve runs Newton-Raphson on the charge balance starting from pH 7. When
// a Newton step would leave the positive domain the solver falls back to an
// averaging step toward neutral pH instead of diverging. A solve that
// exhausts its iteration budget returns the best clamped estimate with
// Converged set to false; it never fails.
func (ps *PHSolver) Solve(s *State, pc PhysChemParams) PHResult {
	h := hNeutral
	var res PHResult
	for i := 0; i < ps.MaxIterations; i++ {
		f, df := chargeBalance(h, s, pc)
		res.Iterations = i + 1
		if math.Abs(f) < ps.Tolerance {
			res.Converged = true
			break
		}
		hNew := h - f/df
		if hNew <= 0 || math.IsNaN(hNew) {
			// Rescue: bisect toward neutral rather than leaving the
			// physical domain.
			hNew = (h + hNeutral) / 2
		}
		h = hNew
	}
	res.PH = clampPH(-math.Log10(h))
	res.HIon = math.Pow(10, -res.PH)
	return res
}

func clampPH(pH float64) float64 {
	if math.IsNaN(pH) {
		return 7
	}
	return math.Min(pHMax, math.Max(pHMin, pH))
}

// FreeAmmonia returns the un-ionized ammonia concentration [mol N/m³] for
// total inorganic nitrogen sIN [mol N/m³] at hydrogen ion concentration
// hIon [mol/L].
func FreeAmmonia(sIN, hIon, kaNH4 float64) float64 {
	if sIN <= 0 || hIon <= 0 {
		return 0
	}
	return sIN * kaNH4 / (kaNH4 + hIon)
}

// Alkalinity returns the total alkalinity [eq/m³] at a known pH: the
// bicarbonate and free ammonia contributions less the dissociated VFA
// contribution.
func Alkalinity(s *State, pH float64, pc PhysChemParams) float64 {
	h := math.Pow(10, -pH)

	hco3 := math.Max(0, s.SIC) * pc.KaCO2 / (pc.KaCO2 + h)
	nh3 := FreeAmmonia(math.Max(0, s.SIN), h, pc.KaNH4)

	vfa := 0.0
	for _, sp := range [...]struct{ conc, cod, ka float64 }{
		{s.Sva, codVa, pc.KaVa},
		{s.Sbu, codBu, pc.KaBu},
		{s.Spro, codPro, pc.KaPro},
		{s.Sac, codAc, pc.KaAc},
	} {
		vfa += math.Max(0, sp.conc) / sp.cod * sp.ka / (sp.ka + h)
	}
	return hco3 + nh3 - vfa
}
