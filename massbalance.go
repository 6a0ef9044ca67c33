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

import "gonum.org/v1/gonum/mat"

// Derivatives assembles the 24 state time derivatives for one instant:
// the hydraulic flow term (inflow − state)/HRT, the reaction term νᵀρ from
// the Petersen matrix and the current process rates, and the gas stripping
// term on dissolved hydrogen, dissolved methane, and inorganic carbon. It
// is a pure function; the simulation driver wraps it as the right-hand
// side handed to the integrator.
func Derivatives(s, inflow *State, rates [NumProcesses]float64, tr TransferRates, petersen *mat.Dense, cfg ReactorConfig) []float64 {
	hrt := cfg.HRT()

	// Reaction term: transpose(ν) × ρ.
	rho := mat.NewVecDense(NumProcesses, rates[:])
	reaction := mat.NewVecDense(NumComponents, nil)
	reaction.MulVec(petersen.T(), rho)

	y := s.ToArray()
	in := inflow.ToArray()
	dy := make([]float64, NumComponents)
	for j := 0; j < NumComponents; j++ {
		dy[j] = (in[j]-y[j])/hrt + reaction.AtVec(j)
	}

	// Gas stripping, converting the molar transfer rates into each
	// component's own units.
	dy[iSh2] -= tr.H2 * codH2 * 1000  // kmol/m³/d → g COD/m³/d
	dy[iSch4] -= tr.CH4 * codCH4 * 1000
	dy[iSIC] -= tr.CO2 * 1000 // kmol/m³/d → mol/m³/d
	return dy
}
