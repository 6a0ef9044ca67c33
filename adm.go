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

// Package adm implements a biokinetic model of anaerobic digestion in a
// continuously stirred tank reactor: 19 coupled biochemical reactions acting
// on a 24-component state vector, an acid-base equilibrium solve for pH,
// gas-liquid mass transfer to a headspace, and a fixed-step simulation
// driver that integrates the reactor mass balance to steady state.
package adm

import "math"

// Physical constants.
const (
	// RBar is the ideal gas constant [bar·m³/(kmol·K)].
	RBar = 8.314e-2
	// RJ is the ideal gas constant [J/(mol·K)].
	RJ = 8.314

	// Standard conditions for normalized gas volumes.
	pStd = 1.013  // bar
	tStd = 273.15 // K

	// COD equivalents [g COD/mol].
	codH2  = 16.
	codCH4 = 64.
	codVa  = 208.
	codBu  = 160.
	codPro = 112.
	codAc  = 64.

	// Lower heating value of methane [kWh/Nm³].
	ch4EnergyDensity = 9.97
)

// Indices of individual components in state arrays.
const (
	iSsu int = iota // monosaccharides
	iSaa            // amino acids
	iSfa            // long-chain fatty acids
	iSva            // valerate
	iSbu            // butyrate
	iSpro           // propionate
	iSac            // acetate
	iSh2            // dissolved hydrogen
	iSch4           // dissolved methane
	iSIC            // inorganic carbon
	iSIN            // inorganic nitrogen
	iSI             // soluble inerts
	iXc             // composite particulates
	iXch            // carbohydrates
	iXpr            // proteins
	iXli            // lipids
	iXsu            // sugar degraders
	iXaa            // amino acid degraders
	iXfa            // LCFA degraders
	iXc4            // valerate and butyrate degraders
	iXpro           // propionate degraders
	iXac            // acetate degraders
	iXh2            // hydrogen degraders
	iXI             // particulate inerts

	// NumComponents is the number of components in the state vector.
	NumComponents int = iota
)

// ComponentNames are the names of the state vector components, in the
// canonical ordering used by State.ToArray and StateFromArray.
var ComponentNames = []string{
	"S_su", "S_aa", "S_fa", "S_va", "S_bu", "S_pro", "S_ac",
	"S_h2", "S_ch4", "S_IC", "S_IN", "S_I",
	"X_c", "X_ch", "X_pr", "X_li",
	"X_su", "X_aa", "X_fa", "X_c4", "X_pro", "X_ac", "X_h2", "X_I",
}

// State holds the concentrations of the 24 liquid-phase model components.
// All components are in g COD/m³ except the inorganic carbon and inorganic
// nitrogen pools, which are molar. Components are never negative; values
// arriving from an integration step are clamped, not propagated.
type State struct {
	Ssu  float64 `desc:"Monosaccharides" units:"g COD/m³"`
	Saa  float64 `desc:"Amino acids" units:"g COD/m³"`
	Sfa  float64 `desc:"Long-chain fatty acids" units:"g COD/m³"`
	Sva  float64 `desc:"Total valerate" units:"g COD/m³"`
	Sbu  float64 `desc:"Total butyrate" units:"g COD/m³"`
	Spro float64 `desc:"Total propionate" units:"g COD/m³"`
	Sac  float64 `desc:"Total acetate" units:"g COD/m³"`
	Sh2  float64 `desc:"Dissolved hydrogen" units:"g COD/m³"`
	Sch4 float64 `desc:"Dissolved methane" units:"g COD/m³"`
	SIC  float64 `desc:"Inorganic carbon" units:"mol C/m³"`
	SIN  float64 `desc:"Inorganic nitrogen" units:"mol N/m³"`
	SI   float64 `desc:"Soluble inerts" units:"g COD/m³"`

	Xc   float64 `desc:"Composite particulates" units:"g COD/m³"`
	Xch  float64 `desc:"Carbohydrates" units:"g COD/m³"`
	Xpr  float64 `desc:"Proteins" units:"g COD/m³"`
	Xli  float64 `desc:"Lipids" units:"g COD/m³"`
	Xsu  float64 `desc:"Sugar degraders" units:"g COD/m³"`
	Xaa  float64 `desc:"Amino acid degraders" units:"g COD/m³"`
	Xfa  float64 `desc:"LCFA degraders" units:"g COD/m³"`
	Xc4  float64 `desc:"Valerate and butyrate degraders" units:"g COD/m³"`
	Xpro float64 `desc:"Propionate degraders" units:"g COD/m³"`
	Xac  float64 `desc:"Acetate degraders" units:"g COD/m³"`
	Xh2  float64 `desc:"Hydrogen degraders" units:"g COD/m³"`
	XI   float64 `desc:"Particulate inerts" units:"g COD/m³"`
}

// GasPhase holds the headspace concentrations of the three transferable
// gases [kmol/m³]. It is stored separately from the liquid State and is
// updated once per time step from the gas-liquid transfer rates.
type GasPhase struct {
	H2  float64 `desc:"Headspace hydrogen" units:"kmol/m³"`
	CH4 float64 `desc:"Headspace methane" units:"kmol/m³"`
	CO2 float64 `desc:"Headspace carbon dioxide" units:"kmol/m³"`
}

// ToArray converts the state to a flat array in the canonical component
// ordering. The array form is only used at the integrator and serialization
// boundaries; everything else addresses components by field.
func (s *State) ToArray() []float64 {
	return []float64{
		s.Ssu, s.Saa, s.Sfa, s.Sva, s.Sbu, s.Spro, s.Sac,
		s.Sh2, s.Sch4, s.SIC, s.SIN, s.SI,
		s.Xc, s.Xch, s.Xpr, s.Xli,
		s.Xsu, s.Xaa, s.Xfa, s.Xc4, s.Xpro, s.Xac, s.Xh2, s.XI,
	}
}

// StateFromArray converts a flat array in the canonical component ordering
// back into a State. Negative entries are clamped to zero, and any missing
// trailing entries are treated as zero.
func StateFromArray(a []float64) State {
	var y [NumComponents]float64
	for i := 0; i < NumComponents && i < len(a); i++ {
		y[i] = math.Max(0, a[i])
	}
	return State{
		Ssu: y[iSsu], Saa: y[iSaa], Sfa: y[iSfa],
		Sva: y[iSva], Sbu: y[iSbu], Spro: y[iSpro], Sac: y[iSac],
		Sh2: y[iSh2], Sch4: y[iSch4], SIC: y[iSIC], SIN: y[iSIN], SI: y[iSI],
		Xc: y[iXc], Xch: y[iXch], Xpr: y[iXpr], Xli: y[iXli],
		Xsu: y[iXsu], Xaa: y[iXaa], Xfa: y[iXfa], Xc4: y[iXc4],
		Xpro: y[iXpro], Xac: y[iXac], Xh2: y[iXh2], XI: y[iXI],
	}
}

// TotalVFA returns the summed volatile fatty acid concentration [g COD/m³].
func (s *State) TotalVFA() float64 {
	return s.Sva + s.Sbu + s.Spro + s.Sac
}

// SolubleCOD returns the summed soluble COD [g COD/m³]. Dissolved gases and
// the molar inorganic pools are excluded.
func (s *State) SolubleCOD() float64 {
	return s.Ssu + s.Saa + s.Sfa + s.TotalVFA() + s.SI
}

// ParticulateCOD returns the summed particulate COD, including all seven
// biomass pools [g COD/m³].
func (s *State) ParticulateCOD() float64 {
	return s.Xc + s.Xch + s.Xpr + s.Xli + s.Biomass() + s.XI
}

// Biomass returns the summed active biomass concentration [g COD/m³].
func (s *State) Biomass() float64 {
	return s.Xsu + s.Xaa + s.Xfa + s.Xc4 + s.Xpro + s.Xac + s.Xh2
}

// TotalCOD returns the summed soluble and particulate COD [g COD/m³].
func (s *State) TotalCOD() float64 {
	return s.SolubleCOD() + s.ParticulateCOD()
}
