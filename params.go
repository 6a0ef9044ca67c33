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
)

// KineticParams holds the rate constants, half-saturation constants,
// inhibition constants, and pH bounds for the 19 biochemical processes.
// Parameter sets are value objects: temperature correction and overrides
// return new instances, so concurrent runs never share mutable parameters.
type KineticParams struct {
	TRef float64 `desc:"Reference temperature of the rate constants" units:"K"`

	// First-order rate constants [1/d].
	KDis   float64 `desc:"Disintegration rate" units:"1/d"`
	KHydCh float64 `desc:"Carbohydrate hydrolysis rate" units:"1/d"`
	KHydPr float64 `desc:"Protein hydrolysis rate" units:"1/d"`
	KHydLi float64 `desc:"Lipid hydrolysis rate" units:"1/d"`
	KDec   float64 `desc:"Biomass decay rate" units:"1/d"`

	// Maximum specific uptake rates [g COD substrate/(g COD biomass·d)]
	// and half-saturation constants [g COD/m³].
	KmSu  float64
	KsSu  float64
	KmAa  float64
	KsAa  float64
	KmFa  float64
	KsFa  float64
	KmC4  float64
	KsC4  float64
	KmPro float64
	KsPro float64
	KmAc  float64
	KsAc  float64
	KmH2  float64
	KsH2  float64

	// Inhibition constants.
	KIh2Fa  float64 `desc:"Hydrogen inhibition of LCFA degraders" units:"g COD/m³"`
	KIh2C4  float64 `desc:"Hydrogen inhibition of C4 degraders" units:"g COD/m³"`
	KIh2Pro float64 `desc:"Hydrogen inhibition of propionate degraders" units:"g COD/m³"`
	KINH3   float64 `desc:"Free ammonia inhibition of methanogens" units:"mol N/m³"`
	KsIN    float64 `desc:"Inorganic nitrogen limitation" units:"mol N/m³"`

	// pH inhibition bounds per microbial group.
	PHULAcid float64 // upper bound, acid formers and acetogens
	PHLLAcid float64 // lower bound, acid formers and acetogens
	PHULAc   float64 // upper bound, acetoclastic methanogens
	PHLLAc   float64 // lower bound, acetoclastic methanogens
	PHULH2   float64 // upper bound, hydrogenotrophic methanogens
	PHLLH2   float64 // lower bound, hydrogenotrophic methanogens
}

// DefaultKineticParams returns the mesophilic (35 °C) parameter set.
func DefaultKineticParams() KineticParams {
	return KineticParams{
		TRef: 308.15,

		KDis:   0.5,
		KHydCh: 10,
		KHydPr: 10,
		KHydLi: 10,
		KDec:   0.02,

		KmSu: 30, KsSu: 500,
		KmAa: 50, KsAa: 300,
		KmFa: 6, KsFa: 400,
		KmC4: 20, KsC4: 200,
		KmPro: 13, KsPro: 100,
		KmAc: 8, KsAc: 150,
		KmH2: 35, KsH2: 0.007,

		KIh2Fa:  0.005,
		KIh2C4:  0.01,
		KIh2Pro: 0.0035,
		KINH3:   1.8,
		KsIN:    0.1,

		// The methanogen bounds delimit a bell-shaped activity window
		// and must bracket normal digester operation near pH 7.
		PHULAcid: 5.5, PHLLAcid: 4,
		PHULAc: 8, PHLLAc: 6,
		PHULH2: 8, PHLLH2: 5,
	}
}

// StoichParams holds the yield and fraction coefficients that populate the
// Petersen matrix, plus the elemental composition constants used to close
// each reaction's carbon and nitrogen balance.
type StoichParams struct {
	// Disintegration product fractions [g COD/g COD]. Must sum to 1.
	FSIXc float64 // to soluble inerts
	FXIXc float64 // to particulate inerts
	FChXc float64 // to carbohydrates
	FPrXc float64 // to proteins
	FLiXc float64 // to lipids

	// Catabolic product split fractions [g COD/g COD]. Each uptake
	// reaction's fractions must sum to 1.
	FBuSu  float64
	FProSu float64
	FAcSu  float64
	FH2Su  float64
	FVaAa  float64
	FBuAa  float64
	FProAa float64
	FAcAa  float64
	FH2Aa  float64
	FAcFa  float64
	FH2Fa  float64
	FAcVa  float64
	FProVa float64
	FH2Va  float64
	FAcBu  float64
	FH2Bu  float64
	FAcPro float64
	FH2Pro float64

	// Biomass yields [g COD biomass/g COD substrate].
	YSu  float64
	YAa  float64
	YFa  float64
	YC4  float64
	YPro float64
	YAc  float64
	YH2  float64

	// Carbon contents [mol C/g COD].
	CXc   float64
	CSI   float64
	CXI   float64
	CCh   float64
	CPr   float64
	CLi   float64
	CSu   float64
	CAa   float64
	CFa   float64
	CVa   float64
	CBu   float64
	CPro  float64
	CAc   float64
	CCh4  float64
	CBiom float64

	// Nitrogen contents [mol N/g COD].
	NXc   float64
	NI    float64
	NAa   float64
	NBiom float64
}

// DefaultStoichParams returns the reference stoichiometric parameter set.
func DefaultStoichParams() StoichParams {
	return StoichParams{
		FSIXc: 0.1, FXIXc: 0.2, FChXc: 0.2, FPrXc: 0.2, FLiXc: 0.3,

		FBuSu: 0.13, FProSu: 0.27, FAcSu: 0.41, FH2Su: 0.19,
		FVaAa: 0.23, FBuAa: 0.26, FProAa: 0.05, FAcAa: 0.40, FH2Aa: 0.06,
		FAcFa: 0.7, FH2Fa: 0.3,
		FAcVa: 0.31, FProVa: 0.54, FH2Va: 0.15,
		FAcBu: 0.8, FH2Bu: 0.2,
		FAcPro: 0.57, FH2Pro: 0.43,

		YSu: 0.10, YAa: 0.08, YFa: 0.06, YC4: 0.06,
		YPro: 0.04, YAc: 0.05, YH2: 0.06,

		CXc: 0.02786, CSI: 0.03, CXI: 0.03,
		CCh: 0.0313, CPr: 0.03, CLi: 0.022,
		CSu: 0.0313, CAa: 0.03, CFa: 0.0217,
		CVa: 0.024, CBu: 0.025, CPro: 0.0268, CAc: 0.0313,
		CCh4: 0.0156, CBiom: 0.0313,

		NXc: 0.0376 / 14, NI: 0.06 / 14, NAa: 0.007, NBiom: 0.08 / 14,
	}
}

// Validate checks the internal consistency of the fraction coefficients.
// The disintegration fractions and each uptake reaction's product split
// fractions have to sum to 1, otherwise the Petersen matrix would create or
// destroy COD.
func (p StoichParams) Validate() error {
	const tol = 1e-6
	sums := []struct {
		name string
		sum  float64
	}{
		{"disintegration", p.FSIXc + p.FXIXc + p.FChXc + p.FPrXc + p.FLiXc},
		{"sugar uptake", p.FBuSu + p.FProSu + p.FAcSu + p.FH2Su},
		{"amino acid uptake", p.FVaAa + p.FBuAa + p.FProAa + p.FAcAa + p.FH2Aa},
		{"LCFA uptake", p.FAcFa + p.FH2Fa},
		{"valerate uptake", p.FAcVa + p.FProVa + p.FH2Va},
		{"butyrate uptake", p.FAcBu + p.FH2Bu},
		{"propionate uptake", p.FAcPro + p.FH2Pro},
	}
	for _, s := range sums {
		if math.Abs(s.sum-1) > tol {
			return fmt.Errorf("adm: %s product fractions sum to %g, want 1", s.name, s.sum)
		}
	}
	return nil
}

// PhysChemParams holds the acid dissociation constants, Henry constants,
// and gas-liquid mass transfer coefficient. Equilibrium constants are given
// at TRef and corrected with CorrectPhysChem before use.
type PhysChemParams struct {
	TRef float64 `desc:"Reference temperature of the equilibrium constants" units:"K"`

	// Acid dissociation constants [mol/L].
	KaVa  float64
	KaBu  float64
	KaPro float64
	KaAc  float64
	KaCO2 float64
	KaNH4 float64
	KW    float64 // water self-ionization [mol²/L²]

	// Henry constants [kmol/(m³·bar)].
	KHh2  float64
	KHch4 float64
	KHco2 float64

	// Gas-liquid mass transfer coefficient [1/d].
	KLa float64

	// Fixed background ion concentrations in the charge balance [kmol/m³].
	SCat float64
	SAn  float64
}

// DefaultPhysChemParams returns the physico-chemical parameter set at 25 °C.
func DefaultPhysChemParams() PhysChemParams {
	return PhysChemParams{
		TRef: 298.15,

		KaVa:  1.38e-5,
		KaBu:  1.51e-5,
		KaPro: 1.32e-5,
		KaAc:  1.74e-5,
		KaCO2: 4.46e-7,
		KaNH4: 5.62e-10,
		KW:    1e-14,

		KHh2:  7.8e-4,
		KHch4: 1.4e-3,
		KHco2: 3.5e-2,

		KLa: 200,
	}
}

// TempCoeffs holds the Arrhenius activation energies of the kinetic rate
// constants and the van't Hoff reaction enthalpies of the equilibrium and
// Henry constants [J/mol].
type TempCoeffs struct {
	EaDis    float64 // disintegration and hydrolysis
	EaAcid   float64 // sugar and amino acid uptake
	EaAceto  float64 // LCFA, C4 and propionate uptake
	EaAcMeth float64 // acetoclastic methanogenesis
	EaH2Meth float64 // hydrogenotrophic methanogenesis
	EaDecay  float64 // biomass decay

	DHKaCO2 float64
	DHKaNH4 float64
	DHKW    float64
	DHKHh2  float64
	DHKHch4 float64
	DHKHco2 float64
}

// DefaultTempCoeffs returns the reference temperature coefficient set.
func DefaultTempCoeffs() TempCoeffs {
	return TempCoeffs{
		EaDis:    55000,
		EaAcid:   46000,
		EaAceto:  55000,
		EaAcMeth: 65000,
		EaH2Meth: 60000,
		EaDecay:  50000,

		DHKaCO2: 7646,
		DHKaNH4: 51965,
		DHKW:    55900,
		DHKHh2:  -4180,
		DHKHch4: -14240,
		DHKHco2: -19410,
	}
}

// ReactorConfig describes the digester vessel and its hydraulic operating
// point. It is read-only for the duration of a run.
type ReactorConfig struct {
	LiquidVolume    float64 `desc:"Liquid volume" units:"m³"`
	HeadspaceVolume float64 `desc:"Headspace volume" units:"m³"`
	Temperature     float64 `desc:"Operating temperature" units:"K"`
	Pressure        float64 `desc:"Headspace pressure" units:"bar"`
	Inflow          float64 `desc:"Volumetric inflow" units:"m³/d"`
}

// HRT returns the hydraulic retention time [d].
func (r ReactorConfig) HRT() float64 {
	return r.LiquidVolume / r.Inflow
}

// Validate reports the first physically impossible configuration value.
func (r ReactorConfig) Validate() error {
	switch {
	case !(r.LiquidVolume > 0):
		return fmt.Errorf("adm: liquid volume must be positive, got %g m³", r.LiquidVolume)
	case !(r.HeadspaceVolume > 0):
		return fmt.Errorf("adm: headspace volume must be positive, got %g m³", r.HeadspaceVolume)
	case !(r.Temperature > 0):
		return fmt.Errorf("adm: temperature must be above 0 K, got %g K", r.Temperature)
	case !(r.Pressure > 0):
		return fmt.Errorf("adm: pressure must be positive, got %g bar", r.Pressure)
	case !(r.Inflow > 0):
		return fmt.Errorf("adm: inflow must be positive, got %g m³/d", r.Inflow)
	}
	return nil
}
