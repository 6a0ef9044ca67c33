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

// Influent describes a feed stream by conventional bulk measurements, the
// boundary condition most plants actually have. Fractionate maps it onto
// the full component vector.
type Influent struct {
	Flow           float64 `desc:"Volumetric flow" units:"m³/d"`
	COD            float64 `desc:"Total chemical oxygen demand" units:"g COD/m³"`
	VolatileSolids float64 `desc:"Volatile solids" units:"g/m³"`
	TKN            float64 `desc:"Total Kjeldahl nitrogen" units:"g N/m³"`
	AmmoniaN       float64 `desc:"Ammonia nitrogen" units:"g N/m³"`
	Alkalinity     float64 `desc:"Bicarbonate alkalinity" units:"eq/m³"`
	PH             float64
	Temperature    float64 `desc:"Feed temperature" units:"K"`
}

// FractionationCoeffs routes the bulk measurements onto individual
// components: fractions of total COD per organic component and the fraction
// of TKN that enters as inorganic (ammonia) nitrogen.
type FractionationCoeffs struct {
	// COD fractions. Must sum to 1.
	SolubleInert     float64
	ParticulateInert float64
	Composite        float64
	Carbohydrate     float64
	Protein          float64
	Lipid            float64
	Sugar            float64
	AminoAcid        float64
	LCFA             float64

	// Fraction of TKN entering as inorganic nitrogen.
	TKNToInorganic float64
}

// DefaultFractionationCoeffs returns the primary sludge fractionation.
func DefaultFractionationCoeffs() FractionationCoeffs {
	return FractionationCoeffs{
		SolubleInert:     0.05,
		ParticulateInert: 0.13,
		Composite:        0.10,
		Carbohydrate:     0.27,
		Protein:          0.20,
		Lipid:            0.15,
		Sugar:            0.04,
		AminoAcid:        0.03,
		LCFA:             0.03,

		TKNToInorganic: 0.35,
	}
}

// Validate checks that the COD fractions route all of the measured COD.
func (f FractionationCoeffs) Validate() error {
	sum := f.SolubleInert + f.ParticulateInert + f.Composite + f.Carbohydrate +
		f.Protein + f.Lipid + f.Sugar + f.AminoAcid + f.LCFA
	if math.Abs(sum-1) > 1e-6 {
		return fmt.Errorf("adm: influent COD fractions sum to %g, want 1", sum)
	}
	return nil
}

// Fractionate maps the bulk measurements onto the 24-component state vector.
// Fresh feed carries no active biomass and no volatile fatty acids by
// construction. Inorganic nitrogen comes from the routed TKN fraction
// [g N/m³ → mol N/m³] and inorganic carbon from the measured alkalinity.
func (in Influent) Fractionate(f FractionationCoeffs) (State, error) {
	if err := f.Validate(); err != nil {
		return State{}, err
	}
	cod := math.Max(0, in.COD)
	return State{
		Ssu: cod * f.Sugar,
		Saa: cod * f.AminoAcid,
		Sfa: cod * f.LCFA,
		SI:  cod * f.SolubleInert,

		SIC: math.Max(0, in.Alkalinity),
		SIN: math.Max(0, in.TKN) * f.TKNToInorganic / 14,

		Xc:  cod * f.Composite,
		Xch: cod * f.Carbohydrate,
		Xpr: cod * f.Protein,
		Xli: cod * f.Lipid,
		XI:  cod * f.ParticulateInert,
	}, nil
}
