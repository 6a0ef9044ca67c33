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

// arrhenius scales a rate or equilibrium constant from tRef to t given an
// activation energy or reaction enthalpy ea [J/mol].
func arrhenius(k, ea, tRef, t float64) float64 {
	return k * math.Exp(ea/RJ*(1/tRef-1/t))
}

// CorrectKinetics returns a copy of p with every rate constant scaled to the
// operating temperature t [K] using the Arrhenius relation and the
// activation energies in tc. Half-saturation and inhibition constants are
// left unchanged. The input parameter set is not modified.
func CorrectKinetics(p KineticParams, tc TempCoeffs, t float64) (KineticParams, error) {
	if !(t > 0) {
		return KineticParams{}, fmt.Errorf("adm: temperature must be above 0 K, got %g K", t)
	}
	c := p

	c.KDis = arrhenius(p.KDis, tc.EaDis, p.TRef, t)
	c.KHydCh = arrhenius(p.KHydCh, tc.EaDis, p.TRef, t)
	c.KHydPr = arrhenius(p.KHydPr, tc.EaDis, p.TRef, t)
	c.KHydLi = arrhenius(p.KHydLi, tc.EaDis, p.TRef, t)
	c.KDec = arrhenius(p.KDec, tc.EaDecay, p.TRef, t)

	c.KmSu = arrhenius(p.KmSu, tc.EaAcid, p.TRef, t)
	c.KmAa = arrhenius(p.KmAa, tc.EaAcid, p.TRef, t)
	c.KmFa = arrhenius(p.KmFa, tc.EaAceto, p.TRef, t)
	c.KmC4 = arrhenius(p.KmC4, tc.EaAceto, p.TRef, t)
	c.KmPro = arrhenius(p.KmPro, tc.EaAceto, p.TRef, t)
	c.KmAc = arrhenius(p.KmAc, tc.EaAcMeth, p.TRef, t)
	c.KmH2 = arrhenius(p.KmH2, tc.EaH2Meth, p.TRef, t)

	c.TRef = t
	return c, nil
}

// CorrectPhysChem returns a copy of p with the acid dissociation, water
// ionization, and Henry constants scaled to the operating temperature t [K]
// using the van't Hoff relation and the reaction enthalpies in tc. The VFA
// dissociation constants are nearly temperature independent and are kept
// as given. The input parameter set is not modified.
func CorrectPhysChem(p PhysChemParams, tc TempCoeffs, t float64) (PhysChemParams, error) {
	if !(t > 0) {
		return PhysChemParams{}, fmt.Errorf("adm: temperature must be above 0 K, got %g K", t)
	}
	c := p

	c.KaCO2 = arrhenius(p.KaCO2, tc.DHKaCO2, p.TRef, t)
	c.KaNH4 = arrhenius(p.KaNH4, tc.DHKaNH4, p.TRef, t)
	c.KW = arrhenius(p.KW, tc.DHKW, p.TRef, t)

	c.KHh2 = arrhenius(p.KHh2, tc.DHKHh2, p.TRef, t)
	c.KHch4 = arrhenius(p.KHch4, tc.DHKHch4, p.TRef, t)
	c.KHco2 = arrhenius(p.KHco2, tc.DHKHco2, p.TRef, t)

	c.TRef = t
	return c, nil
}
