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

import "testing"

func TestCorrectKineticsIdentityAtReference(t *testing.T) {
	p := DefaultKineticParams()
	c, err := CorrectKinetics(p, DefaultTempCoeffs(), p.TRef)
	if err != nil {
		t.Fatal(err)
	}
	if different(c.KDis, p.KDis, 1e-12) || different(c.KmAc, p.KmAc, 1e-12) ||
		different(c.KmH2, p.KmH2, 1e-12) || different(c.KDec, p.KDec, 1e-12) {
		t.Errorf("correction at the reference temperature changed rate constants: %+v", c)
	}
}

func TestCorrectKineticsMonotonicInTemperature(t *testing.T) {
	p := DefaultKineticParams()
	tc := DefaultTempCoeffs()

	warm, err := CorrectKinetics(p, tc, p.TRef+10)
	if err != nil {
		t.Fatal(err)
	}
	cold, err := CorrectKinetics(p, tc, p.TRef-10)
	if err != nil {
		t.Fatal(err)
	}
	if !(warm.KmAc > p.KmAc) || !(cold.KmAc < p.KmAc) {
		t.Errorf("KmAc at ±10 K: %g / %g around %g; want increase with temperature",
			warm.KmAc, cold.KmAc, p.KmAc)
	}
	// Half-saturation constants are not temperature corrected.
	if warm.KsAc != p.KsAc {
		t.Errorf("KsAc changed from %g to %g", p.KsAc, warm.KsAc)
	}
}

func TestCorrectKineticsDoesNotMutateInput(t *testing.T) {
	p := DefaultKineticParams()
	want := p
	if _, err := CorrectKinetics(p, DefaultTempCoeffs(), 310); err != nil {
		t.Fatal(err)
	}
	if p != want {
		t.Error("input parameter set was mutated")
	}
}

func TestCorrectKineticsRejectsNonPositiveTemperature(t *testing.T) {
	for _, temp := range []float64{0, -1} {
		if _, err := CorrectKinetics(DefaultKineticParams(), DefaultTempCoeffs(), temp); err == nil {
			t.Errorf("no error for temperature %g K", temp)
		}
		if _, err := CorrectPhysChem(DefaultPhysChemParams(), DefaultTempCoeffs(), temp); err == nil {
			t.Errorf("no error for temperature %g K", temp)
		}
	}
}

func TestCorrectPhysChemVantHoffDirections(t *testing.T) {
	p := DefaultPhysChemParams()
	tc := DefaultTempCoeffs()

	c, err := CorrectPhysChem(p, tc, 308.15)
	if err != nil {
		t.Fatal(err)
	}
	// Endothermic dissociations strengthen with temperature; gas
	// solubility drops.
	if !(c.KaNH4 > p.KaNH4) || !(c.KW > p.KW) {
		t.Errorf("dissociation constants did not increase: KaNH4 %g→%g, KW %g→%g",
			p.KaNH4, c.KaNH4, p.KW, c.KW)
	}
	if !(c.KHco2 < p.KHco2) || !(c.KHch4 < p.KHch4) || !(c.KHh2 < p.KHh2) {
		t.Errorf("Henry constants did not decrease: %+v", c)
	}
	// VFA dissociation stays as given.
	if c.KaAc != p.KaAc {
		t.Errorf("KaAc changed from %g to %g", p.KaAc, c.KaAc)
	}
}
