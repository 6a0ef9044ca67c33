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

func primarySludge() Influent {
	return Influent{
		Flow:           50,
		COD:            30000,
		VolatileSolids: 20000,
		TKN:            1200,
		AmmoniaN:       400,
		Alkalinity:     60,
		PH:             6.8,
		Temperature:    288.15,
	}
}

func TestFractionateConservesCOD(t *testing.T) {
	in := primarySludge()
	s, err := in.Fractionate(DefaultFractionationCoeffs())
	if err != nil {
		t.Fatal(err)
	}
	if got := s.TotalCOD(); different(got, in.COD, 1e-9) {
		t.Errorf("fractionated COD = %g, want %g", got, in.COD)
	}
}

func TestFractionateFreshFeed(t *testing.T) {
	s, err := primarySludge().Fractionate(DefaultFractionationCoeffs())
	if err != nil {
		t.Fatal(err)
	}
	if s.Biomass() != 0 {
		t.Errorf("fresh feed carries biomass: %g", s.Biomass())
	}
	if s.TotalVFA() != 0 {
		t.Errorf("fresh feed carries VFA: %g", s.TotalVFA())
	}
	if s.Sh2 != 0 || s.Sch4 != 0 {
		t.Error("fresh feed carries dissolved gases")
	}
}

func TestFractionateNutrients(t *testing.T) {
	in := primarySludge()
	f := DefaultFractionationCoeffs()
	s, err := in.Fractionate(f)
	if err != nil {
		t.Fatal(err)
	}
	if want := in.TKN * f.TKNToInorganic / 14; different(s.SIN, want, 1e-12) {
		t.Errorf("SIN = %g mol/m³, want %g", s.SIN, want)
	}
	if s.SIC != in.Alkalinity {
		t.Errorf("SIC = %g, want the measured alkalinity %g", s.SIC, in.Alkalinity)
	}
}

func TestFractionateRejectsBadCoefficients(t *testing.T) {
	f := DefaultFractionationCoeffs()
	f.Composite = 0.5
	if _, err := primarySludge().Fractionate(f); err == nil {
		t.Error("no error for COD fractions summing above 1")
	}
}

func TestFractionateClampsNegativeMeasurements(t *testing.T) {
	in := primarySludge()
	in.COD = -100
	in.TKN = -5
	s, err := in.Fractionate(DefaultFractionationCoeffs())
	if err != nil {
		t.Fatal(err)
	}
	if s.TotalCOD() != 0 || s.SIN != 0 {
		t.Errorf("negative measurements leaked through: COD %g, SIN %g", s.TotalCOD(), s.SIN)
	}
}
