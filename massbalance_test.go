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
	"math"
	"testing"
)

func TestDerivativesEquilibrium(t *testing.T) {
	// State equal to the inflow, no reactions, no gas transfer: every
	// derivative is exactly zero.
	m, err := PetersenMatrix(DefaultStoichParams())
	if err != nil {
		t.Fatal(err)
	}
	s := typicalDigesterState()
	in := s
	var rates [NumProcesses]float64

	dy := Derivatives(&s, &in, rates, TransferRates{}, m, testReactorConfig())
	for j, d := range dy {
		if d != 0 {
			t.Errorf("%s: derivative = %g at equilibrium, want 0", ComponentNames[j], d)
		}
	}
}

func TestDerivativesHydraulicTerm(t *testing.T) {
	m, err := PetersenMatrix(DefaultStoichParams())
	if err != nil {
		t.Fatal(err)
	}
	cfg := testReactorConfig() // HRT = 1000/50 = 20 d
	s := State{}
	in := State{Ssu: 100}
	var rates [NumProcesses]float64

	dy := Derivatives(&s, &in, rates, TransferRates{}, m, cfg)
	if want := 100.0 / cfg.HRT(); different(dy[iSsu], want, 1e-12) {
		t.Errorf("dSsu/dt = %g, want %g", dy[iSsu], want)
	}
	for j, d := range dy {
		if j != iSsu && d != 0 {
			t.Errorf("%s: derivative = %g, want 0", ComponentNames[j], d)
		}
	}
}

func TestDerivativesReactionTerm(t *testing.T) {
	m, err := PetersenMatrix(DefaultStoichParams())
	if err != nil {
		t.Fatal(err)
	}
	var s, in State
	var rates [NumProcesses]float64
	rates[pDecXsu] = 2 // decay of sugar degraders only

	dy := Derivatives(&s, &in, rates, TransferRates{}, m, testReactorConfig())
	if different(dy[iXsu], -2, 1e-12) {
		t.Errorf("dXsu/dt = %g, want -2", dy[iXsu])
	}
	if different(dy[iXc], 2, 1e-12) {
		t.Errorf("dXc/dt = %g, want 2", dy[iXc])
	}
}

// TestDerivativesStrippingTerm pins the molar-to-state unit conversion of
// the gas stripping term: 16 g COD/mol H2, 64 g COD/mol CH4, and a
// kmol-to-mol factor for inorganic carbon.
func TestDerivativesStrippingTerm(t *testing.T) {
	m, err := PetersenMatrix(DefaultStoichParams())
	if err != nil {
		t.Fatal(err)
	}
	s := typicalDigesterState()
	in := s
	var rates [NumProcesses]float64
	tr := TransferRates{H2: 1e-3, CH4: 2e-3, CO2: 3e-3}

	dy := Derivatives(&s, &in, rates, tr, m, testReactorConfig())
	if different(dy[iSh2], -1e-3*16*1000, 1e-12) {
		t.Errorf("dSh2/dt = %g, want %g", dy[iSh2], -1e-3*16*1000)
	}
	if different(dy[iSch4], -2e-3*64*1000, 1e-12) {
		t.Errorf("dSch4/dt = %g, want %g", dy[iSch4], -2e-3*64*1000)
	}
	if different(dy[iSIC], -3e-3*1000, 1e-12) {
		t.Errorf("dSIC/dt = %g, want %g", dy[iSIC], -3e-3*1000)
	}
	for j, d := range dy {
		if j != iSh2 && j != iSch4 && j != iSIC && d != 0 {
			t.Errorf("%s: derivative = %g, want 0", ComponentNames[j], d)
		}
	}
}

func TestDerivativesFiniteForTypicalState(t *testing.T) {
	m, err := PetersenMatrix(DefaultStoichParams())
	if err != nil {
		t.Fatal(err)
	}
	s := typicalDigesterState()
	in, err := primarySludge().Fractionate(DefaultFractionationCoeffs())
	if err != nil {
		t.Fatal(err)
	}
	pc := DefaultPhysChemParams()
	res := NewPHSolver().Solve(&s, pc)
	sNH3 := FreeAmmonia(s.SIN, res.HIon, pc.KaNH4)
	rates, _ := ProcessRates(&s, DefaultKineticParams(), res.PH, sNH3)
	tr := GasTransfer(&s, GasPhase{CH4: 0.04, CO2: 0.01}, pc, res.HIon, 308.15)

	dy := Derivatives(&s, &in, rates, tr, m, testReactorConfig())
	if len(dy) != NumComponents {
		t.Fatalf("derivative vector length = %d, want %d", len(dy), NumComponents)
	}
	for j, d := range dy {
		if math.IsNaN(d) || math.IsInf(d, 0) {
			t.Errorf("%s: derivative = %g", ComponentNames[j], d)
		}
	}
}
