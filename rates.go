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

// c4Epsilon guards the valerate/butyrate rate apportioning against 0/0 when
// both substrates are exhausted.
const c4Epsilon = 1e-6

// InhibitionFactors holds the combined growth inhibition products for the
// four functional groups, plus the individual factors they are built from.
// All factors are in [0, 1].
type InhibitionFactors struct {
	AcidFormers     float64 // sugar and amino acid degraders
	Acetogens       float64 // LCFA, C4 and propionate degraders (before H2 term)
	AcetoclasticMet float64
	HydrogenotMet   float64

	PHAcid     float64
	PHAcetate  float64
	PHHydrogen float64
	Nitrogen   float64
	Ammonia    float64
	H2Fa       float64
	H2C4       float64
	H2Pro      float64
}

// ProcessRates evaluates the 19 reaction rates [g COD/(m³·d) in the
// reference substrate of each process] for the current state, given
// temperature-corrected kinetics, the current pH, and the free ammonia
// concentration [mol N/m³]. Disintegration, hydrolysis, and decay are first
// order and uninhibited; every uptake is rate constant × Monod × biomass ×
// inhibition product, which guarantees an exact zero rate whenever the
// substrate or the biomass pool is zero.
func ProcessRates(s *State, kp KineticParams, pH, sNH3 float64) ([NumProcesses]float64, InhibitionFactors) {
	inh := inhibitionFactors(s, kp, pH, sNH3)
	var r [NumProcesses]float64

	r[pDis] = kp.KDis * math.Max(0, s.Xc)
	r[pHydCh] = kp.KHydCh * math.Max(0, s.Xch)
	r[pHydPr] = kp.KHydPr * math.Max(0, s.Xpr)
	r[pHydLi] = kp.KHydLi * math.Max(0, s.Xli)

	r[pUpSu] = kp.KmSu * Monod(s.Ssu, kp.KsSu) * biomass(s.Xsu) * inh.AcidFormers
	r[pUpAa] = kp.KmAa * Monod(s.Saa, kp.KsAa) * biomass(s.Xaa) * inh.AcidFormers

	r[pUpFa] = kp.KmFa * Monod(s.Sfa, kp.KsFa) * biomass(s.Xfa) * inh.Acetogens * inh.H2Fa

	// Valerate and butyrate degraders share one biomass pool; the pool's
	// activity is apportioned by each substrate's share of the combined
	// C4 concentration.
	c4 := math.Max(0, s.Sva) + math.Max(0, s.Sbu)
	r[pUpVa] = kp.KmC4 * Monod(s.Sva, kp.KsC4) * biomass(s.Xc4) *
		(math.Max(0, s.Sva) / (c4 + c4Epsilon)) * inh.Acetogens * inh.H2C4
	r[pUpBu] = kp.KmC4 * Monod(s.Sbu, kp.KsC4) * biomass(s.Xc4) *
		(math.Max(0, s.Sbu) / (c4 + c4Epsilon)) * inh.Acetogens * inh.H2C4

	r[pUpPro] = kp.KmPro * Monod(s.Spro, kp.KsPro) * biomass(s.Xpro) * inh.Acetogens * inh.H2Pro

	r[pUpAc] = kp.KmAc * Monod(s.Sac, kp.KsAc) * biomass(s.Xac) * inh.AcetoclasticMet
	r[pUpH2] = kp.KmH2 * Monod(s.Sh2, kp.KsH2) * biomass(s.Xh2) * inh.HydrogenotMet

	for i, pool := range []float64{s.Xsu, s.Xaa, s.Xfa, s.Xc4, s.Xpro, s.Xac, s.Xh2} {
		r[pDecXsu+i] = kp.KDec * math.Max(0, pool)
	}
	return r, inh
}

// inhibitionFactors evaluates the individual inhibition terms and combines
// them into the per-group products. Nitrogen limitation applies to every
// uptake; hydrogen inhibition to the acetogenic uptakes; free ammonia
// inhibition to both methanogen groups.
func inhibitionFactors(s *State, kp KineticParams, pH, sNH3 float64) InhibitionFactors {
	var inh InhibitionFactors

	inh.PHAcid = InhibitionPHLower(pH, kp.PHULAcid, kp.PHLLAcid)
	inh.PHAcetate = InhibitionPHRange(pH, kp.PHULAc, kp.PHLLAc)
	inh.PHHydrogen = InhibitionPHRange(pH, kp.PHULH2, kp.PHLLH2)
	inh.Nitrogen = NitrogenLimitation(s.SIN, kp.KsIN)
	inh.Ammonia = InhibitionFreeAmmonia(sNH3, kp.KINH3)
	inh.H2Fa = InhibitionNonCompetitive(s.Sh2, kp.KIh2Fa)
	inh.H2C4 = InhibitionNonCompetitive(s.Sh2, kp.KIh2C4)
	inh.H2Pro = InhibitionNonCompetitive(s.Sh2, kp.KIh2Pro)

	inh.AcidFormers = inh.PHAcid * inh.Nitrogen
	inh.Acetogens = inh.PHAcid * inh.Nitrogen
	inh.AcetoclasticMet = inh.PHAcetate * inh.Nitrogen * inh.Ammonia
	inh.HydrogenotMet = inh.PHHydrogen * inh.Nitrogen * inh.Ammonia
	return inh
}

// RateRecord pairs a process rate with its name for reporting.
type RateRecord struct {
	Name string
	Rate float64 // [g COD/(m³·d)]
}

// RateRecords converts a rate array into named records in process order.
func RateRecords(r [NumProcesses]float64) []RateRecord {
	recs := make([]RateRecord, NumProcesses)
	for i := range recs {
		recs[i] = RateRecord{Name: ProcessNames[i], Rate: r[i]}
	}
	return recs
}

func biomass(x float64) float64 { return math.Max(0, x) }
