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

// TransferRates holds the liquid-to-headspace mass transfer rates of the
// three transferable gases [kmol/(m³ liquid·d)]. Rates can be negative when
// the headspace partial pressure exceeds the liquid saturation
// concentration (gas redissolving).
type TransferRates struct {
	H2  float64
	CH4 float64
	CO2 float64
}

// Total returns the net molar transfer rate [kmol/(m³·d)].
func (t TransferRates) Total() float64 { return t.H2 + t.CH4 + t.CO2 }

// GasTransfer computes the Henry's-law transfer rate kLa·(Cliq − KH·p) for
// each gas. Partial pressures come from the headspace concentrations via
// the ideal gas law at the reactor temperature; the dissolved CO2
// concentration is the undissociated fraction of total inorganic carbon at
// the current hydrogen ion concentration hIon [mol/L].
func GasTransfer(s *State, g GasPhase, pc PhysChemParams, hIon, temperature float64) TransferRates {
	pH2 := g.H2 * RBar * temperature
	pCH4 := g.CH4 * RBar * temperature
	pCO2 := g.CO2 * RBar * temperature

	cH2 := math.Max(0, s.Sh2) / codH2 / 1000    // [kmol/m³]
	cCH4 := math.Max(0, s.Sch4) / codCH4 / 1000 // [kmol/m³]
	cCO2 := math.Max(0, s.SIC) / 1000 * hIon / (hIon + pc.KaCO2)

	return TransferRates{
		H2:  pc.KLa * (cH2 - pc.KHh2*pH2),
		CH4: pc.KLa * (cCH4 - pc.KHch4*pCH4),
		CO2: pc.KLa * (cCO2 - pc.KHco2*pCO2),
	}
}

// Biogas describes the headspace off-gas stream derived from the current
// transfer rates.
type Biogas struct {
	Flow    float64 `desc:"Volumetric flow at operating conditions" units:"m³/d"`
	FlowStd float64 `desc:"Volumetric flow at standard conditions" units:"Nm³/d"`

	CH4Percent float64
	CO2Percent float64
	H2Percent  float64

	MethaneFlowStd float64 `desc:"Methane flow at standard conditions" units:"Nm³/d"`
	Energy         float64 `desc:"Energy potential of the methane" units:"kWh/d"`
}

// BiogasProduction converts the molar transfer rates into a volumetric
// biogas stream at operating and standard conditions, its composition, and
// its energy potential. Only positive transfer contributes to the off-gas;
// with zero total flow the composition is reported as 0%, not NaN.
func BiogasProduction(tr TransferRates, cfg ReactorConfig) Biogas {
	qH2 := math.Max(0, tr.H2) * cfg.LiquidVolume
	qCH4 := math.Max(0, tr.CH4) * cfg.LiquidVolume
	qCO2 := math.Max(0, tr.CO2) * cfg.LiquidVolume
	total := qH2 + qCH4 + qCO2 // [kmol/d]

	var b Biogas
	if total <= 0 {
		return b
	}
	b.Flow = total * RBar * cfg.Temperature / cfg.Pressure
	b.FlowStd = b.Flow * (tStd / cfg.Temperature) * (cfg.Pressure / pStd)

	b.CH4Percent = qCH4 / total * 100
	b.CO2Percent = qCO2 / total * 100
	b.H2Percent = qH2 / total * 100

	b.MethaneFlowStd = b.FlowStd * b.CH4Percent / 100
	b.Energy = b.MethaneFlowStd * ch4EnergyDensity
	return b
}

// Update advances the headspace concentrations by one time step dt [d]:
// transfer from the liquid dilutes into the headspace volume while the
// off-gas flow qGas [m³/d] vents it. Concentrations are clamped
// non-negative.
func (g *GasPhase) Update(tr TransferRates, cfg ReactorConfig, qGas, dt float64) {
	vRatio := cfg.LiquidVolume / cfg.HeadspaceVolume
	g.H2 = math.Max(0, g.H2+dt*(tr.H2*vRatio-g.H2*qGas/cfg.HeadspaceVolume))
	g.CH4 = math.Max(0, g.CH4+dt*(tr.CH4*vRatio-g.CH4*qGas/cfg.HeadspaceVolume))
	g.CO2 = math.Max(0, g.CO2+dt*(tr.CO2*vRatio-g.CO2*qGas/cfg.HeadspaceVolume))
}
