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
	"time"

	"github.com/GaryBoone/GoStats/stats"
	"gonum.org/v1/gonum/floats"
)

// Record is one sampled snapshot of the reactor.
type Record struct {
	Time float64 `desc:"Simulation time" units:"d"`

	State State
	Gas   GasPhase

	PH         float64
	Alkalinity float64 `desc:"Total alkalinity" units:"eq/m³"`
	TotalVFA   float64 `desc:"Total volatile fatty acids" units:"g COD/m³"`
	Biogas     Biogas

	Rates      [NumProcesses]float64 `desc:"Process rates" units:"g COD/(m³·d)"`
	Inhibition InhibitionFactors
}

// EffluentQuality aggregates the final liquid state into the quantities a
// plant operator reports.
type EffluentQuality struct {
	TotalCOD       float64 `desc:"Total COD" units:"g COD/m³"`
	SolubleCOD     float64 `desc:"Soluble COD" units:"g COD/m³"`
	ParticulateCOD float64 `desc:"Particulate COD" units:"g COD/m³"`

	TotalVFA   float64 `desc:"Total volatile fatty acids" units:"g COD/m³"`
	Acetate    float64 `units:"g COD/m³"`
	Propionate float64 `units:"g COD/m³"`
	Butyrate   float64 `units:"g COD/m³"`
	Valerate   float64 `units:"g COD/m³"`

	PH                float64
	Alkalinity        float64 `desc:"Total alkalinity" units:"eq/m³"`
	InorganicNitrogen float64 `desc:"Ammonia nitrogen" units:"mol N/m³"`
}

// PerformanceMetrics are the whole-run process indicators.
type PerformanceMetrics struct {
	CODRemoval           float64 `desc:"COD removal efficiency" units:"%"`
	OrganicLoadingRate   float64 `desc:"Organic loading rate" units:"kg COD/(m³·d)"`
	SpecificMethaneYield float64 `desc:"Methane per COD removed" units:"Nm³/kg COD"`
	VolumetricGasRate    float64 `desc:"Gas production per reactor volume" units:"m³/(m³·d)"`
	BiogasFlowStd        float64 `desc:"Final biogas flow" units:"Nm³/d"`
	MethaneContent       float64 `desc:"Final methane content" units:"%"`
	EnergyPotential      float64 `desc:"Final energy potential" units:"kWh/d"`
}

// Diagnostics classifies the run qualitatively and collects every anomaly
// that was recovered locally instead of aborting the simulation.
type Diagnostics struct {
	PHStability      string
	VFAAccumulation  string
	PHSolverFailures int
	Warnings         []string
}

// ExecutionStats describes the numerical work a run performed.
type ExecutionStats struct {
	Steps          int
	RHSEvaluations int
	Integrator     string
	Converged      bool

	Walltime         time.Duration
	StepWalltimeMean time.Duration
	StepWalltimeMax  time.Duration
}

// Results is everything a run produces: the sampled time series for
// charting, the final state, and the aggregated quality, performance, and
// diagnostic summaries. All fields are plain data.
type Results struct {
	TimeSeries []Record

	FinalState State
	FinalGas   GasPhase

	Effluent    EffluentQuality
	Performance PerformanceMetrics
	Diagnostics Diagnostics
	Stats       ExecutionStats
}

// pHVariabilityWarn is the sampled pH standard deviation above which the
// run is flagged as unsteady.
const pHVariabilityWarn = 0.25

// phStabilityBands classify the mean operating pH, tightest band first.
var phStabilityBands = []struct {
	lo, hi float64
	label  string
}{
	{6.8, 7.5, "stable"},
	{6.5, 7.8, "marginal"},
}

// vfaAccumulationBands classify the final total VFA concentration
// [g COD/m³] by its upper threshold.
var vfaAccumulationBands = []struct {
	max   float64
	label string
}{
	{500, "low"},
	{1500, "moderate"},
	{4000, "elevated"},
	{math.Inf(1), "accumulating"},
}

func classifyPH(pH float64) string {
	for _, band := range phStabilityBands {
		if pH >= band.lo && pH <= band.hi {
			return band.label
		}
	}
	return "unstable"
}

func classifyVFA(vfa float64) string {
	for _, band := range vfaAccumulationBands {
		if vfa <= band.max {
			return band.label
		}
	}
	return "accumulating"
}

// summarize fills the effluent, performance, and diagnostic summaries from
// the final state and the sampled series.
func (r *Results) summarize(cfg *SimulationConfig, pc PhysChemParams) {
	final := &r.FinalState
	pH := r.finalPH()

	r.Effluent = EffluentQuality{
		TotalCOD:       final.TotalCOD(),
		SolubleCOD:     final.SolubleCOD(),
		ParticulateCOD: final.ParticulateCOD(),

		TotalVFA:   final.TotalVFA(),
		Acetate:    final.Sac,
		Propionate: final.Spro,
		Butyrate:   final.Sbu,
		Valerate:   final.Sva,

		PH:                pH,
		Alkalinity:        Alkalinity(final, pH, pc),
		InorganicNitrogen: final.SIN,
	}

	codIn := cfg.Influent.TotalCOD()
	codOut := final.TotalCOD()
	if codIn > 0 {
		r.Performance.CODRemoval = (codIn - codOut) / codIn * 100
	}
	// g COD/m³ × m³/d / m³ → kg COD/(m³·d).
	r.Performance.OrganicLoadingRate = cfg.Reactor.Inflow * codIn / cfg.Reactor.LiquidVolume / 1000

	if n := len(r.TimeSeries); n > 0 {
		last := r.TimeSeries[n-1].Biogas
		r.Performance.BiogasFlowStd = last.FlowStd
		r.Performance.MethaneContent = last.CH4Percent
		r.Performance.EnergyPotential = last.Energy
		r.Performance.VolumetricGasRate = last.Flow / cfg.Reactor.LiquidVolume

		if codRemovedLoad := cfg.Reactor.Inflow * (codIn - codOut) / 1000; codRemovedLoad > 0 {
			r.Performance.SpecificMethaneYield = last.MethaneFlowStd / codRemovedLoad
		}
	}

	r.diagnose()
}

// diagnose classifies the run and emits warnings for recovered anomalies.
func (r *Results) diagnose() {
	var pHStats stats.Stats
	flows := make([]float64, len(r.TimeSeries))
	for i, rec := range r.TimeSeries {
		pHStats.Update(rec.PH)
		flows[i] = rec.Biogas.FlowStd
	}

	r.Diagnostics.PHStability = classifyPH(pHStats.Mean())
	r.Diagnostics.VFAAccumulation = classifyVFA(r.FinalState.TotalVFA())

	if pHStats.Count() > 1 {
		if sd := pHStats.SampleStandardDeviation(); sd > pHVariabilityWarn {
			r.Diagnostics.Warnings = append(r.Diagnostics.Warnings,
				fmt.Sprintf("pH standard deviation %.2f across samples; reactor is not at steady operation", sd))
		}
	}
	if len(flows) > 0 && floats.Sum(flows) == 0 {
		r.Diagnostics.Warnings = append(r.Diagnostics.Warnings,
			"no biogas produced over the whole run")
	}
	if r.Diagnostics.PHSolverFailures > 0 {
		r.Diagnostics.Warnings = append(r.Diagnostics.Warnings,
			fmt.Sprintf("pH solver fell back to a clamped estimate %d times", r.Diagnostics.PHSolverFailures))
	}
}

// finalPH returns the pH of the last sample, or neutral when the series is
// empty.
func (r *Results) finalPH() float64 {
	if n := len(r.TimeSeries); n > 0 {
		return r.TimeSeries[n-1].PH
	}
	return 7
}
