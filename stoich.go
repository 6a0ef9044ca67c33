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

import "gonum.org/v1/gonum/mat"

// Indices of the biochemical processes in rate arrays and Petersen matrix
// rows.
const (
	pDis int = iota // disintegration of composites
	pHydCh
	pHydPr
	pHydLi
	pUpSu
	pUpAa
	pUpFa
	pUpVa
	pUpBu
	pUpPro
	pUpAc
	pUpH2
	pDecXsu
	pDecXaa
	pDecXfa
	pDecXc4
	pDecXpro
	pDecXac
	pDecXh2

	// NumProcesses is the number of biochemical processes.
	NumProcesses int = iota
)

// ProcessNames are the names of the biochemical processes, indexed by the
// process constants above.
var ProcessNames = []string{
	"disintegration",
	"hydrolysis of carbohydrates",
	"hydrolysis of proteins",
	"hydrolysis of lipids",
	"uptake of sugars",
	"uptake of amino acids",
	"uptake of LCFA",
	"uptake of valerate",
	"uptake of butyrate",
	"uptake of propionate",
	"uptake of acetate",
	"uptake of hydrogen",
	"decay of sugar degraders",
	"decay of amino acid degraders",
	"decay of LCFA degraders",
	"decay of C4 degraders",
	"decay of propionate degraders",
	"decay of acetate degraders",
	"decay of hydrogen degraders",
}

// PetersenMatrix builds the stoichiometric coefficient matrix: row i, column
// j is the yield of component j in process i [g COD or mol per g COD of
// reference substrate]. The inorganic carbon and inorganic nitrogen columns
// are not tabulated; they are computed to close each row's elemental
// balance, so carbon and nitrogen are conserved by construction. The matrix
// is independent of temperature and is built once per parameter set.
func PetersenMatrix(p StoichParams) (*mat.Dense, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	m := mat.NewDense(NumProcesses, NumComponents, nil)

	// Disintegration of composites into substrate classes and inerts.
	m.Set(pDis, iXc, -1)
	m.Set(pDis, iSI, p.FSIXc)
	m.Set(pDis, iXch, p.FChXc)
	m.Set(pDis, iXpr, p.FPrXc)
	m.Set(pDis, iXli, p.FLiXc)
	m.Set(pDis, iXI, p.FXIXc)

	// Hydrolysis, 1:1 to the corresponding soluble monomer.
	m.Set(pHydCh, iXch, -1)
	m.Set(pHydCh, iSsu, 1)
	m.Set(pHydPr, iXpr, -1)
	m.Set(pHydPr, iSaa, 1)
	m.Set(pHydLi, iXli, -1)
	m.Set(pHydLi, iSfa, 1)

	// Uptake: one unit of substrate becomes Y units of biomass and (1-Y)
	// units of catabolic products split by the literature fractions.
	m.Set(pUpSu, iSsu, -1)
	m.Set(pUpSu, iSbu, (1-p.YSu)*p.FBuSu)
	m.Set(pUpSu, iSpro, (1-p.YSu)*p.FProSu)
	m.Set(pUpSu, iSac, (1-p.YSu)*p.FAcSu)
	m.Set(pUpSu, iSh2, (1-p.YSu)*p.FH2Su)
	m.Set(pUpSu, iXsu, p.YSu)

	m.Set(pUpAa, iSaa, -1)
	m.Set(pUpAa, iSva, (1-p.YAa)*p.FVaAa)
	m.Set(pUpAa, iSbu, (1-p.YAa)*p.FBuAa)
	m.Set(pUpAa, iSpro, (1-p.YAa)*p.FProAa)
	m.Set(pUpAa, iSac, (1-p.YAa)*p.FAcAa)
	m.Set(pUpAa, iSh2, (1-p.YAa)*p.FH2Aa)
	m.Set(pUpAa, iXaa, p.YAa)

	m.Set(pUpFa, iSfa, -1)
	m.Set(pUpFa, iSac, (1-p.YFa)*p.FAcFa)
	m.Set(pUpFa, iSh2, (1-p.YFa)*p.FH2Fa)
	m.Set(pUpFa, iXfa, p.YFa)

	m.Set(pUpVa, iSva, -1)
	m.Set(pUpVa, iSac, (1-p.YC4)*p.FAcVa)
	m.Set(pUpVa, iSpro, (1-p.YC4)*p.FProVa)
	m.Set(pUpVa, iSh2, (1-p.YC4)*p.FH2Va)
	m.Set(pUpVa, iXc4, p.YC4)

	m.Set(pUpBu, iSbu, -1)
	m.Set(pUpBu, iSac, (1-p.YC4)*p.FAcBu)
	m.Set(pUpBu, iSh2, (1-p.YC4)*p.FH2Bu)
	m.Set(pUpBu, iXc4, p.YC4)

	m.Set(pUpPro, iSpro, -1)
	m.Set(pUpPro, iSac, (1-p.YPro)*p.FAcPro)
	m.Set(pUpPro, iSh2, (1-p.YPro)*p.FH2Pro)
	m.Set(pUpPro, iXpro, p.YPro)

	m.Set(pUpAc, iSac, -1)
	m.Set(pUpAc, iSch4, 1-p.YAc)
	m.Set(pUpAc, iXac, p.YAc)

	m.Set(pUpH2, iSh2, -1)
	m.Set(pUpH2, iSch4, 1-p.YH2)
	m.Set(pUpH2, iXh2, p.YH2)

	// Decay returns each biomass pool to the composite pool.
	for i, pool := range []int{iXsu, iXaa, iXfa, iXc4, iXpro, iXac, iXh2} {
		m.Set(pDecXsu+i, pool, -1)
		m.Set(pDecXsu+i, iXc, 1)
	}

	// Close the elemental balances.
	cc := carbonContents(p)
	nc := nitrogenContents(p)
	for i := 0; i < NumProcesses; i++ {
		var carbon, nitrogen float64
		for j := 0; j < NumComponents; j++ {
			carbon += cc[j] * m.At(i, j)
			nitrogen += nc[j] * m.At(i, j)
		}
		m.Set(i, iSIC, -carbon)
		m.Set(i, iSIN, -nitrogen)
	}
	return m, nil
}

// carbonContents returns the carbon content of each component [mol C/g COD];
// the inorganic carbon pool itself is mol C and is excluded from the closure
// sum.
func carbonContents(p StoichParams) [NumComponents]float64 {
	var c [NumComponents]float64
	c[iSsu] = p.CSu
	c[iSaa] = p.CAa
	c[iSfa] = p.CFa
	c[iSva] = p.CVa
	c[iSbu] = p.CBu
	c[iSpro] = p.CPro
	c[iSac] = p.CAc
	c[iSch4] = p.CCh4
	c[iSI] = p.CSI
	c[iXc] = p.CXc
	c[iXch] = p.CCh
	c[iXpr] = p.CPr
	c[iXli] = p.CLi
	c[iXI] = p.CXI
	for _, pool := range []int{iXsu, iXaa, iXfa, iXc4, iXpro, iXac, iXh2} {
		c[pool] = p.CBiom
	}
	return c
}

// nitrogenContents returns the nitrogen content of each component
// [mol N/g COD].
func nitrogenContents(p StoichParams) [NumComponents]float64 {
	var n [NumComponents]float64
	n[iSaa] = p.NAa
	n[iXpr] = p.NAa
	n[iSI] = p.NI
	n[iXI] = p.NI
	n[iXc] = p.NXc
	for _, pool := range []int{iXsu, iXaa, iXfa, iXc4, iXpro, iXac, iXh2} {
		n[pool] = p.NBiom
	}
	return n
}
