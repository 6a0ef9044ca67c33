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
	"runtime"
	"sync"
)

// SweepResult pairs one sweep member's results with its position in the
// input slice.
type SweepResult struct {
	Index   int
	Results *Results
	Err     error
}

// Sweep runs the given configurations concurrently, one simulation per
// configuration, and returns the results in input order. Runs are fully
// independent; each gets its own copies of the parameter and state
// values, so no synchronization beyond the final join is needed. A
// sensitivity study varies one parameter across the configs and sweeps.
func Sweep(configs []SimulationConfig) []SweepResult {
	nprocs := runtime.GOMAXPROCS(0)
	out := make([]SweepResult, len(configs))

	var wg sync.WaitGroup
	wg.Add(nprocs)
	for p := 0; p < nprocs; p++ {
		go func(p int) {
			defer wg.Done()
			for i := p; i < len(configs); i += nprocs {
				res, err := Run(configs[i])
				out[i] = SweepResult{Index: i, Results: res, Err: err}
			}
		}(p)
	}
	wg.Wait()
	return out
}
