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

// The kinetic primitives in this file are stateless and tolerate zero or
// negative inputs by clamping instead of panicking: the integrator may probe
// slightly negative intermediate states.

// Monod returns the saturation factor s/(k+s), clamped to zero when the
// substrate concentration s or the half-saturation constant k is not
// positive.
func Monod(s, k float64) float64 {
	if s <= 0 || k <= 0 {
		return 0
	}
	return s / (k + s)
}

// InhibitionNonCompetitive returns the non-competitive inhibition factor
// k/(k+i) for inhibitor concentration i and inhibition constant k. The
// factor is 1 with no inhibitor and 0.5 at i == k.
func InhibitionNonCompetitive(i, k float64) float64 {
	if k <= 0 {
		return 0
	}
	if i < 0 {
		i = 0
	}
	return k / (k + i)
}

// InhibitionPHLower returns the pH inhibition factor for organisms that are
// only inhibited by low pH (acid formers and acetogens): 1 above the upper
// bound ul, 0 at or below the lower bound ll, and a Hill transition with
// exponent 3 centered at the bound midpoint in between.
func InhibitionPHLower(pH, ul, ll float64) float64 {
	if ul <= ll {
		return 0
	}
	if pH >= ul {
		return 1
	}
	if pH <= ll {
		return 0
	}
	a := cube(pH - ll)
	mid := cube((ul - ll) / 2)
	return a / (a + mid)
}

// InhibitionPHRange returns the pH inhibition factor for organisms with both
// a lower and an upper pH bound (methanogens): 0 outside [ll, ul] and the
// product of a rising and a falling Hill sigmoid (exponent 3 each, centered
// at the bound midpoint) inside. The resulting activity curve is
// bell-shaped with its maximum near the midpoint; the peak value is below
// 1 because both sigmoids are at half saturation there.
func InhibitionPHRange(pH, ul, ll float64) float64 {
	if ul <= ll {
		return 0
	}
	if pH <= ll || pH >= ul {
		return 0
	}
	mid := cube((ul - ll) / 2)
	lo := cube(pH - ll)
	hi := cube(ul - pH)
	return (lo / (lo + mid)) * (hi / (hi + mid))
}

// InhibitionFreeAmmonia returns the non-competitive inhibition factor for
// free ammonia at concentration sNH3 [mol N/m³] with inhibition constant kI.
func InhibitionFreeAmmonia(sNH3, kI float64) float64 {
	return InhibitionNonCompetitive(sNH3, kI)
}

// NitrogenLimitation returns the growth limitation factor for inorganic
// nitrogen availability, a Monod saturation in sIN [mol N/m³].
func NitrogenLimitation(sIN, ks float64) float64 {
	return Monod(sIN, ks)
}

func cube(x float64) float64 { return x * x * x }
