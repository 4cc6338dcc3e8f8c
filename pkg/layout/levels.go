package layout

import (
	"math"
	"sort"

	"github.com/rackworks/rackplan/pkg/units"
)

// eps is the tolerance for treating two elevations as the same level.
const eps = 1e-9

// Levels is the set of structurally distinct beam-centerline elevations of a
// rack, derived from the roof clearance and the tier stack. All values are
// in meters.
type Levels struct {
	// Roof is the roof-beam centerline elevation.
	Roof float64 `json:"roof"`

	// TierBottoms holds the bottom-beam centerline elevation of each tier,
	// top-to-bottom. Unlike Elevations these are not deduplicated.
	TierBottoms []float64 `json:"tier_bottoms,omitempty"`

	// Elevations is the deduplicated union {Roof} ∪ TierBottoms, sorted
	// ascending. Beams are emitted once per entry: tiers share the beam at a
	// coincident boundary, so a zero-height tier collapses onto its
	// neighbor's level instead of producing a second zero-extent beam.
	Elevations []float64 `json:"elevations"`

	// TotalHeight is the stack height: the sum of tier clear heights plus
	// one beam thickness per interior boundary. Zero when there are no tiers.
	TotalHeight float64 `json:"total_height"`
}

// StackLevels computes the beam-centerline elevations for a tier stack.
// topClearance is in feet, beamSize in inches, tierHeights in feet listed
// top-to-bottom. With no tiers the result holds the roof level only.
func StackLevels(topClearanceFt, beamSizeIn float64, tierHeightsFt []float64) Levels {
	tc := units.FeetToUnits(topClearanceFt)
	beam := units.InchesToUnits(beamSizeIn)

	lv := Levels{Roof: tc - beam/2}

	cursor := tc
	for i, hFt := range tierHeightsFt {
		h := units.FeetToUnits(hFt)
		bottom := cursor - float64(i+1)*beam - h - beam/2
		lv.TierBottoms = append(lv.TierBottoms, bottom)
		lv.TotalHeight += h
		cursor -= h
	}
	if n := len(tierHeightsFt); n > 0 {
		lv.TotalHeight += float64(n-1) * beam
	}

	lv.Elevations = dedupLevels(append([]float64{lv.Roof}, lv.TierBottoms...))
	return lv
}

// dedupLevels sorts elevations ascending and merges entries closer than eps.
func dedupLevels(in []float64) []float64 {
	sort.Float64s(in)
	out := in[:0]
	for _, v := range in {
		if len(out) == 0 || math.Abs(v-out[len(out)-1]) > eps {
			out = append(out, v)
		}
	}
	return out
}

// Top returns the highest elevation in the level set.
func (lv Levels) Top() float64 {
	return lv.Elevations[len(lv.Elevations)-1]
}

// Bottom returns the lowest elevation in the level set.
func (lv Levels) Bottom() float64 {
	return lv.Elevations[0]
}
