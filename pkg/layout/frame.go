package layout

import (
	"github.com/rackworks/rackplan/pkg/params"
	"github.com/rackworks/rackplan/pkg/units"
)

// AssembleFrame emits the rack skeleton for the given level set: one
// continuous post per bay boundary and depth row, longitudinal rails at the
// structural extremes, and a transverse beam at every level per bay
// boundary.
//
// bayCount >= 1 and depth > 0 are preconditions enforced upstream by the
// constraint propagator.
func AssembleFrame(lv Levels, r params.Rack) []Primitive {
	var (
		bayWidth = units.FeetToUnits(r.BayWidth)
		depth    = units.FeetToUnits(r.Depth)
		post     = units.InchesToUnits(r.PostSize)
		beam     = units.InchesToUnits(r.BeamSize)
		length   = float64(r.BayCount) * bayWidth
	)

	prims := make([]Primitive, 0, 2*(r.BayCount+1)+2+len(lv.Elevations)*(r.BayCount+1))

	// Posts: (bayCount+1) boundaries x front/back rows, spanning floor to
	// the roof level.
	postTop := lv.Roof
	for i := 0; i <= r.BayCount; i++ {
		x := -length/2 + float64(i)*bayWidth
		for _, zSign := range []float64{-1, 1} {
			prims = append(prims, Primitive{
				Kind: KindPost,
				X:    x,
				Y:    postTop / 2,
				Z:    zSign * depth / 2,
				DX:   post,
				DY:   postTop,
				DZ:   post,
			})
		}
	}

	// Longitudinal rails only at the structural extremes; interior tier
	// boundaries rely solely on transverse beams.
	extremes := []float64{lv.Bottom()}
	if lv.Top() != lv.Bottom() {
		extremes = append(extremes, lv.Top())
	}
	for _, level := range extremes {
		for _, zSign := range []float64{-1, 1} {
			prims = append(prims, Primitive{
				Kind: KindLongBeam,
				Y:    level,
				Z:    zSign * depth / 2,
				DX:   length,
				DY:   beam,
				DZ:   beam,
			})
		}
	}

	// Transverse beams at every level, once per bay boundary.
	for _, level := range lv.Elevations {
		for i := 0; i <= r.BayCount; i++ {
			prims = append(prims, Primitive{
				Kind: KindTransBeam,
				X:    -length/2 + float64(i)*bayWidth,
				Y:    level,
				DX:   beam,
				DY:   beam,
				DZ:   depth,
			})
		}
	}

	return prims
}
