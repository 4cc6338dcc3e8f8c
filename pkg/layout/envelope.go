package layout

import (
	"github.com/rackworks/rackplan/pkg/errors"
	"github.com/rackworks/rackplan/pkg/params"
	"github.com/rackworks/rackplan/pkg/units"
)

// Envelope is the usable space inside one tier: the clear vertical span
// between the top face of the tier's bottom beam and the tier top, and the
// depth-wise clearance between the post footprints. Values are in meters,
// except ClearHeightIn which carries the clear height in inches converted
// directly from the tier height so inch-domain clamps stay exact.
type Envelope struct {
	Tier           int     `json:"tier"` // 1-based
	BottomY        float64 `json:"bottom_y"`
	TopY           float64 `json:"top_y"`
	ClearHeight    float64 `json:"clear_height"`
	ClearHeightIn  float64 `json:"clear_height_in"`
	DepthClearance float64 `json:"depth_clearance"`
}

// ResolveEnvelope computes the envelope for the given 1-based tier index.
// It must be recomputed whenever topClearance, beamSize, tierHeights, depth,
// or postSize change; the constraint propagator does this for every tier on
// each pass.
func ResolveEnvelope(tier int, r params.Rack, tiers []params.Tier, lv Levels) (Envelope, error) {
	if tier < 1 || tier > len(tiers) {
		return Envelope{}, errors.New(errors.ErrCodeInvalidTier,
			"tier index %d out of range 1..%d", tier, len(tiers))
	}

	beam := units.InchesToUnits(r.BeamSize)
	clear := units.FeetToUnits(tiers[tier-1].Height)
	bottom := lv.TierBottoms[tier-1] + beam/2 // top face of the bottom beam

	return Envelope{
		Tier:           tier,
		BottomY:        bottom,
		TopY:           bottom + clear,
		ClearHeight:    clear,
		ClearHeightIn:  units.FeetToInches(tiers[tier-1].Height),
		DepthClearance: units.FeetToUnits(r.Depth) - units.InchesToUnits(r.PostSize),
	}, nil
}
