package params

import "github.com/rackworks/rackplan/pkg/errors"

// Validate reports hard invariant violations without mutating the aggregate.
//
// The layout engine itself never fails on these — the constraint propagator
// clamps out-of-range values and reports warnings — but editing surfaces use
// Validate to refuse input that cannot describe any physical rack at all.
func (a *Aggregate) Validate() error {
	c := a.Corridor
	if c.Width <= 0 || c.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidParams,
			"corridor width and height must be positive (got %g x %g ft)", c.Width, c.Height)
	}
	if c.CeilingHeight > c.Height {
		return errors.New(errors.ErrCodeInvalidParams,
			"ceiling height %g ft exceeds corridor height %g ft", c.CeilingHeight, c.Height)
	}

	r := a.Rack
	if r.BayCount < 1 {
		return errors.New(errors.ErrCodeInvalidParams, "bay count must be >= 1, got %d", r.BayCount)
	}
	if r.BayWidth <= 0 {
		return errors.New(errors.ErrCodeInvalidParams, "bay width must be positive, got %g ft", r.BayWidth)
	}
	if r.Depth <= 0 {
		return errors.New(errors.ErrCodeInvalidParams, "rack depth must be positive, got %g ft", r.Depth)
	}
	if r.PostSize <= 0 || r.BeamSize <= 0 {
		return errors.New(errors.ErrCodeInvalidParams,
			"post and beam sizes must be positive (got %g in and %g in)", r.PostSize, r.BeamSize)
	}

	if a.TierCount != len(a.Tiers) {
		return errors.New(errors.ErrCodeInvalidTier,
			"tier_count is %d but %d tiers are defined (run Normalize)", a.TierCount, len(a.Tiers))
	}
	for i, t := range a.Tiers {
		if t.Height <= 0 {
			return errors.New(errors.ErrCodeInvalidTier, "tier %d height must be positive, got %g ft", i+1, t.Height)
		}
	}

	return nil
}
