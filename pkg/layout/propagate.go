package layout

import (
	"github.com/rackworks/rackplan/pkg/errors"
	"github.com/rackworks/rackplan/pkg/params"
	"github.com/rackworks/rackplan/pkg/units"
)

// Lower bounds applied when clamping upstream parameters. A negative or zero
// span cannot describe any rack, so the nearest valid value is a small
// positive one.
const (
	minSpanFt   = 0.1 // corridor spans, bay width, depth
	minMemberIn = 0.5 // post and beam sizes
)

// Propagate runs one dependency-ordered re-validation pass over the
// aggregate: per-tier arrays are resized to tierCount, upstream rack and
// corridor parameters are clamped into their hard physical ranges, levels
// and envelopes are recomputed, and every enabled duct and pipe is clamped
// into the freshly computed ranges.
//
// Propagate is the only path that mutates the aggregate, and it is
// idempotent: a second pass with unchanged inputs applies no further clamps
// and yields an identical report. No condition is fatal — the returned
// report always describes a valid (possibly empty) layout.
func Propagate(a *params.Aggregate) *Report {
	rep := &Report{}

	// (1) Structural consistency: per-tier arrays always match tierCount.
	a.Normalize()
	clampUpstream(a, rep)

	// (2) Levels and envelopes for every tier.
	heights := make([]float64, len(a.Tiers))
	for i, t := range a.Tiers {
		heights[i] = t.Height
	}
	rep.Levels = StackLevels(a.Rack.TopClearance, a.Rack.BeamSize, heights)

	rep.Envelopes = make([]Envelope, len(a.Tiers))
	for i := range a.Tiers {
		env, err := ResolveEnvelope(i+1, a.Rack, a.Tiers, rep.Levels)
		if err != nil {
			// Unreachable after Normalize; kept as a guard.
			continue
		}
		rep.Envelopes[i] = env
	}

	// (3) Re-clamp every enabled duct and pipe into the new ranges.
	for i := range a.Tiers {
		ClampDuct(i+1, &a.Tiers[i].Duct, rep.Envelopes[i], a.Rack, rep)
		ClampPipes(i+1, &a.Tiers[i], rep.Envelopes[i], a.Rack, rep)
	}

	return rep
}

// clampUpstream clamps the corridor and rack parameters every resolver
// depends on: positive spans and member sizes, depth within the corridor,
// and the roof clearance within the ceiling band.
func clampUpstream(a *params.Aggregate, rep *Report) {
	c := &a.Corridor
	r := &a.Rack

	clampMin(&c.Width, minSpanFt, "corridor.width", rep)
	clampMin(&c.Height, minSpanFt, "corridor.height", rep)
	if c.CeilingHeight < 0 {
		rep.warn(errors.ErrCodeInvalidParams, "corridor.ceiling_height", 0, c.CeilingHeight, 0)
		c.CeilingHeight = 0
	}
	if c.CeilingHeight > c.Height {
		rep.warn(errors.ErrCodeInvalidParams, "corridor.ceiling_height", 0, c.CeilingHeight, c.Height)
		c.CeilingHeight = c.Height
	}

	if r.BayCount < 1 {
		rep.warn(errors.ErrCodeInvalidParams, "rack.bay_count", 0, float64(r.BayCount), 1)
		r.BayCount = 1
	}
	clampMin(&r.BayWidth, minSpanFt, "rack.bay_width", rep)
	clampMin(&r.Depth, minSpanFt, "rack.depth", rep)
	clampMin(&r.PostSize, minMemberIn, "rack.post_size", rep)
	clampMin(&r.BeamSize, minMemberIn, "rack.beam_size", rep)

	if r.Depth > c.Width {
		rep.warn(errors.ErrCodeInvalidParams, "rack.depth", 0, r.Depth, c.Width)
		r.Depth = c.Width
	}

	// topClearance lives in [height - ceilingHeight, height].
	lo, hi := c.Height-c.CeilingHeight, c.Height
	if clamped := clamp(r.TopClearance, lo, hi); clamped != r.TopClearance {
		rep.warn(errors.ErrCodeInvalidParams, "rack.top_clearance", 0, r.TopClearance, clamped)
		r.TopClearance = clamped
	}

	// Tier heights must not be negative; a zero height collapses the tier's
	// bottom level onto its neighbor, which the level dedup absorbs.
	for i := range a.Tiers {
		if a.Tiers[i].Height < 0 {
			rep.warn(errors.ErrCodeInvalidTier, field(i+1, "height"), i+1, a.Tiers[i].Height, 0)
			a.Tiers[i].Height = 0
		}
	}
}

// clampMin clamps *v to at least lo, recording a warning on change.
func clampMin(v *float64, lo float64, fieldName string, rep *Report) {
	if *v < lo {
		rep.warn(errors.ErrCodeInvalidParams, fieldName, 0, *v, lo)
		*v = lo
	}
}

// Build is the rebuild trigger: callers invoke it after mutating the
// aggregate to obtain a fresh geometry list. It runs a full propagation
// pass, assembles the frame, and places every enabled duct and pipe, in one
// deterministic order (frame, then per tier duct and pipes, top to bottom).
func Build(a *params.Aggregate) ([]Primitive, *Report) {
	rep := Propagate(a)
	return Assemble(a, rep), rep
}

// Assemble emits geometry from an aggregate that has already been resolved
// by Propagate with the given report. Callers that have not propagated
// should use Build instead.
func Assemble(a *params.Aggregate, rep *Report) []Primitive {
	length := float64(a.Rack.BayCount) * units.FeetToUnits(a.Rack.BayWidth)

	prims := AssembleFrame(rep.Levels, a.Rack)
	for i := range a.Tiers {
		env := rep.Envelopes[i]
		if p, ok := PlaceDuct(i+1, a.Tiers[i].Duct, env, a.Rack, length); ok {
			prims = append(prims, p)
		}
		prims = append(prims, PlacePipes(i+1, a.Tiers[i], env, a.Rack, length)...)
	}

	return prims
}
