package layout

import (
	"github.com/rackworks/rackplan/pkg/errors"
	"github.com/rackworks/rackplan/pkg/params"
	"github.com/rackworks/rackplan/pkg/units"
)

// minDuctExtentIn is the smallest duct width or height, in inches, that
// still counts as real geometry. Anything the envelope cannot fit at this
// size is suppressed rather than emitted degenerate.
const minDuctExtentIn = 1.0

// ClampDuct clamps the enabled duct of the given tier into the ranges its
// envelope allows, mutating the spec in place (source units, inches) and
// recording a warning per adjusted field. When the envelope cannot fit any
// duct at all (e.g. postSize >= depth) the duct is flagged for suppression
// instead of being clamped to zero extent.
func ClampDuct(tier int, d *params.DuctSpec, env Envelope, r params.Rack, rep *Report) {
	if !d.Enabled {
		return
	}

	clearIn := env.ClearHeightIn
	depthClearIn := units.FeetToInches(r.Depth) - r.PostSize

	if clearIn < minDuctExtentIn || depthClearIn < minDuctExtentIn {
		rep.suppress(errors.ErrCodeDegenerateDuct, KindDuct, tier, 0,
			"tier envelope too small for any duct")
		return
	}

	if clamped := clamp(d.Height, minDuctExtentIn, clearIn); clamped != d.Height {
		rep.warn(errors.ErrCodeInvalidInput, field(tier, "duct.height"), tier, d.Height, clamped)
		d.Height = clamped
	}
	if clamped := clamp(d.Width, minDuctExtentIn, depthClearIn); clamped != d.Width {
		rep.warn(errors.ErrCodeInvalidInput, field(tier, "duct.width"), tier, d.Width, clamped)
		d.Width = clamped
	}

	// Offset half-range: depth/2 - postSize/2 - width/2, in inches.
	halfRange := depthClearIn/2 - d.Width/2
	if clamped := clamp(d.Offset, -halfRange, halfRange); clamped != d.Offset {
		rep.warn(errors.ErrCodeInvalidInput, field(tier, "duct.offset"), tier, d.Offset, clamped)
		d.Offset = clamped
	}
}

// PlaceDuct positions the tier's duct inside its envelope: centered on the
// bay axis, resting on the tier floor plus half its height, shifted along
// the depth axis by its offset. It returns false when the duct is disabled
// or would be degenerate; ClampDuct reports the latter case.
func PlaceDuct(tier int, d params.DuctSpec, env Envelope, r params.Rack, lengthM float64) (Primitive, bool) {
	if !d.Enabled {
		return Primitive{}, false
	}

	clearIn := env.ClearHeightIn
	depthClearIn := units.FeetToInches(r.Depth) - r.PostSize
	if clearIn < minDuctExtentIn || depthClearIn < minDuctExtentIn {
		return Primitive{}, false
	}

	h := units.InchesToUnits(d.Height)
	return Primitive{
		Kind: KindDuct,
		Y:    env.BottomY + h/2,
		Z:    units.InchesToUnits(d.Offset),
		DX:   lengthM + 2*overhang,
		DY:   h,
		DZ:   units.InchesToUnits(d.Width),
		Tier: tier,
	}, true
}

// clamp constrains v into [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
