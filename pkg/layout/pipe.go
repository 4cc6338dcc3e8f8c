package layout

import (
	"fmt"

	"github.com/rackworks/rackplan/pkg/errors"
	"github.com/rackworks/rackplan/pkg/params"
	"github.com/rackworks/rackplan/pkg/units"
)

// ClampPipes clamps every pipe of the tier into the ranges its envelope
// allows, mutating the specs in place (inches). Each pipe is independently
// sized: the side-offset half-range uses that pipe's own diameter, and the
// vertical offset is held to [0, clearHeight - diameter] so the pipe body
// never crosses a tier boundary. A pipe whose diameter exceeds the clear
// height is clamped to the tier floor and flagged non-conforming; a pipe
// with no positive diameter left is suppressed.
func ClampPipes(tier int, t *params.Tier, env Envelope, r params.Rack, rep *Report) {
	if !t.PipesEnabled {
		return
	}

	clearIn := env.ClearHeightIn
	depthClearIn := units.FeetToInches(r.Depth) - r.PostSize

	for i := range t.Pipes {
		p := &t.Pipes[i]
		name := fmt.Sprintf("pipe[%d]", i+1)

		if p.Diam <= 0 || depthClearIn <= 0 {
			rep.suppress(errors.ErrCodeDegeneratePipe, KindPipe, tier, i+1,
				"no positive diameter fits the envelope")
			continue
		}

		halfRange := depthClearIn/2 - p.Diam/2
		if halfRange < 0 {
			halfRange = 0
		}
		if clamped := clamp(p.Side, -halfRange, halfRange); clamped != p.Side {
			rep.warn(errors.ErrCodeInvalidInput, field(tier, name+".side"), tier, p.Side, clamped)
			p.Side = clamped
		}

		maxVert := clearIn - p.Diam
		if maxVert < 0 {
			// Diameter >= clear height: the pipe cannot conform; rest it on
			// the tier floor and report.
			if p.Vert != 0 {
				rep.warn(errors.ErrCodeInvalidInput, field(tier, name+".vert"), tier, p.Vert, 0)
				p.Vert = 0
			}
			rep.flag(errors.ErrCodeDegeneratePipe, field(tier, name+".diam"), tier, p.Diam,
				fmt.Sprintf("diameter %g in exceeds tier clear height %g in", p.Diam, clearIn))
			continue
		}
		if clamped := clamp(p.Vert, 0, maxVert); clamped != p.Vert {
			rep.warn(errors.ErrCodeInvalidInput, field(tier, name+".vert"), tier, p.Vert, clamped)
			p.Vert = clamped
		}
	}
}

// PlacePipes positions the tier's pipes: cylinders along the bay axis, each
// at its side offset and its vertical offset above the tier floor. The
// absolute center height gets a final clamp into
// [bottomY + radius, topY - radius], defending against rounding at the tier
// boundary. Pipes without positive diameter are skipped; ClampPipes reports
// them.
func PlacePipes(tier int, t params.Tier, env Envelope, r params.Rack, lengthM float64) []Primitive {
	if !t.PipesEnabled || len(t.Pipes) == 0 {
		return nil
	}

	depthClearIn := units.FeetToInches(r.Depth) - r.PostSize
	prims := make([]Primitive, 0, len(t.Pipes))
	for i, p := range t.Pipes {
		if p.Diam <= 0 || depthClearIn <= 0 {
			continue
		}

		radius := units.InchesToUnits(p.Diam) / 2
		y := env.BottomY + units.InchesToUnits(p.Vert) + radius
		if lo, hi := env.BottomY+radius, env.TopY-radius; lo <= hi {
			y = clamp(y, lo, hi)
		}

		prims = append(prims, Primitive{
			Kind:   KindPipe,
			Y:      y,
			Z:      units.InchesToUnits(p.Side),
			DX:     lengthM + 2*overhang,
			Radius: radius,
			Tier:   tier,
			Pipe:   i + 1,
		})
	}
	return prims
}
