package layout

import (
	"testing"

	"github.com/rackworks/rackplan/pkg/errors"
	"github.com/rackworks/rackplan/pkg/params"
	"github.com/rackworks/rackplan/pkg/units"
)

func testTiers(heights ...float64) []params.Tier {
	tiers := make([]params.Tier, len(heights))
	for i, h := range heights {
		tiers[i] = params.NewTier()
		tiers[i].Height = h
	}
	return tiers
}

func TestResolveEnvelope(t *testing.T) {
	r := testRack()
	tiers := testTiers(2, 2)
	lv := StackLevels(r.TopClearance, r.BeamSize, []float64{2, 2})

	env, err := ResolveEnvelope(1, r, tiers, lv)
	if err != nil {
		t.Fatalf("ResolveEnvelope(1) error = %v", err)
	}

	// Bottom of the tier's clear span sits on the top face of its bottom
	// beam: centerline + beam/2.
	wantBottom := lv.TierBottoms[0] + units.InchesToUnits(r.BeamSize)/2
	if !almostEqual(env.BottomY, wantBottom) {
		t.Errorf("BottomY = %v, want %v", env.BottomY, wantBottom)
	}

	wantClear := units.FeetToUnits(2)
	if !almostEqual(env.ClearHeight, wantClear) {
		t.Errorf("ClearHeight = %v, want %v", env.ClearHeight, wantClear)
	}
	if !almostEqual(env.TopY, env.BottomY+wantClear) {
		t.Errorf("TopY = %v, want BottomY + clear = %v", env.TopY, env.BottomY+wantClear)
	}

	// depth 4 ft minus 2 in post footprint.
	wantDepthClear := units.FeetToUnits(4) - units.InchesToUnits(2)
	if !almostEqual(env.DepthClearance, wantDepthClear) {
		t.Errorf("DepthClearance = %v, want %v", env.DepthClearance, wantDepthClear)
	}
}

func TestResolveEnvelopeClearHeightInchesExact(t *testing.T) {
	// Clamp bounds live in inches; deriving them from the meter value picks
	// up a rounding ulp (2 ft -> 0.6096 m -> 24.000000000000004 in). The
	// inch clear height must come straight from the tier height instead.
	r := testRack()
	tiers := testTiers(2, 7.5)
	lv := StackLevels(r.TopClearance, r.BeamSize, []float64{2, 7.5})

	for i, want := range []float64{24, 90} {
		env, err := ResolveEnvelope(i+1, r, tiers, lv)
		if err != nil {
			t.Fatalf("ResolveEnvelope(%d) error = %v", i+1, err)
		}
		if env.ClearHeightIn != want {
			t.Errorf("tier %d ClearHeightIn = %v, want exactly %v", i+1, env.ClearHeightIn, want)
		}
	}
}

func TestResolveEnvelopeSecondTierBelowFirst(t *testing.T) {
	r := testRack()
	tiers := testTiers(2, 3)
	lv := StackLevels(r.TopClearance, r.BeamSize, []float64{2, 3})

	top, err := ResolveEnvelope(1, r, tiers, lv)
	if err != nil {
		t.Fatalf("ResolveEnvelope(1) error = %v", err)
	}
	second, err := ResolveEnvelope(2, r, tiers, lv)
	if err != nil {
		t.Fatalf("ResolveEnvelope(2) error = %v", err)
	}

	if second.TopY >= top.BottomY+tol {
		t.Errorf("tier 2 top %v not below tier 1 bottom %v", second.TopY, top.BottomY)
	}
	if !almostEqual(second.ClearHeight, units.FeetToUnits(3)) {
		t.Errorf("tier 2 ClearHeight = %v, want %v", second.ClearHeight, units.FeetToUnits(3))
	}
}

func TestResolveEnvelopeOutOfRange(t *testing.T) {
	r := testRack()
	tiers := testTiers(2)
	lv := StackLevels(r.TopClearance, r.BeamSize, []float64{2})

	for _, idx := range []int{0, -1, 2} {
		if _, err := ResolveEnvelope(idx, r, tiers, lv); !errors.Is(err, errors.ErrCodeInvalidTier) {
			t.Errorf("ResolveEnvelope(%d) error = %v, want %v", idx, err, errors.ErrCodeInvalidTier)
		}
	}
}
