package layout

import (
	"math"
	"reflect"
	"testing"

	"github.com/rackworks/rackplan/pkg/params"
	"github.com/rackworks/rackplan/pkg/units"
)

// scenario returns the aggregate used by the worked examples: 10 ft
// corridor, 4 ft deep rack with 2 in members, two 2 ft tiers.
func scenario() *params.Aggregate {
	a := params.Default()
	a.Corridor.Width = 10
	a.Rack.Depth = 4
	a.Rack.PostSize = 2
	a.Rack.BeamSize = 2
	a.Resize(2)
	return a
}

func TestPropagateClampsDuctOffset(t *testing.T) {
	a := scenario()
	a.Tiers[0].Duct = params.DuctSpec{Enabled: true, Width: 18, Height: 10, Offset: 40}

	rep := Propagate(a)

	// Half-range = 48/2 - 2/2 - 18/2 = 14 in.
	if got := a.Tiers[0].Duct.Offset; got != 14 {
		t.Errorf("duct offset = %v, want 14", got)
	}
	if rep.Clean() {
		t.Error("report is clean, want an offset clamp warning")
	}
}

func TestPropagateIdempotent(t *testing.T) {
	a := scenario()
	a.Tiers[0].Duct = params.DuctSpec{Enabled: true, Width: 60, Height: 30, Offset: 40}
	a.Tiers[1].PipesEnabled = true
	a.Tiers[1].ResizePipes(3)
	a.Tiers[1].Pipes[0].Side = 99
	a.Tiers[1].Pipes[2].Vert = -5

	first, firstRep := Build(a)
	snapshot := a.Clone()

	second, secondRep := Build(a)

	if !reflect.DeepEqual(a, snapshot) {
		t.Error("second pass mutated already-clamped values")
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("second pass emitted different geometry")
	}
	if len(secondRep.Suppressed) != len(firstRep.Suppressed) {
		t.Errorf("suppression count changed between passes: %d then %d",
			len(firstRep.Suppressed), len(secondRep.Suppressed))
	}
	// The second pass finds every value already in range.
	if len(secondRep.Warnings) != 0 {
		t.Errorf("second pass warnings = %v, want none", secondRep.Warnings)
	}
}

func TestPropagateResizesTierArrays(t *testing.T) {
	a := scenario()
	a.Resize(4)
	a.Tiers[0].Height = 3
	a.Tiers[1].Duct.Enabled = true

	// Mutate the count directly, the way an editing surface would, and let
	// propagation reconcile the arrays.
	a.TierCount = 2
	Propagate(a)

	if len(a.Tiers) != 2 {
		t.Fatalf("len(Tiers) = %d, want 2", len(a.Tiers))
	}
	if a.Tiers[0].Height != 3 {
		t.Errorf("tier 1 height = %v, want 3 (preserved)", a.Tiers[0].Height)
	}
	if !a.Tiers[1].Duct.Enabled {
		t.Error("tier 2 duct flag lost on shrink")
	}
}

func TestPropagateClampsUpstream(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*params.Aggregate)
		check  func(*testing.T, *params.Aggregate)
	}{
		{
			"depth exceeds corridor width",
			func(a *params.Aggregate) { a.Rack.Depth = 50 },
			func(t *testing.T, a *params.Aggregate) {
				if a.Rack.Depth != a.Corridor.Width {
					t.Errorf("depth = %v, want corridor width %v", a.Rack.Depth, a.Corridor.Width)
				}
			},
		},
		{
			"top clearance above corridor",
			func(a *params.Aggregate) { a.Rack.TopClearance = 99 },
			func(t *testing.T, a *params.Aggregate) {
				if a.Rack.TopClearance != a.Corridor.Height {
					t.Errorf("topClearance = %v, want %v", a.Rack.TopClearance, a.Corridor.Height)
				}
			},
		},
		{
			"top clearance below ceiling band",
			func(a *params.Aggregate) { a.Rack.TopClearance = 1 },
			func(t *testing.T, a *params.Aggregate) {
				want := a.Corridor.Height - a.Corridor.CeilingHeight
				if a.Rack.TopClearance != want {
					t.Errorf("topClearance = %v, want %v", a.Rack.TopClearance, want)
				}
			},
		},
		{
			"negative member sizes",
			func(a *params.Aggregate) { a.Rack.PostSize = -2; a.Rack.BeamSize = 0 },
			func(t *testing.T, a *params.Aggregate) {
				if a.Rack.PostSize <= 0 || a.Rack.BeamSize <= 0 {
					t.Errorf("sizes = %v, %v, want positive", a.Rack.PostSize, a.Rack.BeamSize)
				}
			},
		},
		{
			"zero bay count",
			func(a *params.Aggregate) { a.Rack.BayCount = 0 },
			func(t *testing.T, a *params.Aggregate) {
				if a.Rack.BayCount != 1 {
					t.Errorf("bayCount = %d, want 1", a.Rack.BayCount)
				}
			},
		},
		{
			"negative tier height",
			func(a *params.Aggregate) { a.Tiers[0].Height = -2 },
			func(t *testing.T, a *params.Aggregate) {
				if a.Tiers[0].Height != 0 {
					t.Errorf("tier 1 height = %v, want 0", a.Tiers[0].Height)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := scenario()
			tt.mutate(a)
			rep := Propagate(a)
			tt.check(t, a)
			if len(rep.Warnings) == 0 {
				t.Error("no warnings reported for an upstream clamp")
			}
		})
	}
}

func TestPropagateNeverFatal(t *testing.T) {
	// A nonsense aggregate still yields a valid (possibly empty) layout.
	a := &params.Aggregate{}
	a.Corridor = params.Corridor{Width: -1, Height: -1}
	a.Rack = params.Rack{BayCount: -5, Depth: -9, PostSize: -1, BeamSize: -1}
	a.TierCount = 3

	prims, rep := Build(a)

	if rep == nil {
		t.Fatal("report is nil")
	}
	if len(prims) == 0 {
		t.Error("expected frame geometry even for clamped-from-nonsense input")
	}
	for _, p := range prims {
		if math.IsNaN(p.X+p.Y+p.Z+p.DX+p.DY+p.DZ+p.Radius) {
			t.Fatalf("primitive with NaN field: %+v", p)
		}
	}
}

func TestBuildContainmentInvariants(t *testing.T) {
	// For any propagated aggregate: every enabled duct fits its tier's clear
	// height, and every pipe body stays inside its tier envelope.
	a := scenario()
	a.Resize(3)
	a.Tiers[0].Duct = params.DuctSpec{Enabled: true, Width: 100, Height: 100, Offset: 100}
	a.Tiers[1].PipesEnabled = true
	a.Tiers[1].ResizePipes(2)
	a.Tiers[1].Pipes[0] = params.PipeSpec{Diam: 10, Side: -80, Vert: 70}
	a.Tiers[1].Pipes[1] = params.PipeSpec{Diam: 2, Side: 80, Vert: -1}
	a.Tiers[2].Height = 1.5
	a.Tiers[2].Duct = params.DuctSpec{Enabled: true, Width: 18, Height: 40, Offset: -3}

	_, rep := Build(a)

	for i, tier := range a.Tiers {
		env := rep.Envelopes[i]
		clearIn := env.ClearHeightIn
		depthClearIn := units.FeetToInches(a.Rack.Depth) - a.Rack.PostSize

		if d := tier.Duct; d.Enabled {
			if d.Height > clearIn+tol {
				t.Errorf("tier %d duct height %v exceeds clear height %v", i+1, d.Height, clearIn)
			}
			if half := depthClearIn/2 - d.Width/2; math.Abs(d.Offset) > half+tol {
				t.Errorf("tier %d duct offset %v exceeds half-range %v", i+1, d.Offset, half)
			}
		}
		if tier.PipesEnabled {
			for j, p := range tier.Pipes {
				if p.Vert < 0 || p.Vert+p.Diam > clearIn+tol {
					t.Errorf("tier %d pipe %d vert %v with diam %v escapes clear height %v",
						i+1, j+1, p.Vert, p.Diam, clearIn)
				}
				if half := depthClearIn/2 - p.Diam/2; math.Abs(p.Side) > half+tol {
					t.Errorf("tier %d pipe %d side %v exceeds half-range %v", i+1, j+1, p.Side, half)
				}
			}
		}
	}
}

func TestBuildEmitsTierGeometry(t *testing.T) {
	a := scenario()
	a.Tiers[0].Duct.Enabled = true
	a.Tiers[1].PipesEnabled = true
	a.Tiers[1].ResizePipes(2)

	prims, _ := Build(a)

	if got := countKind(prims, KindDuct); got != 1 {
		t.Errorf("ducts = %d, want 1", got)
	}
	if got := countKind(prims, KindPipe); got != 2 {
		t.Errorf("pipes = %d, want 2", got)
	}
	if got := countKind(prims, KindPost); got != 10 {
		t.Errorf("posts = %d, want 10", got)
	}
}
