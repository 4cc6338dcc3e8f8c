// Package params defines the parameter aggregate describing a corridor
// storage rack: the corridor shell, the rack frame, and the per-tier duct and
// pipe specs.
//
// The aggregate is a single owned structure. Editing surfaces (CLI flags, the
// interactive editor) mutate it in place and then invoke the layout engine,
// which reads it and clamps dependent values through the constraint
// propagator — the engine never keeps an independent copy, so displayed and
// computed state cannot diverge.
//
// Units follow shop-drawing convention: corridor and tier dimensions are in
// feet, member and duct/pipe dimensions are in inches. The layout engine
// converts to meters internally via pkg/units.
package params

// Corridor describes the enclosing corridor shell. All fields are in feet.
type Corridor struct {
	Width         float64 `toml:"width" json:"width"`
	Height        float64 `toml:"height" json:"height"`
	CeilingHeight float64 `toml:"ceiling_height" json:"ceiling_height"`
	CeilingDepth  float64 `toml:"ceiling_depth" json:"ceiling_depth"`
	SlabDepth     float64 `toml:"slab_depth" json:"slab_depth"`
	WallThickness float64 `toml:"wall_thickness" json:"wall_thickness"`
}

// Rack describes the rack frame skeleton.
// BayWidth, Depth and TopClearance are in feet; PostSize and BeamSize are in
// inches. TopClearance is the elevation of the roof-beam centerline.
type Rack struct {
	BayCount     int     `toml:"bay_count" json:"bay_count"`
	BayWidth     float64 `toml:"bay_width" json:"bay_width"`
	Depth        float64 `toml:"depth" json:"depth"`
	PostSize     float64 `toml:"post_size" json:"post_size"`
	BeamSize     float64 `toml:"beam_size" json:"beam_size"`
	TopClearance float64 `toml:"top_clearance" json:"top_clearance"`
}

// DuctSpec describes the optional duct of one tier. Dimensions are in inches;
// Offset is measured along the depth axis from the rack centerline.
type DuctSpec struct {
	Enabled bool    `toml:"enabled" json:"enabled"`
	Width   float64 `toml:"width" json:"width"`
	Height  float64 `toml:"height" json:"height"`
	Offset  float64 `toml:"offset" json:"offset"`
}

// PipeSpec describes one pipe run inside a tier. Dimensions are in inches.
// Side is the depth-axis offset from the rack centerline; Vert is the gap
// between the tier floor and the bottom of the pipe body.
type PipeSpec struct {
	Diam float64 `toml:"diam" json:"diam"`
	Side float64 `toml:"side" json:"side"`
	Vert float64 `toml:"vert" json:"vert"`
}

// Tier is one horizontal storage level, indexed top-to-bottom.
// Height is the clear height in feet, excluding beam thickness.
type Tier struct {
	Height       float64    `toml:"height" json:"height"`
	Duct         DuctSpec   `toml:"duct" json:"duct"`
	PipesEnabled bool       `toml:"pipes_enabled" json:"pipes_enabled"`
	Pipes        []PipeSpec `toml:"pipe" json:"pipes"`
}

// Aggregate is the complete parameter set for one rack description.
// Tiers must always hold exactly TierCount entries; use Resize (or Normalize
// after direct mutation) to keep the two in sync.
type Aggregate struct {
	Corridor  Corridor `toml:"corridor" json:"corridor"`
	Rack      Rack     `toml:"rack" json:"rack"`
	TierCount int      `toml:"tier_count" json:"tier_count"`
	Tiers     []Tier   `toml:"tier" json:"tiers"`
}

// Default values applied to newly created tiers and pipes.
const (
	DefaultTierHeight = 2.0  // ft
	DefaultDuctWidth  = 18.0 // in
	DefaultDuctHeight = 10.0 // in
	DefaultPipeDiam   = 4.0  // in
	DefaultPipeVert   = 4.0  // in
)

// Default returns an aggregate describing a two-tier rack in a 10 ft
// corridor, the same starting point the interactive editor presents.
func Default() *Aggregate {
	a := &Aggregate{
		Corridor: Corridor{
			Width:         10,
			Height:        10,
			CeilingHeight: 3,
			CeilingDepth:  2,
			SlabDepth:     0.5,
			WallThickness: 0.5,
		},
		Rack: Rack{
			BayCount:     4,
			BayWidth:     3,
			Depth:        4,
			PostSize:     2,
			BeamSize:     2,
			TopClearance: 9,
		},
		TierCount: 2,
	}
	a.Resize(a.TierCount)
	return a
}

// NewTier returns a tier populated with default values.
func NewTier() Tier {
	return Tier{
		Height: DefaultTierHeight,
		Duct: DuctSpec{
			Width:  DefaultDuctWidth,
			Height: DefaultDuctHeight,
		},
	}
}

// NewPipe returns a pipe spec populated with default values.
func NewPipe() PipeSpec {
	return PipeSpec{
		Diam: DefaultPipeDiam,
		Vert: DefaultPipeVert,
	}
}

// Resize sets TierCount to n and adjusts Tiers to exactly n entries.
// Existing entries keep their stored values; growing appends default tiers,
// shrinking truncates (dropping the truncated tiers' duct and pipe specs).
// Negative n is treated as zero.
func (a *Aggregate) Resize(n int) {
	if n < 0 {
		n = 0
	}
	a.TierCount = n

	if n <= len(a.Tiers) {
		a.Tiers = a.Tiers[:n:n]
		return
	}
	for len(a.Tiers) < n {
		a.Tiers = append(a.Tiers, NewTier())
	}
}

// ResizePipes adjusts the tier's pipe list to exactly n entries, preserving
// surviving entries and filling new ones with defaults.
func (t *Tier) ResizePipes(n int) {
	if n < 0 {
		n = 0
	}
	if n <= len(t.Pipes) {
		t.Pipes = t.Pipes[:n:n]
		return
	}
	for len(t.Pipes) < n {
		t.Pipes = append(t.Pipes, NewPipe())
	}
}

// Normalize reconciles TierCount with the actual tier list after direct
// mutation (e.g. a hand-edited file where tier_count and [[tier]] blocks
// diverge). The explicit count wins when present; otherwise the list length
// is adopted. This always runs before any resolver, so the divergence is
// never surfaced as an error.
func (a *Aggregate) Normalize() {
	if a.TierCount == 0 && len(a.Tiers) > 0 {
		a.TierCount = len(a.Tiers)
		return
	}
	a.Resize(a.TierCount)
}

// Clone returns a deep copy of the aggregate.
func (a *Aggregate) Clone() *Aggregate {
	out := *a
	out.Tiers = make([]Tier, len(a.Tiers))
	for i, t := range a.Tiers {
		ct := t
		if t.Pipes != nil {
			ct.Pipes = make([]PipeSpec, len(t.Pipes))
			copy(ct.Pipes, t.Pipes)
		}
		out.Tiers[i] = ct
	}
	return &out
}
