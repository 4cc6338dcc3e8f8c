// Package layout is the constraint and placement engine for corridor storage
// racks.
//
// Given a parameter aggregate (pkg/params), the engine stacks tiers into
// absolute beam-centerline elevations, derives the post and beam skeleton,
// and places duct and pipe geometry inside each tier while enforcing
// containment and clearance invariants. A single propagation pass
// (sizes → levels → envelopes → duct/pipe clamps) re-validates every
// dependent value whenever an upstream parameter changes; Build runs that
// pass and emits the flattened primitive list an external renderer consumes.
//
// All positions and extents in emitted primitives are in meters. The engine
// is synchronous and pure apart from the propagator's explicit clamp step,
// which is the only path that mutates the aggregate.
package layout

// Kind identifies the role of a placed primitive.
type Kind string

// Primitive roles.
const (
	KindPost      Kind = "post"
	KindLongBeam  Kind = "long-beam"
	KindTransBeam Kind = "trans-beam"
	KindDuct      Kind = "duct"
	KindPipe      Kind = "pipe"
)

// Primitive is one placed structural or utility member.
//
// Boxes (posts, beams, ducts) carry DX/DY/DZ extents. Pipes are cylinders
// oriented along the bay axis: DX is the length and Radius the body radius,
// with DY and DZ zero. X runs along the bay axis, Y is vertical from the
// floor, Z runs across the rack depth; the rack is centered on X and Z.
type Primitive struct {
	Kind Kind `json:"kind"`

	// Center position, meters.
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`

	// Box extents, meters. For pipes only DX (length) is set.
	DX float64 `json:"dx"`
	DY float64 `json:"dy,omitempty"`
	DZ float64 `json:"dz,omitempty"`

	// Radius of the pipe body, meters. Zero for boxes.
	Radius float64 `json:"radius,omitempty"`

	// Tier is the 1-based tier index for ducts and pipes, 0 for frame members.
	Tier int `json:"tier,omitempty"`

	// Pipe is the 1-based pipe index within the tier, 0 otherwise.
	Pipe int `json:"pipe,omitempty"`
}

// overhang is the extra length, in meters, that ducts and pipes extend past
// the end posts at each end of the rack.
const overhang = 0.05
