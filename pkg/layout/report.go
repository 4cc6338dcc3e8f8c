package layout

import (
	"fmt"

	"github.com/rackworks/rackplan/pkg/errors"
)

// Warning records a non-fatal clamp applied during propagation: the field
// that violated a constraint and the adjustment that resolved it.
type Warning struct {
	Code    errors.Code `json:"code"`
	Field   string      `json:"field"`          // e.g. "rack.depth", "tier[2].duct.offset"
	Tier    int         `json:"tier,omitempty"` // 1-based; 0 when not tier-scoped
	Old     float64     `json:"old"`
	New     float64     `json:"new"`
	Message string      `json:"message,omitempty"` // set for flags that are not clamps
}

// String formats the warning for log output.
func (w Warning) String() string {
	if w.Message != "" {
		return fmt.Sprintf("%s: %s: %s", w.Code, w.Field, w.Message)
	}
	return fmt.Sprintf("%s: %s clamped %g -> %g", w.Code, w.Field, w.Old, w.New)
}

// Suppression records an element omitted because clamping reduced it to zero
// or negative extent. Suppressed elements produce no geometry but are always
// reported, never silently dropped.
type Suppression struct {
	Code   errors.Code `json:"code"`
	Kind   Kind        `json:"kind"` // duct or pipe
	Tier   int         `json:"tier"`
	Pipe   int         `json:"pipe,omitempty"` // 1-based for pipes
	Reason string      `json:"reason"`
}

// String formats the suppression for log output.
func (s Suppression) String() string {
	if s.Kind == KindPipe {
		return fmt.Sprintf("%s: tier %d pipe %d omitted: %s", s.Code, s.Tier, s.Pipe, s.Reason)
	}
	return fmt.Sprintf("%s: tier %d %s omitted: %s", s.Code, s.Tier, s.Kind, s.Reason)
}

// Report captures the outcome of one propagation pass: the derived levels
// and envelopes, every clamp applied, and every element suppressed.
// Propagation is never fatal; a Report always accompanies a valid (possibly
// empty) geometry list.
type Report struct {
	Levels     Levels        `json:"levels"`
	Envelopes  []Envelope    `json:"envelopes"` // one per tier, top-to-bottom
	Warnings   []Warning     `json:"warnings,omitempty"`
	Suppressed []Suppression `json:"suppressed,omitempty"`
}

// Clean reports whether the pass applied no clamps and suppressed nothing.
func (r *Report) Clean() bool {
	return len(r.Warnings) == 0 && len(r.Suppressed) == 0
}

func (r *Report) warn(code errors.Code, field string, tier int, old, clamped float64) {
	r.Warnings = append(r.Warnings, Warning{
		Code:  code,
		Field: field,
		Tier:  tier,
		Old:   old,
		New:   clamped,
	})
}

// flag records a non-conformance that is not a clamp: the value is left
// alone but the condition is reported.
func (r *Report) flag(code errors.Code, fieldName string, tier int, value float64, msg string) {
	r.Warnings = append(r.Warnings, Warning{
		Code:    code,
		Field:   fieldName,
		Tier:    tier,
		Old:     value,
		New:     value,
		Message: msg,
	})
}

// field names a tier-scoped parameter for warning output.
func field(tier int, name string) string {
	return fmt.Sprintf("tier[%d].%s", tier, name)
}

func (r *Report) suppress(code errors.Code, kind Kind, tier, pipe int, reason string) {
	r.Suppressed = append(r.Suppressed, Suppression{
		Code:   code,
		Kind:   kind,
		Tier:   tier,
		Pipe:   pipe,
		Reason: reason,
	})
}
