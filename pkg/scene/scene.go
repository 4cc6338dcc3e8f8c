// Package scene is the canonical serialization format for built rack
// geometry.
//
// A Scene is the engine's output contract: the flattened, ordered list of
// placed primitives an external renderer instantiates meshes from, together
// with the propagation report describing clamps and suppressions. The format
// is human-readable JSON with deterministic ordering, so identical parameter
// aggregates serialize to identical bytes — the pipeline relies on this for
// cache keys.
package scene

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rackworks/rackplan/pkg/layout"
)

// Scene is the serialized result of one build pass.
type Scene struct {
	Primitives []layout.Primitive `json:"primitives"`
	Report     *layout.Report     `json:"report,omitempty"`
}

// New assembles a scene from a build pass. The primitive order is the
// engine's emission order (frame first, then per-tier ducts and pipes, top
// to bottom) and is preserved as-is.
func New(prims []layout.Primitive, rep *layout.Report) Scene {
	return Scene{Primitives: prims, Report: rep}
}

// Counts returns the number of primitives per kind.
func (s Scene) Counts() map[layout.Kind]int {
	counts := make(map[layout.Kind]int)
	for _, p := range s.Primitives {
		counts[p.Kind]++
	}
	return counts
}

// Marshal converts a scene to indented JSON bytes.
func Marshal(s Scene) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(s, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal deserializes JSON bytes to a scene.
func Unmarshal(data []byte) (Scene, error) {
	return Read(bytes.NewReader(data))
}

// Write writes a scene as JSON to an io.Writer.
func Write(s Scene, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	return nil
}

// Read decodes a JSON scene from an io.Reader.
func Read(r io.Reader) (Scene, error) {
	var s Scene
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return Scene{}, fmt.Errorf("decode scene: %w", err)
	}
	return s, nil
}

// WriteFile writes a scene to a JSON file with 0644 permissions.
func WriteFile(s Scene, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(s, f)
}

// ReadFile reads a JSON file and returns the decoded scene.
func ReadFile(path string) (Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return Scene{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}
