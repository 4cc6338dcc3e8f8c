package scene

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/rackworks/rackplan/pkg/layout"
	"github.com/rackworks/rackplan/pkg/params"
)

func buildScene(t *testing.T) Scene {
	t.Helper()
	a := params.Default()
	a.Tiers[0].Duct.Enabled = true
	a.Tiers[1].PipesEnabled = true
	a.Tiers[1].ResizePipes(2)
	prims, rep := layout.Build(a)
	return New(prims, rep)
}

func TestMarshalRoundTrip(t *testing.T) {
	s := buildScene(t)

	data, err := Marshal(s)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	back, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if len(back.Primitives) != len(s.Primitives) {
		t.Fatalf("round trip primitive count = %d, want %d", len(back.Primitives), len(s.Primitives))
	}
	for i := range s.Primitives {
		if back.Primitives[i] != s.Primitives[i] {
			t.Errorf("primitive %d = %+v, want %+v", i, back.Primitives[i], s.Primitives[i])
		}
	}
}

func TestMarshalDeterministic(t *testing.T) {
	a := params.Default()
	a.Tiers[0].Duct.Enabled = true

	prims1, rep1 := layout.Build(a)
	prims2, rep2 := layout.Build(a)

	first, err := Marshal(New(prims1, rep1))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	second, err := Marshal(New(prims2, rep2))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("two builds of the same aggregate serialized differently")
	}
}

func TestCounts(t *testing.T) {
	s := buildScene(t)
	counts := s.Counts()

	if counts[layout.KindPost] != 10 {
		t.Errorf("posts = %d, want 10", counts[layout.KindPost])
	}
	if counts[layout.KindDuct] != 1 {
		t.Errorf("ducts = %d, want 1", counts[layout.KindDuct])
	}
	if counts[layout.KindPipe] != 2 {
		t.Errorf("pipes = %d, want 2", counts[layout.KindPipe])
	}
}

func TestFileRoundTrip(t *testing.T) {
	s := buildScene(t)
	path := filepath.Join(t.TempDir(), "scene.json")

	if err := WriteFile(s, path); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	back, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if len(back.Primitives) != len(s.Primitives) {
		t.Errorf("primitive count = %d, want %d", len(back.Primitives), len(s.Primitives))
	}
	if back.Report == nil || len(back.Report.Envelopes) != 2 {
		t.Errorf("report lost in round trip: %+v", back.Report)
	}
}

func TestReadInvalid(t *testing.T) {
	if _, err := Unmarshal([]byte("not json")); err == nil {
		t.Fatal("Unmarshal() error = nil, want error")
	}
}
