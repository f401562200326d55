package wadlevel

import (
	"errors"
	"os"
	"reflect"
	"testing"
)

// The shareware Doom archive is not redistributed with the source. Copy
// doom1.wad (v1.9) into testdata to run these tests.
const referencePath = "testdata/doom1.wad"

func openReference(t *testing.T) *Bundle {
	t.Helper()
	b, err := Open(referencePath)
	if errors.Is(err, os.ErrNotExist) {
		t.Skipf("Test file %s not found", referencePath)
	}
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return b
}

func TestReferenceHeader(t *testing.T) {
	b := openReference(t)
	h := b.WAD().Header()
	if h.Identification != "IWAD" {
		t.Errorf("expected IWAD, got %q", h.Identification)
	}
	if h.NumLumps != 1264 {
		t.Errorf("expected 1264 lumps, got %d", h.NumLumps)
	}
	if h.InfoTableOfs != 4175796 {
		t.Errorf("expected directory at 4175796, got %d", h.InfoTableOfs)
	}
	if b.WAD().NumLumps() != 1264 {
		t.Errorf("expected 1264 directory entries, got %d", b.WAD().NumLumps())
	}
	for _, info := range b.WAD().Lumps() {
		if info.Filepos < 0 || info.End() > b.WAD().Size() {
			t.Errorf("lump %d (%s) out of bounds", info.Index, info.Name)
		}
	}
}

func TestReferenceLumpBytes(t *testing.T) {
	b := openReference(t)
	demo, err := b.LumpBytes("DEMO1")
	if err != nil {
		t.Fatalf("LumpBytes failed: %v", err)
	}
	if len(demo) != 20118 {
		t.Errorf("expected 20118 bytes, got %d", len(demo))
	}
}

func TestReferenceE1M1(t *testing.T) {
	b := openReference(t)

	group, err := b.LevelLumpGroup("E1M1")
	if err != nil {
		t.Fatalf("LevelLumpGroup failed: %v", err)
	}
	if len(group) != 11 || group[10].Name != "BLOCKMAP" {
		t.Errorf("unexpected group %+v", group)
	}

	l, err := b.Level("E1M1")
	if err != nil {
		t.Fatalf("Level failed: %v", err)
	}

	vertexes := l.Vertices()
	if len(vertexes) != 467 {
		t.Fatalf("expected 467 vertexes, got %d", len(vertexes))
	}
	if vertexes[0] != (Vertex{1088, -3680}) {
		t.Errorf("unexpected first vertex %+v", vertexes[0])
	}
	if vertexes[466] != (Vertex{2912, -4848}) {
		t.Errorf("unexpected last vertex %+v", vertexes[466])
	}

	counts := []struct {
		name      string
		got, want int
	}{
		{"things", len(l.Things()), 138},
		{"linedefs", len(l.LineDefs()), 475},
		{"sidedefs", len(l.SideDefs()), 648},
		{"segs", len(l.Segments()), 732},
		{"ssectors", len(l.SubSectors()), 237},
		{"nodes", len(l.Nodes()), 236},
		{"sectors", len(l.Sectors()), 85},
	}
	for _, c := range counts {
		if c.got != c.want {
			t.Errorf("%s: expected %d, got %d", c.name, c.want, c.got)
		}
	}
}

func TestReferenceLevels(t *testing.T) {
	b := openReference(t)
	want := []string{"E1M1", "E1M2", "E1M3", "E1M4", "E1M5", "E1M6", "E1M7", "E1M8", "E1M9"}
	if got := b.LevelNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if len(b.Failures()) != 0 {
		t.Errorf("unexpected failures %v", b.Failures())
	}
	if !reflect.DeepEqual(b.Levels(), b.Levels()) {
		t.Error("Levels changed between calls")
	}
}
