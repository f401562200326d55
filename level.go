package wadlevel

import (
	"fmt"
	"math"
	"slices"
)

// Level lump names, in the order they follow the level marker.
const (
	LumpThings   = "THINGS"
	LumpLineDefs = "LINEDEFS"
	LumpSideDefs = "SIDEDEFS"
	LumpVertexes = "VERTEXES"
	LumpSegs     = "SEGS"
	LumpSSectors = "SSECTORS"
	LumpNodes    = "NODES"
	LumpSectors  = "SECTORS"
	LumpReject   = "REJECT"
	LumpBlockMap = "BLOCKMAP"
)

// LevelLumps lists the lumps that follow every level marker.
var LevelLumps = [...]string{
	LumpThings, LumpLineDefs, LumpSideDefs, LumpVertexes, LumpSegs,
	LumpSSectors, LumpNodes, LumpSectors, LumpReject, LumpBlockMap,
}

// LevelData is the decoded content of one level's lumps. Everything in it is
// a copy; nothing refers back to the archive buffer.
type LevelData struct {
	Marker     LumpInfo
	Things     []Thing
	SideDefs   []SideDef
	Vertices   []Vertex
	LineDefs   []LineDef
	Segments   []Segment
	SubSectors []SubSector
	Nodes      []Node
	Sectors    []Sector
	Reject     []byte // sector visibility bit matrix
	BlockMap   []byte
}

func findLump(group []LumpInfo, name string) (LumpInfo, error) {
	for _, info := range group {
		if info.Name == name {
			return info, nil
		}
	}
	return LumpInfo{}, fmt.Errorf("%w: %s", ErrMissingLump, name)
}

// buildLevel decodes a level lump group: the marker followed by its lumps.
func buildLevel(group []LumpInfo, data []byte) (*LevelData, error) {
	if len(group) == 0 {
		return nil, ErrMalformedMarkerGroup
	}
	lumps := make(map[string]LumpInfo, len(LevelLumps))
	for _, name := range LevelLumps {
		info, err := findLump(group, name)
		if err != nil {
			return nil, err
		}
		lumps[name] = info
	}

	level := LevelData{Marker: group[0]}
	var err error

	if level.Things, err = decodeRecords[Thing](data, lumps[LumpThings]); err != nil {
		return nil, err
	}
	logger.Printf("Read %v things", len(level.Things))

	if level.LineDefs, err = decodeRecords[LineDef](data, lumps[LumpLineDefs]); err != nil {
		return nil, err
	}
	logger.Printf("Read %v lines", len(level.LineDefs))

	if level.SideDefs, err = decodeRecords[SideDef](data, lumps[LumpSideDefs]); err != nil {
		return nil, err
	}
	logger.Printf("Read %v sides", len(level.SideDefs))

	if level.Vertices, err = decodeRecords[Vertex](data, lumps[LumpVertexes]); err != nil {
		return nil, err
	}
	logger.Printf("Read %v vertexes", len(level.Vertices))

	if level.Segments, err = decodeRecords[Segment](data, lumps[LumpSegs]); err != nil {
		return nil, err
	}
	logger.Printf("Read %v line segments", len(level.Segments))

	if level.SubSectors, err = decodeRecords[SubSector](data, lumps[LumpSSectors]); err != nil {
		return nil, err
	}
	logger.Printf("Read %v sub sectors", len(level.SubSectors))

	if level.Nodes, err = decodeRecords[Node](data, lumps[LumpNodes]); err != nil {
		return nil, err
	}
	logger.Printf("Read %v nodes", len(level.Nodes))

	if level.Sectors, err = decodeRecords[Sector](data, lumps[LumpSectors]); err != nil {
		return nil, err
	}
	logger.Printf("Read %v sectors", len(level.Sectors))

	if level.Reject, err = rawLump(data, lumps[LumpReject]); err != nil {
		return nil, err
	}
	if level.BlockMap, err = rawLump(data, lumps[LumpBlockMap]); err != nil {
		return nil, err
	}

	return &level, nil
}

func rawLump(data []byte, info LumpInfo) ([]byte, error) {
	if err := checkRange(int(info.Filepos), int(info.Size), len(data)); err != nil {
		return nil, fmt.Errorf("lump %s: %w", info.Name, err)
	}
	return slices.Clone(data[info.Filepos:info.End()]), nil
}

// Level gives read-only access to a decoded level. Accessors return copies.
type Level struct {
	data *LevelData
}

// Name returns the level marker name, such as E1M1 or MAP01.
func (l *Level) Name() string {
	return l.data.Marker.Name
}

func (l *Level) Marker() LumpInfo {
	return l.data.Marker
}

func (l *Level) Things() []Thing {
	return slices.Clone(l.data.Things)
}

func (l *Level) LineDefs() []LineDef {
	return slices.Clone(l.data.LineDefs)
}

func (l *Level) SideDefs() []SideDef {
	return slices.Clone(l.data.SideDefs)
}

func (l *Level) Vertices() []Vertex {
	return slices.Clone(l.data.Vertices)
}

func (l *Level) Segments() []Segment {
	return slices.Clone(l.data.Segments)
}

func (l *Level) SubSectors() []SubSector {
	return slices.Clone(l.data.SubSectors)
}

func (l *Level) Nodes() []Node {
	return slices.Clone(l.data.Nodes)
}

func (l *Level) Sectors() []Sector {
	return slices.Clone(l.data.Sectors)
}

// Reject returns the raw REJECT lump.
func (l *Level) Reject() []byte {
	return slices.Clone(l.data.Reject)
}

// BlockMap returns the raw BLOCKMAP lump.
func (l *Level) BlockMap() []byte {
	return slices.Clone(l.data.BlockMap)
}

// Data returns a copy of all the level's records.
func (l *Level) Data() LevelData {
	d := *l.data
	d.Things = slices.Clone(d.Things)
	d.SideDefs = slices.Clone(d.SideDefs)
	d.Vertices = slices.Clone(d.Vertices)
	d.LineDefs = slices.Clone(d.LineDefs)
	d.Segments = slices.Clone(d.Segments)
	d.SubSectors = slices.Clone(d.SubSectors)
	d.Nodes = slices.Clone(d.Nodes)
	d.Sectors = slices.Clone(d.Sectors)
	d.Reject = slices.Clone(d.Reject)
	d.BlockMap = slices.Clone(d.BlockMap)
	return d
}

// Bounds returns the smallest box holding every vertex. A level without
// vertices has a zero box.
func (l *Level) Bounds() BoundingBox {
	if len(l.data.Vertices) == 0 {
		return BoundingBox{}
	}
	b := BoundingBox{
		Top:    math.MinInt16,
		Bottom: math.MaxInt16,
		Left:   math.MaxInt16,
		Right:  math.MinInt16,
	}
	for _, v := range l.data.Vertices {
		b.Left = min(b.Left, v.X)
		b.Right = max(b.Right, v.X)
		b.Bottom = min(b.Bottom, v.Y)
		b.Top = max(b.Top, v.Y)
	}
	return b
}
