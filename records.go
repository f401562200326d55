package wadlevel

import (
	"encoding"
	"fmt"
)

// Record widths in bytes. Records are packed: a width is exactly the sum of
// its field widths.
const (
	VertexSize    = 4
	ThingSize     = 10
	LineDefSize   = 14
	SideDefSize   = 30
	SegmentSize   = 12
	SubSectorSize = 4
	NodeSize      = 28
	SectorSize    = 26

	boundingBoxSize = 8
)

type Vertex struct {
	X, Y int16
}

// Thing is a monster, item, player start or decoration placed in the level.
type Thing struct {
	X, Y  int16
	Angle int16 // degrees, 0 is east
	Type  int16
	Flags int16
}

type LineDef struct {
	StartVertex  int16
	EndVertex    int16
	Flags        int16
	Special      int16
	SectorTag    int16
	FrontSideDef int16
	BackSideDef  int16 // NoSideDef if one-sided
}

// SideDef is the surface of one side of a LineDef.
type SideDef struct {
	XOffset       int16
	YOffset       int16
	UpperTexture  string
	MiddleTexture string
	LowerTexture  string
	Sector        int16
}

// Segment is the part of a LineDef that bounds a SubSector.
type Segment struct {
	StartVertex int16
	EndVertex   int16
	Angle       int16 // binary angle, full circle is -32768 to 32767
	LineDef     int16
	Side        int16 // 0 - same as linedef, 1 - opposite to linedef
	Offset      int16 // distance along line to start of segment
}

type SubSector struct {
	SegCount int16
	FirstSeg int16
}

type BoundingBox struct {
	Top, Bottom, Left, Right int16
}

// Node is a BSP tree node. Children are raw: in Doom a child with the high
// bit set is a SubSector index rather than a Node index.
type Node struct {
	X, Y       int16 // partition line start
	DX, DY     int16 // partition line direction
	RightBox   BoundingBox
	LeftBox    BoundingBox
	RightChild int16
	LeftChild  int16
}

type Sector struct {
	FloorHeight    int16
	CeilingHeight  int16
	FloorTexture   string
	CeilingTexture string
	LightLevel     int16
	Special        int16
	Tag            int16
}

// record is implemented by pointers to the fixed-width level records.
type record[T any] interface {
	*T
	encoding.BinaryUnmarshaler
	binarySize() int
}

// decodeRecords decodes the lump described by info as consecutive records.
// Trailing bytes that do not make up a whole record are ignored.
func decodeRecords[T any, P record[T]](data []byte, info LumpInfo) ([]T, error) {
	if err := checkRange(int(info.Filepos), int(info.Size), len(data)); err != nil {
		return nil, fmt.Errorf("lump %s: %w", info.Name, err)
	}
	width := P(new(T)).binarySize()
	lump := data[info.Filepos:info.End()]

	records := make([]T, len(lump)/width)
	for i := range records {
		if err := P(&records[i]).UnmarshalBinary(lump[i*width : (i+1)*width]); err != nil {
			return nil, fmt.Errorf("lump %s record %d: %w", info.Name, i, err)
		}
	}
	return records, nil
}

func short(b []byte, size int) error {
	if len(b) < size {
		return &RangeError{Offset: 0, Length: size, Size: len(b)}
	}
	return nil
}

func (v *Vertex) binarySize() int { return VertexSize }

func (v *Vertex) UnmarshalBinary(b []byte) error {
	if err := short(b, VertexSize); err != nil {
		return err
	}
	v.X = le16(b, 0)
	v.Y = le16(b, 2)
	return nil
}

func (t *Thing) binarySize() int { return ThingSize }

func (t *Thing) UnmarshalBinary(b []byte) error {
	if err := short(b, ThingSize); err != nil {
		return err
	}
	t.X = le16(b, 0)
	t.Y = le16(b, 2)
	t.Angle = le16(b, 4)
	t.Type = le16(b, 6)
	t.Flags = le16(b, 8)
	return nil
}

func (l *LineDef) binarySize() int { return LineDefSize }

func (l *LineDef) UnmarshalBinary(b []byte) error {
	if err := short(b, LineDefSize); err != nil {
		return err
	}
	l.StartVertex = le16(b, 0)
	l.EndVertex = le16(b, 2)
	l.Flags = le16(b, 4)
	l.Special = le16(b, 6)
	l.SectorTag = le16(b, 8)
	l.FrontSideDef = le16(b, 10)
	l.BackSideDef = le16(b, 12)
	return nil
}

func (s *SideDef) binarySize() int { return SideDefSize }

func (s *SideDef) UnmarshalBinary(b []byte) error {
	if err := short(b, SideDefSize); err != nil {
		return err
	}
	s.XOffset = le16(b, 0)
	s.YOffset = le16(b, 2)
	s.UpperTexture = fixedString(b[4:12])
	s.MiddleTexture = fixedString(b[12:20])
	s.LowerTexture = fixedString(b[20:28])
	s.Sector = le16(b, 28)
	return nil
}

func (s *Segment) binarySize() int { return SegmentSize }

func (s *Segment) UnmarshalBinary(b []byte) error {
	if err := short(b, SegmentSize); err != nil {
		return err
	}
	s.StartVertex = le16(b, 0)
	s.EndVertex = le16(b, 2)
	s.Angle = le16(b, 4)
	s.LineDef = le16(b, 6)
	s.Side = le16(b, 8)
	s.Offset = le16(b, 10)
	return nil
}

func (s *SubSector) binarySize() int { return SubSectorSize }

func (s *SubSector) UnmarshalBinary(b []byte) error {
	if err := short(b, SubSectorSize); err != nil {
		return err
	}
	s.SegCount = le16(b, 0)
	s.FirstSeg = le16(b, 2)
	return nil
}

func (bb *BoundingBox) UnmarshalBinary(b []byte) error {
	if err := short(b, boundingBoxSize); err != nil {
		return err
	}
	bb.Top = le16(b, 0)
	bb.Bottom = le16(b, 2)
	bb.Left = le16(b, 4)
	bb.Right = le16(b, 6)
	return nil
}

func (n *Node) binarySize() int { return NodeSize }

func (n *Node) UnmarshalBinary(b []byte) error {
	if err := short(b, NodeSize); err != nil {
		return err
	}
	n.X = le16(b, 0)
	n.Y = le16(b, 2)
	n.DX = le16(b, 4)
	n.DY = le16(b, 6)
	if err := n.RightBox.UnmarshalBinary(b[8:16]); err != nil {
		return err
	}
	if err := n.LeftBox.UnmarshalBinary(b[16:24]); err != nil {
		return err
	}
	n.RightChild = le16(b, 24)
	n.LeftChild = le16(b, 26)
	return nil
}

func (s *Sector) binarySize() int { return SectorSize }

func (s *Sector) UnmarshalBinary(b []byte) error {
	if err := short(b, SectorSize); err != nil {
		return err
	}
	s.FloorHeight = le16(b, 0)
	s.CeilingHeight = le16(b, 2)
	s.FloorTexture = fixedString(b[4:12])
	s.CeilingTexture = fixedString(b[12:20])
	s.LightLevel = le16(b, 20)
	s.Special = le16(b, 22)
	s.Tag = le16(b, 24)
	return nil
}
