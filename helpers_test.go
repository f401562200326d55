package wadlevel

import (
	"bytes"
	"encoding/binary"
)

type testLump struct {
	name string
	data []byte
}

// buildWAD lays out a header, the lump data in order, then the directory.
func buildWAD(id string, lumps []testLump) []byte {
	var body bytes.Buffer
	body.Write(make([]byte, HeaderSize))
	dir := make([]byte, 0, len(lumps)*LumpInfoSize)
	for _, l := range lumps {
		pos := body.Len()
		body.Write(l.data)
		dir = binary.LittleEndian.AppendUint32(dir, uint32(pos))
		dir = binary.LittleEndian.AppendUint32(dir, uint32(len(l.data)))
		dir = append(dir, name8(l.name)...)
	}
	infoTableOfs := body.Len()
	body.Write(dir)

	out := body.Bytes()
	copy(out[0:4], id)
	binary.LittleEndian.PutUint32(out[4:], uint32(len(lumps)))
	binary.LittleEndian.PutUint32(out[8:], uint32(infoTableOfs))
	return out
}

// setLumpSize overwrites the size of directory entry i.
func setLumpSize(wad []byte, i int, size int32) {
	infoTableOfs := int(binary.LittleEndian.Uint32(wad[8:]))
	binary.LittleEndian.PutUint32(wad[infoTableOfs+i*LumpInfoSize+4:], uint32(size))
}

// name8 pads s with NULs to a fixed name field. Names of 8 characters get no terminator.
func name8(s string) []byte {
	b := make([]byte, NameSize)
	copy(b, s)
	return b
}

func int16s(vals ...int16) []byte {
	b := make([]byte, 0, 2*len(vals))
	for _, v := range vals {
		b = binary.LittleEndian.AppendUint16(b, uint16(v))
	}
	return b
}

func concat(parts ...[]byte) []byte {
	return bytes.Join(parts, nil)
}

// levelLumps returns a small but complete level: a square room of four
// vertices split by a single node.
func levelLumps(marker string) []testLump {
	return []testLump{
		{marker, nil},
		{LumpThings, int16s(
			32, 32, 90, 1, ThingSkillEasy|ThingSkillMedium|ThingSkillHard,
			-32, 48, 180, 3004, ThingAmbush,
		)},
		{LumpLineDefs, int16s(
			0, 1, LineBlocking, 0, 0, 0, NoSideDef,
			1, 2, LineTwoSided, 11, 7, 1, 2,
		)},
		{LumpSideDefs, concat(
			int16s(0, 0), name8("-"), name8("STARTAN3"), name8("-"), int16s(0),
			int16s(8, -8), name8("BIGDOOR2"), name8("-"), name8("STEP6"), int16s(0),
			int16s(0, 0), name8("-"), name8("-"), name8("-"), int16s(1),
		)},
		{LumpVertexes, int16s(
			-64, 64,
			64, 64,
			64, -64,
			-64, -64,
		)},
		{LumpSegs, int16s(
			0, 1, 0, 0, 0, 0,
			1, 2, -16384, 1, 1, 16,
		)},
		{LumpSSectors, int16s(1, 0, 1, 1)},
		{LumpNodes, int16s(
			0, 64, 0, -128,
			64, -64, 0, 64,
			64, -64, -64, 0,
			-32768, -32767,
		)},
		{LumpSectors, concat(
			int16s(0, 128), name8("FLOOR4_8"), name8("CEIL3_5"), int16s(160, 9, 7),
			int16s(-24, 72), name8("NUKAGE1"), name8("F_SKY1"), int16s(255, 0, 0),
		)},
		{LumpReject, []byte{0x06}},
		{LumpBlockMap, int16s(-64, -64, 1, 1, 5, 0, 0, 1, -1)},
	}
}
