// Package wadlevel reads Doom's data archives, also known as WAD files, and
// decodes the level geometry they contain.
// The file format is documented in The Unofficial DOOM Specs:
// http://www.gamers.org/dhs/helpdocs/dmsp1666.html
package wadlevel

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
)

// Header and directory layout.
const (
	HeaderSize   = 12
	LumpInfoSize = 16
	NameSize     = 8
)

// Header tags of the two archive kinds.
const (
	IWAD = "IWAD"
	PWAD = "PWAD"
)

// Header is the fixed 12 bytes at the start of every archive.
type Header struct {
	Identification string
	NumLumps       int32
	InfoTableOfs   int32
}

// Known reports whether the identification is IWAD or PWAD.
func (h Header) Known() bool {
	return h.Identification == IWAD || h.Identification == PWAD
}

// LumpInfo is one directory entry: a named byte range of the archive.
type LumpInfo struct {
	Filepos int32
	Size    int32
	Name    string
	Index   int // position in the directory
}

// End returns the offset one past the last byte of the lump.
func (l LumpInfo) End() int {
	return int(l.Filepos) + int(l.Size)
}

// TotalSize returns the sum of the lump sizes.
func TotalSize(lumps []LumpInfo) int {
	total := 0
	for _, l := range lumps {
		total += int(l.Size)
	}
	return total
}

// WAD is Doom's data archive held entirely in memory. The buffer, header and
// directory never change after the WAD is created, so a WAD may be shared
// between goroutines.
type WAD struct {
	data      []byte
	header    Header
	lumpInfos []LumpInfo
}

// NewWAD reads the archive at filename into memory and decodes its header
// and directory.
func NewWAD(filename string, opts ...Option) (*WAD, error) {
	logger.Printf("Start reading WAD %v", filename)
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return newWAD(data, applyOptions(opts))
}

// NewWADFromFS is NewWAD for a file in fsys.
func NewWADFromFS(fsys fs.FS, name string, opts ...Option) (*WAD, error) {
	logger.Printf("Start reading WAD %v", name)
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return newWAD(data, applyOptions(opts))
}

// NewWADFromBytes decodes an archive already in memory. data is copied.
func NewWADFromBytes(data []byte, opts ...Option) (*WAD, error) {
	return newWAD(slices.Clone(data), applyOptions(opts))
}

// OpenDefault opens the first archive found in the default locations.
func OpenDefault(opts ...Option) (*WAD, error) {
	o := applyOptions(opts)
	if len(o.defaultPaths) == 0 {
		return nil, fmt.Errorf("%w: no default paths", ErrNotFound)
	}
	var errs []error
	for _, path := range o.defaultPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		logger.Printf("Start reading WAD %v", path)
		return newWAD(data, o)
	}
	return nil, fmt.Errorf("%w: %w", ErrNotFound, errors.Join(errs...))
}

func newWAD(data []byte, o *options) (*WAD, error) {
	header, err := decodeHeader(data)
	if err != nil {
		return nil, err
	}
	if o.strictIdentification && !header.Known() {
		return nil, fmt.Errorf("%w: %q", ErrBadIdentification, header.Identification)
	}

	lumpInfos, err := decodeDirectory(data, header)
	if err != nil {
		return nil, err
	}
	logger.Printf("Read %v lumps", len(lumpInfos))

	return &WAD{data: data, header: header, lumpInfos: lumpInfos}, nil
}

func decodeHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("truncated header: %w", &RangeError{Offset: 0, Length: HeaderSize, Size: len(data)})
	}
	id, err := readFixedString(data, 0, 4)
	if err != nil {
		return Header{}, err
	}
	numLumps, err := readInt32(data, 4)
	if err != nil {
		return Header{}, err
	}
	infoTableOfs, err := readInt32(data, 8)
	if err != nil {
		return Header{}, err
	}
	return Header{Identification: id, NumLumps: numLumps, InfoTableOfs: infoTableOfs}, nil
}

// decodeDirectory reads every directory entry or none at all.
func decodeDirectory(data []byte, h Header) ([]LumpInfo, error) {
	if h.NumLumps < 0 || h.InfoTableOfs < 0 {
		return nil, fmt.Errorf("bad directory: %d lumps at offset %d: %w", h.NumLumps, h.InfoTableOfs, ErrOutOfRange)
	}

	// Whole table must fit before anything is allocated
	base, count := int(h.InfoTableOfs), int(h.NumLumps)
	if base > len(data) || count > (len(data)-base)/LumpInfoSize {
		return nil, fmt.Errorf("directory: %d lumps at offset %d: %w", count, base,
			&RangeError{Offset: base, Length: count * LumpInfoSize, Size: len(data)})
	}

	lumpInfos := make([]LumpInfo, count)
	for i := range lumpInfos {
		entry := base + i*LumpInfoSize
		filepos, err := readInt32(data, entry)
		if err != nil {
			return nil, fmt.Errorf("directory entry %d: %w", i, err)
		}
		size, err := readInt32(data, entry+4)
		if err != nil {
			return nil, fmt.Errorf("directory entry %d: %w", i, err)
		}
		name, err := readFixedString(data, entry+8, NameSize)
		if err != nil {
			return nil, fmt.Errorf("directory entry %d: %w", i, err)
		}
		lumpInfos[i] = LumpInfo{Filepos: filepos, Size: size, Name: name, Index: i}
	}
	return lumpInfos, nil
}

// Header returns the decoded archive header.
func (w *WAD) Header() Header {
	return w.header
}

// NumLumps returns the number of directory entries.
func (w *WAD) NumLumps() int {
	return len(w.lumpInfos)
}

// Size returns the archive length in bytes.
func (w *WAD) Size() int {
	return len(w.data)
}

// Lumps returns a copy of the directory in archive order.
func (w *WAD) Lumps() []LumpInfo {
	return slices.Clone(w.lumpInfos)
}

// Lump returns directory entry i.
func (w *WAD) Lump(i int) (LumpInfo, bool) {
	if i < 0 || i >= len(w.lumpInfos) {
		return LumpInfo{}, false
	}
	return w.lumpInfos[i], true
}

// LumpData returns a copy of the bytes described by info.
func (w *WAD) LumpData(info LumpInfo) ([]byte, error) {
	lump, err := w.lumpSlice(info)
	if err != nil {
		return nil, err
	}
	return slices.Clone(lump), nil
}

// lumpSlice returns a view of the lump's bytes; callers must not keep or modify it.
func (w *WAD) lumpSlice(info LumpInfo) ([]byte, error) {
	if err := checkRange(int(info.Filepos), int(info.Size), len(w.data)); err != nil {
		return nil, fmt.Errorf("lump %s: %w", info.Name, err)
	}
	return w.data[info.Filepos:info.End()], nil
}
