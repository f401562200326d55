package wadlevel

import (
	"fmt"
	"maps"
	"slices"
)

// Bundle is an archive together with every level decoded from it. Levels are
// built once, when the Bundle is created; a level that fails to build is
// recorded in Failures and does not stop the others.
type Bundle struct {
	wad        *WAD
	lumpNums   map[string]int // first directory index of each name
	levelNames []string
	levels     map[string]*Level
	failures   map[string]error
}

// Open opens the archive at filename, or the default archive when filename
// is empty, and builds its levels.
func Open(filename string, opts ...Option) (*Bundle, error) {
	var (
		w   *WAD
		err error
	)
	if filename == "" {
		w, err = OpenDefault(opts...)
	} else {
		w, err = NewWAD(filename, opts...)
	}
	if err != nil {
		return nil, err
	}
	return NewBundle(w), nil
}

// NewBundle indexes w and builds all of its levels.
func NewBundle(w *WAD) *Bundle {
	b := &Bundle{
		wad:      w,
		lumpNums: make(map[string]int, len(w.lumpInfos)),
		levels:   map[string]*Level{},
		failures: map[string]error{},
	}
	for i, info := range w.lumpInfos {
		if _, ok := b.lumpNums[info.Name]; ok {
			continue
		}
		b.lumpNums[info.Name] = i
		if isLevelMarker(info.Name) {
			b.levelNames = append(b.levelNames, info.Name)
		}
	}
	b.buildLevels()
	return b
}

func (b *Bundle) buildLevels() {
	for _, name := range b.levelNames {
		logger.Printf("Reading Level %v ...", name)
		data, err := b.buildLevel(name)
		if err != nil {
			logger.Printf("Level %v failed: %v", name, err)
			b.failures[name] = &LevelError{Name: name, Err: err}
			continue
		}
		b.levels[name] = &Level{data: data}
	}
	logger.Printf("Read %v levels, %v failed", len(b.levels), len(b.failures))
}

func (b *Bundle) buildLevel(name string) (*LevelData, error) {
	group, err := b.LevelLumpGroup(name)
	if err != nil {
		return nil, err
	}
	return buildLevel(group, b.wad.data)
}

// WAD returns the underlying archive.
func (b *Bundle) WAD() *WAD {
	return b.wad
}

// LumpBytes returns a copy of the first lump called name.
func (b *Bundle) LumpBytes(name string) ([]byte, error) {
	i, ok := b.lumpNums[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLumpNotFound, name)
	}
	return b.wad.LumpData(b.wad.lumpInfos[i])
}

// LevelNames returns the level marker names in directory order. A name
// used by more than one marker is listed once, at its first position; only
// that first marker's level is built.
func (b *Bundle) LevelNames() []string {
	return slices.Clone(b.levelNames)
}

// LevelLumpGroup returns the marker called name and the ten lumps that follow
// it in the directory. The following lumps are taken by position; their
// names are not checked here.
func (b *Bundle) LevelLumpGroup(name string) ([]LumpInfo, error) {
	i, ok := b.lumpNums[name]
	if !ok || !isLevelMarker(name) {
		return nil, fmt.Errorf("%w: %s", ErrNotLevelMarker, name)
	}
	end := i + 1 + len(LevelLumps)
	if end > len(b.wad.lumpInfos) {
		return nil, fmt.Errorf("%w: %s is followed by %d lumps, want %d",
			ErrMalformedMarkerGroup, name, len(b.wad.lumpInfos)-i-1, len(LevelLumps))
	}
	return slices.Clone(b.wad.lumpInfos[i:end]), nil
}

// Level returns the decoded level called name. If the level could not be
// built the error is a *LevelError.
func (b *Bundle) Level(name string) (*Level, error) {
	if l, ok := b.levels[name]; ok {
		return l, nil
	}
	if err, ok := b.failures[name]; ok {
		return nil, err
	}
	return nil, fmt.Errorf("%w: %s", ErrLevelNotFound, name)
}

// Levels returns every level that was built, keyed by name.
func (b *Bundle) Levels() map[string]*Level {
	return maps.Clone(b.levels)
}

// Failures returns the levels that could not be built and why.
func (b *Bundle) Failures() map[string]error {
	return maps.Clone(b.failures)
}
