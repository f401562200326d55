package wadlevel

// LineDef flags
const (
	LineBlocking      = 0x0001 // blocks players and monsters
	LineBlockMonsters = 0x0002
	LineTwoSided      = 0x0004
	LineUpperUnpegged = 0x0008
	LineLowerUnpegged = 0x0010
	LineSecret        = 0x0020 // shown as one-sided on the automap
	LineBlockSound    = 0x0040
	LineNeverMap      = 0x0080
	LineAlwaysMap     = 0x0100
)

// NoSideDef is the side def index of the missing side of a one-sided line.
const NoSideDef = -1

// HasFlag reports whether all bits of flag are set.
func (l LineDef) HasFlag(flag int16) bool {
	return l.Flags&flag == flag
}

func (l LineDef) TwoSided() bool {
	return l.HasFlag(LineTwoSided)
}

// HasBackSide reports whether the line references a back side def.
// Some editors leave the two-sided flag and the back side out of step.
func (l LineDef) HasBackSide() bool {
	return l.BackSideDef != NoSideDef
}

// Reversed reports whether the segment runs opposite to its LineDef.
func (s Segment) Reversed() bool {
	return s.Side == 1
}
