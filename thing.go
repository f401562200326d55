package wadlevel

// Thing option flags
const (
	ThingSkillEasy   = 0x0001 // skill levels 1 and 2
	ThingSkillMedium = 0x0002 // skill level 3
	ThingSkillHard   = 0x0004 // skill levels 4 and 5
	ThingAmbush      = 0x0008 // deaf until it sees a player
	ThingMultiplayer = 0x0010 // not in single player
)

// HasFlag reports whether all bits of flag are set.
func (t Thing) HasFlag(flag int16) bool {
	return t.Flags&flag == flag
}
