package wadlevel

// isLevelMarker reports whether name is a level marker: ExMy as in Doom and
// Ultimate Doom, or MAPxx as in Doom II.
func isLevelMarker(name string) bool {
	switch len(name) {
	case 4:
		return name[0] == 'E' && isDigit(name[1]) && name[2] == 'M' && isDigit(name[3])
	case 5:
		return name[:3] == "MAP" && isDigit(name[3]) && isDigit(name[4])
	}
	return false
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
