package domain

// Mode selects how literal groups are displayed
type Mode string

const (
	ModeGraph      Mode = "graphe"     // Nodes and links only
	ModeCartouches Mode = "cartouches" // Literal properties shown as annotation text
)

// ParseMode converts a string to Mode, defaulting to ModeGraph
func ParseMode(s string) Mode {
	switch s {
	case "cartouches":
		return ModeCartouches
	default:
		return ModeGraph
	}
}

// ShowsCartouches reports whether literal annotations are rendered
func (m Mode) ShowsCartouches() bool {
	return m == ModeCartouches
}

// Toggle returns the other display mode
func (m Mode) Toggle() Mode {
	if m == ModeCartouches {
		return ModeGraph
	}
	return ModeCartouches
}
