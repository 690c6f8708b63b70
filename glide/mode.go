package glide

// Mode is the enabled combination of smooth zoom and smooth pan. It selects
// which interceptions are installed and which per-frame policy runs.
type Mode int

const (
	ModeNone Mode = iota
	ModeZoomOnly
	ModePanOnly
	ModeBoth
)

func (m Mode) String() string {
	switch m {
	case ModeZoomOnly:
		return "zoom"
	case ModePanOnly:
		return "pan"
	case ModeBoth:
		return "zoom+pan"
	default:
		return "none"
	}
}

// DeriveMode maps the two enable flags to a Mode. Pure and total.
func DeriveMode(enableZoom, enablePan bool) Mode {
	switch {
	case enableZoom && enablePan:
		return ModeBoth
	case enableZoom:
		return ModeZoomOnly
	case enablePan:
		return ModePanOnly
	default:
		return ModeNone
	}
}
