package app

// Mode is the top-level action a run performs.
type Mode int

const (
	// ModeHelp prints usage. It is the default when no action flag is given.
	ModeHelp Mode = iota
	// ModeList prints every known name.
	ModeList
	// ModeName shows one creature by name.
	ModeName
	// ModeRandom shows a random creature from the requested generations.
	ModeRandom
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeHelp:
		return "help"
	case ModeList:
		return "list"
	case ModeName:
		return "name"
	case ModeRandom:
		return "random"
	default:
		return "unknown"
	}
}
