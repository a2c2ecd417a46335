package phase

// ModulePhase tracks how far an individual module has progressed
//
// Phases are strictly sequential:
// NotStarted -> Loaded -> Indexed -> Lowered -> Written -> Built
//
// A module that fails stays at the last phase it reached. Emit-only runs
// stop at Lowered.
type ModulePhase int

const (
	PhaseNotStarted ModulePhase = iota // Input file discovered
	PhaseLoaded                        // Tree decoded from its dump
	PhaseIndexed                       // Definitions and uses registered
	PhaseLowered                       // C++ program generated
	PhaseWritten                       // Source written to disk
	PhaseBuilt                         // Executable linked
)

// PhasePrerequisites maps each phase to its required predecessor phase
var PhasePrerequisites = map[ModulePhase]ModulePhase{
	PhaseLoaded:  PhaseNotStarted,
	PhaseIndexed: PhaseLoaded,
	PhaseLowered: PhaseIndexed,
	PhaseWritten: PhaseLowered,
	PhaseBuilt:   PhaseWritten,
}

// CanAdvance reports whether a module at from may move to to.
func CanAdvance(from, to ModulePhase) bool {
	required, ok := PhasePrerequisites[to]
	return ok && required == from
}

func (p ModulePhase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhaseLoaded:
		return "Loaded"
	case PhaseIndexed:
		return "Indexed"
	case PhaseLowered:
		return "Lowered"
	case PhaseWritten:
		return "Written"
	case PhaseBuilt:
		return "Built"
	default:
		return "Unknown"
	}
}
