package gc

// Phase identifies one named, possibly nested, timed stage of work within
// a collection cycle. The set is closed; phases are consumed as values and
// never allocated.
type Phase int

// PhaseNone is the reserved sentinel meaning no phase is active.
const PhaseNone Phase = -1

const (
	// Root-work phases. Collaborators use IsRootWorkPhase to decide
	// whether extra root-scanning safety checks apply.
	PhaseScanRoots Phase = iota
	PhaseUpdateRoots
	PhaseInitEvac
	PhaseFinalUpdateRefsRoots
	PhaseDegenUpdateRoots
	PhaseInitTraversalWork
	PhaseFinalTraversalWork
	PhaseFinalTraversalUpdateRoots
	PhaseFullCollectionRoots

	// Pause-bracketed and concurrent phases.
	PhaseInitMark
	PhaseFinalMark
	PhaseConcurrentMark
	PhaseConcurrentEvac
	PhaseConcurrentUpdateRefs

	numPhases
)

var phaseNames = map[Phase]string{
	PhaseScanRoots:                 "scan-roots",
	PhaseUpdateRoots:               "update-roots",
	PhaseInitEvac:                  "init-evacuation",
	PhaseFinalUpdateRefsRoots:      "final-update-refs-roots",
	PhaseDegenUpdateRoots:          "degen-update-roots",
	PhaseInitTraversalWork:         "init-traversal-work",
	PhaseFinalTraversalWork:        "final-traversal-work",
	PhaseFinalTraversalUpdateRoots: "final-traversal-update-roots",
	PhaseFullCollectionRoots:       "full-collection-roots",
	PhaseInitMark:                  "init-mark",
	PhaseFinalMark:                 "final-mark",
	PhaseConcurrentMark:            "concurrent-mark",
	PhaseConcurrentEvac:            "concurrent-evacuation",
	PhaseConcurrentUpdateRefs:      "concurrent-update-refs",
}

// String returns the phase's stage name, or "none" for the sentinel.
func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "none"
}

// IsValid reports whether p lies within the declared enumerated range.
// The sentinel is not a valid phase.
func (p Phase) IsValid() bool {
	return p >= 0 && p < numPhases
}

// rootWorkPhases is the fixed closed subset of phases that perform
// root-set work.
var rootWorkPhases = map[Phase]bool{
	PhaseScanRoots:                 true,
	PhaseUpdateRoots:               true,
	PhaseInitEvac:                  true,
	PhaseFinalUpdateRefsRoots:      true,
	PhaseDegenUpdateRoots:          true,
	PhaseInitTraversalWork:         true,
	PhaseFinalTraversalWork:        true,
	PhaseFinalTraversalUpdateRoots: true,
	PhaseFullCollectionRoots:       true,
}
