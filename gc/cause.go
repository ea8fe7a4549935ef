package gc

// CollectionCause enumerates the reasons a cycle can be started. The heap
// owns the current cause: it is set when a cycle session opens and reset
// to CauseNone when it closes.
type CollectionCause int

const (
	// CauseNone is the sentinel meaning no cycle is in progress.
	CauseNone CollectionCause = iota
	CauseExplicit
	CauseAllocFailure
	CauseMetadataPressure
	CauseConcurrentTrigger
	CauseUpgradeToFull
)

var causeNames = map[CollectionCause]string{
	CauseNone:              "no-cycle",
	CauseExplicit:          "explicit",
	CauseAllocFailure:      "allocation-failure",
	CauseMetadataPressure:  "metadata-pressure",
	CauseConcurrentTrigger: "concurrent-trigger",
	CauseUpgradeToFull:     "upgrade-to-full",
}

func (c CollectionCause) String() string {
	if name, ok := causeNames[c]; ok {
		return name
	}
	return "unknown"
}
