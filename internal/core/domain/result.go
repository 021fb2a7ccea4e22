package domain

// Result is the output of one dispatch.
type Result struct {
	CSS     string `json:"css"`
	Warning string `json:"maybeWarning,omitzero"`
}

// Source records where an output came from.
type Source string

const (
	// SourceMemory means the memory tier answered.
	SourceMemory Source = "memory"
	// SourceDisk means the disk tier answered.
	SourceDisk Source = "disk"
	// SourceDispatch means the toolchain ran.
	SourceDispatch Source = "dispatch"
)

// Outcome is a transform result annotated with its provenance.
type Outcome struct {
	CSS     string
	Warning string
	Hash    string
	Source  Source
}

// Cached reports whether the outcome was served by a cache tier.
func (o Outcome) Cached() bool {
	return o.Source == SourceMemory || o.Source == SourceDisk
}
