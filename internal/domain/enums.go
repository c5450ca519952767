package domain

// DocumentExtension is the only source file extension the pipeline ingests.
// Matching is case-insensitive on the key's extension.
const DocumentExtension = ".pdf"

// FailureKind classifies why a single document produced no (or partial) output.
type FailureKind string

const (
	// FailureNone marks a successful conversion.
	FailureNone FailureKind = ""
	// FailureConvert means the conversion engine rejected or choked on the document.
	FailureConvert FailureKind = "convert"
	// FailureWrite means the engine succeeded but persisting an output failed.
	FailureWrite FailureKind = "write"
)

// BatchState is the orchestrator's lifecycle state.
type BatchState string

const (
	BatchStateIdle        BatchState = "idle"
	BatchStateDiscovering BatchState = "discovering"
	BatchStateProcessing  BatchState = "processing"
	BatchStateDone        BatchState = "done"
)
