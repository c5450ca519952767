package domain

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DocumentReference links a remote object key to the local path its bytes
// are fetched to. The local path is a pure function of the key's base name,
// so re-runs resolve to the same file.
type DocumentReference struct {
	Key       string
	LocalPath string
}

// BaseName returns the document's file name with the extension stripped.
// It names the per-document output directory and the markdown file.
func (r DocumentReference) BaseName() string {
	base := filepath.Base(r.LocalPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ConversionResult is the output of converting a single document: one
// markdown blob plus extracted images keyed by output file name. It is
// written to disk immediately and never held across documents.
type ConversionResult struct {
	Markdown string
	Images   map[string][]byte
	Metadata map[string]string
}

// ConversionOutcome reports what happened to one document. Kind is
// FailureNone on success; otherwise Err carries the underlying cause.
type ConversionOutcome struct {
	Ref       DocumentReference
	OutputDir string
	Kind      FailureKind
	Err       error
}

// OK reports whether the document converted and persisted successfully.
func (o ConversionOutcome) OK() bool {
	return o.Kind == FailureNone
}

// BatchSummary is the run-level completion report.
type BatchSummary struct {
	RunID      uuid.UUID
	Discovered int
	Processed  int
	Failed     int
}
