package filter

import "fmt"

// DiagnosticKind classifies a dictionary entry that was dropped at build time
type DiagnosticKind string

const (
	// DiagDuplicatePattern means the entry normalizes to the key of an earlier entry
	DiagDuplicatePattern DiagnosticKind = "duplicate_pattern"
	// DiagEmptyPattern means nothing matchable survived normalization
	DiagEmptyPattern DiagnosticKind = "empty_pattern"
)

// Diagnostic reports a dropped dictionary entry. Building never fails because of one
type Diagnostic struct {
	Kind     DiagnosticKind `json:"kind"`
	Word     string         `json:"word"`
	Existing string         `json:"existing,omitempty"` // retained spelling, duplicates only
	Key      string         `json:"key"`
}

func (d Diagnostic) String() string {
	switch d.Kind {
	case DiagDuplicatePattern:
		return fmt.Sprintf("'%s' is equivalent to existing word '%s'", d.Word, d.Existing)
	case DiagEmptyPattern:
		return fmt.Sprintf("'%s' has no matchable characters", d.Word)
	}
	return fmt.Sprintf("%s: '%s'", d.Kind, d.Word)
}
