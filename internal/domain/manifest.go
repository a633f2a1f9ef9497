package domain

import "time"

// Entry records one materialized fixture in the workspace manifest.
type Entry struct {
	Name        string `json:"name"`
	Filename    string `json:"filename"`
	Fingerprint string `json:"fingerprint"`
	Size        int64  `json:"size"`
}

// Manifest records the last set of fixtures written to a workspace.
type Manifest struct {
	WrittenAt time.Time `json:"written_at"`
	Entries   []Entry   `json:"entries"`
}

// CheckState classifies one manifest entry during verification.
type CheckState string

const (
	CheckOK       CheckState = "ok"
	CheckModified CheckState = "modified"
	CheckMissing  CheckState = "missing"
)

// Check is the verification result for a single manifest entry.
type Check struct {
	Entry Entry
	State CheckState
}
