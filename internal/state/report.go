package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// StepResult holds the outcome of a single protocol step. Exactly one of
// Output and Err is meaningful; a skipped step has both empty.
type StepResult struct {
	Name     string `json:"name"`
	Output   string `json:"output,omitempty"`
	Err      string `json:"error,omitempty"`
	Skipped  bool   `json:"skipped,omitempty"`
	Duration string `json:"duration,omitempty"`
}

// Report is the persisted record of one chain run. Steps appear in execution
// order, one entry per configured protocol.
type Report struct {
	RunID   string       `json:"run_id"`
	Input   string       `json:"input"`
	Status  string       `json:"status"`
	Started time.Time    `json:"started"`
	Steps   []StepResult `json:"steps"`
}

// Step returns the result for the named protocol, or nil if absent.
func (r *Report) Step(name string) *StepResult {
	for i := range r.Steps {
		if r.Steps[i].Name == name {
			return &r.Steps[i]
		}
	}
	return nil
}

// FailedCount returns the number of steps that recorded an error.
func (r *Report) FailedCount() int {
	n := 0
	for _, s := range r.Steps {
		if s.Err != "" {
			n++
		}
	}
	return n
}

func reportPath(artifactsDir string) string {
	return filepath.Join(artifactsDir, "report.json")
}

// Save writes the report to the artifacts directory.
func (r *Report) Save(artifactsDir string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return WriteFileAtomic(reportPath(artifactsDir), data, 0644)
}

// LoadReport reads the last run's report from the artifacts directory.
func LoadReport(artifactsDir string) (*Report, error) {
	data, err := os.ReadFile(reportPath(artifactsDir))
	if err != nil {
		return nil, err
	}
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
