package run

import (
	"predmaint/domain/core"
)

// Shape records the row/column counts of one written artifact
type Shape struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// Manifest is the audit record of a single preprocessing run. It is the
// truth source for reproducing the run: the same source file, seed and
// test fraction must yield the same artifacts.
type Manifest struct {
	RunID        core.RunID     `json:"run_id"`
	DataPath     string         `json:"data_path"`
	RootDir      string         `json:"root_dir"`
	Seed         int64          `json:"seed"`
	TestFraction float64        `json:"test_fraction"`
	InputRows    int            `json:"input_rows"`
	XTrain       Shape          `json:"x_train"`
	XTest        Shape          `json:"x_test"`
	YTrain       Shape          `json:"y_train"`
	YTest        Shape          `json:"y_test"`
	StartedAt    core.Timestamp `json:"started_at"`
	FinishedAt   core.Timestamp `json:"finished_at"`
}

// NewManifest creates a manifest for a run that is about to start
func NewManifest(dataPath, rootDir string, seed int64, testFraction float64) *Manifest {
	return &Manifest{
		RunID:        core.NewRunID(),
		DataPath:     dataPath,
		RootDir:      rootDir,
		Seed:         seed,
		TestFraction: testFraction,
		StartedAt:    core.Now(),
	}
}

// Finish stamps the completion time
func (m *Manifest) Finish() {
	m.FinishedAt = core.Now()
}

// Validate checks if the manifest is complete enough to persist
func (m *Manifest) Validate() error {
	if core.ID(m.RunID).IsEmpty() {
		return core.NewValidationError("run_manifest", "run_id cannot be empty")
	}
	if m.DataPath == "" {
		return core.NewValidationError("run_manifest", "data_path cannot be empty")
	}
	if m.TestFraction <= 0 || m.TestFraction >= 1 {
		return core.NewValidationError("run_manifest", "test_fraction must be in (0, 1)")
	}
	if m.XTrain.Rows != m.YTrain.Rows || m.XTest.Rows != m.YTest.Rows {
		return core.NewValidationError("run_manifest", "feature and label row counts must match pairwise")
	}
	return nil
}
