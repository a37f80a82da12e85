package postgres

import (
	"context"
	"encoding/json"

	"predmaint/domain/run"
	"predmaint/internal/errors"
	"predmaint/ports"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// runLedger implements the RunLedger interface on Postgres
type runLedger struct {
	db *sqlx.DB
}

// NewRunLedger creates a run ledger backed by the given database
func NewRunLedger(db *sqlx.DB) ports.RunLedger {
	return &runLedger{db: db}
}

// Connect opens a Postgres connection and verifies it
func Connect(url string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", url)
	if err != nil {
		return nil, errors.DatabaseError("failed to connect to run ledger database", err)
	}
	return db, nil
}

// RecordRun inserts one row per pipeline run
func (l *runLedger) RecordRun(ctx context.Context, manifest *run.Manifest) error {
	if err := manifest.Validate(); err != nil {
		return errors.DatabaseError("refusing to record invalid manifest", err)
	}

	shapes, err := json.Marshal(map[string]run.Shape{
		"x_train": manifest.XTrain,
		"x_test":  manifest.XTest,
		"y_train": manifest.YTrain,
		"y_test":  manifest.YTest,
	})
	if err != nil {
		return errors.DatabaseError("failed to marshal artifact shapes", err)
	}

	query := `INSERT INTO pipeline_runs (
		run_id, data_path, root_dir, seed, test_fraction, input_rows,
		artifact_shapes, started_at, finished_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err = l.db.ExecContext(ctx, query,
		manifest.RunID, manifest.DataPath, manifest.RootDir,
		manifest.Seed, manifest.TestFraction, manifest.InputRows,
		shapes, manifest.StartedAt.Time(), manifest.FinishedAt.Time(),
	)
	if err != nil {
		return errors.DatabaseError("failed to record pipeline run", err)
	}
	return nil
}
