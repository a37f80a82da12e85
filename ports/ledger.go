package ports

import (
	"context"

	"predmaint/domain/run"
)

// RunLedger persists run manifests for lineage and replay. The pipeline
// records exactly one manifest per successful run.
type RunLedger interface {
	RecordRun(ctx context.Context, manifest *run.Manifest) error
}

// NopLedger discards manifests. Used when no DATABASE_URL is configured.
type NopLedger struct{}

func (NopLedger) RecordRun(ctx context.Context, manifest *run.Manifest) error {
	return nil
}
