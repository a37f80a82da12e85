package preprocess

import (
	"context"
	"math/rand"

	"predmaint/domain/frame"
	"predmaint/domain/run"
	"predmaint/internal"
	"predmaint/internal/config"
	"predmaint/internal/errors"
	"predmaint/internal/profile"
	"predmaint/ports"
)

// Processor executes the seven preprocessing stages in order against a
// single working frame. Control flows strictly forward; any stage failure
// aborts the run immediately without cleaning up artifacts already
// written. A Processor runs one dataset at a time and is not safe for
// concurrent use.
type Processor struct {
	data     config.DataProcessingConfig
	settings config.PipelineConfig
	reader   ports.DatasetReader
	ledger   ports.RunLedger
	log      *internal.Logger

	encoder *LabelEncoder // fitted during Run
}

// NewProcessor wires a processor from its collaborators
func NewProcessor(cfg *config.Config, reader ports.DatasetReader, ledger ports.RunLedger, logger *internal.Logger) *Processor {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	if ledger == nil {
		ledger = ports.NopLedger{}
	}
	return &Processor{
		data:     cfg.Data,
		settings: cfg.Pipeline,
		reader:   reader,
		ledger:   ledger,
		log:      logger,
	}
}

// FailureClasses returns the fitted failure-type class names in code
// order. Empty before Run completes the encoding stage.
func (p *Processor) FailureClasses() []string {
	if p.encoder == nil {
		return nil
	}
	return p.encoder.Classes()
}

// Run executes the full pipeline: load, normalize schema, convert units,
// encode, scale, balance, split and persist. It returns the run manifest
// on success.
func (p *Processor) Run(ctx context.Context) (*run.Manifest, error) {
	manifest := run.NewManifest(p.data.DataPath, p.data.RootDir, p.settings.Seed, p.settings.TestFraction)

	df, err := p.reader.ReadFrame()
	if err != nil {
		return nil, err
	}
	manifest.InputRows = df.NumRows()
	p.log.Info("Data loaded successfully")
	for _, cp := range profile.Describe(df) {
		p.log.Debug("column profile: %s", cp)
	}

	if df, err = RenameAndDropColumns(df); err != nil {
		return nil, err
	}
	p.log.Info("Renamed and dropped columns")

	if df, err = ConvertTemperature(df); err != nil {
		return nil, err
	}
	p.log.Info("Converted temperatures to Celsius and dropped original columns")

	if df, p.encoder, err = EncodeFeatures(df); err != nil {
		return nil, err
	}
	p.log.Info("Encoded categorical features")

	scaler := NewMinMaxScaler()
	if err = scaler.FitApply(df, ScaledColumns()); err != nil {
		return nil, err
	}
	p.log.Info("Scaled numerical features")

	sampler := NewOversampler(rand.New(rand.NewSource(p.settings.Seed)))
	if df, err = sampler.Resample(df, ColTypeOfFailure); err != nil {
		return nil, err
	}
	p.log.Info("Applied random oversampling to balance classes")

	result, err := p.splitAndPersist(df)
	if err != nil {
		return nil, err
	}
	p.log.Info("Data split into training and test sets")
	p.log.Info("X_Train shape: (%d, %d), X_Test shape: (%d, %d), y_train shape: (%d, %d), y_test shape: (%d, %d)",
		result.XTrain.NumRows(), result.XTrain.NumCols(),
		result.XTest.NumRows(), result.XTest.NumCols(),
		result.YTrain.NumRows(), result.YTrain.NumCols(),
		result.YTest.NumRows(), result.YTest.NumCols())

	manifest.XTrain = run.Shape{Rows: result.XTrain.NumRows(), Cols: result.XTrain.NumCols()}
	manifest.XTest = run.Shape{Rows: result.XTest.NumRows(), Cols: result.XTest.NumCols()}
	manifest.YTrain = run.Shape{Rows: result.YTrain.NumRows(), Cols: result.YTrain.NumCols()}
	manifest.YTest = run.Shape{Rows: result.YTest.NumRows(), Cols: result.YTest.NumCols()}
	manifest.Finish()

	if err := p.ledger.RecordRun(ctx, manifest); err != nil {
		return nil, err
	}
	return manifest, nil
}

// splitAndPersist partitions the balanced frame into X and y, splits
// them with the configured seed and fraction, and writes the four CSV
// artifacts
func (p *Processor) splitAndPersist(df *frame.Frame) (*SplitResult, error) {
	x, err := df.Without(ColTypeOfFailure)
	if err != nil {
		return nil, errors.SchemaError("train_test_split", err)
	}
	y, err := df.Select(ColTypeOfFailure)
	if err != nil {
		return nil, errors.SchemaError("train_test_split", err)
	}

	result := TrainTestSplit(x, y, p.settings.TestFraction, p.settings.Seed)
	if err := result.Persist(p.data.RootDir); err != nil {
		return nil, err
	}
	return result, nil
}
