package preprocess

import (
	"math/rand"
	"os"
	"path/filepath"

	"predmaint/domain/frame"
	"predmaint/internal/errors"
)

// SplitResult holds the four artifacts of the train/test partition
type SplitResult struct {
	XTrain *frame.Frame
	XTest  *frame.Frame
	YTrain *frame.Frame
	YTest  *frame.Frame
}

// TrainTestSplit shuffles row indices with a seeded permutation and
// partitions X and y into train and test sets. The first
// floor(n*testFraction) permuted indices form the test set, so the split
// is exactly reproducible for a fixed seed.
func TrainTestSplit(x, y *frame.Frame, testFraction float64, seed int64) *SplitResult {
	n := x.NumRows()
	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(n)

	nTest := int(float64(n) * testFraction)
	testIdx := perm[:nTest]
	trainIdx := perm[nTest:]

	return &SplitResult{
		XTrain: x.Take(trainIdx),
		XTest:  x.Take(testIdx),
		YTrain: y.Take(trainIdx),
		YTest:  y.Take(testIdx),
	}
}

// artifact file names, fixed contract with the downstream training stage
const (
	FileXTrain = "X_train.csv"
	FileXTest  = "X_test.csv"
	FileYTrain = "y_train.csv"
	FileYTest  = "y_test.csv"
)

// Persist writes the four artifacts into rootDir, header included, no
// index column. Already-written files are not cleaned up on failure.
func (r *SplitResult) Persist(rootDir string) error {
	if err := os.MkdirAll(rootDir, 0o755); err != nil {
		return errors.PersistError(rootDir, err)
	}
	artifacts := []struct {
		name string
		f    *frame.Frame
	}{
		{FileXTrain, r.XTrain},
		{FileXTest, r.XTest},
		{FileYTrain, r.YTrain},
		{FileYTest, r.YTest},
	}
	for _, a := range artifacts {
		if err := writeFrame(filepath.Join(rootDir, a.name), a.f); err != nil {
			return err
		}
	}
	return nil
}

func writeFrame(path string, f *frame.Frame) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.PersistError(path, err)
	}
	defer file.Close()

	if err := f.WriteCSV(file); err != nil {
		return errors.PersistError(path, err)
	}
	return nil
}
