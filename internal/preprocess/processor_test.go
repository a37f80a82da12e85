package preprocess

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"predmaint/adapters/tabular"
	"predmaint/internal"
	"predmaint/internal/config"
	"predmaint/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const syntheticCSV = `UDI,Product ID,Type,Air temperature [K],Process temperature [K],Rotational speed [rpm],Torque [Nm],Tool wear [min],Target,Failure Type
1,M14860,M,298.1,308.6,1551,42.8,0,0,No Failure
2,L47181,L,298.2,308.7,1408,46.3,3,0,No Failure
3,L47182,L,298.1,308.5,1498,49.4,5,0,No Failure
4,L47183,L,298.2,308.6,1433,39.5,7,0,No Failure
5,L47184,L,298.2,308.7,1408,40.0,9,0,No Failure
6,M14861,M,298.1,308.6,1425,41.9,11,0,No Failure
7,H29424,H,298.1,308.6,1558,42.4,14,0,No Failure
8,M14862,M,298.1,308.6,1527,40.2,16,0,No Failure
9,L47186,L,298.3,308.7,1667,28.6,18,1,Power Failure
10,L47187,L,298.5,309.0,1741,28.0,21,1,Power Failure
`

func writeSyntheticCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "machine_failure.csv")
	require.NoError(t, os.WriteFile(path, []byte(syntheticCSV), 0o644))
	return path
}

func testConfig(dataPath, rootDir string) *config.Config {
	return &config.Config{
		Data:     config.DataProcessingConfig{DataPath: dataPath, RootDir: rootDir},
		Pipeline: config.PipelineConfig{Seed: 42, TestFraction: 0.2},
	}
}

func readArtifact(t *testing.T, dir, name string) [][]string {
	t.Helper()
	file, err := os.Open(filepath.Join(dir, name))
	require.NoError(t, err)
	defer file.Close()
	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestProcessorRunEndToEnd(t *testing.T) {
	dataPath := writeSyntheticCSV(t)
	outDir := filepath.Join(t.TempDir(), "artifacts")
	cfg := testConfig(dataPath, outDir)

	processor := NewProcessor(cfg, tabular.NewReader(dataPath), nil, internal.NewLogger(internal.LogLevelError))
	manifest, err := processor.Run(context.Background())
	require.NoError(t, err)

	// 8 "No Failure" vs 2 "Power Failure" balances to 16 rows; a 0.2
	// fraction holds out 3 of them
	assert.Equal(t, 10, manifest.InputRows)
	assert.Equal(t, 13, manifest.XTrain.Rows)
	assert.Equal(t, 3, manifest.XTest.Rows)
	assert.Equal(t, 13, manifest.YTrain.Rows)
	assert.Equal(t, 3, manifest.YTest.Rows)
	assert.Equal(t, manifest.XTrain.Cols, manifest.XTest.Cols)
	assert.Equal(t, 1, manifest.YTrain.Cols)
	require.NoError(t, manifest.Validate())

	assert.Equal(t, []string{"No Failure", "Power Failure"}, processor.FailureClasses())

	xTrain := readArtifact(t, outDir, FileXTrain)
	require.Equal(t, 14, len(xTrain)) // header + 13 rows

	header := map[string]int{}
	for i, name := range xTrain[0] {
		header[name] = i
	}
	for _, gone := range []string{ColUDI, ColProductID, ColAirTempK, ColProcessTempK, ColTarget, ColTypeOfFailure} {
		assert.NotContains(t, header, gone)
	}
	for _, kept := range []string{ColType, ColAirTempC, ColProcessTempC, ColMachineFailure, ColFailureType} {
		assert.Contains(t, header, kept)
	}

	// Type is ordinal, not scaled: only ranks 0, 1, 2 appear
	for _, row := range xTrain[1:] {
		rank, err := strconv.ParseFloat(row[header[ColType]], 64)
		require.NoError(t, err)
		assert.Contains(t, []float64{0, 1, 2}, rank)
	}

	// scaled features stay inside the unit interval
	for _, col := range ScaledColumns() {
		idx, ok := header[col]
		require.True(t, ok, "missing scaled column %s", col)
		for _, row := range xTrain[1:] {
			v, err := strconv.ParseFloat(row[idx], 64)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}

	yTrain := readArtifact(t, outDir, FileYTrain)
	assert.Equal(t, []string{ColTypeOfFailure}, yTrain[0])
	assert.Equal(t, 14, len(yTrain))

	yTest := readArtifact(t, outDir, FileYTest)
	assert.Equal(t, 4, len(yTest))
}

func TestProcessorRunIsReproducible(t *testing.T) {
	dataPath := writeSyntheticCSV(t)

	outA := filepath.Join(t.TempDir(), "a")
	procA := NewProcessor(testConfig(dataPath, outA), tabular.NewReader(dataPath), nil, internal.NewLogger(internal.LogLevelError))
	_, err := procA.Run(context.Background())
	require.NoError(t, err)

	outB := filepath.Join(t.TempDir(), "b")
	procB := NewProcessor(testConfig(dataPath, outB), tabular.NewReader(dataPath), nil, internal.NewLogger(internal.LogLevelError))
	_, err = procB.Run(context.Background())
	require.NoError(t, err)

	for _, name := range []string{FileXTrain, FileXTest, FileYTrain, FileYTest} {
		a, err := os.ReadFile(filepath.Join(outA, name))
		require.NoError(t, err)
		b, err := os.ReadFile(filepath.Join(outB, name))
		require.NoError(t, err)
		assert.Equal(t, a, b, "artifact %s differs between identical runs", name)
	}
}

func TestProcessorRunScaledColumnsCoverUnitInterval(t *testing.T) {
	dataPath := writeSyntheticCSV(t)
	outDir := filepath.Join(t.TempDir(), "artifacts")

	processor := NewProcessor(testConfig(dataPath, outDir), tabular.NewReader(dataPath), nil, internal.NewLogger(internal.LogLevelError))
	_, err := processor.Run(context.Background())
	require.NoError(t, err)

	// scaling happens before balancing and splitting, so over the union
	// of train and test each scaled column reaches both 0 and 1
	xTrain := readArtifact(t, outDir, FileXTrain)
	xTest := readArtifact(t, outDir, FileXTest)
	header := map[string]int{}
	for i, name := range xTrain[0] {
		header[name] = i
	}

	for _, col := range ScaledColumns() {
		min, max := 1.0, 0.0
		for _, rows := range [][][]string{xTrain[1:], xTest[1:]} {
			for _, row := range rows {
				v, err := strconv.ParseFloat(row[header[col]], 64)
				require.NoError(t, err)
				if v < min {
					min = v
				}
				if v > max {
					max = v
				}
			}
		}
		assert.Equal(t, 0.0, min, "column %s min", col)
		assert.Equal(t, 1.0, max, "column %s max", col)
	}
}

func TestProcessorRunMissingSource(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.csv")
	cfg := testConfig(missing, t.TempDir())

	processor := NewProcessor(cfg, tabular.NewReader(missing), nil, internal.NewLogger(internal.LogLevelError))
	_, err := processor.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.CodeDataLoad, errors.GetCode(err))
}

func TestProcessorRunDegenerateLabels(t *testing.T) {
	// a single failure class cannot be balanced
	rows := `UDI,Product ID,Type,Air temperature [K],Process temperature [K],Rotational speed [rpm],Torque [Nm],Tool wear [min],Target,Failure Type
1,M1,M,298.1,308.6,1551,42.8,0,0,No Failure
2,L2,L,298.2,308.7,1408,46.3,3,0,No Failure
3,L3,L,298.1,308.5,1498,49.4,5,0,No Failure
`
	dataPath := filepath.Join(t.TempDir(), "degenerate.csv")
	require.NoError(t, os.WriteFile(dataPath, []byte(rows), 0o644))
	cfg := testConfig(dataPath, t.TempDir())

	processor := NewProcessor(cfg, tabular.NewReader(dataPath), nil, internal.NewLogger(internal.LogLevelError))
	_, err := processor.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.CodeBalancing, errors.GetCode(err))
}
