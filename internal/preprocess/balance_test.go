package preprocess

import (
	"math/rand"
	"testing"

	"predmaint/domain/frame"
	"predmaint/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func balanceFrame(t *testing.T) *frame.Frame {
	t.Helper()
	f := frame.New()
	require.NoError(t, f.PutNumeric("feature", []float64{10, 20, 30, 40, 50, 60, 70}))
	require.NoError(t, f.PutNumeric("label", []float64{0, 0, 0, 0, 1, 1, 2}))
	return f
}

func classCounts(t *testing.T, f *frame.Frame, label string) map[float64]int {
	t.Helper()
	labels, err := f.Numeric(label)
	require.NoError(t, err)
	counts := make(map[float64]int)
	for _, v := range labels {
		counts[v]++
	}
	return counts
}

func TestResampleEqualizesClassCounts(t *testing.T) {
	sampler := NewOversampler(rand.New(rand.NewSource(42)))
	out, err := sampler.Resample(balanceFrame(t), "label")
	require.NoError(t, err)

	// every class reaches the majority class count observed in the input
	counts := classCounts(t, out, "label")
	assert.Equal(t, map[float64]int{0: 4, 1: 4, 2: 4}, counts)
	assert.Equal(t, 12, out.NumRows())
}

func TestResampleOnlyDuplicatesExistingRows(t *testing.T) {
	sampler := NewOversampler(rand.New(rand.NewSource(7)))
	out, err := sampler.Resample(balanceFrame(t), "label")
	require.NoError(t, err)

	// feature values must all come from the input, never synthesized
	valid := map[float64]bool{10: true, 20: true, 30: true, 40: true, 50: true, 60: true, 70: true}
	features, err := out.Numeric("feature")
	require.NoError(t, err)
	for _, v := range features {
		assert.True(t, valid[v], "unexpected synthesized value %v", v)
	}

	// original rows are preserved in order at the front
	assert.Equal(t, []float64{10, 20, 30, 40, 50, 60, 70}, features[:7])
}

func TestResampleIsDeterministicForFixedSeed(t *testing.T) {
	first, err := NewOversampler(rand.New(rand.NewSource(42))).Resample(balanceFrame(t), "label")
	require.NoError(t, err)
	second, err := NewOversampler(rand.New(rand.NewSource(42))).Resample(balanceFrame(t), "label")
	require.NoError(t, err)

	assert.Equal(t, first.Records(), second.Records())
}

func TestResampleSingleClassFails(t *testing.T) {
	f := frame.New()
	require.NoError(t, f.PutNumeric("feature", []float64{1, 2}))
	require.NoError(t, f.PutNumeric("label", []float64{0, 0}))

	sampler := NewOversampler(rand.New(rand.NewSource(42)))
	_, err := sampler.Resample(f, "label")
	require.Error(t, err)
	assert.Equal(t, errors.CodeBalancing, errors.GetCode(err))
}

func TestResampleMissingLabelColumn(t *testing.T) {
	f := frame.New()
	require.NoError(t, f.PutNumeric("feature", []float64{1, 2}))

	sampler := NewOversampler(rand.New(rand.NewSource(42)))
	_, err := sampler.Resample(f, "label")
	require.Error(t, err)
	assert.Equal(t, errors.CodeBalancing, errors.GetCode(err))
}
