package preprocess

import (
	"math/rand"

	"predmaint/domain/frame"
	"predmaint/internal/errors"
)

// Oversampler balances label classes by duplicating randomly chosen
// existing minority-class rows, with replacement, until every class
// matches the majority class count. It never synthesizes feature values.
// The random source is injected for reproducibility.
type Oversampler struct {
	rng *rand.Rand
}

// NewOversampler creates an oversampler with the given random source
func NewOversampler(rng *rand.Rand) *Oversampler {
	return &Oversampler{rng: rng}
}

// Resample builds a new frame where every class of the label column has
// equal representation. Original rows come first, duplicated rows append
// after them, per class in first-seen class order.
func (o *Oversampler) Resample(f *frame.Frame, label string) (*frame.Frame, error) {
	labels, err := f.Numeric(label)
	if err != nil {
		return nil, errors.BalancingError("label column " + label + " is missing or not numeric")
	}

	var order []float64
	groups := make(map[float64][]int)
	for i, v := range labels {
		if _, ok := groups[v]; !ok {
			order = append(order, v)
		}
		groups[v] = append(groups[v], i)
	}
	if len(groups) < 2 {
		return nil, errors.BalancingError("label column must have at least 2 distinct classes")
	}

	maxCount := 0
	for _, idx := range groups {
		if len(idx) > maxCount {
			maxCount = len(idx)
		}
	}

	indices := make([]int, 0, maxCount*len(groups))
	for i := range labels {
		indices = append(indices, i)
	}
	for _, class := range order {
		members := groups[class]
		for n := len(members); n < maxCount; n++ {
			indices = append(indices, members[o.rng.Intn(len(members))])
		}
	}

	return f.Take(indices), nil
}
