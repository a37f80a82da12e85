package preprocess

import (
	"fmt"

	"predmaint/internal/errors"
)

// OrdinalEncoder maps a closed, ordered category set to consecutive
// float ranks. The category order is fixed at construction, never
// inferred from data.
type OrdinalEncoder struct {
	categories []string
	ranks      map[string]float64
}

// NewOrdinalEncoder creates an encoder for the given rank order
func NewOrdinalEncoder(categories ...string) *OrdinalEncoder {
	ranks := make(map[string]float64, len(categories))
	for i, c := range categories {
		ranks[c] = float64(i)
	}
	return &OrdinalEncoder{categories: categories, ranks: ranks}
}

// Transform maps values to their ranks. A value outside the category set
// is an encoding error.
func (e *OrdinalEncoder) Transform(column string, values []string) ([]float64, error) {
	out := make([]float64, len(values))
	for i, v := range values {
		rank, ok := e.ranks[v]
		if !ok {
			return nil, errors.EncodingError(column, v)
		}
		out[i] = rank
	}
	return out, nil
}

// Categories returns the rank order
func (e *OrdinalEncoder) Categories() []string {
	return e.categories
}

// LabelEncoder maps an unordered category set to integer codes assigned
// by first-appearance order during fitting. The fitted mapping is stable
// for the lifetime of the encoder, so a given string always maps to the
// same code within one run.
type LabelEncoder struct {
	classes []string
	codes   map[string]int
	fitted  bool
}

// NewLabelEncoder creates an unfitted label encoder
func NewLabelEncoder() *LabelEncoder {
	return &LabelEncoder{codes: make(map[string]int)}
}

// Fit assigns codes to distinct values in order of first appearance
func (e *LabelEncoder) Fit(values []string) {
	e.classes = e.classes[:0]
	e.codes = make(map[string]int)
	for _, v := range values {
		if _, ok := e.codes[v]; !ok {
			e.codes[v] = len(e.classes)
			e.classes = append(e.classes, v)
		}
	}
	e.fitted = true
}

// Transform maps values to their fitted codes
func (e *LabelEncoder) Transform(column string, values []string) ([]float64, error) {
	if !e.fitted {
		return nil, fmt.Errorf("label encoder must be fitted before transform")
	}
	out := make([]float64, len(values))
	for i, v := range values {
		code, ok := e.codes[v]
		if !ok {
			return nil, errors.EncodingError(column, v)
		}
		out[i] = float64(code)
	}
	return out, nil
}

// FitTransform fits on values and transforms them in one pass
func (e *LabelEncoder) FitTransform(column string, values []string) ([]float64, error) {
	e.Fit(values)
	return e.Transform(column, values)
}

// Classes returns the fitted class names in code order
func (e *LabelEncoder) Classes() []string {
	return e.classes
}

// Inverse maps a code back to its class name
func (e *LabelEncoder) Inverse(code int) (string, error) {
	if code < 0 || code >= len(e.classes) {
		return "", fmt.Errorf("unknown label code %d", code)
	}
	return e.classes[code], nil
}
