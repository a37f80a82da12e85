package preprocess

import (
	"fmt"

	"predmaint/domain/frame"
	"predmaint/internal/errors"

	"github.com/montanaflynn/stats"
)

// MinMaxScaler rescales numeric columns to [0, 1] using per-column
// minimum and maximum observed at fit time. Fit and Apply are separate
// so transform parameters can be inspected or injected.
type MinMaxScaler struct {
	Min map[string]float64
	Max map[string]float64
}

// NewMinMaxScaler creates an unfitted scaler
func NewMinMaxScaler() *MinMaxScaler {
	return &MinMaxScaler{
		Min: make(map[string]float64),
		Max: make(map[string]float64),
	}
}

// Fit computes min/max for each listed column over the entire frame
func (s *MinMaxScaler) Fit(f *frame.Frame, columns []string) error {
	for _, col := range columns {
		values, err := f.Numeric(col)
		if err != nil {
			return errors.ScalingError(col, err)
		}
		min, err := stats.Min(values)
		if err != nil {
			return errors.ScalingError(col, err)
		}
		max, err := stats.Max(values)
		if err != nil {
			return errors.ScalingError(col, err)
		}
		s.Min[col] = min
		s.Max[col] = max
	}
	return nil
}

// Apply rescales each listed column in place using the fitted parameters.
// A zero-variance column (min == max) maps uniformly to 0.0 rather than
// dividing by zero.
func (s *MinMaxScaler) Apply(f *frame.Frame, columns []string) error {
	for _, col := range columns {
		min, okMin := s.Min[col]
		max, okMax := s.Max[col]
		if !okMin || !okMax {
			return errors.ScalingError(col, fmt.Errorf("scaler not fitted for column"))
		}
		values, err := f.Numeric(col)
		if err != nil {
			return errors.ScalingError(col, err)
		}
		scaled := make([]float64, len(values))
		if max != min {
			for i, v := range values {
				scaled[i] = (v - min) / (max - min)
			}
		}
		if err := f.PutNumeric(col, scaled); err != nil {
			return errors.ScalingError(col, err)
		}
	}
	return nil
}

// FitApply fits on the frame and applies in one pass
func (s *MinMaxScaler) FitApply(f *frame.Frame, columns []string) error {
	if err := s.Fit(f, columns); err != nil {
		return err
	}
	return s.Apply(f, columns)
}
