package profile

import (
	"fmt"

	"predmaint/domain/frame"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// ColumnProfile summarizes one column of a frame
type ColumnProfile struct {
	Name     string
	Kind     string // "numeric" or "string"
	Count    int
	Distinct int
	Mean     float64
	StdDev   float64
	Min      float64
	Max      float64
	Median   float64
}

func (p ColumnProfile) String() string {
	if p.Kind == "numeric" {
		return fmt.Sprintf("%s (numeric): n=%d mean=%.4f std=%.4f min=%.4f median=%.4f max=%.4f",
			p.Name, p.Count, p.Mean, p.StdDev, p.Min, p.Median, p.Max)
	}
	return fmt.Sprintf("%s (string): n=%d distinct=%d", p.Name, p.Count, p.Distinct)
}

// Describe computes summary profiles for every column of the frame.
// Numeric summaries come from the full column, no sampling.
func Describe(f *frame.Frame) []ColumnProfile {
	profiles := make([]ColumnProfile, 0, f.NumCols())
	for _, name := range f.Names() {
		s, _ := f.Column(name)
		if s.Kind == frame.Numeric {
			profiles = append(profiles, describeNumeric(name, s.Num))
		} else {
			profiles = append(profiles, describeString(name, s.Str))
		}
	}
	return profiles
}

func describeNumeric(name string, values []float64) ColumnProfile {
	p := ColumnProfile{Name: name, Kind: "numeric", Count: len(values)}
	if len(values) == 0 {
		return p
	}
	p.Mean = stat.Mean(values, nil)
	if len(values) > 1 {
		p.StdDev = stat.StdDev(values, nil)
	}
	// montanaflynn errors only on empty input, which is handled above
	p.Min, _ = stats.Min(values)
	p.Max, _ = stats.Max(values)
	p.Median, _ = stats.Median(values)
	return p
}

func describeString(name string, values []string) ColumnProfile {
	distinct := make(map[string]struct{}, len(values))
	for _, v := range values {
		distinct[v] = struct{}{}
	}
	return ColumnProfile{
		Name:     name,
		Kind:     "string",
		Count:    len(values),
		Distinct: len(distinct),
	}
}
