package profile

import (
	"strings"
	"testing"

	"predmaint/domain/frame"
)

func TestDescribeNumericColumn(t *testing.T) {
	f := frame.New()
	if err := f.PutNumeric("v", []float64{1, 2, 3, 4}); err != nil {
		t.Fatal(err)
	}

	profiles := Describe(f)
	if len(profiles) != 1 {
		t.Fatalf("Expected 1 profile, got %d", len(profiles))
	}

	p := profiles[0]
	if p.Kind != "numeric" {
		t.Errorf("Expected numeric kind, got %s", p.Kind)
	}
	if p.Count != 4 {
		t.Errorf("Expected count 4, got %d", p.Count)
	}
	if p.Mean != 2.5 {
		t.Errorf("Expected mean 2.5, got %f", p.Mean)
	}
	if p.Min != 1 || p.Max != 4 {
		t.Errorf("Expected min 1 max 4, got %f %f", p.Min, p.Max)
	}
	if p.Median != 2.5 {
		t.Errorf("Expected median 2.5, got %f", p.Median)
	}
}

func TestDescribeStringColumn(t *testing.T) {
	f := frame.New()
	if err := f.PutStrings("cat", []string{"a", "b", "a", "c"}); err != nil {
		t.Fatal(err)
	}

	p := Describe(f)[0]
	if p.Kind != "string" {
		t.Errorf("Expected string kind, got %s", p.Kind)
	}
	if p.Distinct != 3 {
		t.Errorf("Expected 3 distinct values, got %d", p.Distinct)
	}
	if !strings.Contains(p.String(), "distinct=3") {
		t.Errorf("Unexpected summary: %s", p.String())
	}
}

func TestDescribeKeepsColumnOrder(t *testing.T) {
	f := frame.New()
	if err := f.PutStrings("first", []string{"x"}); err != nil {
		t.Fatal(err)
	}
	if err := f.PutNumeric("second", []float64{1}); err != nil {
		t.Fatal(err)
	}

	profiles := Describe(f)
	if profiles[0].Name != "first" || profiles[1].Name != "second" {
		t.Errorf("Profiles out of order: %s, %s", profiles[0].Name, profiles[1].Name)
	}
}
